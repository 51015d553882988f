package physical

import (
	"fmt"
	"strings"

	"github.com/go-sif/sifc/dag"
	"github.com/go-sif/sifc/ir"
	"github.com/go-sif/sifc/property"
)

// Task is the unit of work the runtime schedules for one IR vertex of a Stage
type Task struct {
	ID       string
	StageID  string
	VertexID string
}

// Stage is a group of IR vertices which execute with the same parallelism and exchange
// data without shuffling. Stages block the execution of dependent stages until they are complete.
type Stage struct {
	id          string
	vertices    []*ir.Vertex
	parallelism int
	tasks       []*Task
}

// ID returns the ID for this Stage
func (s *Stage) ID() string {
	return s.id
}

// Vertices returns copies of the IR vertices of this Stage as they were when the Stage was
// generated, in topological order
func (s *Stage) Vertices() []*ir.Vertex {
	vertices := make([]*ir.Vertex, len(s.vertices))
	for i, v := range s.vertices {
		vertices[i] = v.Clone()
	}
	return vertices
}

// VertexIDs returns the IDs of the IR vertices of this Stage, in topological order
func (s *Stage) VertexIDs() []string {
	ids := make([]string, len(s.vertices))
	for i, v := range s.vertices {
		ids[i] = v.ID()
	}
	return ids
}

// Parallelism returns the number of parallel instances of this Stage
func (s *Stage) Parallelism() int {
	return s.parallelism
}

// Tasks returns copies of the tasks of this Stage, one per IR vertex
func (s *Stage) Tasks() []*Task {
	tasks := make([]*Task, len(s.tasks))
	for i, task := range s.tasks {
		copied := *task
		tasks[i] = &copied
	}
	return tasks
}

// String returns a textual representation of this Stage
func (s *Stage) String() string {
	return fmt.Sprintf("stage %s [%s] x%d", s.id, strings.Join(s.VertexIDs(), ", "), s.parallelism)
}

// StageEdge is a directed data-movement connection between two Stages
type StageEdge struct {
	id      string
	src     string
	dst     string
	props   *property.Bag
	irEdges []string
}

// ID returns the ID for this StageEdge
func (e *StageEdge) ID() string {
	return e.id
}

// SrcID returns the ID of the source Stage
func (e *StageEdge) SrcID() string {
	return e.src
}

// DstID returns the ID of the destination Stage
func (e *StageEdge) DstID() string {
	return e.dst
}

// Properties returns a copy of the execution properties governing data movement across this StageEdge
func (e *StageEdge) Properties() *property.Bag {
	return e.props.Clone()
}

// Property retrieves an execution property of this StageEdge, if it has been set
func (e *StageEdge) Property(k property.Kind) (property.Value, bool) {
	return e.props.Get(k)
}

// CommunicationPattern retrieves the communication pattern of this StageEdge, if it has been set
func (e *StageEdge) CommunicationPattern() (property.CommunicationPattern, bool) {
	return property.ValueOf[property.CommunicationPattern](e.props)
}

// IREdgeIDs returns the IDs of the IR edges this StageEdge was lowered from
func (e *StageEdge) IREdgeIDs() []string {
	return append([]string(nil), e.irEdges...)
}

// String returns a textual representation of this StageEdge
func (e *StageEdge) String() string {
	return fmt.Sprintf("stage edge %s %s", e.id, e.props)
}

// StageDAG is the physical DAG of Stages
type StageDAG = dag.DAG[*Stage, *StageEdge]
