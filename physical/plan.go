package physical

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/go-sif/sifc/ir"
)

// Plan is a compiled, schedulable physical execution plan. It is immutable once generated:
// accessors hand out copies, and the IR vertices it holds are frozen at generation time.
type Plan struct {
	id           string
	stageDAG     *StageDAG
	taskVertices map[string]*ir.Vertex
	vertexStages map[string]*Stage
}

// ID returns the ID for this Plan
func (p *Plan) ID() string {
	return p.id
}

// StageDAG returns the DAG of Stages of this Plan
func (p *Plan) StageDAG() *StageDAG {
	return p.stageDAG
}

// Size returns the number of Stages in this Plan
func (p *Plan) Size() int {
	return p.stageDAG.Size()
}

// Stages returns the Stages of this Plan, in topological order
func (p *Plan) Stages() []*Stage {
	return p.stageDAG.TopologicalSort()
}

// Stage returns the Stage with the given ID, if it exists
func (p *Plan) Stage(id string) (*Stage, bool) {
	return p.stageDAG.Vertex(id)
}

// StageOf returns the Stage an IR vertex was assigned to
func (p *Plan) StageOf(vertexID string) (*Stage, bool) {
	s, ok := p.vertexStages[vertexID]
	return s, ok
}

// TaskVertex returns a copy of the IR vertex a task was generated from, as it was when
// this Plan was generated
func (p *Plan) TaskVertex(taskID string) (*ir.Vertex, bool) {
	v, ok := p.taskVertices[taskID]
	if !ok {
		return nil, false
	}
	return v.Clone(), true
}

// TaskIRVertexMap returns a copy of the index from task IDs to originating IR vertices
func (p *Plan) TaskIRVertexMap() map[string]*ir.Vertex {
	m := make(map[string]*ir.Vertex, len(p.taskVertices))
	for k, v := range p.taskVertices {
		m[k] = v.Clone()
	}
	return m
}

// Fingerprint hashes the structure of this Plan, ignoring generated identities.
// Compiling the same IR DAG twice yields the same Fingerprint.
func (p *Plan) Fingerprint() uint64 {
	hasher := xxhash.New()
	position := make(map[string]int)
	for i, s := range p.Stages() {
		position[s.ID()] = i
		fmt.Fprintf(hasher, "S%d|%d|%s\n", i, s.parallelism, strings.Join(s.VertexIDs(), ","))
	}
	for _, e := range p.stageDAG.Edges() {
		fmt.Fprintf(hasher, "E%d>%d|%s|%s\n", position[e.src], position[e.dst], strings.Join(e.irEdges, ","), e.props)
	}
	return hasher.Sum64()
}

// String returns a textual representation of this Plan
func (p *Plan) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "plan %s\n", p.id)
	for _, s := range p.Stages() {
		sb.WriteString("  ")
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	for _, e := range p.stageDAG.Edges() {
		sb.WriteString("  ")
		sb.WriteString(e.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
