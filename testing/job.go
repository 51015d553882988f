// Package testing provides helpers for constructing IR DAGs in tests
package testing

import (
	"fmt"

	"github.com/go-sif/sifc/ir"
	"github.com/go-sif/sifc/property"
)

// JobBuilder assembles an IR DAG one call at a time, deferring errors until Build
type JobBuilder struct {
	builder  *ir.Builder
	vertices map[string]*ir.Vertex
	edges    map[string]int
	err      error
}

// NewJob creates an empty JobBuilder
func NewJob() *JobBuilder {
	return &JobBuilder{
		builder:  ir.NewBuilder(),
		vertices: make(map[string]*ir.Vertex),
		edges:    make(map[string]int),
	}
}

// Vertex adds a vertex running a transform named after id
func (j *JobBuilder) Vertex(id string, props ...property.Value) *JobBuilder {
	if j.err != nil {
		return j
	}
	v := ir.NewVertex(id, ir.NamedTransform(id))
	for _, p := range props {
		if j.err = v.SetProperty(p); j.err != nil {
			return j
		}
	}
	if j.err = j.builder.AddVertex(v); j.err != nil {
		return j
	}
	j.vertices[id] = v
	return j
}

// Edge connects two previously added vertices. The edge is named "src->dst", with a
// "#n" suffix for the n-th parallel edge between the same pair.
func (j *JobBuilder) Edge(src, dst string, props ...property.Value) *JobBuilder {
	if j.err != nil {
		return j
	}
	s, ok := j.vertices[src]
	if !ok {
		j.err = fmt.Errorf("unknown vertex %s", src)
		return j
	}
	d, ok := j.vertices[dst]
	if !ok {
		j.err = fmt.Errorf("unknown vertex %s", dst)
		return j
	}
	id := EdgeID(src, dst)
	j.edges[id]++
	if n := j.edges[id]; n > 1 {
		id = fmt.Sprintf("%s#%d", id, n)
	}
	e := ir.NewEdge(id, s, d)
	for _, p := range props {
		if j.err = e.SetProperty(p); j.err != nil {
			return j
		}
	}
	j.err = j.builder.Connect(e)
	return j
}

// Build returns the assembled DAG, or the first error encountered
func (j *JobBuilder) Build() (*ir.DAG, error) {
	if j.err != nil {
		return nil, j.err
	}
	return j.builder.Build()
}

// EdgeID returns the id JobBuilder assigns to the first edge from src to dst
func EdgeID(src, dst string) string {
	return src + "->" + dst
}

// Chain builds a linear DAG V0 -> V1 -> ... whose i-th edge has the i-th pattern
func Chain(patterns ...property.CommunicationPattern) (*ir.DAG, error) {
	job := NewJob().Vertex("V0")
	for i, p := range patterns {
		job = job.Vertex(fmt.Sprintf("V%d", i+1)).Edge(fmt.Sprintf("V%d", i), fmt.Sprintf("V%d", i+1), p)
	}
	return job.Build()
}
