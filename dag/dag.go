// Package dag provides a generic directed acyclic graph. Vertices are owned by the graph;
// edges refer to them by id only.
package dag

import (
	"container/heap"
	"fmt"
	"strings"

	"github.com/go-sif/sifc/errors"
	"github.com/hashicorp/go-multierror"
)

// A Vertex is a node in a DAG, identified by an id unique within the DAG
type Vertex interface {
	ID() string
}

// An Edge is a directed connection between two Vertices, referenced by id
type Edge interface {
	ID() string
	SrcID() string
	DstID() string
}

// DAG is a directed acyclic graph over vertices V and edges E. Its structure cannot
// change once built.
type DAG[V Vertex, E Edge] struct {
	vertices  []V
	index     map[string]int
	edges     []E
	edgeIndex map[string]int
	incoming  map[string][]E
	outgoing  map[string][]E
	topo      []V
}

// Builder accumulates vertices and edges for a DAG
type Builder[V Vertex, E Edge] struct {
	vertices  []V
	index     map[string]int
	edges     []E
	edgeIndex map[string]int
}

// NewBuilder creates an empty Builder
func NewBuilder[V Vertex, E Edge]() *Builder[V, E] {
	return &Builder[V, E]{
		index:     make(map[string]int),
		edgeIndex: make(map[string]int),
	}
}

// AddVertex adds v to the graph under construction
func (b *Builder[V, E]) AddVertex(v V) error {
	if _, ok := b.index[v.ID()]; ok {
		return errors.StructuralInvariantError{Reason: fmt.Sprintf("duplicate vertex %s", v.ID())}
	}
	b.index[v.ID()] = len(b.vertices)
	b.vertices = append(b.vertices, v)
	return nil
}

// Connect adds e to the graph under construction. Both endpoints must already have been added.
func (b *Builder[V, E]) Connect(e E) error {
	if _, ok := b.edgeIndex[e.ID()]; ok {
		return errors.StructuralInvariantError{Reason: fmt.Sprintf("duplicate edge %s", e.ID())}
	}
	if e.SrcID() == e.DstID() {
		return errors.StructuralInvariantError{Reason: fmt.Sprintf("edge %s is a self loop on %s", e.ID(), e.SrcID())}
	}
	if _, ok := b.index[e.SrcID()]; !ok {
		return errors.StructuralInvariantError{Reason: fmt.Sprintf("edge %s references unknown source vertex %s", e.ID(), e.SrcID())}
	}
	if _, ok := b.index[e.DstID()]; !ok {
		return errors.StructuralInvariantError{Reason: fmt.Sprintf("edge %s references unknown destination vertex %s", e.ID(), e.DstID())}
	}
	b.edgeIndex[e.ID()] = len(b.edges)
	b.edges = append(b.edges, e)
	return nil
}

// Build validates the accumulated graph and returns it. The Builder must not be reused.
func (b *Builder[V, E]) Build() (*DAG[V, E], error) {
	d := &DAG[V, E]{
		vertices:  b.vertices,
		index:     b.index,
		edges:     b.edges,
		edgeIndex: b.edgeIndex,
		incoming:  make(map[string][]E, len(b.vertices)),
		outgoing:  make(map[string][]E, len(b.vertices)),
	}
	for _, e := range d.edges {
		d.incoming[e.DstID()] = append(d.incoming[e.DstID()], e)
		d.outgoing[e.SrcID()] = append(d.outgoing[e.SrcID()], e)
	}
	topo, err := d.sort()
	if err != nil {
		return nil, err
	}
	d.topo = topo
	return d, nil
}

// sort computes a topological order with Kahn's algorithm. Ties are broken by insertion
// order, so the result is deterministic.
func (d *DAG[V, E]) sort() ([]V, error) {
	inDegree := make([]int, len(d.vertices))
	for _, e := range d.edges {
		inDegree[d.index[e.DstID()]]++
	}
	ready := &readyQueue{}
	for i, deg := range inDegree {
		if deg == 0 {
			*ready = append(*ready, i)
		}
	}
	heap.Init(ready)
	order := make([]V, 0, len(d.vertices))
	for ready.Len() > 0 {
		v := d.vertices[heap.Pop(ready).(int)]
		order = append(order, v)
		for _, e := range d.outgoing[v.ID()] {
			dst := d.index[e.DstID()]
			inDegree[dst]--
			if inDegree[dst] == 0 {
				heap.Push(ready, dst)
			}
		}
	}
	if len(order) != len(d.vertices) {
		stuck := []string{}
		for i, deg := range inDegree {
			if deg > 0 {
				stuck = append(stuck, d.vertices[i].ID())
			}
		}
		return nil, errors.StructuralInvariantError{Reason: fmt.Sprintf("cycle detected involving vertices [%s]", strings.Join(stuck, ", "))}
	}
	return order, nil
}

// readyQueue is a min-heap of insertion indices of vertices with no unvisited parents
type readyQueue []int

func (q readyQueue) Len() int { return len(q) }

func (q readyQueue) Less(i, j int) bool { return q[i] < q[j] }

func (q readyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *readyQueue) Push(x interface{}) { *q = append(*q, x.(int)) }

func (q *readyQueue) Pop() interface{} {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

// Validate re-checks every structural invariant of this DAG, returning all violations found
func (d *DAG[V, E]) Validate() error {
	if d == nil {
		return errors.StructuralInvariantError{Reason: "nil DAG"}
	}
	var multierr *multierror.Error
	for i, v := range d.vertices {
		if idx, ok := d.index[v.ID()]; !ok || idx != i {
			multierr = multierror.Append(multierr, errors.StructuralInvariantError{Reason: fmt.Sprintf("vertex %s is not indexed", v.ID())})
		}
	}
	for _, e := range d.edges {
		if _, ok := d.index[e.SrcID()]; !ok {
			multierr = multierror.Append(multierr, errors.StructuralInvariantError{Reason: fmt.Sprintf("edge %s references unknown source vertex %s", e.ID(), e.SrcID())})
		}
		if _, ok := d.index[e.DstID()]; !ok {
			multierr = multierror.Append(multierr, errors.StructuralInvariantError{Reason: fmt.Sprintf("edge %s references unknown destination vertex %s", e.ID(), e.DstID())})
		}
	}
	if multierr != nil {
		return multierr.ErrorOrNil()
	}
	if _, err := d.sort(); err != nil {
		return err
	}
	return nil
}

// Size returns the number of vertices in this DAG
func (d *DAG[V, E]) Size() int {
	return len(d.vertices)
}

// Vertices returns every vertex, in insertion order
func (d *DAG[V, E]) Vertices() []V {
	return append([]V(nil), d.vertices...)
}

// Edges returns every edge, in insertion order
func (d *DAG[V, E]) Edges() []E {
	return append([]E(nil), d.edges...)
}

// Vertex returns the vertex with the given id, if it exists
func (d *DAG[V, E]) Vertex(id string) (V, bool) {
	idx, ok := d.index[id]
	if !ok {
		var zero V
		return zero, false
	}
	return d.vertices[idx], true
}

// Edge returns the edge with the given id, if it exists
func (d *DAG[V, E]) Edge(id string) (E, bool) {
	idx, ok := d.edgeIndex[id]
	if !ok {
		var zero E
		return zero, false
	}
	return d.edges[idx], true
}

// IncomingEdgesOf returns the edges ending at the vertex with the given id, in insertion order
func (d *DAG[V, E]) IncomingEdgesOf(id string) []E {
	return append([]E(nil), d.incoming[id]...)
}

// OutgoingEdgesOf returns the edges starting at the vertex with the given id, in insertion order
func (d *DAG[V, E]) OutgoingEdgesOf(id string) []E {
	return append([]E(nil), d.outgoing[id]...)
}

// Parents returns the sources of the edges ending at the vertex with the given id
func (d *DAG[V, E]) Parents(id string) []V {
	parents := []V{}
	for _, e := range d.incoming[id] {
		parents = append(parents, d.vertices[d.index[e.SrcID()]])
	}
	return parents
}

// Children returns the destinations of the edges starting at the vertex with the given id
func (d *DAG[V, E]) Children(id string) []V {
	children := []V{}
	for _, e := range d.outgoing[id] {
		children = append(children, d.vertices[d.index[e.DstID()]])
	}
	return children
}

// RootVertices returns the vertices without incoming edges, in insertion order
func (d *DAG[V, E]) RootVertices() []V {
	roots := []V{}
	for _, v := range d.vertices {
		if len(d.incoming[v.ID()]) == 0 {
			roots = append(roots, v)
		}
	}
	return roots
}

// TopologicalSort returns every vertex such that each edge's source precedes its destination
func (d *DAG[V, E]) TopologicalSort() []V {
	return append([]V(nil), d.topo...)
}
