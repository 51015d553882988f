package ir

import (
	"github.com/go-sif/sifc/dag"
	"github.com/go-sif/sifc/property"
)

// DAG is the logical description of a job
type DAG = dag.DAG[*Vertex, *Edge]

// Builder accumulates Vertices and Edges into a DAG
type Builder = dag.Builder[*Vertex, *Edge]

// NewBuilder creates an empty Builder for IR DAGs
func NewBuilder() *Builder {
	return dag.NewBuilder[*Vertex, *Edge]()
}

// An Element is anything in an IR DAG that carries execution properties
type Element interface {
	ID() string
	Properties() *property.Bag
	String() string
}

// Elements returns every Vertex (in topological order) followed by every Edge (in insertion order)
func Elements(d *DAG) []Element {
	elements := make([]Element, 0, d.Size()+len(d.Edges()))
	for _, v := range d.TopologicalSort() {
		elements = append(elements, v)
	}
	for _, e := range d.Edges() {
		elements = append(elements, e)
	}
	return elements
}

// Snapshot is a copy of the property bags of every element of a DAG
type Snapshot map[string]*property.Bag

func snapshotKey(el Element) string {
	return el.Properties().Target().String() + "/" + el.ID()
}

// TakeSnapshot copies the property bags of every element of d
func TakeSnapshot(d *DAG) Snapshot {
	s := make(Snapshot)
	for _, el := range Elements(d) {
		s[snapshotKey(el)] = el.Properties().Clone()
	}
	return s
}

// Equal returns true iff both Snapshots hold the same elements with the same properties
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s) != len(other) {
		return false
	}
	for k, bag := range s {
		ob, ok := other[k]
		if !ok || !bag.Equal(ob) {
			return false
		}
	}
	return true
}
