package ir

import (
	"fmt"

	"github.com/go-sif/sifc/property"
)

// A Transform is the computation a Vertex runs. The compiler only needs its name;
// the runtime instantiates the real work from it.
type Transform interface {
	Name() string
}

// NamedTransform is a Transform identified solely by its name
type NamedTransform string

// Name returns the name of this Transform
func (t NamedTransform) Name() string { return string(t) }

// Vertex is a single computation step of an IR DAG
type Vertex struct {
	id        string
	transform Transform
	props     *property.Bag
}

// NewVertex creates a Vertex with an empty property bag. id must be unique within its DAG.
func NewVertex(id string, transform Transform) *Vertex {
	return &Vertex{
		id:        id,
		transform: transform,
		props:     property.NewBag(property.VertexTarget),
	}
}

// ID returns the ID for this Vertex
func (v *Vertex) ID() string {
	return v.id
}

// Transform returns the computation this Vertex runs
func (v *Vertex) Transform() Transform {
	return v.transform
}

// Properties returns the execution properties of this Vertex
func (v *Vertex) Properties() *property.Bag {
	return v.props
}

// SetProperty sets an execution property on this Vertex
func (v *Vertex) SetProperty(p property.Value) error {
	return v.props.Set(p)
}

// Property retrieves an execution property of this Vertex, if it has been set
func (v *Vertex) Property(k property.Kind) (property.Value, bool) {
	return v.props.Get(k)
}

// Clone returns a copy of this Vertex sharing its Transform but owning its own property bag
func (v *Vertex) Clone() *Vertex {
	return &Vertex{
		id:        v.id,
		transform: v.transform,
		props:     v.props.Clone(),
	}
}

// String returns a textual representation of this Vertex
func (v *Vertex) String() string {
	name := "<nil>"
	if v.transform != nil {
		name = v.transform.Name()
	}
	return fmt.Sprintf("vertex %s (%s)", v.id, name)
}
