package ir

import (
	"fmt"

	"github.com/go-sif/sifc/property"
)

// Edge is a directed data-movement connection between two Vertices. It refers to its
// endpoints by id; the DAG owns the Vertices themselves.
type Edge struct {
	id    string
	src   string
	dst   string
	props *property.Bag
}

// NewEdge creates an Edge from src to dst with an empty property bag
func NewEdge(id string, src, dst *Vertex) *Edge {
	return &Edge{
		id:    id,
		src:   src.ID(),
		dst:   dst.ID(),
		props: property.NewBag(property.EdgeTarget),
	}
}

// ID returns the ID for this Edge
func (e *Edge) ID() string {
	return e.id
}

// SrcID returns the ID of the source Vertex
func (e *Edge) SrcID() string {
	return e.src
}

// DstID returns the ID of the destination Vertex
func (e *Edge) DstID() string {
	return e.dst
}

// Properties returns the execution properties of this Edge
func (e *Edge) Properties() *property.Bag {
	return e.props
}

// SetProperty sets an execution property on this Edge
func (e *Edge) SetProperty(p property.Value) error {
	return e.props.Set(p)
}

// Property retrieves an execution property of this Edge, if it has been set
func (e *Edge) Property(k property.Kind) (property.Value, bool) {
	return e.props.Get(k)
}

// CommunicationPattern retrieves the communication pattern of this Edge, if it has been set
func (e *Edge) CommunicationPattern() (property.CommunicationPattern, bool) {
	return property.ValueOf[property.CommunicationPattern](e.props)
}

// String returns a textual representation of this Edge
func (e *Edge) String() string {
	return fmt.Sprintf("edge %s (%s -> %s)", e.id, e.src, e.dst)
}
