// Package pass defines compile-time passes over IR DAGs and the pipeline which runs them.
//
// A Pass declares the property it produces and the properties it requires. A Pipeline
// refuses to apply a pass whose prerequisites are missing on any element it visits, and can
// verify that the pass really did produce what it declares.
package pass

import (
	"github.com/go-sif/sifc/ir"
	"github.com/go-sif/sifc/property"
)

// A Pass transforms an IR DAG. Apply may mutate property bags in place and return the same
// DAG, or return a new one; either way the result must be a well-formed DAG. A Pass must not
// assume any pipeline ordering beyond its declared prerequisites.
type Pass interface {
	Name() string                     // Name returns the pass name for logging and debugging
	Produces() property.Kind          // Produces returns the property kind this pass guarantees on completion
	Prerequisites() []property.Kind   // Prerequisites returns the property kinds which must already be set
	Apply(d *ir.DAG) (*ir.DAG, error) // Apply runs the pass
}

// Scoped is implemented by passes which visit only some of the elements of a DAG.
// Prerequisites are only checked on visited elements.
type Scoped interface {
	Visits(el ir.Element) bool
}

// Promising is implemented by passes which produce their property on only some of the
// elements of a DAG. It is evaluated after the pass has been applied.
type Promising interface {
	Promises(el ir.Element) bool
}

// AnnotatingPass is embedded by passes which set or overwrite properties without restructuring the DAG
type AnnotatingPass struct {
	name          string
	produces      property.Kind
	prerequisites []property.Kind
}

// NewAnnotatingPass creates the declarations of an annotating pass
func NewAnnotatingPass(name string, produces property.Kind, prerequisites ...property.Kind) AnnotatingPass {
	return AnnotatingPass{
		name:          name,
		produces:      produces,
		prerequisites: prerequisites,
	}
}

// Name returns the pass name
func (p AnnotatingPass) Name() string {
	return p.name
}

// Produces returns the property kind this pass guarantees on completion
func (p AnnotatingPass) Produces() property.Kind {
	return p.produces
}

// Prerequisites returns the property kinds which must already be set
func (p AnnotatingPass) Prerequisites() []property.Kind {
	return append([]property.Kind(nil), p.prerequisites...)
}

func visits(p Pass, el ir.Element, k property.Kind) bool {
	if el.Properties().Target() != k.Target() {
		return false
	}
	if s, ok := p.(Scoped); ok {
		return s.Visits(el)
	}
	return true
}

func promises(p Pass, el ir.Element) bool {
	if el.Properties().Target() != p.Produces().Target() {
		return false
	}
	if s, ok := p.(Promising); ok {
		return s.Promises(el)
	}
	return true
}
