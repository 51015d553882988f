package errors

import (
	"fmt"
)

// PreconditionError occurs when a prerequisite execution property is missing
// on a graph element that a pass (or the plan generator) must process
type PreconditionError struct {
	Pass    string // the pass (or component) that declared the prerequisite
	Kind    string // the missing property kind
	Element string // the offending vertex or edge
}

// Error returns a textual representation of this PreconditionError
func (e PreconditionError) Error() string {
	return fmt.Sprintf("Precondition violated for %s: property %s is not set on %s", e.Pass, e.Kind, e.Element)
}

// PostconditionError occurs when a pass completes without setting the property it declares as its product
type PostconditionError struct {
	Pass    string
	Kind    string
	Element string
}

// Error returns a textual representation of this PostconditionError
func (e PostconditionError) Error() string {
	return fmt.Sprintf("Pass %s promised property %s but it is not set on %s", e.Pass, e.Kind, e.Element)
}

// PropertyDomainError occurs when a property value outside its kind's declared domain is written
type PropertyDomainError struct {
	Kind   string
	Value  string
	Reason string
}

// Error returns a textual representation of this PropertyDomainError
func (e PropertyDomainError) Error() string {
	return fmt.Sprintf("Value %s is outside the domain of property %s: %s", e.Value, e.Kind, e.Reason)
}

// StructuralInvariantError occurs when a DAG is cyclic, references vertices it does not own,
// or cannot be partitioned into stages. It indicates an internal failure rather than bad input.
type StructuralInvariantError struct{ Reason string }

// Error returns a textual representation of this StructuralInvariantError
func (e StructuralInvariantError) Error() string {
	return fmt.Sprintf("Structural invariant violated: %s", e.Reason)
}

// LoweringConflictError occurs when several IR edges collapse onto one stage edge with
// different values for the same property, and strict merging is enabled
type LoweringConflictError struct {
	StageEdge string
	Kind      string
	Previous  string
	Next      string
}

// Error returns a textual representation of this LoweringConflictError
func (e LoweringConflictError) Error() string {
	return fmt.Sprintf("Conflicting values for property %s on stage edge %s: %s and %s", e.Kind, e.StageEdge, e.Previous, e.Next)
}
