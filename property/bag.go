package property

import (
	"sort"
	"strings"

	"github.com/go-sif/sifc/errors"
)

// A Bag holds the execution properties of a single vertex or edge. Each Kind appears at most once.
type Bag struct {
	target Target
	values map[Kind]Value
}

// NewBag creates an empty Bag for elements of the given Target
func NewBag(target Target) *Bag {
	return &Bag{
		target: target,
		values: make(map[Kind]Value),
	}
}

// Target returns the element type this Bag annotates
func (b *Bag) Target() Target {
	return b.target
}

// Set stores v, overwriting any existing value of the same Kind. Values outside their
// kind's domain, and kinds meant for another element type, are rejected without modifying the Bag.
func (b *Bag) Set(v Value) error {
	if v == nil {
		return errors.PropertyDomainError{Kind: "<nil>", Value: "<nil>", Reason: "property value is nil"}
	}
	k := v.Kind()
	if !k.Known() {
		return errors.PropertyDomainError{Kind: k.String(), Value: v.String(), Reason: "undeclared property kind"}
	}
	if k.Target() != b.target {
		return errors.PropertyDomainError{Kind: k.String(), Value: v.String(), Reason: "property annotates " + k.Target().String() + "s, not " + b.target.String() + "s"}
	}
	if err := v.Validate(); err != nil {
		return err
	}
	b.values[k] = v
	return nil
}

// MustSet is Set, panicking on a domain violation
func (b *Bag) MustSet(v Value) {
	if err := b.Set(v); err != nil {
		panic(err)
	}
}

// Get returns the value for k, and false if it has never been set
func (b *Bag) Get(k Kind) (Value, bool) {
	v, ok := b.values[k]
	return v, ok
}

// Has returns true iff a value for k has been set
func (b *Bag) Has(k Kind) bool {
	_, ok := b.values[k]
	return ok
}

// Kinds returns the set kinds, in declaration order
func (b *Bag) Kinds() []Kind {
	kinds := make([]Kind, 0, len(b.values))
	for k := range b.values {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Len returns the number of set properties
func (b *Bag) Len() int {
	return len(b.values)
}

// Clone returns an independent copy of this Bag
func (b *Bag) Clone() *Bag {
	c := NewBag(b.target)
	for k, v := range b.values {
		c.values[k] = v
	}
	return c
}

// Equal returns true iff both Bags hold the same values
func (b *Bag) Equal(other *Bag) bool {
	if other == nil || b.target != other.target || len(b.values) != len(other.values) {
		return false
	}
	for k, v := range b.values {
		ov, ok := other.values[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// String returns a textual representation of this Bag
func (b *Bag) String() string {
	parts := make([]string, 0, len(b.values))
	for _, k := range b.Kinds() {
		parts = append(parts, b.values[k].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ValueOf returns the value of type T held by b, and false if it has never been set
func ValueOf[T Value](b *Bag) (T, bool) {
	var zero T
	v, ok := b.values[zero.Kind()]
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}
