// Package idgen issues identifiers for physical plans, stages and tasks
package idgen

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/gofrs/uuid"
)

// Namespace is an independent identifier sequence
type Namespace int

const (
	// PlanNamespace identifies physical plans
	PlanNamespace Namespace = iota
	// StageNamespace identifies physical stages
	StageNamespace
	// TaskNamespace identifies physical tasks
	TaskNamespace
)

var prefixes = [...]string{
	PlanNamespace:  "Plan",
	StageNamespace: "Stage",
	TaskNamespace:  "Task",
}

// String returns the prefix of identifiers in this Namespace
func (n Namespace) String() string {
	if n < 0 || int(n) >= len(prefixes) {
		return fmt.Sprintf("Namespace(%d)", int(n))
	}
	return prefixes[n]
}

// Generator issues identifiers which are never repeated within a Namespace, even under
// concurrent use. Each Generator draws a random session tag, so identifiers from two
// Generators in the same process do not collide either.
type Generator struct {
	session  string
	counters [len(prefixes)]atomic.Uint64
}

// New creates a Generator with a fresh session tag
func New() *Generator {
	id, err := uuid.NewV4()
	if err != nil {
		panic(fmt.Errorf("unable to generate identity session: %w", err))
	}
	return NewWithSession(strings.SplitN(id.String(), "-", 2)[0])
}

// NewWithSession creates a Generator with a fixed session tag
func NewWithSession(session string) *Generator {
	return &Generator{session: session}
}

// Session returns the session tag embedded in every identifier of this Generator
func (g *Generator) Session() string {
	return g.session
}

// Next returns a new identifier in the given Namespace
func (g *Generator) Next(ns Namespace) string {
	if ns < 0 || int(ns) >= len(prefixes) {
		panic(fmt.Sprintf("unknown identity namespace %d", int(ns)))
	}
	n := g.counters[ns].Add(1) - 1
	return fmt.Sprintf("%s-%s-%d", prefixes[ns], g.session, n)
}

// PlanID returns a new physical plan identifier
func (g *Generator) PlanID() string {
	return g.Next(PlanNamespace)
}

// StageID returns a new physical stage identifier
func (g *Generator) StageID() string {
	return g.Next(StageNamespace)
}

// TaskID returns a new physical task identifier
func (g *Generator) TaskID() string {
	return g.Next(TaskNamespace)
}
