package dag

import "github.com/go-sif/sifc/errors"

// A Converter folds a DAG into another representation. VisitVertex is called exactly
// once per vertex, in topological order, with the vertex's incoming edges; every source
// of those edges has therefore already been visited.
type Converter[V Vertex, E Edge, R any] interface {
	VisitVertex(v V, incoming []E) error
	Result() (R, error)
}

// Convert traverses d once with c and returns the structure c builds
func Convert[V Vertex, E Edge, R any](d *DAG[V, E], c Converter[V, E, R]) (R, error) {
	if d == nil {
		var zero R
		return zero, errors.StructuralInvariantError{Reason: "nil DAG"}
	}
	for _, v := range d.topo {
		if err := c.VisitVertex(v, d.IncomingEdgesOf(v.ID())); err != nil {
			var zero R
			return zero, err
		}
	}
	return c.Result()
}
