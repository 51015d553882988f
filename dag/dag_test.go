package dag

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	cerrors "github.com/go-sif/sifc/errors"
	"github.com/stretchr/testify/require"
)

type testVertex string

func (v testVertex) ID() string { return string(v) }

type testEdge struct{ src, dst string }

func (e testEdge) ID() string    { return e.src + "->" + e.dst }
func (e testEdge) SrcID() string { return e.src }
func (e testEdge) DstID() string { return e.dst }

func buildTestDAG(t *testing.T, vertices []string, edges [][2]string) *DAG[testVertex, testEdge] {
	b := NewBuilder[testVertex, testEdge]()
	for _, v := range vertices {
		require.NoError(t, b.AddVertex(testVertex(v)))
	}
	for _, e := range edges {
		require.NoError(t, b.Connect(testEdge{e[0], e[1]}))
	}
	d, err := b.Build()
	require.NoError(t, err)
	return d
}

func ids(vs []testVertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

func TestTopologicalQueries(t *testing.T) {
	// d is inserted first but depends on everything
	d := buildTestDAG(t, []string{"d", "a", "b", "c"}, [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}})

	require.Equal(t, 4, d.Size())
	require.Equal(t, []string{"a", "b", "c", "d"}, ids(d.TopologicalSort()))
	require.Equal(t, []string{"a"}, ids(d.RootVertices()))
	require.Equal(t, []string{"b", "c"}, ids(d.Parents("d")))
	require.Equal(t, []string{"b", "c"}, ids(d.Children("a")))
	require.Len(t, d.IncomingEdgesOf("d"), 2)
	require.Len(t, d.OutgoingEdgesOf("d"), 0)
	require.Equal(t, d.IncomingEdgesOf("d"), d.IncomingEdgesOf("d"))

	v, ok := d.Vertex("c")
	require.True(t, ok)
	require.Equal(t, testVertex("c"), v)
	_, ok = d.Vertex("zzz")
	require.False(t, ok)
	require.NoError(t, d.Validate())
}

func TestQueriesReturnCopies(t *testing.T) {
	d := buildTestDAG(t, []string{"a", "b"}, [][2]string{{"a", "b"}})
	vs := d.Vertices()
	vs[0] = testVertex("mutated")
	require.Equal(t, []string{"a", "b"}, ids(d.Vertices()))
	in := d.IncomingEdgesOf("b")
	in[0] = testEdge{"x", "y"}
	require.Equal(t, "a->b", d.IncomingEdgesOf("b")[0].ID())
}

func TestBuilderRejectsMalformedGraphs(t *testing.T) {
	var structural cerrors.StructuralInvariantError

	b := NewBuilder[testVertex, testEdge]()
	require.NoError(t, b.AddVertex("a"))
	require.True(t, errors.As(b.AddVertex("a"), &structural))
	require.True(t, errors.As(b.Connect(testEdge{"a", "a"}), &structural))
	require.True(t, errors.As(b.Connect(testEdge{"a", "ghost"}), &structural))
	require.Contains(t, structural.Reason, "ghost")
	require.True(t, errors.As(b.Connect(testEdge{"ghost", "a"}), &structural))

	require.NoError(t, b.AddVertex("b"))
	require.NoError(t, b.Connect(testEdge{"a", "b"}))
	require.True(t, errors.As(b.Connect(testEdge{"a", "b"}), &structural))
}

func TestBuildDetectsCycles(t *testing.T) {
	b := NewBuilder[testVertex, testEdge]()
	for _, v := range []string{"a", "b", "c", "d"} {
		require.NoError(t, b.AddVertex(testVertex(v)))
	}
	require.NoError(t, b.Connect(testEdge{"a", "b"}))
	require.NoError(t, b.Connect(testEdge{"b", "c"}))
	require.NoError(t, b.Connect(testEdge{"c", "b"}))
	require.NoError(t, b.Connect(testEdge{"c", "d"}))
	_, err := b.Build()
	var structural cerrors.StructuralInvariantError
	require.True(t, errors.As(err, &structural))
	require.True(t, strings.Contains(structural.Reason, "b") && strings.Contains(structural.Reason, "c"))
	require.NotContains(t, structural.Reason, "a,")
}

type orderRecorder struct {
	visited []string
	seen    map[string]bool
	t       *testing.T
}

func (r *orderRecorder) VisitVertex(v testVertex, incoming []testEdge) error {
	for _, e := range incoming {
		require.True(r.t, r.seen[e.SrcID()], "source %s visited after %s", e.SrcID(), v)
	}
	r.seen[v.ID()] = true
	r.visited = append(r.visited, v.ID())
	return nil
}

func (r *orderRecorder) Result() ([]string, error) {
	return r.visited, nil
}

type failingConverter struct{ visits int }

func (f *failingConverter) VisitVertex(v testVertex, incoming []testEdge) error {
	f.visits++
	return errors.New("boom")
}

func (f *failingConverter) Result() (int, error) { return f.visits, nil }

func TestConvert(t *testing.T) {
	d := buildTestDAG(t, []string{"c", "b", "a"}, [][2]string{{"a", "b"}, {"b", "c"}})
	order, err := Convert[testVertex, testEdge, []string](d, &orderRecorder{seen: map[string]bool{}, t: t})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, order)

	f := &failingConverter{}
	_, err = Convert[testVertex, testEdge, int](d, f)
	require.EqualError(t, err, "boom")
	require.Equal(t, 1, f.visits)
}

func TestConvertRejectsNilDAG(t *testing.T) {
	var d *DAG[testVertex, testEdge]
	_, err := Convert[testVertex, testEdge, []string](d, &orderRecorder{seen: map[string]bool{}, t: t})
	var structural cerrors.StructuralInvariantError
	require.True(t, errors.As(err, &structural))
}

func TestWideDAGSortsByInsertionOrder(t *testing.T) {
	// a root fanning out to many children, each of which feeds one sink
	vertices := []string{"root"}
	edges := [][2]string{}
	for i := 0; i < 200; i++ {
		id := fmt.Sprintf("n%03d", 199-i)
		vertices = append(vertices, id)
		edges = append(edges, [2]string{"root", id}, [2]string{id, "sink"})
	}
	vertices = append(vertices, "sink")
	d := buildTestDAG(t, vertices, edges)
	require.Equal(t, vertices, ids(d.TopologicalSort()))
}
