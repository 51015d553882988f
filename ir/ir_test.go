package ir_test

import (
	"testing"

	"github.com/go-sif/sifc/ir"
	"github.com/go-sif/sifc/property"
	siftest "github.com/go-sif/sifc/testing"
	"github.com/stretchr/testify/require"
)

func TestEdgesReferenceVerticesByID(t *testing.T) {
	a := ir.NewVertex("a", ir.NamedTransform("read"))
	b := ir.NewVertex("b", ir.NamedTransform("map"))
	e := ir.NewEdge("a->b", a, b)
	require.Equal(t, "a", e.SrcID())
	require.Equal(t, "b", e.DstID())

	builder := ir.NewBuilder()
	require.NoError(t, builder.AddVertex(a))
	require.Error(t, builder.Connect(e)) // b is not part of this graph
	require.NoError(t, builder.AddVertex(b))
	require.NoError(t, builder.Connect(e))
	d, err := builder.Build()
	require.NoError(t, err)

	src, ok := d.Vertex(e.SrcID())
	require.True(t, ok)
	require.Same(t, a, src)
	require.Equal(t, "read", src.Transform().Name())
}

func TestPropertyAccessors(t *testing.T) {
	v := ir.NewVertex("v", ir.NamedTransform("map"))
	require.NoError(t, v.SetProperty(property.Parallelism(3)))
	require.Error(t, v.SetProperty(property.Shuffle))
	p, ok := v.Property(property.ParallelismKind)
	require.True(t, ok)
	require.Equal(t, property.Parallelism(3), p)

	e := ir.NewEdge("e", v, ir.NewVertex("w", nil))
	_, ok = e.CommunicationPattern()
	require.False(t, ok)
	require.NoError(t, e.SetProperty(property.Broadcast))
	cp, ok := e.CommunicationPattern()
	require.True(t, ok)
	require.Equal(t, property.Broadcast, cp)
	require.Equal(t, "edge e (v -> w)", e.String())
}

func TestSnapshotDetectsPropertyChanges(t *testing.T) {
	d, err := siftest.Chain(property.OneToOne, property.Shuffle)
	require.NoError(t, err)
	require.Len(t, ir.Elements(d), 5)

	before := ir.TakeSnapshot(d)
	require.True(t, before.Equal(ir.TakeSnapshot(d)))

	e, ok := d.Edge(siftest.EdgeID("V1", "V2"))
	require.True(t, ok)
	require.NoError(t, e.SetProperty(property.BytesDecoder))
	require.False(t, before.Equal(ir.TakeSnapshot(d)))
}

func TestVertexCloneOwnsItsProperties(t *testing.T) {
	v := ir.NewVertex("v", ir.NamedTransform("map"))
	require.NoError(t, v.SetProperty(property.Parallelism(2)))
	c := v.Clone()
	require.NotSame(t, v, c)
	require.Equal(t, v.ID(), c.ID())
	require.Equal(t, v.Transform(), c.Transform())
	require.True(t, v.Properties().Equal(c.Properties()))

	require.NoError(t, v.SetProperty(property.Parallelism(8)))
	p, _ := property.ValueOf[property.Parallelism](c.Properties())
	require.Equal(t, property.Parallelism(2), p)
}
