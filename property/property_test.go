package property

import (
	"errors"
	"testing"

	cerrors "github.com/go-sif/sifc/errors"
	"github.com/stretchr/testify/require"
)

func TestAbsentIsNotZero(t *testing.T) {
	bag := NewBag(EdgeTarget)
	_, ok := bag.Get(CommunicationPatternKind)
	require.False(t, ok)
	require.False(t, bag.Has(DecoderKind))
	cp, ok := ValueOf[CommunicationPattern](bag)
	require.False(t, ok)
	require.Equal(t, CommunicationPattern(0), cp)
}

func TestSetOverwrites(t *testing.T) {
	bag := NewBag(EdgeTarget)
	require.NoError(t, bag.Set(Decoder{Format: "avro"}))
	require.NoError(t, bag.Set(BytesDecoder))
	d, ok := ValueOf[Decoder](bag)
	require.True(t, ok)
	require.Equal(t, BytesDecoder, d)
	require.Equal(t, 1, bag.Len())
}

func TestOutOfDomainValuesAreRejected(t *testing.T) {
	bag := NewBag(EdgeTarget)
	require.NoError(t, bag.Set(OneToOne))

	cases := []Value{
		CommunicationPattern(42),
		Partitioner(0),
		Decoder{},
		Encoder{},
	}
	for _, v := range cases {
		err := bag.Set(v)
		var domainErr cerrors.PropertyDomainError
		require.True(t, errors.As(err, &domainErr), "expected a domain error for %s", v)
		require.Equal(t, v.Kind().String(), domainErr.Kind)
	}
	// the rejected CommunicationPattern did not clobber the valid one
	cp, ok := ValueOf[CommunicationPattern](bag)
	require.True(t, ok)
	require.Equal(t, OneToOne, cp)
}

func TestKindTargetIsEnforced(t *testing.T) {
	edgeBag := NewBag(EdgeTarget)
	require.Error(t, edgeBag.Set(Parallelism(4)))
	vertexBag := NewBag(VertexTarget)
	require.Error(t, vertexBag.Set(Shuffle))
	require.Error(t, vertexBag.Set(Parallelism(0)))
	require.NoError(t, vertexBag.Set(Parallelism(4)))
	require.Error(t, vertexBag.Set(nil))
}

func TestMustSetPanicsOnDomainViolation(t *testing.T) {
	bag := NewBag(EdgeTarget)
	require.Panics(t, func() { bag.MustSet(CommunicationPattern(-1)) })
	require.NotPanics(t, func() { bag.MustSet(Broadcast) })
}

func TestCloneAndEqual(t *testing.T) {
	bag := NewBag(EdgeTarget)
	bag.MustSet(Shuffle)
	bag.MustSet(HashPartitioner)
	clone := bag.Clone()
	require.True(t, bag.Equal(clone))
	clone.MustSet(RangePartitioner)
	require.False(t, bag.Equal(clone))
	p, _ := ValueOf[Partitioner](bag)
	require.Equal(t, HashPartitioner, p)
	require.Equal(t, []Kind{CommunicationPatternKind, PartitionerKind}, bag.Kinds())
	require.Equal(t, "{Shuffle, Hash}", bag.String())
}
