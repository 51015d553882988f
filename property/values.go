package property

import (
	"fmt"

	"github.com/go-sif/sifc/errors"
)

// A Value is a typed execution property. Every concrete Value type belongs to exactly one Kind.
type Value interface {
	Kind() Kind      // Kind returns the property kind this value belongs to
	Validate() error // Validate returns a PropertyDomainError iff the value is outside its kind's domain
	String() string
}

func domainError(v Value, reason string) error {
	return errors.PropertyDomainError{Kind: v.Kind().String(), Value: v.String(), Reason: reason}
}

// CommunicationPattern is the data-movement discipline of an edge
type CommunicationPattern int

const (
	// OneToOne sends each partition of the source to the matching partition of the destination
	OneToOne CommunicationPattern = iota + 1
	// Broadcast sends every partition of the source to every partition of the destination
	Broadcast
	// Shuffle redistributes data among destination partitions, forcing a stage boundary
	Shuffle
)

// Kind returns CommunicationPatternKind
func (CommunicationPattern) Kind() Kind { return CommunicationPatternKind }

// Validate ensures this CommunicationPattern is one of the declared patterns
func (c CommunicationPattern) Validate() error {
	if c < OneToOne || c > Shuffle {
		return domainError(c, "unknown communication pattern")
	}
	return nil
}

func (c CommunicationPattern) String() string {
	switch c {
	case OneToOne:
		return "OneToOne"
	case Broadcast:
		return "Broadcast"
	case Shuffle:
		return "Shuffle"
	default:
		return fmt.Sprintf("CommunicationPattern(%d)", int(c))
	}
}

// Encoder describes the serializer used on the sending side of an edge
type Encoder struct {
	Format string
}

// Kind returns EncoderKind
func (Encoder) Kind() Kind { return EncoderKind }

// Validate ensures this Encoder names a format
func (e Encoder) Validate() error {
	if e.Format == "" {
		return domainError(e, "encoder format must be named")
	}
	return nil
}

func (e Encoder) String() string { return "Encoder(" + e.Format + ")" }

// Decoder describes the deserializer used on the receiving side of an edge
type Decoder struct {
	Format string
}

// BytesDecoder reads data as raw byte sequences, deferring structured deserialization
var BytesDecoder = Decoder{Format: "bytes"}

// Kind returns DecoderKind
func (Decoder) Kind() Kind { return DecoderKind }

// Validate ensures this Decoder names a format
func (d Decoder) Validate() error {
	if d.Format == "" {
		return domainError(d, "decoder format must be named")
	}
	return nil
}

func (d Decoder) String() string { return "Decoder(" + d.Format + ")" }

// Partitioner describes how the records crossing an edge are distributed among receivers
type Partitioner int

const (
	// HashPartitioner assigns records by the hash of their key
	HashPartitioner Partitioner = iota + 1
	// RangePartitioner assigns records by sorted key ranges
	RangePartitioner
	// IntactPartitioner keeps source partitions as they are
	IntactPartitioner
)

// Kind returns PartitionerKind
func (Partitioner) Kind() Kind { return PartitionerKind }

// Validate ensures this Partitioner is one of the declared partitioners
func (p Partitioner) Validate() error {
	if p < HashPartitioner || p > IntactPartitioner {
		return domainError(p, "unknown partitioner")
	}
	return nil
}

func (p Partitioner) String() string {
	switch p {
	case HashPartitioner:
		return "Hash"
	case RangePartitioner:
		return "Range"
	case IntactPartitioner:
		return "Intact"
	default:
		return fmt.Sprintf("Partitioner(%d)", int(p))
	}
}

// Parallelism is the number of parallel instances of a vertex
type Parallelism int

// Kind returns ParallelismKind
func (Parallelism) Kind() Kind { return ParallelismKind }

// Validate ensures this Parallelism is positive
func (p Parallelism) Validate() error {
	if p < 1 {
		return domainError(p, "parallelism must be positive")
	}
	return nil
}

func (p Parallelism) String() string { return fmt.Sprintf("Parallelism(%d)", int(p)) }
