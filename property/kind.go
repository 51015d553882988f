package property

import "fmt"

// Target describes which kind of graph element a property may be attached to
type Target int

const (
	// VertexTarget properties annotate vertices
	VertexTarget Target = iota
	// EdgeTarget properties annotate edges
	EdgeTarget
)

// String returns a textual representation of this Target
func (t Target) String() string {
	switch t {
	case VertexTarget:
		return "vertex"
	case EdgeTarget:
		return "edge"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

// Kind identifies an execution property. Each Kind has exactly one value type.
type Kind int

const (
	// CommunicationPatternKind describes how data moves across an edge
	CommunicationPatternKind Kind = iota + 1
	// EncoderKind describes how data is serialized on the sending side of an edge
	EncoderKind
	// DecoderKind describes how data is deserialized on the receiving side of an edge
	DecoderKind
	// PartitionerKind describes how data is distributed among receivers of an edge
	PartitionerKind
	// ParallelismKind describes how many parallel instances of a vertex execute
	ParallelismKind
)

var kindNames = map[Kind]string{
	CommunicationPatternKind: "CommunicationPattern",
	EncoderKind:              "Encoder",
	DecoderKind:              "Decoder",
	PartitionerKind:          "Partitioner",
	ParallelismKind:          "Parallelism",
}

var kindTargets = map[Kind]Target{
	CommunicationPatternKind: EdgeTarget,
	EncoderKind:              EdgeTarget,
	DecoderKind:              EdgeTarget,
	PartitionerKind:          EdgeTarget,
	ParallelismKind:          VertexTarget,
}

// String returns the name of this Kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Target returns the element type this Kind annotates
func (k Kind) Target() Target {
	return kindTargets[k]
}

// Known returns true iff k is a declared Kind
func (k Kind) Known() bool {
	_, ok := kindNames[k]
	return ok
}

// StageEdgeKinds are the edge kinds carried from IR edges onto physical stage edges
var StageEdgeKinds = []Kind{CommunicationPatternKind, EncoderKind, DecoderKind, PartitionerKind}
