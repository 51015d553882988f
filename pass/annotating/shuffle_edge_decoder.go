package annotating

import (
	"github.com/go-sif/sifc/ir"
	"github.com/go-sif/sifc/pass"
	"github.com/go-sif/sifc/property"
)

// ShuffleEdgeDecoderPassName is the registered name of ShuffleEdgeDecoderPass
const ShuffleEdgeDecoderPassName = "shuffle-edge-decoder"

// ShuffleEdgeDecoderPass makes shuffle edges read data as raw bytes, so that records are
// only deserialized once they have been redistributed
type ShuffleEdgeDecoderPass struct {
	pass.AnnotatingPass
}

// NewShuffleEdgeDecoderPass creates a ShuffleEdgeDecoderPass
func NewShuffleEdgeDecoderPass() *ShuffleEdgeDecoderPass {
	return &ShuffleEdgeDecoderPass{
		AnnotatingPass: pass.NewAnnotatingPass(ShuffleEdgeDecoderPassName, property.DecoderKind, property.CommunicationPatternKind),
	}
}

// Apply overwrites the decoder of every shuffle edge with the bytes decoder. Other edges are untouched.
func (p *ShuffleEdgeDecoderPass) Apply(d *ir.DAG) (*ir.DAG, error) {
	for _, v := range d.Vertices() {
		for _, e := range d.IncomingEdgesOf(v.ID()) {
			cp, _ := e.CommunicationPattern()
			if cp == property.Shuffle {
				if err := e.SetProperty(property.BytesDecoder); err != nil {
					return nil, err
				}
			}
		}
	}
	return d, nil
}

// Promises returns true for shuffle edges
func (p *ShuffleEdgeDecoderPass) Promises(el ir.Element) bool {
	e, ok := el.(*ir.Edge)
	if !ok {
		return false
	}
	cp, _ := e.CommunicationPattern()
	return cp == property.Shuffle
}
