// Package annotating contains passes which set or overwrite execution properties without
// restructuring the DAG
package annotating

import (
	"github.com/go-sif/sifc/pass"
)

// Registry returns a pass.Registry containing every annotating pass
func Registry() *pass.Registry {
	r := pass.NewRegistry()
	// names are distinct constants, so registration cannot fail
	_ = r.Register(ShuffleEdgeDecoderPassName, func(pass.Options) pass.Pass {
		return NewShuffleEdgeDecoderPass()
	})
	_ = r.Register(DefaultParallelismPassName, func(opts pass.Options) pass.Pass {
		return NewDefaultParallelismPass(opts.DefaultParallelism)
	})
	return r
}

// DefaultPasses are the names of the passes applied when none are configured
var DefaultPasses = []string{DefaultParallelismPassName, ShuffleEdgeDecoderPassName}
