package annotating

import (
	"github.com/go-sif/sifc/ir"
	"github.com/go-sif/sifc/pass"
	"github.com/go-sif/sifc/property"
)

// DefaultParallelismPassName is the registered name of DefaultParallelismPass
const DefaultParallelismPassName = "default-parallelism"

// DefaultParallelismPass assigns a parallelism to every vertex which has none
type DefaultParallelismPass struct {
	pass.AnnotatingPass
	parallelism property.Parallelism
}

// NewDefaultParallelismPass creates a DefaultParallelismPass assigning the given parallelism.
// Non-positive values fall back to 1.
func NewDefaultParallelismPass(parallelism int) *DefaultParallelismPass {
	if parallelism < 1 {
		parallelism = 1
	}
	return &DefaultParallelismPass{
		AnnotatingPass: pass.NewAnnotatingPass(DefaultParallelismPassName, property.ParallelismKind),
		parallelism:    property.Parallelism(parallelism),
	}
}

// Apply sets the default parallelism on vertices without one
func (p *DefaultParallelismPass) Apply(d *ir.DAG) (*ir.DAG, error) {
	for _, v := range d.TopologicalSort() {
		if v.Properties().Has(property.ParallelismKind) {
			continue
		}
		if err := v.SetProperty(p.parallelism); err != nil {
			return nil, err
		}
	}
	return d, nil
}
