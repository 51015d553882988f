package sifc

import (
	"context"
	"fmt"

	"github.com/go-sif/sifc/idgen"
	"github.com/go-sif/sifc/ir"
	"github.com/go-sif/sifc/logging"
	"github.com/go-sif/sifc/pass"
	"github.com/go-sif/sifc/pass/annotating"
	"github.com/go-sif/sifc/physical"
	"github.com/go-sif/sifc/stats"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Compiler turns IR DAGs into physical plans. A Compiler holds no per-job state, so one
// Compiler may compile many independent jobs concurrently.
type Compiler struct {
	conf      *Config
	pipeline  *pass.Pipeline
	generator *physical.Generator
	logger    logrus.FieldLogger
}

func passOptions(conf *Config) pass.Options {
	return pass.Options{DefaultParallelism: conf.DefaultParallelism}
}

// New creates a Compiler which applies the configured passes. A nil conf uses DefaultConfig.
// ids is shared by every compilation of this Compiler, and may be shared with other Compilers.
func New(conf *Config, ids *idgen.Generator) (*Compiler, error) {
	if conf == nil {
		conf = DefaultConfig()
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	passes, err := annotating.Registry().Resolve(conf.Passes, passOptions(conf))
	if err != nil {
		return nil, err
	}
	return NewWithPasses(conf, ids, passes...), nil
}

// NewWithPasses creates a Compiler which applies the given passes, ignoring conf.Passes
func NewWithPasses(conf *Config, ids *idgen.Generator, passes ...pass.Pass) *Compiler {
	if conf == nil {
		conf = DefaultConfig()
	}
	if ids == nil {
		ids = idgen.New()
	}
	logger := logging.NewLogger(logging.ParseLevel(conf.LogLevel))
	return &Compiler{
		conf: conf,
		pipeline: pass.NewPipeline(&pass.PipelineConfig{
			VerifyProducts: conf.VerifyProducts,
			Logger:         logger,
		}, passes...),
		generator: physical.NewGenerator(ids, &physical.GeneratorConfig{
			StrictStageEdgeMerge: conf.StrictStageEdgeMerge,
			Logger:               logger,
		}),
		logger: logger,
	}
}

// Passes returns the passes this Compiler applies, in order
func (c *Compiler) Passes() []pass.Pass {
	return c.pipeline.Passes()
}

// Optimize applies the pass pipeline to d without lowering it
func (c *Compiler) Optimize(ctx context.Context, d *ir.DAG) (*ir.DAG, error) {
	return c.pipeline.Run(ctx, d)
}

// Compile optimizes d and lowers it into a Plan. No Plan is returned on failure.
func (c *Compiler) Compile(ctx context.Context, d *ir.DAG) (*physical.Plan, error) {
	plan, _, err := c.CompileWithStats(ctx, d)
	return plan, err
}

// CompileWithStats is Compile, also returning timing statistics for the compilation
func (c *Compiler) CompileWithStats(ctx context.Context, d *ir.DAG) (*physical.Plan, CompilationStatistics, error) {
	cs := &stats.CompileStatistics{}
	defer cs.Finish()
	optimized, err := c.pipeline.RunWithStats(ctx, d, cs)
	if err != nil {
		return nil, cs, err
	}
	if err := ctx.Err(); err != nil {
		return nil, cs, err
	}
	cs.StartLowering()
	plan, err := c.generator.Generate(optimized)
	cs.EndLowering()
	if err != nil {
		return nil, cs, fmt.Errorf("unable to generate physical plan: %w", err)
	}
	c.logger.WithField("plan", plan.ID()).Infof("compiled %d vertices into %d stages", optimized.Size(), plan.Size())
	return plan, cs, nil
}

// CompileAll compiles independent jobs concurrently, at most MaxConcurrentCompilations at
// a time. Plans are returned in the order of dags. Each job must own its DAG, since passes
// annotate it in place: a DAG listed twice is rejected before anything is compiled. If any
// compilation fails, the first error is returned and no Plans are.
func (c *Compiler) CompileAll(ctx context.Context, dags []*ir.DAG) ([]*physical.Plan, error) {
	owners := make(map[*ir.DAG]int, len(dags))
	for i, d := range dags {
		if d == nil {
			continue
		}
		if first, ok := owners[d]; ok {
			return nil, fmt.Errorf("jobs %d and %d share the same DAG", first, i)
		}
		owners[d] = i
	}
	plans := make([]*physical.Plan, len(dags))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.conf.MaxConcurrentCompilations)
	for i, d := range dags {
		i, d := i, d
		g.Go(func() error {
			plan, err := c.Compile(gctx, d)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			plans[i] = plan
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}
