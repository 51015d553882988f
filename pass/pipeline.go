package pass

import (
	"context"
	"fmt"

	"github.com/go-sif/sifc/errors"
	"github.com/go-sif/sifc/internal/util"
	"github.com/go-sif/sifc/ir"
	"github.com/go-sif/sifc/logging"
	"github.com/go-sif/sifc/stats"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// State is the progress of a single pass within a pipeline run
type State int

const (
	// Pending passes have not started
	Pending State = iota
	// Validating passes are having their prerequisites checked
	Validating
	// Applying passes are transforming the DAG
	Applying
	// Done passes completed successfully
	Done
	// Failed passes stopped the pipeline
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Validating:
		return "Validating"
	case Applying:
		return "Applying"
	case Done:
		return "Done"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// An Observer is notified of every state transition of every pass
type Observer func(passIdx int, passName string, state State)

// PipelineConfig configures a Pipeline
type PipelineConfig struct {
	VerifyProducts bool               // iff true, check that each pass set its product wherever it promises to
	Logger         logrus.FieldLogger // defaults to a logger which discards everything
	Observer       Observer           // optional
}

// Pipeline applies an ordered list of passes to a DAG, one at a time
type Pipeline struct {
	passes []Pass
	conf   PipelineConfig
	logger logrus.FieldLogger
}

// NewPipeline creates a Pipeline which applies passes in the given order
func NewPipeline(conf *PipelineConfig, passes ...Pass) *Pipeline {
	p := &Pipeline{passes: passes}
	if conf != nil {
		p.conf = *conf
	}
	p.logger = p.conf.Logger
	if p.logger == nil {
		p.logger = logging.Discard()
	}
	return p
}

// Passes returns the passes of this Pipeline, in application order
func (p *Pipeline) Passes() []Pass {
	return append([]Pass(nil), p.passes...)
}

// Run applies every pass to d in order. Before each pass its prerequisites are checked; the
// pipeline stops at the first pass which fails, before that pass mutates anything.
func (p *Pipeline) Run(ctx context.Context, d *ir.DAG) (*ir.DAG, error) {
	return p.RunWithStats(ctx, d, nil)
}

// RunWithStats is Run, recording pass runtimes into cs (which may be nil)
func (p *Pipeline) RunWithStats(ctx context.Context, d *ir.DAG, cs *stats.CompileStatistics) (*ir.DAG, error) {
	if cs != nil {
		cs.Start(len(p.passes))
	}
	for i := range p.passes {
		p.transition(i, Pending)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid input DAG: %w", err)
	}
	current := d
	for i, pass := range p.passes {
		if err := ctx.Err(); err != nil {
			p.transition(i, Failed)
			return nil, err
		}
		if cs != nil {
			cs.StartPass()
		}
		next, err := p.runPass(i, pass, current)
		if err != nil {
			p.transition(i, Failed)
			if multierr, ok := err.(*multierror.Error); ok {
				p.logger.WithField("pass", pass.Name()).Errorf("pass failed with %d errors:\n%s", len(multierr.Errors), util.FormatMultiError(multierr))
			} else {
				p.logger.WithField("pass", pass.Name()).WithError(err).Error("pass failed")
			}
			return nil, fmt.Errorf("pass %s: %w", pass.Name(), err)
		}
		if cs != nil {
			cs.EndPass(i, pass.Name())
		}
		p.transition(i, Done)
		current = next
	}
	return current, nil
}

func (p *Pipeline) runPass(idx int, pass Pass, d *ir.DAG) (*ir.DAG, error) {
	p.transition(idx, Validating)
	if err := CheckPrerequisites(pass, d); err != nil {
		return nil, err
	}
	p.transition(idx, Applying)
	next, err := util.SafeApply(pass.Name(), pass.Apply)(d)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return nil, errors.StructuralInvariantError{Reason: "pass returned a nil DAG"}
	}
	if next != d {
		if err := next.Validate(); err != nil {
			return nil, err
		}
	}
	if p.conf.VerifyProducts {
		if err := CheckProducts(pass, next); err != nil {
			return nil, err
		}
	}
	return next, nil
}

func (p *Pipeline) transition(idx int, state State) {
	name := p.passes[idx].Name()
	p.logger.WithFields(logrus.Fields{"pass": name, "index": idx}).Debugf("pass state: %s", state)
	if p.conf.Observer != nil {
		p.conf.Observer(idx, name, state)
	}
}

// CheckPrerequisites returns a PreconditionError for every element pass visits which lacks
// one of its prerequisites, combined into a single error
func CheckPrerequisites(pass Pass, d *ir.DAG) error {
	var multierr *multierror.Error
	for _, k := range pass.Prerequisites() {
		for _, el := range ir.Elements(d) {
			if visits(pass, el, k) && !el.Properties().Has(k) {
				multierr = multierror.Append(multierr, errors.PreconditionError{Pass: pass.Name(), Kind: k.String(), Element: el.String()})
			}
		}
	}
	return multierr.ErrorOrNil()
}

// CheckProducts returns a PostconditionError for every element on which pass promised, but
// failed, to set its product, combined into a single error
func CheckProducts(pass Pass, d *ir.DAG) error {
	var multierr *multierror.Error
	k := pass.Produces()
	for _, el := range ir.Elements(d) {
		if promises(pass, el) && !el.Properties().Has(k) {
			multierr = multierror.Append(multierr, errors.PostconditionError{Pass: pass.Name(), Kind: k.String(), Element: el.String()})
		}
	}
	return multierr.ErrorOrNil()
}
