// Package physical lowers annotated IR DAGs into physical plans of stages.
//
// IR vertices connected by non-shuffle edges are grouped into the same Stage; every shuffle
// edge crosses a stage boundary and is carried onto a StageEdge between the two Stages.
package physical

import (
	"fmt"

	"github.com/go-sif/sifc/dag"
	"github.com/go-sif/sifc/errors"
	"github.com/go-sif/sifc/idgen"
	"github.com/go-sif/sifc/internal/unionfind"
	"github.com/go-sif/sifc/ir"
	"github.com/go-sif/sifc/logging"
	"github.com/go-sif/sifc/property"
	"github.com/sirupsen/logrus"
)

// GeneratorName identifies the plan generator in precondition errors
const GeneratorName = "physical-plan-generator"

// GeneratorConfig configures a Generator
type GeneratorConfig struct {
	// StrictStageEdgeMerge fails generation when IR edges merged onto one StageEdge disagree on a
	// property. Otherwise the last IR edge (in topological order of destinations) wins.
	StrictStageEdgeMerge bool
	Logger               logrus.FieldLogger
}

// Generator lowers IR DAGs into Plans. A Generator may be shared by concurrent compilations.
type Generator struct {
	ids    *idgen.Generator
	strict bool
	logger logrus.FieldLogger
}

// NewGenerator creates a Generator drawing identities from ids
func NewGenerator(ids *idgen.Generator, conf *GeneratorConfig) *Generator {
	g := &Generator{ids: ids}
	if conf != nil {
		g.strict = conf.StrictStageEdgeMerge
		g.logger = conf.Logger
	}
	if g.logger == nil {
		g.logger = logging.Discard()
	}
	return g
}

// Generate lowers an annotated IR DAG into a Plan. Every edge must have a CommunicationPattern.
// The Plan holds copies of the IR vertices, so later changes to d do not reach it.
func (g *Generator) Generate(d *ir.DAG) (*Plan, error) {
	plan, err := dag.Convert[*ir.Vertex, *ir.Edge, *Plan](d, g.newPlanBuilder())
	if err != nil {
		return nil, err
	}
	g.logger.WithField("plan", plan.ID()).Debugf("generated physical plan with %d stages", plan.Size())
	return plan, nil
}

// planBuilder is the dag.Converter which performs a single lowering
type planBuilder struct {
	g      *Generator
	groups *unionfind.UnionFind
	order  []*ir.Vertex
	edges  []*ir.Edge
}

func (g *Generator) newPlanBuilder() *planBuilder {
	return &planBuilder{
		g:      g,
		groups: unionfind.New(),
	}
}

// VisitVertex merges v into the group of every parent it is connected to without a shuffle
func (b *planBuilder) VisitVertex(v *ir.Vertex, incoming []*ir.Edge) error {
	b.groups.Add(v.ID())
	b.order = append(b.order, v)
	for _, e := range incoming {
		cp, ok := e.CommunicationPattern()
		if !ok {
			return errors.PreconditionError{Pass: GeneratorName, Kind: property.CommunicationPatternKind.String(), Element: e.String()}
		}
		b.edges = append(b.edges, e)
		if cp != property.Shuffle {
			b.groups.Union(e.SrcID(), v.ID())
		}
	}
	return nil
}

// Result materializes the groups as Stages and the boundary-crossing edges as StageEdges
func (b *planBuilder) Result() (*Plan, error) {
	stages := []*Stage{}
	byGroup := make(map[string]*Stage)
	vertexStages := make(map[string]*Stage, len(b.order))
	for _, orig := range b.order {
		v := orig.Clone()
		group, ok := b.groups.Find(v.ID())
		if !ok {
			return nil, errors.StructuralInvariantError{Reason: fmt.Sprintf("%s was not assigned to any stage", v)}
		}
		s, ok := byGroup[group]
		if !ok {
			s = &Stage{id: b.g.ids.StageID(), parallelism: 1}
			byGroup[group] = s
			stages = append(stages, s)
		}
		s.vertices = append(s.vertices, v)
		if p, ok := property.ValueOf[property.Parallelism](v.Properties()); ok && int(p) > s.parallelism {
			s.parallelism = int(p)
		}
		vertexStages[v.ID()] = s
	}

	taskVertices := make(map[string]*ir.Vertex, len(b.order))
	for _, s := range stages {
		for _, v := range s.vertices {
			task := &Task{ID: b.g.ids.TaskID(), StageID: s.id, VertexID: v.ID()}
			s.tasks = append(s.tasks, task)
			taskVertices[task.ID] = v
		}
	}

	stageEdges := []*StageEdge{}
	byPair := make(map[[2]string]*StageEdge)
	for _, e := range b.edges {
		src, srcOK := vertexStages[e.SrcID()]
		dst, dstOK := vertexStages[e.DstID()]
		if !srcOK || !dstOK {
			return nil, errors.StructuralInvariantError{Reason: fmt.Sprintf("%s connects vertices without a stage", e)}
		}
		if b.groups.Same(e.SrcID(), e.DstID()) {
			if cp, _ := e.CommunicationPattern(); cp == property.Shuffle {
				return nil, errors.StructuralInvariantError{Reason: fmt.Sprintf("shuffle %s lies inside %s", e, src)}
			}
			continue
		}
		pair := [2]string{src.id, dst.id}
		se, ok := byPair[pair]
		if !ok {
			se = &StageEdge{
				id:    src.id + "->" + dst.id,
				src:   src.id,
				dst:   dst.id,
				props: property.NewBag(property.EdgeTarget),
			}
			byPair[pair] = se
			stageEdges = append(stageEdges, se)
		}
		if err := b.merge(se, e); err != nil {
			return nil, err
		}
	}

	builder := dag.NewBuilder[*Stage, *StageEdge]()
	for _, s := range stages {
		if err := builder.AddVertex(s); err != nil {
			return nil, err
		}
	}
	for _, se := range stageEdges {
		if err := builder.Connect(se); err != nil {
			return nil, err
		}
	}
	stageDAG, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("unable to form stage DAG: %w", err)
	}

	return &Plan{
		id:           b.g.ids.PlanID(),
		stageDAG:     stageDAG,
		taskVertices: taskVertices,
		vertexStages: vertexStages,
	}, nil
}

// merge copies the stage edge properties of e onto se. Conflicting values are resolved by
// letting e win, unless strict merging is enabled.
func (b *planBuilder) merge(se *StageEdge, e *ir.Edge) error {
	se.irEdges = append(se.irEdges, e.ID())
	for _, k := range property.StageEdgeKinds {
		v, ok := e.Property(k)
		if !ok {
			continue
		}
		if prev, had := se.props.Get(k); had && prev != v {
			if b.g.strict {
				return errors.LoweringConflictError{StageEdge: se.id, Kind: k.String(), Previous: prev.String(), Next: v.String()}
			}
			b.g.logger.WithFields(logrus.Fields{
				"stageEdge": se.id,
				"irEdge":    e.ID(),
				"kind":      k.String(),
			}).Warnf("conflicting property values %s and %s, keeping %s", prev, v, v)
		}
		if err := se.props.Set(v); err != nil {
			return err
		}
	}
	return nil
}
