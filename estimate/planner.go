package estimate

import (
	"context"
	"sort"

	"github.com/go-sif/sifplan"
	"github.com/go-sif/sifplan/flow"
	"github.com/go-sif/sifplan/internal/stats"
	"github.com/go-sif/sifplan/plan"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// PlannerOptions configures a Planner
type PlannerOptions struct {
	Logger      *zerolog.Logger // advisory logging of decisions. Defaults to a no-op logger.
	Concurrency int             // maximum number of Stages estimated at once. Unlimited if <= 0.
}

// Planner applies a Chain to the Stages of a plan
type Planner struct {
	chain       *Chain
	logger      zerolog.Logger
	concurrency int
	stats       *stats.PlanStatistics
}

// CreatePlanner is a factory for Planners
func CreatePlanner(chain *Chain, opts *PlannerOptions) *Planner {
	if opts == nil {
		opts = &PlannerOptions{}
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Planner{
		chain:       chain,
		logger:      logger,
		concurrency: opts.Concurrency,
		stats:       &stats.PlanStatistics{},
	}
}

// Stats returns statistics about the decisions taken by this Planner
func (p *Planner) Stats() sifplan.PlanningStatistics {
	return p.stats
}

// PlanStages decides the reducer count of every Stage which ends in a shuffle. Each Stage is
// estimated independently. Decisions are returned in Stage ID order.
func (p *Planner) PlanStages(ctx context.Context, stages []sifplan.Stage) ([]Decision, error) {
	p.stats.Start()
	defer p.stats.Finish()

	shuffles := make([]sifplan.Stage, 0, len(stages))
	for _, s := range stages {
		if s.EndsInShuffle() {
			shuffles = append(shuffles, s)
		}
	}
	decisions := make([]Decision, len(shuffles))
	g, gctx := errgroup.WithContext(ctx)
	if p.concurrency > 0 {
		g.SetLimit(p.concurrency)
	}
	for i, s := range shuffles {
		i, s := i, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			decisions[i] = p.decide(s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.SliceStable(decisions, func(i, j int) bool {
		return decisions[i].StageID < decisions[j].StageID
	})
	return decisions, nil
}

// PlanFlow builds a Plan for f and decides the reducer count of its shuffle Stages
func (p *Planner) PlanFlow(ctx context.Context, f *flow.FlowDef, opts *plan.Options) (*plan.Plan, []Decision, error) {
	built, err := plan.Build(f, opts)
	if err != nil {
		return nil, nil, err
	}
	decisions, err := p.PlanStages(ctx, built.ShuffleStages())
	if err != nil {
		return nil, nil, err
	}
	return built, decisions, nil
}

func (p *Planner) decide(s sifplan.Stage) Decision {
	d := p.chain.Decide(s)
	switch d.Origin {
	case OriginOverride:
		p.stats.RecordOverride()
	case OriginEstimator:
		p.stats.RecordEstimate(d.Estimator)
	default:
		p.stats.RecordDefault()
		p.logger.Info().
			Int("stage", d.StageID).
			Str("signature", s.Signature()).
			Int("reducers", d.Reducers).
			Msg("No estimator had an opinion, using default reducer count")
	}
	p.logger.Debug().
		Int("stage", d.StageID).
		Str("origin", string(d.Origin)).
		Str("estimator", d.Estimator).
		Int("reducers", d.Reducers).
		Msg("Planned reducers")
	return d
}
