package plan

import (
	"strconv"

	"github.com/go-sif/sifplan"
	"github.com/go-sif/sifplan/flow"
)

// Options configures the construction of a Plan
type Options struct {
	// ObservedSizes supplies input sizes, keyed by Stage signature, for Stages whose
	// input cannot be derived from declared sources (e.g. measured by a previous run).
	// Observed sizes take precedence over derived ones.
	ObservedSizes map[string]int64
}

// Build prunes unused sources from f, then splits it into Stages at every GroupBy and
// CoGroup. Tails which are not reduce boundaries end map-only Stages. Stage IDs follow
// dependency order: a Stage always has a greater ID than the Stages it reads from.
func Build(f *flow.FlowDef, opts *Options) (*Plan, error) {
	if opts == nil {
		opts = &Options{}
	}
	pruned, err := f.PruneUnusedSources()
	if err != nil {
		return nil, err
	}
	b := &builder{
		flow:       pruned,
		opts:       opts,
		byPipe:     make(map[string]*Stage),
		signatures: make(map[string]bool),
		stages:     []*Stage{},
		nextID:     0,
	}
	for _, tail := range pruned.Tails() {
		b.stageFor(tail)
	}
	return &Plan{stages: b.stages, flow: pruned}, nil
}

type builder struct {
	flow       *flow.FlowDef
	opts       *Options
	byPipe     map[string]*Stage // keyed by boundary Pipe ID
	signatures map[string]bool
	stages     []*Stage
	nextID     int
}

// stageFor returns the Stage ending at boundary, creating it and every Stage it
// depends on if necessary. The graph has already been checked for cycles.
func (b *builder) stageFor(boundary sifplan.Pipe) *Stage {
	if s, ok := b.byPipe[boundary.ID()]; ok {
		return s
	}
	s := &Stage{
		pipes:     []sifplan.Pipe{},
		sources:   []string{},
		upstream:  []*Stage{},
		inputSize: -1,
		reducers:  -1,
		shuffle:   boundary.Type().IsReduceBoundary(),
	}
	if n, ok := boundary.Reducers(); ok && s.shuffle {
		s.reducers = n
	}

	visited := make(map[string]bool)
	upstreamSeen := make(map[string]bool)
	sourceSeen := make(map[string]bool)
	derivable := true
	var sizeSum int64
	parts := []string{string(boundary.Type()) + ":" + boundary.Name()}

	var visit func(sifplan.Pipe)
	visit = func(p sifplan.Pipe) {
		if visited[p.ID()] {
			return
		}
		visited[p.ID()] = true
		if p.ID() != boundary.ID() && p.Type().IsReduceBoundary() {
			dep := b.stageFor(p)
			if !upstreamSeen[p.ID()] {
				upstreamSeen[p.ID()] = true
				s.upstream = append(s.upstream, dep)
				parts = append(parts, "stage:"+dep.signature)
			}
			derivable = false
			return
		}
		for _, up := range p.Upstream() {
			visit(up)
		}
		// post-order, so members end up upstream first
		s.pipes = append(s.pipes, p)
		parts = append(parts, "pipe:"+p.Name())
		if len(p.Upstream()) > 0 {
			return
		}
		tap, ok := b.flow.Source(p.Name())
		if !ok {
			derivable = false
			return
		}
		if sourceSeen[p.Name()] {
			return
		}
		sourceSeen[p.Name()] = true
		s.sources = append(s.sources, p.Name())
		parts = append(parts, "source:"+tap.Identifier())
		size, ok := tap.SizeHint()
		if !ok {
			derivable = false
			return
		}
		sizeSum += size
	}
	visit(boundary)

	// structurally identical, same-named Stages are told apart by build order
	s.signature = fingerprint(parts)
	for dup := 1; b.signatures[s.signature]; dup++ {
		s.signature = fingerprint(append(parts, "dup:"+strconv.Itoa(dup)))
	}
	b.signatures[s.signature] = true
	if observed, ok := b.opts.ObservedSizes[s.signature]; ok && observed >= 0 {
		s.inputSize = observed
	} else if derivable {
		s.inputSize = sizeSum
	}
	s.id = b.nextID
	b.nextID++
	b.byPipe[boundary.ID()] = s
	b.stages = append(b.stages, s)
	return s
}
