package flow

import (
	"github.com/go-sif/sifplan"
	"github.com/go-sif/sifplan/pipe"
	"github.com/hashicorp/go-multierror"
)

// FlowDef describes a logical pipeline
type FlowDef struct {
	sources   map[string]sifplan.Tap
	sinks     map[string]sifplan.Tap
	tails     map[string]sifplan.Pipe // keyed by Pipe ID
	tailOrder []string                // Pipe IDs, in insertion order
	misc      Misc
}

// CreateFlowDef is a factory for empty FlowDefs
func CreateFlowDef() *FlowDef {
	return &FlowDef{
		sources:   make(map[string]sifplan.Tap),
		sinks:     make(map[string]sifplan.Tap),
		tails:     make(map[string]sifplan.Pipe),
		tailOrder: []string{},
		misc:      createMisc(),
	}
}

// AddSource declares the source read by the head Pipe with the given name
func (f *FlowDef) AddSource(name string, tap sifplan.Tap) *FlowDef {
	f.sources[name] = tap
	return f
}

// AddSink declares the sink written by the tail Pipe with the given name
func (f *FlowDef) AddSink(name string, tap sifplan.Tap) *FlowDef {
	f.sinks[name] = tap
	return f
}

// AddTail registers a tail Pipe. Registering the same Pipe twice has no effect.
func (f *FlowDef) AddTail(p sifplan.Pipe) *FlowDef {
	if p == nil {
		return f
	}
	if _, ok := f.tails[p.ID()]; !ok {
		f.tails[p.ID()] = p
		f.tailOrder = append(f.tailOrder, p.ID())
	}
	return f
}

// AddTailSink registers a tail Pipe along with the sink it writes to
func (f *FlowDef) AddTailSink(p sifplan.Pipe, tap sifplan.Tap) *FlowDef {
	f.AddSink(p.Name(), tap)
	return f.AddTail(p)
}

// AddTags tags this flow
func (f *FlowDef) AddTags(tags ...string) *FlowDef {
	for _, tag := range tags {
		f.misc.tags[tag] = struct{}{}
	}
	return f
}

// AddTrap declares a trap for failing records of the named Pipe
func (f *FlowDef) AddTrap(name string, tap sifplan.Tap) *FlowDef {
	f.misc.traps[name] = tap
	return f
}

// AddCheckpoint declares a checkpoint for the named Pipe
func (f *FlowDef) AddCheckpoint(name string, tap sifplan.Tap) *FlowDef {
	f.misc.checkpoints[name] = tap
	return f
}

// SetAssertionLevel sets the assertion level of this flow
func (f *FlowDef) SetAssertionLevel(level sifplan.AssertionLevel) *FlowDef {
	f.misc.assertionLevel = level
	return f
}

// SetName sets the display name of this flow
func (f *FlowDef) SetName(name string) *FlowDef {
	f.misc.name = name
	return f
}

// Sources returns a copy of the declared sources, keyed by head name
func (f *FlowDef) Sources() map[string]sifplan.Tap {
	return copyTaps(f.sources)
}

// Sinks returns a copy of the declared sinks, keyed by tail name
func (f *FlowDef) Sinks() map[string]sifplan.Tap {
	return copyTaps(f.sinks)
}

// Source returns the source declared under name, if any
func (f *FlowDef) Source(name string) (sifplan.Tap, bool) {
	tap, ok := f.sources[name]
	return tap, ok
}

// Tails returns the tail Pipes of this flow, in registration order
func (f *FlowDef) Tails() []sifplan.Pipe {
	tails := make([]sifplan.Pipe, 0, len(f.tailOrder))
	for _, id := range f.tailOrder {
		tails = append(tails, f.tails[id])
	}
	return tails
}

// Misc returns a copy of the auxiliary metadata of this flow
func (f *FlowDef) Misc() Misc {
	m := createMisc()
	m.merge(&f.misc)
	return m
}

// Merge folds other into this FlowDef, which is returned for chaining. Sources, sinks, traps
// and checkpoints are unioned with other's entries winning on collision, tails and tags are
// unioned, and other's assertion level and name replace this FlowDef's unconditionally.
// other is not modified.
func (f *FlowDef) Merge(other *FlowDef) *FlowDef {
	for k, v := range other.sources {
		f.sources[k] = v
	}
	for k, v := range other.sinks {
		f.sinks[k] = v
	}
	for _, id := range other.tailOrder {
		f.AddTail(other.tails[id])
	}
	f.misc.merge(&other.misc)
	return f
}

// Copy produces an independent FlowDef with the same contents
func (f *FlowDef) Copy() *FlowDef {
	return CreateFlowDef().Merge(f)
}

// Pipes returns every Pipe reachable from the tails of this flow
func (f *FlowDef) Pipes() ([]sifplan.Pipe, error) {
	seen := make(map[string]bool)
	pipes := []sifplan.Pipe{}
	for _, tail := range f.Tails() {
		closure, err := pipe.UpstreamClosure(tail)
		if err != nil {
			return nil, err
		}
		for _, p := range closure {
			if !seen[p.ID()] {
				seen[p.ID()] = true
				pipes = append(pipes, p)
			}
		}
	}
	return pipes, nil
}

// Validate checks that the upstream closure of every tail can be computed,
// reporting every malformed tail
func (f *FlowDef) Validate() error {
	var multierr *multierror.Error
	for _, tail := range f.Tails() {
		if _, err := pipe.UpstreamClosure(tail); err != nil {
			multierr = multierror.Append(multierr, err)
		}
	}
	return multierr.ErrorOrNil()
}

// headNames returns the names of every head reachable from the tails of this flow
func (f *FlowDef) headNames() (map[string]bool, error) {
	heads := make(map[string]bool)
	for _, tail := range f.Tails() {
		tailHeads, err := pipe.Heads(tail)
		if err != nil {
			return nil, err
		}
		for _, h := range tailHeads {
			heads[h.Name()] = true
		}
	}
	return heads, nil
}

// PruneUnusedSources returns a copy of this FlowDef which only declares the sources
// read by heads reachable from its tails. Sinks and tails are unchanged.
func (f *FlowDef) PruneUnusedSources() (*FlowDef, error) {
	heads, err := f.headNames()
	if err != nil {
		return nil, err
	}
	filtered := make(map[string]sifplan.Tap)
	for name, tap := range f.sources {
		if heads[name] {
			filtered[name] = tap
		}
	}
	res := f.Copy()
	res.sources = filtered
	return res, nil
}

// ExtractUpstream returns a new FlowDef holding only what is required to compute pivot: the
// metadata of this flow, the declared sources of the heads upstream of pivot, and pivot itself
// as the sole tail if a sink is declared under its name. If no such sink exists, the result has
// no tails. Heads without a declared source are skipped.
func (f *FlowDef) ExtractUpstream(pivot sifplan.Pipe) (*FlowDef, error) {
	heads, err := pipe.Heads(pivot)
	if err != nil {
		return nil, err
	}
	res := CreateFlowDef()
	res.misc.merge(&f.misc)
	for _, h := range heads {
		if _, ok := res.sources[h.Name()]; ok {
			continue
		}
		if tap, ok := f.sources[h.Name()]; ok {
			res.sources[h.Name()] = tap
		}
	}
	if sink, ok := f.sinks[pivot.Name()]; ok {
		res.AddTailSink(pivot, sink)
	}
	return res, nil
}
