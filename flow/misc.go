package flow

import (
	"sort"

	"github.com/go-sif/sifplan"
)

// Misc holds the auxiliary metadata of a FlowDef
type Misc struct {
	tags           map[string]struct{}
	traps          map[string]sifplan.Tap
	checkpoints    map[string]sifplan.Tap
	assertionLevel sifplan.AssertionLevel
	name           string
}

func createMisc() Misc {
	return Misc{
		tags:           make(map[string]struct{}),
		traps:          make(map[string]sifplan.Tap),
		checkpoints:    make(map[string]sifplan.Tap),
		assertionLevel: sifplan.AssertionLevelStrict,
	}
}

// merge accumulates tags, traps and checkpoints from other, and takes
// other's assertion level and name unconditionally
func (m *Misc) merge(other *Misc) {
	for tag := range other.tags {
		m.tags[tag] = struct{}{}
	}
	for k, v := range other.traps {
		m.traps[k] = v
	}
	for k, v := range other.checkpoints {
		m.checkpoints[k] = v
	}
	m.assertionLevel = other.assertionLevel
	m.name = other.name
}

// Tags returns the sorted tags of a flow
func (m Misc) Tags() []string {
	tags := make([]string, 0, len(m.tags))
	for tag := range m.tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Traps returns a copy of the traps of a flow, keyed by name
func (m Misc) Traps() map[string]sifplan.Tap {
	return copyTaps(m.traps)
}

// Checkpoints returns a copy of the checkpoints of a flow, keyed by name
func (m Misc) Checkpoints() map[string]sifplan.Tap {
	return copyTaps(m.checkpoints)
}

// AssertionLevel returns the assertion level of a flow
func (m Misc) AssertionLevel() sifplan.AssertionLevel {
	return m.assertionLevel
}

// Name returns the display name of a flow
func (m Misc) Name() string {
	return m.name
}

func copyTaps(taps map[string]sifplan.Tap) map[string]sifplan.Tap {
	res := make(map[string]sifplan.Tap, len(taps))
	for k, v := range taps {
		res[k] = v
	}
	return res
}
