package plan

import (
	"sort"
	"strconv"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-sif/sifplan"
)

// Stage is a group of Pipes which run between two shuffles.
// Stages block the execution of downstream Stages until they
// are complete.
type Stage struct {
	id        int
	signature string
	pipes     []sifplan.Pipe // members, upstream first. The last one is the boundary.
	sources   []string       // names of the declared sources read by this Stage
	upstream  []*Stage
	inputSize int64 // -1 if unknown
	reducers  int   // -1 if not requested
	shuffle   bool
}

// CreateStage is a factory for standalone Stages ending in a shuffle, for callers which
// plan Stages themselves. A negative inputSizeBytes or non-positive explicitReducers
// indicates that the value is absent.
func CreateStage(id int, inputSizeBytes int64, explicitReducers int) *Stage {
	if inputSizeBytes < 0 {
		inputSizeBytes = -1
	}
	if explicitReducers <= 0 {
		explicitReducers = -1
	}
	return &Stage{
		id:        id,
		signature: fingerprint([]string{strconv.Itoa(id)}),
		pipes:     []sifplan.Pipe{},
		sources:   []string{},
		upstream:  []*Stage{},
		inputSize: inputSizeBytes,
		reducers:  explicitReducers,
		shuffle:   true,
	}
}

// ID returns the ID for this Stage
func (s *Stage) ID() int {
	return s.id
}

// Signature returns a fingerprint of the Pipes and sources of this Stage, which is
// stable across runs of the same flow. Signatures are unique within a Plan: Stages
// which would otherwise collide are numbered in the order they are built.
func (s *Stage) Signature() string {
	return s.signature
}

// InputSizeBytes returns the volume of data entering this Stage, if known
func (s *Stage) InputSizeBytes() (int64, bool) {
	if s.inputSize < 0 {
		return 0, false
	}
	return s.inputSize, true
}

// ExplicitReducers returns the reducer count requested for this Stage, if any
func (s *Stage) ExplicitReducers() (int, bool) {
	if s.reducers < 0 {
		return 0, false
	}
	return s.reducers, true
}

// EndsInShuffle returns true iff this Stage ends with a GroupBy or CoGroup
func (s *Stage) EndsInShuffle() bool {
	return s.shuffle
}

// Pipes returns the Pipes of this Stage, upstream first
func (s *Stage) Pipes() []sifplan.Pipe {
	return append([]sifplan.Pipe{}, s.pipes...)
}

// Boundary returns the last Pipe of this Stage, or nil for standalone Stages
func (s *Stage) Boundary() sifplan.Pipe {
	if len(s.pipes) == 0 {
		return nil
	}
	return s.pipes[len(s.pipes)-1]
}

// Sources returns the names of the declared sources read by this Stage
func (s *Stage) Sources() []string {
	return append([]string{}, s.sources...)
}

// Upstream returns the Stages whose output this Stage reads
func (s *Stage) Upstream() []*Stage {
	return append([]*Stage{}, s.upstream...)
}

// fingerprint hashes parts in sorted order, so that traversal order does not matter
func fingerprint(parts []string) string {
	sorted := append([]string{}, parts...)
	sort.Strings(sorted)
	hasher := xxhash.New()
	for _, p := range sorted {
		hasher.WriteString(p)
		hasher.Write([]byte{0})
	}
	return strconv.FormatUint(hasher.Sum64(), 16)
}
