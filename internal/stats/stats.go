package stats

import (
	"sync"
	"time"
)

// PlanStatistics contains statistics about reducer planning. It is safe for concurrent use.
type PlanStatistics struct {
	lock          sync.Mutex
	running       int // rounds in progress
	startTime     time.Time
	totalRuntime  time.Duration
	stagesPlanned int64
	overrides     int64
	estimated     map[string]int64 // keyed by Estimator name
	defaulted     int64
}

// Start begins a round of planning. Overlapping rounds are timed as one.
func (ps *PlanStatistics) Start() {
	ps.lock.Lock()
	defer ps.lock.Unlock()
	if ps.estimated == nil {
		ps.estimated = make(map[string]int64)
	}
	if ps.running == 0 {
		ps.startTime = time.Now()
	}
	ps.running++
}

// Finish completes a round of planning, adding its duration to the total runtime
func (ps *PlanStatistics) Finish() {
	ps.lock.Lock()
	defer ps.lock.Unlock()
	if ps.running == 0 {
		return
	}
	ps.running--
	if ps.running == 0 {
		ps.totalRuntime += time.Since(ps.startTime)
	}
}

// RecordOverride tracks a decision taken from an explicit reducer count
func (ps *PlanStatistics) RecordOverride() {
	ps.lock.Lock()
	defer ps.lock.Unlock()
	ps.stagesPlanned++
	ps.overrides++
}

// RecordEstimate tracks a decision taken from the named Estimator
func (ps *PlanStatistics) RecordEstimate(estimator string) {
	ps.lock.Lock()
	defer ps.lock.Unlock()
	if ps.estimated == nil {
		ps.estimated = make(map[string]int64)
	}
	ps.stagesPlanned++
	ps.estimated[estimator]++
}

// RecordDefault tracks a decision which fell back to the default reducer count
func (ps *PlanStatistics) RecordDefault() {
	ps.lock.Lock()
	defer ps.lock.Unlock()
	ps.stagesPlanned++
	ps.defaulted++
}

// GetRuntime returns the time spent planning, across every round
func (ps *PlanStatistics) GetRuntime() time.Duration {
	ps.lock.Lock()
	defer ps.lock.Unlock()
	if ps.running > 0 {
		return ps.totalRuntime + time.Since(ps.startTime)
	}
	return ps.totalRuntime
}

// GetNumStagesPlanned returns the number of Stages which have received a reducer decision
func (ps *PlanStatistics) GetNumStagesPlanned() int64 {
	ps.lock.Lock()
	defer ps.lock.Unlock()
	return ps.stagesPlanned
}

// GetNumOverrides returns the number of decisions taken from an explicit reducer count
func (ps *PlanStatistics) GetNumOverrides() int64 {
	ps.lock.Lock()
	defer ps.lock.Unlock()
	return ps.overrides
}

// GetNumEstimated returns a copy of the number of decisions taken from each Estimator
func (ps *PlanStatistics) GetNumEstimated() map[string]int64 {
	ps.lock.Lock()
	defer ps.lock.Unlock()
	res := make(map[string]int64, len(ps.estimated))
	for k, v := range ps.estimated {
		res[k] = v
	}
	return res
}

// GetNumDefaulted returns the number of decisions which fell back to the default reducer count
func (ps *PlanStatistics) GetNumDefaulted() int64 {
	ps.lock.Lock()
	defer ps.lock.Unlock()
	return ps.defaulted
}
