package sifplan

import "time"

// PlanningStatistics facilitates the retrieval of statistics about reducer planning
type PlanningStatistics interface {
	// GetRuntime returns the time spent planning so far
	GetRuntime() time.Duration
	// GetNumStagesPlanned returns the number of Stages which have received a reducer decision
	GetNumStagesPlanned() int64
	// GetNumOverrides returns the number of decisions taken from an explicit reducer count
	GetNumOverrides() int64
	// GetNumEstimated returns the number of decisions taken from each Estimator, keyed by Estimator name
	GetNumEstimated() map[string]int64
	// GetNumDefaulted returns the number of decisions which fell back to the default reducer count
	GetNumDefaulted() int64
}
