package sifplan

// An Estimator is a strategy for sizing the reduce side of a Stage.
// Estimators are queried statelessly, and must be safe for concurrent use.
type Estimator interface {
	Name() string                                     // Name returns the identifier this Estimator is registered under
	Estimate(stage Stage, conf JobConfig) (int, bool) // Estimate returns a reducer count for the Stage, or false if this Estimator has no opinion
}
