package estimate

import (
	"github.com/go-sif/sifplan"
	"github.com/go-sif/sifplan/config"
)

// Origin describes where a reducer Decision came from
type Origin string

const (
	// OriginOverride indicates that the Stage requested an explicit reducer count
	OriginOverride Origin = "override"
	// OriginEstimator indicates that an Estimator produced the reducer count
	OriginEstimator Origin = "estimator"
	// OriginDefault indicates that no Estimator had an opinion
	OriginDefault Origin = "default"
)

// Decision is the reducer count chosen for a Stage
type Decision struct {
	StageID   int
	Reducers  int
	Origin    Origin
	Estimator string // the name of the deciding Estimator, for OriginEstimator
}

// Chain is an ordered, immutable sequence of Estimators
type Chain struct {
	estimators      []sifplan.Estimator
	conf            sifplan.JobConfig
	defaultReducers int
	maxReducers     int
}

// Estimators returns the Estimators of this Chain, in evaluation order
func (c *Chain) Estimators() []sifplan.Estimator {
	return append([]sifplan.Estimator{}, c.estimators...)
}

// Decide chooses the reducer count for stage, using the configuration this Chain was built with
func (c *Chain) Decide(stage sifplan.Stage) Decision {
	return c.decide(stage, c.conf, c.defaultReducers, c.maxReducers)
}

func (c *Chain) decide(stage sifplan.Stage, conf sifplan.JobConfig, defaultReducers int, maxReducers int) Decision {
	if n, ok := stage.ExplicitReducers(); ok && n > 0 {
		return Decision{StageID: stage.ID(), Reducers: n, Origin: OriginOverride}
	}
	for _, e := range c.estimators {
		n, ok := e.Estimate(stage, conf)
		if !ok {
			continue
		}
		if n < 1 {
			n = 1
		}
		if n > maxReducers {
			n = maxReducers
		}
		return Decision{StageID: stage.ID(), Reducers: n, Origin: OriginEstimator, Estimator: e.Name()}
	}
	return Decision{StageID: stage.ID(), Reducers: defaultReducers, Origin: OriginDefault}
}

// EstimateReducers returns the number of reducers for stage, which is always at least 1.
// conf takes precedence over the configuration chain was built with: its bytes per reducer,
// default and maximum reducer counts apply, and Estimators are queried with it. A non-positive
// value for any of these produces a ConfigurationError.
func EstimateReducers(stage sifplan.Stage, chain *Chain, conf sifplan.JobConfig) (int, error) {
	for _, key := range []string{config.BytesPerReducerKey, config.DefaultReducersKey, config.MaxEstimatedReducersKey} {
		if err := positive(conf, key); err != nil {
			return 0, err
		}
	}
	d := chain.decide(stage, conf, conf.GetInt(config.DefaultReducersKey), conf.GetInt(config.MaxEstimatedReducersKey))
	return d.Reducers, nil
}
