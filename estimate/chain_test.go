package estimate

import (
	"testing"

	"github.com/go-sif/sifplan"
	"github.com/go-sif/sifplan/config"
	"github.com/go-sif/sifplan/errors"
	"github.com/go-sif/sifplan/plan"
	"github.com/stretchr/testify/require"
)

// opinionated always answers with n, and counts how often it was asked
type opinionated struct {
	name  string
	n     int
	ok    bool
	calls *int
}

func (o opinionated) Name() string { return o.name }

func (o opinionated) Estimate(stage sifplan.Stage, conf sifplan.JobConfig) (int, bool) {
	if o.calls != nil {
		*o.calls++
	}
	return o.n, o.ok
}

func buildChain(t *testing.T, values map[string]interface{}, extra ...opinionated) *Chain {
	r := CreateRegistry()
	for _, e := range extra {
		e := e
		r.Register(e.name, func(conf sifplan.JobConfig) (sifplan.Estimator, error) { return e, nil })
	}
	chain, err := r.Build(config.FromMap(values))
	require.Nil(t, err)
	return chain
}

func TestSingleStageScenario(t *testing.T) {
	chain := buildChain(t, map[string]interface{}{config.BytesPerReducerKey: 1024})
	conf := config.FromMap(map[string]interface{}{config.BytesPerReducerKey: 1024})
	n, err := EstimateReducers(plan.CreateStage(0, 3072, 0), chain, conf)
	require.Nil(t, err)
	require.Equal(t, 3, n)
}

func TestEstimateReducersUsesCallConfiguration(t *testing.T) {
	// built with the 4GiB default
	chain, err := CreateRegistry().Build(config.Create())
	require.Nil(t, err)
	stage := plan.CreateStage(0, 3072, 0)
	require.Equal(t, 1, chain.Decide(stage).Reducers)

	n, err := EstimateReducers(stage, chain, config.FromMap(map[string]interface{}{config.BytesPerReducerKey: 1024}))
	require.Nil(t, err)
	require.Equal(t, 3, n)

	n, err = EstimateReducers(stage, chain, config.FromMap(map[string]interface{}{
		config.BytesPerReducerKey:      1,
		config.MaxEstimatedReducersKey: 10,
	}))
	require.Nil(t, err)
	require.Equal(t, 10, n)

	n, err = EstimateReducers(plan.CreateStage(1, -1, 0), chain, config.FromMap(map[string]interface{}{config.DefaultReducersKey: 6}))
	require.Nil(t, err)
	require.Equal(t, 6, n)
}

func TestEstimateReducersRejectsInvalidCallConfiguration(t *testing.T) {
	chain, err := CreateRegistry().Build(config.Create())
	require.Nil(t, err)
	stage := plan.CreateStage(0, 3072, 0)

	for _, key := range []string{config.BytesPerReducerKey, config.DefaultReducersKey, config.MaxEstimatedReducersKey} {
		_, err := EstimateReducers(stage, chain, config.FromMap(map[string]interface{}{key: 0}))
		var confErr errors.ConfigurationError
		require.ErrorAs(t, err, &confErr)
		require.Equal(t, key, confErr.Key)
	}
	// explicit counts still need a valid configuration
	_, err = EstimateReducers(plan.CreateStage(1, -1, 4), chain, config.FromMap(map[string]interface{}{config.BytesPerReducerKey: -1}))
	require.NotNil(t, err)
}

func TestSmallStagesFloorAtOne(t *testing.T) {
	chain := buildChain(t, map[string]interface{}{config.BytesPerReducerKey: 65536})
	for i, size := range []int64{0, 100, 65535} {
		d := chain.Decide(plan.CreateStage(i, size, 0))
		require.Equal(t, 1, d.Reducers)
		require.Equal(t, OriginEstimator, d.Origin)
		require.Equal(t, config.InputSizeEstimatorName, d.Estimator)
	}
}

func TestReducersForSize(t *testing.T) {
	require.Equal(t, 1, ReducersForSize(0, 10))
	require.Equal(t, 1, ReducersForSize(-4, 10))
	require.Equal(t, 1, ReducersForSize(10, 10))
	require.Equal(t, 2, ReducersForSize(11, 10))
	require.Equal(t, 3, ReducersForSize(3072, 1024))
	require.Equal(t, 1<<31-1, ReducersForSize(1<<62, 1))
}

func TestReducersForSizeIsMonotonic(t *testing.T) {
	for _, b := range []int64{1, 7, 1024, 65536} {
		previous := 0
		for size := int64(0); size < 200000; size += 997 {
			n := ReducersForSize(size, b)
			require.GreaterOrEqual(t, n, 1)
			require.GreaterOrEqual(t, n, previous)
			previous = n
		}
	}
}

func TestOverrideWins(t *testing.T) {
	calls := 0
	chain := buildChain(t, map[string]interface{}{
		config.BytesPerReducerKey: 1,
		config.EstimatorNamesKey:  []string{"always", config.InputSizeEstimatorName},
	}, opinionated{name: "always", n: 99, ok: true, calls: &calls})

	d := chain.Decide(plan.CreateStage(0, 1<<40, 5))
	require.Equal(t, Decision{StageID: 0, Reducers: 5, Origin: OriginOverride}, d)
	require.Equal(t, 0, calls)
}

func TestFirstOpinionWins(t *testing.T) {
	silentCalls, laterCalls := 0, 0
	chain := buildChain(t, map[string]interface{}{
		config.EstimatorNamesKey: []string{"silent", "first", "later"},
	},
		opinionated{name: "silent", calls: &silentCalls},
		opinionated{name: "first", n: 17, ok: true},
		opinionated{name: "later", n: 3, ok: true, calls: &laterCalls},
	)

	d := chain.Decide(plan.CreateStage(1, -1, 0))
	require.Equal(t, 17, d.Reducers)
	require.Equal(t, "first", d.Estimator)
	require.Equal(t, 1, silentCalls)
	require.Equal(t, 0, laterCalls)
}

func TestEstimatesAreClamped(t *testing.T) {
	chain := buildChain(t, map[string]interface{}{
		config.EstimatorNamesKey:       []string{"huge"},
		config.MaxEstimatedReducersKey: 50,
	}, opinionated{name: "huge", n: 1000, ok: true})
	require.Equal(t, 50, chain.Decide(plan.CreateStage(0, -1, 0)).Reducers)
	// explicit counts are not capped
	require.Equal(t, 1000, chain.Decide(plan.CreateStage(0, -1, 1000)).Reducers)

	chain = buildChain(t, map[string]interface{}{
		config.EstimatorNamesKey: []string{"negative"},
	}, opinionated{name: "negative", n: -3, ok: true})
	require.Equal(t, 1, chain.Decide(plan.CreateStage(0, -1, 0)).Reducers)
}

func TestDefaultWhenNoOpinion(t *testing.T) {
	chain := buildChain(t, map[string]interface{}{})
	d := chain.Decide(plan.CreateStage(2, -1, 0))
	require.Equal(t, Decision{StageID: 2, Reducers: config.DefaultReducers, Origin: OriginDefault}, d)

	chain = buildChain(t, map[string]interface{}{config.DefaultReducersKey: 4})
	require.Equal(t, 4, chain.Decide(plan.CreateStage(2, -1, 0)).Reducers)

	chain = buildChain(t, map[string]interface{}{config.EstimatorNamesKey: []string{}})
	require.Empty(t, chain.Estimators())
	require.Equal(t, 1, chain.Decide(plan.CreateStage(2, 1<<40, 0)).Reducers)
}

func TestEstimateReducersPassesConfiguration(t *testing.T) {
	var seen sifplan.JobConfig
	r := CreateRegistry()
	r.Register("spy", func(conf sifplan.JobConfig) (sifplan.Estimator, error) {
		return spy{seen: &seen}, nil
	})
	chain, err := r.Build(config.FromMap(map[string]interface{}{config.EstimatorNamesKey: []string{"spy"}}))
	require.Nil(t, err)

	conf := config.FromMap(map[string]interface{}{"custom": "value"})
	n, err := EstimateReducers(plan.CreateStage(0, -1, 0), chain, conf)
	require.Nil(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "value", seen.GetString("custom"))
}

type spy struct{ seen *sifplan.JobConfig }

func (s spy) Name() string { return "spy" }

func (s spy) Estimate(stage sifplan.Stage, conf sifplan.JobConfig) (int, bool) {
	*s.seen = conf
	return 0, false
}
