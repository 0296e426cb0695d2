package stats

import (
	"sync"
	"testing"
	"time"

	"github.com/go-sif/sifplan"
	"github.com/stretchr/testify/require"
)

var _ sifplan.PlanningStatistics = &PlanStatistics{}

func TestRecordDecisions(t *testing.T) {
	ps := &PlanStatistics{}
	require.Zero(t, ps.GetRuntime())
	ps.Start()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(3)
		go func() { defer wg.Done(); ps.RecordOverride() }()
		go func() { defer wg.Done(); ps.RecordEstimate("input-size") }()
		go func() { defer wg.Done(); ps.RecordDefault() }()
	}
	wg.Wait()
	ps.Finish()

	require.EqualValues(t, 30, ps.GetNumStagesPlanned())
	require.EqualValues(t, 10, ps.GetNumOverrides())
	require.EqualValues(t, 10, ps.GetNumDefaulted())
	require.Equal(t, map[string]int64{"input-size": 10}, ps.GetNumEstimated())
	runtime := ps.GetRuntime()
	require.Equal(t, runtime, ps.GetRuntime())
}

func TestRuntimeAccumulatesAcrossRounds(t *testing.T) {
	ps := &PlanStatistics{}
	ps.Finish()
	require.Zero(t, ps.GetRuntime())

	ps.Start()
	time.Sleep(20 * time.Millisecond)
	ps.Finish()
	first := ps.GetRuntime()
	require.GreaterOrEqual(t, first, 20*time.Millisecond)

	// idle time between rounds is not counted
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, first, ps.GetRuntime())

	ps.Start()
	time.Sleep(20 * time.Millisecond)
	require.GreaterOrEqual(t, ps.GetRuntime(), first+20*time.Millisecond)
	ps.Finish()
	second := ps.GetRuntime()
	require.GreaterOrEqual(t, second, first+20*time.Millisecond)
	require.Equal(t, second, ps.GetRuntime())
}

func TestOverlappingRoundsTimedOnce(t *testing.T) {
	ps := &PlanStatistics{}
	ps.Start()
	ps.Start()
	time.Sleep(20 * time.Millisecond)
	ps.Finish()
	require.Greater(t, ps.GetRuntime(), time.Duration(0))
	ps.Finish()
	total := ps.GetRuntime()
	require.GreaterOrEqual(t, total, 20*time.Millisecond)
	require.Equal(t, total, ps.GetRuntime())
}
