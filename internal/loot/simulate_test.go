package loot

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FocusLoot_Go/internal/catalog"
	"github.com/osse101/FocusLoot_Go/internal/domain"
	"github.com/osse101/FocusLoot_Go/internal/metrics"
	"github.com/osse101/FocusLoot_Go/internal/testing/leaktest"
)

// chiSquaredCritical is the df=4, p=0.001 critical value.
const chiSquaredCritical = 18.47

func TestSimulate_SeedSensitivityChiSquared(t *testing.T) {
	engine := NewEngine(catalog.Default())
	tests := []struct {
		name    string
		minutes int
		class   string
	}{
		{"baseline", 0, ""},
		{"one hour", 60, ""},
		{"two hours artisan", 120, "artisan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, err := Simulate(context.Background(), engine, SimulationRequest{
				Prefix:  "chi",
				Trials:  10000,
				Minutes: tt.minutes,
				Level:   10,
				Class:   tt.class,
			})
			require.NoError(t, err)
			assert.Equal(t, 10000, dist.Rolled())

			stat := dist.ChiSquared(engine.Probabilities(tt.minutes, tt.class))
			assert.Less(t, stat, chiSquaredCritical, "counts %v", dist.Rarities)
		})
	}
}

func TestSimulate_PinnedBaselineCounts(t *testing.T) {
	dist, err := Simulate(context.Background(), NewEngine(catalog.Default()), SimulationRequest{
		Prefix: "chi",
		Trials: 10000,
		Level:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, [domain.RarityCount]int{6008, 2513, 1018, 354, 107}, dist.Rarities)
}

func TestSimulate_DurationMonotonicity(t *testing.T) {
	engine := NewEngine(catalog.Default())
	prev := -1.0
	for _, minutes := range []int{0, 15, 30, 60, 120, 240} {
		dist, err := Simulate(context.Background(), engine, SimulationRequest{
			Prefix:  "mono",
			Trials:  4000,
			Minutes: minutes,
			Level:   10,
		})
		require.NoError(t, err)

		rareOrBetter := dist.AtLeast(domain.RarityRare)
		assert.GreaterOrEqual(t, rareOrBetter, prev, "minutes %d", minutes)
		prev = rareOrBetter
	}
}

func TestSimulate_IndependentOfWorkers(t *testing.T) {
	engine := NewEngine(catalog.Default())
	req := SimulationRequest{Prefix: "workers", Trials: 3000, Minutes: 45, Level: 8, Class: "scholar"}

	req.Workers, req.BatchSize = 1, 3000
	single, err := Simulate(context.Background(), engine, req)
	require.NoError(t, err)

	req.Workers, req.BatchSize = 8, 37
	parallel, err := Simulate(context.Background(), engine, req)
	require.NoError(t, err)

	assert.Equal(t, single, parallel)
}

func TestSimulate_Tallies(t *testing.T) {
	engine := NewEngine(catalog.Default(), WithDropRate(0.5))
	dist, err := Simulate(context.Background(), engine, SimulationRequest{Trials: 2000, Level: 0})
	require.NoError(t, err)

	assert.Equal(t, 2000, dist.Trials)
	assert.Positive(t, dist.Gated)
	assert.Positive(t, dist.Misses, "ultra rare has nothing open at level 0")

	items := 0
	for sku, n := range dist.Items {
		items += n
		assert.NotEmpty(t, sku)
	}
	assert.Equal(t, dist.Trials, items+dist.Misses+dist.Gated)
	assert.Equal(t, dist.Rolled(), items+dist.Misses)

	total := 0.0
	for _, r := range domain.AllRarities() {
		total += dist.Proportion(r)
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.InDelta(t, 1.0, dist.AtLeast(domain.RarityCommon), 1e-9)
}

func TestSimulate_MatchesDirectRolls(t *testing.T) {
	engine := NewEngine(catalog.Default())
	req := SimulationRequest{Prefix: "direct", Trials: 300, Minutes: 90, Level: 12, Class: "ranger", BatchSize: 64}

	dist, err := Simulate(context.Background(), engine, req)
	require.NoError(t, err)

	want := newDistribution()
	for n := 0; n < req.Trials; n++ {
		want.add(engine.Roll(session(req.SessionID(n), req.Minutes, req.Level, req.Class)))
	}
	assert.Equal(t, want, dist)
}

func TestSimulate_RecordsTrials(t *testing.T) {
	before := testutil.ToFloat64(metrics.LootSimulationTrials)
	_, err := Simulate(context.Background(), NewEngine(catalog.Default()), SimulationRequest{Trials: 123})
	require.NoError(t, err)
	assert.Equal(t, before+123, testutil.ToFloat64(metrics.LootSimulationTrials))
}

func TestSimulate_InvalidTrials(t *testing.T) {
	_, err := Simulate(context.Background(), NewEngine(catalog.Default()), SimulationRequest{Trials: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSimulate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	leaktest.CheckNoGoroutineLeak(t, func() {
		_, err := Simulate(ctx, NewEngine(catalog.Default()), SimulationRequest{Trials: 50000})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSimulationRequest_SessionID(t *testing.T) {
	req := SimulationRequest{}.withDefaults()
	assert.Equal(t, "sim-0", req.SessionID(0))
	assert.Equal(t, "sim-41", SimulationRequest{Prefix: "sim"}.SessionID(41))
	assert.Equal(t, DefaultSimulationWorkers, req.Workers)
	assert.Equal(t, DefaultSimulationBatchSize, req.BatchSize)
}

func TestDistribution_Empty(t *testing.T) {
	d := newDistribution()
	assert.Zero(t, d.Proportion(domain.RarityCommon))
	assert.Zero(t, d.AtLeast(domain.RarityRare))
	assert.Zero(t, d.Proportion(domain.Rarity(8)))
	assert.Zero(t, d.ChiSquared(DefaultRarityTable().Probabilities(0, 0)))
}
