package loot

import (
	"context"
	"fmt"
	"strconv"

	"github.com/osse101/FocusLoot_Go/internal/domain"
	"github.com/osse101/FocusLoot_Go/internal/logger"
	"github.com/osse101/FocusLoot_Go/internal/metrics"
	"github.com/osse101/FocusLoot_Go/internal/worker"
)

// SimulationRequest describes a Monte-Carlo run: Trials sessions with ids
// "<Prefix>-0" .. "<Prefix>-<Trials-1>", all sharing the other inputs.
type SimulationRequest struct {
	Prefix    string
	Trials    int
	Minutes   int
	Level     int
	Class     string
	Workers   int
	BatchSize int
}

func (r SimulationRequest) withDefaults() SimulationRequest {
	if r.Prefix == "" {
		r.Prefix = DefaultSimulationPrefix
	}
	if r.Workers < 1 {
		r.Workers = DefaultSimulationWorkers
	}
	if r.BatchSize < 1 {
		r.BatchSize = DefaultSimulationBatchSize
	}
	return r
}

// SessionID returns the id of the n-th simulated session.
func (r SimulationRequest) SessionID(n int) string {
	return r.Prefix + "-" + strconv.Itoa(n)
}

// Distribution tallies simulated drops.
type Distribution struct {
	Trials   int
	Rarities [domain.RarityCount]int
	Items    map[string]int
	Misses   int
	Gated    int
}

func newDistribution() *Distribution {
	return &Distribution{Items: make(map[string]int)}
}

func (d *Distribution) add(drop domain.Drop) {
	d.Trials++
	if drop.Gated {
		d.Gated++
		return
	}
	d.Rarities[drop.Rarity]++
	if drop.HasItem() {
		d.Items[drop.Item.SKU]++
	} else {
		d.Misses++
	}
}

func (d *Distribution) merge(o *Distribution) {
	d.Trials += o.Trials
	d.Misses += o.Misses
	d.Gated += o.Gated
	for i, n := range o.Rarities {
		d.Rarities[i] += n
	}
	for sku, n := range o.Items {
		d.Items[sku] += n
	}
}

// Rolled is the number of trials that reached rarity selection.
func (d *Distribution) Rolled() int {
	return d.Trials - d.Gated
}

// Proportion returns the share of rolled trials that landed on r.
func (d *Distribution) Proportion(r domain.Rarity) float64 {
	if !r.Valid() || d.Rolled() == 0 {
		return 0
	}
	return float64(d.Rarities[r]) / float64(d.Rolled())
}

// AtLeast returns the share of rolled trials that landed on r or a rarer tier.
func (d *Distribution) AtLeast(r domain.Rarity) float64 {
	if !r.Valid() || d.Rolled() == 0 {
		return 0
	}
	n := 0
	for i := int(r); i < domain.RarityCount; i++ {
		n += d.Rarities[i]
	}
	return float64(n) / float64(d.Rolled())
}

// ChiSquared returns Pearson's statistic for the observed tier counts against
// expected probabilities. Tiers with no expected mass are skipped, and a
// distribution with nothing rolled scores 0.
func (d *Distribution) ChiSquared(expected [domain.RarityCount]float64) float64 {
	if d.Rolled() == 0 {
		return 0
	}
	n := float64(d.Rolled())
	stat := 0.0
	for i, p := range expected {
		if p <= 0 {
			continue
		}
		e := n * p
		diff := float64(d.Rarities[i]) - e
		stat += diff * diff / e
	}
	return stat
}

// Simulate rolls req.Trials sessions on a worker pool and tallies the drops.
// Batches are merged in order, so the result does not depend on the number of
// workers or on scheduling.
func Simulate(ctx context.Context, engine *Engine, req SimulationRequest) (*Distribution, error) {
	if req.Trials < 1 {
		return nil, fmt.Errorf("%w: trials must be positive, got %d", domain.ErrInvalidInput, req.Trials)
	}
	req = req.withDefaults()

	log := logger.FromContext(ctx)
	log.Info(LogMsgSimulationStarted,
		LogFieldTrials, req.Trials,
		LogFieldWorkers, req.Workers,
		LogFieldMinutes, req.Minutes,
		LogFieldLevel, req.Level,
		LogFieldClass, req.Class)

	batches := (req.Trials + req.BatchSize - 1) / req.BatchSize
	parts := make([]*Distribution, batches)

	pool := worker.NewPool(req.Workers, req.Workers)
	pool.Start(ctx)

	var enqueueErr error
	for b := 0; b < batches; b++ {
		start := b * req.BatchSize
		end := min(start+req.BatchSize, req.Trials)
		part := newDistribution()
		parts[b] = part

		job := worker.JobFunc(func(ctx context.Context) error {
			for n := start; n < end; n++ {
				if (n-start)%simulationCancelCheckEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				part.add(engine.Roll(domain.SessionContext{
					SessionID:      req.SessionID(n),
					SessionMinutes: req.Minutes,
					PlayerLevel:    req.Level,
					PlayerClass:    req.Class,
				}))
			}
			return nil
		})
		if enqueueErr = pool.Enqueue(ctx, job); enqueueErr != nil {
			break
		}
	}

	if err := pool.Stop(); err != nil && enqueueErr == nil {
		enqueueErr = err
	}
	if enqueueErr != nil {
		log.Warn(LogMsgSimulationFailed, LogFieldError, enqueueErr)
		return nil, enqueueErr
	}

	dist := newDistribution()
	for _, part := range parts {
		dist.merge(part)
	}
	metrics.LootSimulationTrials.Add(float64(dist.Trials))

	log.Info(LogMsgSimulationFinished,
		LogFieldTrials, dist.Trials,
		LogFieldMisses, dist.Misses,
		LogFieldGated, dist.Gated)

	return dist, nil
}
