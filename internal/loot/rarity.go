package loot

import (
	"math"

	"github.com/osse101/FocusLoot_Go/internal/domain"
	"github.com/osse101/FocusLoot_Go/internal/utils"
)

// TierSet is a bit set of rarity tiers.
type TierSet uint8

// Has reports whether r is in the set.
func (t TierSet) Has(r domain.Rarity) bool {
	return r.Valid() && t&(1<<uint(r)) != 0
}

// With returns the set with r added. Invalid tiers are ignored.
func (t TierSet) With(r domain.Rarity) TierSet {
	if !r.Valid() {
		return t
	}
	return t | 1<<uint(r)
}

// RarityTable holds the tunable rarity distribution.
type RarityTable struct {
	// Weights per tier, least to most rare. Non-positive weights disable a tier.
	Weights [domain.RarityCount]float64
	// DurationScale is the session length in minutes at which the duration
	// bonus is at half strength.
	DurationScale float64
	// DurationBoost is the maximum per-tier growth factor for long sessions.
	DurationBoost float64
	// ClassBias multiplies the weight of tiers favored by the player's class.
	ClassBias float64
}

// DefaultRarityTable returns the production distribution.
func DefaultRarityTable() RarityTable {
	return RarityTable{
		Weights: [domain.RarityCount]float64{
			WeightCommon,
			WeightUncommon,
			WeightRare,
			WeightSuperRare,
			WeightUltraRare,
		},
		DurationScale: DefaultDurationScale,
		DurationBoost: DefaultDurationBoost,
		ClassBias:     DefaultClassBias,
	}
}

// sanitized clamps the tuning knobs into the ranges that keep the duration
// curve monotonic and the class bias small.
func (t RarityTable) sanitized() RarityTable {
	t.DurationBoost = utils.ClampFloat(t.DurationBoost, 0, MaxDurationBoost)
	t.ClassBias = utils.ClampFloat(t.ClassBias, 0, MaxClassBias)
	return t
}

// DurationFactor returns the duration bonus strength in [0, 1) for a session
// length. It is 0 for sessions of zero or negative length and never decreases
// as minutes grow.
func (t RarityTable) DurationFactor(minutes int) float64 {
	return utils.DiminishingReturns(float64(minutes), t.DurationScale)
}

// Probabilities returns the normalized chance of each tier for a session of
// the given length. Tiers in favored receive the class bias. The result
// always sums to 1; a table with no positive weight resolves to Common.
//
// Tier i gets weight w_i * (1 + boost*f*i), so higher tiers grow faster as f
// grows and the mass on any "this tier or rarer" set never shrinks.
func (t RarityTable) Probabilities(minutes int, favored TierSet) [domain.RarityCount]float64 {
	t = t.sanitized()
	f := t.DurationFactor(minutes)

	var eff [domain.RarityCount]float64
	total := 0.0
	for i, w := range t.Weights {
		if !(w > 0) || math.IsInf(w, 1) {
			continue
		}
		// Explicit conversions round each product so the compiler cannot fuse
		// them into FMA instructions on some architectures.
		e := w * (1 + float64(float64(t.DurationBoost*f)*float64(i)))
		if favored.Has(domain.Rarity(i)) {
			e = float64(e * (1 + t.ClassBias))
		}
		eff[i] = e
		total += e
	}

	if !(total > 0) || math.IsInf(total, 1) {
		return [domain.RarityCount]float64{1}
	}
	for i := range eff {
		eff[i] /= total
	}
	return eff
}

// Roll consumes exactly one draw and maps it onto a tier through the
// cumulative probabilities. It always returns a valid rarity.
func (t RarityTable) Roll(st *Stream, minutes int, favored TierSet) domain.Rarity {
	probs := t.Probabilities(minutes, favored)
	return pickRarity(probs, st.Float64())
}

func pickRarity(probs [domain.RarityCount]float64, roll float64) domain.Rarity {
	cumulative := 0.0
	last := domain.RarityCommon
	for i, p := range probs {
		if p <= 0 {
			continue
		}
		last = domain.Rarity(i)
		cumulative += p
		if roll < cumulative {
			return last
		}
	}
	// Rounding can leave the cumulative sum a hair below 1.
	return last
}
