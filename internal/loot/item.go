package loot

import "github.com/osse101/FocusLoot_Go/internal/domain"

// FallbackPolicy decides what happens when the rolled tier has no item the
// player is eligible for.
type FallbackPolicy int

const (
	// FallbackNone treats an empty tier as a silent miss.
	FallbackNone FallbackPolicy = iota
	// FallbackDowngrade walks down from the rolled tier to Common and awards
	// from the first tier with an eligible item. It still consumes a single
	// item draw.
	FallbackDowngrade
)

// String returns the config name of the policy.
func (p FallbackPolicy) String() string {
	switch p {
	case FallbackDowngrade:
		return "downgrade"
	default:
		return "none"
	}
}

// ParseFallbackPolicy maps a config value to a policy. Unknown values select
// FallbackNone.
func ParseFallbackPolicy(s string) FallbackPolicy {
	if s == FallbackDowngrade.String() {
		return FallbackDowngrade
	}
	return FallbackNone
}

// eligibleIndexes returns, in catalog order, the positions of items of the
// given rarity that a player of this level and (normalized) class may receive.
func eligibleIndexes(items []domain.LootItem, rarity domain.Rarity, level int, class string) []int {
	var idx []int
	for i := range items {
		if items[i].Rarity == rarity && items[i].EligibleFor(level, class) {
			idx = append(idx, i)
		}
	}
	return idx
}

// RollItem picks one eligible item of the given rarity. Eligible items keep
// their catalog order and the index is st.Intn(count), so the pick is
// reproducible for a given stream position.
//
// It returns false, without consuming a draw, when no item qualifies. That is
// a normal outcome, not an error.
func RollItem(st *Stream, rarity domain.Rarity, items []domain.LootItem, level int, class string) (domain.LootItem, bool) {
	class = domain.NormalizeClass(class)
	idx := eligibleIndexes(items, rarity, level, class)
	if len(idx) == 0 {
		return domain.LootItem{}, false
	}
	return items[idx[st.Intn(len(idx))]], true
}
