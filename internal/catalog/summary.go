package catalog

import (
	"sort"

	"github.com/osse101/FocusLoot_Go/internal/domain"
	"github.com/osse101/FocusLoot_Go/internal/logger"
)

// Summary counts catalog items per tier and category.
type Summary struct {
	Total   int
	ByTier  [domain.RarityCount]int
	ByType  map[domain.ItemType]int
	Classes []string // distinct class locks, sorted
}

// Summarize builds a Summary and warns about tiers with no items at all.
func Summarize(items []domain.LootItem) Summary {
	s := Summary{
		Total:  len(items),
		ByType: make(map[domain.ItemType]int),
	}

	classes := make(map[string]bool)
	for _, item := range items {
		if item.Rarity.Valid() {
			s.ByTier[item.Rarity]++
		}
		s.ByType[item.Type]++
		if item.Locked() {
			classes[domain.NormalizeClass(item.ClassLock)] = true
		}
	}

	for class := range classes {
		s.Classes = append(s.Classes, class)
	}
	sort.Strings(s.Classes)

	for _, r := range domain.AllRarities() {
		if s.ByTier[r] == 0 {
			logger.Warn(LogMsgEmptyTier, LogFieldRarity, r.Code())
		}
	}

	return s
}

// Eligible returns, in catalog order, the items a player of this level and
// class could ever receive.
func Eligible(items []domain.LootItem, level int, class string) []domain.LootItem {
	class = domain.NormalizeClass(class)
	var out []domain.LootItem
	for _, item := range items {
		if item.EligibleFor(level, class) {
			out = append(out, item)
		}
	}
	return out
}
