package loot

import "github.com/osse101/FocusLoot_Go/internal/domain"

// Engine rolls loot against a fixed catalog. It is immutable after
// construction and safe for concurrent use; every roll owns its own Stream.
type Engine struct {
	table      RarityTable
	catalog    []domain.LootItem
	classTiers map[string]TierSet
	dropRate   float64
	fallback   FallbackPolicy
}

// Option configures an Engine.
type Option func(*Engine)

// WithRarityTable replaces the default rarity distribution.
func WithRarityTable(t RarityTable) Option {
	return func(e *Engine) {
		e.table = t
	}
}

// WithDropRate enables the drop gate: a session only proceeds to rarity
// selection when its gate draw is below rate. A rate of 1 or more disables the
// gate and no gate draw is consumed.
func WithDropRate(rate float64) Option {
	return func(e *Engine) {
		e.dropRate = rate
	}
}

// WithFallback sets the empty-tier policy.
func WithFallback(p FallbackPolicy) Option {
	return func(e *Engine) {
		e.fallback = p
	}
}

// NewEngine builds an engine over a copy of catalog.
func NewEngine(catalog []domain.LootItem, opts ...Option) *Engine {
	e := &Engine{
		table:    DefaultRarityTable(),
		catalog:  append([]domain.LootItem(nil), catalog...),
		dropRate: DropRateAlways,
		fallback: FallbackNone,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.classTiers = make(map[string]TierSet)
	for _, item := range e.catalog {
		if !item.Locked() {
			continue
		}
		class := domain.NormalizeClass(item.ClassLock)
		e.classTiers[class] = e.classTiers[class].With(item.Rarity)
	}
	return e
}

// Catalog returns a copy of the catalog the engine rolls against.
func (e *Engine) Catalog() []domain.LootItem {
	return append([]domain.LootItem(nil), e.catalog...)
}

// Table returns the rarity distribution in use.
func (e *Engine) Table() RarityTable {
	return e.table
}

// FavoredTiers returns the tiers holding at least one item locked to class.
// Unknown or empty classes favor nothing.
func (e *Engine) FavoredTiers(class string) TierSet {
	class = domain.NormalizeClass(class)
	if class == "" {
		return 0
	}
	return e.classTiers[class]
}

// Probabilities returns the tier odds a session of this length and class
// would roll with.
func (e *Engine) Probabilities(minutes int, class string) [domain.RarityCount]float64 {
	return e.table.Probabilities(minutes, e.FavoredTiers(class))
}

// RollRarity consumes one draw and returns the rolled tier.
func (e *Engine) RollRarity(st *Stream, minutes int, class string) domain.Rarity {
	return e.table.Roll(st, minutes, e.FavoredTiers(class))
}

// RollItem picks an eligible catalog item of the rolled rarity, applying the
// engine's fallback policy when the tier is empty.
func (e *Engine) RollItem(st *Stream, rarity domain.Rarity, level int, class string) (domain.LootItem, bool) {
	class = domain.NormalizeClass(class)
	if e.fallback != FallbackDowngrade {
		return RollItem(st, rarity, e.catalog, level, class)
	}
	for r := rarity; r >= domain.RarityCommon; r-- {
		idx := eligibleIndexes(e.catalog, r, level, class)
		if len(idx) > 0 {
			return e.catalog[idx[st.Intn(len(idx))]], true
		}
	}
	return domain.LootItem{}, false
}

// gateClosed consumes the gate draw when a drop rate is configured.
func (e *Engine) gateClosed(st *Stream) bool {
	if e.dropRate >= DropRateAlways {
		return false
	}
	return st.Float64() >= e.dropRate
}

// Roll runs the full pipeline for one session: seed a stream from the
// session id, pass the optional drop gate, roll a rarity, then roll an item.
// Negative minutes and levels are clamped to zero. Roll never fails; a Drop
// without an item is a valid zero-drop result.
func (e *Engine) Roll(session domain.SessionContext) domain.Drop {
	session = session.Normalize()
	st := NewStream(session.SessionID)

	drop := domain.Drop{SessionID: session.SessionID}
	if e.gateClosed(st) {
		drop.Gated = true
		return drop
	}

	drop.Rarity = e.RollRarity(st, session.SessionMinutes, session.PlayerClass)
	if item, ok := e.RollItem(st, drop.Rarity, session.PlayerLevel, session.PlayerClass); ok {
		drop.Item = &item
	}
	return drop
}

// RollLoot returns the awarded item, or false when the session drops nothing.
func (e *Engine) RollLoot(session domain.SessionContext) (domain.LootItem, bool) {
	drop := e.Roll(session)
	if drop.Item == nil {
		return domain.LootItem{}, false
	}
	return *drop.Item, true
}

// RollLoot rolls one session against catalog with the default distribution
// and no drop gate.
func RollLoot(sessionID string, sessionMinutes, playerLevel int, playerClass string, catalog []domain.LootItem) (domain.LootItem, bool) {
	return NewEngine(catalog).RollLoot(domain.SessionContext{
		SessionID:      sessionID,
		SessionMinutes: sessionMinutes,
		PlayerLevel:    playerLevel,
		PlayerClass:    playerClass,
	})
}
