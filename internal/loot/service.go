package loot

import (
	"context"
	"fmt"

	"github.com/osse101/FocusLoot_Go/internal/domain"
	"github.com/osse101/FocusLoot_Go/internal/logger"
	"github.com/osse101/FocusLoot_Go/internal/metrics"
)

// Service defines the loot operations exposed to callers
type Service interface {
	RollLoot(ctx context.Context, session domain.SessionContext) domain.Drop
	VerifyDrop(ctx context.Context, session domain.SessionContext, sku string) (bool, error)
	Catalog() []domain.LootItem
}

type service struct {
	engine *Engine
	skus   map[string]struct{}
}

// NewService creates a new loot service around engine
func NewService(engine *Engine) Service {
	skus := make(map[string]struct{}, len(engine.catalog))
	for _, item := range engine.catalog {
		skus[item.SKU] = struct{}{}
	}
	return &service{
		engine: engine,
		skus:   skus,
	}
}

// RollLoot rolls the drop for a finished session, logging and recording the
// outcome. It never fails; check Drop.HasItem for a zero-drop result.
func (s *service) RollLoot(ctx context.Context, session domain.SessionContext) domain.Drop {
	log := logger.FromContext(ctx)

	if session.SessionID == "" {
		log.Warn(LogMsgEmptySessionID)
	}
	if session.SessionMinutes < 0 || session.PlayerLevel < 0 {
		log.Debug(LogMsgInputNormalized,
			LogFieldSessionID, session.SessionID,
			LogFieldMinutes, session.SessionMinutes,
			LogFieldLevel, session.PlayerLevel)
	}

	drop := s.engine.Roll(session)
	normalized := session.Normalize()
	metrics.LootSessionMinutes.Observe(float64(normalized.SessionMinutes))

	switch {
	case drop.Gated:
		metrics.LootRolls.WithLabelValues(metrics.RarityNone, metrics.OutcomeGated).Inc()
		log.Info(LogMsgDropGated, LogFieldSessionID, drop.SessionID)
	case !drop.HasItem():
		metrics.LootRolls.WithLabelValues(drop.Rarity.Code(), metrics.OutcomeMiss).Inc()
		log.Info(LogMsgNoEligibleItem,
			LogFieldSessionID, drop.SessionID,
			LogFieldRarity, drop.Rarity.Code(),
			LogFieldLevel, normalized.PlayerLevel,
			LogFieldClass, normalized.PlayerClass)
	default:
		metrics.LootRolls.WithLabelValues(drop.Rarity.Code(), metrics.OutcomeItem).Inc()
		log.Info(LogMsgLootRolled,
			LogFieldSessionID, drop.SessionID,
			LogFieldMinutes, normalized.SessionMinutes,
			LogFieldRarity, drop.Rarity.Code(),
			LogFieldSKU, drop.Item.SKU)
	}

	return drop
}

// VerifyDrop re-rolls a session and reports whether it awards sku. An empty
// sku verifies a reported "no item" result. A sku that is not in the catalog
// returns domain.ErrItemNotFound.
func (s *service) VerifyDrop(ctx context.Context, session domain.SessionContext, sku string) (bool, error) {
	log := logger.FromContext(ctx)

	if sku != "" {
		if _, ok := s.skus[sku]; !ok {
			metrics.LootVerifications.WithLabelValues(metrics.ResultUnknown).Inc()
			return false, fmt.Errorf("%w: '%s'", domain.ErrItemNotFound, sku)
		}
	}

	drop := s.engine.Roll(session)
	got := ""
	if drop.HasItem() {
		got = drop.Item.SKU
	}
	match := got == sku

	result := metrics.ResultMismatch
	if match {
		result = metrics.ResultMatch
	}
	metrics.LootVerifications.WithLabelValues(result).Inc()

	log.Info(LogMsgDropVerified,
		LogFieldSessionID, session.SessionID,
		LogFieldSKU, sku,
		LogFieldMatch, match)

	return match, nil
}

// Catalog returns a copy of the catalog the service rolls against
func (s *service) Catalog() []domain.LootItem {
	return s.engine.Catalog()
}
