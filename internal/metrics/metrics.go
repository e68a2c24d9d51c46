package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Loot Metrics
var (
	LootRolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootRolls,
			Help: HelpTextLootRolls,
		},
		[]string{LabelRarity, LabelOutcome},
	)

	LootSessionMinutes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameLootSessionMinutes,
			Help:    HelpTextLootSessionMinutes,
			Buckets: SessionMinuteBuckets,
		},
	)

	LootVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootVerifications,
			Help: HelpTextLootVerifications,
		},
		[]string{LabelResult},
	)

	LootSimulationTrials = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLootSimulations,
			Help: HelpTextLootSimulations,
		},
	)
)
