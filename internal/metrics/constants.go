package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Loot metric names
const (
	MetricNameLootRolls          = "loot_rolls_total"
	MetricNameLootSessionMinutes = "loot_session_minutes"
	MetricNameLootVerifications  = "loot_verifications_total"
	MetricNameLootSimulations    = "loot_simulation_trials_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextLootRolls          = "Total number of loot rolls by rarity and outcome"
	HelpTextLootSessionMinutes = "Length of the focus sessions loot was rolled for, in minutes"
	HelpTextLootVerifications  = "Total number of drop verifications by result"
	HelpTextLootSimulations    = "Total number of simulated loot rolls"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelRarity  = "rarity"
	LabelOutcome = "outcome"
	LabelResult  = "result"
)

// Outcome label values
const (
	OutcomeItem  = "item"
	OutcomeMiss  = "miss"
	OutcomeGated = "gated"
)

// Result label values
const (
	ResultMatch    = "match"
	ResultMismatch = "mismatch"
	ResultUnknown  = "unknown_sku"
)

// RarityNone labels gated rolls, which never reach rarity selection.
const RarityNone = "none"

// ============================================================================
// Buckets
// ============================================================================

// SessionMinuteBuckets covers short sprints through long deep-work blocks.
var SessionMinuteBuckets = []float64{5, 15, 25, 45, 60, 90, 120, 180, 240}
