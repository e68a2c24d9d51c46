package loot

// ============================================================================
// Rarity Weights
// ============================================================================

// Base weights per tier, least to most rare. Only their ratios matter; the
// table is normalized before every roll.
const (
	WeightCommon    = 600.0
	WeightUncommon  = 250.0
	WeightRare      = 100.0
	WeightSuperRare = 40.0
	WeightUltraRare = 10.0
)

// ============================================================================
// Session Duration Bias
// ============================================================================

// DefaultDurationScale is the session length (minutes) at which the duration
// bonus reaches half of its maximum strength.
const DefaultDurationScale = 60.0

// DefaultDurationBoost is the maximum per-tier multiplier growth for long
// sessions. Tier i is scaled by (1 + boost*f*i) where f is in [0, 1).
const DefaultDurationBoost = 0.5

// MaxDurationBoost bounds the boost so tier weights stay finite at every
// session length.
const MaxDurationBoost = 100.0

// ============================================================================
// Class Bias
// ============================================================================

// DefaultClassBias is the multiplicative bonus applied to tiers that hold at
// least one item locked to the player's class.
const DefaultClassBias = 0.10

// MaxClassBias caps the class bonus so it stays a small nudge.
const MaxClassBias = 1.0

// ============================================================================
// Drop Gate
// ============================================================================

// DropRateAlways disables the drop gate: every session proceeds to rarity
// selection and no gate draw is consumed.
const DropRateAlways = 1.0

// ============================================================================
// Simulation
// ============================================================================

const (
	DefaultSimulationBatchSize = 512
	DefaultSimulationWorkers   = 4
	DefaultSimulationPrefix    = "sim"

	// simulationCancelCheckEvery is how many trials run between context checks.
	simulationCancelCheckEvery = 256
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgLootRolled         = "Loot rolled"
	LogMsgNoEligibleItem     = "No eligible item for rolled rarity"
	LogMsgDropGated          = "Drop gate closed for session"
	LogMsgEmptySessionID     = "Empty session id used as loot seed"
	LogMsgInputNormalized    = "Session input normalized before roll"
	LogMsgDropVerified       = "Drop verification completed"
	LogMsgSimulationStarted  = "Loot simulation started"
	LogMsgSimulationFinished = "Loot simulation finished"
	LogMsgSimulationFailed   = "Loot simulation failed"
)

// Log field keys for structured logging
const (
	LogFieldSessionID = "session_id"
	LogFieldMinutes   = "session_minutes"
	LogFieldLevel     = "player_level"
	LogFieldClass     = "player_class"
	LogFieldRarity    = "rarity"
	LogFieldSKU       = "sku"
	LogFieldMatch     = "match"
	LogFieldTrials    = "trials"
	LogFieldWorkers   = "workers"
	LogFieldMisses    = "misses"
	LogFieldGated     = "gated"
	LogFieldError     = "error"
)
