package domain

import (
	"math"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/FocusLoot_Go/internal/utils"
)

// SessionContext describes a completed focus session. It is supplied by the
// caller and never persisted by the loot engine.
type SessionContext struct {
	SessionID      string `json:"session_id"`
	SessionMinutes int    `json:"session_minutes"`
	PlayerLevel    int    `json:"player_level"`
	PlayerClass    string `json:"player_class,omitempty"` // empty means no class
}

// NormalizeClass trims and case-folds a class identifier so "Warrior" and
// " warrior" refer to the same class.
func NormalizeClass(class string) string {
	class = strings.TrimSpace(class)
	if class == "" {
		return ""
	}
	// A Caser carries state and cannot be shared between goroutines.
	return cases.Fold().String(class)
}

// Normalize returns a copy with negative minutes and level clamped to zero
// and the class normalized. The session id is left untouched because it is
// the seed.
func (s SessionContext) Normalize() SessionContext {
	s.SessionMinutes = utils.ClampInt(s.SessionMinutes, 0, math.MaxInt)
	s.PlayerLevel = utils.ClampInt(s.PlayerLevel, 0, math.MaxInt)
	s.PlayerClass = NormalizeClass(s.PlayerClass)
	return s
}
