package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/FocusLoot_Go/internal/domain"
)

var validate = validator.New()

// Validate checks every field against its validation tags and reports all
// failures at once
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed '%s' (value: %v)", fe.Field(), formatTag(fe), fe.Value()))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(msgs, "; "))
}

func formatTag(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

// Warnings returns non-fatal notes about settings that are valid but unusual
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DropRate == 0 {
		warnings = append(warnings, "LOOT_DROP_RATE is 0 - every session will be gated and no loot will drop")
	}

	if c.DurationBoost == 0 {
		warnings = append(warnings, "LOOT_DURATION_BOOST is 0 - longer sessions will not improve rarity odds")
	}

	if c.Environment == "prod" && c.LogFormat != "json" {
		warnings = append(warnings, "LOG_FORMAT is not json in prod - structured log ingestion may fail")
	}

	return warnings
}
