package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Rarity / type errors
	ErrMsgInvalidRarity   = "invalid rarity"
	ErrMsgInvalidItemType = "invalid item type"

	// Catalog errors
	ErrMsgDuplicateSKU  = "duplicate sku"
	ErrMsgEmptyCatalog  = "catalog has no items"
	ErrMsgInvalidConfig = "invalid configuration"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
// The roll path itself never returns errors; these cover catalog loading,
// verification and configuration.
var (
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	ErrInvalidRarity   = errors.New(ErrMsgInvalidRarity)
	ErrInvalidItemType = errors.New(ErrMsgInvalidItemType)

	ErrDuplicateSKU  = errors.New(ErrMsgDuplicateSKU)
	ErrEmptyCatalog  = errors.New(ErrMsgEmptyCatalog)
	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
