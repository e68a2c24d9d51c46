package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Rarity is the scarcity tier of a loot item. Values are ordered from least
// to most rare, so tiers can be compared with < and >.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RaritySuperRare
	RarityUltraRare
)

// RarityCount is the number of rarity tiers.
const RarityCount = 5

// Canonical short codes used for compact storage and wire transmission.
const (
	RarityCodeCommon    = "C"
	RarityCodeUncommon  = "U"
	RarityCodeRare      = "R"
	RarityCodeSuperRare = "SR"
	RarityCodeUltraRare = "SSR"
)

var rarityCodes = [RarityCount]string{
	RarityCodeCommon,
	RarityCodeUncommon,
	RarityCodeRare,
	RarityCodeSuperRare,
	RarityCodeUltraRare,
}

var rarityNames = [RarityCount]string{
	"common",
	"uncommon",
	"rare",
	"super_rare",
	"ultra_rare",
}

// AllRarities returns every tier from least to most rare.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityUncommon, RarityRare, RaritySuperRare, RarityUltraRare}
}

// Valid reports whether r is one of the five tiers.
func (r Rarity) Valid() bool {
	return r >= RarityCommon && r <= RarityUltraRare
}

// Code returns the canonical short code (C, U, R, SR, SSR).
func (r Rarity) Code() string {
	if !r.Valid() {
		return ""
	}
	return rarityCodes[r]
}

func (r Rarity) String() string {
	if !r.Valid() {
		return fmt.Sprintf("rarity(%d)", int(r))
	}
	return rarityNames[r]
}

// ParseRarity accepts a short code or a long name, case-insensitive.
func ParseRarity(s string) (Rarity, error) {
	v := strings.TrimSpace(s)
	for i := 0; i < RarityCount; i++ {
		if strings.EqualFold(v, rarityCodes[i]) || strings.EqualFold(v, rarityNames[i]) {
			return Rarity(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRarity, s)
}

// MarshalJSON encodes the rarity as its short code.
func (r Rarity) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRarity, int(r))
	}
	return json.Marshal(r.Code())
}

// UnmarshalJSON accepts either the short code or the long name.
func (r *Rarity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRarity, string(data))
	}
	parsed, err := ParseRarity(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ItemType is the category a loot item belongs to.
type ItemType string

const (
	ItemTypeCosmetic ItemType = "cosmetic"
	ItemTypePet      ItemType = "pet"
	ItemTypeTrinket  ItemType = "trinket"
)

// AllItemTypes returns the closed set of item categories.
func AllItemTypes() []ItemType {
	return []ItemType{ItemTypeCosmetic, ItemTypePet, ItemTypeTrinket}
}

// Valid reports whether t is a known category.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeCosmetic, ItemTypePet, ItemTypeTrinket:
		return true
	default:
		return false
	}
}

// ParseItemType parses a category name, case-insensitive.
func ParseItemType(s string) (ItemType, error) {
	t := ItemType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidItemType, s)
	}
	return t, nil
}

// LootItem is a catalog entry that can be awarded at the end of a session.
type LootItem struct {
	SKU       string   `json:"sku" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Rarity    Rarity   `json:"rarity"`
	Type      ItemType `json:"type" validate:"required,oneof=cosmetic pet trinket"`
	ClassLock string   `json:"class_lock,omitempty"` // blank means any class
	MinLevel  int      `json:"min_level" validate:"gte=0"`
}

// EligibleFor reports whether a player of the given level and class may
// receive the item. class must already be normalized (see NormalizeClass).
func (i LootItem) EligibleFor(level int, class string) bool {
	if i.MinLevel > level {
		return false
	}
	lock := NormalizeClass(i.ClassLock)
	return lock == "" || lock == class
}

// Locked reports whether the item is restricted to a class. A blank lock is
// unrestricted.
func (i LootItem) Locked() bool {
	return NormalizeClass(i.ClassLock) != ""
}

// Drop is the outcome of one loot roll.
type Drop struct {
	SessionID string    `json:"session_id"`
	Rarity    Rarity    `json:"rarity"`
	Item      *LootItem `json:"item,omitempty"`  // nil means no eligible item
	Gated     bool      `json:"gated,omitempty"` // drop gate rejected the session before rarity selection
}

// HasItem reports whether the roll awarded an item.
func (d Drop) HasItem() bool {
	return d.Item != nil
}
