package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRarity_Ordering(t *testing.T) {
	all := AllRarities()
	require.Len(t, all, RarityCount)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1], all[i], "tiers must be ordered least to most rare")
	}
}

func TestRarity_Codes(t *testing.T) {
	tests := []struct {
		rarity Rarity
		code   string
		name   string
	}{
		{RarityCommon, "C", "common"},
		{RarityUncommon, "U", "uncommon"},
		{RarityRare, "R", "rare"},
		{RaritySuperRare, "SR", "super_rare"},
		{RarityUltraRare, "SSR", "ultra_rare"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.rarity.Code())
			assert.Equal(t, tt.name, tt.rarity.String())

			fromCode, err := ParseRarity(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.rarity, fromCode)

			fromName, err := ParseRarity(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.rarity, fromName)
		})
	}
}

func TestParseRarity_Invalid(t *testing.T) {
	for _, in := range []string{"", "legendary", "SSSR", "5"} {
		_, err := ParseRarity(in)
		assert.ErrorIs(t, err, ErrInvalidRarity, "input %q", in)
	}
}

func TestRarity_OutOfRange(t *testing.T) {
	r := Rarity(9)
	assert.False(t, r.Valid())
	assert.Empty(t, r.Code())
	assert.Equal(t, "rarity(9)", r.String())

	_, err := json.Marshal(r)
	assert.Error(t, err)
}

func TestRarity_JSON(t *testing.T) {
	data, err := json.Marshal(RaritySuperRare)
	require.NoError(t, err)
	assert.JSONEq(t, `"SR"`, string(data))

	var r Rarity
	require.NoError(t, json.Unmarshal([]byte(`"ultra_rare"`), &r))
	assert.Equal(t, RarityUltraRare, r)

	assert.ErrorIs(t, json.Unmarshal([]byte(`3`), &r), ErrInvalidRarity)
	assert.ErrorIs(t, json.Unmarshal([]byte(`"mythic"`), &r), ErrInvalidRarity)
}

func TestParseItemType(t *testing.T) {
	got, err := ParseItemType(" Pet ")
	require.NoError(t, err)
	assert.Equal(t, ItemTypePet, got)

	_, err = ParseItemType("weapon")
	assert.ErrorIs(t, err, ErrInvalidItemType)

	for _, it := range AllItemTypes() {
		assert.True(t, it.Valid())
	}
}

func TestLootItem_EligibleFor(t *testing.T) {
	tests := []struct {
		name  string
		item  LootItem
		level int
		class string
		want  bool
	}{
		{"unlocked, level met", LootItem{MinLevel: 5}, 5, "", true},
		{"unlocked, level short", LootItem{MinLevel: 5}, 4, "", false},
		{"locked, no class", LootItem{ClassLock: "mage"}, 10, "", false},
		{"locked, other class", LootItem{ClassLock: "mage"}, 10, "warrior", false},
		{"locked, same class", LootItem{ClassLock: "mage"}, 10, "mage", true},
		{"lock is folded", LootItem{ClassLock: "Mage"}, 10, "mage", true},
		{"zero level, zero min", LootItem{}, 0, "", true},
		{"blank lock, no class", LootItem{ClassLock: "  "}, 1, "", true},
		{"blank lock, any class", LootItem{ClassLock: "  "}, 1, "warrior", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.EligibleFor(tt.level, tt.class))
		})
	}
}

func TestLootItem_Locked(t *testing.T) {
	assert.False(t, LootItem{}.Locked())
	assert.False(t, LootItem{ClassLock: " \t"}.Locked())
	assert.True(t, LootItem{ClassLock: "Mage"}.Locked())
}

func TestLootItem_JSON(t *testing.T) {
	raw := `{"sku":"pet-fox","name":"Ember Fox","rarity":"SR","type":"pet","class_lock":"ranger","min_level":12}`

	var item LootItem
	require.NoError(t, json.Unmarshal([]byte(raw), &item))
	assert.Equal(t, LootItem{
		SKU:       "pet-fox",
		Name:      "Ember Fox",
		Rarity:    RaritySuperRare,
		Type:      ItemTypePet,
		ClassLock: "ranger",
		MinLevel:  12,
	}, item)

	out, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestSessionContext_Normalize(t *testing.T) {
	in := SessionContext{SessionID: " s-1 ", SessionMinutes: -5, PlayerLevel: -1, PlayerClass: "  Warrior "}
	got := in.Normalize()

	assert.Equal(t, " s-1 ", got.SessionID, "session id is the seed and must not change")
	assert.Equal(t, 0, got.SessionMinutes)
	assert.Equal(t, 0, got.PlayerLevel)
	assert.Equal(t, "warrior", got.PlayerClass)

	// original untouched
	assert.Equal(t, -5, in.SessionMinutes)
}

func TestDrop_HasItem(t *testing.T) {
	assert.False(t, Drop{}.HasItem())
	assert.True(t, Drop{Item: &LootItem{SKU: "x"}}.HasItem())
}
