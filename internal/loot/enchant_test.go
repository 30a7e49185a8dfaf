package loot

import (
	"testing"

	"github.com/lawnchairsociety/delvegen/internal/items"
	"github.com/lawnchairsociety/delvegen/internal/rng"
	"github.com/stretchr/testify/assert"
)

func TestEnchantmentRange(t *testing.T) {
	tests := []struct {
		depth   int
		rarity  items.Rarity
		wantMin int
		wantMax int
	}{
		{1, items.Common, 0, 1},
		{1, items.Rare, 1, 2},
		{9, items.Uncommon, 1, 2},
		{10, items.Common, 1, 3},
		{20, items.Common, 2, 5},
		{26, items.Common, 2, 5},
		{26, items.Rare, 3, 5},
	}
	for _, tt := range tests {
		lo, hi := EnchantmentRange(tt.depth, tt.rarity)
		assert.Equal(t, tt.wantMin, lo, "min at depth %d %s", tt.depth, tt.rarity)
		assert.Equal(t, tt.wantMax, hi, "max at depth %d %s", tt.depth, tt.rarity)
	}
}

func TestEnchantmentRangeInvariants(t *testing.T) {
	for depth := 1; depth <= DefaultMaxDepth; depth++ {
		commonMin, _ := EnchantmentRange(depth, items.Common)
		for _, r := range items.Rarities {
			lo, hi := EnchantmentRange(depth, r)
			assert.LessOrEqual(t, lo, hi)
			assert.GreaterOrEqual(t, lo, 0)
			assert.LessOrEqual(t, hi, MaxBonus)
		}
		rareMin, _ := EnchantmentRange(depth, items.Rare)
		assert.Equal(t, min(commonMin+1, MaxBonus), rareMin, "depth %d", depth)
	}
}

func TestCurseChance(t *testing.T) {
	assert.InDelta(t, 0.05*1.29, CurseChance(items.Common, 1), 1e-9)
	assert.InDelta(t, 0.12*1.04, CurseChance(items.Rare, 26), 1e-9)
	assert.Less(t, CurseChance(items.Uncommon, 26), CurseChance(items.Uncommon, 1))
	assert.Zero(t, CurseChance(items.Common, 200))
}

func TestRollBonusBounds(t *testing.T) {
	src := rng.New(11)
	for i := 0; i < 500; i++ {
		cursed := rollBonus(src, 13, items.Uncommon, true)
		assert.GreaterOrEqual(t, cursed, -3)
		assert.LessOrEqual(t, cursed, -1)

		lo, hi := EnchantmentRange(13, items.Uncommon)
		bonus := rollBonus(src, 13, items.Uncommon, false)
		assert.GreaterOrEqual(t, bonus, lo)
		assert.LessOrEqual(t, bonus, hi)
	}
}
