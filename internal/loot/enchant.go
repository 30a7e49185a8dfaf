package loot

import (
	"github.com/lawnchairsociety/delvegen/internal/items"
	"github.com/lawnchairsociety/delvegen/internal/rng"
)

// MaxBonus caps every positive enchantment.
const MaxBonus = 5

var baseCurseChance = map[items.Rarity]float64{
	items.Common:   0.05,
	items.Uncommon: 0.08,
	items.Rare:     0.12,
}

// CurseChance is the rarity's base chance scaled by max(0, 1.3 - depth*0.01).
func CurseChance(rarity items.Rarity, depth int) float64 {
	multiplier := max(0, 1.3-float64(depth)*0.01)
	return baseCurseChance[rarity] * multiplier
}

// EnchantmentRange returns the inclusive bonus range for an uncursed item.
// Rare items sit one step above the others at both ends, subject to MaxBonus.
func EnchantmentRange(depth int, rarity items.Rarity) (minBonus, maxBonus int) {
	depth = max(depth, 1)
	minBonus = depth / 9
	maxBonus = min(MaxBonus, 1+depth/5)
	if rarity == items.Rare {
		minBonus++
		maxBonus = min(MaxBonus, maxBonus+1)
	}
	minBonus = min(minBonus, maxBonus)
	return minBonus, maxBonus
}

// rollBonus draws the bonus for a cursable item: -1..-3 when cursed,
// otherwise within EnchantmentRange.
func rollBonus(src *rng.Source, depth int, rarity items.Rarity, cursed bool) int {
	if cursed {
		return -src.NextInt(1, 3)
	}
	lo, hi := EnchantmentRange(depth, rarity)
	return src.NextInt(lo, hi)
}
