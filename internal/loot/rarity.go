// Package loot is the item spawn engine: depth-scaled rarity and category
// rolls, curses and enchantments, light sources, gold and forced spawns.
package loot

import "github.com/lawnchairsociety/delvegen/internal/items"

// DefaultMaxDepth is the depth at which the rarity curve reaches its end point.
const DefaultMaxDepth = 26

// Rarity curve end points, as weights out of 100.
var (
	shallowRarity = RarityWeights{70, 25, 5}
	deepRarity    = RarityWeights{30, 40, 30}
)

// RarityWeights are the selection weights for common, uncommon and rare.
type RarityWeights [3]float64

// Weight returns the weight of r.
func (w RarityWeights) Weight(r items.Rarity) float64 {
	return w[r]
}

// RarityWeightsAt interpolates linearly between the depth 1 and maxDepth end
// points. Depth is clamped into [1, maxDepth].
func RarityWeightsAt(depth, maxDepth int) RarityWeights {
	if maxDepth <= 1 {
		return deepRarity
	}
	depth = min(max(depth, 1), maxDepth)
	t := float64(depth-1) / float64(maxDepth-1)

	var w RarityWeights
	for i := range w {
		w[i] = shallowRarity[i] + (deepRarity[i]-shallowRarity[i])*t
	}
	return w
}
