package loot

import (
	"fmt"

	"github.com/lawnchairsociety/delvegen/internal/items"
)

// SpawnCategories are the categories the regular item roll can produce, in
// the order their weights are listed.
var SpawnCategories = []items.Category{
	items.Weapon, items.Armor, items.Potion, items.Scroll, items.Ring,
	items.Wand, items.Food, items.Torch, items.Lantern, items.OilFlask,
}

// CategoryWeights holds one weight per entry of SpawnCategories.
type CategoryWeights [10]float64

// Weight returns the weight of c, or 0 if c is not a spawn category.
func (w CategoryWeights) Weight(c items.Category) float64 {
	if i := spawnIndex(c); i >= 0 {
		return w[i]
	}
	return 0
}

// With returns a copy of w with the listed categories replaced.
func (w CategoryWeights) With(overrides map[items.Category]float64) (CategoryWeights, error) {
	for c, weight := range overrides {
		i := spawnIndex(c)
		if i < 0 {
			return w, fmt.Errorf("%w: %s is not a spawnable category", items.ErrUnknownCategory, c)
		}
		if weight < 0 {
			return w, fmt.Errorf("negative weight %v for %s", weight, c)
		}
		w[i] = weight
	}
	return w, nil
}

func spawnIndex(c items.Category) int {
	for i, sc := range SpawnCategories {
		if sc == c {
			return i
		}
	}
	return -1
}

// CategoryBand applies Weights to depths MinDepth..MaxDepth inclusive.
type CategoryBand struct {
	MinDepth int
	MaxDepth int
	Weights  CategoryWeights
}

// DefaultCategoryBands shift weight from torches and potions early toward
// rings, wands and lanterns deep.
var DefaultCategoryBands = []CategoryBand{
	//                       wpn arm pot scr rng wnd fd  trc lan oil
	{1, 5, CategoryWeights{12, 12, 22, 18, 2, 2, 14, 12, 2, 4}},
	{6, 10, CategoryWeights{13, 13, 20, 18, 4, 4, 12, 7, 4, 5}},
	{11, 15, CategoryWeights{13, 13, 19, 18, 5, 5, 11, 4, 6, 6}},
	{16, 20, CategoryWeights{13, 13, 18, 18, 6, 6, 10, 3, 7, 6}},
	{21, 26, CategoryWeights{13, 13, 18, 18, 7, 7, 10, 2, 7, 5}},
}

// CategoryWeightsFor returns the band weights covering depth. Depths beyond
// the last band use the last band; depths before the first use the first.
func CategoryWeightsFor(depth int) CategoryWeights {
	for _, band := range DefaultCategoryBands {
		if depth >= band.MinDepth && depth <= band.MaxDepth {
			return band.Weights
		}
	}
	if depth < DefaultCategoryBands[0].MinDepth {
		return DefaultCategoryBands[0].Weights
	}
	return DefaultCategoryBands[len(DefaultCategoryBands)-1].Weights
}

// WeightOverride supplies replacement category weights for some depths.
type WeightOverride interface {
	CategoryWeightsFor(depth int) (CategoryWeights, bool)
}
