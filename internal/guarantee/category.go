package guarantee

import (
	"fmt"

	"github.com/lawnchairsociety/delvegen/internal/items"
	"github.com/lawnchairsociety/delvegen/internal/loot"
)

// Category is a tracked group of items with a guaranteed minimum.
type Category string

const (
	HealingPotions  Category = "healing_potions"
	IdentifyScrolls Category = "identify_scrolls"
	Food            Category = "food"
	LightSources    Category = "light_sources"
	OilFlasks       Category = "oil_flasks"
	Weapons         Category = "weapons"
	Armor           Category = "armor"
)

// Categories lists every tracked category in the order deficits are repaired.
var Categories = []Category{HealingPotions, IdentifyScrolls, Food, LightSources, OilFlasks, Weapons, Armor}

// ParseCategory validates a guarantee category key.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Matches reports whether item counts toward c.
func (c Category) Matches(item items.Item) bool {
	switch c {
	case HealingPotions:
		return item.IsHealingPotion()
	case IdentifyScrolls:
		return item.IsScroll(items.ScrollIdentify)
	case Food:
		return item.Category == items.Food
	case LightSources:
		return item.Category.IsLightSource()
	case OilFlasks:
		return item.Category == items.OilFlask
	case Weapons:
		return item.Category == items.Weapon
	case Armor:
		return item.Category == items.Armor
	default:
		return false
	}
}

// lanternDepth is where forced light sources switch from torches to lanterns.
const lanternDepth = 11

// forced describes the item a deficit of c spawns at depth.
func (c Category) forced(depth int, tiers []items.PowerTier) loot.Forced {
	f := loot.Forced{Tiers: tiers}
	switch c {
	case HealingPotions:
		f.Category = items.Potion
		f.Keep = func(t items.Template) bool { return t.Potion.IsHealing() }
	case IdentifyScrolls:
		f.Category = items.Scroll
		f.Keep = func(t items.Template) bool { return t.Scroll == items.ScrollIdentify }
	case Food:
		f.Category = items.Food
	case LightSources:
		f.Category = items.Torch
		if depth >= lanternDepth {
			f.Category = items.Lantern
		}
	case OilFlasks:
		f.Category = items.OilFlask
	case Weapons:
		f.Category = items.Weapon
	case Armor:
		f.Category = items.Armor
	}
	return f
}
