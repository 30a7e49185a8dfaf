package items

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCategory = errors.New("items: unknown category")
	ErrUnknownRarity   = errors.New("items: unknown rarity")
	ErrUnknownTier     = errors.New("items: unknown power tier")
	ErrUnknownSubtype  = errors.New("items: unknown subtype")
)

// Category is the item discriminant.
type Category int

const (
	Weapon Category = iota
	Armor
	Potion
	Scroll
	Ring
	Wand
	Food
	Torch
	Lantern
	Artifact
	OilFlask
	Amulet
)

// Categories lists every category in declaration order.
var Categories = []Category{Weapon, Armor, Potion, Scroll, Ring, Wand, Food, Torch, Lantern, Artifact, OilFlask, Amulet}

// String returns the string representation of a Category
func (c Category) String() string {
	switch c {
	case Weapon:
		return "weapon"
	case Armor:
		return "armor"
	case Potion:
		return "potion"
	case Scroll:
		return "scroll"
	case Ring:
		return "ring"
	case Wand:
		return "wand"
	case Food:
		return "food"
	case Torch:
		return "torch"
	case Lantern:
		return "lantern"
	case Artifact:
		return "artifact"
	case OilFlask:
		return "oil_flask"
	case Amulet:
		return "amulet"
	default:
		return "unknown"
	}
}

// ParseCategory converts a data-file key to a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// IsCursable reports whether items of this category roll for curses and enchantment.
func (c Category) IsCursable() bool {
	return c == Weapon || c == Armor || c == Ring
}

// IsLightSource reports whether the category gives light.
func (c Category) IsLightSource() bool {
	return c == Torch || c == Lantern || c == Artifact
}

// KnownOnSight reports whether items of this category are identified when generated.
func (c Category) KnownOnSight() bool {
	switch c {
	case Food, Torch, Lantern, Artifact, OilFlask, Amulet:
		return true
	default:
		return false
	}
}

// Rarity drives both selection odds and enchantment range.
type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
)

// Rarities lists every rarity from most to least common.
var Rarities = []Rarity{Common, Uncommon, Rare}

func (r Rarity) String() string {
	switch r {
	case Common:
		return "common"
	case Uncommon:
		return "uncommon"
	case Rare:
		return "rare"
	default:
		return "unknown"
	}
}

// ParseRarity converts a data-file key to a Rarity.
func ParseRarity(s string) (Rarity, error) {
	for _, r := range Rarities {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRarity, s)
}

// PowerTier gates templates by depth independently of rarity.
// TierNone templates are never gated.
type PowerTier int

const (
	TierNone PowerTier = iota
	TierBasic
	TierIntermediate
	TierAdvanced
)

func (t PowerTier) String() string {
	switch t {
	case TierNone:
		return ""
	case TierBasic:
		return "basic"
	case TierIntermediate:
		return "intermediate"
	case TierAdvanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// ParsePowerTier converts a data-file key to a PowerTier. The empty string is TierNone.
func ParsePowerTier(s string) (PowerTier, error) {
	for _, t := range []PowerTier{TierNone, TierBasic, TierIntermediate, TierAdvanced} {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

// Depths at which power tiers unlock.
const (
	IntermediateTierDepth = 9
	AdvancedTierDepth     = 17
)

// TiersForDepth returns the power tiers available at depth.
func TiersForDepth(depth int) []PowerTier {
	switch {
	case depth >= AdvancedTierDepth:
		return []PowerTier{TierBasic, TierIntermediate, TierAdvanced}
	case depth >= IntermediateTierDepth:
		return []PowerTier{TierBasic, TierIntermediate}
	default:
		return []PowerTier{TierBasic}
	}
}
