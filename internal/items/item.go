package items

import (
	"fmt"

	"github.com/lawnchairsociety/delvegen/internal/gamemap"
)

// Details is the category-specific payload of an Item. Consumers switch on the
// concrete type; Category ties each payload to its discriminant.
type Details interface {
	Category() Category
}

// WeaponDetails describes a melee weapon.
type WeaponDetails struct {
	Damage    string // dice notation
	TwoHanded bool
}

// ArmorDetails describes body armor.
type ArmorDetails struct {
	ArmorClass int
}

// PotionDetails describes a potion.
type PotionDetails struct {
	Kind  PotionType
	Power string // dice notation for the strength of the effect, may be empty
}

// ScrollDetails describes a scroll.
type ScrollDetails struct {
	Kind ScrollType
}

// RingDetails describes a ring.
type RingDetails struct {
	Kind RingType
}

// WandDetails describes a wand.
type WandDetails struct {
	Kind    WandType
	Charges int
}

// FoodDetails describes something edible.
type FoodDetails struct {
	Nutrition int
}

// LightDetails describes a torch, lantern or artifact light.
type LightDetails struct {
	Kind     Category // Torch, Lantern or Artifact
	Fuel     int      // turns of light remaining; 0 with Infinite for artifacts
	Radius   int
	Infinite bool
}

// OilFlaskDetails describes lantern fuel.
type OilFlaskDetails struct {
	Fuel int
}

// AmuletDetails marks the win-condition amulet.
type AmuletDetails struct{}

func (WeaponDetails) Category() Category   { return Weapon }
func (ArmorDetails) Category() Category    { return Armor }
func (PotionDetails) Category() Category   { return Potion }
func (ScrollDetails) Category() Category   { return Scroll }
func (RingDetails) Category() Category     { return Ring }
func (WandDetails) Category() Category     { return Wand }
func (FoodDetails) Category() Category     { return Food }
func (d LightDetails) Category() Category  { return d.Kind }
func (OilFlaskDetails) Category() Category { return OilFlask }
func (AmuletDetails) Category() Category   { return Amulet }

// Item is an immutable generated item. Bonus and Cursed are only meaningful for
// cursable categories; the curse roll happens once, at creation.
type Item struct {
	ID         string
	Name       string
	SpriteName string
	Identified bool
	Position   gamemap.Position

	Category  Category
	Rarity    Rarity
	PowerTier PowerTier
	Bonus     int
	Cursed    bool
	Details   Details
}

// NewItem builds an item, deriving Category from details and the display name
// from the base name and bonus.
func NewItem(id, baseName, sprite string, details Details, rarity Rarity, bonus int, cursed bool) Item {
	return Item{
		ID:         id,
		Name:       DisplayName(baseName, bonus),
		SpriteName: sprite,
		Identified: details.Category().KnownOnSight(),
		Category:   details.Category(),
		Rarity:     rarity,
		Bonus:      bonus,
		Cursed:     cursed,
		Details:    details,
	}
}

// DisplayName appends positive bonuses to the base name ("Long Sword +2").
// Negative bonuses stay hidden until the item is identified elsewhere.
func DisplayName(baseName string, bonus int) string {
	if bonus > 0 {
		return fmt.Sprintf("%s +%d", baseName, bonus)
	}
	return baseName
}

// At returns a copy of the item placed at p.
func (i Item) At(p gamemap.Position) Item {
	i.Position = p
	return i
}

// IsHealingPotion reports whether the item is a healing or extra healing potion.
func (i Item) IsHealingPotion() bool {
	d, ok := i.Details.(PotionDetails)
	return ok && d.Kind.IsHealing()
}

// IsScroll reports whether the item is a scroll of the given kind.
func (i Item) IsScroll(kind ScrollType) bool {
	d, ok := i.Details.(ScrollDetails)
	return ok && d.Kind == kind
}
