package items

import "github.com/lawnchairsociety/delvegen/internal/rng"

// Template is one item blueprint. Only the fields relevant to Category are set.
type Template struct {
	Key      string
	Name     string
	Sprite   string
	Category Category
	Rarity   Rarity
	Tier     PowerTier
	MinDepth int // 0 means no lower bound
	MaxDepth int // 0 means no upper bound

	Damage     string
	TwoHanded  bool
	ArmorClass int
	Potion     PotionType
	Scroll     ScrollType
	Ring       RingType
	Wand       WandType
	Charges    string // dice notation
	Power      string // dice notation
	Nutrition  int
}

// WithinDepth reports whether the template's explicit depth window admits depth.
func (t Template) WithinDepth(depth int) bool {
	if t.MinDepth > 0 && depth < t.MinDepth {
		return false
	}
	if t.MaxDepth > 0 && depth > t.MaxDepth {
		return false
	}
	return true
}

// AllowedTier reports whether the template's power tier is in tiers.
// Ungated templates are always allowed.
func (t Template) AllowedTier(tiers []PowerTier) bool {
	if t.Tier == TierNone {
		return true
	}
	for _, tier := range tiers {
		if t.Tier == tier {
			return true
		}
	}
	return false
}

// TemplateSet is an immutable table of templates grouped by category.
// Order within a category follows the order templates were supplied in.
type TemplateSet struct {
	byCategory map[Category][]Template
	count      int
}

// NewTemplateSet groups templates by category.
func NewTemplateSet(templates []Template) *TemplateSet {
	s := &TemplateSet{byCategory: make(map[Category][]Template)}
	for _, t := range templates {
		s.byCategory[t.Category] = append(s.byCategory[t.Category], t)
		s.count++
	}
	return s
}

// Len returns the number of templates in the set.
func (s *TemplateSet) Len() int {
	return s.count
}

// ByCategory returns a copy of every template of category c.
func (s *TemplateSet) ByCategory(c Category) []Template {
	return append([]Template(nil), s.byCategory[c]...)
}

// Filter returns the templates of category c with the given rarity that are
// available at depth, honoring both power tier gates and depth windows.
func (s *TemplateSet) Filter(c Category, rarity Rarity, depth int) []Template {
	tiers := TiersForDepth(depth)
	var out []Template
	for _, t := range s.byCategory[c] {
		if t.Rarity == rarity && t.AllowedTier(tiers) && t.WithinDepth(depth) {
			out = append(out, t)
		}
	}
	return out
}

// FilterTiers returns templates of category c allowed by tiers and available at
// depth, regardless of rarity. keep, when non-nil, further narrows the result.
func (s *TemplateSet) FilterTiers(c Category, tiers []PowerTier, depth int, keep func(Template) bool) []Template {
	var out []Template
	for _, t := range s.byCategory[c] {
		if !t.AllowedTier(tiers) || !t.WithinDepth(depth) {
			continue
		}
		if keep != nil && !keep(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Details builds the category payload for an item made from t. Wand charges
// are rolled from src; everything else is copied.
func (t Template) Details(src *rng.Source) Details {
	switch t.Category {
	case Weapon:
		return WeaponDetails{Damage: t.Damage, TwoHanded: t.TwoHanded}
	case Armor:
		return ArmorDetails{ArmorClass: t.ArmorClass}
	case Potion:
		return PotionDetails{Kind: t.Potion, Power: t.Power}
	case Scroll:
		return ScrollDetails{Kind: t.Scroll}
	case Ring:
		return RingDetails{Kind: t.Ring}
	case Wand:
		charges := 0
		if t.Charges != "" {
			charges = max(1, src.Roll(t.Charges))
		}
		return WandDetails{Kind: t.Wand, Charges: charges}
	case Food:
		return FoodDetails{Nutrition: t.Nutrition}
	default:
		return nil
	}
}
