package loot

import (
	"fmt"

	"github.com/lawnchairsociety/delvegen/internal/gamemap"
	"github.com/lawnchairsociety/delvegen/internal/items"
	"github.com/lawnchairsociety/delvegen/internal/logger"
	"github.com/lawnchairsociety/delvegen/internal/rng"
)

// AmuletAttempts bounds the search for a free tile for the amulet.
const AmuletAttempts = 50

// ForcedAttempts bounds the search for a free tile for a forced spawn.
const ForcedAttempts = 50

// ItemID is the stable identifier of the n-th item created on a depth.
func ItemID(depth, n int) string {
	return fmt.Sprintf("item-%d-%d", depth, n)
}

// Spawner places items on a level. It owns an immutable template table and
// draws all entropy from the Source passed to each call.
type Spawner struct {
	templates *items.TemplateSet
	overrides WeightOverride
	maxDepth  int
}

// NewSpawner creates a spawner over templates. overrides may be nil.
func NewSpawner(templates *items.TemplateSet, overrides WeightOverride, maxDepth int) *Spawner {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Spawner{templates: templates, overrides: overrides, maxDepth: maxDepth}
}

// Templates returns the spawner's template table.
func (s *Spawner) Templates() *items.TemplateSet {
	return s.templates
}

// CategoryWeights returns the weights used at depth, preferring an override.
func (s *Spawner) CategoryWeights(depth int) CategoryWeights {
	if s.overrides != nil {
		if w, ok := s.overrides.CategoryWeightsFor(depth); ok {
			return w
		}
	}
	return CategoryWeightsFor(depth)
}

// SpawnItems makes up to targetCount attempts to place one item each. An
// attempt that lands on a claimed or unwalkable tile, or finds no template
// for its rolled rarity, produces nothing. Placed items claim their tile.
func (s *Spawner) SpawnItems(src *rng.Source, rooms []gamemap.Room, targetCount int, grid *gamemap.Grid, occupied *gamemap.Occupancy, depth int) []items.Item {
	if len(rooms) == 0 {
		return nil
	}

	var spawned []items.Item
	for attempt := 0; attempt < targetCount; attempt++ {
		pos, ok := pickTile(src, rooms, grid, occupied)
		if !ok {
			continue
		}
		item, ok := s.rollItem(src, depth, ItemID(depth, len(spawned)))
		if !ok {
			continue
		}
		occupied.Claim(pos)
		spawned = append(spawned, item.At(pos))
	}

	logger.Debug("items spawned", "depth", depth, "attempts", targetCount, "placed", len(spawned))
	return spawned
}

// rollItem runs the rarity, category, template, curse and bonus draws in that
// order.
func (s *Spawner) rollItem(src *rng.Source, depth int, id string) (items.Item, bool) {
	rarityWeights := RarityWeightsAt(depth, s.maxDepth)
	rarity := items.Rarity(src.WeightedIndex(rarityWeights[:]))

	categoryWeights := s.CategoryWeights(depth)
	idx := src.WeightedIndex(categoryWeights[:])
	if idx < 0 {
		return items.Item{}, false
	}
	category := SpawnCategories[idx]

	if light, ok := rollLight(src, category, depth); ok {
		return light.build(id), true
	}

	tmpl, ok := rng.Pick(src, s.templates.Filter(category, rarity, depth))
	if !ok {
		return items.Item{}, false
	}
	return s.build(src, tmpl, depth, id, true), true
}

// build finishes an item from a template. When roll is false the item is
// uncursed with no bonus and no curse or bonus draws are made.
func (s *Spawner) build(src *rng.Source, tmpl items.Template, depth int, id string, roll bool) items.Item {
	cursed, bonus := false, 0
	if roll && tmpl.Category.IsCursable() {
		cursed = src.Chance(CurseChance(tmpl.Rarity, depth))
		if tmpl.Category == items.Ring && tmpl.Ring.AlwaysCursed() {
			cursed = true
		}
		bonus = rollBonus(src, depth, tmpl.Rarity, cursed)
	}

	item := items.NewItem(id, tmpl.Name, tmpl.Sprite, tmpl.Details(src), tmpl.Rarity, bonus, cursed)
	item.PowerTier = tmpl.Tier
	return item
}

// Forced describes an item the guarantee pass must add regardless of rolls.
type Forced struct {
	Category items.Category
	Tiers    []items.PowerTier
	// Keep narrows the eligible templates; nil keeps all of them.
	Keep func(items.Template) bool
}

// SpawnForced places one item matching f on a free interior tile, trying up
// to ForcedAttempts tiles. Forced items are never cursed and carry no bonus.
func (s *Spawner) SpawnForced(src *rng.Source, f Forced, rooms []gamemap.Room, grid *gamemap.Grid, occupied *gamemap.Occupancy, depth int, id string) (items.Item, bool) {
	var candidates []items.Template
	if !f.Category.IsLightSource() && f.Category != items.OilFlask {
		candidates = s.templates.FilterTiers(f.Category, f.Tiers, depth, f.Keep)
		if len(candidates) == 0 {
			return items.Item{}, false
		}
	}

	pos, ok := findFreeTile(src, rooms, grid, occupied, ForcedAttempts)
	if !ok {
		return items.Item{}, false
	}

	var item items.Item
	if light, ok := rollLight(src, f.Category, depth); ok {
		item = light.build(id)
	} else {
		tmpl, _ := rng.Pick(src, candidates)
		item = s.build(src, tmpl, depth, id, false)
	}
	occupied.Claim(pos)
	return item.At(pos), true
}

// SpawnAmulet places the identified, uncursed win-condition amulet inside
// room. When the random draws all land on claimed tiles it takes the center if
// free, else the first free tile of the room in row-major order. Only a fully
// claimed room puts it on the center regardless.
func SpawnAmulet(src *rng.Source, room gamemap.Room, grid *gamemap.Grid, occupied *gamemap.Occupancy, id string) items.Item {
	pos, ok := gamemap.Position{}, false
	for attempt := 0; attempt < AmuletAttempts && !ok; attempt++ {
		pos = room.RandomInterior(src)
		ok = occupied.Free(grid, pos)
	}
	if !ok {
		pos, ok = room.Center(), occupied.Free(grid, room.Center())
	}
	if !ok {
		pos, ok = firstFreeTile(room, grid, occupied)
	}
	if !ok {
		pos = room.Center()
	}
	occupied.Claim(pos)

	amulet := items.NewItem(id, "Amulet of Yendor", "amulet_yendor", items.AmuletDetails{}, items.Rare, 0, false)
	amulet.Identified = true
	return amulet.At(pos)
}

// firstFreeTile scans room's footprint row by row.
func firstFreeTile(room gamemap.Room, grid *gamemap.Grid, occupied *gamemap.Occupancy) (gamemap.Position, bool) {
	for y := room.Y; y <= room.Bottom(); y++ {
		for x := room.X; x <= room.Right(); x++ {
			if p := gamemap.Pos(x, y); occupied.Free(grid, p) {
				return p, true
			}
		}
	}
	return gamemap.Position{}, false
}

func findFreeTile(src *rng.Source, rooms []gamemap.Room, grid *gamemap.Grid, occupied *gamemap.Occupancy, attempts int) (gamemap.Position, bool) {
	for i := 0; i < attempts; i++ {
		if pos, ok := pickTile(src, rooms, grid, occupied); ok {
			return pos, true
		}
	}
	return gamemap.Position{}, false
}
