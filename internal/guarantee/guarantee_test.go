package guarantee

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lawnchairsociety/delvegen/internal/gamemap"
	"github.com/lawnchairsociety/delvegen/internal/items"
	"github.com/lawnchairsociety/delvegen/internal/level"
	"github.com/lawnchairsociety/delvegen/internal/loot"
	"github.com/lawnchairsociety/delvegen/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		label string
		want  Range
	}{
		{"1-5", Range{1, 5}},
		{" 21 - 26 ", Range{21, 26}},
		{"26", Range{26, 26}},
	}
	for _, tt := range tests {
		got, err := ParseRange(tt.label)
		require.NoError(t, err, tt.label)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "five", "5-1", "0-3", "1-", "-4", "1-2-3"} {
		_, err := ParseRange(bad)
		assert.ErrorIs(t, err, ErrBadRange, bad)
	}
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "1-5", Range{1, 5}.String())
	assert.Equal(t, "26", Range{26, 26}.String())
}

const sampleYAML = `
ranges:
  "6-10":
    minimums:
      oil_flasks: 2
  "1-5":
    category_weights:
      potion: 30
    minimums:
      healing_potions: 10
      food: 3
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Len(t, cfg.Rules, 2)
	assert.Equal(t, Range{1, 5}, cfg.Rules[0].Range, "rules are sorted by depth")
	assert.Equal(t, 10, cfg.Rules[0].Minimums[HealingPotions])
	assert.Equal(t, 2, cfg.Rules[1].Minimums[OilFlasks])

	w, ok := cfg.CategoryWeightsFor(3)
	require.True(t, ok)
	assert.Equal(t, 30.0, w.Weight(items.Potion))
	assert.Equal(t, loot.CategoryWeightsFor(3).Weight(items.Weapon), w.Weight(items.Weapon))

	_, ok = cfg.CategoryWeightsFor(7)
	assert.False(t, ok, "6-10 has no weight overrides")
	_, ok = cfg.CategoryWeightsFor(20)
	assert.False(t, ok)
}

func TestParseFailsFast(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{"bad range", "ranges:\n  \"five\":\n    minimums: {food: 1}\n", ErrBadRange},
		{"unknown guarantee", "ranges:\n  \"1-5\":\n    minimums: {wands: 1}\n", ErrUnknownCategory},
		{"unknown weight category", "ranges:\n  \"1-5\":\n    category_weights: {spellbook: 3}\n", items.ErrUnknownCategory},
		{"unspawnable weight category", "ranges:\n  \"1-5\":\n    category_weights: {amulet: 3}\n", items.ErrUnknownCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := Parse([]byte("ranges:\n  \"1-5\":\n    minimum: {food: 1}\n"))
	assert.Error(t, err, "misspelled keys are rejected")
}

func TestParseRejectsDuplicateRanges(t *testing.T) {
	doc := "ranges:\n  \"1-5\":\n    minimums: {food: 1}\n  \" 1 - 5\":\n    minimums: {food: 4}\n"
	for i := 0; i < 20; i++ {
		_, err := Parse([]byte(doc))
		assert.ErrorIs(t, err, ErrBadRange)
	}

	cfg, err := Parse([]byte("ranges:\n  \"1-5\":\n    minimums: {food: 1}\n  \"1-6\":\n    minimums: {food: 2}\n"))
	require.NoError(t, err)
	require.Len(t, cfg.Rules, 2)
	assert.Equal(t, Range{1, 5}, cfg.Rules[0].Range)
	assert.Equal(t, Range{1, 6}, cfg.Rules[1].Range)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Rules)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "guarantees.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))
	cfg, err = LoadOrDefault(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Rules, 2)
}

func TestCategoryMatches(t *testing.T) {
	healing := items.NewItem("a", "Potion of Healing", "p", items.PotionDetails{Kind: items.PotionHealing}, items.Common, 0, false)
	poison := items.NewItem("b", "Potion of Poison", "p", items.PotionDetails{Kind: items.PotionPoison}, items.Common, 0, false)
	lantern := items.NewItem("c", "Lantern", "l", items.LightDetails{Kind: items.Lantern, Fuel: 10}, items.Uncommon, 0, false)
	identify := items.NewItem("d", "Scroll of Identify", "s", items.ScrollDetails{Kind: items.ScrollIdentify}, items.Common, 0, false)

	assert.True(t, HealingPotions.Matches(healing))
	assert.False(t, HealingPotions.Matches(poison))
	assert.True(t, LightSources.Matches(lantern))
	assert.False(t, OilFlasks.Matches(lantern))
	assert.True(t, IdentifyScrolls.Matches(identify))
	assert.False(t, Weapons.Matches(identify))

	_, err := ParseCategory("potions")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func buildLevels(t *testing.T, depths ...int) []*level.Level {
	t.Helper()
	var levels []*level.Level
	for _, depth := range depths {
		l := level.New(depth, 30, 14)
		l.Rooms = []gamemap.Room{
			{ID: 0, X: 2, Y: 2, Width: 8, Height: 8},
			{ID: 1, X: 16, Y: 3, Width: 9, Height: 8},
		}
		for _, r := range l.Rooms {
			l.Tiles.CarveRoom(r)
		}
		up := l.Rooms[0].Center()
		l.StairsUp = &up
		levels = append(levels, l)
	}
	return levels
}

func TestDeficits(t *testing.T) {
	levels := buildLevels(t, 1, 2, 3)
	levels[1].Items = append(levels[1].Items,
		items.NewItem("item-2-0", "Potion of Healing", "p", items.PotionDetails{Kind: items.PotionHealing}, items.Common, 0, false).At(gamemap.Pos(4, 4)),
		items.NewItem("item-2-1", "Potion of Extra Healing", "p", items.PotionDetails{Kind: items.PotionExtraHealing}, items.Uncommon, 0, false).At(gamemap.Pos(5, 4)),
	)

	cfg := &Config{Rules: []Rule{
		{Range: Range{1, 5}, Minimums: map[Category]int{HealingPotions: 10, Food: 0}},
		{Range: Range{6, 10}, Minimums: map[Category]int{Food: 5}},
	}}

	deficits := cfg.Deficits(levels)
	require.Len(t, deficits, 1, "food minimum of 0 is met and 6-10 has no levels")
	assert.Equal(t, HealingPotions, deficits[0].Category)
	assert.Equal(t, 8, deficits[0].Count)
	assert.Equal(t, []items.PowerTier{items.TierBasic}, deficits[0].PowerTiers)
}

func TestEnforceFillsDeficits(t *testing.T) {
	levels := buildLevels(t, 1, 2, 3, 4, 5, 6)
	cfg := &Config{Rules: []Rule{
		{Range: Range{1, 5}, Minimums: map[Category]int{HealingPotions: 10, LightSources: 2, IdentifyScrolls: 1}},
	}}
	spawner := loot.NewSpawner(items.NewTemplateSet(items.DefaultTemplates()), cfg, loot.DefaultMaxDepth)

	report := Enforce(levels, cfg, spawner, rng.New(99))
	assert.Equal(t, 10, report.Placed[HealingPotions])
	assert.Equal(t, 2, report.Placed[LightSources])
	assert.Equal(t, 1, report.Placed[IdentifyScrolls])
	assert.Zero(t, report.Unfilled)

	counts := Counts(levels, Range{1, 5})
	assert.GreaterOrEqual(t, counts[HealingPotions], 10)
	assert.GreaterOrEqual(t, counts[LightSources], 2)
	assert.Empty(t, levels[5].Items, "depth 6 is outside the range")

	for _, l := range levels {
		seen := map[string]bool{}
		positions := map[gamemap.Position]bool{}
		for _, item := range l.Items {
			assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
			seen[item.ID] = true
			assert.False(t, positions[item.Position], "two items at %v", item.Position)
			positions[item.Position] = true
			assert.NotEqual(t, *l.StairsUp, item.Position)
			assert.True(t, l.Tiles.IsWalkable(item.Position))
			assert.False(t, item.Cursed)
		}
	}

	again := Enforce(levels, cfg, spawner, rng.New(99))
	assert.Empty(t, again.Deficits, "a repaired set has no deficits")
}

func TestEnforceOnlyAppends(t *testing.T) {
	levels := buildLevels(t, 1)
	original := items.NewItem("item-1-0", "Apple", "food_apple", items.FoodDetails{Nutrition: 300}, items.Common, 0, false).At(gamemap.Pos(3, 3))
	levels[0].Items = []items.Item{original}

	cfg := &Config{Rules: []Rule{{Range: Range{1, 1}, Minimums: map[Category]int{Food: 3}}}}
	spawner := loot.NewSpawner(items.NewTemplateSet(items.DefaultTemplates()), nil, loot.DefaultMaxDepth)
	Enforce(levels, cfg, spawner, rng.New(1))

	require.Len(t, levels[0].Items, 3)
	assert.Equal(t, original, levels[0].Items[0])
	assert.Equal(t, "item-1-1", levels[0].Items[1].ID)
	assert.Equal(t, "item-1-2", levels[0].Items[2].ID)
}

func TestEnforceReportsUnfillable(t *testing.T) {
	levels := buildLevels(t, 2)
	cfg := &Config{Rules: []Rule{{Range: Range{1, 5}, Minimums: map[Category]int{Weapons: 2}}}}
	spawner := loot.NewSpawner(items.NewTemplateSet(nil), nil, loot.DefaultMaxDepth)

	report := Enforce(levels, cfg, spawner, rng.New(1))
	assert.Equal(t, 2, report.Unfilled)
	assert.Empty(t, levels[0].Items)

	assert.Empty(t, Enforce(levels, nil, spawner, rng.New(1)).Deficits)
}

func TestShippedGuaranteesFileMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "data", "guarantees.yaml"))
	require.NoError(t, err)

	defaults := DefaultConfig()
	require.Len(t, cfg.Rules, len(defaults.Rules))
	for i, rule := range cfg.Rules {
		assert.Equal(t, defaults.Rules[i].Range, rule.Range)
		assert.Equal(t, defaults.Rules[i].Minimums, rule.Minimums)
		assert.Empty(t, rule.CategoryWeights)
	}
}
