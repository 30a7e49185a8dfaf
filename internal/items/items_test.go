package items

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lawnchairsociety/delvegen/internal/gamemap"
	"github.com/lawnchairsociety/delvegen/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCategory("spellbook")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestParseRarityAndTier(t *testing.T) {
	r, err := ParseRarity("rare")
	require.NoError(t, err)
	assert.Equal(t, Rare, r)

	_, err = ParseRarity("legendary")
	assert.ErrorIs(t, err, ErrUnknownRarity)

	tier, err := ParsePowerTier("")
	require.NoError(t, err)
	assert.Equal(t, TierNone, tier)

	tier, err = ParsePowerTier("advanced")
	require.NoError(t, err)
	assert.Equal(t, TierAdvanced, tier)

	_, err = ParsePowerTier("epic")
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestParseSubtypes(t *testing.T) {
	p, err := ParsePotionType("extra_healing")
	require.NoError(t, err)
	assert.True(t, p.IsHealing())

	_, err = ParseScrollType("fireball")
	assert.ErrorIs(t, err, ErrUnknownSubtype)

	r, err := ParseRingType("teleportation")
	require.NoError(t, err)
	assert.True(t, r.AlwaysCursed())

	_, err = ParseWandType("wishing")
	assert.ErrorIs(t, err, ErrUnknownSubtype)
}

func TestTiersForDepth(t *testing.T) {
	assert.Equal(t, []PowerTier{TierBasic}, TiersForDepth(1))
	assert.Equal(t, []PowerTier{TierBasic}, TiersForDepth(8))
	assert.Equal(t, []PowerTier{TierBasic, TierIntermediate}, TiersForDepth(9))
	assert.Equal(t, []PowerTier{TierBasic, TierIntermediate}, TiersForDepth(16))
	assert.Equal(t, []PowerTier{TierBasic, TierIntermediate, TierAdvanced}, TiersForDepth(17))
}

func TestNewItemDerivesFields(t *testing.T) {
	sword := NewItem("item-3-0", "Long Sword", "weapon_long_sword", WeaponDetails{Damage: "1d10"}, Uncommon, 2, false)
	assert.Equal(t, Weapon, sword.Category)
	assert.Equal(t, "Long Sword +2", sword.Name)
	assert.False(t, sword.Identified)

	cursed := NewItem("item-3-1", "Ring of Teleportation", "ring_opal", RingDetails{Kind: RingTeleportation}, Common, -1, true)
	assert.Equal(t, "Ring of Teleportation", cursed.Name)
	assert.True(t, cursed.Cursed)

	torch := NewItem("item-3-2", "Torch", "torch", LightDetails{Kind: Torch, Fuel: 500, Radius: 2}, Common, 0, false)
	assert.Equal(t, Torch, torch.Category)
	assert.True(t, torch.Identified)

	moved := torch.At(gamemap.Pos(4, 5))
	assert.Equal(t, gamemap.Pos(4, 5), moved.Position)
	assert.Equal(t, gamemap.Position{}, torch.Position)
}

func TestDefaultTemplatesCoverEveryRarity(t *testing.T) {
	set := NewTemplateSet(DefaultTemplates())
	for _, c := range []Category{Weapon, Armor, Potion, Scroll, Ring, Wand, Food} {
		for _, r := range Rarities {
			assert.NotEmpty(t, set.Filter(c, r, 1), "%s/%s at depth 1", c, r)
			assert.NotEmpty(t, set.Filter(c, r, 26), "%s/%s at depth 26", c, r)
		}
	}
}

func TestFilterHonorsTiersAndDepth(t *testing.T) {
	set := NewTemplateSet([]Template{
		{Key: "basic", Category: Weapon, Rarity: Rare, Tier: TierBasic},
		{Key: "advanced", Category: Weapon, Rarity: Rare, Tier: TierAdvanced},
		{Key: "deep", Category: Weapon, Rarity: Rare, Tier: TierBasic, MinDepth: 20},
		{Key: "shallow", Category: Weapon, Rarity: Rare, Tier: TierBasic, MaxDepth: 3},
		{Key: "other", Category: Weapon, Rarity: Common, Tier: TierBasic},
	})

	keys := func(ts []Template) []string {
		var out []string
		for _, t := range ts {
			out = append(out, t.Key)
		}
		return out
	}

	assert.Equal(t, []string{"basic", "shallow"}, keys(set.Filter(Weapon, Rare, 1)))
	assert.Equal(t, []string{"basic"}, keys(set.Filter(Weapon, Rare, 10)))
	assert.Equal(t, []string{"basic", "advanced", "deep"}, keys(set.Filter(Weapon, Rare, 20)))
	assert.Equal(t, []string{"basic", "shallow", "other"}, keys(set.FilterTiers(Weapon, []PowerTier{TierBasic}, 1, nil)))
}

func TestTemplateDetails(t *testing.T) {
	src := rng.New(7)
	wand := Template{Category: Wand, Wand: WandStriking, Charges: "1d4+2"}
	d, ok := wand.Details(src).(WandDetails)
	require.True(t, ok)
	assert.GreaterOrEqual(t, d.Charges, 3)
	assert.LessOrEqual(t, d.Charges, 6)

	potion := Template{Category: Potion, Potion: PotionHealing, Power: "2d8"}
	assert.Equal(t, PotionDetails{Kind: PotionHealing, Power: "2d8"}, potion.Details(src))
}

const validItemsYAML = `
items:
  - key: dagger
    name: Dagger
    category: weapon
    rarity: common
    power_tier: basic
    damage: 1d4
  - key: potion_healing
    name: Potion of Healing
    sprite: potion_red
    category: potion
    rarity: common
    subtype: healing
    power: 2d8
  - key: wand_sleep
    name: Wand of Sleep
    category: wand
    rarity: uncommon
    subtype: sleep
    charges: 1d4+2
    min_depth: 4
`

func TestParseTemplates(t *testing.T) {
	set, err := ParseTemplates([]byte(validItemsYAML))
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())

	weapons := set.ByCategory(Weapon)
	require.Len(t, weapons, 1)
	assert.Equal(t, "dagger", weapons[0].Sprite)
	assert.Equal(t, TierBasic, weapons[0].Tier)

	wands := set.ByCategory(Wand)
	require.Len(t, wands, 1)
	assert.Equal(t, WandSleep, wands[0].Wand)
	assert.Empty(t, set.Filter(Wand, Uncommon, 3))
	assert.Len(t, set.Filter(Wand, Uncommon, 4), 1)
}

func TestParseTemplatesRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{
			name: "unknown category",
			yaml: "items:\n  - {key: x, name: X, category: spellbook, rarity: common}\n",
			err:  ErrUnknownCategory,
		},
		{
			name: "unknown subtype",
			yaml: "items:\n  - {key: x, name: X, category: scroll, rarity: common, subtype: fireball}\n",
			err:  ErrUnknownSubtype,
		},
		{
			name: "bad dice",
			yaml: "items:\n  - {key: x, name: X, category: weapon, rarity: common, damage: lots}\n",
			err:  rng.ErrBadDice,
		},
		{
			name: "light sources are built in",
			yaml: "items:\n  - {key: x, name: X, category: torch, rarity: common}\n",
			err:  ErrUnknownCategory,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTemplates([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := ParseTemplates([]byte("items:\n  - {key: x, name: X, category: food, rarity: common, colour: red}\n"))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = ParseTemplates([]byte("items:\n  - {key: x, name: X, category: food, rarity: common}\n  - {key: x, name: Y, category: food, rarity: common}\n"))
	assert.Error(t, err, "duplicate keys are rejected")
}

func TestLoadTemplatesOrDefault(t *testing.T) {
	set, err := LoadTemplatesOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, len(DefaultTemplates()), set.Len())

	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validItemsYAML), 0o644))
	set, err = LoadTemplatesOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("items: {"), 0o644))
	_, err = LoadTemplatesOrDefault(bad)
	assert.Error(t, err)
}

func TestShippedItemsFileMatchesDefaults(t *testing.T) {
	set, err := LoadTemplatesFromYAML(filepath.Join("..", "..", "data", "items.yaml"))
	require.NoError(t, err)
	assert.Equal(t, NewTemplateSet(DefaultTemplates()), set)
}
