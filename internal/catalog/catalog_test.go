package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lawnchairsociety/delvegen/internal/gamemap"
	"github.com/lawnchairsociety/delvegen/internal/guarantee"
	"github.com/lawnchairsociety/delvegen/internal/items"
	"github.com/lawnchairsociety/delvegen/internal/level"
	"github.com/lawnchairsociety/delvegen/internal/loot"
	"github.com/lawnchairsociety/delvegen/internal/monsters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := OpenSQLite(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func sampleLevels() []*level.Level {
	first := level.New(1, 20, 10)
	first.Rooms = []gamemap.Room{{ID: 0, X: 1, Y: 1, Width: 4, Height: 4}, {ID: 1, X: 10, Y: 2, Width: 5, Height: 4}}
	first.Doors = []level.Door{level.NewDoor(gamemap.Pos(5, 2), level.DoorOpen, level.Vertical, 0)}
	first.Items = []items.Item{
		items.NewItem("item-1-0", "Potion of Healing", "potion", items.PotionDetails{Kind: items.PotionHealing}, items.Common, 0, false),
		items.NewItem("item-1-1", "Potion of Healing", "potion", items.PotionDetails{Kind: items.PotionHealing}, items.Common, 0, false),
		items.NewItem("item-1-2", "Food Ration", "food", items.FoodDetails{Nutrition: 900}, items.Common, 0, false),
	}
	first.Gold = []loot.GoldPile{{Position: gamemap.Pos(2, 2), Amount: 7}, {Position: gamemap.Pos(3, 3), Amount: 5}}
	first.Monsters = []monsters.Monster{{ID: "mon-1-0", Key: "rat", Position: gamemap.Pos(11, 3)}}

	last := level.New(2, 20, 10)
	last.Rooms = []gamemap.Room{{ID: 0, X: 1, Y: 1, Width: 4, Height: 4}}
	last.Traps = []level.Trap{{Type: level.TrapBear, Position: gamemap.Pos(2, 3)}}
	last.Items = []items.Item{
		items.NewItem("item-2-0", "Amulet of Yendor", "amulet", items.AmuletDetails{}, items.Rare, 0, false),
	}
	return []*level.Level{last, first}
}

func TestOpenCreatesDirectoryAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "catalog.db")
	c, err := OpenSQLite(path)
	require.NoError(t, err)
	defer c.Close()

	_, err = os.Stat(path)
	require.NoError(t, err)

	for _, table := range []string{"runs", "levels", "item_counts"} {
		var count int
		require.NoError(t, c.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&count), table)
		assert.Zero(t, count)
	}
}

func TestOpenTwiceKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	c, err := OpenSQLite(path)
	require.NoError(t, err)
	id, err := c.RecordRun("seed", 42, 2, sampleLevels(), guarantee.Report{})
	require.NoError(t, err)
	require.NoError(t, c.Close())

	c, err = OpenSQLite(path)
	require.NoError(t, err)
	defer c.Close()
	run, err := c.GetRun(id)
	require.NoError(t, err)
	assert.Equal(t, "seed", run.Seed)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(Config{Driver: "oracle"})
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	levels := sampleLevels()
	rec := Summarize(levels[1])
	assert.Equal(t, 1, rec.Depth)
	assert.Equal(t, 2, rec.Rooms)
	assert.Equal(t, 1, rec.Doors)
	assert.Equal(t, 0, rec.Traps)
	assert.Equal(t, 1, rec.Monsters)
	assert.Equal(t, 3, rec.Items)
	assert.Equal(t, 12, rec.Gold)
	assert.False(t, rec.HasAmulet)
	assert.Equal(t, map[string]int{"potion": 2, "food": 1}, rec.ItemCounts)

	assert.True(t, Summarize(levels[0]).HasAmulet)
}

func TestNewRunSortsLevelsAndTotalsReport(t *testing.T) {
	report := guarantee.Report{
		Placed:   map[guarantee.Category]int{guarantee.HealingPotions: 3, guarantee.Food: 2},
		Unfilled: 1,
	}
	a := NewRun("seed", 42, 26, sampleLevels(), report)
	b := NewRun("seed", 42, 26, sampleLevels(), report)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, a.LevelCount)
	assert.Equal(t, 5, a.ForcedItems)
	assert.Equal(t, 1, a.Unfilled)
	require.Len(t, a.Levels, 2)
	assert.Equal(t, 1, a.Levels[0].Depth)
	assert.Equal(t, 2, a.Levels[1].Depth)
}

func TestRecordAndGetRun(t *testing.T) {
	c := openTestCatalog(t)

	id, err := c.RecordRun("test-dungeon-seed", 1234, 26, sampleLevels(), guarantee.Report{Unfilled: 2})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	run, err := c.GetRun(id)
	require.NoError(t, err)
	assert.Equal(t, id, run.ID)
	assert.Equal(t, "test-dungeon-seed", run.Seed)
	assert.Equal(t, int64(1234), run.SeedValue)
	assert.Equal(t, 26, run.MaxDepth)
	assert.Equal(t, 2, run.LevelCount)
	assert.Equal(t, 2, run.Unfilled)
	assert.False(t, run.CreatedAt.IsZero())

	require.Len(t, run.Levels, 2)
	assert.Equal(t, Summarize(sampleLevels()[1]), run.Levels[0])
	assert.Equal(t, Summarize(sampleLevels()[0]), run.Levels[1])
}

func TestGetRunNotFound(t *testing.T) {
	c := openTestCatalog(t)
	_, err := c.GetRun("missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestSaveRunDuplicate(t *testing.T) {
	c := openTestCatalog(t)
	run := NewRun("seed", 1, 2, sampleLevels(), guarantee.Report{})
	require.NoError(t, c.SaveRun(run))
	assert.ErrorIs(t, c.SaveRun(run), ErrRunExists)

	runs, err := c.ListRuns(0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestListAndFindRuns(t *testing.T) {
	c := openTestCatalog(t)
	for _, seed := range []string{"a", "b", "a"} {
		_, err := c.RecordRun(seed, 1, 2, sampleLevels(), guarantee.Report{})
		require.NoError(t, err)
	}

	all, err := c.ListRuns(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, run := range all {
		assert.Empty(t, run.Levels)
	}

	limited, err := c.ListRuns(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	found, err := c.FindRunsBySeed("a")
	require.NoError(t, err)
	assert.Len(t, found, 2)
	for _, run := range found {
		assert.Equal(t, "a", run.Seed)
	}

	none, err := c.FindRunsBySeed("zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteRun(t *testing.T) {
	c := openTestCatalog(t)
	id, err := c.RecordRun("seed", 1, 2, sampleLevels(), guarantee.Report{})
	require.NoError(t, err)

	require.NoError(t, c.DeleteRun(id))
	_, err = c.GetRun(id)
	assert.ErrorIs(t, err, ErrRunNotFound)

	var count int
	require.NoError(t, c.db.QueryRow("SELECT COUNT(*) FROM item_counts").Scan(&count))
	assert.Zero(t, count)

	assert.ErrorIs(t, c.DeleteRun(id), ErrRunNotFound)
}
