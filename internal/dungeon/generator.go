// Package dungeon runs the per-level generation pipeline and the multi-level
// guarantee pass.
package dungeon

import (
	"fmt"

	"github.com/lawnchairsociety/delvegen/internal/config"
	"github.com/lawnchairsociety/delvegen/internal/guarantee"
	"github.com/lawnchairsociety/delvegen/internal/items"
	"github.com/lawnchairsociety/delvegen/internal/layout"
	"github.com/lawnchairsociety/delvegen/internal/level"
	"github.com/lawnchairsociety/delvegen/internal/logger"
	"github.com/lawnchairsociety/delvegen/internal/loot"
	"github.com/lawnchairsociety/delvegen/internal/monsters"
	"github.com/lawnchairsociety/delvegen/internal/rng"
)

// Data is the static template data a Generator is built from. Nil fields
// use the built-in tables.
type Data struct {
	Items      *items.TemplateSet
	Monsters   []monsters.Template
	Guarantees *guarantee.Config
}

// LoadData reads every data file named in cfg, falling back to built-in
// tables for files that do not exist.
func LoadData(cfg config.DataConfig) (Data, error) {
	templates, err := items.LoadTemplatesOrDefault(cfg.ItemsFile)
	if err != nil {
		return Data{}, fmt.Errorf("failed to load item templates: %w", err)
	}
	bestiary, err := monsters.LoadOrDefault(cfg.MonstersFile)
	if err != nil {
		return Data{}, fmt.Errorf("failed to load monster templates: %w", err)
	}
	guarantees, err := guarantee.LoadOrDefault(cfg.GuaranteesFile)
	if err != nil {
		return Data{}, fmt.Errorf("failed to load guarantees: %w", err)
	}
	return Data{Items: templates, Monsters: bestiary, Guarantees: guarantees}, nil
}

// Generator produces levels from one seeded stream. Levels must be generated
// in a fixed order for a seed to reproduce them.
type Generator struct {
	cfg        *config.Config
	src        *rng.Source
	items      *loot.Spawner
	monsters   *monsters.Spawner
	guarantees *guarantee.Config
}

// NewGenerator creates a generator. cfg is validated and copied.
func NewGenerator(cfg *config.Config, src *rng.Source, data Data) (*Generator, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	owned := *cfg
	if err := owned.Validate(); err != nil {
		return nil, err
	}

	if data.Items == nil {
		data.Items = items.NewTemplateSet(items.DefaultTemplates())
	}
	if data.Monsters == nil {
		data.Monsters = monsters.DefaultTemplates()
	}

	g := &Generator{
		cfg:        &owned,
		src:        src,
		monsters:   monsters.NewSpawner(data.Monsters),
		guarantees: data.Guarantees,
	}
	var overrides loot.WeightOverride
	if data.Guarantees != nil {
		overrides = data.Guarantees
	}
	g.items = loot.NewSpawner(data.Items, overrides, owned.Depths.MaxDepth)
	return g, nil
}

// Config returns the validated configuration in use.
func (g *Generator) Config() config.Config {
	return *g.cfg
}

// GenerateAllLevels generates depths 1..MaxDepth in order, then repairs
// guarantee deficits across them.
func (g *Generator) GenerateAllLevels() ([]*level.Level, guarantee.Report) {
	levels := make([]*level.Level, 0, g.cfg.Depths.MaxDepth)
	for depth := 1; depth <= g.cfg.Depths.MaxDepth; depth++ {
		levels = append(levels, g.GenerateLevel(depth))
	}

	report := guarantee.Enforce(levels, g.guarantees, g.items, g.src)
	logger.Info("dungeon generated",
		"seed", g.src.Seed(),
		"levels", len(levels),
		"deficits", len(report.Deficits),
		"unfilled", report.Unfilled)
	return levels, report
}

// GenerateLevel runs every phase for one depth.
func (g *Generator) GenerateLevel(depth int) *level.Level {
	d := g.cfg.Dungeon
	pop := g.cfg.Population
	log := logger.With("depth", depth)

	l := level.New(depth, d.Width, d.Height)

	l.Rooms = layout.GenerateRooms(layout.RoomConfig{
		GridWidth:  d.Width,
		GridHeight: d.Height,
		MinCount:   d.MinRooms,
		MaxCount:   d.MaxRooms,
		MinSize:    d.MinRoomSize,
		MaxSize:    d.MaxRoomSize,
		MinSpacing: d.MinSpacing,
	}, g.src)
	log.Debug("rooms placed", "count", len(l.Rooms))

	corridors := layout.GenerateCorridors(l.Rooms, layout.CorridorConfig{
		LoopChance: d.LoopChance,
		Metric:     layout.DistanceMetric(d.DistanceMetric),
	}, g.src)
	for _, c := range corridors {
		layout.CarveCorridor(l.Tiles, c)
	}
	for _, r := range l.Rooms {
		l.Tiles.CarveRoom(r)
	}
	log.Debug("corridors carved", "count", len(corridors))

	occupied := placeDoors(l, g.src)
	log.Debug("doors placed", "count", len(l.Doors))

	up, down := stairPositions(l.Rooms, depth, g.cfg.Depths.MaxDepth)
	if up != nil {
		occupied.Claim(*up)
	}
	if down != nil {
		occupied.Claim(*down)
	}

	placeTraps(l, g.src, occupied, trapBudget(depth, pop.TrapsMax))
	log.Debug("traps placed", "count", len(l.Traps))

	l.StairsUp, l.StairsDown = up, down

	monsterCount := monsters.TargetCount(depth, pop.MonstersBase, pop.MonstersPerDepthDivisor)
	l.Monsters = g.monsters.SpawnMonsters(g.src, l.Rooms, monsterCount, l.Tiles, occupied, depth)

	itemCount := g.src.NextInt(pop.ItemsMin, pop.ItemsMax)
	if pop.ItemsPerDepthDivisor > 0 {
		itemCount += depth / pop.ItemsPerDepthDivisor
	}
	l.Items = g.items.SpawnItems(g.src, l.Rooms, itemCount, l.Tiles, occupied, depth)

	if depth == g.cfg.Depths.AmuletDepth && len(l.Rooms) > 0 {
		last := l.Rooms[len(l.Rooms)-1]
		amulet := loot.SpawnAmulet(g.src, last, l.Tiles, occupied, loot.ItemID(depth, len(l.Items)))
		l.Items = append(l.Items, amulet)
		log.Debug("amulet placed", "position", amulet.Position.String())
	}

	l.Gold = loot.SpawnGold(g.src, l.Rooms, l.Tiles, occupied, depth, pop.GoldPilesMax)

	log.Debug("level populated",
		"monsters", len(l.Monsters),
		"items", len(l.Items),
		"gold_piles", len(l.Gold))
	return l
}
