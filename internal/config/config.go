// Package config loads the generator's YAML configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root of delvegen.yaml. The logging: section of the same file
// is read by the logger package.
type Config struct {
	Dungeon    DungeonConfig    `yaml:"dungeon"`
	Population PopulationConfig `yaml:"population"`
	Depths     DepthConfig      `yaml:"depths"`
	Data       DataConfig       `yaml:"data"`
	Catalog    CatalogConfig    `yaml:"catalog"`
}

// DungeonConfig shapes the room and corridor layout of every level.
type DungeonConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	MinRooms    int `yaml:"min_rooms"`
	MaxRooms    int `yaml:"max_rooms"`
	MinRoomSize int `yaml:"min_room_size"`
	MaxRoomSize int `yaml:"max_room_size"`

	// MinSpacing is the number of wall tiles kept between rooms and from the border.
	MinSpacing int `yaml:"min_spacing"`

	// LoopChance is the probability of keeping each non-spanning-tree corridor.
	LoopChance float64 `yaml:"loop_chance"`

	// DistanceMetric is "euclidean" or "manhattan".
	DistanceMetric string `yaml:"distance_metric"`
}

// PopulationConfig controls how many things are spawned per level.
type PopulationConfig struct {
	// Monsters per level: MonstersBase + depth/MonstersPerDepthDivisor.
	MonstersBase            int `yaml:"monsters_base"`
	MonstersPerDepthDivisor int `yaml:"monsters_per_depth_divisor"`

	// Item attempts per level: rand(ItemsMin..ItemsMax) + depth/ItemsPerDepthDivisor.
	ItemsMin             int `yaml:"items_min"`
	ItemsMax             int `yaml:"items_max"`
	ItemsPerDepthDivisor int `yaml:"items_per_depth_divisor"`

	// TrapsMax caps the per-level trap budget of 1 + depth/4.
	TrapsMax int `yaml:"traps_max"`

	GoldPilesMax int `yaml:"gold_piles_max"`
}

// DepthConfig sets how deep the dungeon goes.
type DepthConfig struct {
	MaxDepth int `yaml:"max_depth"`

	// AmuletDepth is where the Amulet of Yendor is placed.
	AmuletDepth int `yaml:"amulet_depth"`
}

// DataConfig points at the template data files. Missing files fall back to
// built-in tables.
type DataConfig struct {
	ItemsFile      string `yaml:"items_file"`
	MonstersFile   string `yaml:"monsters_file"`
	GuaranteesFile string `yaml:"guarantees_file"`
}

// CatalogConfig configures where generated runs are archived.
type CatalogConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver     string         `yaml:"driver"`
	SQLitePath string         `yaml:"sqlite_path"`
	Postgres   PostgresConfig `yaml:"postgres"`
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// DefaultConfig returns the classic 80x22, 26 depth dungeon.
func DefaultConfig() *Config {
	return &Config{
		Dungeon: DungeonConfig{
			Width:          80,
			Height:         22,
			MinRooms:       4,
			MaxRooms:       9,
			MinRoomSize:    3,
			MaxRoomSize:    8,
			MinSpacing:     2,
			LoopChance:     0.25,
			DistanceMetric: "euclidean",
		},
		Population: PopulationConfig{
			MonstersBase:            3,
			MonstersPerDepthDivisor: 3,
			ItemsMin:                3,
			ItemsMax:                6,
			ItemsPerDepthDivisor:    6,
			TrapsMax:                6,
			GoldPilesMax:            4,
		},
		Depths: DepthConfig{
			MaxDepth:    26,
			AmuletDepth: 26,
		},
		Data: DataConfig{
			ItemsFile:      "data/items.yaml",
			MonstersFile:   "data/monsters.yaml",
			GuaranteesFile: "data/guarantees.yaml",
		},
		Catalog: CatalogConfig{
			Driver:     "sqlite",
			SQLitePath: "data/delvegen.db",
			Postgres: PostgresConfig{
				Host:    "localhost",
				Port:    5432,
				SSLMode: "disable",
			},
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults; a
// malformed or invalid one is an error.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate clamps out-of-range numbers into usable values and rejects
// unknown enum strings.
func (c *Config) Validate() error {
	d := &c.Dungeon
	d.Width = max(d.Width, 10)
	d.Height = max(d.Height, 8)
	d.MinRoomSize = max(d.MinRoomSize, 1)
	d.MaxRoomSize = max(d.MaxRoomSize, 1)
	if d.MinRoomSize > d.MaxRoomSize {
		d.MinRoomSize, d.MaxRoomSize = d.MaxRoomSize, d.MinRoomSize
	}
	d.MinRooms = max(d.MinRooms, 1)
	d.MaxRooms = max(d.MaxRooms, 1)
	if d.MinRooms > d.MaxRooms {
		d.MinRooms, d.MaxRooms = d.MaxRooms, d.MinRooms
	}
	d.MinSpacing = max(d.MinSpacing, 0)
	d.LoopChance = min(max(d.LoopChance, 0), 1)
	d.DistanceMetric = strings.ToLower(strings.TrimSpace(d.DistanceMetric))
	switch d.DistanceMetric {
	case "":
		d.DistanceMetric = "euclidean"
	case "euclidean", "manhattan":
	default:
		return fmt.Errorf("unknown distance metric %q", d.DistanceMetric)
	}

	p := &c.Population
	p.MonstersBase = max(p.MonstersBase, 0)
	p.MonstersPerDepthDivisor = max(p.MonstersPerDepthDivisor, 0)
	p.ItemsMin = max(p.ItemsMin, 0)
	p.ItemsMax = max(p.ItemsMax, 0)
	if p.ItemsMin > p.ItemsMax {
		p.ItemsMin, p.ItemsMax = p.ItemsMax, p.ItemsMin
	}
	p.ItemsPerDepthDivisor = max(p.ItemsPerDepthDivisor, 0)
	p.TrapsMax = max(p.TrapsMax, 0)
	p.GoldPilesMax = max(p.GoldPilesMax, 0)

	c.Depths.MaxDepth = max(c.Depths.MaxDepth, 1)
	c.Depths.AmuletDepth = min(max(c.Depths.AmuletDepth, 1), c.Depths.MaxDepth)

	switch c.Catalog.Driver {
	case "", "sqlite":
		c.Catalog.Driver = "sqlite"
	case "postgres":
	default:
		return fmt.Errorf("unknown catalog driver %q", c.Catalog.Driver)
	}
	return nil
}
