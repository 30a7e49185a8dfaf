package monsters

import (
	"github.com/lawnchairsociety/delvegen/internal/gamemap"
	"github.com/lawnchairsociety/delvegen/internal/logger"
	"github.com/lawnchairsociety/delvegen/internal/rng"
)

// AsleepChance is the chance a freshly spawned monster starts asleep.
const AsleepChance = 0.3

// TargetCount is base + depth/divisor. A non-positive divisor disables scaling.
func TargetCount(depth, base, divisor int) int {
	if divisor <= 0 {
		return max(base, 0)
	}
	return max(base+depth/divisor, 0)
}

// Spawner places monsters from a fixed bestiary.
type Spawner struct {
	templates []Template
}

// NewSpawner creates a spawner over templates. The slice is copied.
func NewSpawner(templates []Template) *Spawner {
	return &Spawner{templates: append([]Template(nil), templates...)}
}

// Eligible returns the templates that can spawn at depth, in bestiary order.
func (s *Spawner) Eligible(depth int) []Template {
	var out []Template
	for _, t := range s.templates {
		if t.Frequency > 0 && t.AvailableAt(depth) {
			out = append(out, t)
		}
	}
	return out
}

// SpawnMonsters makes count placement attempts. The first room holds the up
// stairs and is skipped when there is any other room. Placed monsters claim
// their tile.
func (s *Spawner) SpawnMonsters(src *rng.Source, rooms []gamemap.Room, count int, grid *gamemap.Grid, occupied *gamemap.Occupancy, depth int) []Monster {
	candidates := rooms
	if len(rooms) > 1 {
		candidates = rooms[1:]
	}
	eligible := s.Eligible(depth)
	if len(candidates) == 0 || len(eligible) == 0 {
		return nil
	}
	weights := make([]float64, len(eligible))
	for i, t := range eligible {
		weights[i] = float64(t.Frequency)
	}

	var spawned []Monster
	for attempt := 0; attempt < count; attempt++ {
		room, _ := rng.Pick(src, candidates)
		pos := room.RandomInterior(src)
		if !occupied.Free(grid, pos) {
			continue
		}
		t := eligible[src.WeightedIndex(weights)]
		hp := max(1, src.Roll(t.HP))
		spawned = append(spawned, Monster{
			ID:         MonsterID(depth, len(spawned)),
			Key:        t.Key,
			Name:       t.Name,
			Glyph:      t.Glyph,
			Position:   pos,
			HP:         hp,
			MaxHP:      hp,
			ArmorClass: t.ArmorClass,
			Damage:     t.Damage,
			XP:         t.XP,
			Asleep:     src.Chance(AsleepChance),
		})
		occupied.Claim(pos)
	}

	logger.Debug("monsters spawned", "depth", depth, "attempts", count, "placed", len(spawned))
	return spawned
}
