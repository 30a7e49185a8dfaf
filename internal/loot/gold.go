package loot

import (
	"github.com/lawnchairsociety/delvegen/internal/gamemap"
	"github.com/lawnchairsociety/delvegen/internal/rng"
)

// GoldPile is a heap of coins lying on the floor.
type GoldPile struct {
	Position gamemap.Position
	Amount   int
}

// SpawnGold scatters between 0 and maxPiles piles worth 2d10 x depth each.
// Each pile gets one placement attempt; failures are skipped.
func SpawnGold(src *rng.Source, rooms []gamemap.Room, grid *gamemap.Grid, occupied *gamemap.Occupancy, depth, maxPiles int) []GoldPile {
	if len(rooms) == 0 || maxPiles <= 0 {
		return nil
	}
	count := src.NextInt(0, maxPiles)

	var piles []GoldPile
	for i := 0; i < count; i++ {
		pos, ok := pickTile(src, rooms, grid, occupied)
		if !ok {
			continue
		}
		amount := max(1, src.Roll("2d10")*max(depth, 1))
		occupied.Claim(pos)
		piles = append(piles, GoldPile{Position: pos, Amount: amount})
	}
	return piles
}

// pickTile draws a room then an interior tile of it, and reports whether the
// tile is walkable and unclaimed.
func pickTile(src *rng.Source, rooms []gamemap.Room, grid *gamemap.Grid, occupied *gamemap.Occupancy) (gamemap.Position, bool) {
	room, ok := rng.Pick(src, rooms)
	if !ok {
		return gamemap.Position{}, false
	}
	pos := room.RandomInterior(src)
	return pos, occupied.Free(grid, pos)
}
