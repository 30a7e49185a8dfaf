// Package layout places rooms on an empty grid and connects them with
// corridors derived from a minimum spanning tree over the rooms.
package layout

import (
	"github.com/lawnchairsociety/delvegen/internal/gamemap"
	"github.com/lawnchairsociety/delvegen/internal/rng"
)

// attemptsPerRoom bounds rejection sampling so crowded configs terminate.
const attemptsPerRoom = 50

// RoomConfig constrains room placement.
type RoomConfig struct {
	GridWidth, GridHeight int
	MinCount, MaxCount    int
	MinSize, MaxSize      int
	MinSpacing            int // wall tiles required between rooms and from the border
}

// GenerateRooms places non-overlapping rooms by rejection sampling.
// It returns fewer rooms than requested when the attempt budget runs out;
// that is not an error.
func GenerateRooms(cfg RoomConfig, src *rng.Source) []gamemap.Room {
	target := src.NextInt(cfg.MinCount, cfg.MaxCount)
	if target <= 0 {
		return nil
	}

	border := max(1, cfg.MinSpacing)
	rooms := make([]gamemap.Room, 0, target)

	for attempt := 0; attempt < target*attemptsPerRoom && len(rooms) < target; attempt++ {
		w := src.NextInt(cfg.MinSize, cfg.MaxSize)
		h := src.NextInt(cfg.MinSize, cfg.MaxSize)
		if w <= 0 || h <= 0 {
			continue
		}

		maxX := cfg.GridWidth - border - w
		maxY := cfg.GridHeight - border - h
		if maxX < border || maxY < border {
			continue // room cannot fit at this size
		}

		candidate := gamemap.Room{
			X:      src.NextInt(border, maxX),
			Y:      src.NextInt(border, maxY),
			Width:  w,
			Height: h,
		}

		if overlapsAny(candidate, rooms, cfg.MinSpacing) {
			continue
		}

		candidate.ID = len(rooms)
		rooms = append(rooms, candidate)
	}

	return rooms
}

func overlapsAny(candidate gamemap.Room, rooms []gamemap.Room, margin int) bool {
	for _, r := range rooms {
		if candidate.Overlaps(r, margin) {
			return true
		}
	}
	return false
}
