package gamemap

import "github.com/lawnchairsociety/delvegen/internal/rng"

// Room is an axis-aligned rectangle. X,Y is the top-left floor tile.
type Room struct {
	ID     int
	X, Y   int
	Width  int
	Height int
}

// Right returns the x of the last column inside the room.
func (r Room) Right() int { return r.X + r.Width - 1 }

// Bottom returns the y of the last row inside the room.
func (r Room) Bottom() int { return r.Y + r.Height - 1 }

// Center returns the center tile of the room.
func (r Room) Center() Position {
	return Pos(r.X+r.Width/2, r.Y+r.Height/2)
}

// Contains reports whether p lies inside the room footprint.
func (r Room) Contains(p Position) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// IsEdge reports whether p lies on the outermost ring of the room footprint.
func (r Room) IsEdge(p Position) bool {
	if !r.Contains(p) {
		return false
	}
	return p.X == r.X || p.X == r.Right() || p.Y == r.Y || p.Y == r.Bottom()
}

// Overlaps reports whether r and other are closer than margin tiles apart.
// A margin of 0 only rejects rooms that share tiles.
func (r Room) Overlaps(other Room, margin int) bool {
	return r.X-margin <= other.Right() && r.Right()+margin >= other.X &&
		r.Y-margin <= other.Bottom() && r.Bottom()+margin >= other.Y
}

// Interior returns the bounds of the room shrunk by one tile on every side.
// Rooms too thin to shrink fall back to their full footprint.
func (r Room) Interior() (x1, y1, x2, y2 int) {
	x1, y1 = r.X+1, r.Y+1
	x2, y2 = r.Right()-1, r.Bottom()-1
	if x1 > x2 {
		x1, x2 = r.X, r.Right()
	}
	if y1 > y2 {
		y1, y2 = r.Y, r.Bottom()
	}
	return x1, y1, x2, y2
}

// RandomInterior picks a tile inside the room's interior, drawing x then y.
func (r Room) RandomInterior(src *rng.Source) Position {
	x1, y1, x2, y2 := r.Interior()
	x := src.NextInt(x1, x2)
	y := src.NextInt(y1, y2)
	return Pos(x, y)
}
