package dungeon

import (
	"github.com/lawnchairsociety/delvegen/internal/gamemap"
	"github.com/lawnchairsociety/delvegen/internal/level"
	"github.com/lawnchairsociety/delvegen/internal/rng"
)

// trapAttemptsPerTrap bounds trap rejection sampling.
const trapAttemptsPerTrap = 10

// placeDoors turns every walkable tile on the ring just outside each room
// into a door. Rooms are scanned in order, each along its top, bottom, left
// then right edge. The returned occupancy holds the door tiles.
func placeDoors(l *level.Level, src *rng.Source) *gamemap.Occupancy {
	occupied := gamemap.NewOccupancy()

	for _, room := range l.Rooms {
		for _, edge := range boundary(room) {
			p := edge.pos
			if !l.Tiles.InBounds(p) || !l.Tiles.IsWalkable(p) || insideAnyRoom(l.Rooms, p) {
				continue
			}
			if !occupied.Claim(p) {
				continue
			}
			door := level.NewDoor(p, level.RollDoorState(src), edge.orientation, adjacentRooms(l.Rooms, p)...)
			door.Apply(l.Tiles)
			l.Doors = append(l.Doors, door)
		}
	}
	return occupied
}

type boundaryTile struct {
	pos         gamemap.Position
	orientation level.Orientation
}

// boundary lists the tiles one step outside room, corners excluded.
func boundary(room gamemap.Room) []boundaryTile {
	var tiles []boundaryTile
	for x := room.X; x <= room.Right(); x++ {
		tiles = append(tiles, boundaryTile{gamemap.Pos(x, room.Y-1), level.Horizontal})
	}
	for x := room.X; x <= room.Right(); x++ {
		tiles = append(tiles, boundaryTile{gamemap.Pos(x, room.Bottom()+1), level.Horizontal})
	}
	for y := room.Y; y <= room.Bottom(); y++ {
		tiles = append(tiles, boundaryTile{gamemap.Pos(room.X-1, y), level.Vertical})
	}
	for y := room.Y; y <= room.Bottom(); y++ {
		tiles = append(tiles, boundaryTile{gamemap.Pos(room.Right()+1, y), level.Vertical})
	}
	return tiles
}

func insideAnyRoom(rooms []gamemap.Room, p gamemap.Position) bool {
	for _, r := range rooms {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// adjacentRooms returns the ids of rooms whose outer ring contains p.
func adjacentRooms(rooms []gamemap.Room, p gamemap.Position) []int {
	var ids []int
	for _, r := range rooms {
		grown := gamemap.Room{X: r.X - 1, Y: r.Y - 1, Width: r.Width + 2, Height: r.Height + 2}
		if grown.Contains(p) && !r.Contains(p) {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// trapBudget is 1 + depth/4, capped by the configured maximum.
func trapBudget(depth, maxTraps int) int {
	return min(1+depth/4, maxTraps)
}

// placeTraps draws a trap count in [0, budget] then makes count*10 attempts
// at random room interiors.
func placeTraps(l *level.Level, src *rng.Source, occupied *gamemap.Occupancy, budget int) {
	if len(l.Rooms) == 0 || budget <= 0 {
		return
	}
	count := src.NextInt(0, budget)

	for attempt := 0; attempt < count*trapAttemptsPerTrap && len(l.Traps) < count; attempt++ {
		room, _ := rng.Pick(src, l.Rooms)
		p := room.RandomInterior(src)
		if !occupied.Free(l.Tiles, p) {
			continue
		}
		kind, _ := rng.Pick(src, level.TrapTypes)
		occupied.Claim(p)
		l.Traps = append(l.Traps, level.Trap{Type: kind, Position: p})
	}
}

// stairPositions puts the up stairs at the first room's center and the down
// stairs at the last room's center. Depth 1 has no up stairs and maxDepth no
// down stairs. With a single room the down stairs move to its far corner.
func stairPositions(rooms []gamemap.Room, depth, maxDepth int) (up, down *gamemap.Position) {
	if len(rooms) == 0 {
		return nil, nil
	}
	if depth > 1 {
		p := rooms[0].Center()
		up = &p
	}
	if depth < maxDepth {
		last := rooms[len(rooms)-1]
		p := last.Center()
		if up != nil && *up == p {
			p = gamemap.Pos(last.Right(), last.Bottom())
		}
		down = &p
	}
	return up, down
}
