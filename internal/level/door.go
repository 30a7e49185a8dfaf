// Package level is the generated dungeon level aggregate and the door and
// trap records placed on it.
package level

import (
	"github.com/lawnchairsociety/delvegen/internal/gamemap"
	"github.com/lawnchairsociety/delvegen/internal/rng"
)

// DoorState controls how a door tile looks and whether it can be crossed.
type DoorState int

const (
	DoorOpen DoorState = iota
	DoorClosed
	DoorSecret
	DoorBroken
	DoorArchway
	DoorLocked
)

func (s DoorState) String() string {
	switch s {
	case DoorOpen:
		return "open"
	case DoorClosed:
		return "closed"
	case DoorSecret:
		return "secret"
	case DoorBroken:
		return "broken"
	case DoorArchway:
		return "archway"
	case DoorLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Passable reports whether the door can be walked through as generated.
func (s DoorState) Passable() bool {
	return s == DoorOpen || s == DoorBroken || s == DoorArchway
}

// RollDoorState draws one door state: open 50%, closed 30%, secret 10%,
// broken 5%, archway 5%. Locked doors are never generated.
func RollDoorState(src *rng.Source) DoorState {
	roll := src.Next()
	switch {
	case roll < 0.50:
		return DoorOpen
	case roll < 0.80:
		return DoorClosed
	case roll < 0.90:
		return DoorSecret
	case roll < 0.95:
		return DoorBroken
	default:
		return DoorArchway
	}
}

// Orientation is the axis of the wall a door sits in.
type Orientation int

const (
	Horizontal Orientation = iota // top or bottom wall
	Vertical                      // left or right wall
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Door is a doorway between a room and a corridor.
type Door struct {
	Position      gamemap.Position
	State         DoorState
	Discovered    bool
	Orientation   Orientation
	ConnectsRooms []int
}

// NewDoor builds a door; only secret doors start undiscovered.
func NewDoor(pos gamemap.Position, state DoorState, orientation Orientation, rooms ...int) Door {
	return Door{
		Position:      pos,
		State:         state,
		Discovered:    state != DoorSecret,
		Orientation:   orientation,
		ConnectsRooms: rooms,
	}
}

// Tile returns the tile a door in this state renders as.
func (d Door) Tile() gamemap.Tile {
	switch d.State {
	case DoorOpen, DoorBroken, DoorArchway:
		return gamemap.MakeDoor(true, true, gamemap.GlyphOpenDoor)
	case DoorSecret:
		return gamemap.MakeDoor(false, false, gamemap.GlyphWall)
	default:
		return gamemap.MakeDoor(false, false, gamemap.GlyphClosedDoor)
	}
}

// Apply writes the door's tile into grid.
func (d Door) Apply(grid *gamemap.Grid) {
	grid.Set(d.Position, d.Tile())
}
