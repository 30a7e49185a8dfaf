package level

import (
	"github.com/lawnchairsociety/delvegen/internal/gamemap"
	"github.com/lawnchairsociety/delvegen/internal/items"
	"github.com/lawnchairsociety/delvegen/internal/loot"
	"github.com/lawnchairsociety/delvegen/internal/monsters"
)

// Level is everything generated for one depth.
type Level struct {
	Depth      int
	Width      int
	Height     int
	Tiles      *gamemap.Grid
	Rooms      []gamemap.Room
	Doors      []Door
	Traps      []Trap
	Monsters   []monsters.Monster
	Items      []items.Item
	Gold       []loot.GoldPile
	StairsUp   *gamemap.Position
	StairsDown *gamemap.Position
	Explored   [][]bool
}

// New returns an empty, fully walled level.
func New(depth, width, height int) *Level {
	explored := make([][]bool, height)
	for y := range explored {
		explored[y] = make([]bool, width)
	}
	return &Level{
		Depth:    depth,
		Width:    width,
		Height:   height,
		Tiles:    gamemap.NewGrid(width, height),
		Explored: explored,
	}
}

// Occupancy rebuilds the set of tiles claimed by doors, traps, stairs,
// monsters, items and gold.
func (l *Level) Occupancy() *gamemap.Occupancy {
	occ := gamemap.NewOccupancy()
	for _, d := range l.Doors {
		occ.Claim(d.Position)
	}
	for _, t := range l.Traps {
		occ.Claim(t.Position)
	}
	if l.StairsUp != nil {
		occ.Claim(*l.StairsUp)
	}
	if l.StairsDown != nil {
		occ.Claim(*l.StairsDown)
	}
	for _, m := range l.Monsters {
		occ.Claim(m.Position)
	}
	for _, it := range l.Items {
		occ.Claim(it.Position)
	}
	for _, g := range l.Gold {
		occ.Claim(g.Position)
	}
	return occ
}

// DoorAt returns the door at p, if any.
func (l *Level) DoorAt(p gamemap.Position) (Door, bool) {
	for _, d := range l.Doors {
		if d.Position == p {
			return d, true
		}
	}
	return Door{}, false
}

// CountItems returns how many items on the level satisfy match.
func (l *Level) CountItems(match func(items.Item) bool) int {
	return items.CountMatching(l.Items, match)
}

// TotalGold sums every gold pile.
func (l *Level) TotalGold() int {
	total := 0
	for _, g := range l.Gold {
		total += g.Amount
	}
	return total
}
