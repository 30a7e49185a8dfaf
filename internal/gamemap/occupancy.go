package gamemap

import "github.com/zyedidia/generic/mapset"

// Occupancy is the set of tiles already claimed by a door, trap, stair,
// monster, item or gold pile. Nothing else may be placed on a claimed tile.
type Occupancy struct {
	set mapset.Set[Position]
}

// NewOccupancy returns an empty occupancy set seeded with positions.
func NewOccupancy(positions ...Position) *Occupancy {
	o := &Occupancy{set: mapset.New[Position]()}
	for _, p := range positions {
		o.set.Put(p)
	}
	return o
}

// Claim marks p as occupied. It reports false if p was already taken.
func (o *Occupancy) Claim(p Position) bool {
	if o.set.Has(p) {
		return false
	}
	o.set.Put(p)
	return true
}

func (o *Occupancy) Has(p Position) bool {
	return o.set.Has(p)
}

func (o *Occupancy) Len() int {
	return o.set.Size()
}

// Free reports whether p is walkable on grid and not yet claimed.
func (o *Occupancy) Free(grid *Grid, p Position) bool {
	return grid.IsWalkable(p) && !o.set.Has(p)
}
