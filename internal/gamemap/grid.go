package gamemap

// Grid holds the tile cells for one dungeon level, indexed [y][x].
type Grid struct {
	Width, Height int
	Tiles         [][]Tile
}

// NewGrid creates a grid filled with walls.
func NewGrid(width, height int) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &Grid{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether p is within the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns a pointer to the tile at p. Panics if out of bounds.
func (g *Grid) At(p Position) *Tile {
	return &g.Tiles[p.Y][p.X]
}

// Set replaces the tile at p. Out-of-bounds writes are ignored.
func (g *Grid) Set(p Position, t Tile) {
	if !g.InBounds(p) {
		return
	}
	g.Tiles[p.Y][p.X] = t
}

// IsWalkable returns true when p is in bounds and walkable.
func (g *Grid) IsWalkable(p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.Tiles[p.Y][p.X].Walkable
}

// IsTransparent returns true when p is in bounds and transparent.
func (g *Grid) IsTransparent(p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.Tiles[p.Y][p.X].Transparent
}

// CarveRoom turns every tile of the room footprint into floor.
func (g *Grid) CarveRoom(r Room) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			g.Set(Pos(x, y), MakeFloor())
		}
	}
}
