package gamemap

// TileType identifies the type of a map tile.
type TileType uint8

const (
	TileWall TileType = iota
	TileFloor
	TileDoor
)

// String returns the string representation of a TileType
func (t TileType) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileDoor:
		return "door"
	default:
		return "unknown"
	}
}

// Glyphs used by the generator. Secret doors reuse GlyphWall.
const (
	GlyphWall       = '#'
	GlyphFloor      = '.'
	GlyphOpenDoor   = '\''
	GlyphClosedDoor = '+'
)

// Display colors for lit and remembered tiles.
const (
	ColorWallLit       = "#8a7f70"
	ColorWallExplored  = "#4a443c"
	ColorFloorLit      = "#c8b89a"
	ColorFloorExplored = "#5a5246"
	ColorDoorLit       = "#b5651d"
	ColorDoorExplored  = "#5c3a1a"
)

// Tile is one map cell. Tiles are mutated in place while carving.
type Tile struct {
	Type          TileType
	Glyph         rune
	Walkable      bool
	Transparent   bool
	LitColor      string
	ExploredColor string
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{
		Type:          TileWall,
		Glyph:         GlyphWall,
		LitColor:      ColorWallLit,
		ExploredColor: ColorWallExplored,
	}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{
		Type:          TileFloor,
		Glyph:         GlyphFloor,
		Walkable:      true,
		Transparent:   true,
		LitColor:      ColorFloorLit,
		ExploredColor: ColorFloorExplored,
	}
}

// MakeDoor returns a door tile with the given passability and glyph.
// Door state rules live with the level's Door type.
func MakeDoor(walkable, transparent bool, glyph rune) Tile {
	lit, explored := ColorDoorLit, ColorDoorExplored
	if glyph == GlyphWall {
		lit, explored = ColorWallLit, ColorWallExplored
	}
	return Tile{
		Type:          TileDoor,
		Glyph:         glyph,
		Walkable:      walkable,
		Transparent:   transparent,
		LitColor:      lit,
		ExploredColor: explored,
	}
}
