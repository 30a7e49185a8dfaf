package layout

import (
	"github.com/lawnchairsociety/delvegen/internal/gamemap"
	"github.com/lawnchairsociety/delvegen/internal/rng"
	"github.com/zyedidia/generic/mapset"
)

// CorridorConfig controls how rooms are connected.
type CorridorConfig struct {
	LoopChance float64 // probability of keeping each non-tree edge
	Metric     DistanceMetric
}

// Corridor is an L-shaped path between two room centers.
type Corridor struct {
	FromRoom, ToRoom int
	Start, End       gamemap.Position
	Path             []gamemap.Position
	Loop             bool // true for corridors added on top of the spanning tree
}

// GenerateCorridors connects every room: spanning-tree edges first, then the
// randomly kept loop edges. Loop coins are all drawn before any corridor shape.
func GenerateCorridors(rooms []gamemap.Room, cfg CorridorConfig, src *rng.Source) []Corridor {
	if len(rooms) < 2 {
		return nil
	}

	g := BuildRoomGraph(rooms, cfg.Metric)
	tree := GenerateMST(g)

	treeSet := mapset.New[*Edge]()
	for _, e := range tree {
		treeSet.Put(e)
	}

	var loops []*Edge
	for _, e := range g.Edges {
		if treeSet.Has(e) {
			continue
		}
		if src.Chance(cfg.LoopChance) {
			loops = append(loops, e)
		}
	}

	corridors := make([]Corridor, 0, len(tree)+len(loops))
	for _, e := range tree {
		c := CreateCorridor(g.Nodes[e.From].Room, g.Nodes[e.To].Room, src.Chance(0.5))
		corridors = append(corridors, c)
	}
	for _, e := range loops {
		c := CreateCorridor(g.Nodes[e.From].Room, g.Nodes[e.To].Room, src.Chance(0.5))
		c.Loop = true
		corridors = append(corridors, c)
	}
	return corridors
}

// CreateCorridor derives the L-shaped path between two room centers. With
// horizontalFirst the path runs along the start row first, otherwise along the
// start column first.
func CreateCorridor(a, b gamemap.Room, horizontalFirst bool) Corridor {
	start, end := a.Center(), b.Center()
	c := Corridor{FromRoom: a.ID, ToRoom: b.ID, Start: start, End: end}

	var corner gamemap.Position
	if horizontalFirst {
		corner = gamemap.Pos(end.X, start.Y)
	} else {
		corner = gamemap.Pos(start.X, end.Y)
	}

	c.Path = appendLine(c.Path, start, corner)
	c.Path = appendLine(c.Path, corner, end)
	return c
}

// appendLine appends the straight run from..to. from is skipped when it is
// already the last point of path so the corner is not duplicated.
func appendLine(path []gamemap.Position, from, to gamemap.Position) []gamemap.Position {
	dx, dy := sign(to.X-from.X), sign(to.Y-from.Y)
	p := from
	if len(path) == 0 || path[len(path)-1] != p {
		path = append(path, p)
	}
	for p != to {
		p = gamemap.Pos(p.X+dx, p.Y+dy)
		path = append(path, p)
	}
	return path
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// CarveCorridor writes floor tiles along the corridor path.
func CarveCorridor(grid *gamemap.Grid, c Corridor) {
	for _, p := range c.Path {
		if grid.InBounds(p) {
			grid.Set(p, gamemap.MakeFloor())
		}
	}
}
