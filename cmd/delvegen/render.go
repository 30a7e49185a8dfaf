package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lawnchairsociety/delvegen/internal/gamemap"
	"github.com/lawnchairsociety/delvegen/internal/guarantee"
	"github.com/lawnchairsociety/delvegen/internal/items"
	"github.com/lawnchairsociety/delvegen/internal/level"
)

// Map glyphs layered over the tile grid. Later layers win.
const (
	glyphTrap     = '^'
	glyphGold     = '$'
	glyphItem     = '!'
	glyphMonster  = 'M'
	glyphStairsUp = '<'
	glyphStairsDn = '>'
)

// renderLevel draws l as ASCII, one row per line.
func renderLevel(l *level.Level) string {
	rows := make([][]rune, l.Height)
	for y := range rows {
		rows[y] = make([]rune, l.Width)
		for x := range rows[y] {
			rows[y][x] = l.Tiles.At(gamemap.Pos(x, y)).Glyph
		}
	}

	put := func(p gamemap.Position, glyph rune) {
		if l.Tiles.InBounds(p) {
			rows[p.Y][p.X] = glyph
		}
	}
	for _, t := range l.Traps {
		put(t.Position, glyphTrap)
	}
	for _, g := range l.Gold {
		put(g.Position, glyphGold)
	}
	for _, item := range l.Items {
		put(item.Position, glyphItem)
	}
	for _, m := range l.Monsters {
		put(m.Position, glyphMonster)
	}
	if l.StairsUp != nil {
		put(*l.StairsUp, glyphStairsUp)
	}
	if l.StairsDown != nil {
		put(*l.StairsDown, glyphStairsDn)
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// renderSummary writes the per-depth counts for l.
func renderSummary(b *strings.Builder, l *level.Level) {
	fmt.Fprintf(b, "Depth %d: %d rooms, %d doors, %d traps, %d monsters, %d items, %d gold\n",
		l.Depth, len(l.Rooms), len(l.Doors), len(l.Traps), len(l.Monsters), len(l.Items), l.TotalGold())

	counts := items.CountByCategory(l.Items)
	var parts []string
	for _, c := range items.Categories {
		if n := counts[c]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", c, n))
		}
	}
	if len(parts) > 0 {
		fmt.Fprintf(b, "  items: %s\n", strings.Join(parts, " "))
	}

	doors := make(map[level.DoorState]int)
	for _, d := range l.Doors {
		doors[d.State]++
	}
	states := make([]level.DoorState, 0, len(doors))
	for s := range doors {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	parts = parts[:0]
	for _, s := range states {
		parts = append(parts, fmt.Sprintf("%s=%d", s, doors[s]))
	}
	if len(parts) > 0 {
		fmt.Fprintf(b, "  doors: %s\n", strings.Join(parts, " "))
	}
}

// renderReport describes what the guarantee pass had to add.
func renderReport(b *strings.Builder, report guarantee.Report) {
	if len(report.Deficits) == 0 {
		b.WriteString("Guarantees: all minimums met by natural generation.\n")
		return
	}
	b.WriteString("Guarantees:\n")
	for _, d := range report.Deficits {
		fmt.Fprintf(b, "  depths %s: %s short by %d\n", d.Range, d.Category, d.Count)
	}
	for _, c := range guarantee.Categories {
		if n := report.Placed[c]; n > 0 {
			fmt.Fprintf(b, "  placed %d %s\n", n, c)
		}
	}
	if report.Unfilled > 0 {
		fmt.Fprintf(b, "  WARNING: %d items could not be placed\n", report.Unfilled)
	}
}

func getLegend() string {
	return `
Legend:
  #   Wall or secret door
  .   Floor
  '   Open, broken or archway door
  +   Closed or locked door
  ^   Trap
  <   Stairs up
  >   Stairs down
  M   Monster
  !   Item
  $   Gold
`
}
