// Package monsters holds monster templates and the monster spawn engine.
package monsters

import (
	"fmt"

	"github.com/lawnchairsociety/delvegen/internal/gamemap"
)

// Monster is a generated creature. Combat and AI read it; generation only
// needs its tile.
type Monster struct {
	ID         string
	Key        string
	Name       string
	Glyph      rune
	Position   gamemap.Position
	HP         int
	MaxHP      int
	ArmorClass int
	Damage     string // dice notation
	XP         int
	Asleep     bool
}

// MonsterID is the stable identifier of the n-th monster created on a depth.
func MonsterID(depth, n int) string {
	return fmt.Sprintf("mon-%d-%d", depth, n)
}

// Template is one monster blueprint.
type Template struct {
	Key        string
	Name       string
	Glyph      rune
	HP         string // dice notation
	ArmorClass int
	Damage     string
	XP         int
	MinDepth   int
	MaxDepth   int // 0 means no upper bound
	Frequency  int // relative spawn weight
}

// AvailableAt reports whether the template can appear on depth.
func (t Template) AvailableAt(depth int) bool {
	if depth < t.MinDepth {
		return false
	}
	return t.MaxDepth == 0 || depth <= t.MaxDepth
}

// DefaultTemplates is the built-in bestiary used when no data file is found.
func DefaultTemplates() []Template {
	return []Template{
		{Key: "rat", Name: "Giant Rat", Glyph: 'r', HP: "1d6", ArmorClass: 7, Damage: "1d3", XP: 1, MinDepth: 1, MaxDepth: 6, Frequency: 10},
		{Key: "kobold", Name: "Kobold", Glyph: 'k', HP: "1d8", ArmorClass: 7, Damage: "1d4", XP: 2, MinDepth: 1, MaxDepth: 8, Frequency: 8},
		{Key: "bat", Name: "Bat", Glyph: 'b', HP: "1d8", ArmorClass: 3, Damage: "1d2", XP: 2, MinDepth: 1, MaxDepth: 10, Frequency: 6},
		{Key: "jackal", Name: "Jackal", Glyph: 'j', HP: "1d8", ArmorClass: 7, Damage: "1d2", XP: 2, MinDepth: 1, MaxDepth: 7, Frequency: 8},
		{Key: "snake", Name: "Snake", Glyph: 's', HP: "2d6", ArmorClass: 6, Damage: "1d3", XP: 3, MinDepth: 2, MaxDepth: 10, Frequency: 6},
		{Key: "hobgoblin", Name: "Hobgoblin", Glyph: 'H', HP: "2d8", ArmorClass: 5, Damage: "1d8", XP: 5, MinDepth: 3, MaxDepth: 12, Frequency: 7},
		{Key: "orc", Name: "Orc", Glyph: 'o', HP: "2d8", ArmorClass: 6, Damage: "1d8", XP: 5, MinDepth: 4, MaxDepth: 14, Frequency: 7},
		{Key: "zombie", Name: "Zombie", Glyph: 'Z', HP: "3d8", ArmorClass: 8, Damage: "1d8", XP: 7, MinDepth: 6, MaxDepth: 16, Frequency: 5},
		{Key: "centaur", Name: "Centaur", Glyph: 'C', HP: "4d8", ArmorClass: 4, Damage: "1d6+2", XP: 15, MinDepth: 9, MaxDepth: 20, Frequency: 4},
		{Key: "troll", Name: "Troll", Glyph: 'T', HP: "6d8", ArmorClass: 4, Damage: "2d6", XP: 30, MinDepth: 12, Frequency: 4},
		{Key: "wraith", Name: "Wraith", Glyph: 'W', HP: "5d8", ArmorClass: 4, Damage: "1d6", XP: 35, MinDepth: 14, Frequency: 3},
		{Key: "vampire", Name: "Vampire", Glyph: 'V', HP: "8d8", ArmorClass: 1, Damage: "1d10", XP: 60, MinDepth: 18, Frequency: 3},
		{Key: "dragon", Name: "Dragon", Glyph: 'D', HP: "10d10", ArmorClass: -1, Damage: "3d10", XP: 150, MinDepth: 22, Frequency: 2},
	}
}
