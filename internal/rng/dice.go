package rng

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrBadDice is returned when dice notation cannot be parsed.
var ErrBadDice = errors.New("rng: invalid dice notation")

// diceNotationRegex matches dice notation like "1d6", "2d4+1", "1d8-2"
var diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// Dice is parsed dice notation: Count dice with Sides faces plus Modifier.
type Dice struct {
	Count    int
	Sides    int
	Modifier int
}

// ParseDice parses notation such as "2d6" or "1d8+2".
func ParseDice(notation string) (Dice, error) {
	matches := diceNotationRegex.FindStringSubmatch(notation)
	if matches == nil {
		return Dice{}, fmt.Errorf("%w: %q", ErrBadDice, notation)
	}

	count, _ := strconv.Atoi(matches[1])
	sides, _ := strconv.Atoi(matches[2])
	if sides == 0 {
		return Dice{}, fmt.Errorf("%w: %q has zero-sided dice", ErrBadDice, notation)
	}

	mod := 0
	if matches[3] != "" {
		mod, _ = strconv.Atoi(matches[3])
	}
	return Dice{Count: count, Sides: sides, Modifier: mod}, nil
}

// Min returns the lowest possible total.
func (d Dice) Min() int {
	return d.Count + d.Modifier
}

// Max returns the highest possible total.
func (d Dice) Max() int {
	return d.Count*d.Sides + d.Modifier
}

func (d Dice) String() string {
	switch {
	case d.Modifier > 0:
		return fmt.Sprintf("%dd%d+%d", d.Count, d.Sides, d.Modifier)
	case d.Modifier < 0:
		return fmt.Sprintf("%dd%d%d", d.Count, d.Sides, d.Modifier)
	default:
		return fmt.Sprintf("%dd%d", d.Count, d.Sides)
	}
}

// RollDice rolls already-parsed dice.
func (s *Source) RollDice(d Dice) int {
	total := d.Modifier
	for i := 0; i < d.Count; i++ {
		total += s.NextInt(1, d.Sides)
	}
	return total
}

// Roll rolls dice notation and returns the total.
// Returns 0 if the notation is invalid; nothing is drawn in that case.
func (s *Source) Roll(notation string) int {
	d, err := ParseDice(notation)
	if err != nil {
		return 0
	}
	return s.RollDice(d)
}
