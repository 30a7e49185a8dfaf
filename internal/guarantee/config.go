// Package guarantee audits generated levels against per depth-range minimum
// item counts and force-spawns whatever is missing.
package guarantee

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/lawnchairsociety/delvegen/internal/items"
	"github.com/lawnchairsociety/delvegen/internal/logger"
	"github.com/lawnchairsociety/delvegen/internal/loot"
	"gopkg.in/yaml.v3"
)

var (
	ErrBadRange        = errors.New("guarantee: malformed depth range")
	ErrUnknownCategory = errors.New("guarantee: unknown category")
)

// Range is an inclusive span of depths.
type Range struct {
	Min int
	Max int
}

// ParseRange parses labels such as "1-5" or "26".
func ParseRange(label string) (Range, error) {
	lo, hi, found := strings.Cut(strings.TrimSpace(label), "-")
	if !found {
		hi = lo
	}
	minDepth, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrBadRange, label)
	}
	maxDepth, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrBadRange, label)
	}
	if minDepth < 1 || maxDepth < minDepth {
		return Range{}, fmt.Errorf("%w: %q", ErrBadRange, label)
	}
	return Range{Min: minDepth, Max: maxDepth}, nil
}

func (r Range) Contains(depth int) bool {
	return depth >= r.Min && depth <= r.Max
}

func (r Range) String() string {
	if r.Min == r.Max {
		return strconv.Itoa(r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Rule is the guarantee for one depth range.
type Rule struct {
	Range Range
	// CategoryWeights replaces the listed categories' spawn weights for every
	// depth in the range.
	CategoryWeights map[items.Category]float64
	Minimums        map[Category]int
}

// Config is the full guarantee table, ordered by range start.
type Config struct {
	Rules []Rule
}

// CategoryWeightsFor merges the first matching rule's overrides over the
// default band for depth. It reports false when no rule overrides depth.
func (c *Config) CategoryWeightsFor(depth int) (loot.CategoryWeights, bool) {
	if c == nil {
		return loot.CategoryWeights{}, false
	}
	for _, rule := range c.Rules {
		if !rule.Range.Contains(depth) || len(rule.CategoryWeights) == 0 {
			continue
		}
		w, err := loot.CategoryWeightsFor(depth).With(rule.CategoryWeights)
		if err != nil {
			// Parse validated these overrides.
			return loot.CategoryWeights{}, false
		}
		return w, true
	}
	return loot.CategoryWeights{}, false
}

type rangeDefinition struct {
	CategoryWeights map[string]float64 `yaml:"category_weights"`
	Minimums        map[string]int     `yaml:"minimums"`
}

type fileDefinition struct {
	Ranges map[string]rangeDefinition `yaml:"ranges"`
}

// Parse decodes a guarantee table. Malformed range labels, two labels naming
// the same range and unknown category keys fail.
func Parse(data []byte) (*Config, error) {
	var def fileDefinition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse guarantees YAML: %w", err)
	}

	cfg := &Config{}
	labels := make(map[Range]string, len(def.Ranges))
	for label, rd := range def.Ranges {
		r, err := ParseRange(label)
		if err != nil {
			return nil, err
		}
		if prev, ok := labels[r]; ok {
			return nil, fmt.Errorf("%w: %q and %q both name %s", ErrBadRange, prev, label, r)
		}
		labels[r] = label
		rule := Rule{
			Range:           r,
			CategoryWeights: make(map[items.Category]float64, len(rd.CategoryWeights)),
			Minimums:        make(map[Category]int, len(rd.Minimums)),
		}
		for key, weight := range rd.CategoryWeights {
			c, err := items.ParseCategory(key)
			if err != nil {
				return nil, fmt.Errorf("range %s: %w", label, err)
			}
			rule.CategoryWeights[c] = weight
		}
		if _, err := (loot.CategoryWeights{}).With(rule.CategoryWeights); err != nil {
			return nil, fmt.Errorf("range %s: %w", label, err)
		}
		for key, n := range rd.Minimums {
			c, err := ParseCategory(key)
			if err != nil {
				return nil, fmt.Errorf("range %s: %w", label, err)
			}
			if n < 0 {
				return nil, fmt.Errorf("range %s: negative minimum %d for %s", label, n, key)
			}
			rule.Minimums[c] = n
		}
		cfg.Rules = append(cfg.Rules, rule)
	}

	sort.Slice(cfg.Rules, func(i, j int) bool {
		a, b := cfg.Rules[i].Range, cfg.Rules[j].Range
		if a.Min != b.Min {
			return a.Min < b.Min
		}
		return a.Max < b.Max
	})
	return cfg, nil
}

// Load reads a guarantee table from filename.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read guarantees file: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault reads filename, or returns DefaultConfig when the name is
// empty or the file is missing.
func LoadOrDefault(filename string) (*Config, error) {
	if filename == "" {
		return DefaultConfig(), nil
	}
	cfg, err := Load(filename)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warning("guarantees file not found, using built-in table", "path", filename)
		return DefaultConfig(), nil
	}
	return cfg, err
}

// DefaultConfig keeps the early game supplied with healing, food and light.
func DefaultConfig() *Config {
	return &Config{Rules: []Rule{
		{
			Range:    Range{1, 5},
			Minimums: map[Category]int{HealingPotions: 4, Food: 3, LightSources: 2, IdentifyScrolls: 1},
		},
		{
			Range:    Range{6, 10},
			Minimums: map[Category]int{HealingPotions: 4, Food: 3, OilFlasks: 2},
		},
		{
			Range:    Range{11, 15},
			Minimums: map[Category]int{HealingPotions: 3, Food: 3, OilFlasks: 2},
		},
		{
			Range:    Range{16, 20},
			Minimums: map[Category]int{HealingPotions: 3, Food: 2, OilFlasks: 2},
		},
		{
			Range:    Range{21, 26},
			Minimums: map[Category]int{HealingPotions: 3, Food: 2, OilFlasks: 1},
		},
	}}
}
