package guarantee

import (
	"sort"

	"github.com/lawnchairsociety/delvegen/internal/items"
	"github.com/lawnchairsociety/delvegen/internal/level"
	"github.com/lawnchairsociety/delvegen/internal/logger"
	"github.com/lawnchairsociety/delvegen/internal/loot"
	"github.com/lawnchairsociety/delvegen/internal/rng"
)

// ItemDeficit is a shortfall of one category within one range.
type ItemDeficit struct {
	Range      Range
	Category   Category
	Count      int
	PowerTiers []items.PowerTier
}

// Report summarizes a repair pass.
type Report struct {
	Deficits []ItemDeficit
	Placed   map[Category]int
	// Unfilled counts forced spawns that found no template or free tile.
	Unfilled int
}

// Counts tallies every tracked category across the levels inside r.
func Counts(levels []*level.Level, r Range) map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, l := range levels {
		if !r.Contains(l.Depth) {
			continue
		}
		for _, item := range l.Items {
			for _, c := range Categories {
				if c.Matches(item) {
					counts[c]++
				}
			}
		}
	}
	return counts
}

// Deficits compares the levels against every rule. Ranges with no generated
// level are skipped, as there is nowhere to put the items.
func (c *Config) Deficits(levels []*level.Level) []ItemDeficit {
	var deficits []ItemDeficit
	for _, rule := range c.Rules {
		if len(levelsIn(levels, rule.Range)) == 0 {
			continue
		}
		counts := Counts(levels, rule.Range)
		for _, cat := range Categories {
			want, ok := rule.Minimums[cat]
			if !ok || counts[cat] >= want {
				continue
			}
			deficits = append(deficits, ItemDeficit{
				Range:      rule.Range,
				Category:   cat,
				Count:      want - counts[cat],
				PowerTiers: items.TiersForDepth(rule.Range.Min),
			})
		}
	}
	return deficits
}

// Enforce force-spawns every deficit into the levels of its range, round
// robin from the shallowest level. It only appends to Level.Items.
func Enforce(levels []*level.Level, cfg *Config, spawner *loot.Spawner, src *rng.Source) Report {
	report := Report{Placed: make(map[Category]int)}
	if cfg == nil {
		return report
	}
	report.Deficits = cfg.Deficits(levels)

	for _, deficit := range report.Deficits {
		targets := levelsIn(levels, deficit.Range)
		placed, next := 0, 0
		// Each level gets at most one failed turn per missing item.
		for budget := deficit.Count * len(targets); placed < deficit.Count && budget > 0; budget-- {
			l := targets[next%len(targets)]
			next++

			f := deficit.Category.forced(l.Depth, deficit.PowerTiers)
			id := loot.ItemID(l.Depth, len(l.Items))
			item, ok := spawner.SpawnForced(src, f, l.Rooms, l.Tiles, l.Occupancy(), l.Depth, id)
			if !ok {
				continue
			}
			l.Items = append(l.Items, item)
			placed++
		}

		report.Placed[deficit.Category] += placed
		report.Unfilled += deficit.Count - placed
		logger.Debug("guarantee deficit repaired",
			"range", deficit.Range.String(),
			"category", string(deficit.Category),
			"missing", deficit.Count,
			"placed", placed)
	}

	if report.Unfilled > 0 {
		logger.Warning("guarantee pass left deficits unfilled", "count", report.Unfilled)
	}
	return report
}

// levelsIn returns the levels inside r ordered by depth.
func levelsIn(levels []*level.Level, r Range) []*level.Level {
	var out []*level.Level
	for _, l := range levels {
		if r.Contains(l.Depth) {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })
	return out
}
