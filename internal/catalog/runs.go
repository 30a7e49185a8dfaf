package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lawnchairsociety/delvegen/internal/guarantee"
	"github.com/lawnchairsociety/delvegen/internal/items"
	"github.com/lawnchairsociety/delvegen/internal/level"
)

var (
	// ErrRunNotFound is returned when no run has the requested id.
	ErrRunNotFound = errors.New("catalog: run not found")
	// ErrRunExists is returned when saving a run id that is already archived.
	ErrRunExists = errors.New("catalog: run already archived")
)

// LevelRecord is the archived summary of one level.
type LevelRecord struct {
	Depth     int
	Rooms     int
	Doors     int
	Traps     int
	Monsters  int
	Items     int
	Gold      int
	HasAmulet bool
	// ItemCounts is keyed by item category name.
	ItemCounts map[string]int
}

// Run is one archived generation.
type Run struct {
	ID          string
	Seed        string
	SeedValue   int64
	MaxDepth    int
	LevelCount  int
	ForcedItems int
	Unfilled    int
	CreatedAt   time.Time
	Levels      []LevelRecord
}

// Summarize reduces a generated level to its archived counts.
func Summarize(l *level.Level) LevelRecord {
	rec := LevelRecord{
		Depth:      l.Depth,
		Rooms:      len(l.Rooms),
		Doors:      len(l.Doors),
		Traps:      len(l.Traps),
		Monsters:   len(l.Monsters),
		Items:      len(l.Items),
		Gold:       l.TotalGold(),
		HasAmulet:  items.HasCategory(l.Items, items.Amulet),
		ItemCounts: make(map[string]int),
	}
	for c, n := range items.CountByCategory(l.Items) {
		rec.ItemCounts[c.String()] = n
	}
	return rec
}

// NewRun builds a Run with a fresh id from generated levels and the
// guarantee report that repaired them.
func NewRun(seed string, seedValue int64, maxDepth int, levels []*level.Level, report guarantee.Report) Run {
	run := Run{
		ID:         uuid.New().String(),
		Seed:       seed,
		SeedValue:  seedValue,
		MaxDepth:   maxDepth,
		LevelCount: len(levels),
		Unfilled:   report.Unfilled,
		CreatedAt:  time.Now().UTC(),
	}
	for _, n := range report.Placed {
		run.ForcedItems += n
	}
	for _, l := range levels {
		run.Levels = append(run.Levels, Summarize(l))
	}
	sort.Slice(run.Levels, func(i, j int) bool { return run.Levels[i].Depth < run.Levels[j].Depth })
	return run
}

// RecordRun archives a generation and returns the new run id.
func (c *Catalog) RecordRun(seed string, seedValue int64, maxDepth int, levels []*level.Level, report guarantee.Report) (string, error) {
	run := NewRun(seed, seedValue, maxDepth, levels, report)
	if err := c.SaveRun(run); err != nil {
		return "", err
	}
	return run.ID, nil
}

// SaveRun inserts run and all of its levels in one transaction.
func (c *Catalog) SaveRun(run Run) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(c.backend.rebind(`
		INSERT INTO runs (id, seed, seed_value, max_depth, level_count, forced_items, unfilled, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		run.ID, run.Seed, run.SeedValue, run.MaxDepth, run.LevelCount, run.ForcedItems, run.Unfilled, run.CreatedAt)
	if err != nil {
		if c.backend.isDuplicateKey(err) {
			return fmt.Errorf("%w: %s", ErrRunExists, run.ID)
		}
		return fmt.Errorf("failed to insert run: %w", err)
	}

	levelQuery := c.backend.rebind(`
		INSERT INTO levels (run_id, depth, rooms, doors, traps, monsters, items, gold, has_amulet)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	countQuery := c.backend.rebind(`INSERT INTO item_counts (run_id, depth, category, count) VALUES (?, ?, ?, ?)`)

	for _, l := range run.Levels {
		amulet := 0
		if l.HasAmulet {
			amulet = 1
		}
		if _, err := tx.Exec(levelQuery, run.ID, l.Depth, l.Rooms, l.Doors, l.Traps, l.Monsters, l.Items, l.Gold, amulet); err != nil {
			return fmt.Errorf("failed to insert level %d: %w", l.Depth, err)
		}

		categories := make([]string, 0, len(l.ItemCounts))
		for name := range l.ItemCounts {
			categories = append(categories, name)
		}
		sort.Strings(categories)
		for _, name := range categories {
			if _, err := tx.Exec(countQuery, run.ID, l.Depth, name, l.ItemCounts[name]); err != nil {
				return fmt.Errorf("failed to insert item count for level %d: %w", l.Depth, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}

const runColumns = `id, seed, seed_value, max_depth, level_count, forced_items, unfilled, created_at`

func scanRun(row interface{ Scan(...any) error }) (Run, error) {
	var run Run
	err := row.Scan(&run.ID, &run.Seed, &run.SeedValue, &run.MaxDepth, &run.LevelCount,
		&run.ForcedItems, &run.Unfilled, &run.CreatedAt)
	return run, err
}

// ListRuns returns the newest runs first, without their levels.
// A limit of 0 or less returns every run.
func (c *Catalog) ListRuns(limit int) ([]Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY created_at DESC, id`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return c.queryRuns(c.backend.rebind(query), args...)
}

// FindRunsBySeed returns every run generated from seed, oldest first.
func (c *Catalog) FindRunsBySeed(seed string) ([]Run, error) {
	return c.queryRuns(c.backend.rebind(`SELECT `+runColumns+` FROM runs WHERE seed = ? ORDER BY created_at, id`), seed)
}

func (c *Catalog) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun loads a run with its levels and item counts.
func (c *Catalog) GetRun(id string) (*Run, error) {
	run, err := scanRun(c.db.QueryRow(c.backend.rebind(`SELECT `+runColumns+` FROM runs WHERE id = ?`), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	levels, err := c.loadLevels(id)
	if err != nil {
		return nil, err
	}
	run.Levels = levels
	return &run, nil
}

func (c *Catalog) loadLevels(runID string) ([]LevelRecord, error) {
	rows, err := c.db.Query(c.backend.rebind(`
		SELECT depth, rooms, doors, traps, monsters, items, gold, has_amulet
		FROM levels WHERE run_id = ? ORDER BY depth`), runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query levels: %w", err)
	}

	var levels []LevelRecord
	byDepth := make(map[int]int)
	for rows.Next() {
		var l LevelRecord
		var amulet int
		if err := rows.Scan(&l.Depth, &l.Rooms, &l.Doors, &l.Traps, &l.Monsters, &l.Items, &l.Gold, &amulet); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan level: %w", err)
		}
		l.HasAmulet = amulet != 0
		l.ItemCounts = make(map[string]int)
		byDepth[l.Depth] = len(levels)
		levels = append(levels, l)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	counts, err := c.db.Query(c.backend.rebind(`SELECT depth, category, count FROM item_counts WHERE run_id = ?`), runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query item counts: %w", err)
	}
	defer counts.Close()

	for counts.Next() {
		var depth, n int
		var category string
		if err := counts.Scan(&depth, &category, &n); err != nil {
			return nil, fmt.Errorf("failed to scan item count: %w", err)
		}
		if i, ok := byDepth[depth]; ok {
			levels[i].ItemCounts[category] = n
		}
	}
	return levels, counts.Err()
}

// DeleteRun removes a run and everything archived under it.
func (c *Catalog) DeleteRun(id string) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"item_counts", "levels"} {
		if _, err := tx.Exec(c.backend.rebind(`DELETE FROM `+table+` WHERE run_id = ?`), id); err != nil {
			return fmt.Errorf("failed to delete from %s: %w", table, err)
		}
	}
	result, err := tx.Exec(c.backend.rebind(`DELETE FROM runs WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrRunNotFound
	}
	return tx.Commit()
}
