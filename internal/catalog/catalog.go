// Package catalog archives generated runs in SQLite or PostgreSQL so seeds
// can be compared and looked up later.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lawnchairsociety/delvegen/internal/logger"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported values of Config.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// backend is what differs between the two databases. Queries are written
// with ? placeholders and rebound for backends that number them.
type backend struct {
	driver     string
	numbered   bool
	pragmas    []string
	duplicates []string // error fragments reported for a unique violation
}

var backends = map[string]backend{
	DriverSQLite: {
		driver: "sqlite",
		pragmas: []string{
			"PRAGMA foreign_keys = ON",
			"PRAGMA journal_mode = WAL",
			"PRAGMA busy_timeout = 5000",
		},
		duplicates: []string{"UNIQUE constraint failed"},
	},
	DriverPostgres: {
		driver:   "postgres",
		numbered: true,
		// 23505 is unique_violation.
		duplicates: []string{"duplicate key", "23505", "unique constraint"},
	},
}

// rebind turns ? placeholders into $1, $2, ... when the backend needs it.
func (b backend) rebind(query string) string {
	if !b.numbered {
		return query
	}
	var out strings.Builder
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] != '?' {
			out.WriteByte(query[i])
			continue
		}
		n++
		out.WriteByte('$')
		out.WriteString(strconv.Itoa(n))
	}
	return out.String()
}

func (b backend) isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, fragment := range b.duplicates {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}

// Catalog wraps the database connection.
type Catalog struct {
	db      *sql.DB
	backend backend
}

// Open connects to the configured database and creates the schema.
func Open(cfg Config) (*Catalog, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverSQLite
	}
	b, ok := backends[driver]
	if !ok {
		return nil, fmt.Errorf("unknown catalog driver %q", cfg.Driver)
	}

	dsn := cfg.SQLitePath
	if driver == DriverPostgres {
		dsn = cfg.Postgres.DSN()
	} else if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}

	db, err := sql.Open(b.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	if driver == DriverPostgres {
		if cfg.Postgres.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		}
		if cfg.Postgres.MaxIdleConns > 0 {
			db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
		}
		if cfg.Postgres.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
	}

	for _, stmt := range b.pragmas {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("init statement %q failed: %w", stmt, err)
		}
	}

	c := &Catalog{db: db, backend: b}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Debug("catalog opened", "driver", b.driver)
	return c, nil
}

// OpenSQLite opens a SQLite catalog at path.
func OpenSQLite(path string) (*Catalog, error) {
	return Open(DefaultConfig(path))
}

// Close closes the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Driver returns the database driver in use.
func (c *Catalog) Driver() string {
	return c.backend.driver
}

// migrate creates the schema if it doesn't exist. Statements use only SQL
// understood by both SQLite and PostgreSQL.
func (c *Catalog) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			seed TEXT NOT NULL,
			seed_value BIGINT NOT NULL,
			max_depth INTEGER NOT NULL,
			level_count INTEGER NOT NULL,
			forced_items INTEGER NOT NULL DEFAULT 0,
			unfilled INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS levels (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			depth INTEGER NOT NULL,
			rooms INTEGER NOT NULL,
			doors INTEGER NOT NULL,
			traps INTEGER NOT NULL,
			monsters INTEGER NOT NULL,
			items INTEGER NOT NULL,
			gold INTEGER NOT NULL,
			has_amulet INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (run_id, depth)
		)`,

		`CREATE TABLE IF NOT EXISTS item_counts (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			depth INTEGER NOT NULL,
			category TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (run_id, depth, category)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_runs_seed ON runs(seed)`,
	}

	for _, m := range migrations {
		if _, err := c.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}
