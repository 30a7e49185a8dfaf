// migrate-to-postgres copies an archived SQLite catalog into PostgreSQL.
//
// Usage:
//
//	go run ./cmd/migrate-to-postgres \
//	    -sqlite data/delvegen.db \
//	    -pg-host localhost \
//	    -pg-port 5432 \
//	    -pg-user delvegen \
//	    -pg-password delvegen \
//	    -pg-database delvegen
package main

import (
	"flag"
	"log"

	"github.com/lawnchairsociety/delvegen/internal/catalog"
)

func main() {
	sqlitePath := flag.String("sqlite", "data/delvegen.db", "Path to SQLite catalog")
	pgHost := flag.String("pg-host", "localhost", "PostgreSQL host")
	pgPort := flag.Int("pg-port", 5432, "PostgreSQL port")
	pgUser := flag.String("pg-user", "delvegen", "PostgreSQL user")
	pgPassword := flag.String("pg-password", "delvegen", "PostgreSQL password")
	pgDatabase := flag.String("pg-database", "delvegen", "PostgreSQL database name")
	pgSSLMode := flag.String("pg-sslmode", "disable", "PostgreSQL SSL mode")
	dryRun := flag.Bool("dry-run", false, "Show what would be copied without making changes")
	flag.Parse()

	log.Println("Catalog migration: SQLite to PostgreSQL")
	log.Println("=======================================")

	log.Printf("Opening SQLite catalog: %s", *sqlitePath)
	src, err := catalog.OpenSQLite(*sqlitePath)
	if err != nil {
		log.Fatalf("Failed to open SQLite catalog: %v", err)
	}
	defer src.Close()

	pg := catalog.DefaultPostgresConfig()
	pg.Host = *pgHost
	pg.Port = *pgPort
	pg.User = *pgUser
	pg.Password = *pgPassword
	pg.Database = *pgDatabase
	pg.SSLMode = *pgSSLMode

	log.Printf("Opening PostgreSQL catalog: %s@%s:%d/%s", pg.User, pg.Host, pg.Port, pg.Database)
	dst, err := catalog.Open(catalog.Config{Driver: catalog.DriverPostgres, Postgres: pg})
	if err != nil {
		log.Fatalf("Failed to open PostgreSQL catalog: %v", err)
	}
	defer dst.Close()

	if *dryRun {
		log.Println("DRY RUN MODE - No changes will be made")
	}

	result, err := src.CopyTo(dst, *dryRun)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("=======================================")
	log.Printf("Migration complete! Runs copied: %d, already present: %d", result.Copied, result.Skipped)
	if *dryRun {
		log.Println("(DRY RUN - No actual changes were made)")
	}
}
