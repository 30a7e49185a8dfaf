package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/lawnchairsociety/delvegen/internal/catalog"
	"github.com/lawnchairsociety/delvegen/internal/config"
	"github.com/lawnchairsociety/delvegen/internal/dungeon"
	"github.com/lawnchairsociety/delvegen/internal/guarantee"
	"github.com/lawnchairsociety/delvegen/internal/level"
	"github.com/lawnchairsociety/delvegen/internal/logger"
	"github.com/lawnchairsociety/delvegen/internal/rng"
)

func main() {
	configPath := flag.String("config", "data/delvegen.yaml", "Path to configuration file")
	seed := flag.String("seed", "", "Seed string (default: random, printed in the header)")
	depth := flag.Int("depth", 0, "Single depth to generate (0 for the whole dungeon)")
	outputFile := flag.String("output", "", "Output file (empty for stdout)")
	showMap := flag.Bool("map", true, "Print the ASCII map of each level")
	showLegend := flag.Bool("legend", true, "Show legend")
	archive := flag.Bool("archive", false, "Record the run in the catalog")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logCfg, err := logger.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading logging config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	if *depth < 0 || *depth > cfg.Depths.MaxDepth {
		fmt.Fprintf(os.Stderr, "Error: depth must be between 0 (all) and %d\n", cfg.Depths.MaxDepth)
		os.Exit(1)
	}

	data, err := dungeon.LoadData(cfg.Data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		os.Exit(1)
	}

	if *seed == "" {
		*seed = randomSeed()
	}
	src := rng.NewFromString(*seed)
	gen, err := dungeon.NewGenerator(cfg, src, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating generator: %v\n", err)
		os.Exit(1)
	}

	var levels []*level.Level
	var report guarantee.Report
	if *depth > 0 {
		levels = []*level.Level{gen.GenerateLevel(*depth)}
	} else {
		levels, report = gen.GenerateAllLevels()
	}
	logger.Info("generation complete", "seed", *seed, "seed_value", src.Seed(), "levels", len(levels))

	var output strings.Builder
	fmt.Fprintf(&output, "Dungeon (Seed: %q, Value: %d, Depths: %d)\n", *seed, src.Seed(), len(levels))
	output.WriteString(strings.Repeat("=", 60) + "\n\n")

	for _, l := range levels {
		renderSummary(&output, l)
		if *showMap {
			output.WriteString(renderLevel(l))
		}
		output.WriteString("\n")
	}
	if *depth == 0 {
		renderReport(&output, report)
	}
	if *showLegend && *showMap {
		output.WriteString(getLegend())
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output.String()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Dungeon written to %s\n", *outputFile)
	} else {
		fmt.Print(output.String())
	}

	if *archive {
		id, err := archiveRun(cfg.Catalog, *seed, src.Seed(), cfg.Depths.MaxDepth, levels, report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error archiving run: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Run archived as %s\n", id)
	}
}

// randomSeed returns a short printable seed so unseeded runs can be replayed.
func randomSeed() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}

func archiveRun(cfg config.CatalogConfig, seed string, seedValue int64, maxDepth int, levels []*level.Level, report guarantee.Report) (string, error) {
	c, err := catalog.Open(catalogConfig(cfg))
	if err != nil {
		return "", err
	}
	defer c.Close()
	return c.RecordRun(seed, seedValue, maxDepth, levels, report)
}

// catalogConfig maps the YAML catalog section onto the catalog's own config,
// keeping its pool defaults.
func catalogConfig(cfg config.CatalogConfig) catalog.Config {
	out := catalog.DefaultConfig(cfg.SQLitePath)
	out.Driver = cfg.Driver
	out.Postgres.Host = cfg.Postgres.Host
	out.Postgres.Port = cfg.Postgres.Port
	out.Postgres.User = cfg.Postgres.User
	out.Postgres.Password = cfg.Postgres.Password
	out.Postgres.Database = cfg.Postgres.Database
	out.Postgres.SSLMode = cfg.Postgres.SSLMode
	return out
}
