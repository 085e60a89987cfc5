package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/orbitwatch/neoquery/internal/config"
	"github.com/orbitwatch/neoquery/internal/extract"
	"github.com/orbitwatch/neoquery/internal/neodb"
	"github.com/orbitwatch/neoquery/internal/observability"
)

var rootCmd = &cobra.Command{
	Use:   "neoq",
	Short: "Explore close approaches of near-Earth objects",
	Long: `neoq — explore close approaches of near-Earth objects (NEOs).

Loads NEO records (CSV) and close-approach events (JSON), links them into an
in-memory database, and answers filtered queries.

Examples:
  neoq inspect --pdes 433 --verbose
  neoq query --date 2020-01-01 --max-distance 0.1 --limit 5
  neoq query --hazardous --outfile results.csv
  neoq check
  neoq serve`,
	SilenceUsage: true,
}

var (
	neoPathFlag string
	cadPathFlag string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&neoPathFlag, "neofile", "",
		"path to the NEO CSV dataset (overrides NEO_CSV_PATH)")
	rootCmd.PersistentFlags().StringVar(&cadPathFlag, "cadfile", "",
		"path to the close-approach JSON dataset (overrides CAD_JSON_PATH)")
}

// app bundles the loaded database with its collaborators for one command run.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
	loader  *extract.Loader
	db      *neodb.Database
}

// loadApp reads configuration, loads both datasets, and builds the database.
func loadApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if neoPathFlag != "" {
		cfg.NEOCSVPath = neoPathFlag
	}
	if cadPathFlag != "" {
		cfg.CADJSONPath = cadPathFlag
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()
	loader := extract.NewLoader(logger, metrics)

	neos, err := loader.LoadNEOs(cfg.NEOCSVPath)
	if err != nil {
		return nil, err
	}
	approaches, err := loader.LoadApproaches(cfg.CADJSONPath)
	if err != nil {
		return nil, err
	}

	db := neodb.New(neos, approaches)
	metrics.PlaceholderNEOs.Add(float64(db.PlaceholderCount()))
	if n := db.PlaceholderCount(); n > 0 {
		logger.Warn("approaches referenced unknown NEOs, placeholders synthesized", "count", n)
	}
	logger.Info("database linked",
		"neos", db.NEOCount(),
		"approaches", db.ApproachCount(),
	)

	return &app{cfg: cfg, logger: logger, metrics: metrics, loader: loader, db: db}, nil
}
