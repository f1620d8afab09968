package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/industash/industash/config"
	"github.com/industash/industash/dataset"
	"github.com/industash/industash/logging"
	"github.com/industash/industash/metrics"
	"github.com/industash/industash/server"
)

// ============================================================================
// INDUSTASH — industrial employment data dashboard
// ============================================================================

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (env vars override)")
	datasetPath := flag.String("dataset", "", "Path to the delimited dataset (overrides config)")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `industash — explore industrial employment data

Usage:
  industash --config industash.yaml
  industash --dataset UNdata_Export.csv

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  INDUSTASH_DATASET_PATH    Dataset file (same as --dataset)
  INDUSTASH_SERVER_PORT     Listen port (default 8080)
  INDUSTASH_LOGGING_LEVEL   debug | info | warn | error
`)
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("industash %s\n", version)
		os.Exit(0)
	}

	if *datasetPath != "" {
		os.Setenv("INDUSTASH_DATASET_PATH", *datasetPath)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatalf("%v", err)
	}

	logger := logging.New(cfg.Logging)

	// The dataset is loaded once; the Store owns the immutable Table for
	// the process lifetime and every reader shares it.
	store := dataset.NewStore()
	table, err := store.Open(cfg.Dataset.Path, dataset.WithComma(cfg.Delimiter()))
	if err != nil {
		fatalf("load dataset: %v", err)
	}

	binding, err := dataset.Bind(table, cfg.Dataset.Columns)
	if err != nil {
		fatalf("dataset schema: %v", err)
	}

	logger.Info("dataset loaded",
		slog.String("path", cfg.Dataset.Path),
		slog.Int("records", table.NumRows()),
		slog.Int("columns", table.NumCols()),
		slog.Bool("has_category", binding.HasCategory()))

	handler := server.NewHandler(table, binding, logger)
	srv := server.New(cfg.Server, handler, logger, metrics.New())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		fatalf("server: %v", err)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
