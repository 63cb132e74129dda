// Command iconwarm pre-generates icons for a list of common ingredients by
// enqueueing each one against the icon-generation service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pantrykit/iconsmith/internal/shell/icons"
	"github.com/pantrykit/iconsmith/internal/shell/store"
	"github.com/pantrykit/iconsmith/internal/shell/warm"
)

// =============================================================================
// Exit Codes
// =============================================================================

const (
	ExitSuccess     = 0
	ExitConfigError = 1
	ExitLedgerError = 2
	ExitWarmError   = 3
)

// Version information (set by build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "Path to config file")
	listPath := flag.String("list", "", "Path to YAML ingredient list (overrides config)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("iconwarm %s (built %s)\n", Version, BuildTime)
		return ExitSuccess
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return ExitConfigError
	}
	if *listPath != "" {
		cfg.List.Path = *listPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return ExitConfigError
	}

	logger := SetupLogger(cfg)
	logger.Info("starting iconwarm",
		"version", Version,
		"service_url", cfg.Service.BaseURL,
	)

	// Build the warm list
	list := warm.DefaultList()
	if cfg.List.Path != "" {
		list, err = warm.LoadList(cfg.List.Path)
		if err != nil {
			logger.Error("failed to load ingredient list", "path", cfg.List.Path, "error", err)
			return ExitConfigError
		}
	}

	// Open the ledger if configured
	var ledger store.Store
	if cfg.Ledger.DSN != "" {
		s, err := store.NewSQLiteStore(cfg.Ledger.DSN)
		if err != nil {
			logger.Error("failed to open ledger", "dsn", cfg.Ledger.DSN, "error", err)
			return ExitLedgerError
		}
		defer s.Close()
		ledger = s
	}

	client := icons.NewHTTPClient(icons.Config{
		BaseURL: cfg.Service.BaseURL,
		AnonKey: cfg.Service.AnonKey,
		Timeout: cfg.Service.Timeout,
	}, logger)

	runner := warm.NewRunner(client, ledger, logger)

	summary, err := runner.Run(context.Background(), list)
	if err != nil {
		logger.Error("warm run failed",
			"run_id", summary.RunID,
			"enqueued", summary.Enqueued,
			"total", summary.Total,
			"error", err,
		)
		return ExitWarmError
	}

	logger.Info("warm run finished",
		"run_id", summary.RunID,
		"enqueued", summary.Enqueued,
	)
	return ExitSuccess
}
