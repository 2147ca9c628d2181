// Command inkserver runs the development classifier backend: random
// predictions and persisted feedback, for exercising the ink frontend
// without a trained model.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/digitink/ink"
	"github.com/digitink/ink/internal/config"
	"github.com/digitink/ink/internal/devserver"
	"github.com/digitink/ink/internal/feedback"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to TOML config file")
		listen     = flag.String("listen", "", "listen address (overrides config)")
		dbPath     = flag.String("db", "", "feedback database path (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *listen != "" {
		cfg.Server.Listen = *listen
	}
	if *dbPath != "" {
		cfg.Server.DBPath = *dbPath
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := cfg.NewLogger(os.Stderr)
	ink.SetLogger(logger)

	store, err := feedback.Open(cfg.Server.DBPath)
	if err != nil {
		log.Fatalf("Failed to open feedback store: %v", err)
	}
	defer store.Close()

	srv, err := devserver.New(store, logger)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	logger.Info("inkserver listening", "addr", cfg.Server.Listen, "db", cfg.Server.DBPath)
	if err := http.ListenAndServe(cfg.Server.Listen, srv.Handler()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
