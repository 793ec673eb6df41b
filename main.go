package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"wealth-projector/internal/api"
	"wealth-projector/internal/db"
	"wealth-projector/internal/logger"
)

var version = "dev"

func main() {
	port := flag.Int("port", 13380, "HTTP server port")
	flag.Parse()

	logger.Banner(version)

	// Open SQLite database (plan settings + positions; projections are never
	// persisted, they are recomputed from inputs).
	database, err := db.Open()
	if err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to open database: %v", err))
		os.Exit(1)
	}
	defer database.Close()

	cfg := database.LoadConfig()
	positions, err := database.ListPositions()
	if err != nil {
		logger.Warn("DB", fmt.Sprintf("Listing positions: %v", err))
	}

	logger.Section("Plan")
	logger.Stats("Positions", len(positions))
	logger.Stats("Horizon", fmt.Sprintf("%d years", cfg.HorizonYears))
	logger.Stats("Tail", fmt.Sprintf("%d%%", cfg.TailPercentile))

	srv := api.NewServer(cfg, database, version)

	addr := fmt.Sprintf("%s:%d", envOrDefault("PROJECTOR_HOST", "127.0.0.1"), *port)
	logger.Server(addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		logger.Error("Server", fmt.Sprintf("Failed: %v", err))
		os.Exit(1)
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
