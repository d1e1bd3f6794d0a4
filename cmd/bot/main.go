package main

import (
	"charlie/domain"
	"charlie/gateway"
	"charlie/internal"
	"charlie/repositories"
	"charlie/runtime"
	"charlie/runtime/workers"
	"charlie/services"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages their lifecycle, and centralizes
// error reporting so every defer (database close included) executes before
// the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the lock is released and buffers are flushed before returning.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Counting core
	repository := repositories.NewCountRepository(db, logger)
	coordinator := runtime.NewCoordinator(logger, repository, config.BufferSize, config.StoreTimeout)
	service := services.NewCountService(coordinator)

	// 4. Discord gateway
	discord, err := gateway.New(logger, config.Token, domain.ChannelID(config.ChannelID), service)
	if err != nil {
		return exitRuntime, err
	}

	// 5. Supervision
	supervisor := workers.NewSupervisor(logger)
	supervisor.Add(
		coordinator,
		discord,
		workers.NewStatsWorker(logger, config.MetricInterval),
		workers.NewGCWorker(db, logger, config.GCInterval),
	)

	logger.Info("Starting counting bot", "channel", config.ChannelID)
	supervisor.Run(ctx)

	logger.Info("Shutdown complete")
	return exitOK, nil
}
