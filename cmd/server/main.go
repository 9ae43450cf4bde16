package main

import (
	"context"
	"log"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/internal/config"
	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/internal/httpapi"
	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/pkg/logging"
	"github.com/f0rsakenHere/A10-Freelance-MarketPlace-Server/pkg/shutdown"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	res, err := httpapi.BuildResources(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize server", "err", err)
		os.Exit(1)
	}

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	if err := res.Repo.EnsureIndexes(indexCtx); err != nil {
		logger.Warn("index creation failed", "err", err)
	} else {
		logger.Info("database indexes created")
	}
	cancelIndex()

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		res.Server,
		10*time.Second,
		logger,
	)

	logger.Info("marketplace server initialized and starting", "addr", net.JoinHostPort(cfg.Host, cfg.Port))

	if err := res.Server.Run(); err != nil {
		logger.Error("HTTP server exited with error", "err", err)
	} else {
		logger.Info("HTTP server stopped")
	}

	closeCtx, cancelClose := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelClose()
	if err := res.Mongo.Close(closeCtx); err != nil {
		logger.Warn("failed to close store connection", "err", err)
	}
}
