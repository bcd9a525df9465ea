package main

import (
	"net"
	"os"
	"syscall"
	"time"

	"github.com/careertrail/jobs-internships-mcp/internal/config"
	"github.com/careertrail/jobs-internships-mcp/internal/mcp"
	"github.com/careertrail/jobs-internships-mcp/pkg/logging"
	"github.com/careertrail/jobs-internships-mcp/pkg/shutdown"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	if cfg.Adzuna.AppID == "" || cfg.Adzuna.AppKey == "" {
		logger.Warn("Adzuna credentials not set; upstream searches will return no results")
	}

	res, err := mcp.InitializeResources(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		os.Exit(1)
	}

	srv := mcp.NewServer(logger, cfg, res)

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		10*time.Second,
		logger,
		srv,
		res.AdzunaClient,
	)

	logger.Info("MCP server initialized and starting", "addr", net.JoinHostPort(cfg.Host, cfg.Port))

	if err := srv.Run(); err != nil {
		logger.Error("MCP server exited with error", "err", err)
	} else {
		logger.Info("MCP server stopped")
	}
}
