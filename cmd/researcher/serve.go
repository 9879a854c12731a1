package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/dbhatt90/ai-research-assistant/pkg/observability"
	"github.com/dbhatt90/ai-research-assistant/pkg/server"
)

// ServeCmd starts the HTTP server.
type ServeCmd struct {
	Host string `help:"Host to bind to (overrides config)."`
	Port int    `help:"Port to listen on (overrides config)."`
}

func (c *ServeCmd) Run(cli *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, researcher, err := buildAgent(cli)
	if err != nil {
		return err
	}

	if c.Host != "" {
		cfg.Server.Host = c.Host
	}
	if c.Port != 0 {
		cfg.Server.Port = c.Port
	}

	// Metrics feed the /metrics endpoint through the default Prometheus
	// registry; without this the recorder stays a no-op.
	if _, err := observability.InitMetrics(); err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}

	srv, err := server.New(&cfg.Server, researcher)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	slog.Info("Starting research assistant",
		"address", cfg.Server.Address(),
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.Model,
	)

	return srv.Run(ctx)
}
