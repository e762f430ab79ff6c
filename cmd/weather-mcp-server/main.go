package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"weather-mcp-server/internal/api/httpapi"
	"weather-mcp-server/internal/cities"
	"weather-mcp-server/internal/config"
	"weather-mcp-server/internal/logging"
	"weather-mcp-server/internal/mcpserver"
	"weather-mcp-server/internal/openmeteo"
	"weather-mcp-server/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	registry := cities.NewRegistry()

	client := openmeteo.NewClient(openmeteo.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	}, logger)

	service := weather.NewService(registry, client, logger)
	srv := mcpserver.New(service, logger)

	switch cfg.Transport {
	case config.TransportHTTP:
		runHTTP(srv, cfg, logger)
	default:
		logger.Infow("starting weather MCP server on stdio")
		if err := srv.ServeStdio(); err != nil {
			logger.Fatalw("stdio server stopped", "error", err)
		}
	}
}

func runHTTP(srv *mcpserver.Server, cfg *config.AppConfig, logger *zap.SugaredLogger) {
	app := httpapi.New(srv.HTTPHandler())

	go func() {
		logger.Infow("starting weather MCP server over HTTP", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Errorw("http server stopped", "error", err)
		}
	}()

	// Wait for termination signal.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Errorw("error during shutdown", "error", err)
	}
}
