package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	mcpadapter "github.com/kirillkom/brandboost/internal/adapters/mcp"
	"github.com/kirillkom/brandboost/internal/bootstrap"
	"github.com/kirillkom/brandboost/internal/config"
	"github.com/kirillkom/brandboost/internal/observability/logging"
)

const (
	serviceName = "brandboost-mcp"
	version     = "0.1.0"
)

// stdout carries the MCP protocol, so everything else goes to stderr.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	slog.SetDefault(logging.NewJSONLoggerTo(os.Stderr, serviceName, cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, serviceName)
	if err != nil {
		slog.Error("bootstrap_failed", "error", err)
		os.Exit(1)
	}

	if cfg.MCPMetricsPort != "" {
		metricsServer := &http.Server{
			Addr:              ":" + cfg.MCPMetricsPort,
			Handler:           app.GenerationMetrics.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			slog.Info("mcp_metrics_listening", "addr", metricsServer.Addr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("mcp_metrics_failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsServer.Shutdown(shutdownCtx)
		}()
	}

	srv := mcpadapter.NewServer(app.GenerateUC, app.ExportUC, app.Catalog, version)
	slog.Info("mcp_serving_stdio", "version", version)
	if err := srv.ServeStdio(); err != nil {
		slog.Error("mcp_server_failed", "error", err)
		os.Exit(1)
	}
}
