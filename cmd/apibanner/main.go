// Command apibanner serves the page shell that displays the configured API URL.
//
// It starts:
// - the HTTP server hosting the page, its logo, health and metrics, and
// - an optional NDJSON render log.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"apibanner/internal/config"
	"apibanner/internal/page"
	"apibanner/internal/renderlog"
	"apibanner/internal/runid"
	"apibanner/internal/server"
)

func fatal(msg string, err error, attrs ...any) {
	args := make([]any, 0, 2+len(attrs))
	args = append(args, "err", err)
	args = append(args, attrs...)
	slog.Error(msg, args...)
	os.Exit(1)
}

func main() {
	// Set up logging first so early failures are captured consistently.
	runID := runid.New()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With("run_id", runID))

	cfg, err := config.Load()
	if err != nil {
		fatal("config load failed", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Shutdown watch: once a shutdown signal is received, allow a bounded window
	// for goroutines to exit cleanly before forcing termination.
	go func() {
		<-ctx.Done()
		t := time.NewTimer(10 * time.Second)
		defer t.Stop()
		<-t.C
		slog.Error("shutdown timed out after 10s, forcing exit")
		os.Exit(2)
	}()

	if cfg.APIURL == "" {
		slog.Warn("API_URL is not set; heading will show an empty value")
	}
	slog.Info(
		"starting apibanner",
		"http_port", cfg.HTTPPort,
		"api_url", cfg.APIURL,
		"rate_limit", cfg.RateLimit,
		"metrics", cfg.Metrics,
	)

	var rl *renderlog.Logger
	if cfg.RenderLogPath != "" {
		rl, err = renderlog.New(cfg.RenderLogPath)
		if err != nil {
			fatal("open ndjson render log failed", err, "path", cfg.RenderLogPath)
		}
		defer func() { _ = rl.Close() }()
		slog.Info("ndjson render log enabled", "path", cfg.RenderLogPath)
	} else {
		slog.Info("ndjson render log disabled (default); set APIBANNER_TELEMETRY_RENDER_NDJSON_PATH to enable")
	}

	shell, err := page.New(cfg.APIURL)
	if err != nil {
		fatal("page template load failed", err)
	}

	srv, err := server.Start(ctx, cfg.Addr(), server.Options{
		Page:      shell,
		RunID:     runID,
		RenderLog: rl,
		RateLimit: cfg.RateLimit,
		Metrics:   cfg.Metrics,
	})
	if err != nil {
		fatal("http server start failed", err, "port", cfg.HTTPPort)
	}
	slog.Info("http server listening", "addr", srv.Addr())

	srv.Wait()
	slog.Info("shutdown complete")
}
