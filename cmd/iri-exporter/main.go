package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/obsidianstack/iri-exporter/internal/config"
	"github.com/obsidianstack/iri-exporter/internal/exporter"
	"github.com/obsidianstack/iri-exporter/internal/iri"
	"github.com/obsidianstack/iri-exporter/internal/telemetry"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, configPath, err := config.ParseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	slog.Info("iri-exporter starting",
		"iri_address", cfg.IRIAddress,
		"port", cfg.Port,
		"exclude_neighbors", cfg.ExcludeNeighbors,
		"upstream_timeout", cfg.UpstreamTimeout,
		"telemetry_port", cfg.TelemetryPort,
		"auth_mode", cfg.Auth.Mode,
		"config", configPath,
	)

	client, err := iri.NewClient(cfg)
	if err != nil {
		slog.Error("failed to build IRI client", "err", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := telemetry.NewRegistry()
	exp := exporter.New(client, cfg.ExcludeNeighbors, telemetry.New(reg))

	// Configuration is fixed at startup; edits only produce a reminder.
	if configPath != "" {
		go func() {
			err := config.Watch(ctx, configPath, func(*config.Config) {
				slog.Warn("config file changed on disk; restart iri-exporter to apply", "path", configPath)
			})
			if err != nil {
				slog.Error("config watcher stopped", "err", err)
			}
		}()
	}

	errCh := make(chan error, 2)
	servers := []*http.Server{
		newServer(cfg.Port, exp),
	}
	if cfg.TelemetryPort != 0 {
		servers = append(servers, newServer(cfg.TelemetryPort, telemetry.Handler(reg)))
	}
	for _, srv := range servers {
		go func(srv *http.Server) {
			slog.Info("HTTP server listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("listen %s: %w", srv.Addr, err)
			}
		}(srv)
	}

	exitCode := 0
	select {
	case <-ctx.Done():
	case err := <-errCh:
		slog.Error("HTTP server stopped", "err", err)
		exitCode = 1
	}

	slog.Info("iri-exporter shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("HTTP server shutdown", "addr", srv.Addr, "err", err)
		}
	}
	if exitCode != 0 {
		cancelShutdown()
		os.Exit(exitCode)
	}
}

func newServer(port int, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
