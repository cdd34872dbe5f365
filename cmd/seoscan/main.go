package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/use-agent/seoscan/api"
	"github.com/use-agent/seoscan/bootstrap"
	"github.com/use-agent/seoscan/config"
)

func main() {
	// ── 1. Load configuration ───────────────────────────────────────
	cfg := config.Load()

	// ── 2. Initialise structured logging ────────────────────────────
	slog.SetDefault(bootstrap.NewLogger(cfg.Log, os.Stdout))
	slog.Info("seoscan starting",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"mode", cfg.Server.Mode,
		"callTimeout", cfg.Scan.CallTimeout,
	)
	if cfg.Audit.APIKey == "" {
		slog.Warn("PAGESPEED_API_KEY is not set; scans will fail until it is configured")
	}
	if cfg.Recommend.APIKey == "" {
		slog.Warn("GEMINI_API_KEY is not set; scans will fail until it is configured")
	}
	if cfg.Auth.Enabled && len(cfg.Auth.APIKeys) == 0 {
		slog.Warn("SEOSCAN_AUTH_ENABLED is set without SEOSCAN_API_KEYS; every scan will be rejected")
	}

	// ── 3. Initialise scanner ───────────────────────────────────────
	sc := bootstrap.NewScanner(cfg, slog.Default())

	// ── 4. Setup router ─────────────────────────────────────────────
	startTime := time.Now()
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	router, err := api.NewRouter(bgCtx, sc, cfg, startTime)
	if err != nil {
		slog.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	// ── 5. Start HTTP server ────────────────────────────────────────
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// ── 6. Graceful shutdown ────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig.String())
	stopBackground()

	// A scan makes two outbound calls, each bounded by CallTimeout.
	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.Scan.CallTimeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("HTTP server forced shutdown", "error", err)
	} else {
		slog.Info("HTTP server drained gracefully")
	}

	slog.Info("seoscan stopped")
}
