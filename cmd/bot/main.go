package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"idx-signal-bot/internal/logger"
	"idx-signal-bot/internal/trace"
)

func main() {
	if err := initializeSystem(); err != nil {
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = trace.Shutdown(shutdownCtx)
	}()

	cfg, err := loadConfig(ctx)
	if err != nil {
		os.Exit(1)
	}

	eng, err := initializeEngine(ctx, cfg)
	if err != nil {
		logger.ErrorWithErr(ctx, "Startup failed", err)
		os.Exit(1)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	logger.Info(ctx, "Bot started", "mode", cfg.Mode, "poll_minutes", cfg.PollMinutes)

	if _, err := eng.Run(ctx); err != nil {
		logger.ErrorWithErr(ctx, "Run failed", err)
	}

	// poll_minutes 0 means one shot: run once and exit.
	if cfg.PollMinutes <= 0 {
		return
	}

	tick := time.NewTicker(time.Duration(cfg.PollMinutes) * time.Minute)
	defer tick.Stop()

	for {
		select {
		case <-tick.C:
			if _, err := eng.Run(ctx); err != nil {
				logger.ErrorWithErr(ctx, "Run failed", err)
			}
		case <-sigc:
			logger.Info(ctx, "Shutting down...")
			return
		case <-ctx.Done():
			return
		}
	}
}
