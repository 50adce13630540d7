package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"idx-signal-bot/internal/catalog"
	"idx-signal-bot/internal/engine"
	"idx-signal-bot/internal/engine/engineobs"
	"idx-signal-bot/internal/feed"
	"idx-signal-bot/internal/interfaces"
	"idx-signal-bot/internal/logger"
	"idx-signal-bot/internal/market"
	"idx-signal-bot/internal/news"
	"idx-signal-bot/internal/notify"
	"idx-signal-bot/internal/seen"
	"idx-signal-bot/internal/store"
	"idx-signal-bot/internal/trace"

	"github.com/joho/godotenv"
)

const fetchTimeout = 20 * time.Second

// initializeSystem loads the environment and brings up logging and tracing.
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

func loadConfig(ctx context.Context) (*store.Config, error) {
	cfg, err := store.LoadConfig("config.yaml")
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// initializeSources builds one FeedSource per configured RSS feed and
// HTML listing scrape.
func initializeSources(ctx context.Context, cfg *store.Config) []interfaces.FeedSource {
	sources := make([]interfaces.FeedSource, 0, len(cfg.Feeds)+len(cfg.Scrapes))

	for _, f := range cfg.Feeds {
		sources = append(sources, feed.NewRSSSource(f.Name, f.URL, fetchTimeout))
		logger.Info(ctx, "Registered RSS source", "name", f.Name, "url", f.URL)
	}
	for _, s := range cfg.Scrapes {
		sources = append(sources, feed.NewScrapeSource(s, fetchTimeout))
		logger.Info(ctx, "Registered scrape source", "name", s.Name, "url", s.URL)
	}

	return sources
}

// initializeNotifier builds the Telegram notifier. The token and chat id
// come from the environment, never from config.yaml.
func initializeNotifier(ctx context.Context, cfg *store.Config) (interfaces.Notifier, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := os.Getenv("TELEGRAM_CHAT_ID")
	if token == "" || chatID == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must be set")
	}

	logger.Info(ctx, "Telegram notifier configured",
		"disable_preview", cfg.Telegram.DisablePreview,
	)
	return notify.NewTelegram(token, chatID, cfg.Telegram.DisablePreview), nil
}

// initializeEngine assembles the pipeline and wraps it with the
// observability middleware.
func initializeEngine(ctx context.Context, cfg *store.Config) (interfaces.Engine, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load emiten catalog: %w", err)
	}
	logger.Info(ctx, "Emiten catalog loaded", "path", cfg.CatalogPath, "emitens", cat.Len())

	seenStore, err := seen.Open(cfg.SeenLinksPath)
	if err != nil {
		return nil, fmt.Errorf("open seen-links store: %w", err)
	}
	logger.Info(ctx, "Seen-links store opened", "path", cfg.SeenLinksPath, "links", seenStore.Len())

	notifier, err := initializeNotifier(ctx, cfg)
	if err != nil {
		return nil, err
	}

	prices := market.NewYahooSource(cfg.Prices.Range, market.WithTimeout(fetchTimeout))

	eng, err := engine.New(
		cfg,
		cat,
		news.NewClassifier(nil),
		initializeSources(ctx, cfg),
		prices,
		notifier,
		seenStore,
	)
	if err != nil {
		return nil, err
	}

	return engineobs.Wrap(eng), nil
}
