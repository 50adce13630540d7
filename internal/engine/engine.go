package engine

import (
	"context"
	"math"
	"strings"
	"time"

	"idx-signal-bot/internal/catalog"
	"idx-signal-bot/internal/interfaces"
	"idx-signal-bot/internal/logger"
	"idx-signal-bot/internal/news"
	"idx-signal-bot/internal/notify"
	"idx-signal-bot/internal/store"
	"idx-signal-bot/internal/ta"
	"idx-signal-bot/internal/trace"
	"idx-signal-bot/internal/types"
)

// Engine drives one batch: pull items from every source, evaluate each
// against the catalog, lexicon and price data, and emit one alert per
// (item, emiten) pair. Items are strictly sequential; the only mutable
// state is the seen-links store.
type Engine struct {
	cfg        *store.Config
	cat        *catalog.Catalog
	active     catalog.SectorSet
	classifier *news.Classifier
	sources    []interfaces.FeedSource
	prices     interfaces.PriceSource
	notifier   interfaces.Notifier
	seen       interfaces.SeenStore
	rule       ModeRule
}

// New wires an engine from its collaborators. The mode name is resolved
// once here; an unknown mode is a startup error.
func New(
	cfg *store.Config,
	cat *catalog.Catalog,
	classifier *news.Classifier,
	sources []interfaces.FeedSource,
	prices interfaces.PriceSource,
	notifier interfaces.Notifier,
	seenStore interfaces.SeenStore,
) (*Engine, error) {
	rule, err := RuleFor(cfg.Mode)
	if err != nil {
		return nil, err
	}

	sectors := cfg.ActiveSectors
	if len(sectors) == 0 {
		sectors = catalog.DefaultActiveSectors()
	}

	return &Engine{
		cfg:        cfg,
		cat:        cat,
		active:     catalog.NewSectorSet(sectors),
		classifier: classifier,
		sources:    sources,
		prices:     prices,
		notifier:   notifier,
		seen:       seenStore,
		rule:       rule,
	}, nil
}

// Run processes every configured source once. Source failures are
// per-source recoverable; only the summary is returned.
func (e *Engine) Run(ctx context.Context) (*types.RunSummary, error) {
	ctx, span := trace.StartSpan(ctx, "engine.Run")
	defer span.End()

	summary := &types.RunSummary{Sources: len(e.sources)}

	for _, src := range e.sources {
		items, err := src.Fetch(ctx, e.cfg.MaxItemsPerFeed)
		if err != nil {
			logger.ErrorWithErr(ctx, "Feed source failed, skipping", err, "source", src.Name())
			continue
		}
		if len(items) == 0 {
			logger.Warn(ctx, "Feed source returned no items", "source", src.Name())
			continue
		}

		for _, item := range items {
			summary.Items++
			switch {
			case e.skipTitle(item.Title):
				summary.Skipped++
				logger.Debug(ctx, "Item matched skip filter", "source", src.Name(), "title", item.Title)
			case e.seen.Has(item.Link):
				summary.Duplicate++
			default:
				reports, sendFails := e.processItem(ctx, item)
				summary.Reports += reports
				summary.SendFails += sendFails
			}
		}
	}

	logger.Info(ctx, "Run completed",
		"sources", summary.Sources,
		"items", summary.Items,
		"skipped", summary.Skipped,
		"duplicate", summary.Duplicate,
		"reports", summary.Reports,
		"send_fails", summary.SendFails,
	)
	return summary, nil
}

// processItem evaluates one news item and emits one alert per entity.
// The item is marked seen afterwards even when sends failed: it was
// processed, and re-alerting on the next run would duplicate.
func (e *Engine) processItem(ctx context.Context, item types.NewsItem) (reports, sendFails int) {
	ctx, span := trace.StartSpan(ctx, "engine.processItem")
	defer span.End()

	text := item.Title
	if item.Summary != "" {
		text += " " + item.Summary
	}

	tickers := e.cat.Extract(text, e.active)
	if len(tickers) == 0 {
		// Macro-level news with no named instrument.
		tickers = []string{types.MarketTicker}
	}

	newsType := e.classifier.ClassifyType(text)
	sentiment := e.classifier.ScoreSentiment(text, item.Title, newsType)

	for _, ticker := range tickers {
		report := types.Report{
			Source:    item.Source,
			Title:     item.Title,
			Link:      item.Link,
			Ticker:    ticker,
			NewsType:  newsType,
			Sentiment: sentiment,
			RSI:       e.fetchRSI(ctx, ticker),
			Mode:      e.cfg.Mode,
			Time:      time.Now(),
		}
		report.Confidence = Confidence(report.NewsType, report.Sentiment, report.RSI)
		report.Action = Decide(e.rule, report.Sentiment, report.RSI, report.Confidence)

		logger.Signal(ctx, report.Ticker, string(report.Action), report.Confidence, string(report.NewsType),
			"sentiment", report.Sentiment,
			"rsi_valid", report.RSI.Valid,
			"source", report.Source,
		)

		if err := e.notifier.Send(ctx, notify.Render(report)); err != nil {
			logger.ErrorWithErr(ctx, "Failed to deliver alert", err, "ticker", ticker, "link", item.Link)
			sendFails++
		}
		reports++
	}

	if err := e.seen.Mark(item.Link); err != nil {
		logger.ErrorWithErr(ctx, "Failed to record seen link", err, "link", item.Link)
	}
	return reports, sendFails
}

// fetchRSI retrieves the price series and computes the indicator. Every
// failure path degrades to the unavailable marker: the decision engine
// turns that into HOLD rather than dropping the alert.
func (e *Engine) fetchRSI(ctx context.Context, ticker string) types.RSIValue {
	if ticker == types.MarketTicker {
		return types.RSIValue{}
	}

	closes, err := e.prices.RecentCloses(ctx, ticker)
	if err != nil {
		logger.ErrorWithErr(ctx, "Price fetch failed, RSI unavailable", err, "ticker", ticker)
		return types.RSIValue{}
	}

	v := ta.RSI(closes, e.cfg.Prices.RSIPeriod)
	if math.IsNaN(v) {
		logger.Warn(ctx, "Price series too short for RSI", "ticker", ticker, "points", len(closes))
		return types.RSIValue{}
	}

	return types.RSIValue{Value: ta.Round2(v), Valid: true}
}

func (e *Engine) skipTitle(title string) bool {
	t := strings.ToLower(title)
	for _, kw := range e.cfg.SkipKeywords {
		if kw != "" && strings.Contains(t, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

var _ interfaces.Engine = (*Engine)(nil)
