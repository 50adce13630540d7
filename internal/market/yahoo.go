package market

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"idx-signal-bot/internal/api"
	"idx-signal-bot/internal/logger"
)

// YahooSource retrieves daily closing prices from the Yahoo Finance chart
// API. IDX tickers are suffixed ".JK" on the wire.
type YahooSource struct {
	client  *api.Client
	baseURL string
	rng     string // chart range, e.g. "3mo"
}

// Option configures a YahooSource.
type Option func(*YahooSource)

// WithBaseURL overrides the API host, used by tests.
func WithBaseURL(base string) Option {
	return func(y *YahooSource) {
		y.baseURL = base
	}
}

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(y *YahooSource) {
		y.client = api.NewClient(api.WithTimeout(d), api.WithLogging(true))
	}
}

// NewYahooSource creates a price source covering the given chart range.
func NewYahooSource(rng string, opts ...Option) *YahooSource {
	y := &YahooSource{
		client:  api.NewClient(api.WithTimeout(20*time.Second), api.WithLogging(true)),
		baseURL: "https://query1.finance.yahoo.com",
		rng:     rng,
	}
	for _, opt := range opts {
		opt(y)
	}
	return y
}

// chartResponse mirrors the slice of the chart payload we read.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// RecentCloses returns the ticker's daily closes, oldest first, with
// missing sessions dropped. Any transport or payload problem is returned
// as an error for the caller to degrade to an unavailable indicator.
func (y *YahooSource) RecentCloses(ctx context.Context, ticker string) ([]float64, error) {
	symbol := strings.ToUpper(strings.TrimSpace(ticker)) + ".JK"
	reqURL := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d",
		y.baseURL, url.PathEscape(symbol), url.QueryEscape(y.rng))

	resp, err := y.client.GET(ctx, reqURL, api.YahooFinanceHeaders())
	if err != nil {
		return nil, fmt.Errorf("fetch chart for %s: %w", symbol, err)
	}

	var payload chartResponse
	if err := resp.ParseJSON(&payload); err != nil {
		return nil, fmt.Errorf("parse chart for %s: %w", symbol, err)
	}
	if payload.Chart.Error != nil {
		return nil, fmt.Errorf("chart error for %s: %s", symbol, payload.Chart.Error.Description)
	}
	if len(payload.Chart.Result) == 0 || len(payload.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("empty chart payload for %s", symbol)
	}

	raw := payload.Chart.Result[0].Indicators.Quote[0].Close
	closes := make([]float64, 0, len(raw))
	for _, c := range raw {
		if c != nil {
			closes = append(closes, *c)
		}
	}
	if len(closes) == 0 {
		return nil, fmt.Errorf("no usable closes for %s", symbol)
	}

	logger.Debug(ctx, "Fetched closing prices", "symbol", symbol, "points", len(closes))
	return closes, nil
}
