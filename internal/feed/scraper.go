package feed

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"idx-signal-bot/internal/logger"
	"idx-signal-bot/internal/store"
	"idx-signal-bot/internal/types"
)

// ScrapeSource collects headlines from an HTML listing page, for portals
// that publish no usable feed. Selectors come from configuration.
type ScrapeSource struct {
	cfg     store.Scrape
	timeout time.Duration
}

// NewScrapeSource creates a scraping source from its config entry.
func NewScrapeSource(cfg store.Scrape, timeout time.Duration) *ScrapeSource {
	return &ScrapeSource{
		cfg:     cfg,
		timeout: timeout,
	}
}

// Name returns the source label used in emitted messages.
func (s *ScrapeSource) Name() string {
	return s.cfg.Name
}

// Fetch visits the listing page and extracts up to maxItems headlines.
func (s *ScrapeSource) Fetch(ctx context.Context, maxItems int) ([]types.NewsItem, error) {
	items := make([]types.NewsItem, 0, maxItems)

	c := colly.NewCollector(
		colly.AllowedDomains(domainOf(s.cfg.URL)),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	})

	c.OnHTML(s.cfg.ItemSelector, func(e *colly.HTMLElement) {
		if len(items) >= maxItems {
			return
		}

		title := strings.TrimSpace(e.ChildText(s.cfg.TitleSelector))
		if title == "" {
			return
		}
		link := e.ChildAttr(s.cfg.LinkSelector, "href")
		if link == "" {
			return
		}
		if !strings.HasPrefix(link, "http") {
			link = strings.TrimRight(baseOf(s.cfg.URL), "/") + link
		}

		summary := ""
		if s.cfg.SummarySelector != "" {
			summary = strings.TrimSpace(e.ChildText(s.cfg.SummarySelector))
		}

		items = append(items, types.NewsItem{
			Title:   title,
			Summary: summary,
			Link:    link,
			Source:  s.cfg.Name,
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Scraping error", err, "source", s.cfg.Name, "url", r.Request.URL.String())
	})

	if err := c.Visit(s.cfg.URL); err != nil {
		return nil, fmt.Errorf("visit %s: %w", s.cfg.URL, err)
	}
	c.Wait()

	logger.Debug(ctx, "Scraped listing", "source", s.cfg.Name, "items", len(items))
	return items, nil
}

func domainOf(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func baseOf(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return urlStr
	}
	return u.Scheme + "://" + u.Host
}
