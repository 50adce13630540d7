package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"idx-signal-bot/internal/logger"
	"idx-signal-bot/internal/types"
)

// RSSSource pulls recent items from one RSS/Atom feed.
type RSSSource struct {
	name   string
	url    string
	parser *gofeed.Parser
}

// NewRSSSource creates a feed source for a named RSS URL.
func NewRSSSource(name, url string, timeout time.Duration) *RSSSource {
	parser := gofeed.NewParser()
	parser.UserAgent = "Mozilla/5.0 (compatible; idx-signal-bot/1.0)"
	parser.Client = &http.Client{Timeout: timeout}
	return &RSSSource{
		name:   name,
		url:    url,
		parser: parser,
	}
}

// Name returns the source label used in emitted messages.
func (s *RSSSource) Name() string {
	return s.name
}

// Fetch parses the feed and returns up to maxItems of its newest entries.
// Summaries are plain text; any HTML markup in the feed is stripped.
func (s *RSSSource) Fetch(ctx context.Context, maxItems int) ([]types.NewsItem, error) {
	parsed, err := s.parser.ParseURLWithContext(s.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", s.name, err)
	}

	items := make([]types.NewsItem, 0, maxItems)
	for _, entry := range parsed.Items {
		if len(items) >= maxItems {
			break
		}
		if entry.Title == "" || entry.Link == "" {
			continue
		}
		items = append(items, types.NewsItem{
			Title:   entry.Title,
			Summary: StripHTML(entry.Description),
			Link:    entry.Link,
			Source:  s.name,
		})
	}

	logger.Debug(ctx, "Fetched feed", "source", s.name, "items", len(items))
	return items, nil
}
