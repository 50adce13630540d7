package interfaces

import (
	"context"

	"idx-signal-bot/internal/types"
)

// FeedSource yields recent news items from one named source.
type FeedSource interface {
	Name() string
	Fetch(ctx context.Context, maxItems int) ([]types.NewsItem, error)
}
