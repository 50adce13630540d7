package interfaces

import "context"

// PriceSource retrieves a daily closing-price series for a ticker,
// oldest first.
type PriceSource interface {
	RecentCloses(ctx context.Context, ticker string) ([]float64, error)
}
