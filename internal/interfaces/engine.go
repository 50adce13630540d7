package interfaces

import (
	"context"

	"idx-signal-bot/internal/types"
)

// Engine runs one batch over all configured feed sources.
type Engine interface {
	Run(ctx context.Context) (*types.RunSummary, error)
}
