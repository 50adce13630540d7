package engineobs

import (
	"context"
	"time"

	"idx-signal-bot/internal/interfaces"
	"idx-signal-bot/internal/logger"
	"idx-signal-bot/internal/trace"
	"idx-signal-bot/internal/types"
)

type observableEngine struct {
	engine interfaces.Engine
}

var _ interfaces.Engine = (*observableEngine)(nil)

func Wrap(eng interfaces.Engine) interfaces.Engine {
	return &observableEngine{
		engine: eng,
	}
}

func (oe *observableEngine) Run(ctx context.Context) (*types.RunSummary, error) {
	ctx, span := trace.StartSpan(ctx, "engine.Run")
	defer span.End()

	start := time.Now()

	logger.InfoSkip(ctx, 1, "Starting signal cycle")

	summary, err := oe.engine.Run(ctx)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Signal cycle failed", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Signal cycle completed",
		"sources", summary.Sources,
		"items", summary.Items,
		"reports", summary.Reports,
		"duplicate", summary.Duplicate,
		"send_fails", summary.SendFails,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return summary, nil
}
