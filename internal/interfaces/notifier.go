package interfaces

import "context"

// Notifier delivers one rendered alert to the operator.
type Notifier interface {
	Send(ctx context.Context, text string) error
}
