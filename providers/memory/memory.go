package memory

import (
	"context"

	"github.com/leofalp/betsmart/providers/ai"
)

// Provider stores the history of one conversation. Reads return copies.
type Provider interface {
	AppendMessage(ctx context.Context, message *ai.Message)
	Count(ctx context.Context) (int, error)
	AllMessages(ctx context.Context) ([]ai.Message, error)
	// LastMessages returns up to n of the most recent messages, oldest first.
	LastMessages(ctx context.Context, n int) ([]ai.Message, error)
	ClearMessages(ctx context.Context)
}
