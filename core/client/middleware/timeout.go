package middleware

import (
	"context"
	"time"

	"github.com/leofalp/betsmart/core/client"
	"github.com/leofalp/betsmart/providers/ai"
)

// NewTimeoutMiddleware bounds every provider call with context.WithTimeout.
// A shorter deadline already on the caller's context wins. A non-positive
// timeout returns a pass-through middleware.
func NewTimeoutMiddleware(timeout time.Duration) client.Middleware {
	return func(next client.SendFunc) client.SendFunc {
		if timeout <= 0 {
			return next
		}
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return next(ctx, request)
		}
	}
}
