package client

import (
	"context"

	"github.com/leofalp/betsmart/providers/ai"
)

// SendFunc performs one provider call. It is the unit the middleware chain
// wraps.
type SendFunc func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error)

// Middleware wraps a SendFunc. The first middleware passed to WithMiddleware
// is the outermost: it sees the request first and the response last.
type Middleware func(next SendFunc) SendFunc

// buildSendChain returns provider.SendMessage wrapped by middlewares, with
// middlewares[0] outermost. Nil entries are skipped.
func buildSendChain(provider ai.Provider, middlewares []Middleware) SendFunc {
	chain := SendFunc(provider.SendMessage)
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] != nil {
			chain = middlewares[i](chain)
		}
	}
	return chain
}
