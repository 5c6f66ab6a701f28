package predictor

import (
	"time"

	"github.com/leofalp/betsmart/core/client"
	"github.com/leofalp/betsmart/providers/observability"
)

// Option configures a Service.
type Option func(*options)

type options struct {
	observer      observability.Provider
	now           func() time.Time
	model         string
	lenientRepair bool
	timeout       time.Duration
	middlewares   []client.Middleware
}

// WithObserver sets where spans, metrics and warnings go. Without it the
// service logs to stderr through slogobs.
func WithObserver(observer observability.Provider) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithClock replaces time.Now, used for the date in the trending prompt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithModel overrides the provider's default model.
func WithModel(model string) Option {
	return func(o *options) {
		o.model = model
	}
}

// WithLenientRepair enables the jsonrepair fallback when every built-in
// decode attempt fails.
func WithLenientRepair(enabled bool) Option {
	return func(o *options) {
		o.lenientRepair = enabled
	}
}

// WithTimeout bounds each provider call. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithMiddleware adds client middlewares inside the timeout.
func WithMiddleware(middlewares ...client.Middleware) Option {
	return func(o *options) {
		o.middlewares = append(o.middlewares, middlewares...)
	}
}
