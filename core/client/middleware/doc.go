// Package middleware provides built-in middleware for the betsmart client.
// Each constructor returns a [client.Middleware] ready to be passed to
// [client.WithMiddleware].
//
//   - [NewTimeoutMiddleware]: adds a per-request deadline via context.WithTimeout
//     so a stalled provider call cannot block the caller indefinitely.
//   - [NewLoggingMiddleware]: emits structured slog entries before and after
//     every provider call, at three verbosity levels.
//
// Provider calls are never retried: a failed call is reported to the caller
// as-is.
//
// # Usage
//
//	c, err := client.New(provider,
//	    client.WithMiddleware(
//	        middleware.NewTimeoutMiddleware(60*time.Second),
//	        middleware.NewLoggingMiddleware(slog.Default(), middleware.LogLevelStandard),
//	    ),
//	)
//
// The first entry is the outermost wrapper. A request travels
// Timeout → Logging → Provider and the response travels back in reverse.
package middleware
