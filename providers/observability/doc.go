// Package observability defines the tracing, metrics and logging interfaces
// used across betsmart, together with the shared attribute and metric names.
//
// [Provider] composes [Tracer], [Metrics] and [Logger]. An active provider
// and span travel through a [context.Context] via [ContextWithObserver] and
// [ContextWithSpan] and are read back with [ObserverFromContext] and
// [SpanFromContext]. Every component treats a nil provider as "do nothing".
package observability
