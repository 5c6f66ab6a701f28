// Package slogobs implements observability.Provider with log/slog.
//
// Spans, counters and histograms are written as DEBUG records; regular log
// calls keep their level. The bundled [Handler] renders compact, pretty or
// JSON lines. Build an observer with [New] and tune it with [WithFormat],
// [WithLevel], [WithOutput], [WithColors] or [WithLogger].
package slogobs
