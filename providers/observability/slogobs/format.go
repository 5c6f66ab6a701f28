package slogobs

import (
	"fmt"
	"log/slog"
	"strings"
)

// Format selects how the Handler renders a record.
type Format string

const (
	// FormatCompact renders one line per record with attributes as JSON:
	//	2026-10-18 10:40:35  INFO prediction ready → {"match.home":"Arsenal"}
	FormatCompact Format = "compact"

	// FormatPretty renders the message on one line and each attribute on its
	// own indented line, sorted by key.
	FormatPretty Format = "pretty"

	// FormatJSON renders one JSON object per record for log shippers.
	FormatJSON Format = "json"
)

// LevelTrace sits below slog.LevelDebug and is used by Observer.Trace.
const LevelTrace = slog.LevelDebug - 4

// ParseFormat maps a case-insensitive name to a Format. An empty name means
// FormatCompact.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "compact":
		return FormatCompact, nil
	case "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatCompact, fmt.Errorf("unknown log format %q (want compact, pretty or json)", s)
	}
}

// ParseLevel maps a case-insensitive level name to a slog.Level. TRACE is
// accepted in addition to the standard slog names. An empty name means INFO.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	case "", "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func levelString(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return "TRACE"
	case level < slog.LevelInfo:
		return "DEBUG"
	case level < slog.LevelWarn:
		return "INFO"
	case level < slog.LevelError:
		return "WARN"
	default:
		return "ERROR"
	}
}
