package parse

import "strings"

const fence = "```"

// Span is a half-open byte range [Start, End) into the text it was found in.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// FindCandidate locates the single JSON value embedded in text. Code fence
// markers are removed first, their content kept inline. The span starts at the
// first '{' or '[' and ends after the last '}' or ']' of the fence-stripped
// text, which is returned alongside the span.
//
// This is a boundary heuristic, not a bracket matcher: unrelated brackets in
// prose before or after the payload end up inside the span.
func FindCandidate(text string) (Span, string, error) {
	cleaned := StripFences(text)

	start := strings.IndexAny(cleaned, "{[")
	if start < 0 {
		return Span{}, cleaned, ErrNoCandidateFound
	}
	end := strings.LastIndexAny(cleaned, "}]")
	if end < start {
		return Span{}, cleaned, ErrNoCandidateFound
	}
	return Span{Start: start, End: end + 1}, cleaned, nil
}

// StripFences removes every triple-backtick marker from text, together with
// the language tag that may follow an opening marker (```json, ```JSON ...).
// Markers alternate opening and closing; text after a closing marker is
// kept. The content between markers is left in place.
func StripFences(text string) string {
	if !strings.Contains(text, fence) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	rest := text
	opening := true
	for {
		i := strings.Index(rest, fence)
		if i < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:i])
		rest = rest[i+len(fence):]
		if opening {
			// Drop an info string glued to the marker; only tag bytes so a
			// payload starting right after the fence is never eaten.
			j := 0
			for j < len(rest) && isTagByte(rest[j]) {
				j++
			}
			rest = rest[j:]
		}
		opening = !opening
	}
	return b.String()
}

func isTagByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' || c == '_'
}
