package match

import "strings"

// NewSource builds a citation from raw provider or model fields. Both are
// trimmed and an empty title falls back to the URI. It reports false when
// there is no URI to cite.
func NewSource(title, uri string) (Source, bool) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return Source{}, false
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = uri
	}
	return Source{Title: title, URI: uri}, true
}

// DedupeSources returns sources unique by exact URI, in first-seen order,
// capped at MaxSources. Records are kept as given. The input is not modified
// and the result is never nil, so DedupeSources(DedupeSources(x)) equals
// DedupeSources(x).
func DedupeSources(sources []Source) []Source {
	out := make([]Source, 0, min(len(sources), MaxSources))
	seen := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		if len(out) == MaxSources {
			break
		}
		if _, dup := seen[s.URI]; dup {
			continue
		}
		seen[s.URI] = struct{}{}
		out = append(out, s)
	}
	return out
}
