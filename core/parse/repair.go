package parse

import "strings"

// Attempt names, in the order Decode tries them.
const (
	AttemptRaw        = "raw"
	AttemptCleaned    = "cleaned"
	AttemptWrapped    = "wrapped"
	AttemptJSONRepair = "jsonrepair"
)

// Attempt is one candidate text handed to the strict decoder.
type Attempt struct {
	Name string
	Text string
}

// Rule is a single syntax-level repair. Every rule is pure and idempotent and
// leaves the inside of JSON string literals untouched.
type Rule struct {
	Name  string
	Apply func(string) string
}

// CleanRules is the fixed, ordered rule chain behind the "cleaned" attempt.
var CleanRules = []Rule{
	{Name: "strip_line_comments", Apply: stripLineComments},
	{Name: "insert_object_commas", Apply: insertObjectCommas},
	{Name: "remove_trailing_commas", Apply: removeTrailingCommas},
}

// Clean applies CleanRules in order.
func Clean(text string) string {
	for _, rule := range CleanRules {
		text = rule.Apply(text)
	}
	return text
}

// WrapArray wraps an object-led text in brackets so a run of objects can be
// read as an array. Text that does not start with '{' is returned unchanged.
func WrapArray(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") {
		return text
	}
	return "[" + trimmed + "]"
}

// Repairs returns the ordered attempt list for a candidate span: the raw text,
// the cleaned text and, when an array is expected and the cleaned text is
// object-led, the array-wrapped text. Each attempt derives from the span only.
func Repairs(span string, shape Shape) []Attempt {
	cleaned := Clean(span)
	attempts := []Attempt{
		{Name: AttemptRaw, Text: span},
		{Name: AttemptCleaned, Text: cleaned},
	}
	if shape == ShapeArrayOfObjects && strings.HasPrefix(strings.TrimSpace(cleaned), "{") {
		attempts = append(attempts, Attempt{Name: AttemptWrapped, Text: WrapArray(cleaned)})
	}
	return attempts
}

// scanner walks JSON-ish text and reports whether each byte sits inside a
// string literal.
type scanner struct {
	inString bool
	escaped  bool
}

// step consumes c and reports whether c belongs to a string literal
// (including its quotes).
func (s *scanner) step(c byte) bool {
	if s.inString {
		switch {
		case s.escaped:
			s.escaped = false
		case c == '\\':
			s.escaped = true
		case c == '"':
			s.inString = false
		}
		return true
	}
	if c == '"' {
		s.inString = true
		return true
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// stripLineComments removes // comments up to (not including) the newline.
func stripLineComments(text string) string {
	if !strings.Contains(text, "//") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	var sc scanner
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !sc.step(c) && c == '/' && i+1 < len(text) && text[i+1] == '/' {
			for i < len(text) && text[i] != '\n' {
				i++
			}
			if i < len(text) {
				b.WriteByte('\n')
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// insertObjectCommas turns "} {" into "}, {" for any whitespace run between.
func insertObjectCommas(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 8)
	var sc scanner
	for i := 0; i < len(text); i++ {
		c := text[i]
		b.WriteByte(c)
		if sc.step(c) || c != '}' {
			continue
		}
		j := i + 1
		for j < len(text) && isSpace(text[j]) {
			j++
		}
		if j < len(text) && text[j] == '{' {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// removeTrailingCommas drops commas whose next significant byte closes an
// object or array. Runs of commas before a closer are dropped together.
func removeTrailingCommas(text string) string {
	if !strings.Contains(text, ",") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	var sc scanner
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !sc.step(c) && c == ',' {
			j := i + 1
			for j < len(text) && (isSpace(text[j]) || text[j] == ',') {
				j++
			}
			if j < len(text) && (text[j] == '}' || text[j] == ']') {
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}
