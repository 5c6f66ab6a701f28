package observability

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestAttributeConstructors(t *testing.T) {
	tests := []struct {
		name string
		attr Attribute
		key  string
		want any
	}{
		{name: "string", attr: String(AttrLLMModel, "gemini-2.5-flash"), key: AttrLLMModel, want: "gemini-2.5-flash"},
		{name: "string slice", attr: StringSlice(AttrGroundingSearchQueries, []string{"a", "b"}), key: AttrGroundingSearchQueries, want: []string{"a", "b"}},
		{name: "int", attr: Int(AttrTrendingCount, 4), key: AttrTrendingCount, want: 4},
		{name: "int64", attr: Int64("bytes", 1<<40), key: "bytes", want: int64(1 << 40)},
		{name: "float64", attr: Float64("ratio", 0.5), key: "ratio", want: 0.5},
		{name: "bool", attr: Bool("grounded", true), key: "grounded", want: true},
		{name: "duration", attr: Duration(AttrDuration, time.Second), key: AttrDuration, want: time.Second},
		{name: "error", attr: Error(errors.New("boom")), key: AttrError, want: "boom"},
		{name: "nil error", attr: Error(nil), key: AttrError, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.attr.Key, tt.key)
			}
			if !reflect.DeepEqual(tt.attr.Value, tt.want) {
				t.Errorf("Value = %#v, want %#v", tt.attr.Value, tt.want)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	short := "hello"
	if got := TruncateString(short, 10); got != short {
		t.Errorf("TruncateString(short) = %q", got)
	}

	long := strings.Repeat("x", 20)
	got := TruncateString(long, 5)
	if !strings.HasPrefix(got, "xxxxx...") || !strings.Contains(got, "total: 20 chars") {
		t.Errorf("TruncateString(long, 5) = %q", got)
	}

	huge := strings.Repeat("y", DefaultMaxStringLength+1)
	if got := TruncateString(huge, 0); !strings.Contains(got, "truncated") {
		t.Errorf("TruncateString(huge, 0) did not truncate")
	}
}
