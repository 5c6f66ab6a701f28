package match

import (
	"fmt"
	"reflect"
	"testing"
)

func TestDedupeSources(t *testing.T) {
	tests := []struct {
		name string
		in   []Source
		want []Source
	}{
		{
			name: "nil input",
			in:   nil,
			want: []Source{},
		},
		{
			name: "first occurrence wins",
			in: []Source{
				{Title: "A", URI: "https://a.test"},
				{Title: "B", URI: "https://b.test"},
				{Title: "A again", URI: "https://a.test"},
			},
			want: []Source{
				{Title: "A", URI: "https://a.test"},
				{Title: "B", URI: "https://b.test"},
			},
		},
		{
			name: "records kept as given",
			in:   []Source{{URI: "a"}, {URI: "b"}, {URI: "a"}},
			want: []Source{{URI: "a"}, {URI: "b"}},
		},
		{
			name: "whitespace is part of the uri",
			in: []Source{
				{Title: "A", URI: "https://a.test"},
				{Title: "A padded", URI: " https://a.test"},
			},
			want: []Source{
				{Title: "A", URI: "https://a.test"},
				{Title: "A padded", URI: " https://a.test"},
			},
		},
		{
			name: "uri match is exact",
			in: []Source{
				{Title: "1", URI: "https://d.test/x"},
				{Title: "2", URI: "https://d.test/X"},
			},
			want: []Source{
				{Title: "1", URI: "https://d.test/x"},
				{Title: "2", URI: "https://d.test/X"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DedupeSources(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DedupeSources() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		title, uri string
		want       Source
		wantOK     bool
	}{
		{"BBC", "https://bbc.co.uk", Source{Title: "BBC", URI: "https://bbc.co.uk"}, true},
		{"  ", " https://c.test ", Source{Title: "https://c.test", URI: "https://c.test"}, true},
		{"no link", "", Source{}, false},
		{"blank link", "   ", Source{}, false},
	}

	for _, tt := range tests {
		got, ok := NewSource(tt.title, tt.uri)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("NewSource(%q, %q) = %+v, %v; want %+v, %v", tt.title, tt.uri, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDedupeSources_CapAndIdempotence(t *testing.T) {
	var in []Source
	for i := range 8 {
		uri := fmt.Sprintf("https://site%d.test", i%7)
		in = append(in, Source{Title: fmt.Sprintf("s%d", i), URI: uri})
	}

	once := DedupeSources(in)
	if len(once) != MaxSources {
		t.Fatalf("len = %d, want %d", len(once), MaxSources)
	}
	for i, s := range once {
		if want := fmt.Sprintf("https://site%d.test", i); s.URI != want {
			t.Errorf("once[%d].URI = %q, want %q", i, s.URI, want)
		}
	}

	twice := DedupeSources(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("DedupeSources not idempotent: %+v vs %+v", once, twice)
	}
}
