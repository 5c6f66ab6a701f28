package match

import (
	"errors"
	"reflect"
	"testing"

	"github.com/leofalp/betsmart/core/parse"
)

func decode(t *testing.T, text string, shape parse.Shape) parse.Value {
	t.Helper()
	v, err := parse.Decode(text, shape)
	if err != nil {
		t.Fatalf("Decode(%q) error = %v", text, err)
	}
	return v
}

func TestNormalizePrediction_FullRecord(t *testing.T) {
	v := decode(t, `{
		"homeTeam": "Arsenal",
		"awayTeam": "Chelsea",
		"predictedWinner": "Arsenal",
		"scorePrediction": "2-1",
		"confidence": 72,
		"reasoning": "Strong home form.",
		"keyStats": ["5 wins in a row", "  ", "Chelsea missing two defenders"],
		"overUnder": "Over 2.5",
		"btts": "Yes",
		"predictionLevel": 64,
		"sources": [{"title": "BBC", "uri": "https://bbc.co.uk/a"}, {"title": "no link"}, {"url": " https://x.test/b "}]
	}`, parse.ShapeObject)

	got, err := NormalizePrediction(v)
	if err != nil {
		t.Fatalf("NormalizePrediction() error = %v", err)
	}

	want := Prediction{
		HomeTeam:        "Arsenal",
		AwayTeam:        "Chelsea",
		PredictedWinner: "Arsenal",
		ScorePrediction: "2-1",
		Confidence:      72,
		Reasoning:       "Strong home form.",
		KeyStats:        []string{"5 wins in a row", "Chelsea missing two defenders"},
		OverUnder:       "Over 2.5",
		BTTS:            "Yes",
		PredictionLevel: 64,
		Sources: []Source{
			{Title: "BBC", URI: "https://bbc.co.uk/a"},
			{Title: "https://x.test/b", URI: "https://x.test/b"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizePrediction() =\n%+v\nwant\n%+v", got, want)
	}
}

func TestNormalizePrediction_Defaults(t *testing.T) {
	v := decode(t, `{"homeTeam":"Inter","awayTeam":"Milan"}`, parse.ShapeObject)

	got, err := NormalizePrediction(v)
	if err != nil {
		t.Fatalf("NormalizePrediction() error = %v", err)
	}

	if got.PredictedWinner != UnknownLabel || got.ScorePrediction != UnknownLabel {
		t.Errorf("winner/score = %q/%q, want %q", got.PredictedWinner, got.ScorePrediction, UnknownLabel)
	}
	if got.OverUnder != UnknownLabel || got.BTTS != UnknownLabel {
		t.Errorf("overUnder/btts = %q/%q, want %q", got.OverUnder, got.BTTS, UnknownLabel)
	}
	if got.Confidence != 0 {
		t.Errorf("Confidence = %d, want 0", got.Confidence)
	}
	if got.PredictionLevel != MinPredictionLevel {
		t.Errorf("PredictionLevel = %d, want %d", got.PredictionLevel, MinPredictionLevel)
	}
	if got.Reasoning != "" {
		t.Errorf("Reasoning = %q, want empty", got.Reasoning)
	}
	if got.KeyStats == nil || len(got.KeyStats) != 0 {
		t.Errorf("KeyStats = %#v, want empty non-nil slice", got.KeyStats)
	}
	if got.Sources == nil || len(got.Sources) != 0 {
		t.Errorf("Sources = %#v, want empty non-nil slice", got.Sources)
	}
}

func TestNormalizePrediction_DefaultsAreNotShared(t *testing.T) {
	v := decode(t, `{"homeTeam":"A","awayTeam":"B"}`, parse.ShapeObject)

	first, _ := NormalizePrediction(v)
	first.KeyStats = append(first.KeyStats, "mutated")

	second, _ := NormalizePrediction(v)
	if len(second.KeyStats) != 0 {
		t.Errorf("second.KeyStats = %v, want empty", second.KeyStats)
	}
	if len(PredictionDefaults.KeyStats) != 0 {
		t.Errorf("PredictionDefaults.KeyStats mutated: %v", PredictionDefaults.KeyStats)
	}
}

func TestNormalizePrediction_Coercion(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantConf  int
		wantLevel int
		wantWin   string
		wantBTTS  string
	}{
		{
			name:      "numeric strings",
			json:      `{"homeTeam":"A","awayTeam":"B","confidence":"85%","predictionLevel":" 40 "}`,
			wantConf:  85,
			wantLevel: 40,
			wantWin:   UnknownLabel,
			wantBTTS:  UnknownLabel,
		},
		{
			name:      "clamped high",
			json:      `{"homeTeam":"A","awayTeam":"B","confidence":140,"predictionLevel":1000}`,
			wantConf:  MaxConfidence,
			wantLevel: MaxPredictionLevel,
			wantWin:   UnknownLabel,
			wantBTTS:  UnknownLabel,
		},
		{
			name:      "clamped high beyond int range",
			json:      `{"homeTeam":"A","awayTeam":"B","confidence":1e20,"predictionLevel":1e300}`,
			wantConf:  MaxConfidence,
			wantLevel: MaxPredictionLevel,
			wantWin:   UnknownLabel,
			wantBTTS:  UnknownLabel,
		},
		{
			name:      "clamped low beyond int range",
			json:      `{"homeTeam":"A","awayTeam":"B","confidence":-1e20,"predictionLevel":"-1e300"}`,
			wantConf:  MinConfidence,
			wantLevel: MinPredictionLevel,
			wantWin:   UnknownLabel,
			wantBTTS:  UnknownLabel,
		},
		{
			name:      "clamped low",
			json:      `{"homeTeam":"A","awayTeam":"B","confidence":-5,"predictionLevel":0}`,
			wantConf:  MinConfidence,
			wantLevel: MinPredictionLevel,
			wantWin:   UnknownLabel,
			wantBTTS:  UnknownLabel,
		},
		{
			name:      "fractions round",
			json:      `{"homeTeam":"A","awayTeam":"B","confidence":66.6,"predictionLevel":12.4}`,
			wantConf:  67,
			wantLevel: 12,
			wantWin:   UnknownLabel,
			wantBTTS:  UnknownLabel,
		},
		{
			name:      "garbage falls back",
			json:      `{"homeTeam":"A","awayTeam":"B","confidence":"high","predictionLevel":[1]}`,
			wantConf:  0,
			wantLevel: MinPredictionLevel,
			wantWin:   UnknownLabel,
			wantBTTS:  UnknownLabel,
		},
		{
			name:      "draw and boolean btts",
			json:      `{"homeTeam":"A","awayTeam":"B","predictedWinner":"DRAW","btts":false}`,
			wantConf:  0,
			wantLevel: MinPredictionLevel,
			wantWin:   DrawLabel,
			wantBTTS:  "No",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePrediction(decode(t, tt.json, parse.ShapeObject))
			if err != nil {
				t.Fatalf("NormalizePrediction() error = %v", err)
			}
			if got.Confidence != tt.wantConf {
				t.Errorf("Confidence = %d, want %d", got.Confidence, tt.wantConf)
			}
			if got.PredictionLevel != tt.wantLevel {
				t.Errorf("PredictionLevel = %d, want %d", got.PredictionLevel, tt.wantLevel)
			}
			if got.PredictedWinner != tt.wantWin {
				t.Errorf("PredictedWinner = %q, want %q", got.PredictedWinner, tt.wantWin)
			}
			if got.BTTS != tt.wantBTTS {
				t.Errorf("BTTS = %q, want %q", got.BTTS, tt.wantBTTS)
			}
		})
	}
}

func TestNormalizePrediction_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{name: "missing home", json: `{"awayTeam":"B"}`},
		{name: "empty away", json: `{"homeTeam":"A","awayTeam":"  "}`},
		{name: "non-string team", json: `{"homeTeam":7,"awayTeam":"B"}`},
		{name: "array", json: `[{"homeTeam":"A","awayTeam":"B"}]`},
		{name: "string", json: `"A vs B"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizePrediction(decode(t, tt.json, parse.ShapeObject))
			if !errors.Is(err, parse.ErrShapeMismatch) {
				t.Errorf("error = %v, want ErrShapeMismatch", err)
			}
		})
	}
}

func TestNormalizeTrending(t *testing.T) {
	tests := []struct {
		name string
		json string
		want []TrendingMatch
	}{
		{
			name: "defaults and renumbering",
			json: `[{"id":9,"home":"Real Madrid","away":"Barcelona","league":"La Liga","time":"21:00"},{"home":"PSG","away":"Lyon"}]`,
			want: []TrendingMatch{
				{ID: 1, League: "La Liga", Home: "Real Madrid", Away: "Barcelona", Time: "21:00"},
				{ID: 2, League: "Unknown League", Home: "PSG", Away: "Lyon", Time: "TBD"},
			},
		},
		{
			name: "invalid entries dropped before numbering",
			json: `[{"home":"A"},"junk",{"home":"C","away":"D"},{"home":"","away":"F"}]`,
			want: []TrendingMatch{
				{ID: 1, League: "Unknown League", Home: "C", Away: "D", Time: "TBD"},
			},
		},
		{
			name: "truncated to four",
			json: `[{"home":"A1","away":"B1"},{"home":"A2","away":"B2"},{"home":"A3","away":"B3"},{"home":"A4","away":"B4"},{"home":"A5","away":"B5"}]`,
			want: []TrendingMatch{
				{ID: 1, League: "Unknown League", Home: "A1", Away: "B1", Time: "TBD"},
				{ID: 2, League: "Unknown League", Home: "A2", Away: "B2", Time: "TBD"},
				{ID: 3, League: "Unknown League", Home: "A3", Away: "B3", Time: "TBD"},
				{ID: 4, League: "Unknown League", Home: "A4", Away: "B4", Time: "TBD"},
			},
		},
		{
			name: "single object promoted",
			json: `{"home":"A","away":"B","league":"Serie A"}`,
			want: []TrendingMatch{
				{ID: 1, League: "Serie A", Home: "A", Away: "B", Time: "TBD"},
			},
		},
		{
			name: "empty list",
			json: `[]`,
			want: []TrendingMatch{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTrending(decode(t, tt.json, parse.ShapeArrayOfObjects))
			if err != nil {
				t.Fatalf("NormalizeTrending() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeTrending() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeTrending_ScalarIsMismatch(t *testing.T) {
	_, err := NormalizeTrending(parse.String("no matches today"))
	if !errors.Is(err, parse.ErrShapeMismatch) {
		t.Errorf("error = %v, want ErrShapeMismatch", err)
	}
}
