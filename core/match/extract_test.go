package match

import (
	"errors"
	"testing"

	"github.com/leofalp/betsmart/core/parse"
)

func TestExtractPrediction(t *testing.T) {
	raw := "Here is my analysis:\n```json\n{\n  \"homeTeam\": \"Liverpool\",\n  \"awayTeam\": \"Everton\",\n  \"confidence\": 80,\n}\n```\nGood luck!"

	got, err := ExtractPrediction(raw)
	if err != nil {
		t.Fatalf("ExtractPrediction() error = %v", err)
	}
	if got.HomeTeam != "Liverpool" || got.AwayTeam != "Everton" || got.Confidence != 80 {
		t.Errorf("ExtractPrediction() = %+v", got)
	}
}

func TestExtractPrediction_MissingTeamKeepsRaw(t *testing.T) {
	raw := `{"predictedWinner":"Draw"}`

	_, err := ExtractPrediction(raw)
	var extractErr *parse.ExtractionError
	if !errors.As(err, &extractErr) {
		t.Fatalf("error = %v, want *parse.ExtractionError", err)
	}
	if extractErr.Kind != parse.ShapeMismatch {
		t.Errorf("Kind = %v, want ShapeMismatch", extractErr.Kind)
	}
	if extractErr.Raw != raw {
		t.Errorf("Raw = %q, want %q", extractErr.Raw, raw)
	}
}

func TestExtractTrending(t *testing.T) {
	raw := `Top picks: {"home":"Bayern","away":"Dortmund","league":"Bundesliga"}
{"home":"Ajax","away":"PSV"}`

	got, err := ExtractTrending(raw)
	if err != nil {
		t.Fatalf("ExtractTrending() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(got), got)
	}
	if got[0].ID != 1 || got[0].Home != "Bayern" || got[1].ID != 2 || got[1].Away != "PSV" {
		t.Errorf("ExtractTrending() = %+v", got)
	}
}

func TestExtractTrending_NoCandidate(t *testing.T) {
	_, err := ExtractTrending("Sorry, I could not find any matches.")
	if !errors.Is(err, parse.ErrNoCandidateFound) {
		t.Errorf("error = %v, want ErrNoCandidateFound", err)
	}
}
