package match

import (
	"math"
	"strconv"
	"strings"

	"github.com/leofalp/betsmart/core/parse"
)

// NormalizePrediction converts a decoded value into a Prediction. The value
// must be an object with non-empty "homeTeam" and "awayTeam" strings; every
// other field falls back to PredictionDefaults when missing or malformed.
func NormalizePrediction(v parse.Value) (Prediction, error) {
	obj, ok := v.(*parse.Object)
	if !ok {
		return Prediction{}, parse.UnexpectedKind("prediction", parse.KindObject, v)
	}

	home, ok := requiredString(obj, "homeTeam")
	if !ok {
		return Prediction{}, parse.MissingField("homeTeam")
	}
	away, ok := requiredString(obj, "awayTeam")
	if !ok {
		return Prediction{}, parse.MissingField("awayTeam")
	}

	d := PredictionDefaults
	p := Prediction{
		HomeTeam:        home,
		AwayTeam:        away,
		PredictedWinner: labelOr(obj, "predictedWinner", d.PredictedWinner),
		ScorePrediction: labelOr(obj, "scorePrediction", d.ScorePrediction),
		Confidence:      intOr(obj, "confidence", d.Confidence, MinConfidence, MaxConfidence),
		Reasoning:       labelOr(obj, "reasoning", d.Reasoning),
		KeyStats:        stringList(obj, "keyStats"),
		OverUnder:       labelOr(obj, "overUnder", d.OverUnder),
		BTTS:            labelOr(obj, "btts", d.BTTS),
		PredictionLevel: intOr(obj, "predictionLevel", d.PredictionLevel, MinPredictionLevel, MaxPredictionLevel),
		Sources:         DedupeSources(sourceList(obj, "sources")),
	}
	if strings.EqualFold(p.PredictedWinner, DrawLabel) {
		p.PredictedWinner = DrawLabel
	}
	return p, nil
}

// NormalizeTrending converts a decoded value into at most MaxTrendingMatches
// matches. A single object is treated as a one-element list. Elements that
// are not objects or lack "home"/"away" are dropped. IDs are reassigned to
// the 1-based position in the result; IDs from the model are ignored.
func NormalizeTrending(v parse.Value) ([]TrendingMatch, error) {
	var items parse.List
	switch t := v.(type) {
	case *parse.Object:
		items = parse.List{t}
	case parse.List:
		items = t
	default:
		return nil, parse.UnexpectedKind("trending matches", parse.KindList, v)
	}

	matches := make([]TrendingMatch, 0, MaxTrendingMatches)
	for _, item := range items {
		if len(matches) == MaxTrendingMatches {
			break
		}
		m, ok := normalizeTrendingMatch(item)
		if !ok {
			continue
		}
		m.ID = len(matches) + 1
		matches = append(matches, m)
	}
	return matches, nil
}

func normalizeTrendingMatch(v parse.Value) (TrendingMatch, bool) {
	obj, ok := v.(*parse.Object)
	if !ok {
		return TrendingMatch{}, false
	}
	home, ok := requiredString(obj, "home")
	if !ok {
		return TrendingMatch{}, false
	}
	away, ok := requiredString(obj, "away")
	if !ok {
		return TrendingMatch{}, false
	}
	return TrendingMatch{
		League: labelOr(obj, "league", TrendingDefaults.League),
		Home:   home,
		Away:   away,
		Time:   labelOr(obj, "time", TrendingDefaults.Time),
	}, true
}

func requiredString(obj *parse.Object, key string) (string, bool) {
	v, _ := obj.Get(key)
	s, ok := v.(parse.String)
	if !ok {
		return "", false
	}
	trimmed := strings.TrimSpace(string(s))
	return trimmed, trimmed != ""
}

// labelOr reads a display label. Numbers keep their text and booleans read
// as Yes/No; anything else, or an empty string, yields def.
func labelOr(obj *parse.Object, key, def string) string {
	v, _ := obj.Get(key)
	switch t := v.(type) {
	case parse.String:
		if s := strings.TrimSpace(string(t)); s != "" {
			return s
		}
	case parse.Number:
		return string(t)
	case parse.Bool:
		if t {
			return "Yes"
		}
		return "No"
	case parse.Null, parse.List, *parse.Object, nil:
	}
	return def
}

// intOr reads a whole number from a JSON number or a numeric string such as
// "85" or "85%", rounds it and clamps it to [lo, hi].
func intOr(obj *parse.Object, key string, def, lo, hi int) int {
	v, _ := obj.Get(key)

	var (
		f   float64
		err error
	)
	switch t := v.(type) {
	case parse.Number:
		f, err = t.Float64()
	case parse.String:
		s := strings.TrimSuffix(strings.TrimSpace(string(t)), "%")
		f, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
	case parse.Null, parse.Bool, parse.List, *parse.Object, nil:
		return def
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}

	// Clamp before converting: int() of a float beyond the int range is
	// implementation-defined.
	f = math.Min(math.Max(math.Round(f), float64(lo)), float64(hi))
	return int(f)
}

// stringList reads a list of non-empty strings. A lone string is a
// one-element list; non-string items are skipped.
func stringList(obj *parse.Object, key string) []string {
	out := []string{}
	v, _ := obj.Get(key)
	switch t := v.(type) {
	case parse.List:
		for _, item := range t {
			switch s := item.(type) {
			case parse.String:
				if trimmed := strings.TrimSpace(string(s)); trimmed != "" {
					out = append(out, trimmed)
				}
			case parse.Number:
				out = append(out, string(s))
			}
		}
	case parse.String:
		if trimmed := strings.TrimSpace(string(t)); trimmed != "" {
			out = append(out, trimmed)
		}
	case parse.Null, parse.Bool, parse.Number, *parse.Object, nil:
	}
	return out
}

// sourceList reads citations the model placed in its own JSON, accepting
// either "uri" or "url" for the link. Entries without a link are skipped and
// an empty title falls back to the link.
func sourceList(obj *parse.Object, key string) []Source {
	v, _ := obj.Get(key)
	list, ok := v.(parse.List)
	if !ok {
		return nil
	}
	out := make([]Source, 0, len(list))
	for _, item := range list {
		entry, ok := item.(*parse.Object)
		if !ok {
			continue
		}
		uri := labelOr(entry, "uri", "")
		if uri == "" {
			uri = labelOr(entry, "url", "")
		}
		if src, ok := NewSource(labelOr(entry, "title", ""), uri); ok {
			out = append(out, src)
		}
	}
	return out
}
