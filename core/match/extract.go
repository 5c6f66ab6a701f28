package match

import "github.com/leofalp/betsmart/core/parse"

// ExtractPrediction runs the full pipeline over raw model output expecting a
// single prediction object.
func ExtractPrediction(raw string, opts ...parse.Option) (Prediction, error) {
	return parse.ExtractAs(raw, parse.ShapeObject, NormalizePrediction, opts...)
}

// ExtractTrending runs the full pipeline over raw model output expecting a
// list of trending matches.
func ExtractTrending(raw string, opts ...parse.Option) ([]TrendingMatch, error) {
	return parse.ExtractAs(raw, parse.ShapeArrayOfObjects, NormalizeTrending, opts...)
}
