// Package predictor orchestrates one provider call per request: it builds
// the prompt, asks the model with Google Search grounding enabled, and runs
// the answer through the extraction pipeline in core/match.
//
// Two operations are exposed. RequestPrediction analyses a single fixture
// and reports every failure to the caller. RequestTrendingMatches is a
// best-effort helper that never fails: any problem is logged as a warning
// and an empty list is returned.
//
//	svc, err := predictor.New(gemini.New(), apiKey,
//	    predictor.WithObserver(slogobs.New()),
//	    predictor.WithTimeout(60*time.Second),
//	)
//	prediction, err := svc.RequestPrediction(ctx, "Inter vs Milan")
//
// A Service holds no mutable state and is safe for concurrent use.
package predictor
