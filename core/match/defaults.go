package match

// Limits applied by the normalizers and the source deduplicator.
const (
	MaxTrendingMatches = 4
	MaxSources         = 5

	MinConfidence      = 0
	MaxConfidence      = 100
	MinPredictionLevel = 1
	MaxPredictionLevel = 100
)

// UnknownLabel is the placeholder for missing market and outcome labels.
const UnknownLabel = "Unknown"

// PredictionDefaults lists the value every optional Prediction field takes
// when the model output omits it or gives it the wrong kind. HomeTeam and
// AwayTeam are required and have no default.
var PredictionDefaults = Prediction{
	PredictedWinner: UnknownLabel,
	ScorePrediction: UnknownLabel,
	Confidence:      MinConfidence,
	Reasoning:       "",
	KeyStats:        []string{},
	OverUnder:       UnknownLabel,
	BTTS:            UnknownLabel,
	PredictionLevel: MinPredictionLevel,
	Sources:         []Source{},
}

// TrendingDefaults lists the defaults for optional TrendingMatch fields. Home
// and Away are required; ID is always reassigned.
var TrendingDefaults = TrendingMatch{
	League: "Unknown League",
	Time:   "TBD",
}
