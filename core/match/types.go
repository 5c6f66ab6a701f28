package match

// DrawLabel is the predicted outcome used when no team is expected to win.
const DrawLabel = "Draw"

// Prediction is the structured analysis of a single fixture.
type Prediction struct {
	HomeTeam        string   `json:"homeTeam"`
	AwayTeam        string   `json:"awayTeam"`
	PredictedWinner string   `json:"predictedWinner"` // a team name or DrawLabel
	ScorePrediction string   `json:"scorePrediction"` // e.g. "2-1"
	Confidence      int      `json:"confidence"`      // 0..100
	Reasoning       string   `json:"reasoning"`
	KeyStats        []string `json:"keyStats"`
	OverUnder       string   `json:"overUnder"`       // e.g. "Over 2.5"
	BTTS            string   `json:"btts"`            // both teams to score, e.g. "Yes"
	PredictionLevel int      `json:"predictionLevel"` // 1..100
	Sources         []Source `json:"sources"`

	// Grounding search metadata, present only when the provider searched.
	SearchQueries     []string `json:"searchQueries,omitempty"`
	SearchSuggestions string   `json:"searchSuggestions,omitempty"`
}

// TrendingMatch is one suggested upcoming fixture.
type TrendingMatch struct {
	ID     int    `json:"id"`
	League string `json:"league"`
	Home   string `json:"home"`
	Away   string `json:"away"`
	Time   string `json:"time"`
}

// Source is a web page the model cited while producing a prediction.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}
