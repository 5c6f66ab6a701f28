package predictor

import (
	"fmt"
	"time"
)

// trendingDateLayout renders dates as "Sat Oct 18 2026".
const trendingDateLayout = "Mon Jan 02 2006"

const predictionPromptTemplate = `Analyze this match: %q.

Step 1: SEARCH. Perform a Google Search to find the latest statistics, team form, head-to-head records, and injury news.
Prioritize data from: SportMonks (https://www.sportmonks.com), Forebet, SportsMole, SofaScore, FlashScore.

Step 2: PREDICT. Based on the search results, synthesize a betting prediction.

Step 3: OUTPUT. Return the result STRICTLY as a valid JSON object.
DO NOT output any conversational text before or after the JSON.

The JSON object must strictly follow this schema:
{
  "homeTeam": "string",
  "awayTeam": "string",
  "predictedWinner": "string (Team Name or 'Draw')",
  "scorePrediction": "string (e.g. '2-1')",
  "confidence": number (integer 0-100),
  "reasoning": "string (Concise analysis citing the stats found)",
  "keyStats": ["string", "string", "string"],
  "overUnder": "string (e.g. 'Over 2.5')",
  "btts": "string (e.g. 'Yes' or 'No')",
  "predictionLevel": number (integer 1-100 score of prediction strength)
}`

const trendingPromptTemplate = `Task: Find 4 confirmed high-profile football matches playing today (%s) or tomorrow.

Priority Sources: SportMonks (https://www.sportmonks.com), FlashScore.

Output Requirements:
1. Return ONLY a valid JSON Array.
2. No markdown formatting.
3. Strictly follow the JSON format below.
4. No comments.

Example Format:
[
  {"id": 1, "league": "EPL", "home": "Arsenal", "away": "Chelsea", "time": "15:00 UTC"},
  {"id": 2, "league": "La Liga", "home": "Real Madrid", "away": "Barca", "time": "20:00 UTC"}
]`

func predictionPrompt(description string) string {
	return fmt.Sprintf(predictionPromptTemplate, description)
}

func trendingPrompt(now time.Time) string {
	return fmt.Sprintf(trendingPromptTemplate, now.Format(trendingDateLayout))
}
