package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/leofalp/betsmart/core/match"
)

func formatPrediction(w io.Writer, p *match.Prediction) {
	fmt.Fprintf(w, "%s vs %s\n\n", p.HomeTeam, p.AwayTeam)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Winner\t%s\n", p.PredictedWinner)
	fmt.Fprintf(tw, "Score\t%s\n", p.ScorePrediction)
	fmt.Fprintf(tw, "Confidence\t%d%%\n", p.Confidence)
	fmt.Fprintf(tw, "Over/Under\t%s\n", p.OverUnder)
	fmt.Fprintf(tw, "BTTS\t%s\n", p.BTTS)
	fmt.Fprintf(tw, "Level\t%d/100\n", p.PredictionLevel)
	tw.Flush() //nolint:errcheck

	if p.Reasoning != "" {
		fmt.Fprintf(w, "\n%s\n", p.Reasoning)
	}
	if len(p.KeyStats) > 0 {
		fmt.Fprintln(w, "\nKey stats:")
		for _, s := range p.KeyStats {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
	if len(p.Sources) > 0 {
		fmt.Fprintln(w, "\nSources:")
		for i, s := range p.Sources {
			fmt.Fprintf(w, "  [%d] %s <%s>\n", i+1, s.Title, s.URI)
		}
	}
	if len(p.SearchQueries) > 0 {
		fmt.Fprintf(w, "\nSearched for: %s\n", strings.Join(p.SearchQueries, "; "))
	}
}

func formatTrending(w io.Writer, matches []match.TrendingMatch) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  #\tLEAGUE\tMATCH\tTIME")
	for _, m := range matches {
		fmt.Fprintf(tw, "  %d\t%s\t%s vs %s\t%s\n", m.ID, m.League, m.Home, m.Away, m.Time)
	}
	tw.Flush() //nolint:errcheck
}
