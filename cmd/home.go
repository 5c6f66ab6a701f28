package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leofalp/betsmart/core/match"
)

var homeCmd = &cobra.Command{
	Use:   "home [match]",
	Short: "Show trending fixtures and, optionally, a prediction",
	Long: "Fetches the trending fixtures and, when a match is given, its prediction. " +
		"Both requests run concurrently; a failed prediction does not hide the trending list.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newPredictor()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		description := strings.Join(args, " ")

		var (
			g          errgroup.Group
			trending   []match.TrendingMatch
			prediction *match.Prediction
		)
		g.Go(func() error {
			trending = svc.RequestTrendingMatches(ctx)
			return nil
		})
		if description != "" {
			g.Go(func() error {
				p, err := svc.RequestPrediction(ctx, description)
				if err != nil {
					return &userError{err: err}
				}
				prediction = p
				return nil
			})
		}
		predictErr := g.Wait()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Trending matches")
		if len(trending) == 0 {
			fmt.Fprintln(out, "  none right now")
		} else {
			formatTrending(out, trending)
		}

		if prediction != nil {
			fmt.Fprintln(out)
			formatPrediction(out, prediction)
		}
		return predictErr
	},
}

func init() {
	rootCmd.AddCommand(homeCmd)
}
