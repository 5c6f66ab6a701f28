package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leofalp/betsmart/internal/utils"
)

var trendingJSON bool

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "List high-profile fixtures playing today or tomorrow",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newPredictor()
		if err != nil {
			return err
		}

		matches := svc.RequestTrendingMatches(cmd.Context())
		if trendingJSON {
			fmt.Fprintln(cmd.OutOrStdout(), utils.JSONToString(matches, true))
			return nil
		}
		if len(matches) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "No trending matches right now.")
			return nil
		}
		formatTrending(cmd.OutOrStdout(), matches)
		return nil
	},
}

func init() {
	trendingCmd.Flags().BoolVar(&trendingJSON, "json", false, "print the list as JSON")
	rootCmd.AddCommand(trendingCmd)
}
