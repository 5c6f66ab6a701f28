package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leofalp/betsmart/internal/utils"
)

var predictJSON bool

var predictCmd = &cobra.Command{
	Use:     "predict <match>",
	Short:   "Analyse a fixture and predict its outcome",
	Example: `  betsmart predict "Inter vs Milan"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newPredictor()
		if err != nil {
			return err
		}

		prediction, err := svc.RequestPrediction(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return &userError{err: err}
		}

		if predictJSON {
			fmt.Fprintln(cmd.OutOrStdout(), utils.JSONToString(prediction, true))
			return nil
		}
		formatPrediction(cmd.OutOrStdout(), prediction)
		return nil
	},
}

func init() {
	predictCmd.Flags().BoolVar(&predictJSON, "json", false, "print the prediction as JSON")
	rootCmd.AddCommand(predictCmd)
}
