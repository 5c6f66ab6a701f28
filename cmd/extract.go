package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leofalp/betsmart/core/match"
	"github.com/leofalp/betsmart/core/parse"
	"github.com/leofalp/betsmart/internal/utils"
	"github.com/leofalp/betsmart/providers/observability"
)

var (
	extractShape   string
	extractKind    string
	extractFile    string
	extractLenient bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run the extraction pipeline over saved model output",
	Long: "Reads model output from --file or stdin, locates the JSON in it, repairs it when " +
		"needed and prints the result. No provider is called.",
	Example: `  betsmart extract --kind prediction --file answer.txt
  pbpaste | betsmart extract --shape array`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		shape, err := resolveShape(extractShape, extractKind, cmd.Flags().Changed("shape"))
		if err != nil {
			return err
		}

		raw, err := readInput(cmd.InOrStdin(), extractFile)
		if err != nil {
			return err
		}

		var step string
		opts := []parse.Option{parse.WithAttemptObserver(func(name string) { step = name })}
		if extractLenient || cfg.Extract.LenientRepair {
			opts = append(opts, parse.WithLenientRepair())
		}

		var result any
		switch extractKind {
		case "prediction":
			result, err = match.ExtractPrediction(raw, opts...)
		case "trending":
			result, err = match.ExtractTrending(raw, opts...)
		default:
			result, err = parse.Extract(raw, shape, opts...)
		}
		if err != nil {
			return err
		}

		observer.Debug(cmd.Context(), "extraction decoded",
			observability.String(observability.AttrExtractionShape, shape.String()),
			observability.String(observability.AttrExtractionStep, step),
		)
		fmt.Fprintln(cmd.OutOrStdout(), utils.JSONToString(result, true))
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractShape, "shape", "object", "expected shape: object or array")
	extractCmd.Flags().StringVar(&extractKind, "kind", "raw", "normalizer: raw, prediction or trending")
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "read from file instead of stdin")
	extractCmd.Flags().BoolVar(&extractLenient, "lenient", false, "enable the jsonrepair fallback")
	rootCmd.AddCommand(extractCmd)
}

// resolveShape picks the shape from --kind unless --shape was given
// explicitly, and rejects contradicting combinations.
func resolveShape(shape, kind string, shapeSet bool) (parse.Shape, error) {
	var fromFlag parse.Shape
	switch shape {
	case "object":
		fromFlag = parse.ShapeObject
	case "array":
		fromFlag = parse.ShapeArrayOfObjects
	default:
		return 0, fmt.Errorf("unknown shape %q (want object or array)", shape)
	}

	var fromKind parse.Shape
	switch kind {
	case "raw":
		return fromFlag, nil
	case "prediction":
		fromKind = parse.ShapeObject
	case "trending":
		fromKind = parse.ShapeArrayOfObjects
	default:
		return 0, fmt.Errorf("unknown kind %q (want raw, prediction or trending)", kind)
	}

	if shapeSet && fromFlag != fromKind {
		return 0, fmt.Errorf("--kind %s needs --shape %s", kind, fromKind)
	}
	return fromKind, nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
