// Package cmd implements the betsmart command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leofalp/betsmart/core/client"
	"github.com/leofalp/betsmart/core/client/middleware"
	"github.com/leofalp/betsmart/core/predictor"
	"github.com/leofalp/betsmart/internal/config"
	"github.com/leofalp/betsmart/providers/ai"
	"github.com/leofalp/betsmart/providers/ai/gemini"
	"github.com/leofalp/betsmart/providers/observability/slogobs"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string

	cfg      *config.Config
	observer *slogobs.Observer
	// verbose is set when the log level is DEBUG or lower.
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "betsmart",
	Short: "Football match predictions grounded in live web search",
	Long: "Asks Gemini, with Google Search grounding, to analyse football fixtures and " +
		"turns its free-form answer into structured predictions.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.Load(config.Options{ConfigFile: cfgFile})
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if cmd.Flags().Changed("log-level") {
			c.Log.Level = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			c.Log.Format = logFormat
		}

		o, level, err := newObserver(c.Log, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		cfg = c
		observer = o
		verbose = level <= slog.LevelDebug
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./betsmart.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: compact, pretty, json")
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func newObserver(logCfg config.LogConfig, w io.Writer) (*slogobs.Observer, slog.Level, error) {
	format, err := slogobs.ParseFormat(logCfg.Format)
	if err != nil {
		return nil, 0, err
	}
	level, err := slogobs.ParseLevel(logCfg.Level)
	if err != nil {
		return nil, 0, err
	}
	return slogobs.New(
		slogobs.WithFormat(format),
		slogobs.WithLevel(level),
		slogobs.WithOutput(w),
	), level, nil
}

func newProvider() ai.Provider {
	return gemini.New().WithBaseURL(cfg.Gemini.BaseURL)
}

// clientMiddlewares returns the middlewares shared by every command. Request
// logging is only installed at debug verbosity.
func clientMiddlewares() []client.Middleware {
	if !verbose {
		return nil
	}
	return []client.Middleware{middleware.NewLoggingMiddleware(observer.Logger(), middleware.LogLevelVerbose)}
}

func newPredictor() (*predictor.Service, error) {
	return predictor.New(newProvider(), cfg.Gemini.APIKey,
		predictor.WithObserver(observer),
		predictor.WithModel(cfg.Gemini.Model),
		predictor.WithTimeout(cfg.Gemini.Timeout),
		predictor.WithLenientRepair(cfg.Extract.LenientRepair),
		predictor.WithMiddleware(clientMiddlewares()...),
	)
}

// userError shows the friendly message for err while keeping it available
// to errors.Is.
type userError struct {
	err error
}

func (e *userError) Error() string {
	return predictor.UserMessage(e.err)
}

func (e *userError) Unwrap() error {
	return e.err
}
