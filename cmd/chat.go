package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leofalp/betsmart/core/client"
	"github.com/leofalp/betsmart/core/client/middleware"
	"github.com/leofalp/betsmart/core/support"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to BetBot about VIP plans and betting terms",
	Long: "Starts an interactive support conversation. Type /reset to start over " +
		"and /exit (or Ctrl-D) to leave.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		middlewares := append([]client.Middleware{middleware.NewTimeoutMiddleware(cfg.Gemini.Timeout)}, clientMiddlewares()...)
		session, err := support.NewSession(newProvider(), cfg.Gemini.APIKey,
			support.WithModel(cfg.Gemini.Model),
			support.WithObserver(observer),
			support.WithMiddleware(middlewares...),
		)
		if errors.Is(err, support.ErrMissingCredential) {
			return errors.New("BetBot is offline: set GEMINI_API_KEY and try again")
		}
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "BetBot: %s\n", support.Greeting)

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				fmt.Fprintln(out)
				return scanner.Err()
			}

			line := strings.TrimSpace(scanner.Text())
			switch line {
			case "":
				continue
			case "/exit", "/quit":
				return nil
			case "/reset":
				session.Reset(ctx)
				fmt.Fprintln(out, "BetBot: Conversation cleared.")
				continue
			}

			reply, err := session.Send(ctx, line)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "BetBot is having trouble answering right now. Please try again.")
				continue
			}
			fmt.Fprintf(out, "BetBot: %s\n", reply)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
