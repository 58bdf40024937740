package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandevgo/campusbot/internal/service/chat"
)

var askCmd = &cobra.Command{
	Use:     "ask <question...>",
	Short:   "Answer a single question and exit",
	Example: `  campus ask "tell me about west hall"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		app := NewApp(ctx, cmd)
		reply := app.Bot.Reply(ctx, chat.NewSession(), strings.Join(args, " "))

		_, err := fmt.Fprintln(cmd.OutOrStdout(), reply)
		return err
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
