package main

import (
	"github.com/spf13/cobra"

	"github.com/sandevgo/campusbot/internal/transport/cli"
	"github.com/sandevgo/campusbot/pkg/log"
	"github.com/sandevgo/campusbot/pkg/srv"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat (default)",
	Long:  `Opens the console chat. Ask about a landmark, then follow up about its history, architecture or current use.`,
	Args:  cobra.NoArgs,
	RunE:  runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	// logger setup
	ctx, flushLog := setupLogger(cmd.Context())
	defer flushLog()

	logger := log.FromCtx(ctx)
	app := NewApp(ctx, cmd)

	logger.Debug().
		Str("knowledge", app.Store.Source()).
		Int("landmarks", app.Store.Len()).
		Bool("fallback", app.FallbackEnabled).
		Msg("starting campusbot")

	repl, err := cli.NewReadLine(app.Bot, app.Router)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open console")
	}

	if err := srv.Run(ctx, []srv.Service{repl}); err != nil {
		return err
	}
	logger.Debug().Msg("campusbot has been shut down gracefully")
	return nil
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
