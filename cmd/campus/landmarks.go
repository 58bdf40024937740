package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/sandevgo/campusbot/internal/service/ui"
)

var landmarksCmd = &cobra.Command{
	Use:   "landmarks",
	Short: "List known landmarks and the names they answer to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		app := NewApp(ctx, cmd)

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(ui.DescStyle).
			Headers("KEY", "NAME", "ALIASES")
		for _, e := range app.Bot.Landmarks() {
			t.Row(string(e.ID), e.Name, strings.Join(app.Bot.Aliases(e.ID), ", "))
		}

		_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return err
	},
}

func init() {
	rootCmd.AddCommand(landmarksCmd)
}
