package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandevgo/campusbot/pkg/env"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as .env (secrets masked)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		appCfg, llmCfg := loadConfig(ctx, cmd)
		masked := llmCfg.Masked()

		out, err := env.MarshalEnv(appCfg, &masked)
		if err != nil {
			return fmt.Errorf("render config: %w", err)
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", appCfg.GetEnvPath(), out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
