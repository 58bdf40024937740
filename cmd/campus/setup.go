package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sandevgo/campusbot/internal/config"
	"github.com/sandevgo/campusbot/internal/core"
	"github.com/sandevgo/campusbot/internal/providers/llm"
	"github.com/sandevgo/campusbot/internal/service/chat"
	"github.com/sandevgo/campusbot/internal/service/command"
	"github.com/sandevgo/campusbot/internal/service/disambig"
	"github.com/sandevgo/campusbot/internal/service/resolver"
	"github.com/sandevgo/campusbot/internal/storage/knowledge"
	"github.com/sandevgo/campusbot/pkg/log"
)

// App is everything a subcommand may need, wired once per invocation.
type App struct {
	AppCfg *config.AppConfig
	LLMCfg *config.LLMConfig
	Store  *knowledge.Store
	Bot    *chat.Bot
	Router *command.Router

	// FallbackEnabled reports whether unmatched input is sent to the model.
	FallbackEnabled bool
}

func NewApp(ctx context.Context, cmd *cobra.Command) *App {
	logger := log.FromCtx(ctx)

	// 1. Configuration
	appCfg, llmCfg := loadConfig(ctx, cmd)

	// 2. Knowledge
	store, err := knowledge.Load(ctx, appCfg.GetKnowledgePath())
	if err != nil {
		logger.Fatal().Err(err).Str("path", appCfg.GetKnowledgePath()).Msg("failed to load knowledge base")
	}

	// 3. Matching
	res := resolver.New(resolver.Config{Threshold: appCfg.MatchThreshold})

	// 4. Model fallback
	d := initDisambiguator(ctx, appCfg, llmCfg, store)

	// 5. Bot and commands
	bot := chat.NewBot(store, res, d, chat.Options{
		UnionID: core.LandmarkID(appCfg.UnionID),
	})

	var model command.ModelInfo
	if d != nil {
		model = llmCfg
	}

	return &App{
		AppCfg:          appCfg,
		LLMCfg:          llmCfg,
		Store:           store,
		Bot:             bot,
		Router:          command.NewRouter(bot, model),
		FallbackEnabled: d != nil,
	}
}

func loadConfig(ctx context.Context, cmd *cobra.Command) (*config.AppConfig, *config.LLMConfig) {
	logger := log.FromCtx(ctx)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	appCfg := config.NewAppConfig(ctx)
	if err := applyFlags(cmd, appCfg); err != nil {
		logger.Fatal().Err(err).Msg("invalid flags")
	}
	return appCfg, config.NewLLMConfig(ctx)
}

// initDisambiguator returns nil when no credential is configured or the
// provider cannot be built; the bot then works from aliases alone.
func initDisambiguator(
	ctx context.Context,
	appCfg *config.AppConfig,
	llmCfg *config.LLMConfig,
	store *knowledge.Store,
) core.Disambiguator {
	logger := log.FromCtx(ctx)

	if !llmCfg.HasCredential() {
		logger.Warn().Str("provider", llmCfg.GetProvider()).Msg("No LLM credential configured, model fallback disabled")
		return nil
	}

	provider, err := llm.NewProvider(ctx, llmCfg)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize LLM provider, model fallback disabled")
		return nil
	}

	entries := store.Entries()
	candidates := make([]disambig.Candidate, len(entries))
	for i, e := range entries {
		candidates[i] = disambig.Candidate{ID: e.ID, Name: e.Name}
	}

	d, err := disambig.New(provider, candidates, appCfg.DisambiguationCacheSize)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize disambiguator, model fallback disabled")
		return nil
	}
	return d
}

// applyFlags layers flags over the env config. An explicit --threshold wins
// over a profile, and a profile wins over CAMPUS_MATCH_THRESHOLD.
func applyFlags(cmd *cobra.Command, cfg *config.AppConfig) error {
	flags := cmd.Flags()
	if flags.Changed("knowledge") {
		cfg.KnowledgePath = knowledgePath
	}
	if flags.Changed("profile") {
		cfg.MatchProfile = profile
	}
	if cfg.MatchProfile != "" {
		t, err := resolver.ProfileThreshold(cfg.MatchProfile)
		if err != nil {
			return err
		}
		cfg.MatchThreshold = t
	}
	if flags.Changed("threshold") {
		if threshold < 0 || threshold > 100 {
			return fmt.Errorf("threshold must be within 0..100, got %d", threshold)
		}
		cfg.MatchThreshold = threshold
	}
	return nil
}

// initEnv loads .env from the working directory, then from the runtime
// directory. Variables already set are never overridden.
func initEnv(ctx context.Context, runtimePath string) error {
	for _, envFile := range []string{".env", filepath.Join(runtimePath, ".env")} {
		if err := loadEnvFile(ctx, envFile); err != nil {
			return err
		}
	}
	return nil
}

func loadEnvFile(ctx context.Context, envFile string) error {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
