package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/campusbot/internal/config"
	"github.com/sandevgo/campusbot/internal/core"
	"github.com/sandevgo/campusbot/pkg/log"
)

// NewProvider creates the appropriate AIProvider based on configuration.
func NewProvider(ctx context.Context, cfg *config.LLMConfig) (core.AIProvider, error) {
	model := cfg.GetModel()

	log.FromCtx(ctx).Info().
		Str("provider", cfg.Provider).
		Str("model", model).
		Msg("Starting llm provider")

	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, model, cfg.Temperature), nil
	case config.ProviderAnthropic:
		return NewAnthropic(cfg.AnthropicAPIKey, model, cfg.Temperature), nil
	case config.ProviderOpenRouter:
		return NewOpenRouter(cfg.OpenRouterAPIKey, model, cfg.Temperature), nil
	case config.ProviderGemini:
		g, err := NewGemini(ctx, cfg.GeminiAPIKey, model, cfg.Temperature)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.ProviderOllama:
		return NewOllama(cfg.OllamaBaseURL, cfg.OllamaAPIKey, model, cfg.Temperature), nil
	case config.ProviderCustom:
		return NewCustomOpenAI(cfg.CustomOpenAIBaseURL, cfg.CustomOpenAIAPIKey, model, cfg.Temperature), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
