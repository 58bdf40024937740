package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/campusbot/pkg/log"
)

const (
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"
	ProviderGemini     = "gemini"
	ProviderOllama     = "ollama"
	ProviderCustom     = "custom"
)

var defaultModels = map[string]string{
	ProviderOpenAI:     "gpt-3.5-turbo",
	ProviderOpenRouter: "openai/gpt-3.5-turbo",
	ProviderAnthropic:  "claude-3-5-haiku-latest",
	ProviderGemini:     "gemini-2.0-flash",
	ProviderOllama:     "llama3.1",
	ProviderCustom:     "gpt-3.5-turbo",
}

type LLMConfig struct {
	Provider    string  `env:"LLM_PROVIDER" envDefault:"openai"`
	Model       string  `env:"LLM_MODEL"`
	Temperature float64 `env:"LLM_TEMPERATURE" envDefault:"0.3"`

	OpenAIAPIKey        string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL       string `env:"OPENAI_BASE_URL"`
	OpenRouterAPIKey    string `env:"OPENROUTER_API_KEY"`
	AnthropicAPIKey     string `env:"ANTHROPIC_API_KEY"`
	GeminiAPIKey        string `env:"GEMINI_API_KEY"`
	OllamaBaseURL       string `env:"OLLAMA_BASE_URL"`
	OllamaAPIKey        string `env:"OLLAMA_API_KEY"`
	CustomOpenAIBaseURL string `env:"CUSTOM_OPENAI_BASE_URL"`
	CustomOpenAIAPIKey  string `env:"CUSTOM_OPENAI_API_KEY"`
}

func LoadLLMConfig() (*LLMConfig, error) {
	c := &LLMConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	return c, nil
}

func NewLLMConfig(ctx context.Context) *LLMConfig {
	c, err := LoadLLMConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse LLM config")
	}
	return c
}

func (c LLMConfig) GetProvider() string {
	return c.Provider
}

// GetModel returns the configured model or the provider's default.
func (c LLMConfig) GetModel() string {
	if c.Model != "" {
		return c.Model
	}
	return defaultModels[c.Provider]
}

// HasCredential reports whether the selected provider can be reached at all.
// Ollama needs a base URL rather than a key.
func (c LLMConfig) HasCredential() bool {
	switch c.Provider {
	case ProviderOpenAI:
		return c.OpenAIAPIKey != ""
	case ProviderOpenRouter:
		return c.OpenRouterAPIKey != ""
	case ProviderAnthropic:
		return c.AnthropicAPIKey != ""
	case ProviderGemini:
		return c.GeminiAPIKey != ""
	case ProviderOllama:
		return c.OllamaBaseURL != ""
	case ProviderCustom:
		return c.CustomOpenAIBaseURL != ""
	default:
		return false
	}
}

// Masked returns a copy with every secret replaced, for display.
func (c LLMConfig) Masked() LLMConfig {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		if len(s) <= 8 {
			return "****"
		}
		return s[:4] + "****" + s[len(s)-4:]
	}
	c.OpenAIAPIKey = mask(c.OpenAIAPIKey)
	c.OpenRouterAPIKey = mask(c.OpenRouterAPIKey)
	c.AnthropicAPIKey = mask(c.AnthropicAPIKey)
	c.GeminiAPIKey = mask(c.GeminiAPIKey)
	c.OllamaAPIKey = mask(c.OllamaAPIKey)
	c.CustomOpenAIAPIKey = mask(c.CustomOpenAIAPIKey)
	return c
}
