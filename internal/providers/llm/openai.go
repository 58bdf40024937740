package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/sandevgo/campusbot/internal/core"
)

// OpenAI uses the official SDK rather than the raw compatible client.
type OpenAI struct {
	client      *openai.Client
	model       string
	temperature float64
}

func NewOpenAI(apiKey, baseURL, model string, temperature float64) *OpenAI {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(requestTimeout),
		option.WithHeader("User-Agent", core.BotUserAgent),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)
	return &OpenAI{
		client:      &client,
		model:       model,
		temperature: temperature,
	}
}

func (o *OpenAI) Chat(ctx context.Context, history []core.Message) (core.Message, error) {
	params := openai.ChatCompletionNewParams{
		Model:       o.model,
		Messages:    toOpenAIMessages(history),
		Temperature: openai.Float(o.temperature),
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return core.Message{}, fmt.Errorf("openai chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return core.Message{}, fmt.Errorf("openai chat: empty choices")
	}

	return core.Message{
		Role:    core.RoleAssistant,
		Content: resp.Choices[0].Message.Content,
	}, nil
}

func toOpenAIMessages(history []core.Message) []openai.ChatCompletionMessageParamUnion {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case core.RoleSystem:
			msgs = append(msgs, openai.SystemMessage(m.Content))
		case core.RoleAssistant:
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}
	return msgs
}
