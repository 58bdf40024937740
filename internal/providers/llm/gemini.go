package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/sandevgo/campusbot/internal/core"
)

type Gemini struct {
	client      *genai.Client
	model       string
	temperature float64
}

func NewGemini(ctx context.Context, apiKey, model string, temperature float64) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}

	return &Gemini{
		client:      client,
		model:       model,
		temperature: temperature,
	}, nil
}

func (g *Gemini) Chat(ctx context.Context, history []core.Message) (core.Message, error) {
	contents, cfg := toGeminiContents(history)
	temp := float32(g.temperature)
	cfg.Temperature = &temp

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return core.Message{}, fmt.Errorf("genai generate: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return core.Message{}, fmt.Errorf("genai generate: no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return core.Message{Role: core.RoleAssistant, Content: sb.String()}, nil
}

// toGeminiContents moves system messages into the system instruction and
// maps the assistant role to Gemini's "model".
func toGeminiContents(history []core.Message) ([]*genai.Content, *genai.GenerateContentConfig) {
	cfg := &genai.GenerateContentConfig{}

	var (
		system   []*genai.Part
		contents []*genai.Content
	)
	for _, m := range history {
		switch m.Role {
		case core.RoleSystem:
			system = append(system, &genai.Part{Text: m.Content})
		case core.RoleAssistant:
			contents = append(contents, &genai.Content{Role: "model", Parts: []*genai.Part{{Text: m.Content}}})
		default:
			contents = append(contents, &genai.Content{Role: "user", Parts: []*genai.Part{{Text: m.Content}}})
		}
	}

	if len(system) > 0 {
		cfg.SystemInstruction = &genai.Content{Parts: system}
	}
	return contents, cfg
}
