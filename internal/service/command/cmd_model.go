package command

import (
	"context"

	"github.com/sandevgo/campusbot/internal/core"
)

type ModelInfo interface {
	GetProvider() string
	GetModel() string
}

type ModelCommand struct {
	info      ModelInfo
	formatter *ResponseFormatter
}

func NewModelCommand(info ModelInfo) *ModelCommand {
	return &ModelCommand{
		info:      info,
		formatter: NewResponseFormatter(),
	}
}

func (c *ModelCommand) Name() string {
	return "model"
}

func (c *ModelCommand) Description() string {
	return "Show the model used to identify unclear landmark names"
}

func (c *ModelCommand) Execute(_ context.Context, _ core.SessionView, _ []string) (string, error) {
	if c.info == nil {
		return c.formatter.Combine(
			c.formatter.Info("Model fallback is disabled"),
			c.formatter.Tip("set LLM_PROVIDER and its API key to enable it"),
		), nil
	}

	return c.formatter.Combine(
		c.formatter.Info("Current Model"),
		c.formatter.Label("Provider", c.info.GetProvider()),
		c.formatter.Label("Model", c.info.GetModel()),
	), nil
}
