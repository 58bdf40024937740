package command

import (
	"context"

	"github.com/sandevgo/campusbot/internal/core"
)

type TopicCommand struct {
	catalog   Catalog
	formatter *ResponseFormatter
}

func NewTopicCommand(catalog Catalog) *TopicCommand {
	return &TopicCommand{
		catalog:   catalog,
		formatter: NewResponseFormatter(),
	}
}

func (c *TopicCommand) Name() string {
	return "topic"
}

func (c *TopicCommand) Description() string {
	return "Show the landmark we are talking about"
}

func (c *TopicCommand) Execute(_ context.Context, session core.SessionView, _ []string) (string, error) {
	topic, ok := session.CurrentTopic()
	if !ok {
		return c.formatter.Combine(
			c.formatter.Info("No landmark selected yet"),
			c.formatter.Tip("type /landmarks to see what I know about"),
		), nil
	}

	name := topic.String()
	for _, e := range c.catalog.Landmarks() {
		if e.ID == topic {
			name = e.Name
			break
		}
	}

	return c.formatter.Combine(
		c.formatter.Info("Current Topic"),
		c.formatter.Label("Landmark", name),
		c.formatter.Label("Key", topic.String()),
	), nil
}
