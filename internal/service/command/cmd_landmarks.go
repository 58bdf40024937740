package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/campusbot/internal/core"
	"github.com/sandevgo/campusbot/internal/storage/knowledge"
)

// Catalog is what the landmark commands need to know about the bot.
type Catalog interface {
	Landmarks() []knowledge.Entry
	Aliases(id core.LandmarkID) []string
}

type LandmarksCommand struct {
	catalog   Catalog
	formatter *ResponseFormatter
}

func NewLandmarksCommand(catalog Catalog) *LandmarksCommand {
	return &LandmarksCommand{
		catalog:   catalog,
		formatter: NewResponseFormatter(),
	}
}

func (c *LandmarksCommand) Name() string {
	return "landmarks"
}

func (c *LandmarksCommand) Description() string {
	return "List the landmarks I know about"
}

func (c *LandmarksCommand) Execute(_ context.Context, _ core.SessionView, _ []string) (string, error) {
	entries := c.catalog.Landmarks()
	items := make([]string, 0, len(entries))
	for _, e := range entries {
		item := e.Name
		if aliases := c.catalog.Aliases(e.ID); len(aliases) > 0 {
			item = fmt.Sprintf("%s (%s)", e.Name, strings.Join(aliases, ", "))
		}
		items = append(items, item)
	}

	return c.formatter.Combine(
		c.formatter.Info("Landmarks"),
		c.formatter.List(items),
		c.formatter.Tip("ask about any of them by name, e.g. \"Tell me about West Hall\""),
	), nil
}
