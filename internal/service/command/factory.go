package command

import (
	"github.com/sandevgo/campusbot/internal/core"
)

// NewRouter builds the router with every in-chat command registered.
// model may be nil when the disambiguation fallback is disabled.
func NewRouter(catalog Catalog, model ModelInfo) *Router {
	r := New([]core.Command{
		NewLandmarksCommand(catalog),
		NewTopicCommand(catalog),
		NewModelCommand(model),
	})
	r.Register(NewHelpCommand(r))
	return r
}
