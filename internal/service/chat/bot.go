// Package chat runs conversation turns: follow-up detection, landmark
// resolution and the model fallback.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/campusbot/internal/core"
	"github.com/sandevgo/campusbot/internal/service/render"
	"github.com/sandevgo/campusbot/internal/service/resolver"
	"github.com/sandevgo/campusbot/internal/storage/knowledge"
	"github.com/sandevgo/campusbot/pkg/log"
)

type facetRule struct {
	facet    core.Facet
	keywords []string
}

// Rules are checked in order; the first keyword found as a substring wins.
var (
	unionRules = []facetRule{
		{core.FacetEvents, []string{"event", "activities", "programs"}},
		{core.FacetFacilities, []string{"facilities", "rooms", "spaces"}},
		{core.FacetHistory, []string{"history", "background", "past"}},
	}
	landmarkRules = []facetRule{
		{core.FacetHistory, []string{"history", "background", "past", "origin"}},
		{core.FacetArchitecture, []string{"architecture", "design", "building", "structure"}},
		{core.FacetCurrentUse, []string{"current", "now", "today", "use", "purpose"}},
	}
)

type Options struct {
	// UnionID is the landmark that gets the events and facilities facets.
	UnionID core.LandmarkID
}

func DefaultOptions() Options {
	return Options{UnionID: core.RPIUnion}
}

type Bot struct {
	store         *knowledge.Store
	resolver      *resolver.Resolver
	renderer      *render.Renderer
	disambiguator core.Disambiguator
	opts          Options
}

// NewBot wires a bot. disambiguator may be nil, in which case unmatched
// utterances go straight to the clarification reply.
func NewBot(
	store *knowledge.Store,
	res *resolver.Resolver,
	disambiguator core.Disambiguator,
	opts Options,
) *Bot {
	if opts.UnionID == "" {
		opts.UnionID = core.RPIUnion
	}
	return &Bot{
		store:         store,
		resolver:      res,
		renderer:      render.New(opts.UnionID),
		disambiguator: disambiguator,
		opts:          opts,
	}
}

// Reply handles one user turn and records both sides of it in the session log.
func (b *Bot) Reply(ctx context.Context, s *Session, input string) string {
	s.append(core.RoleUser, input)
	reply := b.respond(ctx, s, input)
	s.append(core.RoleAssistant, reply)
	return reply
}

func (b *Bot) respond(ctx context.Context, s *Session, input string) string {
	logger := log.FromCtx(ctx).With().Str("session", s.ID).Logger()

	if topic, ok := s.CurrentTopic(); ok {
		if facet, ok := b.followUp(topic, input); ok {
			logger.Debug().Str("topic", string(topic)).Str("facet", string(facet)).Msg("Follow-up")
			return b.renderer.Facet(facet, topic, b.record(topic))
		}
	}

	if m, ok := b.resolver.Resolve(input); ok {
		logger.Debug().
			Str("landmark", string(m.ID)).
			Str("alias", m.Alias).
			Bool("fuzzy", m.Fuzzy).
			Int("score", m.Score).
			Msg("Resolved landmark")

		s.Topic = m.ID
		if m.Fuzzy {
			return b.confirm(m.ID) + b.renderer.Summary(m.ID, b.record(m.ID))
		}
		return b.renderer.Summary(m.ID, b.record(m.ID))
	}

	if b.disambiguator != nil {
		if id, ok := b.disambiguator.Disambiguate(ctx, input); ok {
			s.Topic = id
			return b.confirm(id) + b.renderer.Summary(id, b.record(id))
		}
	}

	return b.Clarification()
}

// followUp maps an utterance to a facet of the current topic.
func (b *Bot) followUp(topic core.LandmarkID, input string) (core.Facet, bool) {
	text := strings.ToLower(input)

	rules := landmarkRules
	if b.renderer.IsUnion(topic) {
		rules = unionRules
	}

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.facet, true
			}
		}
	}
	return "", false
}

func (b *Bot) record(id core.LandmarkID) *knowledge.Record {
	rec, ok := b.store.Get(id)
	if !ok {
		return nil
	}
	return &rec
}

func (b *Bot) confirm(id core.LandmarkID) string {
	return fmt.Sprintf("I think you might be referring to %s. ", b.store.Name(id))
}

// Clarification asks the user to name one of the known landmarks.
func (b *Bot) Clarification() string {
	entries := b.store.Entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return fmt.Sprintf("I'm not sure which RPI landmark you're asking about. Could you specify one of: %s?", joinOr(names))
}

// Landmarks lists the known landmarks with their display names.
func (b *Bot) Landmarks() []knowledge.Entry {
	return b.store.Entries()
}

// Aliases returns the phrases that resolve to id.
func (b *Bot) Aliases(id core.LandmarkID) []string {
	return b.resolver.Aliases().For(id)
}

func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
}
