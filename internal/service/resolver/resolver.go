// Package resolver maps free text to one of the known landmarks.
package resolver

import (
	"fmt"
	"strings"

	"github.com/sandevgo/campusbot/internal/core"
)

const (
	// DefaultThreshold is the score a fuzzy match must strictly exceed.
	DefaultThreshold = 70
	// StrictThreshold is the tighter profile.
	StrictThreshold = 80
)

// Profiles names the supported threshold presets.
var Profiles = map[string]int{
	"default": DefaultThreshold,
	"strict":  StrictThreshold,
}

// ProfileThreshold returns the threshold of a named profile.
func ProfileThreshold(name string) (int, error) {
	t, ok := Profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown match profile %q (use default or strict)", name)
	}
	return t, nil
}

// DefaultFillers are stripped from a query before matching.
var DefaultFillers = []string{"tell me about", "what about", "where is"}

type Config struct {
	Aliases   map[string]core.LandmarkID
	Fillers   []string
	Threshold int
}

func DefaultConfig() Config {
	return Config{
		Aliases:   DefaultAliases,
		Fillers:   DefaultFillers,
		Threshold: DefaultThreshold,
	}
}

// Match is a successful resolution.
type Match struct {
	ID    core.LandmarkID
	Alias string
	Fuzzy bool
	Score int
}

type Resolver struct {
	table     AliasTable
	fillers   []string
	threshold int
}

func New(cfg Config) *Resolver {
	if cfg.Aliases == nil {
		cfg.Aliases = DefaultAliases
	}
	if cfg.Fillers == nil {
		cfg.Fillers = DefaultFillers
	}
	return &Resolver{
		table:     NewAliasTable(cfg.Aliases),
		fillers:   cfg.Fillers,
		threshold: cfg.Threshold,
	}
}

func (r *Resolver) Aliases() AliasTable {
	return r.table
}

func (r *Resolver) Threshold() int {
	return r.threshold
}

// Clean lowercases the query and strips filler phrases.
func (r *Resolver) Clean(text string) string {
	q := strings.ToLower(strings.TrimSpace(text))
	for _, f := range r.fillers {
		q = strings.ReplaceAll(q, f, "")
	}
	return strings.TrimSpace(q)
}

// Resolve tries alias containment first, in either direction, and then the
// best fuzzy score. A fuzzy match must strictly exceed the threshold; equal
// scores keep the alias that comes first in priority order.
func (r *Resolver) Resolve(text string) (Match, bool) {
	q := r.Clean(text)
	if q == "" {
		return Match{}, false
	}

	for _, a := range r.table {
		if strings.Contains(a.Phrase, q) || strings.Contains(q, a.Phrase) {
			return Match{ID: a.ID, Alias: a.Phrase, Score: 100}, true
		}
	}

	var best Match
	for _, a := range r.table {
		score := PartialRatio(q, a.Phrase)
		if score > best.Score {
			best = Match{ID: a.ID, Alias: a.Phrase, Fuzzy: true, Score: score}
		}
	}

	if best.Score > r.threshold {
		return best, true
	}
	return Match{}, false
}
