// Package disambig asks a language model which landmark an unmatched
// utterance refers to.
package disambig

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sandevgo/campusbot/internal/core"
	"github.com/sandevgo/campusbot/pkg/conv"
	"github.com/sandevgo/campusbot/pkg/log"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Analysis is the model's verdict on one utterance.
type Analysis struct {
	Landmark   *string    `json:"landmark"`
	Original   string     `json:"original"`
	Confidence Confidence `json:"confidence"`
	Reasoning  string     `json:"reasoning"`
}

// ID returns the landmark key the model picked, if any.
func (a Analysis) ID() (core.LandmarkID, bool) {
	if a.Landmark == nil {
		return "", false
	}
	id := strings.TrimSpace(*a.Landmark)
	if id == "" || strings.EqualFold(id, "null") {
		return "", false
	}
	return core.LandmarkID(id), true
}

type Disambiguator struct {
	provider core.AIProvider
	prompt   string
	known    map[core.LandmarkID]struct{}
	cache    *lru.Cache[string, Analysis]
}

// New builds a disambiguator over the given candidates. A cacheSize of zero
// disables memoization.
func New(provider core.AIProvider, candidates []Candidate, cacheSize int) (*Disambiguator, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider is required")
	}

	d := &Disambiguator{
		provider: provider,
		prompt:   BuildPrompt(candidates),
		known:    make(map[core.LandmarkID]struct{}, len(candidates)),
	}
	for _, c := range candidates {
		d.known[c.ID] = struct{}{}
	}

	if cacheSize > 0 {
		cache, err := lru.New[string, Analysis](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("create cache: %w", err)
		}
		d.cache = cache
	}
	return d, nil
}

// Analyze asks the model about text. Successful analyses are cached per
// normalized utterance.
func (d *Disambiguator) Analyze(ctx context.Context, text string) (Analysis, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	if d.cache != nil {
		if a, ok := d.cache.Get(key); ok {
			return a, nil
		}
	}

	reply, err := d.provider.Chat(ctx, []core.Message{
		{Role: core.RoleSystem, Content: d.prompt},
		{Role: core.RoleUser, Content: text},
	})
	if err != nil {
		return Analysis{}, fmt.Errorf("chat: %w", err)
	}

	a, err := ParseAnalysis(reply.Content)
	if err != nil {
		return Analysis{}, err
	}

	if d.cache != nil {
		d.cache.Add(key, a)
	}
	return a, nil
}

// Disambiguate reports the landmark the model identified. Failures and keys
// outside the candidate set count as no landmark.
func (d *Disambiguator) Disambiguate(ctx context.Context, text string) (core.LandmarkID, bool) {
	logger := log.FromCtx(ctx)

	a, err := d.Analyze(ctx, text)
	if err != nil {
		logger.Warn().Err(err).Msg("Landmark analysis failed")
		return "", false
	}

	id, ok := a.ID()
	if !ok {
		logger.Debug().Str("reasoning", a.Reasoning).Msg("Model found no landmark")
		return "", false
	}
	if _, known := d.known[id]; !known {
		logger.Warn().Str("landmark", string(id)).Msg("Model returned unknown landmark key")
		return "", false
	}

	logger.Debug().
		Str("landmark", string(id)).
		Str("confidence", string(a.Confidence)).
		Msg("Model identified landmark")
	return id, true
}

// ParseAnalysis decodes a model reply, tolerating code fences, surrounding
// prose and malformed JSON.
func ParseAnalysis(reply string) (Analysis, error) {
	raw, err := conv.ExtractJSON(reply)
	if err != nil {
		return Analysis{}, fmt.Errorf("%w: %w", ErrInvalidAnalysis, err)
	}

	data, err := conv.Normalize([]byte(raw))
	if err != nil {
		return Analysis{}, fmt.Errorf("%w: repair: %w", ErrInvalidAnalysis, err)
	}

	if err := validate(data); err != nil {
		return Analysis{}, err
	}

	var a Analysis
	if err := json.Unmarshal(data, &a); err != nil {
		return Analysis{}, fmt.Errorf("%w: %w", ErrInvalidAnalysis, err)
	}
	return a, nil
}
