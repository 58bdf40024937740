// Package knowledge loads the static landmark knowledge base.
package knowledge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sandevgo/campusbot/internal/core"
	"github.com/sandevgo/campusbot/pkg/log"
	"gopkg.in/yaml.v3"
)

var ErrInvalidDocument = errors.New("invalid knowledge document")

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks the decoder from the file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Store is the read-only, in-memory knowledge base.
type Store struct {
	records map[core.LandmarkID]Record
	source  string
}

// Load reads and validates the knowledge document at path.
func Load(ctx context.Context, path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge base: %w", err)
	}

	s, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base %s: %w", path, err)
	}
	s.source = path

	log.FromCtx(ctx).Debug().
		Str("path", path).
		Int("landmarks", s.Len()).
		Msg("loaded knowledge base")
	return s, nil
}

// Parse decodes a knowledge document. YAML is converted to JSON first so both
// formats go through the same schema.
func Parse(data []byte, format Format) (*Store, error) {
	if format == FormatYAML {
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		converted, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
		data = converted
	}

	if err := validate(data); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &Store{records: doc.Landmarks}, nil
}

// NewStore builds a store from records directly.
func NewStore(records map[core.LandmarkID]Record) *Store {
	return &Store{records: records, source: "memory"}
}

func (s *Store) Get(id core.LandmarkID) (Record, bool) {
	r, ok := s.records[id]
	return r, ok
}

func (s *Store) Has(id core.LandmarkID) bool {
	_, ok := s.records[id]
	return ok
}

func (s *Store) Len() int {
	return len(s.records)
}

func (s *Store) Source() string {
	return s.source
}

// Name returns the landmark's display name, or its id when the record is
// missing or unnamed.
func (s *Store) Name(id core.LandmarkID) string {
	return s.records[id].DisplayName(id.String())
}

// IDs returns the known landmarks first in their canonical order, then any
// extra keys the document defines, sorted.
func (s *Store) IDs() []core.LandmarkID {
	ids := make([]core.LandmarkID, 0, len(s.records))
	for _, id := range core.Landmarks {
		if s.Has(id) {
			ids = append(ids, id)
		}
	}

	var extra []core.LandmarkID
	for id := range s.records {
		if !slices.Contains(core.Landmarks, id) {
			extra = append(extra, id)
		}
	}
	slices.Sort(extra)
	return append(ids, extra...)
}

// Entry pairs a landmark id with its display name.
type Entry struct {
	ID   core.LandmarkID
	Name string
}

// Entries returns every landmark in IDs order.
func (s *Store) Entries() []Entry {
	ids := s.IDs()
	out := make([]Entry, len(ids))
	for i, id := range ids {
		out[i] = Entry{ID: id, Name: s.Name(id)}
	}
	return out
}
