package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sandevgo/campusbot/data"
	"github.com/sandevgo/campusbot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_BundledKnowledgeBase(t *testing.T) {
	s, err := Parse(data.KnowledgeBase, FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, core.Landmarks, s.IDs())
	assert.Equal(t, "West Hall", s.Name(core.WestHall))

	union, ok := s.Get(core.RPIUnion)
	require.True(t, ok)
	require.NotNil(t, union.Features)
	assert.NotEmpty(t, union.Events)

	verb, date, ok := union.FoundingDate()
	assert.True(t, ok)
	assert.Equal(t, "established", verb)
	assert.Equal(t, "1890", date)
}

func TestParse_TimelineYearAcceptsNumberAndString(t *testing.T) {
	doc := `{"landmarks": {"west_hall": {"history": {"timeline": [
		{"year": 1869, "event": "built"},
		{"year": "1970s", "event": "renovated"}
	]}}}}`

	s, err := Parse([]byte(doc), FormatJSON)
	require.NoError(t, err)

	rec, _ := s.Get(core.WestHall)
	require.Len(t, rec.History.Timeline, 2)
	assert.Equal(t, Year("1869"), rec.History.Timeline[0].Year)
	assert.Equal(t, Year("1970s"), rec.History.Timeline[1].Year)
}

func TestParse_YAML(t *testing.T) {
	doc := `
landmarks:
  empac:
    name: EMPAC
    dedicated: "2008"
    architecture:
      style: contemporary
      features: [concert hall, theater]
    history:
      timeline:
        - year: 2008
          event: opened
`
	s, err := Parse([]byte(doc), FormatYAML)
	require.NoError(t, err)

	rec, ok := s.Get(core.EMPAC)
	require.True(t, ok)
	assert.Equal(t, "EMPAC", rec.Name)
	assert.Equal(t, []string{"concert hall", "theater"}, rec.Architecture.Features)
	assert.Equal(t, Year("2008"), rec.History.Timeline[0].Year)
}

func TestParse_FoundingDateAcceptsNumber(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		format   Format
		wantVerb string
		wantDate string
	}{
		{
			name:     "unquoted yaml built",
			doc:      "landmarks:\n  west_hall:\n    name: West Hall\n    built: 1869\n",
			format:   FormatYAML,
			wantVerb: "built",
			wantDate: "1869",
		},
		{
			name:     "unquoted yaml dedicated",
			doc:      "landmarks:\n  empac:\n    dedicated: 2008\n    history:\n      timeline:\n        - year: 2008\n          event: opened\n",
			format:   FormatYAML,
			wantVerb: "dedicated",
			wantDate: "2008",
		},
		{
			name:     "json established number",
			doc:      `{"landmarks": {"rpi_union": {"established": 1890}}}`,
			format:   FormatJSON,
			wantVerb: "established",
			wantDate: "1890",
		},
		{
			name:     "json built text",
			doc:      `{"landmarks": {"west_hall": {"built": "1860s"}}}`,
			format:   FormatJSON,
			wantVerb: "built",
			wantDate: "1860s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.doc), tt.format)
			require.NoError(t, err)

			ids := s.IDs()
			require.Len(t, ids, 1)
			rec, _ := s.Get(ids[0])

			verb, date, ok := rec.FoundingDate()
			assert.True(t, ok)
			assert.Equal(t, tt.wantVerb, verb)
			assert.Equal(t, tt.wantDate, date)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		format Format
	}{
		{name: "not json", doc: `{"landmarks": `, format: FormatJSON},
		{name: "missing landmarks", doc: `{"buildings": {}}`, format: FormatJSON},
		{name: "empty landmarks", doc: `{"landmarks": {}}`, format: FormatJSON},
		{name: "wrong field type", doc: `{"landmarks": {"empac": {"events": "concerts"}}}`, format: FormatJSON},
		{name: "two founding dates", doc: `{"landmarks": {"empac": {"built": "2008", "dedicated": "2008"}}}`, format: FormatJSON},
		{name: "founding date as list", doc: `{"landmarks": {"empac": {"dedicated": [2008]}}}`, format: FormatJSON},
		{name: "timeline without event", doc: `{"landmarks": {"empac": {"history": {"timeline": [{"year": 2008}]}}}}`, format: FormatJSON},
		{name: "broken yaml", doc: "landmarks: [\n", format: FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kb.json")
	require.NoError(t, os.WriteFile(path, data.KnowledgeBase, 0644))

	s, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, path, s.Source())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("kb.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("KB.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("kb.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("kb"))
}

func TestStore_IDsIncludeExtraKeys(t *testing.T) {
	s := NewStore(map[core.LandmarkID]Record{
		"zeta_hall":   {Name: "Zeta"},
		core.EMPAC:    {Name: "EMPAC"},
		"alpha_hall":  {},
		core.WestHall: {Name: "West Hall"},
	})

	assert.Equal(t, []core.LandmarkID{core.WestHall, core.EMPAC, "alpha_hall", "zeta_hall"}, s.IDs())
	assert.Equal(t, "alpha_hall", s.Name("alpha_hall"))
	assert.Equal(t, "missing", s.Name("missing"))

	assert.Equal(t, []Entry{
		{ID: core.WestHall, Name: "West Hall"},
		{ID: core.EMPAC, Name: "EMPAC"},
		{ID: "alpha_hall", Name: "alpha_hall"},
		{ID: "zeta_hall", Name: "Zeta"},
	}, s.Entries())
}

func TestRecord_NamesakeInfo(t *testing.T) {
	top := &Namesake{Name: "top"}
	nested := &Namesake{Name: "nested"}

	assert.Nil(t, Record{}.NamesakeInfo())
	assert.Equal(t, top, Record{Namesake: top}.NamesakeInfo())
	assert.Equal(t, nested, Record{Namesake: top, History: &History{Namesake: nested}}.NamesakeInfo())
}
