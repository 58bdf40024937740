package resolver

import (
	"cmp"
	"slices"
	"strings"

	"github.com/sandevgo/campusbot/internal/core"
)

// Alias is a lowercase phrase that names a landmark.
type Alias struct {
	Phrase string
	ID     core.LandmarkID
}

// AliasTable is an alias list in matching priority order.
type AliasTable []Alias

// DefaultAliases covers the names, abbreviations and common misspellings
// people use for the five landmarks.
var DefaultAliases = map[string]core.LandmarkID{
	"russell sage":       core.RussellSage,
	"sage lab":           core.RussellSage,
	"sage laboratory":    core.RussellSage,
	"russel":             core.RussellSage,
	"russell":            core.RussellSage,
	"sage":               core.RussellSage,
	"rsl":                core.RussellSage,
	"west hall":          core.WestHall,
	"west":               core.WestHall,
	"wh":                 core.WestHall,
	"rpi union":          core.RPIUnion,
	"student union":      core.RPIUnion,
	"union":              core.RPIUnion,
	"campus union":       core.RPIUnion,
	"folsom":             core.FolsomLibrary,
	"library":            core.FolsomLibrary,
	"folsom lib":         core.FolsomLibrary,
	"folsum":             core.FolsomLibrary,
	"folsam":             core.FolsomLibrary,
	"lib":                core.FolsomLibrary,
	"empac":              core.EMPAC,
	"experimental media": core.EMPAC,
	"performing arts":    core.EMPAC,
	"arts center":        core.EMPAC,
	"experimental":       core.EMPAC,
	"media center":       core.EMPAC,
}

// NewAliasTable orders aliases longest first, ties broken alphabetically, so
// that "sage laboratory" is tried before "sage" and "student union" before
// "wh". Phrases are lowercased and trimmed; empty phrases are dropped.
func NewAliasTable(aliases map[string]core.LandmarkID) AliasTable {
	table := make(AliasTable, 0, len(aliases))
	for phrase, id := range aliases {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" {
			continue
		}
		table = append(table, Alias{Phrase: phrase, ID: id})
	}

	slices.SortFunc(table, func(a, b Alias) int {
		if n := cmp.Compare(len([]rune(b.Phrase)), len([]rune(a.Phrase))); n != 0 {
			return n
		}
		return cmp.Compare(a.Phrase, b.Phrase)
	})
	return table
}

// For returns the phrases that map to id, in priority order.
func (t AliasTable) For(id core.LandmarkID) []string {
	var phrases []string
	for _, a := range t {
		if a.ID == id {
			phrases = append(phrases, a.Phrase)
		}
	}
	return phrases
}
