package knowledge

import (
	"encoding/json"
	"fmt"

	"github.com/sandevgo/campusbot/internal/core"
)

type Document struct {
	Landmarks map[core.LandmarkID]Record `json:"landmarks"`
}

// Record holds everything known about one landmark. Every field is optional;
// at most one of Built, Established and Dedicated is set.
type Record struct {
	Name         string        `json:"name,omitempty"`
	Built        Year          `json:"built,omitempty"`
	Established  Year          `json:"established,omitempty"`
	Dedicated    Year          `json:"dedicated,omitempty"`
	Significance string        `json:"significance,omitempty"`
	History      *History      `json:"history,omitempty"`
	Architecture *Architecture `json:"architecture,omitempty"`
	CurrentUse   *CurrentUse   `json:"current_use,omitempty"`
	Management   string        `json:"management,omitempty"`

	// Namesake at the top level is the older layout; History.Namesake wins.
	Namesake *Namesake `json:"namesake,omitempty"`

	// Union only.
	Features *Features `json:"features,omitempty"`
	Events   []string  `json:"events,omitempty"`
}

type History struct {
	Evolution       string          `json:"evolution,omitempty"`
	Origins         string          `json:"origins,omitempty"`
	OriginalPurpose string          `json:"original_purpose,omitempty"`
	Builder         string          `json:"builder,omitempty"`
	Timeline        []TimelineEntry `json:"timeline,omitempty"`
	Significance    string          `json:"significance,omitempty"`
	Namesake        *Namesake       `json:"namesake,omitempty"`
}

type TimelineEntry struct {
	Year  Year   `json:"year"`
	Event string `json:"event"`
}

type Namesake struct {
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Years string `json:"years,omitempty"`
}

type Architecture struct {
	Style     string   `json:"style,omitempty"`
	Features  []string `json:"features,omitempty"`
	Architect string   `json:"architect,omitempty"`
}

type CurrentUse struct {
	Department  string   `json:"department,omitempty"`
	Departments []string `json:"departments,omitempty"`
	Facilities  []string `json:"facilities,omitempty"`
}

type Features struct {
	StudentActivities *StudentActivities `json:"student_activities,omitempty"`
	Facilities        []string           `json:"facilities,omitempty"`
}

type StudentActivities struct {
	Clubs string   `json:"clubs,omitempty"`
	Types []string `json:"types,omitempty"`
}

// Year is a founding date or timeline year. Documents write it either as a
// number (1869) or as free text ("1970s").
type Year string

func (y *Year) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*y = Year(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("year must be a string or a number: %s", string(b))
	}
	*y = Year(n.String())
	return nil
}

// FoundingDate reports the first of built, established and dedicated that is set.
func (r Record) FoundingDate() (verb, date string, ok bool) {
	switch {
	case r.Built != "":
		return "built", string(r.Built), true
	case r.Established != "":
		return "established", string(r.Established), true
	case r.Dedicated != "":
		return "dedicated", string(r.Dedicated), true
	}
	return "", "", false
}

// NamesakeInfo returns the namesake from the history block, falling back to
// the top-level one.
func (r Record) NamesakeInfo() *Namesake {
	if r.History != nil && r.History.Namesake != nil {
		return r.History.Namesake
	}
	return r.Namesake
}

// DisplayName returns the record's name, or fallback when it has none.
func (r Record) DisplayName(fallback string) string {
	if r.Name != "" {
		return r.Name
	}
	return fallback
}
