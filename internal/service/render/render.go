// Package render turns knowledge records into conversational replies.
package render

import (
	"fmt"
	"strings"

	"github.com/sandevgo/campusbot/internal/core"
	"github.com/sandevgo/campusbot/internal/storage/knowledge"
)

const Unavailable = "I have some information about that landmark, but I'm having trouble accessing it right now."

const (
	defaultInvitation = "Would you like to know more about its history, architecture, or current use?"
	unionInvitation   = "Would you like to know more about its student activities, events, or facilities?"
)

type Renderer struct {
	unionID core.LandmarkID
}

// New returns a renderer that treats unionID as the student union, whose
// replies offer activities, events and facilities instead of the usual facets.
func New(unionID core.LandmarkID) *Renderer {
	return &Renderer{unionID: unionID}
}

func (r *Renderer) IsUnion(id core.LandmarkID) bool {
	return id == r.unionID
}

// Summary is the opening reply for a freshly resolved landmark.
func (r *Renderer) Summary(id core.LandmarkID, rec *knowledge.Record) string {
	if rec == nil {
		return Unavailable
	}

	name := rec.DisplayName("this landmark")
	var parts []string

	if verb, date, ok := rec.FoundingDate(); ok {
		parts = append(parts, fmt.Sprintf("%s was %s in %s.", name, verb, date))
	}
	if rec.Significance != "" {
		parts = append(parts, sentence("It is notable for being "+rec.Significance))
	}

	if r.IsUnion(id) {
		parts = append(parts, unionInvitation)
	} else {
		parts = append(parts, defaultInvitation)
	}
	return joinParts(parts)
}

// Facet renders one facet of a record.
func (r *Renderer) Facet(facet core.Facet, id core.LandmarkID, rec *knowledge.Record) string {
	if rec == nil {
		return Unavailable
	}

	switch facet {
	case core.FacetHistory:
		return History(rec)
	case core.FacetArchitecture:
		return Architecture(rec)
	case core.FacetCurrentUse:
		return CurrentUse(rec)
	case core.FacetEvents:
		return Events(rec)
	case core.FacetFacilities:
		return Facilities(rec)
	default:
		return r.Summary(id, rec)
	}
}

func History(rec *knowledge.Record) string {
	name := rec.DisplayName("This landmark")
	var parts []string

	if h := rec.History; h != nil {
		if h.Evolution != "" {
			parts = append(parts, sentence(h.Evolution))
		}
		if h.Origins != "" {
			parts = append(parts, sentence("Its origins date back to "+h.Origins))
		}
		if h.OriginalPurpose != "" {
			parts = append(parts, sentence(fmt.Sprintf("%s's original purpose was as %s", name, h.OriginalPurpose)))
		}
		if h.Builder != "" {
			parts = append(parts, sentence("It was built by "+h.Builder))
		}
		if len(h.Timeline) > 0 {
			parts = append(parts, "Key events in its history include:")
			for _, e := range h.Timeline {
				parts = append(parts, fmt.Sprintf("- %s: %s", e.Year, e.Event))
			}
		}
		if h.Significance != "" {
			parts = append(parts, sentence("It is historically significant as "+h.Significance))
		}
		if n := rec.NamesakeInfo(); n != nil && n.Name != "" {
			parts = append(parts, namesake(n))
		}
	}

	if len(parts) == 0 {
		return fmt.Sprintf("I don't have detailed historical information about %s, but you can ask about its architecture or current use.", name)
	}
	return joinParts(parts)
}

func Architecture(rec *knowledge.Record) string {
	name := rec.DisplayName("This landmark")
	var parts []string

	if a := rec.Architecture; a != nil {
		if a.Style != "" {
			parts = append(parts, sentence(fmt.Sprintf("%s features %s architecture", name, a.Style)))
		}
		if len(a.Features) > 0 {
			parts = append(parts, sentence("Notable architectural features include: "+strings.Join(a.Features, ", ")))
		}
		if a.Architect != "" {
			parts = append(parts, sentence("It was designed by "+a.Architect))
		}
	}

	if len(parts) == 0 {
		return fmt.Sprintf("I don't have detailed architectural information about %s, but you can ask about its history or current use.", name)
	}
	return joinParts(parts)
}

// CurrentUse merges the current-use block with the union's features, events
// and management, whichever the record has.
func CurrentUse(rec *knowledge.Record) string {
	name := rec.DisplayName("This landmark")
	var parts []string

	if cu := rec.CurrentUse; cu != nil {
		switch {
		case len(cu.Departments) > 0:
			parts = append(parts, sentence(fmt.Sprintf("%s currently houses %s", name, strings.Join(cu.Departments, ", "))))
		case cu.Department != "":
			parts = append(parts, sentence(fmt.Sprintf("%s currently houses the %s", name, cu.Department)))
		}
		if len(cu.Facilities) > 0 {
			parts = append(parts, sentence("Its facilities include: "+strings.Join(cu.Facilities, ", ")))
		}
	}

	if f := rec.Features; f != nil {
		if sa := f.StudentActivities; sa != nil {
			if sa.Clubs != "" {
				parts = append(parts, sentence("It hosts "+sa.Clubs))
			}
			if len(sa.Types) > 0 {
				parts = append(parts, sentence("These include "+strings.Join(sa.Types, ", ")))
			}
		}
		if len(f.Facilities) > 0 {
			parts = append(parts, sentence("Facilities include: "+strings.Join(f.Facilities, ", ")))
		}
	}

	if len(rec.Events) > 0 {
		parts = append(parts, sentence("Regular events include: "+strings.Join(rec.Events, ", ")))
	}
	if rec.Management != "" {
		parts = append(parts, sentence("It is a "+rec.Management))
	}

	if len(parts) == 0 {
		return fmt.Sprintf("I don't have detailed information about %s's current use, but you can ask about its history or architecture.", name)
	}
	return joinParts(parts)
}

func Events(rec *knowledge.Record) string {
	name := rec.DisplayName("The Union")
	var parts []string

	if len(rec.Events) > 0 {
		parts = append(parts, sentence(fmt.Sprintf("%s hosts various events including: %s", name, strings.Join(rec.Events, ", "))))
	}
	if rec.Features != nil && rec.Features.StudentActivities != nil {
		sa := rec.Features.StudentActivities
		if sa.Clubs != "" {
			parts = append(parts, sentence("It supports "+sa.Clubs))
		}
		if len(sa.Types) > 0 {
			parts = append(parts, sentence("These include "+strings.Join(sa.Types, ", ")))
		}
	}

	if len(parts) == 0 {
		return fmt.Sprintf("I don't have information about events at %s, but you can ask about its facilities or history.", name)
	}
	return joinParts(parts)
}

func Facilities(rec *knowledge.Record) string {
	name := rec.DisplayName("The Union")

	if rec.Features == nil || len(rec.Features.Facilities) == 0 {
		return fmt.Sprintf("I don't have information about the facilities at %s, but you can ask about its events or history.", name)
	}
	return sentence(fmt.Sprintf("%s's facilities include: %s", name, strings.Join(rec.Features.Facilities, ", ")))
}

func namesake(n *knowledge.Namesake) string {
	s := "It was named after " + n.Name
	if n.Role != "" {
		s += ", who was " + n.Role
	}
	if n.Years != "" {
		s += ", from " + n.Years
	}
	return sentence(s)
}

// sentence trims s and makes it end with exactly one terminal mark.
func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}

// joinParts joins sentences with spaces and puts "- " list items on their
// own lines.
func joinParts(parts []string) string {
	var sb strings.Builder
	for i, p := range parts {
		if i > 0 {
			if strings.HasPrefix(p, "- ") || strings.HasPrefix(parts[i-1], "- ") {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(p)
	}
	return sb.String()
}
