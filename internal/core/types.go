package core

const (
	BotName       = "CampusBot"
	BotUserAgent  = "CampusBot/0.1"
	RepositoryURL = "https://github.com/sandevgo/campusbot"
	Version       = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// LandmarkID is the knowledge base key of a landmark, e.g. "west_hall".
type LandmarkID string

const (
	RussellSage   LandmarkID = "russell_sage"
	WestHall      LandmarkID = "west_hall"
	RPIUnion      LandmarkID = "rpi_union"
	FolsomLibrary LandmarkID = "folsom_library"
	EMPAC         LandmarkID = "empac"
)

// Landmarks lists the known landmarks in the order they are offered to the user.
var Landmarks = []LandmarkID{RussellSage, WestHall, RPIUnion, FolsomLibrary, EMPAC}

func (id LandmarkID) String() string {
	return string(id)
}

// Facet is the part of a landmark record a follow-up asks about.
type Facet string

const (
	FacetSummary      Facet = "summary"
	FacetHistory      Facet = "history"
	FacetArchitecture Facet = "architecture"
	FacetCurrentUse   Facet = "current_use"
	FacetEvents       Facet = "events"
	FacetFacilities   Facet = "facilities"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
