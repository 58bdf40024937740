package disambig

import (
	"fmt"
	"strings"

	"github.com/sandevgo/campusbot/internal/core"
)

// Candidate is a landmark the model may pick.
type Candidate struct {
	ID   core.LandmarkID
	Name string
}

const promptHeader = `You are analyzing user input for an RPI landmarks chatbot.
The landmarks are:
`

const promptFooter = `
If the input seems to be referring to one of these landmarks but is misspelled or unclear,
identify which landmark they likely mean. If it does not refer to any of them, use null.

Reply with a single JSON object and nothing else:
{
  "landmark": "identified landmark key or null",
  "original": "what they typed",
  "confidence": "high, medium or low",
  "reasoning": "brief explanation"
}`

// BuildPrompt renders the system instruction for the given candidates.
func BuildPrompt(candidates []Candidate) string {
	var sb strings.Builder
	sb.WriteString(promptHeader)
	for _, c := range candidates {
		fmt.Fprintf(&sb, "- %s (key: %s)\n", c.Name, c.ID)
	}
	sb.WriteString(promptFooter)
	return sb.String()
}
