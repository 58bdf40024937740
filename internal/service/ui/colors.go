package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle ANSI 6 (Cyan) for headings and the welcome banner
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle ANSI 2 (Green) for arguments and usage lines
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (Bright Black / Gray) for descriptions and hints
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (Yellow) for flags
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// UserStyle ANSI 4 (Blue) for the "You: " prompt
	UserStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)

	// BotStyle ANSI 5 (Magenta) for the "Bot: " prefix
	BotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
)

// Banner renders the welcome lines shown when a chat starts.
func Banner(title string, lines ...string) string {
	out := TitleStyle.Render(title)
	for _, l := range lines {
		out += "\n" + DescStyle.Render(l)
	}
	return out
}
