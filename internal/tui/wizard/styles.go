package wizard

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/gigwizard/internal/tui/theme"
)

// RenderHintBar renders a hint bar with the given key-description pairs.
// Example: RenderHintBar("↑↓", "navigate", "enter", "select", "esc", "back")
// Returns: "↑↓ navigate • enter select • esc back"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}
	t := theme.Current()

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgSubtle)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted))
	sepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.BgSurface1))

	var b strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(" " + sepStyle.Render("•") + " ")
		}
		b.WriteString(keyStyle.Render(pairs[i]) + " " + descStyle.Render(pairs[i+1]))
	}
	return b.String()
}

// NewTextInput creates a text input styled with the current theme.
func NewTextInput(placeholder string, charLimit int) textinput.Model {
	t := theme.Current()

	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = ""
	input.CharLimit = charLimit

	input.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	input.SetWidth(50)
	return input
}

// ErrorLine renders a validation or request error.
func ErrorLine(msg string) string {
	if msg == "" {
		return ""
	}
	return theme.Current().S().Error.Render("✗ " + msg)
}
