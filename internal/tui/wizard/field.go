package wizard

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/gigwizard/internal/tui/theme"
)

// Field is a labelled single-line text input.
type Field struct {
	label   string
	input   textinput.Model
	counter bool
	err     string
}

// NewField creates a field. A zero charLimit means unlimited.
func NewField(label, placeholder string, charLimit int) *Field {
	return &Field{
		label: label,
		input: NewTextInput(placeholder, charLimit),
	}
}

// WithCounter shows a "used/limit" character counter next to the label.
func (f *Field) WithCounter() *Field {
	f.counter = true
	return f
}

// Label returns the field label.
func (f *Field) Label() string {
	return f.label
}

// Value returns the raw input value.
func (f *Field) Value() string {
	return f.input.Value()
}

// SetValue replaces the input value.
func (f *Field) SetValue(s string) {
	f.input.SetValue(s)
}

// Focused reports whether the input has focus.
func (f *Field) Focused() bool {
	return f.input.Focused()
}

// SetWidth sets the input width.
func (f *Field) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	f.input.SetWidth(width - 2)
}

// SetError sets an inline message shown under the input.
func (f *Field) SetError(msg string) {
	f.err = msg
}

// Focus focuses the input.
func (f *Field) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur blurs the input.
func (f *Field) Blur() {
	f.input.Blur()
}

// Update forwards msg to the input. Key presses clear the inline error.
func (f *Field) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		f.err = ""
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// View renders the label line and the input line.
func (f *Field) View() string {
	s := theme.Current().S()

	label := s.Label.Render(f.label)
	if f.input.Focused() {
		label = s.Selected.Render(f.label)
	}
	if f.counter && f.input.CharLimit > 0 {
		used := utf8.RuneCountInString(strings.TrimSpace(f.input.Value()))
		label += " " + s.Muted.Render(fmt.Sprintf("%d/%d", used, f.input.CharLimit))
	}

	marker := "  "
	if f.input.Focused() {
		marker = s.Selected.Render("› ")
	}

	lines := []string{label, marker + f.input.View()}
	if f.err != "" {
		lines = append(lines, "  "+ErrorLine(f.err))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// TrimmedValue returns the value without surrounding whitespace.
func (f *Field) TrimmedValue() string {
	return strings.TrimSpace(f.input.Value())
}
