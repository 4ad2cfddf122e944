package wizard

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/gigwizard/internal/tui/theme"
)

// Choice is a horizontal single-select row, changed with left/right.
type Choice struct {
	label   string
	options []Option
	index   int
	focused bool
}

// NewChoice creates a choice with the first option selected.
func NewChoice(label string, options []Option) *Choice {
	return &Choice{label: label, options: options}
}

// Selected returns the selected option ID.
func (c *Choice) Selected() string {
	if c.index < 0 || c.index >= len(c.options) {
		return ""
	}
	return c.options[c.index].ID
}

// Select selects the option with the given ID. Unknown IDs are ignored.
func (c *Choice) Select(id string) {
	for i, opt := range c.options {
		if opt.ID == id {
			c.index = i
			return
		}
	}
}

// Focus focuses the choice.
func (c *Choice) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur blurs the choice.
func (c *Choice) Blur() {
	c.focused = false
}

// Update moves the selection with left/right (h/l) and space.
func (c *Choice) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !c.focused || len(c.options) == 0 {
		return nil
	}
	switch keyMsg.String() {
	case "left", "h":
		if c.index > 0 {
			c.index--
		}
	case "right", "l":
		if c.index < len(c.options)-1 {
			c.index++
		}
	case "space", " ":
		c.index = (c.index + 1) % len(c.options)
	}
	return nil
}

// View renders the label and the options on one line.
func (c *Choice) View() string {
	s := theme.Current().S()

	label := s.Label.Render(c.label)
	if c.focused {
		label = s.Selected.Render(c.label)
	}

	parts := make([]string, 0, len(c.options))
	for i, opt := range c.options {
		if i == c.index {
			style := s.Label
			if c.focused {
				style = s.Selected
			}
			parts = append(parts, style.Render("(•) "+opt.Label))
			continue
		}
		parts = append(parts, s.Muted.Render("( ) "+opt.Label))
	}
	return label + "\n  " + strings.Join(parts, "  ")
}
