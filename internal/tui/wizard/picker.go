package wizard

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/gigwizard/internal/tui/theme"
)

// Option is a selectable entry in a Picker or Choice.
type Option struct {
	ID    string
	Label string
}

// Picker is a filterable single-select list. While focused, typing filters
// the options, up/down moves the cursor and enter selects.
type Picker struct {
	label    string
	options  []Option
	filtered []Option
	cursor   int    // Index in filtered
	selected string // Selected option ID
	search   textinput.Model
	focused  bool
	rows     int // Visible list rows
	width    int
}

// NewPicker creates a picker over options.
func NewPicker(label string, options []Option) *Picker {
	search := NewTextInput("Type to filter...", 60)
	search.Prompt = "Search: "

	p := &Picker{
		label:  label,
		search: search,
		rows:   6,
		width:  60,
	}
	p.SetOptions(options)
	return p
}

// SetOptions replaces the options and clears the filter. The selection is
// kept when it is still one of the options.
func (p *Picker) SetOptions(options []Option) {
	p.options = options
	p.search.SetValue("")
	if p.indexOf(p.selected) < 0 {
		p.selected = ""
	}
	p.filter()
}

// Options returns all options, unfiltered.
func (p *Picker) Options() []Option {
	return p.options
}

// Filtered returns the options matching the current search.
func (p *Picker) Filtered() []Option {
	return p.filtered
}

// Selected returns the selected option ID, or "".
func (p *Picker) Selected() string {
	return p.selected
}

// SelectedLabel returns the label of the selected option, or "".
func (p *Picker) SelectedLabel() string {
	if i := p.indexOf(p.selected); i >= 0 {
		return p.options[i].Label
	}
	return ""
}

// Select marks the option with the given ID as selected. Unknown IDs clear
// the selection.
func (p *Picker) Select(id string) {
	if p.indexOf(id) < 0 {
		p.selected = ""
		return
	}
	p.selected = id
	p.moveCursorToSelected()
}

// SetSize sets the width and number of visible list rows.
func (p *Picker) SetSize(width, rows int) {
	p.width = width
	if rows < 3 {
		rows = 3
	}
	p.rows = rows
	p.search.SetWidth(width - 10)
}

// Focus focuses the search input.
func (p *Picker) Focus() tea.Cmd {
	p.focused = true
	p.moveCursorToSelected()
	return p.search.Focus()
}

// Blur blurs the picker and clears the search.
func (p *Picker) Blur() {
	p.focused = false
	p.search.Blur()
	if p.search.Value() != "" {
		p.search.SetValue("")
		p.filter()
	}
}

// Update handles navigation, selection and filtering.
func (p *Picker) Update(msg tea.Msg) tea.Cmd {
	if !p.focused {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "up", "ctrl+p":
			if p.cursor > 0 {
				p.cursor--
			}
			return nil
		case "down", "ctrl+n":
			if p.cursor < len(p.filtered)-1 {
				p.cursor++
			}
			return nil
		case "enter":
			if p.cursor >= 0 && p.cursor < len(p.filtered) {
				p.selected = p.filtered[p.cursor].ID
				p.search.SetValue("")
				p.filter()
				p.moveCursorToSelected()
			}
			return nil
		}
	}

	var cmd tea.Cmd
	before := p.search.Value()
	p.search, cmd = p.search.Update(msg)
	if p.search.Value() != before {
		p.filter()
	}
	return cmd
}

// View renders the picker. Blurred pickers collapse to a single line.
func (p *Picker) View() string {
	s := theme.Current().S()

	if !p.focused {
		value := s.Muted.Render("none selected")
		if label := p.SelectedLabel(); label != "" {
			value = s.Label.Render(label)
		}
		return s.Label.Render(p.label) + "  " + value
	}

	var b strings.Builder
	b.WriteString(s.Selected.Render(p.label))
	b.WriteString("\n")
	b.WriteString(p.search.View())
	b.WriteString("\n")

	if len(p.filtered) == 0 {
		b.WriteString(s.Muted.Render("  No options match your search"))
		return b.String()
	}

	start, end := p.window()
	t := theme.Current()
	cursorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.BgBase)).
		Background(lipgloss.Color(t.BorderFocused))

	for i := start; i < end; i++ {
		opt := p.filtered[i]
		mark := "  "
		if opt.ID == p.selected {
			mark = "✓ "
		}
		line := truncate(mark+opt.Label, p.width-4)
		if i == p.cursor {
			line = cursorStyle.Render(line)
		} else {
			line = s.Label.Render(line)
		}
		b.WriteString("  " + line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// filter applies the search query with a case-insensitive substring match.
func (p *Picker) filter() {
	query := strings.ToLower(strings.TrimSpace(p.search.Value()))
	if query == "" {
		p.filtered = p.options
	} else {
		p.filtered = make([]Option, 0, len(p.options))
		for _, opt := range p.options {
			if strings.Contains(strings.ToLower(opt.Label), query) ||
				strings.Contains(strings.ToLower(opt.ID), query) {
				p.filtered = append(p.filtered, opt)
			}
		}
	}
	if p.cursor >= len(p.filtered) {
		p.cursor = 0
	}
}

func (p *Picker) moveCursorToSelected() {
	for i, opt := range p.filtered {
		if opt.ID == p.selected {
			p.cursor = i
			return
		}
	}
}

// window returns the visible [start, end) range keeping the cursor in view.
func (p *Picker) window() (int, int) {
	start := 0
	if p.cursor >= p.rows {
		start = p.cursor - p.rows + 1
	}
	end := start + p.rows
	if end > len(p.filtered) {
		end = len(p.filtered)
	}
	return start, end
}

func (p *Picker) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, opt := range p.options {
		if opt.ID == id {
			return i
		}
	}
	return -1
}

func truncate(s string, width int) string {
	if width <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
