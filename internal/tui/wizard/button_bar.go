package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/gigwizard/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// ButtonID identifies what a button does when activated.
type ButtonID string

const (
	ButtonNone    ButtonID = ""
	ButtonBack    ButtonID = "back"
	ButtonNext    ButtonID = "next"
	ButtonDraft   ButtonID = "draft"
	ButtonPublish ButtonID = "publish"
	ButtonRestart ButtonID = "restart"
	ButtonExit    ButtonID = "exit"
)

// Button represents a single button in the button bar.
type Button struct {
	ID    ButtonID
	Label string
	State ButtonState
}

// ButtonBar manages a row of buttons with keyboard focus.
// Disabled buttons are skipped when moving focus and cannot be activated.
type ButtonBar struct {
	buttons []Button
	focused int // -1 when the bar has no focus
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focused: -1,
		width:   60,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// Buttons returns the buttons in display order.
func (b *ButtonBar) Buttons() []Button {
	return b.buttons
}

// SetDisabled enables or disables the button with the given id.
func (b *ButtonBar) SetDisabled(id ButtonID, disabled bool) {
	for i := range b.buttons {
		if b.buttons[i].ID != id {
			continue
		}
		if disabled {
			b.buttons[i].State = ButtonDisabled
			if b.focused == i {
				b.focused = -1
				b.FocusFirst()
			}
		} else if b.buttons[i].State == ButtonDisabled {
			b.buttons[i].State = ButtonNormal
		}
	}
}

// IsFocused reports whether any button has focus.
func (b *ButtonBar) IsFocused() bool {
	return b.focused >= 0
}

// FocusFirst focuses the first enabled button.
func (b *ButtonBar) FocusFirst() {
	b.focused = b.nextEnabled(-1, 1)
}

// FocusLast focuses the last enabled button.
func (b *ButtonBar) FocusLast() {
	b.focused = b.nextEnabled(len(b.buttons), -1)
}

// FocusNext moves focus right. Returns false when focus would leave the bar.
func (b *ButtonBar) FocusNext() bool {
	next := b.nextEnabled(b.focused, 1)
	if next < 0 {
		return false
	}
	b.focused = next
	return true
}

// FocusPrev moves focus left. Returns false when focus would leave the bar.
func (b *ButtonBar) FocusPrev() bool {
	prev := b.nextEnabled(b.focused, -1)
	if prev < 0 {
		return false
	}
	b.focused = prev
	return true
}

// Blur removes focus from the bar.
func (b *ButtonBar) Blur() {
	b.focused = -1
}

// FocusedButton returns the id of the focused button, or ButtonNone.
func (b *ButtonBar) FocusedButton() ButtonID {
	if b.focused < 0 || b.focused >= len(b.buttons) {
		return ButtonNone
	}
	if b.buttons[b.focused].State == ButtonDisabled {
		return ButtonNone
	}
	return b.buttons[b.focused].ID
}

func (b *ButtonBar) nextEnabled(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(b.buttons); i += dir {
		if b.buttons[i].State != ButtonDisabled {
			return i
		}
	}
	return -1
}

// Render renders the button bar with proper spacing and styling.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}
	t := theme.Current()

	base := lipgloss.NewStyle().
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	normalStyle := base.
		Foreground(lipgloss.Color(t.FgBase)).
		Background(lipgloss.Color(t.BgSurface0))

	disabledStyle := base.
		Foreground(lipgloss.Color(t.FgMuted)).
		Background(lipgloss.Color(t.BgMantle))

	focusedStyle := base.
		Foreground(lipgloss.Color(t.BgBase)).
		Background(lipgloss.Color(t.BorderFocused)).
		Bold(true)

	var rendered []string
	for i, btn := range b.buttons {
		switch {
		case btn.State == ButtonDisabled:
			rendered = append(rendered, disabledStyle.Render(btn.Label))
		case i == b.focused || btn.State == ButtonFocused:
			rendered = append(rendered, focusedStyle.Render(btn.Label))
		default:
			rendered = append(rendered, normalStyle.Render(btn.Label))
		}
	}

	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, strings.Join(rendered, ""))
}

// CreateBackNextButtons creates standard Back/Next button set.
func CreateBackNextButtons(backEnabled bool, nextLabel string) []Button {
	backState := ButtonNormal
	if !backEnabled {
		backState = ButtonDisabled
	}
	return []Button{
		{ID: ButtonBack, Label: "← Back", State: backState},
		{ID: ButtonNext, Label: nextLabel, State: ButtonNormal},
	}
}

// CreateSubmitButtons creates the Back/Save draft/Publish set for the last step.
func CreateSubmitButtons() []Button {
	return []Button{
		{ID: ButtonBack, Label: "← Back", State: ButtonNormal},
		{ID: ButtonDraft, Label: "Save draft", State: ButtonNormal},
		{ID: ButtonPublish, Label: "Publish", State: ButtonNormal},
	}
}
