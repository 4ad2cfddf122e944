package wizard

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
)

func testOptions() []Option {
	return []Option{
		{ID: "design", Label: "Graphic Design"},
		{ID: "writing", Label: "Writing"},
		{ID: "video", Label: "Video & Animation"},
	}
}

func typeText(p *Picker, s string) {
	for _, r := range s {
		p.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestPicker_EnterSelectsCursor(t *testing.T) {
	t.Parallel()

	p := NewPicker("Category", testOptions())
	p.Focus()
	require.Equal(t, "", p.Selected())

	p.Update(tea.KeyPressMsg{Text: "down"})
	p.Update(tea.KeyPressMsg{Text: "enter"})
	require.Equal(t, "writing", p.Selected())
	require.Equal(t, "Writing", p.SelectedLabel())
}

func TestPicker_CursorStaysInBounds(t *testing.T) {
	t.Parallel()

	p := NewPicker("Category", testOptions())
	p.Focus()
	p.Update(tea.KeyPressMsg{Text: "up"})
	for i := 0; i < 10; i++ {
		p.Update(tea.KeyPressMsg{Text: "down"})
	}
	p.Update(tea.KeyPressMsg{Text: "enter"})
	require.Equal(t, "video", p.Selected())
}

func TestPicker_FilterByLabel(t *testing.T) {
	t.Parallel()

	p := NewPicker("Category", testOptions())
	p.Focus()
	typeText(p, "anim")

	require.Len(t, p.Filtered(), 1)
	require.Equal(t, "video", p.Filtered()[0].ID)

	p.Update(tea.KeyPressMsg{Text: "enter"})
	require.Equal(t, "video", p.Selected())
	require.Len(t, p.Filtered(), 3, "selection clears the filter")
}

func TestPicker_NoMatches(t *testing.T) {
	t.Parallel()

	p := NewPicker("Category", testOptions())
	p.Focus()
	typeText(p, "zzz")

	require.Empty(t, p.Filtered())
	p.Update(tea.KeyPressMsg{Text: "enter"})
	require.Equal(t, "", p.Selected())
	require.Contains(t, p.View(), "No options match")
}

func TestPicker_SetOptionsKeepsKnownSelection(t *testing.T) {
	t.Parallel()

	p := NewPicker("Category", testOptions())
	p.Select("writing")
	p.SetOptions(testOptions()[:2])
	require.Equal(t, "writing", p.Selected())

	p.SetOptions(testOptions()[2:])
	require.Equal(t, "", p.Selected())
}

func TestPicker_IgnoresKeysWhenBlurred(t *testing.T) {
	t.Parallel()

	p := NewPicker("Category", testOptions())
	p.Update(tea.KeyPressMsg{Text: "enter"})
	require.Equal(t, "", p.Selected())
	require.Contains(t, p.View(), "none selected")
}

func TestChoice_LeftRight(t *testing.T) {
	t.Parallel()

	c := NewChoice("Work type", testOptions())
	require.Equal(t, "design", c.Selected())

	c.Update(tea.KeyPressMsg{Text: "right"})
	require.Equal(t, "design", c.Selected(), "blurred choice ignores keys")

	c.Focus()
	c.Update(tea.KeyPressMsg{Text: "right"})
	c.Update(tea.KeyPressMsg{Text: "right"})
	c.Update(tea.KeyPressMsg{Text: "right"})
	require.Equal(t, "video", c.Selected())

	c.Update(tea.KeyPressMsg{Text: "left"})
	require.Equal(t, "writing", c.Selected())

	c.Select("design")
	require.Equal(t, "design", c.Selected())
	c.Select("unknown")
	require.Equal(t, "design", c.Selected())
}
