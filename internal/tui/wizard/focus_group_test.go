package wizard

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
)

func newTestGroup() (*FocusGroup, []*Field) {
	fields := []*Field{
		NewField("First", "", 0),
		NewField("Second", "", 0),
		NewField("Third", "", 0),
	}
	return NewFocusGroup(fields[0], fields[1], fields[2]), fields
}

func TestFocusGroup_TabCyclesThenExits(t *testing.T) {
	t.Parallel()

	g, fields := newTestGroup()
	g.FocusFirst()
	require.Equal(t, 0, g.Index())
	require.True(t, fields[0].Focused())

	g.Update(tea.KeyPressMsg{Text: "tab"})
	require.Equal(t, 1, g.Index())
	require.False(t, fields[0].Focused(), "previous field should blur")
	require.True(t, fields[1].Focused())

	g.Update(tea.KeyPressMsg{Text: "tab"})
	cmd := g.Update(tea.KeyPressMsg{Text: "tab"})
	require.NotNil(t, cmd)
	require.IsType(t, TabExitForwardMsg{}, cmd())
	require.Equal(t, 2, g.Index(), "focus stays put until the parent blurs the group")
}

func TestFocusGroup_AtFirstAtLast(t *testing.T) {
	t.Parallel()

	g, _ := newTestGroup()
	require.False(t, g.AtFirst(), "blurred group is at neither end")
	require.False(t, g.AtLast())

	g.FocusFirst()
	require.True(t, g.AtFirst())
	require.False(t, g.AtLast())

	g.SetHidden(2, true)
	g.FocusAt(1)
	require.True(t, g.AtLast(), "hidden trailing elements are ignored")
}

func TestFocusGroup_ShiftTabExitsBackward(t *testing.T) {
	t.Parallel()

	g, _ := newTestGroup()
	g.FocusFirst()

	cmd := g.Update(tea.KeyPressMsg{Text: "shift+tab"})
	require.NotNil(t, cmd)
	require.IsType(t, TabExitBackwardMsg{}, cmd())
}

func TestFocusGroup_SkipsHidden(t *testing.T) {
	t.Parallel()

	g, fields := newTestGroup()
	g.SetHidden(1, true)
	g.FocusFirst()

	g.Update(tea.KeyPressMsg{Text: "tab"})
	require.Equal(t, 2, g.Index())
	require.True(t, fields[2].Focused())

	g.Update(tea.KeyPressMsg{Text: "shift+tab"})
	require.Equal(t, 0, g.Index())
}

func TestFocusGroup_HidingFocusedMovesFocus(t *testing.T) {
	t.Parallel()

	g, fields := newTestGroup()
	g.FocusAt(2)
	g.SetHidden(2, true)

	require.Equal(t, 1, g.Index())
	require.False(t, fields[2].Focused())
	require.True(t, fields[1].Focused())
}

func TestFocusGroup_ForwardsKeysToFocused(t *testing.T) {
	t.Parallel()

	g, fields := newTestGroup()
	g.FocusAt(1)
	g.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	require.Equal(t, "", fields[0].Value())
	require.Equal(t, "x", fields[1].Value())
}

func TestFocusGroup_Blur(t *testing.T) {
	t.Parallel()

	g, fields := newTestGroup()
	g.FocusLast()
	require.Equal(t, 2, g.Index())

	g.Blur()
	require.Equal(t, -1, g.Index())
	require.Nil(t, g.Focused())
	for _, f := range fields {
		require.False(t, f.Focused())
	}
}
