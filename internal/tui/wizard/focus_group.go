package wizard

import (
	tea "charm.land/bubbletea/v2"
)

// Focusable is an input element that takes part in Tab navigation.
type Focusable interface {
	Focus() tea.Cmd
	Blur()
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// FocusGroup cycles keyboard focus through a list of elements.
// Tab past the last visible element emits TabExitForwardMsg, Shift+Tab
// before the first emits TabExitBackwardMsg, so the parent can hand focus
// to its button bar.
type FocusGroup struct {
	items  []Focusable
	hidden []bool
	index  int // -1 when nothing is focused
}

// NewFocusGroup creates a group with nothing focused.
func NewFocusGroup(items ...Focusable) *FocusGroup {
	return &FocusGroup{
		items:  items,
		hidden: make([]bool, len(items)),
		index:  -1,
	}
}

// Len returns the number of elements, hidden ones included.
func (g *FocusGroup) Len() int {
	return len(g.items)
}

// Index returns the focused element index, or -1.
func (g *FocusGroup) Index() int {
	return g.index
}

// Focused returns the focused element, or nil.
func (g *FocusGroup) Focused() Focusable {
	if g.index < 0 || g.index >= len(g.items) {
		return nil
	}
	return g.items[g.index]
}

// AtFirst reports whether the focused element is the first visible one.
func (g *FocusGroup) AtFirst() bool {
	return g.index >= 0 && g.visible(g.index, -1) < 0
}

// AtLast reports whether the focused element is the last visible one.
func (g *FocusGroup) AtLast() bool {
	return g.index >= 0 && g.visible(g.index, 1) < 0
}

// Hidden reports whether element i is skipped by navigation.
func (g *FocusGroup) Hidden(i int) bool {
	return i >= 0 && i < len(g.hidden) && g.hidden[i]
}

// SetHidden shows or hides element i. Hiding the focused element moves
// focus to the next visible one.
func (g *FocusGroup) SetHidden(i int, hidden bool) tea.Cmd {
	if i < 0 || i >= len(g.items) {
		return nil
	}
	g.hidden[i] = hidden
	if !hidden || g.index != i {
		return nil
	}
	g.items[i].Blur()
	if next := g.visible(i, 1); next >= 0 {
		return g.FocusAt(next)
	}
	if prev := g.visible(i, -1); prev >= 0 {
		return g.FocusAt(prev)
	}
	g.index = -1
	return nil
}

// FocusFirst focuses the first visible element.
func (g *FocusGroup) FocusFirst() tea.Cmd {
	return g.FocusAt(g.visible(-1, 1))
}

// FocusLast focuses the last visible element.
func (g *FocusGroup) FocusLast() tea.Cmd {
	return g.FocusAt(g.visible(len(g.items), -1))
}

// FocusAt focuses element i and blurs the others.
func (g *FocusGroup) FocusAt(i int) tea.Cmd {
	if i < 0 || i >= len(g.items) || g.hidden[i] {
		return nil
	}
	if g.index >= 0 && g.index != i {
		g.items[g.index].Blur()
	}
	g.index = i
	return g.items[i].Focus()
}

// Blur removes focus from every element.
func (g *FocusGroup) Blur() {
	for _, item := range g.items {
		item.Blur()
	}
	g.index = -1
}

// Update handles Tab navigation and forwards everything else to the
// focused element.
func (g *FocusGroup) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab":
			next := g.visible(g.index, 1)
			if next < 0 {
				return tabExitForward
			}
			return g.FocusAt(next)
		case "shift+tab":
			if g.index < 0 {
				return g.FocusLast()
			}
			prev := g.visible(g.index, -1)
			if prev < 0 {
				return tabExitBackward
			}
			return g.FocusAt(prev)
		}
	}

	if focused := g.Focused(); focused != nil {
		return focused.Update(msg)
	}
	return nil
}

func (g *FocusGroup) visible(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(g.items); i += dir {
		if !g.hidden[i] {
			return i
		}
	}
	return -1
}
