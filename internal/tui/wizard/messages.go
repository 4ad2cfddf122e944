package wizard

import tea "charm.land/bubbletea/v2"

// TabExitForwardMsg is sent when Tab is pressed on the last focusable
// element of a step. The wizard moves focus to the button bar.
type TabExitForwardMsg struct{}

// TabExitBackwardMsg is sent when Shift+Tab is pressed on the first
// focusable element of a step. The wizard focuses the last button.
type TabExitBackwardMsg struct{}

func tabExitForward() tea.Msg  { return TabExitForwardMsg{} }
func tabExitBackward() tea.Msg { return TabExitBackwardMsg{} }
