package gigwizard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/gigwizard/internal/gig"
	"github.com/mark3labs/gigwizard/internal/gigapi"
	"github.com/mark3labs/gigwizard/internal/tui/theme"
	"github.com/mark3labs/gigwizard/internal/tui/wizard"
)

// maxListedGigs caps the refreshed gig list on the success screen.
const maxListedGigs = 5

// CompletionStep is the success screen shown after a submission. It points
// at the seller gig list and shows that list once it has been refreshed.
type CompletionStep struct {
	result    *gigapi.Result
	listURL   string
	gigs      []gigapi.GigSummary
	awaiting  bool // A refresh is running
	refreshed bool
	refreshOK bool
	buttonBar *wizard.ButtonBar
	width     int
	height    int
}

// NewCompletionStep creates the success screen. baseURL prefixes the
// redirect path; refreshing reports whether a gig list refresh is running.
func NewCompletionStep(result *gigapi.Result, baseURL string, refreshing bool) *CompletionStep {
	buttonBar := wizard.NewButtonBar([]wizard.Button{
		{ID: wizard.ButtonRestart, Label: "Create another", State: wizard.ButtonNormal},
		{ID: wizard.ButtonExit, Label: "Exit", State: wizard.ButtonNormal},
	})
	return &CompletionStep{
		result:    result,
		listURL:   strings.TrimRight(baseURL, "/") + result.RedirectPath,
		awaiting:  refreshing,
		buttonBar: buttonBar,
	}
}

// Init auto-focuses the first button.
func (s *CompletionStep) Init() tea.Cmd {
	s.buttonBar.FocusFirst()
	return nil
}

// Focus focuses the first button.
func (s *CompletionStep) Focus() tea.Cmd {
	s.buttonBar.FocusFirst()
	return nil
}

// FocusLast focuses the last button.
func (s *CompletionStep) FocusLast() tea.Cmd {
	s.buttonBar.FocusLast()
	return nil
}

// Blur is a no-op; the buttons keep focus on this screen.
func (s *CompletionStep) Blur() {}

// SetSize updates the size of the completion step.
func (s *CompletionStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.buttonBar.SetWidth(width)
}

// ListURL returns the seller gig list location.
func (s *CompletionStep) ListURL() string {
	return s.listURL
}

// Update handles the refreshed list and button navigation.
func (s *CompletionStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case RefreshedMsg:
		s.awaiting = false
		s.refreshed = true
		s.refreshOK = msg.Err == nil
		s.gigs = msg.Gigs
		return nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "right":
			if !s.buttonBar.FocusNext() {
				s.buttonBar.FocusFirst()
			}
		case "shift+tab", "left":
			if !s.buttonBar.FocusPrev() {
				s.buttonBar.FocusLast()
			}
		case "enter", " ", "space":
			return s.activateButton(s.buttonBar.FocusedButton())
		}
	}
	return nil
}

func (s *CompletionStep) activateButton(id wizard.ButtonID) tea.Cmd {
	switch id {
	case wizard.ButtonRestart:
		return func() tea.Msg { return RestartWizardMsg{} }
	case wizard.ButtonExit:
		return func() tea.Msg { return ExitWizardMsg{} }
	}
	return nil
}

// View renders the success screen.
func (s *CompletionStep) View() string {
	t := theme.Current()
	st := t.S()
	var b strings.Builder

	headline := "✓ Gig submitted for review!"
	if s.result.Status == gig.StatusDraft {
		headline = "✓ Gig saved as draft!"
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Success)).
		Bold(true).
		Render(headline))
	b.WriteString("\n\n")

	if s.result.Gig != nil && s.result.Gig.ID != "" {
		b.WriteString(st.Muted.Render("Gig ID: "))
		b.WriteString(st.Label.Render(s.result.Gig.ID))
		b.WriteString("\n")
	}
	b.WriteString(st.Muted.Render("Your gigs: "))
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Primary)).
		Bold(true).
		Render(s.listURL))
	b.WriteString("\n\n")

	switch {
	case s.awaiting:
		b.WriteString(st.Muted.Render("Refreshing your gig list..."))
		b.WriteString("\n\n")
	case s.refreshed && !s.refreshOK:
		b.WriteString(st.Muted.Render("Could not refresh your gig list."))
		b.WriteString("\n\n")
	case s.refreshed:
		b.WriteString(st.Label.Render(fmt.Sprintf("You have %d gig(s):", len(s.gigs))))
		for i, g := range s.gigs {
			if i == maxListedGigs {
				b.WriteString("\n" + st.Muted.Render(fmt.Sprintf("  and %d more", len(s.gigs)-maxListedGigs)))
				break
			}
			b.WriteString("\n  • " + g.Title + " " + st.Muted.Render("("+g.Status+")"))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(s.buttonBar.Render())
	b.WriteString("\n")
	b.WriteString(wizard.RenderHintBar("tab/←→", "navigate", "enter", "select"))
	return b.String()
}
