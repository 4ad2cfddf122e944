package gigwizard

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/gigwizard/internal/gig"
	"github.com/mark3labs/gigwizard/internal/tui/theme"
	"github.com/mark3labs/gigwizard/internal/tui/wizard"
)

// ImagesStep collects up to five image URLs with alt text.
type ImagesStep struct {
	draft  gig.Draft
	update DraftUpdater

	urls  [gig.ImageSlots]*wizard.Field
	alts  [gig.ImageSlots]*wizard.Field
	group *wizard.FocusGroup

	width  int
	height int
}

// NewImagesStep creates the images step from the current draft.
func NewImagesStep(d gig.Draft, update DraftUpdater) *ImagesStep {
	s := &ImagesStep{draft: d, update: update}

	items := make([]wizard.Focusable, 0, gig.ImageSlots*2)
	for i := range s.urls {
		s.urls[i] = wizard.NewField(fmt.Sprintf("Image %d URL", i+1), "https://", 500)
		s.alts[i] = wizard.NewField("Alt text", "what the image shows", 120)
		s.urls[i].SetValue(d.Images[i].ImageURL)
		s.alts[i].SetValue(d.Images[i].AltText)
		items = append(items, s.urls[i], s.alts[i])
	}
	s.group = wizard.NewFocusGroup(items...)
	return s
}

// Init focuses the first URL.
func (s *ImagesStep) Init() tea.Cmd {
	return s.group.FocusFirst()
}

// Focus focuses the first URL.
func (s *ImagesStep) Focus() tea.Cmd {
	return s.group.FocusFirst()
}

// FocusLast focuses the last alt text.
func (s *ImagesStep) FocusLast() tea.Cmd {
	return s.group.FocusLast()
}

// Blur removes focus from every slot.
func (s *ImagesStep) Blur() {
	s.group.Blur()
}

// SetSize updates the dimensions for the step.
func (s *ImagesStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	half := width/2 - 2
	for i := range s.urls {
		s.urls[i].SetWidth(half)
		s.alts[i].SetWidth(half)
	}
}

// Draft returns the step's view of the draft.
func (s *ImagesStep) Draft() gig.Draft {
	return s.draft
}

// Update forwards input to the focused slot and commits changes.
func (s *ImagesStep) Update(msg tea.Msg) tea.Cmd {
	cmd := s.group.Update(msg)
	for i := range s.urls {
		p := gig.ImagePatch{Index: i}
		changed := false
		if v := s.urls[i].Value(); v != s.draft.Images[i].ImageURL {
			p.ImageURL = gig.Str(v)
			changed = true
		}
		if v := s.alts[i].Value(); v != s.draft.Images[i].AltText {
			p.AltText = gig.Str(v)
			changed = true
		}
		if changed {
			s.draft = s.update(gig.Patch{Image: &p})
		}
	}
	return cmd
}

// View renders the five slots as URL / alt text rows.
func (s *ImagesStep) View() string {
	st := theme.Current().S()

	rows := []string{
		st.Label.Render("Add up to five images by URL. Empty slots are skipped."),
		st.Muted.Render(fmt.Sprintf("%d of %d slots filled", len(s.draft.FilledImages()), gig.ImageSlots)),
		"",
	}
	for i := range s.urls {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, s.urls[i].View(), "  ", s.alts[i].View()))
	}
	rows = append(rows, "", wizard.RenderHintBar("tab", "next field", "shift+tab", "previous"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
