package gigwizard

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/gigwizard/internal/gig"
	"github.com/mark3labs/gigwizard/internal/logger"
	"github.com/mark3labs/gigwizard/internal/tui/theme"
	"github.com/mark3labs/gigwizard/internal/tui/wizard"
)

// Focus order of the description step.
const (
	focusDescription = iota
	focusTags
)

// descriptionArea adapts a textarea to wizard.Focusable.
type descriptionArea struct {
	ta textarea.Model
}

func (a *descriptionArea) Focus() tea.Cmd { return a.ta.Focus() }
func (a *descriptionArea) Blur()          { a.ta.Blur() }

func (a *descriptionArea) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.ta, cmd = a.ta.Update(msg)
	return cmd
}

func (a *descriptionArea) View() string {
	t := theme.Current()
	border := t.BorderDefault
	if a.ta.Focused() {
		border = t.BorderFocused
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Render(a.ta.View())
}

// DescriptionStep collects the long description and search tags.
type DescriptionStep struct {
	draft  gig.Draft
	update DraftUpdater

	area  *descriptionArea
	tags  *wizard.Field
	group *wizard.FocusGroup

	note    string // Feedback from the last tag commit
	tmpFile string // Temp file handed to $EDITOR
	width   int
	height  int
}

// NewDescriptionStep creates the description step from the current draft.
func NewDescriptionStep(d gig.Draft, update DraftUpdater) *DescriptionStep {
	ta := textarea.New()
	ta.Placeholder = "Describe what buyers get...\n\n- What do you deliver?\n- What do you need from the buyer?\n- Why choose you?"
	ta.CharLimit = gig.MaxDescriptionLength
	ta.SetHeight(8)
	ta.SetWidth(60)
	ta.SetValue(d.Description)

	s := &DescriptionStep{
		draft:  d,
		update: update,
		area:   &descriptionArea{ta: ta},
		tags:   wizard.NewField("Tags", "type a tag and press enter", 30),
	}
	s.group = wizard.NewFocusGroup(s.area, s.tags)
	return s
}

// Init focuses the textarea.
func (s *DescriptionStep) Init() tea.Cmd {
	return tea.Batch(s.group.FocusFirst(), textarea.Blink)
}

// Focus focuses the textarea.
func (s *DescriptionStep) Focus() tea.Cmd {
	return s.group.FocusFirst()
}

// FocusLast focuses the tag input.
func (s *DescriptionStep) FocusLast() tea.Cmd {
	return s.group.FocusLast()
}

// Blur removes focus from both inputs.
func (s *DescriptionStep) Blur() {
	s.group.Blur()
}

// SetSize updates the size of the description step.
func (s *DescriptionStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.area.ta.SetWidth(width - 4)
	// Leave room for the counter, tags and hint bar
	taHeight := height - 12
	if taHeight < 6 {
		taHeight = 6
	}
	if taHeight > 15 {
		taHeight = 15
	}
	s.area.ta.SetHeight(taHeight)
	s.tags.SetWidth(width)
}

// Draft returns the step's view of the draft.
func (s *DescriptionStep) Draft() gig.Draft {
	return s.draft
}

// Update handles tag commits, the external editor and text input.
func (s *DescriptionStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case DescriptionEditedMsg:
		if s.tmpFile != "" {
			_ = os.Remove(s.tmpFile)
			s.tmpFile = ""
		}
		if msg.Err != nil {
			logger.Warn("Editor failed: %v", msg.Err)
			s.note = "editor failed: " + msg.Err.Error()
			return nil
		}
		s.area.ta.SetValue(strings.TrimRight(msg.Content, "\n"))
		s.commitDescription()
		return nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+e" {
			return s.openEditor()
		}
		if s.group.Index() == focusTags {
			switch msg.String() {
			case "enter", ",":
				s.commitTag()
				return nil
			case "backspace":
				if s.tags.Value() == "" && len(s.draft.Tags) > 0 {
					last := s.draft.Tags[len(s.draft.Tags)-1]
					tags := gig.RemoveTag(s.draft.Tags, last)
					s.draft = s.update(gig.Patch{Tags: &tags})
					s.note = ""
					return nil
				}
			}
		}
	}

	cmd := s.group.Update(msg)
	s.commitDescription()
	return cmd
}

func (s *DescriptionStep) commitDescription() {
	if v := s.area.ta.Value(); v != s.draft.Description {
		s.draft = s.update(gig.Patch{Description: gig.Str(v)})
	}
}

// commitTag adds the tag input to the draft. Duplicates and tags past the
// limit are rejected and left in the input.
func (s *DescriptionStep) commitTag() {
	tag := gig.NormalizeTag(s.tags.Value())
	if tag == "" {
		return
	}
	tags, ok := gig.AddTag(s.draft.Tags, tag)
	if !ok {
		if len(s.draft.Tags) >= gig.MaxTags {
			s.tags.SetError(fmt.Sprintf("at most %d tags", gig.MaxTags))
		} else {
			s.tags.SetError(fmt.Sprintf("%q is already added", tag))
		}
		return
	}
	s.draft = s.update(gig.Patch{Tags: &tags})
	s.tags.SetValue("")
	s.note = ""
}

// openEditor launches $EDITOR with the current description.
func (s *DescriptionStep) openEditor() tea.Cmd {
	if os.Getenv("EDITOR") == "" {
		s.note = "set $EDITOR to write in your own editor"
		return nil
	}

	tmpfile, err := os.CreateTemp("", "gigwizard_description_*.md")
	if err != nil {
		logger.Error("Failed to create temp file: %v", err)
		return nil
	}
	if _, err := tmpfile.WriteString(s.area.ta.Value()); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()
	s.tmpFile = tmpfile.Name()

	cmd, err := editor.Command("gigwizard", tmpfile.Name())
	if err != nil {
		_ = os.Remove(tmpfile.Name())
		s.tmpFile = ""
		return nil
	}

	path := tmpfile.Name()
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			return DescriptionEditedMsg{Err: err}
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return DescriptionEditedMsg{Err: err}
		}
		return DescriptionEditedMsg{Content: string(content)}
	})
}

// View renders the description step.
func (s *DescriptionStep) View() string {
	st := theme.Current().S()

	used := gig.TextLength(s.area.ta.Value())
	counter := st.Muted.Render(fmt.Sprintf("%d/%d (min %d)", used, gig.MaxDescriptionLength, gig.MinDescriptionLength))

	header := st.Label.Render("Description") + " " + counter

	chips := st.Muted.Render("no tags yet")
	if len(s.draft.Tags) > 0 {
		rendered := make([]string, 0, len(s.draft.Tags))
		for _, tag := range s.draft.Tags {
			rendered = append(rendered, st.Selected.Render("#"+tag))
		}
		chips = strings.Join(rendered, " ")
	}
	tagCount := st.Muted.Render(fmt.Sprintf("%d/%d", len(s.draft.Tags), gig.MaxTags))

	parts := []string{
		header,
		s.area.View(),
		"",
		chips + "  " + tagCount,
		s.tags.View(),
	}
	if s.note != "" {
		parts = append(parts, st.Muted.Render(s.note))
	}

	hints := []string{"tab", "next field", "enter/,", "add tag", "backspace", "remove tag"}
	if os.Getenv("EDITOR") != "" {
		hints = append(hints, "ctrl+e", "editor")
	}
	parts = append(parts, "", wizard.RenderHintBar(hints...))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
