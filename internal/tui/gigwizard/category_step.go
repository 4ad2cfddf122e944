package gigwizard

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/gigwizard/internal/gig"
	"github.com/mark3labs/gigwizard/internal/tui/theme"
	"github.com/mark3labs/gigwizard/internal/tui/wizard"
)

// Focus order of the basics step.
const (
	focusParent = iota
	focusChild
	focusTitle
	focusWorkType
	focusCity
	focusCountry
	focusRadius
)

// CategoryStep collects category, title, work type and location.
type CategoryStep struct {
	cats   gig.Categories
	draft  gig.Draft
	update DraftUpdater

	parent   *wizard.Picker
	child    *wizard.Picker
	title    *wizard.Field
	workType *wizard.Choice
	city     *wizard.Field
	country  *wizard.Field
	radius   *wizard.Field
	group    *wizard.FocusGroup

	width  int
	height int
}

// NewCategoryStep creates the basics step from the current draft.
func NewCategoryStep(cats gig.Categories, d gig.Draft, update DraftUpdater) *CategoryStep {
	s := &CategoryStep{
		cats:   cats,
		draft:  d,
		update: update,
		parent: wizard.NewPicker("Category", categoryOptions(cats.Roots())),
		child:  wizard.NewPicker("Subcategory", nil),
		title: wizard.NewField("Title", "I will design a modern logo for your business", gig.MaxTitleLength).
			WithCounter(),
		workType: wizard.NewChoice("Work type", workTypeOptions()),
		city:     wizard.NewField("City", "e.g. Utrecht", 0),
		country:  wizard.NewField("Country", "e.g. Netherlands", 0),
		radius:   wizard.NewField("Service radius (km)", "e.g. 25", 6),
	}
	s.group = wizard.NewFocusGroup(s.parent, s.child, s.title, s.workType, s.city, s.country, s.radius)

	s.parent.Select(d.CategoryID)
	s.title.SetValue(d.Title)
	s.workType.Select(string(d.WorkType))
	s.city.SetValue(d.LocationCity)
	s.country.SetValue(d.LocationCountry)
	s.radius.SetValue(d.ServiceRadiusKm)
	s.sync()
	return s
}

func categoryOptions(cats []gig.Category) []wizard.Option {
	opts := make([]wizard.Option, 0, len(cats))
	for _, c := range cats {
		opts = append(opts, wizard.Option{ID: c.ID, Label: c.Name})
	}
	return opts
}

func workTypeOptions() []wizard.Option {
	opts := make([]wizard.Option, 0, len(gig.WorkTypes))
	for _, w := range gig.WorkTypes {
		opts = append(opts, wizard.Option{ID: string(w), Label: w.Label()})
	}
	return opts
}

// Init focuses the category picker.
func (s *CategoryStep) Init() tea.Cmd {
	return s.group.FocusFirst()
}

// Focus focuses the first element.
func (s *CategoryStep) Focus() tea.Cmd {
	return s.group.FocusFirst()
}

// FocusLast focuses the last visible element.
func (s *CategoryStep) FocusLast() tea.Cmd {
	return s.group.FocusLast()
}

// Blur removes focus from every element.
func (s *CategoryStep) Blur() {
	s.group.Blur()
}

// SetSize updates the dimensions for the step.
func (s *CategoryStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	rows := height - 16
	if rows > 8 {
		rows = 8
	}
	s.parent.SetSize(width, rows)
	s.child.SetSize(width, rows)
	for _, f := range []*wizard.Field{s.title, s.city, s.country, s.radius} {
		f.SetWidth(width)
	}
}

// Draft returns the step's view of the draft.
func (s *CategoryStep) Draft() gig.Draft {
	return s.draft
}

// Update forwards input to the focused element and commits any change.
func (s *CategoryStep) Update(msg tea.Msg) tea.Cmd {
	cmd := s.group.Update(msg)
	if p, ok := s.collect(); ok {
		s.draft = s.update(p)
		return tea.Batch(cmd, s.sync())
	}
	return cmd
}

// collect builds a patch from widget values that differ from the draft.
func (s *CategoryStep) collect() (gig.Patch, bool) {
	var p gig.Patch
	changed := false

	if id := s.parent.Selected(); id != s.draft.CategoryID {
		p.CategoryID = gig.Str(id)
		changed = true
	} else if id := s.child.Selected(); id != s.draft.SubcategoryID {
		p.SubcategoryID = gig.Str(id)
		changed = true
	}
	if v := s.title.Value(); v != s.draft.Title {
		p.Title = gig.Str(v)
		changed = true
	}
	if w := gig.WorkType(s.workType.Selected()); w != s.draft.WorkType {
		p.WorkType = &w
		changed = true
	}
	if v := s.city.Value(); v != s.draft.LocationCity {
		p.LocationCity = gig.Str(v)
		changed = true
	}
	if v := s.country.Value(); v != s.draft.LocationCountry {
		p.LocationCountry = gig.Str(v)
		changed = true
	}
	if v := s.radius.Value(); v != s.draft.ServiceRadiusKm {
		p.ServiceRadiusKm = gig.Str(v)
		changed = true
	}
	return p, changed
}

// sync refreshes the cascading subcategory list and the conditional
// location fields from the draft.
func (s *CategoryStep) sync() tea.Cmd {
	children := s.cats.ChildrenOf(s.draft.CategoryID)
	s.child.SetOptions(categoryOptions(children))
	s.child.Select(s.draft.SubcategoryID)

	showLocation := s.draft.WorkType.ShowsLocation()
	return tea.Batch(
		s.group.SetHidden(focusChild, len(children) == 0),
		s.group.SetHidden(focusCity, !showLocation),
		s.group.SetHidden(focusCountry, !showLocation),
		s.group.SetHidden(focusRadius, !showLocation),
	)
}

// View renders the basics step.
func (s *CategoryStep) View() string {
	st := theme.Current().S()

	parts := []string{
		lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Current().FgBase)).
			Render("Pick a category and give your gig a clear title:"),
		"",
	}
	items := []wizard.Focusable{s.parent, s.child, s.title, s.workType, s.city, s.country, s.radius}
	for i, item := range items {
		if s.group.Hidden(i) {
			continue
		}
		if i == focusCity {
			parts = append(parts, st.Muted.Render("Where do you work?"))
		}
		parts = append(parts, item.View())
	}

	parts = append(parts, "", wizard.RenderHintBar(
		"tab", "next field",
		"↑↓", "browse",
		"enter", "select",
		"←→", "work type",
	))
	return strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, parts...), "\n")
}
