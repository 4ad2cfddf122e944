package gigwizard

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/gigwizard/internal/gig"
	"github.com/mark3labs/gigwizard/internal/tui/theme"
	"github.com/mark3labs/gigwizard/internal/tui/wizard"
)

// Focus order inside a PackageForm.
const (
	focusPkgTitle = iota
	focusPkgDescription
	focusPkgPrice
	focusPkgDelivery
	focusPkgRevisions
	focusPkgFeature
)

// PackageForm edits the package of one tier.
type PackageForm struct {
	tier gig.Tier
	pkg  gig.PackageDraft

	title       *wizard.Field
	description *wizard.Field
	price       *wizard.Field
	delivery    *wizard.Field
	revisions   *wizard.Field
	feature     *wizard.Field
	group       *wizard.FocusGroup
}

// NewPackageForm creates a form for pkg.
func NewPackageForm(pkg gig.PackageDraft) *PackageForm {
	f := &PackageForm{
		tier:        pkg.Tier,
		pkg:         pkg,
		title:       wizard.NewField("Package name", "e.g. "+pkg.Tier.Label()+" logo", 60),
		description: wizard.NewField("What's included", "short summary", 200),
		price:       wizard.NewField("Price ("+pkg.Currency+")", "0 hides this package", 10),
		delivery:    wizard.NewField("Delivery (days)", gig.DefaultDeliveryDays, 3),
		revisions:   wizard.NewField("Revisions", gig.DefaultRevisionCount, 2),
		feature:     wizard.NewField("New feature", "type a feature and press enter", 80),
	}
	f.group = wizard.NewFocusGroup(f.title, f.description, f.price, f.delivery, f.revisions, f.feature)

	f.title.SetValue(pkg.Title)
	f.description.SetValue(pkg.Description)
	f.price.SetValue(pkg.Price)
	f.delivery.SetValue(pkg.DeliveryDays)
	f.revisions.SetValue(pkg.RevisionCount)
	return f
}

func (f *PackageForm) setWidth(width int) {
	for _, field := range []*wizard.Field{f.title, f.description, f.price, f.delivery, f.revisions, f.feature} {
		field.SetWidth(width)
	}
}

// update forwards msg and returns the patch for any changed value.
func (f *PackageForm) update(msg tea.Msg) (tea.Cmd, *gig.PackagePatch) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && f.group.Index() == focusPkgFeature {
		switch keyMsg.String() {
		case "enter":
			return nil, f.commitFeature()
		case "backspace":
			if f.feature.Value() == "" && len(f.pkg.Features) > 0 {
				features := gig.RemoveFeature(f.pkg.Features, len(f.pkg.Features)-1)
				return nil, &gig.PackagePatch{Tier: f.tier, Features: &features}
			}
		}
	}

	cmd := f.group.Update(msg)
	return cmd, f.collect()
}

func (f *PackageForm) commitFeature() *gig.PackagePatch {
	features, ok := gig.AddFeature(f.pkg.Features, f.feature.Value())
	if !ok {
		if strings.TrimSpace(f.feature.Value()) != "" {
			f.feature.SetError("feature already listed")
		}
		return nil
	}
	f.feature.SetValue("")
	return &gig.PackagePatch{Tier: f.tier, Features: &features}
}

func (f *PackageForm) collect() *gig.PackagePatch {
	p := gig.PackagePatch{Tier: f.tier}
	changed := false
	for _, c := range []struct {
		field *wizard.Field
		cur   string
		dst   **string
	}{
		{f.title, f.pkg.Title, &p.Title},
		{f.description, f.pkg.Description, &p.Description},
		{f.price, f.pkg.Price, &p.Price},
		{f.delivery, f.pkg.DeliveryDays, &p.DeliveryDays},
		{f.revisions, f.pkg.RevisionCount, &p.RevisionCount},
	} {
		if v := c.field.Value(); v != c.cur {
			*c.dst = gig.Str(v)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return &p
}

// View renders the form fields and the committed features.
func (f *PackageForm) View() string {
	st := theme.Current().S()

	parts := []string{
		f.title.View(),
		f.description.View(),
		f.price.View(),
		lipgloss.JoinHorizontal(lipgloss.Top, f.delivery.View(), "    ", f.revisions.View()),
	}

	if len(f.pkg.Features) == 0 {
		parts = append(parts, st.Muted.Render("Features: none yet"))
	} else {
		lines := []string{st.Label.Render("Features")}
		for _, feat := range f.pkg.Features {
			lines = append(lines, "  • "+feat)
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	parts = append(parts, f.feature.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// PackagesStep shows one PackageForm per tier, one tier at a time.
type PackagesStep struct {
	draft  gig.Draft
	update DraftUpdater

	forms  [3]*PackageForm
	active int
	width  int
	height int
}

// NewPackagesStep creates the packages step from the current draft.
func NewPackagesStep(d gig.Draft, update DraftUpdater) *PackagesStep {
	s := &PackagesStep{draft: d, update: update}
	for i, tier := range gig.Tiers {
		s.forms[i] = NewPackageForm(d.Package(tier))
	}
	return s
}

// Init focuses the first field of the basic package.
func (s *PackagesStep) Init() tea.Cmd {
	return s.Focus()
}

// Focus focuses the first field of the first tier.
func (s *PackagesStep) Focus() tea.Cmd {
	return s.activate(0, false)
}

// FocusLast focuses the last field of the last tier.
func (s *PackagesStep) FocusLast() tea.Cmd {
	return s.activate(len(s.forms)-1, true)
}

// Blur removes focus from every form.
func (s *PackagesStep) Blur() {
	for _, f := range s.forms {
		f.group.Blur()
	}
}

// SetSize updates the dimensions for the step.
func (s *PackagesStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	for _, f := range s.forms {
		f.setWidth(width)
	}
}

// Active returns the tier being edited.
func (s *PackagesStep) Active() gig.Tier {
	return s.forms[s.active].tier
}

// Draft returns the step's view of the draft.
func (s *PackagesStep) Draft() gig.Draft {
	return s.draft
}

func (s *PackagesStep) activate(i int, last bool) tea.Cmd {
	s.forms[s.active].group.Blur()
	s.active = i
	if last {
		return s.forms[i].group.FocusLast()
	}
	return s.forms[i].group.FocusFirst()
}

// Update handles tier switching and forwards input to the active form.
// Tab past the last field of a tier continues in the next tier.
func (s *PackagesStep) Update(msg tea.Msg) tea.Cmd {
	form := s.forms[s.active]

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "ctrl+n", "pgdown":
			if s.active < len(s.forms)-1 {
				return s.activate(s.active+1, false)
			}
			return nil
		case "ctrl+p", "pgup":
			if s.active > 0 {
				return s.activate(s.active-1, false)
			}
			return nil
		case "tab":
			if form.group.AtLast() && s.active < len(s.forms)-1 {
				return s.activate(s.active+1, false)
			}
		case "shift+tab":
			if form.group.AtFirst() && s.active > 0 {
				return s.activate(s.active-1, true)
			}
		}
	}

	cmd, patch := form.update(msg)
	if patch != nil {
		s.draft = s.update(gig.Patch{Package: patch})
		form.pkg = s.draft.Package(form.tier)
	}
	return cmd
}

// View renders the tier tabs and the active form.
func (s *PackagesStep) View() string {
	t := theme.Current()
	st := t.S()

	activeTab := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color(t.BgBase)).
		Background(lipgloss.Color(t.Primary)).
		Bold(true)
	tab := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color(t.FgSubtle))

	tabs := make([]string, 0, len(s.forms))
	for i, f := range s.forms {
		label := f.tier.Label()
		if _, ok := s.draft.Package(f.tier).PriceValue(); ok {
			label += " ✓"
		}
		if i == s.active {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, tab.Render(label))
		}
	}

	note := "Only packages with a price above 0 are published."
	if s.active == 0 {
		note = "The basic package needs a price. " + note
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(tabs, " "),
		st.Muted.Render(note),
		"",
		s.forms[s.active].View(),
		"",
		wizard.RenderHintBar(
			"tab", "next field",
			"ctrl+n/p", "switch package",
			"enter", "add feature",
		),
	)
}
