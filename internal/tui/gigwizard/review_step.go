package gigwizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/glamour/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/gigwizard/internal/gig"
	"github.com/mark3labs/gigwizard/internal/tui/theme"
	"github.com/mark3labs/gigwizard/internal/tui/wizard"
)

// ReviewStep shows a read-only summary of the draft before submission.
type ReviewStep struct {
	viewport viewport.Model
	content  string // Summary markdown
	focused  bool
	width    int
	height   int
}

// NewReviewStep creates the review step for d.
func NewReviewStep(cats gig.Categories, d gig.Draft) *ReviewStep {
	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(10),
	)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	content := SummaryMarkdown(cats, d)
	vp.SetContent(renderMarkdown(content, 60))

	return &ReviewStep{
		viewport: vp,
		content:  content,
		width:    60,
		height:   20,
	}
}

// SummaryMarkdown renders the draft as the markdown shown on the review step.
func SummaryMarkdown(cats gig.Categories, d gig.Draft) string {
	var b strings.Builder

	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = "Untitled gig"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	category := cats.Name(d.CategoryID)
	if category == "" {
		category = d.CategoryID
	}
	if d.SubcategoryID != "" {
		sub := cats.Name(d.SubcategoryID)
		if sub == "" {
			sub = d.SubcategoryID
		}
		category += " › " + sub
	}
	fmt.Fprintf(&b, "**Category:** %s\n\n", category)

	fmt.Fprintf(&b, "**Work type:** %s", d.WorkType.Label())
	if loc := location(d); loc != "" {
		fmt.Fprintf(&b, " (%s)", loc)
	}
	b.WriteString("\n\n")

	if len(d.Tags) > 0 {
		fmt.Fprintf(&b, "**Tags:** %s\n\n", strings.Join(d.Tags, ", "))
	}

	b.WriteString("## Description\n\n")
	b.WriteString(strings.TrimSpace(d.Description))
	b.WriteString("\n\n## Packages\n\n")

	priced := d.PricedPackages()
	if len(priced) == 0 {
		b.WriteString("_No priced packages._\n\n")
	}
	for _, p := range priced {
		price, _ := p.PriceValue()
		name := p.Tier.Label()
		if t := strings.TrimSpace(p.Title); t != "" {
			name += ": " + t
		}
		fmt.Fprintf(&b, "- **%s**, %s %s, %d days delivery, %d revisions\n",
			name, orDefault(p.Currency, gig.DefaultCurrency), formatPrice(price), p.DeliveryDaysValue(), p.RevisionCountValue())
		for _, feat := range p.Features {
			fmt.Fprintf(&b, "  - %s\n", feat)
		}
	}

	fmt.Fprintf(&b, "\n**Images:** %d\n", len(d.FilledImages()))
	return b.String()
}

func location(d gig.Draft) string {
	var parts []string
	for _, s := range []string{d.LocationCity, d.LocationCountry} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	loc := strings.Join(parts, ", ")
	if r, ok := d.ServiceRadiusValue(); ok {
		if loc != "" {
			loc += ", "
		}
		loc += "within " + formatPrice(r) + " km"
	}
	return loc
}

func formatPrice(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}

// renderMarkdown renders markdown with glamour, falling back to plain text.
func renderMarkdown(content string, width int) string {
	if width > 120 {
		width = 120
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSuffix(rendered, "\n")
}

// Init initializes the review step.
func (s *ReviewStep) Init() tea.Cmd {
	return nil
}

// Focus gives the viewport keyboard focus.
func (s *ReviewStep) Focus() tea.Cmd {
	s.focused = true
	return nil
}

// FocusLast is the same as Focus; the viewport is the only element.
func (s *ReviewStep) FocusLast() tea.Cmd {
	return s.Focus()
}

// Blur removes focus from the viewport.
func (s *ReviewStep) Blur() {
	s.focused = false
}

// SetSize updates the dimensions for the review step.
func (s *ReviewStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.viewport.SetWidth(width)

	// Reserve space for the banner and hint bar
	vpHeight := height - 4
	if vpHeight < 5 {
		vpHeight = 5
	}
	s.viewport.SetHeight(vpHeight)
	s.viewport.SetContent(renderMarkdown(s.content, width))
}

// Content returns the summary markdown.
func (s *ReviewStep) Content() string {
	return s.content
}

// Update scrolls the summary. Tab hands focus to the buttons.
func (s *ReviewStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab":
			return func() tea.Msg { return wizard.TabExitForwardMsg{} }
		case "shift+tab":
			return func() tea.Msg { return wizard.TabExitBackwardMsg{} }
		}
	}
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

// View renders the banner, the summary and the hint bar.
func (s *ReviewStep) View() string {
	t := theme.Current()

	banner := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Success)).
		Bold(true).
		Render("✓ Looks good! Save it as a draft or publish it for review.")

	return lipgloss.JoinVertical(lipgloss.Left,
		banner,
		"",
		s.viewport.View(),
		wizard.RenderHintBar(
			"↑↓", "scroll",
			"tab", "buttons",
			"esc", "back",
		),
	)
}
