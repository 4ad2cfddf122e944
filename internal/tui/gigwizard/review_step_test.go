package gigwizard

import (
	"testing"

	"github.com/mark3labs/gigwizard/internal/gig"
	"github.com/mark3labs/gigwizard/internal/tui/testfixtures"
	"github.com/mark3labs/gigwizard/internal/tui/wizard"
	"github.com/stretchr/testify/require"
)

func TestSummaryMarkdown_FullDraft(t *testing.T) {
	t.Parallel()

	md := SummaryMarkdown(testfixtures.Categories(), testfixtures.FullDraft())

	require.Contains(t, md, "# "+testfixtures.FixedTitle)
	require.Contains(t, md, "**Category:** Graphic Design › Logo Design")
	require.Contains(t, md, "(Utrecht, NL, within 25 km)")
	require.Contains(t, md, "**Tags:** logo, branding")
	require.Contains(t, md, "- **Basic: Starter**, EUR 150,")
	require.Contains(t, md, "  - 1 concept")
	require.Contains(t, md, "- **Premium: Brand kit**, EUR 480, 14 days delivery")
	require.NotContains(t, md, "Standard", "unpriced tiers are not listed")
	require.Contains(t, md, "**Images:** 1")
}

func TestSummaryMarkdown_ShowsSentNumbers(t *testing.T) {
	t.Parallel()

	hybrid := gig.WorkHybrid
	d := gig.Merge(testfixtures.ValidDraft(), gig.Patch{
		WorkType:        &hybrid,
		LocationCity:    gig.Str("Utrecht"),
		ServiceRadiusKm: gig.Str("-5"),
		Package:         &gig.PackagePatch{Tier: gig.TierBasic, DeliveryDays: gig.Str("abc"), RevisionCount: gig.Str("2.5")},
	})
	md := SummaryMarkdown(testfixtures.Categories(), d)

	require.Contains(t, md, "7 days delivery, 2 revisions")
	require.NotContains(t, md, "abc")
	require.Contains(t, md, "(Utrecht)")
	require.NotContains(t, md, "within")
}

func TestSummaryMarkdown_Minimal(t *testing.T) {
	t.Parallel()

	md := SummaryMarkdown(testfixtures.Categories(), testfixtures.EmptyDraft())

	require.Contains(t, md, "# Untitled gig")
	require.Contains(t, md, "_No priced packages._")
	require.NotContains(t, md, "**Tags:**")
	require.Contains(t, md, "**Images:** 0")
}

func TestReviewStep_TabLeavesToButtons(t *testing.T) {
	t.Parallel()

	s := NewReviewStep(testfixtures.Categories(), testfixtures.ValidDraft())
	s.SetSize(74, 30)

	cmd := s.Update(key("tab"))
	require.NotNil(t, cmd)
	require.IsType(t, wizard.TabExitForwardMsg{}, cmd())

	cmd = s.Update(key("shift+tab"))
	require.NotNil(t, cmd)
	require.IsType(t, wizard.TabExitBackwardMsg{}, cmd())

	require.Contains(t, s.View(), "Looks good!")
	require.Contains(t, s.Content(), "Graphic Design")
}
