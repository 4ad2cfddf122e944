package gigwizard

import (
	"testing"

	"github.com/mark3labs/gigwizard/internal/gig"
	"github.com/mark3labs/gigwizard/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func newPackagesStep(d gig.Draft) (*PackagesStep, *recorder) {
	rec := newRecorder(d)
	s := NewPackagesStep(rec.draft, rec.update)
	s.SetSize(74, 30)
	s.Init()
	return s, rec
}

func TestPackagesStep_PriceCommitsToActiveTier(t *testing.T) {
	t.Parallel()

	s, rec := newPackagesStep(testfixtures.EmptyDraft())
	require.Equal(t, gig.TierBasic, s.Active())
	require.Error(t, gig.Validate(gig.StepPackages, rec.draft))

	s.forms[0].group.FocusAt(focusPkgPrice)
	typeText(s, testfixtures.FixedBasicPrice)

	require.Equal(t, testfixtures.FixedBasicPrice, rec.draft.Package(gig.TierBasic).Price)
	require.Empty(t, rec.draft.Package(gig.TierStandard).Price)
	require.NoError(t, gig.Validate(gig.StepPackages, rec.draft))
	require.Contains(t, s.View(), "Basic ✓")
}

func TestPackagesStep_SwitchTier(t *testing.T) {
	t.Parallel()

	s, rec := newPackagesStep(testfixtures.EmptyDraft())

	s.Update(key("ctrl+n"))
	require.Equal(t, gig.TierStandard, s.Active())
	typeText(s, "Business")
	require.Equal(t, "Business", rec.draft.Package(gig.TierStandard).Title)
	require.Empty(t, rec.draft.Package(gig.TierBasic).Title)

	s.Update(key("ctrl+n"))
	s.Update(key("ctrl+n"))
	require.Equal(t, gig.TierPremium, s.Active(), "no tier after premium")

	s.Update(key("pgup"))
	require.Equal(t, gig.TierStandard, s.Active())
}

func TestPackagesStep_TabCrossesTiers(t *testing.T) {
	t.Parallel()

	s, _ := newPackagesStep(testfixtures.EmptyDraft())

	s.forms[0].group.FocusAt(focusPkgFeature)
	s.Update(key("tab"))
	require.Equal(t, gig.TierStandard, s.Active())
	require.Equal(t, focusPkgTitle, s.forms[1].group.Index())
	require.Equal(t, -1, s.forms[0].group.Index())

	s.Update(key("shift+tab"))
	require.Equal(t, gig.TierBasic, s.Active())
	require.Equal(t, focusPkgFeature, s.forms[0].group.Index())
}

func TestPackagesStep_Features(t *testing.T) {
	t.Parallel()

	s, rec := newPackagesStep(testfixtures.EmptyDraft())
	s.forms[0].group.FocusAt(focusPkgFeature)

	typeText(s, "Source files")
	s.Update(key("enter"))
	typeText(s, "2 concepts")
	s.Update(key("enter"))
	require.Equal(t, []string{"Source files", "2 concepts"}, rec.draft.Package(gig.TierBasic).Features)
	require.Empty(t, s.forms[0].feature.Value())

	typeText(s, "Source files")
	s.Update(key("enter"))
	require.Len(t, rec.draft.Package(gig.TierBasic).Features, 2)
	require.Contains(t, s.View(), "feature already listed")

	// Clear the input, then remove the last feature
	for range "Source files" {
		s.Update(key("backspace"))
	}
	s.Update(key("backspace"))
	require.Equal(t, []string{"Source files"}, rec.draft.Package(gig.TierBasic).Features)
}
