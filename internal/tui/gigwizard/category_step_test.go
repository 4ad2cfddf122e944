package gigwizard

import (
	"testing"

	"github.com/mark3labs/gigwizard/internal/gig"
	"github.com/mark3labs/gigwizard/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func TestCategoryStep_ParentChangeClearsSubcategory(t *testing.T) {
	t.Parallel()

	rec := newRecorder(testfixtures.EmptyDraft())
	s := NewCategoryStep(testfixtures.Categories(), rec.draft, rec.update)
	s.Init()

	// First root is Graphic Design
	s.Update(key("enter"))
	require.Equal(t, "design", rec.draft.CategoryID)
	require.False(t, s.group.Hidden(focusChild), "subcategory picker should show for a parent with children")

	s.Update(key("tab"))
	require.Equal(t, focusChild, s.group.Index())
	s.Update(key("down"))
	s.Update(key("enter"))
	require.Equal(t, "illustration", rec.draft.SubcategoryID)

	s.Update(key("shift+tab"))
	s.Update(key("down"))
	s.Update(key("enter"))
	require.Equal(t, "writing", rec.draft.CategoryID)
	require.Empty(t, rec.draft.SubcategoryID, "subcategory must reset when the parent changes")
	require.Empty(t, s.child.Selected())

	options := s.child.Options()
	require.Len(t, options, 1)
	require.Equal(t, "copywriting", options[0].ID)
}

func TestCategoryStep_HidesSubcategoryWithoutChildren(t *testing.T) {
	t.Parallel()

	d := gig.Merge(testfixtures.EmptyDraft(), gig.Patch{CategoryID: gig.Str("home")})
	rec := newRecorder(d)
	s := NewCategoryStep(testfixtures.Categories(), rec.draft, rec.update)

	require.True(t, s.group.Hidden(focusChild))
	require.NotContains(t, s.View(), "Subcategory")
}

func TestCategoryStep_LocationFollowsWorkType(t *testing.T) {
	t.Parallel()

	rec := newRecorder(testfixtures.EmptyDraft())
	s := NewCategoryStep(testfixtures.Categories(), rec.draft, rec.update)
	s.Init()

	require.Equal(t, gig.WorkRemote, rec.draft.WorkType)
	require.True(t, s.group.Hidden(focusCity), "remote gigs have no location")
	require.NotContains(t, s.View(), "Where do you work?")

	s.group.FocusAt(focusWorkType)
	s.Update(key("right"))
	require.Equal(t, gig.WorkLocal, rec.draft.WorkType)
	require.False(t, s.group.Hidden(focusCity))
	require.False(t, s.group.Hidden(focusRadius))
	require.Contains(t, s.View(), "Where do you work?")

	s.Update(key("tab"))
	require.Equal(t, focusCity, s.group.Index())
	typeText(s, "Utrecht")
	require.Equal(t, "Utrecht", rec.draft.LocationCity)

	s.group.FocusAt(focusWorkType)
	s.Update(key("left"))
	require.Equal(t, gig.WorkRemote, rec.draft.WorkType)
	require.True(t, s.group.Hidden(focusCity))
	require.Equal(t, focusWorkType, s.group.Index())
}

func TestCategoryStep_TitleCounter(t *testing.T) {
	t.Parallel()

	rec := newRecorder(testfixtures.EmptyDraft())
	s := NewCategoryStep(testfixtures.Categories(), rec.draft, rec.update)
	s.SetSize(74, 30)
	s.group.FocusAt(focusTitle)

	typeText(s, "Short")
	require.Equal(t, "Short", rec.draft.Title)
	require.Equal(t, 5, rec.commits)
	require.Contains(t, s.View(), "5/120")
}

func TestCategoryStep_RestoresDraft(t *testing.T) {
	t.Parallel()

	d := testfixtures.FullDraft()
	rec := newRecorder(d)
	s := NewCategoryStep(testfixtures.Categories(), rec.draft, rec.update)

	require.Equal(t, "design", s.parent.Selected())
	require.Equal(t, "logo-design", s.child.Selected())
	require.Equal(t, testfixtures.FixedTitle, s.title.Value())
	require.Equal(t, string(gig.WorkHybrid), s.workType.Selected())
	require.Equal(t, "Utrecht", s.city.Value())
	require.Zero(t, rec.commits, "restoring a draft must not commit edits")
}
