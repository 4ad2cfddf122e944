package gigapi

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/mark3labs/gigwizard/internal/gig"
	"github.com/stretchr/testify/require"
)

// fakeCreator records calls and optionally blocks until released.
type fakeCreator struct {
	calls   atomic.Int32
	release chan struct{}
	started chan struct{}
	err     error
	last    gig.Payload
	mu      sync.Mutex
}

func (f *fakeCreator) CreateGig(ctx context.Context, p gig.Payload) (*CreatedGig, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.last = p
	f.mu.Unlock()
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return &CreatedGig{ID: "gig-1", Status: string(p.Status)}, nil
}

func testCategories() gig.Categories {
	return gig.Categories{
		{ID: "design", Name: "Design", Children: []gig.Category{{ID: "logo-design", Name: "Logo Design", ParentID: "design"}}},
		{ID: "writing", Name: "Writing", Children: []gig.Category{{ID: "copywriting", Name: "Copywriting", ParentID: "writing"}}},
	}
}

func TestSubmitter_PendingSuccess(t *testing.T) {
	fc := &fakeCreator{}
	s := NewSubmitter(fc, "nl", testCategories())

	res, err := s.Submit(context.Background(), gig.StepReview, logoDraft(), gig.StatusPending)

	require.NoError(t, err)
	require.Equal(t, "/nl/dashboard/seller/gigs", res.RedirectPath)
	require.Equal(t, gig.StatusPending, res.Status)
	require.Equal(t, StateIdle, s.State())
	require.Equal(t, int32(1), fc.calls.Load())
	require.Len(t, fc.last.Packages, 1)
	require.Equal(t, gig.TierBasic, fc.last.Packages[0].Tier)
	require.Equal(t, 150.0, fc.last.Packages[0].Price)
	require.Equal(t, "nl", fc.last.Locale)
}

func TestSubmitter_DraftStatus(t *testing.T) {
	fc := &fakeCreator{}
	s := NewSubmitter(fc, "en", testCategories())

	res, err := s.Submit(context.Background(), gig.StepReview, logoDraft(), gig.StatusDraft)

	require.NoError(t, err)
	require.Equal(t, gig.StatusDraft, fc.last.Status)
	require.Equal(t, "/en/dashboard/seller/gigs", res.RedirectPath)
}

func TestSubmitter_ValidationBlocksNetwork(t *testing.T) {
	fc := &fakeCreator{}
	s := NewSubmitter(fc, "nl", testCategories())

	d := gig.Merge(logoDraft(), gig.Patch{Title: gig.Str("Short")})
	_, err := s.Submit(context.Background(), gig.StepReview, d, gig.StatusPending)

	require.ErrorIs(t, err, gig.ErrTitleTooShort)
	require.Equal(t, int32(0), fc.calls.Load())
	require.Equal(t, StateIdle, s.State())
}

func TestSubmitter_ForeignSubcategoryRejected(t *testing.T) {
	fc := &fakeCreator{}
	s := NewSubmitter(fc, "nl", testCategories())

	d := logoDraft()
	d.CategoryID = "writing"
	d.SubcategoryID = "logo-design"
	_, err := s.Submit(context.Background(), gig.StepReview, d, gig.StatusPending)

	require.ErrorIs(t, err, gig.ErrSubcategoryMismatch)
	require.Equal(t, int32(0), fc.calls.Load())

	d.SubcategoryID = "copywriting"
	_, err = s.Submit(context.Background(), gig.StepReview, d, gig.StatusPending)
	require.NoError(t, err)
	require.Equal(t, "copywriting", fc.last.CategoryID)
}

func TestSubmitter_FailureKeepsErrorState(t *testing.T) {
	fc := &fakeCreator{err: &APIError{StatusCode: 500, Message: "boom"}}
	s := NewSubmitter(fc, "nl", testCategories())

	_, err := s.Submit(context.Background(), gig.StepReview, logoDraft(), gig.StatusPending)

	require.EqualError(t, err, "boom")
	require.Equal(t, StateError, s.State())
	require.Equal(t, err, s.Err())

	// Retry is allowed after a failure
	fc.err = nil
	_, err = s.Submit(context.Background(), gig.StepReview, logoDraft(), gig.StatusPending)
	require.NoError(t, err)
	require.Equal(t, StateIdle, s.State())
	require.NoError(t, s.Err())
	require.Equal(t, int32(2), fc.calls.Load())
}

func TestSubmitter_SecondSubmitWhileInFlight(t *testing.T) {
	fc := &fakeCreator{release: make(chan struct{}), started: make(chan struct{})}
	s := NewSubmitter(fc, "nl", testCategories())

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background(), gig.StepReview, logoDraft(), gig.StatusPending)
		done <- err
	}()

	<-fc.started
	require.Equal(t, StateSubmitting, s.State())

	_, err := s.Submit(context.Background(), gig.StepReview, logoDraft(), gig.StatusPending)
	require.True(t, errors.Is(err, ErrSubmissionInFlight))

	close(fc.release)
	require.NoError(t, <-done)
	require.Equal(t, int32(1), fc.calls.Load())
}

func TestStateString(t *testing.T) {
	require.Equal(t, "idle", StateIdle.String())
	require.Equal(t, "submitting", StateSubmitting.String())
	require.Equal(t, "error", StateError.String())
}
