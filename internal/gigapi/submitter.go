package gigapi

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mark3labs/gigwizard/internal/gig"
	"github.com/mark3labs/gigwizard/internal/logger"
)

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission has not finished.
var ErrSubmissionInFlight = errors.New("a submission is already in progress")

// State is the submission state shown by the wizard.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateError
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// GigCreator is the network side of a submission.
type GigCreator interface {
	CreateGig(ctx context.Context, p gig.Payload) (*CreatedGig, error)
}

// Refresher reloads the seller gig list after a successful submission.
type Refresher interface {
	ListGigs(ctx context.Context) ([]GigSummary, error)
}

// Result describes a successful submission.
type Result struct {
	Gig          *CreatedGig
	Status       gig.Status
	RedirectPath string // Seller gig list route for the locale
}

// SellerGigsPath returns the dashboard route listing the seller's gigs.
func SellerGigsPath(locale string) string {
	return fmt.Sprintf("/%s/dashboard/seller/gigs", locale)
}

// Submitter turns drafts into API calls, one at a time.
type Submitter struct {
	creator    GigCreator
	locale     string
	categories gig.Categories

	mu    sync.Mutex
	state State
	err   error
}

// NewSubmitter creates a Submitter posting through creator. Drafts are
// checked against categories before they are sent.
func NewSubmitter(creator GigCreator, locale string, categories gig.Categories) *Submitter {
	return &Submitter{creator: creator, locale: locale, categories: categories}
}

// State returns the current submission state.
func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the error of the last failed submission.
func (s *Submitter) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Submit validates d against the step rules and the category tree, builds the payload for status and posts it once.
// currentStep is the step the user submitted from; its rules run first so the
// error matches what is on screen. Calls made while a submission is running
// return ErrSubmissionInFlight without touching the network.
func (s *Submitter) Submit(ctx context.Context, currentStep int, d gig.Draft, status gig.Status) (*Result, error) {
	if err := gig.Validate(currentStep, d); err != nil {
		return nil, err
	}
	if err := gig.ValidateAll(d); err != nil {
		return nil, err
	}
	if err := s.categories.CheckDraft(d); err != nil {
		return nil, err
	}

	payload := gig.BuildPayload(d, status, s.locale)
	if err := payload.Check(); err != nil {
		return nil, err
	}

	if !s.begin() {
		logger.Debug("Ignoring submit while another submission is running")
		return nil, ErrSubmissionInFlight
	}

	created, err := s.creator.CreateGig(ctx, payload)
	s.finish(err)
	if err != nil {
		return nil, err
	}

	return &Result{
		Gig:          created,
		Status:       status,
		RedirectPath: SellerGigsPath(s.locale),
	}, nil
}

// begin moves to the submitting state, reporting false if already there.
func (s *Submitter) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting {
		return false
	}
	s.state = StateSubmitting
	s.err = nil
	return true
}

func (s *Submitter) finish(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateError
		s.err = err
		return
	}
	s.state = StateIdle
}
