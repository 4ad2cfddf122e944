package gigwizard

import (
	"github.com/mark3labs/gigwizard/internal/gig"
	"github.com/mark3labs/gigwizard/internal/gigapi"
)

// DraftUpdater merges a patch into the wizard's draft and returns the result.
// Steps commit every edit through it.
type DraftUpdater func(gig.Patch) gig.Draft

// SubmitResultMsg is sent when a submission finishes.
type SubmitResultMsg struct {
	Result *gigapi.Result
	Err    error
}

// RefreshedMsg is sent when the seller gig list has been reloaded after a
// successful submission.
type RefreshedMsg struct {
	Gigs []gigapi.GigSummary
	Err  error
}

// DescriptionEditedMsg is sent when the external editor returns.
type DescriptionEditedMsg struct {
	Content string
	Err     error
}

// RestartWizardMsg starts a new gig from an empty draft.
type RestartWizardMsg struct{}

// ExitWizardMsg closes the wizard after a successful submission.
type ExitWizardMsg struct{}
