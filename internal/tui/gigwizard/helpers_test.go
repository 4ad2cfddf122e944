package gigwizard

import (
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/gigwizard/internal/gig"
)

type updater interface {
	Update(msg tea.Msg) tea.Cmd
}

func key(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: s}
}

func typeText(u updater, s string) {
	for _, r := range s {
		u.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// recorder is a DraftUpdater that keeps the merged draft and counts commits.
type recorder struct {
	draft   gig.Draft
	commits int
}

func newRecorder(d gig.Draft) *recorder {
	return &recorder{draft: d}
}

func (r *recorder) update(p gig.Patch) gig.Draft {
	r.commits++
	r.draft = gig.Merge(r.draft, p)
	return r.draft
}
