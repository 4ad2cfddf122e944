// Package gigwizard is the terminal UI that walks a seller through creating
// a gig: basics, description, packages, images and a final review.
package gigwizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/gigwizard/internal/gig"
	"github.com/mark3labs/gigwizard/internal/gigapi"
	"github.com/mark3labs/gigwizard/internal/logger"
	"github.com/mark3labs/gigwizard/internal/tui/theme"
	"github.com/mark3labs/gigwizard/internal/tui/wizard"
)

// Modal layout constants
const (
	modalWidth        = 80                                                       // Total modal width including border
	modalPadding      = 2                                                        // Horizontal padding on each side
	modalBorderWidth  = 1                                                        // Border width on each side
	modalContentWidth = modalWidth - (modalPadding * 2) - (modalBorderWidth * 2) // 74
)

// stepTitles are shown above each step, indexed by step number.
var stepTitles = map[int]string{
	gig.StepBasics:      "Basics",
	gig.StepDescription: "Description",
	gig.StepPackages:    "Packages",
	gig.StepImages:      "Images",
	gig.StepReview:      "Review",
}

// stepComponent is implemented by every wizard step.
type stepComponent interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	Focus() tea.Cmd
	FocusLast() tea.Cmd
	Blur()
}

// Options configures the wizard.
type Options struct {
	Categories gig.Categories
	Submitter  *gigapi.Submitter
	Refresher  gigapi.Refresher // Optional; reloads the gig list after success
	BaseURL    string           // Prefix for the seller gig list link
}

// Outcome is what the wizard produced when it exits.
type Outcome struct {
	Result    *gigapi.Result // Last successful submission, nil if none
	Draft     gig.Draft      // Draft at exit
	Step      int            // Step at exit
	Cancelled bool
}

// WizardModel is the main BubbleTea model for the gig wizard.
type WizardModel struct {
	opts Options
	ctx  context.Context

	nav   *gig.Navigator
	draft gig.Draft
	step  stepComponent

	completion *CompletionStep // Non-nil once a submission succeeded
	result     *gigapi.Result

	submitting bool
	submitErr  string
	cancelled  bool

	buttonBar     *wizard.ButtonBar
	buttonFocused bool

	width  int
	height int
}

// NewWizardModel creates a wizard on the first step with an empty draft.
func NewWizardModel(ctx context.Context, opts Options) *WizardModel {
	return &WizardModel{
		opts:  opts,
		ctx:   ctx,
		nav:   gig.NewNavigator(),
		draft: gig.NewDraft(),
	}
}

// Run is the entry point for the gig wizard.
// It creates a standalone BubbleTea program, runs it, and returns the outcome.
func Run(ctx context.Context, opts Options) (*Outcome, error) {
	if opts.Submitter == nil {
		return nil, fmt.Errorf("wizard needs a submitter")
	}
	if len(opts.Categories) == 0 {
		return nil, fmt.Errorf("wizard needs at least one category")
	}

	m := NewWizardModel(ctx, opts)
	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	wizModel, ok := finalModel.(*WizardModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	return wizModel.Outcome(), nil
}

// Outcome returns the current result of the wizard.
func (m *WizardModel) Outcome() *Outcome {
	return &Outcome{
		Result:    m.result,
		Draft:     m.draft,
		Step:      m.nav.Step(),
		Cancelled: m.cancelled,
	}
}

// Draft returns the current draft.
func (m *WizardModel) Draft() gig.Draft {
	return m.draft
}

// Step returns the current step number.
func (m *WizardModel) Step() int {
	return m.nav.Step()
}

// Init initializes the wizard model.
func (m *WizardModel) Init() tea.Cmd {
	return m.enterStep()
}

// updateDraft is the change-callback handed to every step.
func (m *WizardModel) updateDraft(p gig.Patch) gig.Draft {
	m.draft = gig.Merge(m.draft, p)
	return m.draft
}

// Update handles messages for the wizard.
func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		// Handle button-focused keyboard input
		if m.completion == nil && m.buttonFocused && m.buttonBar != nil {
			switch msg.String() {
			case "tab", "right":
				if !m.buttonBar.FocusNext() {
					m.buttonFocused = false
					m.buttonBar.Blur()
					return m, m.step.Focus()
				}
				return m, nil
			case "shift+tab", "left":
				if !m.buttonBar.FocusPrev() {
					m.buttonFocused = false
					m.buttonBar.Blur()
					return m, m.step.FocusLast()
				}
				return m, nil
			case "enter", " ", "space":
				return m.activateButton(m.buttonBar.FocusedButton())
			}
		}

		// Global keybindings
		switch msg.String() {
		case "ctrl+c":
			m.cancelled = m.result == nil
			return m, tea.Quit
		case "esc":
			if m.completion != nil {
				return m, tea.Quit
			}
			if m.submitting {
				return m, nil
			}
			if m.nav.Step() == gig.FirstStep {
				m.cancelled = true
				return m, tea.Quit
			}
			return m.goBack()
		}

		if m.buttonFocused && m.completion == nil {
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateStepSize()
		return m, nil

	case wizard.TabExitForwardMsg:
		m.focusButtons(false)
		return m, nil

	case wizard.TabExitBackwardMsg:
		m.focusButtons(true)
		return m, nil

	case SubmitResultMsg:
		return m.handleSubmitResult(msg)

	case RestartWizardMsg:
		logger.Debug("Restarting wizard with an empty draft")
		m.nav.Reset()
		m.draft = gig.NewDraft()
		m.completion = nil
		m.submitErr = ""
		return m, m.enterStep()

	case ExitWizardMsg:
		return m, tea.Quit
	}

	// Forward messages to the active screen
	if m.completion != nil {
		return m, m.completion.Update(msg)
	}
	if m.step != nil {
		return m, m.step.Update(msg)
	}
	return m, nil
}

// enterStep builds the component for the navigator's step from the draft.
func (m *WizardModel) enterStep() tea.Cmd {
	switch m.nav.Step() {
	case gig.StepBasics:
		m.step = NewCategoryStep(m.opts.Categories, m.draft, m.updateDraft)
	case gig.StepDescription:
		m.step = NewDescriptionStep(m.draft, m.updateDraft)
	case gig.StepPackages:
		m.step = NewPackagesStep(m.draft, m.updateDraft)
	case gig.StepImages:
		m.step = NewImagesStep(m.draft, m.updateDraft)
	case gig.StepReview:
		m.step = NewReviewStep(m.opts.Categories, m.draft)
	}

	m.buttonFocused = false
	m.buttonBar = m.newButtonBar()
	m.updateStepSize()
	return m.step.Init()
}

func (m *WizardModel) newButtonBar() *wizard.ButtonBar {
	var buttons []wizard.Button
	if m.nav.IsLast() {
		buttons = wizard.CreateSubmitButtons()
	} else {
		buttons = wizard.CreateBackNextButtons(m.nav.Step() > gig.FirstStep, "Next →")
	}
	bar := wizard.NewButtonBar(buttons)
	bar.SetWidth(modalContentWidth)
	return bar
}

func (m *WizardModel) focusButtons(fromEnd bool) {
	if m.buttonBar == nil {
		return
	}
	m.step.Blur()
	m.buttonFocused = true
	if fromEnd {
		m.buttonBar.FocusLast()
	} else {
		m.buttonBar.FocusFirst()
	}
}

// activateButton handles button activation.
func (m *WizardModel) activateButton(id wizard.ButtonID) (tea.Model, tea.Cmd) {
	switch id {
	case wizard.ButtonBack:
		return m.goBack()
	case wizard.ButtonNext:
		return m.goNext()
	case wizard.ButtonDraft:
		return m, m.submit(gig.StatusDraft)
	case wizard.ButtonPublish:
		return m, m.submit(gig.StatusPending)
	}
	return m, nil
}

// goBack moves to the previous step.
func (m *WizardModel) goBack() (tea.Model, tea.Cmd) {
	if m.nav.Step() == gig.FirstStep {
		return m, nil
	}
	m.nav.Prev()
	m.submitErr = ""
	return m, m.enterStep()
}

// goNext validates the current step and advances.
func (m *WizardModel) goNext() (tea.Model, tea.Cmd) {
	if err := m.nav.Next(m.draft); err != nil {
		logger.Debug("Step %d refused: %v", m.nav.Step(), err)
		return m, nil
	}
	return m, m.enterStep()
}

// submit starts a submission with the given status. Only one submission runs
// at a time; presses while one is running are ignored.
func (m *WizardModel) submit(status gig.Status) tea.Cmd {
	if m.submitting {
		return nil
	}
	m.submitting = true
	m.submitErr = ""
	for _, id := range []wizard.ButtonID{wizard.ButtonBack, wizard.ButtonDraft, wizard.ButtonPublish} {
		m.buttonBar.SetDisabled(id, true)
	}

	ctx := m.ctx
	submitter := m.opts.Submitter
	step := m.nav.Step()
	draft := m.draft
	logger.Info("Submitting gig with status %s", status)

	return func() tea.Msg {
		result, err := submitter.Submit(ctx, step, draft, status)
		return SubmitResultMsg{Result: result, Err: err}
	}
}

func (m *WizardModel) handleSubmitResult(msg SubmitResultMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.Err, gigapi.ErrSubmissionInFlight) {
		return m, nil
	}

	m.submitting = false
	for _, id := range []wizard.ButtonID{wizard.ButtonBack, wizard.ButtonDraft, wizard.ButtonPublish} {
		m.buttonBar.SetDisabled(id, false)
	}
	if m.buttonFocused && !m.buttonBar.IsFocused() {
		m.buttonBar.FocusLast()
	}

	if msg.Err != nil {
		logger.Warn("Submission failed: %v", msg.Err)
		m.submitErr = gigapi.UserMessage(msg.Err)
		return m, nil
	}

	m.result = msg.Result
	refresher := m.opts.Refresher
	m.completion = NewCompletionStep(msg.Result, m.opts.BaseURL, refresher != nil)
	m.updateStepSize()
	initCmd := m.completion.Init()
	if refresher == nil {
		return m, initCmd
	}

	ctx := m.ctx
	refresh := func() tea.Msg {
		gigs, err := refresher.ListGigs(ctx)
		if err != nil {
			logger.Warn("Refreshing gig list failed: %v", err)
		}
		return RefreshedMsg{Gigs: gigs, Err: err}
	}
	return m, tea.Batch(initCmd, refresh)
}

// getModalContentSize returns the internal content dimensions for the modal.
func (m *WizardModel) getModalContentSize() (width, height int) {
	width = modalContentWidth

	height = m.height - 4 // Terminal margin
	if height < 24 {
		height = 24
	}
	if height > 48 {
		height = 48
	}
	// Modal chrome: padding, border, title, progress, buttons, hint
	height -= 12
	return width, height
}

func (m *WizardModel) updateStepSize() {
	w, h := m.getModalContentSize()
	if m.step != nil {
		m.step.SetSize(w, h)
	}
	if m.completion != nil {
		m.completion.SetSize(w, h)
	}
}

// View renders the wizard.
func (m *WizardModel) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		// Not ready to render
		view.Content = lipgloss.NewLayer("")
		return view
	}

	centered := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.renderModal(),
	)

	// Draw to canvas using ultraviolet
	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(centered).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// renderModal renders the current screen inside the modal frame.
func (m *WizardModel) renderModal() string {
	t := theme.Current()

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Primary))

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Padding(1, modalPadding).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.BorderDefault))

	if m.completion != nil {
		return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("New Gig - Done"),
			"",
			m.completion.View(),
		))
	}

	step := m.nav.Step()
	title := titleStyle.Render(fmt.Sprintf("New Gig - Step %d of %d: %s", step, gig.LastStep, stepTitles[step]))

	parts := []string{title, m.renderProgress(), "", m.step.View()}

	var errMsg string
	if err := m.nav.Err(); err != nil {
		errMsg = err.Error()
	}
	if m.submitErr != "" {
		errMsg = m.submitErr
	}
	if errMsg != "" {
		parts = append(parts, "", wizard.ErrorLine(errMsg))
	}
	if m.submitting {
		parts = append(parts, "", t.S().Muted.Render("Submitting..."))
	}

	parts = append(parts, "", m.buttonBar.Render(), "", wizard.RenderHintBar(
		"tab", "navigate",
		"esc", "back",
		"ctrl+c", "quit",
	))

	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderProgress renders one marker per step, colored along the theme gradient.
func (m *WizardModel) renderProgress() string {
	t := theme.Current()
	var b strings.Builder
	for s := gig.FirstStep; s <= gig.LastStep; s++ {
		switch {
		case s < m.nav.Step():
			b.WriteString("✓ ")
		case s == m.nav.Step():
			b.WriteString("● ")
		default:
			b.WriteString("○ ")
		}
		b.WriteString(stepTitles[s])
		if s < gig.LastStep {
			b.WriteString("  ")
		}
	}
	return theme.ApplyGradient(b.String(), t.Primary, t.Secondary)
}
