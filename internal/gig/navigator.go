package gig

// Navigator tracks the current wizard step and gates forward moves on
// validation. Moves are strictly sequential.
type Navigator struct {
	step int
	err  error
}

// NewNavigator returns a navigator on the first step.
func NewNavigator() *Navigator {
	return &Navigator{step: FirstStep}
}

// Step returns the current step.
func (n *Navigator) Step() int {
	return n.step
}

// Err returns the validation error from the last refused Next, if any.
func (n *Navigator) Err() error {
	return n.err
}

// IsLast reports whether the navigator is on the final review step.
func (n *Navigator) IsLast() bool {
	return n.step == LastStep
}

// Next validates the current step against d and advances on success.
// On failure the step is unchanged and the error is returned.
func (n *Navigator) Next(d Draft) error {
	if err := Validate(n.step, d); err != nil {
		n.err = err
		return err
	}
	n.err = nil
	if n.step < LastStep {
		n.step++
	}
	return nil
}

// Prev moves back one step and clears any validation error.
func (n *Navigator) Prev() {
	n.err = nil
	if n.step > FirstStep {
		n.step--
	}
}

// Reset returns to the first step.
func (n *Navigator) Reset() {
	n.step = FirstStep
	n.err = nil
}
