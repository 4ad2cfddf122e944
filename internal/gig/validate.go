package gig

import (
	"errors"
	"fmt"
)

// Wizard steps, numbered from 1.
const (
	StepBasics      = 1 // Category, title, work type, location
	StepDescription = 2 // Description and tags
	StepPackages    = 3 // Basic/standard/premium packages
	StepImages      = 4 // Image URLs
	StepReview      = 5 // Summary and submit

	FirstStep = StepBasics
	LastStep  = StepReview
)

// Validation errors returned by Validate.
var (
	ErrCategoryRequired = errors.New("please select a category")
	ErrTitleTooShort    = fmt.Errorf("title must be at least %d characters", MinTitleLength)
	ErrDescriptionShort = fmt.Errorf("description must be at least %d characters", MinDescriptionLength)
	ErrBasicPrice       = errors.New("the basic package needs a price greater than 0")

	ErrUnknownCategory     = errors.New("the selected category no longer exists")
	ErrSubcategoryMismatch = errors.New("the subcategory does not belong to the selected category")
)

// Validate checks the fields owned by step. Steps without blocking rules
// always pass.
func Validate(step int, d Draft) error {
	switch step {
	case StepBasics:
		if d.CategoryID == "" {
			return ErrCategoryRequired
		}
		if TextLength(d.Title) < MinTitleLength {
			return ErrTitleTooShort
		}
	case StepDescription:
		if TextLength(d.Description) < MinDescriptionLength {
			return ErrDescriptionShort
		}
	case StepPackages:
		if _, ok := d.Package(TierBasic).PriceValue(); !ok {
			return ErrBasicPrice
		}
	}
	return nil
}

// ValidateAll runs every step's rules in order and returns the first error.
func ValidateAll(d Draft) error {
	for step := FirstStep; step <= LastStep; step++ {
		if err := Validate(step, d); err != nil {
			return err
		}
	}
	return nil
}
