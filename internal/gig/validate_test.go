package gig

import (
	"strings"
	"testing"
)

func validDraft() Draft {
	d := NewDraft()
	return Merge(d, Patch{
		CategoryID:  Str("design"),
		Title:       Str("Logo design for startups"),
		Description: Str(strings.Repeat("a", 60)),
		Package:     &PackagePatch{Tier: TierBasic, Price: Str("150")},
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		step    int
		patch   Patch
		wantErr error
	}{
		{name: "step 1 valid", step: StepBasics},
		{name: "step 1 missing category", step: StepBasics, patch: Patch{CategoryID: Str("")}, wantErr: ErrCategoryRequired},
		{name: "step 1 short title", step: StepBasics, patch: Patch{Title: Str("Short")}, wantErr: ErrTitleTooShort},
		{name: "step 1 title exactly 10", step: StepBasics, patch: Patch{Title: Str("abcdefghij")}},
		{name: "step 1 title 9 after trim", step: StepBasics, patch: Patch{Title: Str("  abcdefghi  ")}, wantErr: ErrTitleTooShort},
		{name: "step 2 valid", step: StepDescription},
		{name: "step 2 short description", step: StepDescription, patch: Patch{Description: Str(strings.Repeat("a", 49))}, wantErr: ErrDescriptionShort},
		{name: "step 2 description exactly 50", step: StepDescription, patch: Patch{Description: Str(strings.Repeat("a", 50))}},
		{name: "step 3 valid", step: StepPackages},
		{name: "step 3 zero price", step: StepPackages, patch: Patch{Package: &PackagePatch{Tier: TierBasic, Price: Str("0")}}, wantErr: ErrBasicPrice},
		{name: "step 3 negative price", step: StepPackages, patch: Patch{Package: &PackagePatch{Tier: TierBasic, Price: Str("-5")}}, wantErr: ErrBasicPrice},
		{name: "step 3 non-numeric price", step: StepPackages, patch: Patch{Package: &PackagePatch{Tier: TierBasic, Price: Str("cheap")}}, wantErr: ErrBasicPrice},
		{name: "step 3 empty price", step: StepPackages, patch: Patch{Package: &PackagePatch{Tier: TierBasic, Price: Str("")}}, wantErr: ErrBasicPrice},
		{name: "step 3 decimal price", step: StepPackages, patch: Patch{Package: &PackagePatch{Tier: TierBasic, Price: Str("9.99")}}},
		{name: "step 4 never blocks", step: StepImages, patch: Patch{Title: Str("")}},
		{name: "step 5 never blocks", step: StepReview, patch: Patch{Description: Str("")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Merge(validDraft(), tt.patch)
			err := Validate(tt.step, d)
			if err != tt.wantErr {
				t.Errorf("Validate(%d) = %v, want %v", tt.step, err, tt.wantErr)
			}
			if err != nil && err.Error() == "" {
				t.Errorf("Validate(%d) returned empty message", tt.step)
			}
		})
	}
}

func TestValidateAll(t *testing.T) {
	if err := ValidateAll(validDraft()); err != nil {
		t.Fatalf("ValidateAll() unexpected error: %v", err)
	}

	d := Merge(validDraft(), Patch{Description: Str("too short")})
	if err := ValidateAll(d); err != ErrDescriptionShort {
		t.Errorf("ValidateAll() = %v, want %v", err, ErrDescriptionShort)
	}
}
