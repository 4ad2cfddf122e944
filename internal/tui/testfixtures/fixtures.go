package testfixtures

import (
	"strings"

	"github.com/mark3labs/gigwizard/internal/gig"
)

// Fixed test values shared by TUI tests
const (
	FixedTitle       = "Logo design for startups"
	FixedBasicPrice  = "150"
	FixedLocale      = "nl"
	FixedRedirectURL = "/nl/dashboard/seller/gigs"
)

// FixedDescription is a description just above the minimum length.
var FixedDescription = strings.Repeat("Clean vector logos. ", 3)

// Categories returns a small two-level category tree.
func Categories() gig.Categories {
	return gig.Categories{
		{
			ID:   "design",
			Name: "Graphic Design",
			Slug: "graphic-design",
			Children: []gig.Category{
				{ID: "logo-design", Name: "Logo Design", Slug: "logo-design", ParentID: "design"},
				{ID: "illustration", Name: "Illustration", Slug: "illustration", ParentID: "design"},
			},
		},
		{
			ID:   "writing",
			Name: "Writing & Translation",
			Slug: "writing-translation",
			Children: []gig.Category{
				{ID: "copywriting", Name: "Copywriting", Slug: "copywriting", ParentID: "writing"},
			},
		},
		{
			ID:   "home",
			Name: "Home Services",
			Slug: "home-services",
		},
	}
}

// EmptyDraft returns a fresh draft with defaults applied.
func EmptyDraft() gig.Draft {
	return gig.NewDraft()
}

// ValidDraft returns the smallest draft that passes every step.
func ValidDraft() gig.Draft {
	return gig.Merge(gig.NewDraft(), gig.Patch{
		CategoryID:  gig.Str("design"),
		Title:       gig.Str(FixedTitle),
		Description: gig.Str(FixedDescription),
		Package:     &gig.PackagePatch{Tier: gig.TierBasic, Price: gig.Str(FixedBasicPrice)},
	})
}

// FullDraft returns a valid draft with every section filled in.
func FullDraft() gig.Draft {
	local := gig.WorkHybrid
	d := ValidDraft()
	for _, p := range []gig.Patch{
		{SubcategoryID: gig.Str("logo-design")},
		{WorkType: &local, LocationCity: gig.Str("Utrecht"), LocationCountry: gig.Str("NL"), ServiceRadiusKm: gig.Str("25")},
		{Tags: &[]string{"logo", "branding"}},
		{Package: &gig.PackagePatch{Tier: gig.TierBasic, Title: gig.Str("Starter"), Features: &[]string{"1 concept"}}},
		{Package: &gig.PackagePatch{Tier: gig.TierPremium, Title: gig.Str("Brand kit"), Price: gig.Str("480"), DeliveryDays: gig.Str("14")}},
		{Image: &gig.ImagePatch{Index: 1, ImageURL: gig.Str("https://cdn.example.com/logo.png"), AltText: gig.Str("Logo sample")}},
	} {
		d = gig.Merge(d, p)
	}
	return d
}
