package gig

import (
	"math"
	"strconv"
	"strings"
)

// Patch is a partial update of a Draft. Nil fields are left untouched.
type Patch struct {
	CategoryID    *string
	SubcategoryID *string
	Title         *string
	WorkType      *WorkType

	LocationCity    *string
	LocationCountry *string
	ServiceRadiusKm *string

	Description *string
	Tags        *[]string

	Package *PackagePatch
	Image   *ImagePatch
}

// PackagePatch updates the package of a single tier.
type PackagePatch struct {
	Tier          Tier
	Title         *string
	Description   *string
	Price         *string
	DeliveryDays  *string
	RevisionCount *string
	Features      *[]string
}

// ImagePatch updates a single image slot.
type ImagePatch struct {
	Index    int
	ImageURL *string
	AltText  *string
}

// Str returns a pointer to s, for building patches.
func Str(s string) *string { return &s }

// Merge returns a copy of d with p applied.
// Selecting a different parent category clears the subcategory, and text
// fields are cut to their maximum length.
func Merge(d Draft, p Patch) Draft {
	out := d.clone()

	if p.CategoryID != nil && *p.CategoryID != out.CategoryID {
		out.CategoryID = *p.CategoryID
		out.SubcategoryID = ""
	}
	if p.SubcategoryID != nil {
		out.SubcategoryID = *p.SubcategoryID
	}
	if p.Title != nil {
		out.Title = truncateRunes(*p.Title, MaxTitleLength)
	}
	if p.WorkType != nil {
		out.WorkType = *p.WorkType
	}
	if p.LocationCity != nil {
		out.LocationCity = *p.LocationCity
	}
	if p.LocationCountry != nil {
		out.LocationCountry = *p.LocationCountry
	}
	if p.ServiceRadiusKm != nil {
		out.ServiceRadiusKm = *p.ServiceRadiusKm
	}
	if p.Description != nil {
		out.Description = truncateRunes(*p.Description, MaxDescriptionLength)
	}
	if p.Tags != nil {
		out.Tags = nil
		for _, t := range *p.Tags {
			out.Tags, _ = AddTag(out.Tags, t)
		}
	}
	if p.Package != nil {
		if i := p.Package.Tier.Index(); i >= 0 {
			out.Packages[i] = mergePackage(out.Packages[i], *p.Package)
		}
	}
	if p.Image != nil && p.Image.Index >= 0 && p.Image.Index < ImageSlots {
		img := &out.Images[p.Image.Index]
		if p.Image.ImageURL != nil {
			img.ImageURL = *p.Image.ImageURL
		}
		if p.Image.AltText != nil {
			img.AltText = *p.Image.AltText
		}
	}

	return out
}

func mergePackage(pkg PackageDraft, p PackagePatch) PackageDraft {
	if p.Title != nil {
		pkg.Title = *p.Title
	}
	if p.Description != nil {
		pkg.Description = *p.Description
	}
	if p.Price != nil {
		pkg.Price = *p.Price
	}
	if p.DeliveryDays != nil {
		pkg.DeliveryDays = *p.DeliveryDays
	}
	if p.RevisionCount != nil {
		pkg.RevisionCount = *p.RevisionCount
	}
	if p.Features != nil {
		pkg.Features = nil
		for _, f := range *p.Features {
			pkg.Features, _ = AddFeature(pkg.Features, f)
		}
	}
	return pkg
}

// NormalizeTag trims and lowercases a tag.
func NormalizeTag(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AddTag appends a normalized tag. It reports false and returns tags
// unchanged when the tag is empty, already present, or the list is full.
func AddTag(tags []string, tag string) ([]string, bool) {
	tag = NormalizeTag(tag)
	if tag == "" || len(tags) >= MaxTags || contains(tags, tag) {
		return tags, false
	}
	return append(append([]string(nil), tags...), tag), true
}

// RemoveTag removes a tag if present.
func RemoveTag(tags []string, tag string) []string {
	tag = NormalizeTag(tag)
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}

// AddFeature appends a trimmed feature line unless it is empty or a duplicate.
func AddFeature(features []string, feature string) ([]string, bool) {
	feature = strings.TrimSpace(feature)
	if feature == "" || contains(features, feature) {
		return features, false
	}
	return append(append([]string(nil), features...), feature), true
}

// RemoveFeature removes the feature at index i.
func RemoveFeature(features []string, i int) []string {
	if i < 0 || i >= len(features) {
		return features
	}
	out := append([]string(nil), features[:i]...)
	return append(out, features[i+1:]...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// parseNumber parses a decimal string, rejecting NaN and infinities. A single
// decimal comma is read as a point.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
