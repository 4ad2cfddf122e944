// Package gig holds the gig form model, its validation rules and the payload
// sent to the marketplace when a gig is created.
package gig

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Field limits for the form model.
const (
	MaxTitleLength       = 120
	MinTitleLength       = 10
	MaxDescriptionLength = 5000
	MinDescriptionLength = 50
	MaxTags              = 10
	ImageSlots           = 5

	DefaultCurrency      = "EUR"
	DefaultDeliveryDays  = "7"
	DefaultRevisionCount = "1"
)

// WorkType describes where the service is delivered.
type WorkType string

const (
	WorkRemote WorkType = "remote"
	WorkLocal  WorkType = "local"
	WorkHybrid WorkType = "hybrid"
)

// WorkTypes lists the selectable work types in display order.
var WorkTypes = []WorkType{WorkRemote, WorkLocal, WorkHybrid}

// ShowsLocation reports whether location fields apply to this work type.
func (w WorkType) ShowsLocation() bool {
	return w == WorkLocal || w == WorkHybrid
}

// Label returns a human-readable name for the work type.
func (w WorkType) Label() string {
	switch w {
	case WorkRemote:
		return "Remote"
	case WorkLocal:
		return "On location"
	case WorkHybrid:
		return "Hybrid"
	default:
		return string(w)
	}
}

// Tier is one of the three fixed pricing levels.
type Tier string

const (
	TierBasic    Tier = "basic"
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

// Tiers lists the package tiers in slot order.
var Tiers = [3]Tier{TierBasic, TierStandard, TierPremium}

// Index returns the slot index of the tier, or -1 if unknown.
func (t Tier) Index() int {
	for i, tier := range Tiers {
		if tier == t {
			return i
		}
	}
	return -1
}

// Label returns the capitalized tier name.
func (t Tier) Label() string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// PackageDraft is one pricing tier as edited in the form.
// Numeric fields are kept as typed text and coerced at submission.
type PackageDraft struct {
	Tier          Tier
	Title         string
	Description   string
	Price         string
	Currency      string
	DeliveryDays  string
	RevisionCount string
	Features      []string
}

// PriceValue returns the parsed price and whether it is positive.
func (p PackageDraft) PriceValue() (float64, bool) {
	v, ok := parseNumber(p.Price)
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

// DeliveryDaysValue returns the delivery time sent to the API. Blank,
// unparsable or negative input falls back to 7 days; fractions are cut off.
func (p PackageDraft) DeliveryDaysValue() int {
	return wholeOrDefault(p.DeliveryDays, 7)
}

// RevisionCountValue returns the revision count sent to the API. Blank,
// unparsable or negative input falls back to 0.
func (p PackageDraft) RevisionCountValue() int {
	return wholeOrDefault(p.RevisionCount, 0)
}

func wholeOrDefault(s string, def int) int {
	v, ok := parseNumber(s)
	if !ok || v < 0 || v > math.MaxInt32 {
		return def
	}
	return int(v)
}

// ImageSlot is one of the fixed image positions.
type ImageSlot struct {
	ImageURL  string
	AltText   string
	SortOrder int
}

// Draft is the full form model shared by all wizard steps.
type Draft struct {
	CategoryID    string
	SubcategoryID string
	Title         string
	WorkType      WorkType

	LocationCity    string
	LocationCountry string
	ServiceRadiusKm string

	Description string
	Tags        []string

	Packages [3]PackageDraft
	Images   [ImageSlots]ImageSlot
}

// NewDraft returns a draft with empty fields and package defaults.
func NewDraft() Draft {
	d := Draft{WorkType: WorkRemote}
	for i, tier := range Tiers {
		d.Packages[i] = PackageDraft{
			Tier:          tier,
			Currency:      DefaultCurrency,
			DeliveryDays:  DefaultDeliveryDays,
			RevisionCount: DefaultRevisionCount,
		}
	}
	for i := range d.Images {
		d.Images[i].SortOrder = i
	}
	return d
}

// Package returns the package for the given tier.
func (d Draft) Package(t Tier) PackageDraft {
	if i := t.Index(); i >= 0 {
		return d.Packages[i]
	}
	return PackageDraft{}
}

// EffectiveCategoryID is the subcategory when set, otherwise the parent.
func (d Draft) EffectiveCategoryID() string {
	if d.SubcategoryID != "" {
		return d.SubcategoryID
	}
	return d.CategoryID
}

// PricedPackages returns the packages whose price is positive, in tier order.
func (d Draft) PricedPackages() []PackageDraft {
	var out []PackageDraft
	for _, p := range d.Packages {
		if _, ok := p.PriceValue(); ok {
			out = append(out, p)
		}
	}
	return out
}

// FilledImages returns the image slots that have a URL.
func (d Draft) FilledImages() []ImageSlot {
	var out []ImageSlot
	for _, img := range d.Images {
		if strings.TrimSpace(img.ImageURL) != "" {
			out = append(out, img)
		}
	}
	return out
}

// ServiceRadiusValue returns the service radius sent to the API, or false
// when it is blank, unparsable or negative.
func (d Draft) ServiceRadiusValue() (float64, bool) {
	v, ok := parseNumber(d.ServiceRadiusKm)
	if !ok || v < 0 {
		return 0, false
	}
	return v, true
}

// IsBlank reports whether the seller has entered anything yet. Package
// defaults and the default work type do not count.
func (d Draft) IsBlank() bool {
	if d.CategoryID != "" || strings.TrimSpace(d.Title) != "" || strings.TrimSpace(d.Description) != "" || len(d.Tags) > 0 {
		return false
	}
	if d.LocationCity != "" || d.LocationCountry != "" || d.ServiceRadiusKm != "" {
		return false
	}
	for _, p := range d.Packages {
		if p.Title != "" || p.Description != "" || p.Price != "" || len(p.Features) > 0 {
			return false
		}
	}
	return len(d.FilledImages()) == 0
}

// clone returns a copy that shares no slices with d.
func (d Draft) clone() Draft {
	c := d
	c.Tags = append([]string(nil), d.Tags...)
	for i := range c.Packages {
		c.Packages[i].Features = append([]string(nil), d.Packages[i].Features...)
	}
	return c
}

// TextLength counts the runes of s the way the length rules do, ignoring
// leading and trailing whitespace.
func TextLength(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
