package gig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Status is the server-side status requested for a new gig.
type Status string

const (
	StatusDraft   Status = "draft"
	StatusPending Status = "pending"
)

// Payload is the JSON body of the gig creation request.
// Optional fields are pointers or omitempty strings so blank values are left
// out of the request entirely.
type Payload struct {
	Title           string           `json:"title" validate:"required,min=10,max=120"`
	Description     string           `json:"description" validate:"required,min=50,max=5000"`
	CategoryID      string           `json:"categoryId" validate:"required"`
	Tags            []string         `json:"tags" validate:"max=10,dive,required"`
	WorkType        WorkType         `json:"workType" validate:"oneof=remote local hybrid"`
	LocationCity    string           `json:"locationCity,omitempty"`
	LocationCountry string           `json:"locationCountry,omitempty"`
	ServiceRadiusKm *float64         `json:"serviceRadiusKm,omitempty" validate:"omitempty,gte=0"`
	Status          Status           `json:"status" validate:"oneof=pending draft"`
	Locale          string           `json:"locale" validate:"required"`
	Packages        []PackagePayload `json:"packages" validate:"min=1,dive"`
	Images          []ImagePayload   `json:"images" validate:"dive"`
}

// PackagePayload is a priced tier as sent to the API.
type PackagePayload struct {
	Tier          Tier     `json:"tier" validate:"oneof=basic standard premium"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" validate:"gt=0"`
	Currency      string   `json:"currency" validate:"len=3"`
	DeliveryDays  int      `json:"deliveryDays" validate:"gte=0"`
	RevisionCount int      `json:"revisionCount" validate:"gte=0"`
	Features      []string `json:"features"`
}

// ImagePayload is a filled image slot as sent to the API.
type ImagePayload struct {
	ImageURL  string `json:"imageUrl" validate:"required"`
	AltText   string `json:"altText"`
	SortOrder int    `json:"sortOrder" validate:"gte=0"`
}

var validate = validator.New()

// BuildPayload converts a draft into the request body.
// Packages without a positive price and images without a URL are dropped;
// image sort order is renumbered over the remaining images. Numeric fields
// that do not parse fall back to their defaults, so the result always passes
// Check for a draft that passes ValidateAll.
func BuildPayload(d Draft, status Status, locale string) Payload {
	p := Payload{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		CategoryID:  d.EffectiveCategoryID(),
		Tags:        append([]string{}, d.Tags...),
		WorkType:    d.WorkType,
		Status:      status,
		Locale:      locale,
		Packages:    []PackagePayload{},
		Images:      []ImagePayload{},
	}
	if p.WorkType == "" {
		p.WorkType = WorkRemote
	}

	p.LocationCity = strings.TrimSpace(d.LocationCity)
	p.LocationCountry = strings.TrimSpace(d.LocationCountry)
	if v, ok := d.ServiceRadiusValue(); ok {
		p.ServiceRadiusKm = &v
	}

	for _, pkg := range d.Packages {
		price, ok := pkg.PriceValue()
		if !ok {
			continue
		}
		currency := pkg.Currency
		if currency == "" {
			currency = DefaultCurrency
		}
		features := pkg.Features
		if features == nil {
			features = []string{}
		}
		p.Packages = append(p.Packages, PackagePayload{
			Tier:          pkg.Tier,
			Title:         strings.TrimSpace(pkg.Title),
			Description:   strings.TrimSpace(pkg.Description),
			Price:         price,
			Currency:      currency,
			DeliveryDays:  pkg.DeliveryDaysValue(),
			RevisionCount: pkg.RevisionCountValue(),
			Features:      append([]string{}, features...),
		})
	}

	for _, img := range d.FilledImages() {
		p.Images = append(p.Images, ImagePayload{
			ImageURL:  strings.TrimSpace(img.ImageURL),
			AltText:   strings.TrimSpace(img.AltText),
			SortOrder: len(p.Images),
		})
	}

	return p
}

// Check validates the payload shape before it is sent.
func (p Payload) Check() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid gig payload: field %s failed %q", fe.Namespace(), fe.Tag())
	}
	return fmt.Errorf("invalid gig payload: %w", err)
}
