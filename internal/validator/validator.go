package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/frantrelles/riff-rebel-register/internal/domain"
)

// Validator provides validation methods for artist payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateNewArtist validates the fields of a create request. Name and
// genre must be present and non-empty; the remaining fields are optional.
func (v *Validator) ValidateNewArtist(a *domain.Artist) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Name,
			validation.Required.Error("name is required"),
		),
		validation.Field(&a.Genre,
			validation.Required.Error("genre is required"),
		),
		validation.Field(&a.FormationYear,
			validation.Min(1000).Error("formation_year is out of range"),
			validation.Max(9999).Error("formation_year is out of range"),
		),
	)
}

// ValidateArtistPatch validates a partial update. Absent fields are fine,
// but a supplied name or genre must not be empty.
func (v *Validator) ValidateArtistPatch(p *domain.ArtistPatch) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name,
			validation.NilOrNotEmpty.Error("name must not be empty"),
		),
		validation.Field(&p.Genre,
			validation.NilOrNotEmpty.Error("genre must not be empty"),
		),
		validation.Field(&p.FormationYear,
			validation.Min(1000).Error("formation_year is out of range"),
			validation.Max(9999).Error("formation_year is out of range"),
		),
	)
}
