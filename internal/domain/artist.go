package domain

import "time"

// Artist represents a music artist record in the catalog.
type Artist struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Genre         string    `json:"genre"`
	FormationYear *int      `json:"formation_year,omitempty"`
	Country       *string   `json:"country,omitempty"`
	Active        bool      `json:"active"`
	Description   *string   `json:"description,omitempty"`
	PopularAlbums []string  `json:"popular_albums"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ArtistPatch carries the fields of a partial update. A nil pointer means
// the field was not supplied and must be left untouched. Only the fields
// listed here are updatable; id and created_at can never be overwritten.
type ArtistPatch struct {
	Name          *string
	Genre         *string
	FormationYear *int
	Country       *string
	Active        *bool
	Description   *string
	PopularAlbums []string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p ArtistPatch) IsEmpty() bool {
	return p.Name == nil && p.Genre == nil && p.FormationYear == nil &&
		p.Country == nil && p.Active == nil && p.Description == nil &&
		p.PopularAlbums == nil
}

// ArtistFilter holds the equality filters of a list query. A nil pointer
// imposes no constraint; supplied filters are combined conjunctively.
type ArtistFilter struct {
	Genre   *string
	Country *string
	Active  *bool
}
