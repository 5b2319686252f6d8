package repository

import (
	"context"

	"github.com/frantrelles/riff-rebel-register/internal/domain"
)

// ArtistRepository defines the CRUD primitives over the artist table.
// Lookup methods return (nil, nil) when no record matches.
type ArtistRepository interface {
	// List returns the records matching every supplied filter, sliced to
	// [offset, offset+limit), together with the total filtered count.
	List(ctx context.Context, filter domain.ArtistFilter, offset, limit int) ([]domain.Artist, int, error)
	// GetByID returns the record with the given id.
	GetByID(ctx context.Context, id string) (*domain.Artist, error)
	// Insert writes a new record; id and timestamps must already be assigned.
	Insert(ctx context.Context, artist *domain.Artist) error
	// Update applies only the supplied patch fields to an existing record,
	// refreshes updated_at, and returns the stored row.
	Update(ctx context.Context, id string, patch domain.ArtistPatch) (*domain.Artist, error)
}
