package service

import (
	"context"

	"github.com/frantrelles/riff-rebel-register/internal/domain"
)

// ArtistServiceInterface defines the catalog operations.
// Used for dependency injection and mocking in tests.
type ArtistServiceInterface interface {
	// ListArtists returns a page of artists matching the filter plus the
	// pagination envelope describing the full filtered set.
	ListArtists(ctx context.Context, filter domain.ArtistFilter, page, limit int) ([]domain.Artist, domain.Pagination, error)
	// GetArtist retrieves a single artist by id; (nil, nil) when absent.
	GetArtist(ctx context.Context, id string) (*domain.Artist, error)
	// CreateArtist validates and stores a new artist, assigning id and timestamps.
	CreateArtist(ctx context.Context, artist *domain.Artist) (*domain.Artist, error)
	// UpdateArtist applies a partial update; (nil, nil) when the id is unknown.
	UpdateArtist(ctx context.Context, id string, patch domain.ArtistPatch) (*domain.Artist, error)
	// DeleteArtist soft-deletes by setting active=false; (nil, nil) when unknown.
	DeleteArtist(ctx context.Context, id string) (*domain.Artist, error)
}
