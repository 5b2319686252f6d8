package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/frantrelles/riff-rebel-register/internal/domain"
	"github.com/frantrelles/riff-rebel-register/internal/logger"
	"github.com/frantrelles/riff-rebel-register/internal/metrics"
	"github.com/frantrelles/riff-rebel-register/internal/repository"
	"github.com/frantrelles/riff-rebel-register/internal/validator"
)

// ArtistService implements the catalog operations over the artist repository.
type ArtistService struct {
	repo         repository.ArtistRepository
	validator    *validator.Validator
	defaultLimit int
	maxLimit     int
}

// NewArtistService creates a new ArtistService.
func NewArtistService(repo repository.ArtistRepository, v *validator.Validator, defaultLimit, maxLimit int) *ArtistService {
	return &ArtistService{
		repo:         repo,
		validator:    v,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// ListArtists returns the page of artists matching the filter together with
// the pagination envelope. Page and limit are clamped to sane bounds.
func (s *ArtistService) ListArtists(ctx context.Context, filter domain.ArtistFilter, page, limit int) ([]domain.Artist, domain.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	offset := (page - 1) * limit
	artists, total, err := s.repo.List(ctx, filter, offset, limit)
	if err != nil {
		metrics.ObserveArtistOperation("list", "error")
		return nil, domain.Pagination{}, fmt.Errorf("list artists: %w", err)
	}

	metrics.ObserveArtistOperation("list", "success")
	metrics.ArtistsListed.Observe(float64(len(artists)))

	return artists, domain.NewPagination(page, limit, total), nil
}

// GetArtist retrieves a single artist by id. Returns (nil, nil) when absent.
func (s *ArtistService) GetArtist(ctx context.Context, id string) (*domain.Artist, error) {
	artist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		metrics.ObserveArtistOperation("get", "error")
		return nil, fmt.Errorf("get artist: %w", err)
	}
	if artist == nil {
		metrics.ObserveArtistOperation("get", "not_found")
		return nil, nil
	}

	metrics.ObserveArtistOperation("get", "success")
	return artist, nil
}

// CreateArtist validates the payload, assigns id and timestamps, and stores
// the record. Validation failures are returned unwrapped for the handler to
// classify.
func (s *ArtistService) CreateArtist(ctx context.Context, artist *domain.Artist) (*domain.Artist, error) {
	if err := s.validator.ValidateNewArtist(artist); err != nil {
		metrics.ObserveArtistOperation("create", "validation_error")
		return nil, err
	}

	now := time.Now().UTC()
	artist.ID = uuid.New().String()
	artist.CreatedAt = now
	artist.UpdatedAt = now
	if artist.PopularAlbums == nil {
		artist.PopularAlbums = []string{}
	}

	if err := s.repo.Insert(ctx, artist); err != nil {
		metrics.ObserveArtistOperation("create", "error")
		return nil, fmt.Errorf("create artist: %w", err)
	}

	metrics.ObserveArtistOperation("create", "success")
	logger.WithArtistID(artist.ID).Info("Artist created",
		slog.String("genre", artist.Genre))

	return artist, nil
}

// UpdateArtist validates and applies a partial update, refreshing updated_at.
// Returns (nil, nil) when the id is unknown.
func (s *ArtistService) UpdateArtist(ctx context.Context, id string, patch domain.ArtistPatch) (*domain.Artist, error) {
	if err := s.validator.ValidateArtistPatch(&patch); err != nil {
		metrics.ObserveArtistOperation("update", "validation_error")
		return nil, err
	}

	artist, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		metrics.ObserveArtistOperation("update", "error")
		return nil, fmt.Errorf("update artist: %w", err)
	}
	if artist == nil {
		metrics.ObserveArtistOperation("update", "not_found")
		return nil, nil
	}

	metrics.ObserveArtistOperation("update", "success")
	logger.WithArtistID(id).Info("Artist updated")

	return artist, nil
}

// DeleteArtist soft-deletes an artist: the record stays in the table with
// active=false. Returns (nil, nil) when the id is unknown.
func (s *ArtistService) DeleteArtist(ctx context.Context, id string) (*domain.Artist, error) {
	inactive := false
	artist, err := s.repo.Update(ctx, id, domain.ArtistPatch{Active: &inactive})
	if err != nil {
		metrics.ObserveArtistOperation("delete", "error")
		return nil, fmt.Errorf("delete artist: %w", err)
	}
	if artist == nil {
		metrics.ObserveArtistOperation("delete", "not_found")
		return nil, nil
	}

	metrics.ObserveArtistOperation("delete", "success")
	logger.WithArtistID(id).Info("Artist soft-deleted")

	return artist, nil
}
