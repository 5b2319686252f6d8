package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frantrelles/riff-rebel-register/internal/domain"
)

const artistColumns = `id, name, genre, formation_year, country, active, description, popular_albums, created_at, updated_at`

// PostgresArtistRepository implements ArtistRepository using PostgreSQL.
type PostgresArtistRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArtistRepository creates a new PostgresArtistRepository.
func NewPostgresArtistRepository(pool *pgxpool.Pool) *PostgresArtistRepository {
	return &PostgresArtistRepository{pool: pool}
}

// List returns artists matching all supplied equality filters plus the total
// filtered count. Results are ordered by creation time.
func (r *PostgresArtistRepository) List(ctx context.Context, filter domain.ArtistFilter, offset, limit int) ([]domain.Artist, int, error) {
	where, args := buildFilterClause(filter)

	var total int
	countQuery := "SELECT COUNT(*) FROM artists" + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count artists: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM artists%s ORDER BY created_at LIMIT $%d OFFSET $%d",
		artistColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query artists: %w", err)
	}
	defer rows.Close()

	artists := make([]domain.Artist, 0, limit)
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, *artist)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("read artists: %w", err)
	}

	return artists, total, nil
}

// GetByID retrieves an artist by ID. Returns (nil, nil) when absent.
func (r *PostgresArtistRepository) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM artists WHERE id = $1", artistColumns), id)

	artist, err := scanArtist(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get artist: %w", err)
	}

	return artist, nil
}

// Insert writes a new artist row.
func (r *PostgresArtistRepository) Insert(ctx context.Context, artist *domain.Artist) error {
	albums := artist.PopularAlbums
	if albums == nil {
		albums = []string{}
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO artists (id, name, genre, formation_year, country, active, description, popular_albums, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, artist.ID, artist.Name, artist.Genre, artist.FormationYear, artist.Country,
		artist.Active, artist.Description, albums, artist.CreatedAt, artist.UpdatedAt)

	if err != nil {
		return fmt.Errorf("insert artist: %w", err)
	}

	return nil
}

// Update applies the supplied patch fields to an existing artist in a single
// atomic UPDATE, refreshing updated_at, and returns the stored row.
// Returns (nil, nil) when the id does not exist.
func (r *PostgresArtistRepository) Update(ctx context.Context, id string, patch domain.ArtistPatch) (*domain.Artist, error) {
	sets, args := buildPatchClause(patch)

	// updated_at refreshes on every mutation, even an empty patch
	args = append(args, time.Now().UTC())
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)))

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE artists SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), artistColumns,
	)

	artist, err := scanArtist(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update artist: %w", err)
	}

	return artist, nil
}

// buildFilterClause translates the supplied equality filters into a WHERE
// clause. An empty filter yields an empty clause.
func buildFilterClause(filter domain.ArtistFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.Genre != nil {
		args = append(args, *filter.Genre)
		conditions = append(conditions, fmt.Sprintf("genre = $%d", len(args)))
	}
	if filter.Country != nil {
		args = append(args, *filter.Country)
		conditions = append(conditions, fmt.Sprintf("country = $%d", len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		conditions = append(conditions, fmt.Sprintf("active = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// buildPatchClause translates the supplied patch fields into SET assignments.
// Only whitelisted fields appear here; id and created_at are never touched.
func buildPatchClause(patch domain.ArtistPatch) ([]string, []interface{}) {
	var sets []string
	var args []interface{}

	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Genre != nil {
		args = append(args, *patch.Genre)
		sets = append(sets, fmt.Sprintf("genre = $%d", len(args)))
	}
	if patch.FormationYear != nil {
		args = append(args, *patch.FormationYear)
		sets = append(sets, fmt.Sprintf("formation_year = $%d", len(args)))
	}
	if patch.Country != nil {
		args = append(args, *patch.Country)
		sets = append(sets, fmt.Sprintf("country = $%d", len(args)))
	}
	if patch.Active != nil {
		args = append(args, *patch.Active)
		sets = append(sets, fmt.Sprintf("active = $%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	if patch.PopularAlbums != nil {
		args = append(args, patch.PopularAlbums)
		sets = append(sets, fmt.Sprintf("popular_albums = $%d", len(args)))
	}

	return sets, args
}

// scanArtist scans a single artist row from either pgx.Row or pgx.Rows.
func scanArtist(row pgx.Row) (*domain.Artist, error) {
	var a domain.Artist
	err := row.Scan(&a.ID, &a.Name, &a.Genre, &a.FormationYear, &a.Country,
		&a.Active, &a.Description, &a.PopularAlbums, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if a.PopularAlbums == nil {
		a.PopularAlbums = []string{}
	}
	return &a, nil
}
