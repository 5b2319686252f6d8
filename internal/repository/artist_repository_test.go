package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frantrelles/riff-rebel-register/internal/domain"
	"github.com/frantrelles/riff-rebel-register/internal/repository"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func newTestArtist(name, genre string) *domain.Artist {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Artist{
		ID:            uuid.New().String(),
		Name:          name,
		Genre:         genre,
		Active:        true,
		PopularAlbums: []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestPostgresArtistRepository_InsertAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresArtistRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("insert and get artist", func(t *testing.T) {
		testDB.TruncateTables(t, "artists")

		artist := newTestArtist("The Velvet Sparks", "garage rock")
		artist.FormationYear = intPtr(1998)
		artist.Country = strPtr("UK")
		artist.Description = strPtr("Loud and proud")
		artist.PopularAlbums = []string{"First Spark", "Afterglow"}

		err := repo.Insert(ctx, artist)
		require.NoError(t, err)

		retrieved, err := repo.GetByID(ctx, artist.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)

		assert.Equal(t, artist.ID, retrieved.ID)
		assert.Equal(t, artist.Name, retrieved.Name)
		assert.Equal(t, artist.Genre, retrieved.Genre)
		assert.Equal(t, 1998, *retrieved.FormationYear)
		assert.Equal(t, "UK", *retrieved.Country)
		assert.True(t, retrieved.Active)
		assert.Equal(t, "Loud and proud", *retrieved.Description)
		assert.Equal(t, []string{"First Spark", "Afterglow"}, retrieved.PopularAlbums)
		assert.True(t, retrieved.CreatedAt.Equal(retrieved.UpdatedAt))
	})

	t.Run("album order survives the round trip", func(t *testing.T) {
		testDB.TruncateTables(t, "artists")

		artist := newTestArtist("Order Matters", "math rock")
		artist.PopularAlbums = []string{"B", "A", "C"}

		require.NoError(t, repo.Insert(ctx, artist))

		retrieved, err := repo.GetByID(ctx, artist.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.Equal(t, []string{"B", "A", "C"}, retrieved.PopularAlbums)
	})

	t.Run("get non-existent artist returns nil", func(t *testing.T) {
		testDB.TruncateTables(t, "artists")

		retrieved, err := repo.GetByID(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, retrieved)
	})

	t.Run("nil albums stored as empty array", func(t *testing.T) {
		testDB.TruncateTables(t, "artists")

		artist := newTestArtist("No Albums Yet", "ambient")
		artist.PopularAlbums = nil

		require.NoError(t, repo.Insert(ctx, artist))

		retrieved, err := repo.GetByID(ctx, artist.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.Equal(t, []string{}, retrieved.PopularAlbums)
	})
}

func TestPostgresArtistRepository_List(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresArtistRepository(testDB.Pool)
	ctx := context.Background()

	seed := func(t *testing.T) {
		t.Helper()
		testDB.TruncateTables(t, "artists")
		for i := 0; i < 7; i++ {
			artist := newTestArtist(fmt.Sprintf("Punk Band %d", i), "punk")
			artist.Country = strPtr("US")
			// Distinct created_at values keep the ordering deterministic
			artist.CreatedAt = artist.CreatedAt.Add(time.Duration(i) * time.Millisecond)
			artist.UpdatedAt = artist.CreatedAt
			require.NoError(t, repo.Insert(ctx, artist))
		}
		for i := 0; i < 3; i++ {
			artist := newTestArtist(fmt.Sprintf("Jazz Combo %d", i), "jazz")
			artist.Country = strPtr("NO")
			artist.Active = i != 0
			require.NoError(t, repo.Insert(ctx, artist))
		}
	}

	t.Run("no filters returns everything", func(t *testing.T) {
		seed(t)

		artists, total, err := repo.List(ctx, domain.ArtistFilter{}, 0, 20)
		require.NoError(t, err)
		assert.Equal(t, 10, total)
		assert.Len(t, artists, 10)
	})

	t.Run("genre filter with pagination", func(t *testing.T) {
		seed(t)

		artists, total, err := repo.List(ctx, domain.ArtistFilter{Genre: strPtr("punk")}, 5, 5)
		require.NoError(t, err)
		assert.Equal(t, 7, total)
		assert.Len(t, artists, 2)
		for _, a := range artists {
			assert.Equal(t, "punk", a.Genre)
		}
	})

	t.Run("conjunctive filters", func(t *testing.T) {
		seed(t)

		artists, total, err := repo.List(ctx, domain.ArtistFilter{
			Genre:  strPtr("jazz"),
			Active: boolPtr(true),
		}, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		for _, a := range artists {
			assert.Equal(t, "jazz", a.Genre)
			assert.True(t, a.Active)
		}
	})

	t.Run("country filter", func(t *testing.T) {
		seed(t)

		_, total, err := repo.List(ctx, domain.ArtistFilter{Country: strPtr("NO")}, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
	})

	t.Run("results ordered by created_at", func(t *testing.T) {
		seed(t)

		artists, _, err := repo.List(ctx, domain.ArtistFilter{Genre: strPtr("punk")}, 0, 10)
		require.NoError(t, err)
		require.Len(t, artists, 7)
		for i := 1; i < len(artists); i++ {
			assert.False(t, artists[i].CreatedAt.Before(artists[i-1].CreatedAt))
		}
	})

	t.Run("filter with no matches", func(t *testing.T) {
		seed(t)

		artists, total, err := repo.List(ctx, domain.ArtistFilter{Genre: strPtr("zydeco")}, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, artists)
	})
}

func TestPostgresArtistRepository_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresArtistRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("partial update touches only supplied fields", func(t *testing.T) {
		testDB.TruncateTables(t, "artists")

		artist := newTestArtist("Static Fields", "post-rock")
		artist.Country = strPtr("CA")
		require.NoError(t, repo.Insert(ctx, artist))

		updated, err := repo.Update(ctx, artist.ID, domain.ArtistPatch{
			Description: strPtr("evolving soundscapes"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, artist.Name, updated.Name)
		assert.Equal(t, artist.Genre, updated.Genre)
		assert.Equal(t, "CA", *updated.Country)
		assert.Equal(t, "evolving soundscapes", *updated.Description)
		assert.True(t, updated.CreatedAt.Equal(artist.CreatedAt))
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	})

	t.Run("updated_at strictly increases across updates", func(t *testing.T) {
		testDB.TruncateTables(t, "artists")

		artist := newTestArtist("Tick Tock", "electro")
		require.NoError(t, repo.Insert(ctx, artist))

		first, err := repo.Update(ctx, artist.ID, domain.ArtistPatch{Genre: strPtr("techno")})
		require.NoError(t, err)
		require.NotNil(t, first)

		second, err := repo.Update(ctx, artist.ID, domain.ArtistPatch{Genre: strPtr("house")})
		require.NoError(t, err)
		require.NotNil(t, second)

		assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
		assert.True(t, second.CreatedAt.Equal(first.CreatedAt))
	})

	t.Run("soft delete keeps the record retrievable", func(t *testing.T) {
		testDB.TruncateTables(t, "artists")

		artist := newTestArtist("Gone But Here", "indie")
		require.NoError(t, repo.Insert(ctx, artist))

		deleted, err := repo.Update(ctx, artist.ID, domain.ArtistPatch{Active: boolPtr(false)})
		require.NoError(t, err)
		require.NotNil(t, deleted)
		assert.False(t, deleted.Active)

		retrieved, err := repo.GetByID(ctx, artist.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.False(t, retrieved.Active)
	})

	t.Run("replaces album list wholesale", func(t *testing.T) {
		testDB.TruncateTables(t, "artists")

		artist := newTestArtist("Discography", "pop")
		artist.PopularAlbums = []string{"Old One"}
		require.NoError(t, repo.Insert(ctx, artist))

		updated, err := repo.Update(ctx, artist.ID, domain.ArtistPatch{
			PopularAlbums: []string{"New One", "Newer One"},
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, []string{"New One", "Newer One"}, updated.PopularAlbums)
	})

	t.Run("update non-existent artist returns nil", func(t *testing.T) {
		testDB.TruncateTables(t, "artists")

		updated, err := repo.Update(ctx, uuid.New().String(), domain.ArtistPatch{
			Name: strPtr("Nobody"),
		})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("empty patch still refreshes updated_at", func(t *testing.T) {
		testDB.TruncateTables(t, "artists")

		artist := newTestArtist("Untouched", "folk")
		require.NoError(t, repo.Insert(ctx, artist))

		updated, err := repo.Update(ctx, artist.ID, domain.ArtistPatch{})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.UpdatedAt.After(artist.UpdatedAt))
		assert.Equal(t, artist.Name, updated.Name)
	})
}
