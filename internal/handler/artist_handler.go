package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/frantrelles/riff-rebel-register/internal/domain"
	"github.com/frantrelles/riff-rebel-register/internal/logger"
	"github.com/frantrelles/riff-rebel-register/internal/middleware"
	"github.com/frantrelles/riff-rebel-register/internal/service"
)

// ArtistHandler handles artist catalog HTTP requests.
type ArtistHandler struct {
	artistService service.ArtistServiceInterface
}

// NewArtistHandler creates a new ArtistHandler.
func NewArtistHandler(artistService service.ArtistServiceInterface) *ArtistHandler {
	return &ArtistHandler{
		artistService: artistService,
	}
}

// CreateArtistRequest is the JSON body of POST /api/v1/artists.
type CreateArtistRequest struct {
	Name          string   `json:"name"`
	Genre         string   `json:"genre"`
	FormationYear *int     `json:"formation_year"`
	Country       *string  `json:"country"`
	Active        *bool    `json:"active"`
	Description   *string  `json:"description"`
	PopularAlbums []string `json:"popular_albums"`
}

// UpdateArtistRequest is the JSON body of PUT /api/v1/artists/:id.
// Every field is optional; absent fields are left untouched.
type UpdateArtistRequest struct {
	Name          *string  `json:"name"`
	Genre         *string  `json:"genre"`
	FormationYear *int     `json:"formation_year"`
	Country       *string  `json:"country"`
	Active        *bool    `json:"active"`
	Description   *string  `json:"description"`
	PopularAlbums []string `json:"popular_albums"`
}

// ArtistResponse represents an artist in the API response.
type ArtistResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Genre         string   `json:"genre"`
	FormationYear *int     `json:"formation_year,omitempty"`
	Country       *string  `json:"country,omitempty"`
	Active        bool     `json:"active"`
	Description   *string  `json:"description,omitempty"`
	PopularAlbums []string `json:"popular_albums"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// toArtistResponse converts a domain.Artist to an ArtistResponse.
func toArtistResponse(artist *domain.Artist) ArtistResponse {
	return ArtistResponse{
		ID:            artist.ID,
		Name:          artist.Name,
		Genre:         artist.Genre,
		FormationYear: artist.FormationYear,
		Country:       artist.Country,
		Active:        artist.Active,
		Description:   artist.Description,
		PopularAlbums: artist.PopularAlbums,
		CreatedAt:     artist.CreatedAt.Format(TimeFormat),
		UpdatedAt:     artist.UpdatedAt.Format(TimeFormat),
	}
}

func toArtistResponses(artists []domain.Artist) []ArtistResponse {
	responses := make([]ArtistResponse, 0, len(artists))
	for i := range artists {
		responses = append(responses, toArtistResponse(&artists[i]))
	}
	return responses
}

// ListArtists handles GET /api/v1/artists
func (h *ArtistHandler) ListArtists(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 0) // 0 lets the service apply its default

	filter := domain.ArtistFilter{}
	if genre := c.Query("genre"); genre != "" {
		filter.Genre = &genre
	}
	if country := c.Query("country"); country != "" {
		filter.Country = &country
	}
	if activeStr := c.Query("active"); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "active must be \"true\" or \"false\""})
			return
		}
		filter.Active = &active
	}

	artists, pagination, err := h.artistService.ListArtists(c.Request.Context(), filter, page, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       toArtistResponses(artists),
		"pagination": pagination,
	})
}

// GetArtist handles GET /api/v1/artists/:id
func (h *ArtistHandler) GetArtist(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "artist not found"})
		return
	}

	artist, err := h.artistService.GetArtist(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if artist == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "artist not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toArtistResponse(artist)})
}

// CreateArtist handles POST /api/v1/artists
func (h *ArtistHandler) CreateArtist(c *gin.Context) {
	var req CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	// active defaults true unless the client says otherwise
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	artist := &domain.Artist{
		Name:          req.Name,
		Genre:         req.Genre,
		FormationYear: req.FormationYear,
		Country:       req.Country,
		Active:        active,
		Description:   req.Description,
		PopularAlbums: req.PopularAlbums,
	}

	created, err := h.artistService.CreateArtist(c.Request.Context(), artist)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": toArtistResponse(created)})
}

// UpdateArtist handles PUT /api/v1/artists/:id
func (h *ArtistHandler) UpdateArtist(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "artist not found"})
		return
	}

	var req UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	patch := domain.ArtistPatch{
		Name:          req.Name,
		Genre:         req.Genre,
		FormationYear: req.FormationYear,
		Country:       req.Country,
		Active:        req.Active,
		Description:   req.Description,
		PopularAlbums: req.PopularAlbums,
	}

	artist, err := h.artistService.UpdateArtist(c.Request.Context(), id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if artist == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "artist not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toArtistResponse(artist)})
}

// DeleteArtist handles DELETE /api/v1/artists/:id
func (h *ArtistHandler) DeleteArtist(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "artist not found"})
		return
	}

	artist, err := h.artistService.DeleteArtist(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if artist == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "artist not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "artist deleted",
		"data":    toArtistResponse(artist),
	})
}

// respondError maps service errors to the HTTP error taxonomy: validation
// failures become 400, anything else a 500 with the message surfaced.
func (h *ArtistHandler) respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verrs.Error()})
		return
	}

	logger.WithRequestID(middleware.GetRequestID(c)).Error("Request failed",
		slog.String("path", c.FullPath()),
		slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// queryInt reads an integer query parameter, falling back to a default on
// absent or unparseable values.
func queryInt(c *gin.Context, key string, defaultValue int) int {
	value := c.Query(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
