// This file implements the artist side of the listing surface: the
// name-ordered browse page, name search, the detail page with past and
// upcoming shows, and the create/edit mutations. Artists cannot be
// deleted through the HTTP surface.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/repository"
	"github.com/iliyamo/venue-booking/internal/showtime"
)

// ArtistHandler aggregates the stores needed by the artist endpoints.
type ArtistHandler struct {
	Artists ArtistStore
	Shows   ShowStore
	Now     func() time.Time
}

// NewArtistHandler wires an ArtistHandler against real repositories.
func NewArtistHandler(artists ArtistStore, shows ShowStore) *ArtistHandler {
	return &ArtistHandler{Artists: artists, Shows: shows, Now: time.Now}
}

// ArtistDetail is the full artist page payload including classified shows.
type ArtistDetail struct {
	ID                 uint64              `json:"id"`
	Name               string              `json:"name"`
	Genres             []string            `json:"genres"`
	City               string              `json:"city"`
	State              string              `json:"state"`
	Phone              string              `json:"phone"`
	Website            string              `json:"website"`
	FacebookLink       string              `json:"facebook_link"`
	SeekingVenue       bool                `json:"seeking_venue"`
	SeekingDescription string              `json:"seeking_description"`
	ImageLink          string              `json:"image_link"`
	PastShows          []showtime.ShowInfo `json:"past_shows"`
	UpcomingShows      []showtime.ShowInfo `json:"upcoming_shows"`
	PastShowsCount     int                 `json:"past_shows_count"`
	UpcomingShowsCount int                 `json:"upcoming_shows_count"`
}

// ListArtists handles GET /artists: every artist ordered by name
// ascending, projected to id and name only.
func (h *ArtistHandler) ListArtists(c echo.Context) error {
	ctx := c.Request().Context()
	refs, err := h.Artists.ListRefsByName(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]echo.Map, 0, len(refs))
	for _, ref := range refs {
		out = append(out, echo.Map{"id": ref.ID, "name": ref.Name})
	}
	return c.JSON(http.StatusOK, echo.Map{"artists": out})
}

// SearchArtists handles POST /artists/search. Same contract as the
// venue search: case-insensitive substring over the name only, empty
// term matches everyone, storage iteration order, no ranking. The
// upcoming count uses the artist's own shows.
func (h *ArtistHandler) SearchArtists(c echo.Context) error {
	ctx := c.Request().Context()
	term := strings.ToLower(c.FormValue("search_term"))
	refs, err := h.Artists.ListRefs(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	now := h.Now()
	result := SearchResult{Data: []VenueListItem{}}
	for _, ref := range refs {
		if !strings.Contains(strings.ToLower(ref.Name), term) {
			continue
		}
		shows, err := h.Shows.ListByArtist(ctx, ref.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		_, upcoming := showtime.Partition(shows, now)
		result.Data = append(result.Data, VenueListItem{ID: ref.ID, Name: ref.Name, NumUpcomingShows: len(upcoming)})
	}
	result.Count = len(result.Data)
	return c.JSON(http.StatusOK, result)
}

// GetArtist handles GET /artists/:id. Unlike the venue page, a missing
// artist answers an explicit 404 instead of crashing on a nil record.
func (h *ArtistHandler) GetArtist(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	a, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	shows, err := h.Shows.ListByArtist(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	past, upcoming := showtime.Partition(shows, h.Now())
	pastInfos, err := showtime.Enrich(ctx, past, h.Artists)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	upcomingInfos, err := showtime.Enrich(ctx, upcoming, h.Artists)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             a.Genres,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          pastInfos,
		UpcomingShows:      upcomingInfos,
		PastShowsCount:     len(pastInfos),
		UpcomingShowsCount: len(upcomingInfos),
	})
}

// NewArtistForm handles GET /artists/create and returns an empty form
// payload for the client to render.
func (h *ArtistHandler) NewArtistForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"form": ArtistForm{}})
}

// CreateArtist handles POST /artists/create with the same all-or-nothing
// policy as the venue creation.
func (h *ArtistHandler) CreateArtist(c echo.Context) error {
	ctx := c.Request().Context()
	var form ArtistForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&form); err != nil {
		return err
	}
	a := model.Artist{
		Name:               form.Name,
		City:               form.City,
		State:              form.State,
		Phone:              form.Phone,
		Genres:             model.Genres(form.Genres),
		ImageLink:          form.ImageLink,
		FacebookLink:       form.FacebookLink,
		Website:            form.Website,
		SeekingVenue:       form.SeekingVenue,
		SeekingDescription: form.SeekingDescription,
	}
	if err := h.Artists.Create(ctx, &a); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      a.ID,
		"message": fmt.Sprintf("Artist %s was successfully listed!", a.Name),
	})
}

// EditArtistForm handles GET /artists/:id/edit and returns the current
// field values for the edit form.
func (h *ArtistHandler) EditArtistForm(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	a, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"form": ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}})
}

// UpdateArtist handles POST /artists/:id/edit as a full replace of all
// mutable fields. The confirmation message references the artist id,
// matching the browse flow this page links back to.
func (h *ArtistHandler) UpdateArtist(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var form ArtistForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&form); err != nil {
		return err
	}
	a, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	a.Name = form.Name
	a.City = form.City
	a.State = form.State
	a.Phone = form.Phone
	a.Genres = model.Genres(form.Genres)
	a.ImageLink = form.ImageLink
	a.FacebookLink = form.FacebookLink
	a.Website = form.Website
	a.SeekingVenue = form.SeekingVenue
	a.SeekingDescription = form.SeekingDescription
	if err := h.Artists.Update(ctx, a); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": fmt.Sprintf("An error occurred. Artist %d could not be updated.", id),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Artist %d was successfully updated!", id),
	})
}
