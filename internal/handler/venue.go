// This file implements the venue side of the listing surface: the
// grouped browse page, name search, the detail page with past and
// upcoming shows, and the create/edit/delete mutations. All mutations
// are all-or-nothing; any persistence failure leaves no partial rows
// and answers with the generic could-not-be message carrying the
// venue's human-readable name.
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

// VenueHandler aggregates the stores needed by the venue endpoints.
// Now supplies the reference instant for past/upcoming classification
// and is injectable so tests do not depend on the wall clock.
type VenueHandler struct {
	Venues  VenueStore
	Artists ArtistStore
	Shows   ShowStore
	Now     func() time.Time
}

// NewVenueHandler wires a VenueHandler against real repositories.
func NewVenueHandler(venues VenueStore, artists ArtistStore, shows ShowStore) *VenueHandler {
	return &VenueHandler{Venues: venues, Artists: artists, Shows: shows, Now: time.Now}
}

// VenueListItem is one venue inside a (city, state) area group.
type VenueListItem struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueArea is one (city, state) group on the browse page.
type VenueArea struct {
	City   string          `json:"city"`
	State  string          `json:"state"`
	Venues []VenueListItem `json:"venues"`
}

// SearchResult is the shared search response shape for venues and artists.
type SearchResult struct {
	Count int             `json:"count"`
	Data  []VenueListItem `json:"data"`
}

// VenueDetail is the full venue page payload including classified shows.
type VenueDetail struct {
	ID                 uint64              `json:"id"`
	Name               string              `json:"name"`
	Genres             []string            `json:"genres"`
	Address            string              `json:"address"`
	City               string              `json:"city"`
	State              string              `json:"state"`
	Phone              string              `json:"phone"`
	Website            string              `json:"website"`
	FacebookLink       string              `json:"facebook_link"`
	SeekingTalent      bool                `json:"seeking_talent"`
	SeekingDescription string              `json:"seeking_description"`
	ImageLink          string              `json:"image_link"`
	PastShows          []showtime.ShowInfo `json:"past_shows"`
	UpcomingShows      []showtime.ShowInfo `json:"upcoming_shows"`
	PastShowsCount     int                 `json:"past_shows_count"`
	UpcomingShowsCount int                 `json:"upcoming_shows_count"`
}

// ListVenues handles GET /venues. Venues are grouped by their exact
// (city, state) pair; each venue appears in exactly one group and the
// groups follow storage iteration order. Every venue carries its count
// of upcoming shows.
func (h *VenueHandler) ListVenues(c echo.Context) error {
	ctx := c.Request().Context()
	venues, err := h.Venues.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	now := h.Now()
	areas := make([]*VenueArea, 0)
	index := make(map[string]*VenueArea)
	for _, v := range venues {
		shows, err := h.Shows.ListByVenue(ctx, v.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		_, upcoming := showtime.Partition(shows, now)
		key := v.City + "\x00" + v.State
		area, ok := index[key]
		if !ok {
			area = &VenueArea{City: v.City, State: v.State, Venues: []VenueListItem{}}
			index[key] = area
			areas = append(areas, area)
		}
		area.Venues = append(area.Venues, VenueListItem{ID: v.ID, Name: v.Name, NumUpcomingShows: len(upcoming)})
	}
	return c.JSON(http.StatusOK, echo.Map{"areas": areas})
}

// SearchVenues handles POST /venues/search. The match is a
// case-insensitive substring test against the name only; an empty term
// matches every venue. Results follow the storage iteration order of
// the full venue list, without ranking.
func (h *VenueHandler) SearchVenues(c echo.Context) error {
	ctx := c.Request().Context()
	term := strings.ToLower(c.FormValue("search_term"))
	refs, err := h.Venues.ListRefs(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	now := h.Now()
	result := SearchResult{Data: []VenueListItem{}}
	for _, ref := range refs {
		if !strings.Contains(strings.ToLower(ref.Name), term) {
			continue
		}
		shows, err := h.Shows.ListByVenue(ctx, ref.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		_, upcoming := showtime.Partition(shows, now)
		result.Data = append(result.Data, VenueListItem{ID: ref.ID, Name: ref.Name, NumUpcomingShows: len(upcoming)})
	}
	result.Count = len(result.Data)
	return c.JSON(http.StatusOK, result)
}

// GetVenue handles GET /venues/:id. A missing venue redirects back to
// the browse page rather than answering 404; everything else returns
// the detail payload with past and upcoming shows classified against
// the current instant.
func (h *VenueHandler) GetVenue(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.Redirect(http.StatusSeeOther, "/venues")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	shows, err := h.Shows.ListByVenue(ctx, id)
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
	return c.JSON(http.StatusOK, VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             v.Genres,
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          pastInfos,
		UpcomingShows:      upcomingInfos,
		PastShowsCount:     len(pastInfos),
		UpcomingShowsCount: len(upcomingInfos),
	})
}

// NewVenueForm handles GET /venues/create and returns an empty form
// payload for the client to render.
func (h *VenueHandler) NewVenueForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"form": VenueForm{}})
}

// CreateVenue handles POST /venues/create. The bound form has already
// passed the validation boundary; any persistence failure (including a
// duplicate name rejected by the UNIQUE index) rolls back and answers
// with the generic failure message naming the venue.
func (h *VenueHandler) CreateVenue(c echo.Context) error {
	ctx := c.Request().Context()
	var form VenueForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&form); err != nil {
		return err
	}
	v := model.Venue{
		Name:               form.Name,
		City:               form.City,
		State:              form.State,
		Address:            form.Address,
		Phone:              form.Phone,
		Genres:             model.Genres(form.Genres),
		ImageLink:          form.ImageLink,
		FacebookLink:       form.FacebookLink,
		Website:            form.Website,
		SeekingTalent:      form.SeekingTalent,
		SeekingDescription: form.SeekingDescription,
	}
	if err := h.Venues.Create(ctx, &v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      v.ID,
		"message": fmt.Sprintf("Venue %s was successfully listed!", v.Name),
	})
}

// EditVenueForm handles GET /venues/:id/edit and returns the current
// field values for the edit form.
func (h *VenueHandler) EditVenueForm(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"form": VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             v.Genres,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}})
}

// UpdateVenue handles POST /venues/:id/edit. Every mutable field is
// overwritten with the submitted value: a full replace, not a merge,
// so fields left empty in the form end up empty on the row.
func (h *VenueHandler) UpdateVenue(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var form VenueForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&form); err != nil {
		return err
	}
	v, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	v.Name = form.Name
	v.City = form.City
	v.State = form.State
	v.Address = form.Address
	v.Phone = form.Phone
	v.Genres = model.Genres(form.Genres)
	v.ImageLink = form.ImageLink
	v.FacebookLink = form.FacebookLink
	v.Website = form.Website
	v.SeekingTalent = form.SeekingTalent
	v.SeekingDescription = form.SeekingDescription
	if err := h.Venues.Update(ctx, v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Venue %s was successfully updated!", form.Name),
	})
}

// DeleteVenue handles DELETE /venues/:id. The venue's id and name are
// captured before deletion as the confirmation payload, and the delete
// cascades to the venue's shows inside one transaction. A missing
// venue answers 404 and a failed delete answers response=false rather
// than reporting unconditional success.
func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := h.Venues.DeleteByID(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"id":       v.ID,
			"name":     v.Name,
			"response": false,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":       v.ID,
		"name":     v.Name,
		"response": true,
	})
}
