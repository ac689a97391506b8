// This file implements the show endpoints: the flat listing with
// resolved venue and artist names, the creation form choices, and show
// creation itself. A successfully listed show is announced on the
// message broker on a best-effort basis.
package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/showtime"
)

// ShowHandler aggregates the stores needed by the show endpoints.
// Publish announces a freshly listed show; a nil Publish disables the
// announcement, and a failing one never fails the request.
type ShowHandler struct {
	Shows   ShowStore
	Artists ArtistStore
	Venues  VenueStore
	Publish func(ctx context.Context, ev queue.ShowListedEvent) error
}

// NewShowHandler wires a ShowHandler against real repositories.
func NewShowHandler(shows ShowStore, artists ArtistStore, venues VenueStore) *ShowHandler {
	return &ShowHandler{Shows: shows, Artists: artists, Venues: venues}
}

// ShowListItem is one row of the flat /shows page.
type ShowListItem struct {
	VenueID         uint64 `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// Choice is one entry of the artist or venue select list on the show
// creation form, rendered as "ID: {id} - {name}".
type Choice struct {
	ID    uint64 `json:"id"`
	Label string `json:"label"`
}

// ListShows handles GET /shows: every show with its venue and artist
// names resolved and the start time formatted for display.
func (h *ShowHandler) ListShows(c echo.Context) error {
	ctx := c.Request().Context()
	details, err := h.Shows.ListDetailed(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]ShowListItem, 0, len(details))
	for _, d := range details {
		out = append(out, ShowListItem{
			VenueID:         d.VenueID,
			VenueName:       d.VenueName,
			ArtistID:        d.ArtistID,
			ArtistName:      d.ArtistName,
			ArtistImageLink: d.ArtistImageLink,
			StartTime:       showtime.FormatStartTime(d.StartTime),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"shows": out})
}

// NewShowForm handles GET /shows/create and returns the artist and
// venue choice lists, both ordered by name.
func (h *ShowHandler) NewShowForm(c echo.Context) error {
	ctx := c.Request().Context()
	artists, err := h.Artists.ListRefsByName(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	venues, err := h.Venues.ListRefsByName(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	artistChoices := make([]Choice, 0, len(artists))
	for _, a := range artists {
		artistChoices = append(artistChoices, Choice{ID: a.ID, Label: fmt.Sprintf("ID: %d - %s", a.ID, a.Name)})
	}
	venueChoices := make([]Choice, 0, len(venues))
	for _, v := range venues {
		venueChoices = append(venueChoices, Choice{ID: v.ID, Label: fmt.Sprintf("ID: %d - %s", v.ID, v.Name)})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"artist_choices": artistChoices,
		"venue_choices":  venueChoices,
	})
}

// CreateShow handles POST /shows/create. Referential integrity of the
// submitted ids is enforced by the foreign keys: an unknown venue or
// artist fails the insert, which rolls back and answers the generic
// failure message.
func (h *ShowHandler) CreateShow(c echo.Context) error {
	ctx := c.Request().Context()
	var form ShowForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&form); err != nil {
		return err
	}
	start, err := form.ParsedStartTime()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_time"})
	}
	s := model.Show{
		VenueID:   form.VenueID,
		ArtistID:  form.ArtistID,
		StartTime: start,
	}
	if err := h.Shows.Create(ctx, &s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "An error occurred. Show could not be listed."})
	}
	if h.Publish != nil {
		// best effort; the publisher logs its own failures
		_ = h.Publish(ctx, queue.ShowListedEvent{
			ShowID:    s.ID,
			VenueID:   s.VenueID,
			ArtistID:  s.ArtistID,
			StartTime: s.StartTime.UTC().Format(time.DateTime),
			ListedAt:  time.Now().UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      s.ID,
		"message": "Show was successfully listed!",
	})
}
