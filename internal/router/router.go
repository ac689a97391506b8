package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/venue-booking/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers the health check on the provided Echo
// instance. This endpoint can be used by load balancers or monitoring
// systems to verify that the service is up and running.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterVenues registers the venue browse, search, detail and
// mutation endpoints. The paths mirror the pages of the listing site:
// creation and edit forms are fetched with GET and submitted with POST,
// and a venue is removed with DELETE.
func RegisterVenues(e *echo.Echo, v *handler.VenueHandler) {
	e.GET("/venues", v.ListVenues)
	e.POST("/venues/search", v.SearchVenues)
	// register the static /venues/create pair before the :id routes so
	// Echo does not capture "create" as an id
	e.GET("/venues/create", v.NewVenueForm)
	e.POST("/venues/create", v.CreateVenue)
	e.GET("/venues/:id", v.GetVenue)
	e.GET("/venues/:id/edit", v.EditVenueForm)
	e.POST("/venues/:id/edit", v.UpdateVenue)
	e.DELETE("/venues/:id", v.DeleteVenue)
}

// RegisterArtists registers the artist browse, search, detail and
// mutation endpoints. Artists have no delete route.
func RegisterArtists(e *echo.Echo, a *handler.ArtistHandler) {
	e.GET("/artists", a.ListArtists)
	e.POST("/artists/search", a.SearchArtists)
	e.GET("/artists/create", a.NewArtistForm)
	e.POST("/artists/create", a.CreateArtist)
	e.GET("/artists/:id", a.GetArtist)
	e.GET("/artists/:id/edit", a.EditArtistForm)
	e.POST("/artists/:id/edit", a.UpdateArtist)
}

// RegisterShows registers the flat show listing and the show creation
// endpoints.
func RegisterShows(e *echo.Echo, s *handler.ShowHandler) {
	e.GET("/shows", s.ListShows)
	e.GET("/shows/create", s.NewShowForm)
	e.POST("/shows/create", s.CreateShow)
}
