// Package handler exposes the HTTP surface of the booking listing
// service. Handlers depend on the narrow store interfaces below rather
// than on concrete repositories so the query and aggregation logic can
// be unit-tested against in-memory fakes.
package handler

import (
	"context"

	"github.com/iliyamo/venue-booking/internal/model"
)

// VenueStore is the persistence surface the venue handlers need.
// *repository.VenueRepo satisfies it.
type VenueStore interface {
	Create(ctx context.Context, v *model.Venue) error
	GetByID(ctx context.Context, id uint64) (*model.Venue, error)
	ListAll(ctx context.Context) ([]*model.Venue, error)
	ListRefs(ctx context.Context) ([]model.VenueRef, error)
	ListRefsByName(ctx context.Context) ([]model.VenueRef, error)
	Update(ctx context.Context, v *model.Venue) error
	DeleteByID(ctx context.Context, id uint64) error
}

// ArtistStore is the persistence surface the artist handlers need.
// *repository.ArtistRepo satisfies it. GetByID doubles as the
// showtime.ArtistFinder used during show enrichment.
type ArtistStore interface {
	Create(ctx context.Context, a *model.Artist) error
	GetByID(ctx context.Context, id uint64) (*model.Artist, error)
	ListRefs(ctx context.Context) ([]model.ArtistRef, error)
	ListRefsByName(ctx context.Context) ([]model.ArtistRef, error)
	Update(ctx context.Context, a *model.Artist) error
}

// ShowStore is the persistence surface the show handlers need.
// *repository.ShowRepo satisfies it.
type ShowStore interface {
	Create(ctx context.Context, s *model.Show) error
	ListByVenue(ctx context.Context, venueID uint64) ([]model.Show, error)
	ListByArtist(ctx context.Context, artistID uint64) ([]model.Show, error)
	ListDetailed(ctx context.Context) ([]model.ShowDetail, error)
}
