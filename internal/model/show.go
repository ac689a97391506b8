package model

import "time"

// Show represents a scheduled pairing of one artist and one venue at
// a specific start time.  Shows never store whether they are past or
// upcoming; that classification is computed at read time against the
// current instant.  This struct corresponds to a row in the `shows`
// table.
//
// Fields:
//  ID        – primary key identifier.
//  VenueID   – venue hosting the show (FK, cascade on delete).
//  ArtistID  – artist performing the show (FK, cascade on delete).
//  StartTime – when the show begins (DATETIME, UTC).
type Show struct {
	ID        uint64    // shows.id
	VenueID   uint64    // shows.venue_id
	ArtistID  uint64    // shows.artist_id
	StartTime time.Time // shows.start_time
}

// ShowDetail is the joined projection used by the flat /shows listing.
// Venue and artist names are resolved in a single query instead of a
// per-row lookup.
type ShowDetail struct {
	VenueID         uint64    // shows.venue_id
	VenueName       string    // venues.name
	ArtistID        uint64    // shows.artist_id
	ArtistName      string    // artists.name
	ArtistImageLink string    // artists.image_link
	StartTime       time.Time // shows.start_time
}
