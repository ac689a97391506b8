// Package queue defines message payloads exchanged over the message broker.
package queue

// ShowListedEvent is published when a show is successfully listed.
// It contains enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
type ShowListedEvent struct {
	ShowID    uint64 `json:"show_id"`
	VenueID   uint64 `json:"venue_id"`
	ArtistID  uint64 `json:"artist_id"`
	StartTime string `json:"start_time"`
	ListedAt  string `json:"listed_at"`
}
