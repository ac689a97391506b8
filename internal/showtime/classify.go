// Package showtime classifies shows as past or upcoming relative to an
// explicit reference instant. The instant is always a parameter, never
// read from the wall clock inside this package, so callers can pin it
// in tests. Classification is never persisted; it is recomputed on
// every read.
package showtime

import (
	"context"
	"time"

	"github.com/iliyamo/venue-booking/internal/model"
)

// startTimeLayout renders start times the way listing pages display
// them, e.g. "Sat 06, 13, 2026 8:00PM".
const startTimeLayout = "Mon 01, 02, 2006 3:04PM"

// ArtistFinder resolves an artist by id. The artist repository
// satisfies it; tests supply an in-memory fake.
type ArtistFinder interface {
	GetByID(ctx context.Context, id uint64) (*model.Artist, error)
}

// ShowInfo is a classified show enriched with the performing artist's
// name and image link and a display-formatted start time.
type ShowInfo struct {
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// Partition splits shows into past (start strictly before now) and
// upcoming (start strictly after now). A show starting exactly at now
// belongs to neither bucket, so len(past)+len(upcoming) can be less
// than len(shows). Input order is preserved within each bucket.
func Partition(shows []model.Show, now time.Time) (past, upcoming []model.Show) {
	for _, s := range shows {
		switch {
		case s.StartTime.Before(now):
			past = append(past, s)
		case s.StartTime.After(now):
			upcoming = append(upcoming, s)
		}
	}
	return past, upcoming
}

// Enrich resolves the artist of each show and returns display records.
// An unresolved artist id aborts the whole enrichment and propagates
// the finder's error to the request boundary.
func Enrich(ctx context.Context, shows []model.Show, artists ArtistFinder) ([]ShowInfo, error) {
	out := make([]ShowInfo, 0, len(shows))
	for _, s := range shows {
		a, err := artists.GetByID(ctx, s.ArtistID)
		if err != nil {
			return nil, err
		}
		out = append(out, ShowInfo{
			ArtistID:        a.ID,
			ArtistName:      a.Name,
			ArtistImageLink: a.ImageLink,
			StartTime:       FormatStartTime(s.StartTime),
		})
	}
	return out, nil
}

// FormatStartTime renders a start time for listing pages.
func FormatStartTime(t time.Time) string {
	return t.Format(startTimeLayout)
}
