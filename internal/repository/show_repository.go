// Package repository contains data access logic for Show domain operations.
// This file defines repository methods for shows. A Show links one venue and
// one artist at a start time; both references are enforced by foreign keys
// with ON DELETE CASCADE, so creating a show against a missing venue or
// artist fails at commit time.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"       // errors for sentinel definitions

	"github.com/iliyamo/venue-booking/internal/model"
)

// ErrShowNotFound indicates that a show was not located in the DB.
var ErrShowNotFound = errors.New("show not found")

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show and assigns the generated ID back to the
// show struct.  A foreign-key violation (unknown venue or artist id)
// surfaces as a plain DB error for the handler's generic failure path.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	const q = `INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.VenueID, s.ArtistID, s.StartTime)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// GetByID retrieves a show by its ID.  It returns ErrShowNotFound if
// there is no matching row.
func (r *ShowRepo) GetByID(ctx context.Context, id uint64) (*model.Show, error) {
	const q = `SELECT id, venue_id, artist_id, start_time FROM shows WHERE id = ?`
	var s model.Show
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.VenueID, &s.ArtistID, &s.StartTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListByVenue returns all shows hosted at the given venue.  When no
// shows exist it returns an empty slice and nil error.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]model.Show, error) {
	return r.list(ctx, `SELECT id, venue_id, artist_id, start_time FROM shows WHERE venue_id = ?`, venueID)
}

// ListByArtist returns all shows performed by the given artist.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]model.Show, error) {
	return r.list(ctx, `SELECT id, venue_id, artist_id, start_time FROM shows WHERE artist_id = ?`, artistID)
}

func (r *ShowRepo) list(ctx context.Context, q string, arg uint64) ([]model.Show, error) {
	rows, err := r.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Show
	for rows.Next() {
		var s model.Show
		if err := rows.Scan(&s.ID, &s.VenueID, &s.ArtistID, &s.StartTime); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListDetailed returns every show joined with its venue and artist so the
// flat /shows page can render names and the artist image without per-row
// lookups.
func (r *ShowRepo) ListDetailed(ctx context.Context) ([]model.ShowDetail, error) {
	const q = `SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           JOIN artists a ON a.id = s.artist_id
	           ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ShowDetail
	for rows.Next() {
		var d model.ShowDetail
		if err := rows.Scan(&d.VenueID, &d.VenueName, &d.ArtistID, &d.ArtistName, &d.ArtistImageLink, &d.StartTime); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
