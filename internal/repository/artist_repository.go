// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for artists. Artists are never deleted
// through the public surface, so no delete method exists; the shows FK still
// cascades at the schema level should a row be removed out of band.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"       // errors for sentinel definitions

	"github.com/iliyamo/venue-booking/internal/model"
)

// ErrArtistNotFound is returned when an artist cannot be found in the DB.
var ErrArtistNotFound = errors.New("artist not found")

// artistColumns lists every column of the artists table in scan order.
const artistColumns = `id, name, city, state, phone, genres, image_link, facebook_link, website, seeking_venue, seeking_description`

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Create inserts a new artist and assigns the generated ID back to the
// artist struct.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	const q = `INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link, website, seeking_venue, seeking_description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		a.Name, a.City, a.State, a.Phone, a.Genres,
		a.ImageLink, a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByID fetches an artist by its ID.  It returns ErrArtistNotFound if
// there is no matching row.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists WHERE id = ?`
	var a model.Artist
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Genres,
		&a.ImageLink, &a.FacebookLink, &a.Website, &a.SeekingVenue, &a.SeekingDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListRefs returns id and name of every artist ordered by id.  Search
// scans this list in storage order without any ranking.
func (r *ArtistRepo) ListRefs(ctx context.Context) ([]model.ArtistRef, error) {
	return r.listRefs(ctx, `SELECT id, name FROM artists ORDER BY id`)
}

// ListRefsByName returns id and name of every artist ordered by name
// ascending (case-sensitive, the collation of the name column). Both
// the /artists page and the show-creation choices use this order.
func (r *ArtistRepo) ListRefsByName(ctx context.Context) ([]model.ArtistRef, error) {
	return r.listRefs(ctx, `SELECT id, name FROM artists ORDER BY name`)
}

func (r *ArtistRepo) listRefs(ctx context.Context, q string) ([]model.ArtistRef, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ArtistRef
	for rows.Next() {
		var ref model.ArtistRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites every mutable field of the artist with the values in
// a (full replace, not merge).  Zero affected rows is not an error; see
// VenueRepo.Update.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	const q = `UPDATE artists
	           SET name = ?, city = ?, state = ?, phone = ?, genres = ?,
	               image_link = ?, facebook_link = ?, website = ?, seeking_venue = ?, seeking_description = ?
	           WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q,
		a.Name, a.City, a.State, a.Phone, a.Genres,
		a.ImageLink, a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription,
		a.ID,
	)
	return err
}
