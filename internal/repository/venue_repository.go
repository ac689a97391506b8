// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for venues. A Venue owns zero or more
// shows; removing a venue removes its shows in the same transaction so no
// orphaned rows survive.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values

	"github.com/iliyamo/venue-booking/internal/model"
)

// ErrVenueNotFound is returned when a venue cannot be found in the DB.
var ErrVenueNotFound = errors.New("venue not found")

// venueColumns lists every column of the venues table in scan order.
const venueColumns = `id, name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description`

// VenueRepo encapsulates all database queries related to venues.  It
// depends on a sql.DB connection which should be configured elsewhere.
type VenueRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at
// startup.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a new venue.  On success the venue's ID field is
// populated with the auto-generated value.  Name uniqueness is enforced
// only by the UNIQUE index; a violation surfaces as a plain DB error so
// the caller can roll its message into a generic failure response.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	const q = `INSERT INTO venues (name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		v.Name, v.City, v.State, v.Address, v.Phone, v.Genres,
		v.ImageLink, v.FacebookLink, v.Website, v.SeekingTalent, v.SeekingDescription,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// GetByID fetches a venue by its ID.  It returns ErrVenueNotFound if no
// row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues WHERE id = ?`
	var v model.Venue
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.Genres,
		&v.ImageLink, &v.FacebookLink, &v.Website, &v.SeekingTalent, &v.SeekingDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// ListAll returns every venue ordered by id.  The grouped /venues page
// derives its (city, state) areas from this list, so the group order
// simply follows storage iteration order.
func (r *VenueRepo) ListAll(ctx context.Context) ([]*model.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Venue
	for rows.Next() {
		v := new(model.Venue)
		if err := rows.Scan(
			&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.Genres,
			&v.ImageLink, &v.FacebookLink, &v.Website, &v.SeekingTalent, &v.SeekingDescription,
		); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRefs returns id and name of every venue ordered by id.  Search
// scans this list in storage order without any ranking.
func (r *VenueRepo) ListRefs(ctx context.Context) ([]model.VenueRef, error) {
	return r.listRefs(ctx, `SELECT id, name FROM venues ORDER BY id`)
}

// ListRefsByName returns id and name of every venue ordered by name.
// The show-creation form renders these as its venue choices.
func (r *VenueRepo) ListRefsByName(ctx context.Context) ([]model.VenueRef, error) {
	return r.listRefs(ctx, `SELECT id, name FROM venues ORDER BY name`)
}

func (r *VenueRepo) listRefs(ctx context.Context, q string) ([]model.VenueRef, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.VenueRef
	for rows.Next() {
		var ref model.VenueRef
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

// Update overwrites every mutable field of the venue with the values in
// v (full replace, not merge).  Callers are expected to have fetched the
// row first, so a zero-row result is not treated as an error here: MySQL
// reports zero affected rows when the new values equal the old ones.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	const q = `UPDATE venues
	           SET name = ?, city = ?, state = ?, address = ?, phone = ?, genres = ?,
	               image_link = ?, facebook_link = ?, website = ?, seeking_talent = ?, seeking_description = ?
	           WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q,
		v.Name, v.City, v.State, v.Address, v.Phone, v.Genres,
		v.ImageLink, v.FacebookLink, v.Website, v.SeekingTalent, v.SeekingDescription,
		v.ID,
	)
	return err
}

// DeleteByID removes a venue and all shows that reference it. The
// deletion occurs within a transaction to ensure that no partial cleanup
// occurs. If the venue does not exist, ErrVenueNotFound is returned.
func (r *VenueRepo) DeleteByID(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	// Ensure rollback or commit at the end
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	// Cascade: remove shows hosted at this venue first
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrVenueNotFound
		return err
	}
	return nil
}
