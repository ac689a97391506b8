package handler

import (
	"context"
	"sort"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/repository"
)

// In-memory stores standing in for the repositories. Iteration order
// matches insertion order, mirroring the ORDER BY id queries.

type fakeVenueStore struct {
	venues    []*model.Venue
	nextID    uint64
	createErr error
	updateErr error
	deleteErr error
	deleted   []uint64
}

func (f *fakeVenueStore) Create(_ context.Context, v *model.Venue) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	v.ID = f.nextID
	cp := *v
	f.venues = append(f.venues, &cp)
	return nil
}

func (f *fakeVenueStore) GetByID(_ context.Context, id uint64) (*model.Venue, error) {
	for _, v := range f.venues {
		if v.ID == id {
			cp := *v
			return &cp, nil
		}
	}
	return nil, repository.ErrVenueNotFound
}

func (f *fakeVenueStore) ListAll(_ context.Context) ([]*model.Venue, error) {
	return f.venues, nil
}

func (f *fakeVenueStore) ListRefs(_ context.Context) ([]model.VenueRef, error) {
	refs := make([]model.VenueRef, 0, len(f.venues))
	for _, v := range f.venues {
		refs = append(refs, model.VenueRef{ID: v.ID, Name: v.Name})
	}
	return refs, nil
}

func (f *fakeVenueStore) ListRefsByName(ctx context.Context) ([]model.VenueRef, error) {
	refs, _ := f.ListRefs(ctx)
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func (f *fakeVenueStore) Update(_ context.Context, v *model.Venue) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, cur := range f.venues {
		if cur.ID == v.ID {
			cp := *v
			f.venues[i] = &cp
			return nil
		}
	}
	return nil
}

func (f *fakeVenueStore) DeleteByID(_ context.Context, id uint64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, v := range f.venues {
		if v.ID == id {
			f.venues = append(f.venues[:i], f.venues[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return repository.ErrVenueNotFound
}

type fakeArtistStore struct {
	artists   []*model.Artist
	nextID    uint64
	createErr error
	updateErr error
}

func (f *fakeArtistStore) Create(_ context.Context, a *model.Artist) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	a.ID = f.nextID
	cp := *a
	f.artists = append(f.artists, &cp)
	return nil
}

func (f *fakeArtistStore) GetByID(_ context.Context, id uint64) (*model.Artist, error) {
	for _, a := range f.artists {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrArtistNotFound
}

func (f *fakeArtistStore) ListRefs(_ context.Context) ([]model.ArtistRef, error) {
	refs := make([]model.ArtistRef, 0, len(f.artists))
	for _, a := range f.artists {
		refs = append(refs, model.ArtistRef{ID: a.ID, Name: a.Name})
	}
	return refs, nil
}

func (f *fakeArtistStore) ListRefsByName(ctx context.Context) ([]model.ArtistRef, error) {
	refs, _ := f.ListRefs(ctx)
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func (f *fakeArtistStore) Update(_ context.Context, a *model.Artist) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, cur := range f.artists {
		if cur.ID == a.ID {
			cp := *a
			f.artists[i] = &cp
			return nil
		}
	}
	return nil
}

type fakeShowStore struct {
	shows     []model.Show
	detailed  []model.ShowDetail
	nextID    uint64
	createErr error
}

func (f *fakeShowStore) Create(_ context.Context, s *model.Show) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	s.ID = f.nextID
	f.shows = append(f.shows, *s)
	return nil
}

func (f *fakeShowStore) ListByVenue(_ context.Context, venueID uint64) ([]model.Show, error) {
	var out []model.Show
	for _, s := range f.shows {
		if s.VenueID == venueID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShowStore) ListByArtist(_ context.Context, artistID uint64) ([]model.Show, error) {
	var out []model.Show
	for _, s := range f.shows {
		if s.ArtistID == artistID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShowStore) ListDetailed(_ context.Context) ([]model.ShowDetail, error) {
	return f.detailed, nil
}
