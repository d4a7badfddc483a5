package service

import (
	"context"
	"errors"

	"github.com/ds124wfegd/listings/internal/entity"
)

var errStoreDown = errors.New("connection refused")

// fakeStore backs the fake repositories with plain slices. Setting fail makes
// every call return it.
type fakeStore struct {
	venues  []entity.Venue
	artists []entity.Artist
	shows   []entity.Show
	nextID  int64
	fail    error
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

type fakeVenueRepo struct{ *fakeStore }
type fakeArtistRepo struct{ *fakeStore }
type fakeShowRepo struct{ *fakeStore }

func (r fakeVenueRepo) Create(_ context.Context, venue *entity.Venue) error {
	if r.fail != nil {
		return r.fail
	}
	venue.ID = r.id()
	r.venues = append(r.venues, *venue)
	return nil
}

func (r fakeVenueRepo) GetByID(_ context.Context, id int64) (*entity.Venue, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	for _, v := range r.venues {
		if v.ID == id {
			venue := v
			return &venue, nil
		}
	}
	return nil, entity.ErrVenueNotFound
}

func (r fakeVenueRepo) GetAll(_ context.Context) ([]entity.Venue, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	return append([]entity.Venue{}, r.venues...), nil
}

func (r fakeVenueRepo) FindWhere(ctx context.Context, keep func(entity.Venue) bool) ([]entity.Venue, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := []entity.Venue{}
	for _, v := range all {
		if keep(v) {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

func (r fakeVenueRepo) Update(_ context.Context, venue *entity.Venue) error {
	if r.fail != nil {
		return r.fail
	}
	for i := range r.venues {
		if r.venues[i].ID == venue.ID {
			r.venues[i] = *venue
			return nil
		}
	}
	return entity.ErrVenueNotFound
}

func (r fakeVenueRepo) Delete(_ context.Context, id int64) error {
	if r.fail != nil {
		return r.fail
	}
	if r.hasShows(id) {
		return entity.ErrVenueHasShows
	}
	for i := range r.venues {
		if r.venues[i].ID == id {
			r.venues = append(r.venues[:i], r.venues[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r fakeVenueRepo) hasShows(id int64) bool {
	for _, s := range r.shows {
		if s.VenueID == id {
			return true
		}
	}
	return false
}

func (r fakeArtistRepo) Create(_ context.Context, artist *entity.Artist) error {
	if r.fail != nil {
		return r.fail
	}
	artist.ID = r.id()
	r.artists = append(r.artists, *artist)
	return nil
}

func (r fakeArtistRepo) GetByID(_ context.Context, id int64) (*entity.Artist, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	for _, a := range r.artists {
		if a.ID == id {
			artist := a
			return &artist, nil
		}
	}
	return nil, entity.ErrArtistNotFound
}

func (r fakeArtistRepo) GetAll(_ context.Context) ([]entity.Artist, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	return append([]entity.Artist{}, r.artists...), nil
}

func (r fakeArtistRepo) FindWhere(ctx context.Context, keep func(entity.Artist) bool) ([]entity.Artist, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := []entity.Artist{}
	for _, a := range all {
		if keep(a) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (r fakeArtistRepo) Update(_ context.Context, artist *entity.Artist) error {
	if r.fail != nil {
		return r.fail
	}
	for i := range r.artists {
		if r.artists[i].ID == artist.ID {
			r.artists[i] = *artist
			return nil
		}
	}
	return entity.ErrArtistNotFound
}

func (r fakeShowRepo) Create(_ context.Context, show *entity.Show) error {
	if r.fail != nil {
		return r.fail
	}
	if _, err := (fakeVenueRepo{r.fakeStore}).GetByID(context.Background(), show.VenueID); err != nil {
		return err
	}
	if _, err := (fakeArtistRepo{r.fakeStore}).GetByID(context.Background(), show.ArtistID); err != nil {
		return err
	}
	show.ID = r.id()
	r.shows = append(r.shows, *show)
	return nil
}

func (r fakeShowRepo) GetAll(_ context.Context) ([]entity.Show, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	return append([]entity.Show{}, r.shows...), nil
}

func (r fakeShowRepo) GetByVenueID(_ context.Context, venueID int64) ([]entity.Show, error) {
	return r.filter(func(s entity.Show) bool { return s.VenueID == venueID })
}

func (r fakeShowRepo) GetByArtistID(_ context.Context, artistID int64) ([]entity.Show, error) {
	return r.filter(func(s entity.Show) bool { return s.ArtistID == artistID })
}

func (r fakeShowRepo) filter(keep func(entity.Show) bool) ([]entity.Show, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	shows := []entity.Show{}
	for _, s := range r.shows {
		if keep(s) {
			shows = append(shows, s)
		}
	}
	return shows, nil
}
