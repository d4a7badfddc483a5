package repository

import (
	"context"

	"github.com/ds124wfegd/listings/internal/entity"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *entity.Venue) error
	GetByID(ctx context.Context, id int64) (*entity.Venue, error)
	GetAll(ctx context.Context) ([]entity.Venue, error)
	FindWhere(ctx context.Context, keep func(entity.Venue) bool) ([]entity.Venue, error)
	Update(ctx context.Context, venue *entity.Venue) error
	// Delete is a no-op for an unknown id and fails with
	// entity.ErrVenueHasShows while shows still reference the venue.
	Delete(ctx context.Context, id int64) error
}

type ArtistRepository interface {
	Create(ctx context.Context, artist *entity.Artist) error
	GetByID(ctx context.Context, id int64) (*entity.Artist, error)
	GetAll(ctx context.Context) ([]entity.Artist, error)
	FindWhere(ctx context.Context, keep func(entity.Artist) bool) ([]entity.Artist, error)
	Update(ctx context.Context, artist *entity.Artist) error
}

type ShowRepository interface {
	Create(ctx context.Context, show *entity.Show) error
	GetAll(ctx context.Context) ([]entity.Show, error)
	GetByVenueID(ctx context.Context, venueID int64) ([]entity.Show, error)
	GetByArtistID(ctx context.Context, artistID int64) ([]entity.Show, error)
}

// NoticeRepository keeps one-shot notices per session. Pop returns the
// pending notices in push order and forgets them.
type NoticeRepository interface {
	Push(ctx context.Context, sessionID string, notice entity.Notice) error
	Pop(ctx context.Context, sessionID string) ([]entity.Notice, error)
}
