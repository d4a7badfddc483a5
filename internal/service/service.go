package service

import (
	"context"
	"time"

	"github.com/ds124wfegd/listings/internal/entity"
	"github.com/ds124wfegd/listings/internal/listing"
)

type VenueService interface {
	// Listing
	ListByLocation(ctx context.Context) ([]entity.LocationBucket, error)
	Search(ctx context.Context, term string) (*entity.SearchResult, error)
	GetDetail(ctx context.Context, id int64) (*entity.VenueDetail, error)

	// Mutations
	Create(ctx context.Context, req *VenueRequest) (*entity.MutationResult, error)
	Update(ctx context.Context, id int64, req *VenueRequest) (*entity.MutationResult, error)
	Delete(ctx context.Context, id int64) (*entity.MutationResult, error)
}

type ArtistService interface {
	// Listing
	List(ctx context.Context) ([]entity.ArtistRef, error)
	Search(ctx context.Context, term string) (*entity.SearchResult, error)
	GetDetail(ctx context.Context, id int64) (*entity.ArtistDetail, error)

	// Mutations
	Create(ctx context.Context, req *ArtistRequest) (*entity.MutationResult, error)
	Update(ctx context.Context, id int64, req *ArtistRequest) (*entity.MutationResult, error)
}

type ShowService interface {
	List(ctx context.Context) ([]entity.ShowListing, error)
	Create(ctx context.Context, req *ShowRequest) (*entity.MutationResult, error)
}

func clockOrNow(clock listing.Clock) listing.Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}
