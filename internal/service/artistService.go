package service

import (
	"context"
	"fmt"

	"github.com/ds124wfegd/listings/internal/database/repository"
	"github.com/ds124wfegd/listings/internal/entity"
	"github.com/ds124wfegd/listings/internal/listing"
	"github.com/sirupsen/logrus"
)

type artistService struct {
	artistRepo repository.ArtistRepository
	venueRepo  repository.VenueRepository
	showRepo   repository.ShowRepository
	now        listing.Clock
}

func NewArtistService(
	artistRepo repository.ArtistRepository,
	venueRepo repository.VenueRepository,
	showRepo repository.ShowRepository,
	clock listing.Clock,
) ArtistService {
	return &artistService{
		artistRepo: artistRepo,
		venueRepo:  venueRepo,
		showRepo:   showRepo,
		now:        clockOrNow(clock),
	}
}

func (s *artistService) List(ctx context.Context) ([]entity.ArtistRef, error) {
	artists, err := s.artistRepo.GetAll(ctx)
	if err != nil {
		return nil, storeError("failed to get artists", err)
	}

	refs := make([]entity.ArtistRef, 0, len(artists))
	for _, artist := range artists {
		refs = append(refs, entity.ArtistRef{ID: artist.ID, Name: artist.Name})
	}
	return refs, nil
}

func (s *artistService) Search(ctx context.Context, term string) (*entity.SearchResult, error) {
	artists, err := s.artistRepo.FindWhere(ctx, func(a entity.Artist) bool {
		return listing.MatchName(a.Name, term)
	})
	if err != nil {
		return nil, storeError("failed to search artists", err)
	}

	shows, err := s.showRepo.GetAll(ctx)
	if err != nil {
		return nil, storeError("failed to get shows", err)
	}

	upcoming := listing.CountUpcomingBy(shows, s.now(), listing.ByArtist)
	data := make([]entity.Summary, 0, len(artists))
	for _, artist := range artists {
		data = append(data, entity.Summary{
			ID:               artist.ID,
			Name:             artist.Name,
			NumUpcomingShows: upcoming[artist.ID],
		})
	}

	return &entity.SearchResult{Count: len(data), Data: data}, nil
}

func (s *artistService) GetDetail(ctx context.Context, id int64) (*entity.ArtistDetail, error) {
	artist, err := s.artistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("failed to get artist", err)
	}

	shows, err := s.showRepo.GetByArtistID(ctx, id)
	if err != nil {
		return nil, storeError("failed to get artist shows", err)
	}

	past, upcoming := listing.Partition(shows, s.now())

	pastShows, err := listing.Summarize(ctx, past, listing.ByVenue, s.resolveVenue)
	if err != nil {
		return nil, storeError("failed to resolve past shows", err)
	}
	upcomingShows, err := listing.Summarize(ctx, upcoming, listing.ByVenue, s.resolveVenue)
	if err != nil {
		return nil, storeError("failed to resolve upcoming shows", err)
	}

	return &entity.ArtistDetail{
		Artist:             *artist,
		PastShows:          pastShows,
		UpcomingShows:      upcomingShows,
		PastShowsCount:     len(pastShows),
		UpcomingShowsCount: len(upcomingShows),
	}, nil
}

func (s *artistService) resolveVenue(ctx context.Context, id int64) (entity.Counterpart, error) {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		return entity.Counterpart{}, err
	}
	return entity.Counterpart{ID: venue.ID, Name: venue.Name, ImageLink: venue.ImageLink}, nil
}

func (s *artistService) Create(ctx context.Context, req *ArtistRequest) (*entity.MutationResult, error) {
	req.normalize()
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	artist := req.toArtist(0)
	if err := s.artistRepo.Create(ctx, artist); err != nil {
		logrus.WithError(err).WithField("name", artist.Name).Error("Failed to create artist")
		return nil, storeError("failed to create artist", err)
	}

	logrus.WithFields(logrus.Fields{
		"artist_id": artist.ID,
		"name":      artist.Name,
	}).Info("Artist created")

	return &entity.MutationResult{
		Outcome: entity.OutcomeCreated,
		ID:      artist.ID,
		Name:    artist.Name,
		Message: fmt.Sprintf("Artist %s was successfully listed!", artist.Name),
	}, nil
}

func (s *artistService) Update(ctx context.Context, id int64, req *ArtistRequest) (*entity.MutationResult, error) {
	req.normalize()
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	artist := req.toArtist(id)
	if err := s.artistRepo.Update(ctx, artist); err != nil {
		logrus.WithError(err).WithField("artist_id", id).Error("Failed to update artist")
		return nil, storeError("failed to update artist", err)
	}

	logrus.WithFields(logrus.Fields{
		"artist_id": artist.ID,
		"name":      artist.Name,
	}).Info("Artist updated")

	return &entity.MutationResult{
		Outcome: entity.OutcomeUpdated,
		ID:      artist.ID,
		Name:    artist.Name,
		Message: fmt.Sprintf("Artist %s was successfully updated!", artist.Name),
	}, nil
}
