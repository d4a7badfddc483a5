package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ds124wfegd/listings/internal/database/repository"
	"github.com/ds124wfegd/listings/internal/entity"
	"github.com/ds124wfegd/listings/internal/listing"
	"github.com/sirupsen/logrus"
)

type venueService struct {
	venueRepo  repository.VenueRepository
	artistRepo repository.ArtistRepository
	showRepo   repository.ShowRepository
	now        listing.Clock
}

// NewVenueService creates a new instance of VenueService. A nil clock means
// time.Now.
func NewVenueService(
	venueRepo repository.VenueRepository,
	artistRepo repository.ArtistRepository,
	showRepo repository.ShowRepository,
	clock listing.Clock,
) VenueService {
	return &venueService{
		venueRepo:  venueRepo,
		artistRepo: artistRepo,
		showRepo:   showRepo,
		now:        clockOrNow(clock),
	}
}

func (s *venueService) ListByLocation(ctx context.Context) ([]entity.LocationBucket, error) {
	venues, err := s.venueRepo.GetAll(ctx)
	if err != nil {
		return nil, storeError("failed to get venues", err)
	}

	shows, err := s.showRepo.GetAll(ctx)
	if err != nil {
		return nil, storeError("failed to get shows", err)
	}

	upcoming := listing.CountUpcomingBy(shows, s.now(), listing.ByVenue)
	return listing.GroupByLocation(venues, upcoming), nil
}

func (s *venueService) Search(ctx context.Context, term string) (*entity.SearchResult, error) {
	venues, err := s.venueRepo.FindWhere(ctx, func(v entity.Venue) bool {
		return listing.MatchName(v.Name, term)
	})
	if err != nil {
		return nil, storeError("failed to search venues", err)
	}

	shows, err := s.showRepo.GetAll(ctx)
	if err != nil {
		return nil, storeError("failed to get shows", err)
	}

	upcoming := listing.CountUpcomingBy(shows, s.now(), listing.ByVenue)
	data := make([]entity.Summary, 0, len(venues))
	for _, venue := range venues {
		data = append(data, entity.Summary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: upcoming[venue.ID],
		})
	}

	return &entity.SearchResult{Count: len(data), Data: data}, nil
}

func (s *venueService) GetDetail(ctx context.Context, id int64) (*entity.VenueDetail, error) {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("failed to get venue", err)
	}

	shows, err := s.showRepo.GetByVenueID(ctx, id)
	if err != nil {
		return nil, storeError("failed to get venue shows", err)
	}

	past, upcoming := listing.Partition(shows, s.now())

	pastShows, err := listing.Summarize(ctx, past, listing.ByArtist, s.resolveArtist)
	if err != nil {
		return nil, storeError("failed to resolve past shows", err)
	}
	upcomingShows, err := listing.Summarize(ctx, upcoming, listing.ByArtist, s.resolveArtist)
	if err != nil {
		return nil, storeError("failed to resolve upcoming shows", err)
	}

	return &entity.VenueDetail{
		Venue:              *venue,
		PastShows:          pastShows,
		UpcomingShows:      upcomingShows,
		PastShowsCount:     len(pastShows),
		UpcomingShowsCount: len(upcomingShows),
	}, nil
}

func (s *venueService) resolveArtist(ctx context.Context, id int64) (entity.Counterpart, error) {
	artist, err := s.artistRepo.GetByID(ctx, id)
	if err != nil {
		return entity.Counterpart{}, err
	}
	return entity.Counterpart{ID: artist.ID, Name: artist.Name, ImageLink: artist.ImageLink}, nil
}

func (s *venueService) Create(ctx context.Context, req *VenueRequest) (*entity.MutationResult, error) {
	req.normalize()
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	venue := req.toVenue(0)
	if err := s.venueRepo.Create(ctx, venue); err != nil {
		logrus.WithError(err).WithField("name", venue.Name).Error("Failed to create venue")
		return nil, storeError("failed to create venue", err)
	}

	logrus.WithFields(logrus.Fields{
		"venue_id": venue.ID,
		"name":     venue.Name,
	}).Info("Venue created")

	return &entity.MutationResult{
		Outcome: entity.OutcomeCreated,
		ID:      venue.ID,
		Name:    venue.Name,
		Message: fmt.Sprintf("Venue %s was successfully listed!", venue.Name),
	}, nil
}

func (s *venueService) Update(ctx context.Context, id int64, req *VenueRequest) (*entity.MutationResult, error) {
	req.normalize()
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	venue := req.toVenue(id)
	if err := s.venueRepo.Update(ctx, venue); err != nil {
		logrus.WithError(err).WithField("venue_id", id).Error("Failed to update venue")
		return nil, storeError("failed to update venue", err)
	}

	logrus.WithFields(logrus.Fields{
		"venue_id": venue.ID,
		"name":     venue.Name,
	}).Info("Venue updated")

	return &entity.MutationResult{
		Outcome: entity.OutcomeUpdated,
		ID:      venue.ID,
		Name:    venue.Name,
		Message: fmt.Sprintf("Venue %s was successfully updated!", venue.Name),
	}, nil
}

// Delete removes a venue without shows. An unknown id succeeds and changes
// nothing.
func (s *venueService) Delete(ctx context.Context, id int64) (*entity.MutationResult, error) {
	result := &entity.MutationResult{
		Outcome: entity.OutcomeDeleted,
		ID:      id,
		Message: "Venue was successfully deleted!",
	}

	venue, err := s.venueRepo.GetByID(ctx, id)
	switch {
	case err == nil:
		result.Name = venue.Name
		result.Message = fmt.Sprintf("Venue %s was successfully deleted!", venue.Name)
	case !errors.Is(err, entity.ErrNotFound):
		return nil, storeError("failed to get venue", err)
	}

	if err := s.venueRepo.Delete(ctx, id); err != nil {
		logrus.WithError(err).WithField("venue_id", id).Error("Failed to delete venue")
		return nil, storeError("failed to delete venue", err)
	}

	logrus.WithField("venue_id", id).Info("Venue deleted")
	return result, nil
}
