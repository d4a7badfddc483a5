package service

import (
	"context"

	"github.com/ds124wfegd/listings/internal/database/repository"
	"github.com/ds124wfegd/listings/internal/entity"
	"github.com/sirupsen/logrus"
)

type showService struct {
	showRepo   repository.ShowRepository
	venueRepo  repository.VenueRepository
	artistRepo repository.ArtistRepository
}

func NewShowService(
	showRepo repository.ShowRepository,
	venueRepo repository.VenueRepository,
	artistRepo repository.ArtistRepository,
) ShowService {
	return &showService{
		showRepo:   showRepo,
		venueRepo:  venueRepo,
		artistRepo: artistRepo,
	}
}

// List returns every show with its venue and artist resolved, ordered by
// start time.
func (s *showService) List(ctx context.Context) ([]entity.ShowListing, error) {
	shows, err := s.showRepo.GetAll(ctx)
	if err != nil {
		return nil, storeError("failed to get shows", err)
	}

	venues := make(map[int64]*entity.Venue)
	artists := make(map[int64]*entity.Artist)

	listings := make([]entity.ShowListing, 0, len(shows))
	for _, show := range shows {
		venue, ok := venues[show.VenueID]
		if !ok {
			venue, err = s.venueRepo.GetByID(ctx, show.VenueID)
			if err != nil {
				return nil, storeError("failed to resolve show venue", err)
			}
			venues[show.VenueID] = venue
		}

		artist, ok := artists[show.ArtistID]
		if !ok {
			artist, err = s.artistRepo.GetByID(ctx, show.ArtistID)
			if err != nil {
				return nil, storeError("failed to resolve show artist", err)
			}
			artists[show.ArtistID] = artist
		}

		listings = append(listings, entity.ShowListing{
			ID:              show.ID,
			VenueID:         venue.ID,
			VenueName:       venue.Name,
			ArtistID:        artist.ID,
			ArtistName:      artist.Name,
			ArtistImageLink: artist.ImageLink,
			StartTime:       show.StartTime,
		})
	}

	return listings, nil
}

func (s *showService) Create(ctx context.Context, req *ShowRequest) (*entity.MutationResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	show := &entity.Show{
		VenueID:   req.VenueID,
		ArtistID:  req.ArtistID,
		StartTime: req.StartTime,
	}
	if err := s.showRepo.Create(ctx, show); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"venue_id":  show.VenueID,
			"artist_id": show.ArtistID,
		}).Error("Failed to create show")
		return nil, storeError("failed to create show", err)
	}

	logrus.WithFields(logrus.Fields{
		"show_id":    show.ID,
		"venue_id":   show.VenueID,
		"artist_id":  show.ArtistID,
		"start_time": show.StartTime,
	}).Info("Show created")

	return &entity.MutationResult{
		Outcome: entity.OutcomeCreated,
		ID:      show.ID,
		Message: "Show was successfully listed!",
	}, nil
}
