package service

import (
	"strings"
	"time"

	"github.com/ds124wfegd/listings/internal/entity"
)

// ShowTimeLayout is the form layout of a show start time.
const ShowTimeLayout = "2006-01-02 15:04:05"

// VenueRequest is a venue submission. Update overwrites every field.
type VenueRequest struct {
	Name               string   `json:"name" form:"name" validate:"required"`
	City               string   `json:"city" form:"city" validate:"required"`
	State              string   `json:"state" form:"state" validate:"required,usstate"`
	Address            string   `json:"address" form:"address" validate:"required"`
	Phone              string   `json:"phone" form:"phone" validate:"required,phone"`
	Genres             []string `json:"genres" form:"genres" validate:"required,min=1,dive,genre"`
	SeekingTalent      bool     `json:"seeking_talent" form:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description"`
	ImageLink          string   `json:"image_link" form:"image_link"`
	Website            string   `json:"website" form:"website"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link"`
}

func (r *VenueRequest) normalize() {
	trimAll(&r.Name, &r.City, &r.State, &r.Address, &r.Phone,
		&r.SeekingDescription, &r.ImageLink, &r.Website, &r.FacebookLink)
	r.Genres = entity.NewTags(r.Genres...)
}

func (r *VenueRequest) toVenue(id int64) *entity.Venue {
	return &entity.Venue{
		ID:                 id,
		Name:               r.Name,
		Genres:             entity.NewTags(r.Genres...),
		City:               r.City,
		State:              r.State,
		Address:            r.Address,
		Phone:              r.Phone,
		SeekingTalent:      r.SeekingTalent,
		SeekingDescription: r.SeekingDescription,
		ImageLink:          r.ImageLink,
		Website:            r.Website,
		FacebookLink:       r.FacebookLink,
	}
}

// ArtistRequest is an artist submission. Update overwrites every field.
type ArtistRequest struct {
	Name               string   `json:"name" form:"name" validate:"required"`
	City               string   `json:"city" form:"city" validate:"required"`
	State              string   `json:"state" form:"state" validate:"required,usstate"`
	Phone              string   `json:"phone" form:"phone" validate:"required,phone"`
	Genres             []string `json:"genres" form:"genres" validate:"required,min=1,dive,genre"`
	SeekingVenue       bool     `json:"seeking_venue" form:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description"`
	ImageLink          string   `json:"image_link" form:"image_link"`
	Website            string   `json:"website" form:"website"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link"`
}

func (r *ArtistRequest) normalize() {
	trimAll(&r.Name, &r.City, &r.State, &r.Phone,
		&r.SeekingDescription, &r.ImageLink, &r.Website, &r.FacebookLink)
	r.Genres = entity.NewTags(r.Genres...)
}

func (r *ArtistRequest) toArtist(id int64) *entity.Artist {
	return &entity.Artist{
		ID:                 id,
		Name:               r.Name,
		City:               r.City,
		State:              r.State,
		Phone:              r.Phone,
		Genres:             entity.NewTags(r.Genres...),
		SeekingVenue:       r.SeekingVenue,
		SeekingDescription: r.SeekingDescription,
		ImageLink:          r.ImageLink,
		Website:            r.Website,
		FacebookLink:       r.FacebookLink,
	}
}

type ShowRequest struct {
	VenueID   int64     `json:"venue_id" form:"venue_id" validate:"required,gt=0"`
	ArtistID  int64     `json:"artist_id" form:"artist_id" validate:"required,gt=0"`
	StartTime time.Time `json:"start_time" form:"start_time" time_format:"2006-01-02 15:04:05" validate:"required"`
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
