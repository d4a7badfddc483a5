package entity

import "time"

type Show struct {
	ID        int64     `json:"id" db:"id"`
	VenueID   int64     `json:"venue_id" db:"venue_id"`
	ArtistID  int64     `json:"artist_id" db:"artist_id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
}

// Counterpart is the other side of a show: the artist when looking from a
// venue, the venue when looking from an artist.
type Counterpart struct {
	ID        int64
	Name      string
	ImageLink string
}

type ShowSummary struct {
	CounterpartID        int64     `json:"counterpart_id"`
	CounterpartName      string    `json:"counterpart_name"`
	CounterpartImageLink string    `json:"counterpart_image_link"`
	StartTime            time.Time `json:"start_time"`
}

// ShowListing is one row of the flat show list with both sides resolved.
type ShowListing struct {
	ID              int64     `json:"id"`
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}
