package entity

type Artist struct {
	ID                 int64  `json:"id" db:"id"`
	Name               string `json:"name" db:"name"`
	City               string `json:"city" db:"city"`
	State              string `json:"state" db:"state"`
	Phone              string `json:"phone" db:"phone"`
	Genres             Tags   `json:"genres" db:"genres"`
	SeekingVenue       bool   `json:"seeking_venue" db:"seeking_venue"`
	SeekingDescription string `json:"seeking_description" db:"seeking_description"`
	ImageLink          string `json:"image_link" db:"image_link"`
	Website            string `json:"website" db:"website"`
	FacebookLink       string `json:"facebook_link" db:"facebook_link"`
}

type ArtistDetail struct {
	Artist
	PastShows          []ShowSummary `json:"past_shows"`
	UpcomingShows      []ShowSummary `json:"upcoming_shows"`
	PastShowsCount     int           `json:"past_shows_count"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
}

// ArtistRef is the row of the plain artists listing.
type ArtistRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
