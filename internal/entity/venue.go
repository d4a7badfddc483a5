package entity

type Venue struct {
	ID                 int64  `json:"id" db:"id"`
	Name               string `json:"name" db:"name"`
	Genres             Tags   `json:"genres" db:"genres"`
	City               string `json:"city" db:"city"`
	State              string `json:"state" db:"state"`
	Address            string `json:"address" db:"address"`
	Phone              string `json:"phone" db:"phone"`
	SeekingTalent      bool   `json:"seeking_talent" db:"seeking_talent"`
	SeekingDescription string `json:"seeking_description" db:"seeking_description"`
	ImageLink          string `json:"image_link" db:"image_link"`
	Website            string `json:"website" db:"website"`
	FacebookLink       string `json:"facebook_link" db:"facebook_link"`
}

// VenueDetail is a venue with its shows split around the request instant.
type VenueDetail struct {
	Venue
	PastShows          []ShowSummary `json:"past_shows"`
	UpcomingShows      []ShowSummary `json:"upcoming_shows"`
	PastShowsCount     int           `json:"past_shows_count"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
}
