package entity

// Summary is the compact row used by the location listing and by search
// results, for venues and artists alike.
type Summary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// LocationBucket groups venues sharing the exact same city and state.
type LocationBucket struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

type SearchResult struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
	OutcomeDeleted Outcome = "deleted"
)

// MutationResult reports a successful create, update or delete. Failures are
// returned as errors instead.
type MutationResult struct {
	Outcome Outcome `json:"outcome"`
	ID      int64   `json:"id"`
	Name    string  `json:"name,omitempty"`
	Message string  `json:"message"`
}
