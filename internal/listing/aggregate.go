// Package listing holds the read-side aggregation over venues, artists and
// shows: grouping by location, splitting shows around an instant and name
// matching. It works on values already loaded from the store.
package listing

import (
	"time"

	"github.com/ds124wfegd/listings/internal/entity"
)

// Clock returns the reference instant of a request.
type Clock func() time.Time

type location struct {
	city  string
	state string
}

// GroupByLocation buckets venues by their literal (city, state) pair in
// first-seen order. upcoming maps a venue id to its upcoming show count.
func GroupByLocation(venues []entity.Venue, upcoming map[int64]int) []entity.LocationBucket {
	buckets := make([]entity.LocationBucket, 0)
	index := make(map[location]int)

	for _, venue := range venues {
		summary := entity.Summary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: upcoming[venue.ID],
		}

		key := location{city: venue.City, state: venue.State}
		if i, ok := index[key]; ok {
			buckets[i].Venues = append(buckets[i].Venues, summary)
			continue
		}

		index[key] = len(buckets)
		buckets = append(buckets, entity.LocationBucket{
			City:   venue.City,
			State:  venue.State,
			Venues: []entity.Summary{summary},
		})
	}

	return buckets
}
