package listing

import (
	"context"
	"time"

	"github.com/ds124wfegd/listings/internal/entity"
)

// Resolver loads the counterpart of a show by id. It must return an error
// matching entity.ErrNotFound when the id does not resolve.
type Resolver func(ctx context.Context, id int64) (entity.Counterpart, error)

// Partition splits shows around now. A show starting exactly at now belongs
// to neither side.
func Partition(shows []entity.Show, now time.Time) (past, upcoming []entity.Show) {
	past = make([]entity.Show, 0)
	upcoming = make([]entity.Show, 0)

	for _, show := range shows {
		switch {
		case show.StartTime.Before(now):
			past = append(past, show)
		case show.StartTime.After(now):
			upcoming = append(upcoming, show)
		}
	}

	return past, upcoming
}

// CountUpcomingBy counts shows starting after now, keyed by key(show).
func CountUpcomingBy(shows []entity.Show, now time.Time, key func(entity.Show) int64) map[int64]int {
	counts := make(map[int64]int)
	for _, show := range shows {
		if show.StartTime.After(now) {
			counts[key(show)]++
		}
	}
	return counts
}

func ByVenue(show entity.Show) int64  { return show.VenueID }
func ByArtist(show entity.Show) int64 { return show.ArtistID }

// Summarize denormalises shows with their counterpart. counterpartID picks
// which reference of the show to resolve. The first resolve error aborts.
func Summarize(ctx context.Context, shows []entity.Show, counterpartID func(entity.Show) int64, resolve Resolver) ([]entity.ShowSummary, error) {
	summaries := make([]entity.ShowSummary, 0, len(shows))
	resolved := make(map[int64]entity.Counterpart)

	for _, show := range shows {
		id := counterpartID(show)

		counterpart, ok := resolved[id]
		if !ok {
			var err error
			counterpart, err = resolve(ctx, id)
			if err != nil {
				return nil, err
			}
			resolved[id] = counterpart
		}

		summaries = append(summaries, entity.ShowSummary{
			CounterpartID:        counterpart.ID,
			CounterpartName:      counterpart.Name,
			CounterpartImageLink: counterpart.ImageLink,
			StartTime:            show.StartTime,
		})
	}

	return summaries, nil
}
