package repository

import (
	"context"
	"fmt"

	"github.com/ds124wfegd/listings/internal/entity"
	"github.com/jmoiron/sqlx"
)

type showRepository struct {
	db *sqlx.DB
}

func NewShowRepository(db *sqlx.DB) ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) Create(ctx context.Context, show *entity.Show) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := ensureExists(ctx, tx, "venues", show.VenueID, entity.ErrVenueNotFound); err != nil {
		return err
	}
	if err := ensureExists(ctx, tx, "artists", show.ArtistID, entity.ErrArtistNotFound); err != nil {
		return err
	}

	query := tx.Rebind(`
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES (?, ?, ?)
		RETURNING id
	`)

	show.StartTime = show.StartTime.UTC()
	err = tx.QueryRowxContext(ctx, query, show.VenueID, show.ArtistID, show.StartTime).Scan(&show.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("show references a missing row: %w", entity.ErrNotFound)
		}
		return fmt.Errorf("failed to insert show: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *showRepository) GetAll(ctx context.Context) ([]entity.Show, error) {
	query := `SELECT id, venue_id, artist_id, start_time FROM shows ORDER BY start_time, id`
	return r.selectShows(ctx, query)
}

func (r *showRepository) GetByVenueID(ctx context.Context, venueID int64) ([]entity.Show, error) {
	query := `SELECT id, venue_id, artist_id, start_time FROM shows WHERE venue_id = ? ORDER BY start_time, id`
	return r.selectShows(ctx, query, venueID)
}

func (r *showRepository) GetByArtistID(ctx context.Context, artistID int64) ([]entity.Show, error) {
	query := `SELECT id, venue_id, artist_id, start_time FROM shows WHERE artist_id = ? ORDER BY start_time, id`
	return r.selectShows(ctx, query, artistID)
}

func (r *showRepository) selectShows(ctx context.Context, query string, args ...interface{}) ([]entity.Show, error) {
	shows := []entity.Show{}
	if err := r.db.SelectContext(ctx, &shows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get shows: %w", err)
	}
	for i := range shows {
		shows[i].StartTime = shows[i].StartTime.UTC()
	}
	return shows, nil
}

// ensureExists must run inside the transaction that inserts the show.
func ensureExists(ctx context.Context, tx *sqlx.Tx, table string, id int64, notFound error) error {
	query := tx.Rebind(`SELECT COUNT(*) FROM ` + table + ` WHERE id = ?`)

	var count int
	if err := tx.GetContext(ctx, &count, query, id); err != nil {
		return fmt.Errorf("failed to check %s: %w", table, err)
	}
	if count == 0 {
		return notFound
	}
	return nil
}
