package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ds124wfegd/listings/internal/entity"
	"github.com/ds124wfegd/listings/internal/listing"
	"github.com/jmoiron/sqlx"
)

const venueColumns = `id, name, genres, city, state, address, phone, seeking_talent,
	seeking_description, image_link, website, facebook_link`

type venueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := tx.Rebind(`
		INSERT INTO venues (name, genres, city, state, address, phone, seeking_talent,
			seeking_description, image_link, website, facebook_link)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	err = tx.QueryRowxContext(ctx, query,
		venue.Name,
		venue.Genres,
		venue.City,
		venue.State,
		venue.Address,
		venue.Phone,
		venue.SeekingTalent,
		venue.SeekingDescription,
		venue.ImageLink,
		venue.Website,
		venue.FacebookLink,
	).Scan(&venue.ID)
	if err != nil {
		return fmt.Errorf("failed to insert venue: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *venueRepository) GetByID(ctx context.Context, id int64) (*entity.Venue, error) {
	query := r.db.Rebind(`SELECT ` + venueColumns + ` FROM venues WHERE id = ?`)

	var venue entity.Venue
	if err := r.db.GetContext(ctx, &venue, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	return &venue, nil
}

func (r *venueRepository) GetAll(ctx context.Context) ([]entity.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY id`

	venues := []entity.Venue{}
	if err := r.db.SelectContext(ctx, &venues, query); err != nil {
		return nil, fmt.Errorf("failed to get venues: %w", err)
	}
	return venues, nil
}

func (r *venueRepository) FindWhere(ctx context.Context, keep func(entity.Venue) bool) ([]entity.Venue, error) {
	venues, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return listing.Filter(venues, keep), nil
}

func (r *venueRepository) Update(ctx context.Context, venue *entity.Venue) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := tx.Rebind(`
		UPDATE venues
		SET name = ?, genres = ?, city = ?, state = ?, address = ?, phone = ?,
			seeking_talent = ?, seeking_description = ?, image_link = ?, website = ?,
			facebook_link = ?
		WHERE id = ?
	`)

	result, err := tx.ExecContext(ctx, query,
		venue.Name,
		venue.Genres,
		venue.City,
		venue.State,
		venue.Address,
		venue.Phone,
		venue.SeekingTalent,
		venue.SeekingDescription,
		venue.ImageLink,
		venue.Website,
		venue.FacebookLink,
		venue.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update venue: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrVenueNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *venueRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	hasShows, err := venueHasShows(ctx, tx, id)
	if err != nil {
		return err
	}
	if hasShows {
		return entity.ErrVenueHasShows
	}

	query := tx.Rebind(`DELETE FROM venues WHERE id = ?`)
	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		if isForeignKeyViolation(err) {
			return entity.ErrVenueHasShows
		}
		return fmt.Errorf("failed to delete venue: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func venueHasShows(ctx context.Context, q sqlx.ExtContext, id int64) (bool, error) {
	query := q.Rebind(`SELECT COUNT(*) FROM shows WHERE venue_id = ?`)

	var count int
	if err := sqlx.GetContext(ctx, q, &count, query, id); err != nil {
		return false, fmt.Errorf("failed to count venue shows: %w", err)
	}
	return count > 0, nil
}
