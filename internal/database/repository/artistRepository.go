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

const artistColumns = `id, name, city, state, phone, genres, seeking_venue,
	seeking_description, image_link, website, facebook_link`

type artistRepository struct {
	db *sqlx.DB
}

func NewArtistRepository(db *sqlx.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) Create(ctx context.Context, artist *entity.Artist) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := tx.Rebind(`
		INSERT INTO artists (name, city, state, phone, genres, seeking_venue,
			seeking_description, image_link, website, facebook_link)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	err = tx.QueryRowxContext(ctx, query,
		artist.Name,
		artist.City,
		artist.State,
		artist.Phone,
		artist.Genres,
		artist.SeekingVenue,
		artist.SeekingDescription,
		artist.ImageLink,
		artist.Website,
		artist.FacebookLink,
	).Scan(&artist.ID)
	if err != nil {
		return fmt.Errorf("failed to insert artist: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *artistRepository) GetByID(ctx context.Context, id int64) (*entity.Artist, error) {
	query := r.db.Rebind(`SELECT ` + artistColumns + ` FROM artists WHERE id = ?`)

	var artist entity.Artist
	if err := r.db.GetContext(ctx, &artist, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}
	return &artist, nil
}

func (r *artistRepository) GetAll(ctx context.Context) ([]entity.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY id`

	artists := []entity.Artist{}
	if err := r.db.SelectContext(ctx, &artists, query); err != nil {
		return nil, fmt.Errorf("failed to get artists: %w", err)
	}
	return artists, nil
}

func (r *artistRepository) FindWhere(ctx context.Context, keep func(entity.Artist) bool) ([]entity.Artist, error) {
	artists, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return listing.Filter(artists, keep), nil
}

func (r *artistRepository) Update(ctx context.Context, artist *entity.Artist) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := tx.Rebind(`
		UPDATE artists
		SET name = ?, city = ?, state = ?, phone = ?, genres = ?, seeking_venue = ?,
			seeking_description = ?, image_link = ?, website = ?, facebook_link = ?
		WHERE id = ?
	`)

	result, err := tx.ExecContext(ctx, query,
		artist.Name,
		artist.City,
		artist.State,
		artist.Phone,
		artist.Genres,
		artist.SeekingVenue,
		artist.SeekingDescription,
		artist.ImageLink,
		artist.Website,
		artist.FacebookLink,
		artist.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update artist: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrArtistNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
