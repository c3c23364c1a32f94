package announcements

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goshen-supply/storefront/internal/shared"
)

// Repository defines persistence operations for ads.
type Repository interface {
	List(ctx context.Context) ([]Ad, error)
	Get(ctx context.Context, id int64) (Ad, error)
	Insert(ctx context.Context, ad Ad) (Ad, error)
	Delete(ctx context.Context, id int64) error
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	db *pgxpool.Pool
}

// NewPGRepository constructs a PostgreSQL repository.
func NewPGRepository(db *pgxpool.Pool) *PGRepository {
	return &PGRepository{db: db}
}

// List returns all ads, most recent first. The id tiebreak keeps the order
// stable when two ads share a timestamp.
func (r *PGRepository) List(ctx context.Context) ([]Ad, error) {
	query := `SELECT id, content, date_posted FROM ads ORDER BY date_posted DESC, id DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ads []Ad
	for rows.Next() {
		var a Ad
		if err := rows.Scan(&a.ID, &a.Content, &a.DatePosted); err != nil {
			return nil, err
		}
		ads = append(ads, a)
	}
	return ads, rows.Err()
}

func (r *PGRepository) Get(ctx context.Context, id int64) (Ad, error) {
	query := `SELECT id, content, date_posted FROM ads WHERE id = $1`
	var a Ad
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.Content, &a.DatePosted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Ad{}, shared.ErrNotFound
		}
		return Ad{}, err
	}
	return a, nil
}

func (r *PGRepository) Insert(ctx context.Context, ad Ad) (Ad, error) {
	query := `INSERT INTO ads (content, date_posted) VALUES ($1, $2) RETURNING id`
	err := r.db.QueryRow(ctx, query, ad.Content, ad.DatePosted).Scan(&ad.ID)
	if err != nil {
		return Ad{}, err
	}
	return ad, nil
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ Repository = (*PGRepository)(nil)
