package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/goshen-supply/storefront/internal/shared"
)

// Repository defines persistence operations for products.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	ListFeatured(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Insert(ctx context.Context, product Product) (Product, error)
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

func (r *PGRepository) List(ctx context.Context) ([]Product, error) {
	query := `SELECT id, name, description, price, link, featured FROM products ORDER BY id`
	return r.queryProducts(ctx, query)
}

func (r *PGRepository) ListFeatured(ctx context.Context) ([]Product, error) {
	query := `SELECT id, name, description, price, link, featured FROM products WHERE featured = TRUE ORDER BY id`
	return r.queryProducts(ctx, query)
}

func (r *PGRepository) Get(ctx context.Context, id int64) (Product, error) {
	query := `SELECT id, name, description, price, link, featured FROM products WHERE id = $1`
	var p Product
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Link, &p.Featured)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, shared.ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PGRepository) Insert(ctx context.Context, product Product) (Product, error) {
	query := `INSERT INTO products (name, description, price, link, featured) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, query, product.Name, product.Description, product.Price, product.Link, product.Featured).Scan(&product.ID)
	if err != nil {
		return Product{}, err
	}
	return product, nil
}

// Delete removes a product. A delete targeting an id that no longer exists
// reports ErrNotFound instead of silently succeeding.
func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *PGRepository) queryProducts(ctx context.Context, query string) ([]Product, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Link, &p.Featured); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

var _ Repository = (*PGRepository)(nil)
