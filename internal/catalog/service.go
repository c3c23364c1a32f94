package catalog

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/goshen-supply/storefront/internal/shared"
)

// CreateInput carries the fields for a new product. Featured is optional
// and defaults to false; everything else is required.
type CreateInput struct {
	Name        string  `validate:"required,max=150"`
	Description string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Link        string  `validate:"required,max=500"`
	Featured    bool
}

// Service wraps catalog business rules over a Repository.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// List returns every product in insertion order.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

// ListFeatured returns the products flagged for the landing page highlight.
func (s *Service) ListFeatured(ctx context.Context) ([]Product, error) {
	return s.repo.ListFeatured(ctx)
}

// Get fetches one product by id.
func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	if id <= 0 {
		return Product{}, shared.ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

// Create validates the input and persists a new product. On validation
// failure nothing is written.
func (s *Service) Create(ctx context.Context, input CreateInput) (Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return Product{}, fmt.Errorf("%w: %v", shared.ErrValidation, err)
	}
	product := Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Link:        input.Link,
		Featured:    input.Featured,
	}
	return s.repo.Insert(ctx, product)
}

// Delete removes a product by id; ErrNotFound when the id does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return shared.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
