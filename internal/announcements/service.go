package announcements

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/goshen-supply/storefront/internal/shared"
)

// CreateInput carries the content for a new ad.
type CreateInput struct {
	Content string `validate:"required,max=300"`
}

// Service wraps announcement business rules over a Repository.
type Service struct {
	repo     Repository
	validate *validator.Validate
	now      func() time.Time
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New(), now: time.Now}
}

// List returns all ads, most recent first.
func (s *Service) List(ctx context.Context) ([]Ad, error) {
	return s.repo.List(ctx)
}

// Create validates the content and persists a new ad stamped with the
// current UTC time. On validation failure nothing is written.
func (s *Service) Create(ctx context.Context, input CreateInput) (Ad, error) {
	if err := s.validate.Struct(input); err != nil {
		return Ad{}, fmt.Errorf("%w: %v", shared.ErrValidation, err)
	}
	ad := Ad{
		Content:    input.Content,
		DatePosted: s.now().UTC(),
	}
	return s.repo.Insert(ctx, ad)
}

// Delete removes an ad by id; ErrNotFound when the id does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return shared.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// SetClockForTest overrides the creation timestamp source.
func (s *Service) SetClockForTest(now func() time.Time) {
	s.now = now
}
