package announcements

import (
	"context"
	"sort"
	"sync"

	"github.com/goshen-supply/storefront/internal/shared"
)

// MemoryRepository is the in-process Repository used in dev mode and tests.
type MemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	ads    []Ad
}

// NewMemoryRepository constructs an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

// List returns ads most recent first, id descending on equal timestamps.
func (r *MemoryRepository) List(ctx context.Context) ([]Ad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Ad, len(r.ads))
	copy(out, r.ads)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DatePosted.Equal(out[j].DatePosted) {
			return out[i].ID > out[j].ID
		}
		return out[i].DatePosted.After(out[j].DatePosted)
	})
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (Ad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.ads {
		if a.ID == id {
			return a, nil
		}
	}
	return Ad{}, shared.ErrNotFound
}

func (r *MemoryRepository) Insert(ctx context.Context, ad Ad) (Ad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ad.ID = r.nextID
	r.nextID++
	r.ads = append(r.ads, ad)
	return ad, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.ads {
		if a.ID == id {
			r.ads = append(r.ads[:i], r.ads[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

var _ Repository = (*MemoryRepository)(nil)
