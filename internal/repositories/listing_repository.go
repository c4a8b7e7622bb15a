package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/propertyfinder/listings-service/internal/models"
	"github.com/propertyfinder/listings-service/internal/utils"
)

// ListingRepository is the storage boundary for property listings.
// The shipped implementation is in-memory: the application works entirely
// off seeded fixtures and keeps no durable state.
type ListingRepository interface {
	List(ctx context.Context) ([]*models.Listing, error)
	ListByOwner(ctx context.Context, ownerID int) ([]*models.Listing, error)
	GetByID(ctx context.Context, id int) (*models.Listing, error)
	Create(ctx context.Context, l *models.Listing) (*models.Listing, error)
	Update(ctx context.Context, l *models.Listing) (*models.Listing, error)
	Delete(ctx context.Context, id int) error
	IncrementViews(ctx context.Context, id int) error
	IncrementInquiries(ctx context.Context, id int) error
}

type memoryListingRepository struct {
	mu       sync.RWMutex
	listings []*models.Listing
}

func NewListingRepository() ListingRepository {
	return &memoryListingRepository{}
}

// List returns listings in insertion order. Callers get copies, so a
// returned record can be mutated freely and written back via Update.
func (r *memoryListingRepository) List(ctx context.Context) ([]*models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Listing, 0, len(r.listings))
	for _, l := range r.listings {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryListingRepository) ListByOwner(ctx context.Context, ownerID int) ([]*models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.Listing
	for _, l := range r.listings {
		if l.OwnerID == ownerID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memoryListingRepository) GetByID(ctx context.Context, id int) (*models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.listings {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

// Create assigns the next available id (max existing id + 1, or 1 when
// the store is empty) and stamps CreatedAt if unset.
func (r *memoryListingRepository) Create(ctx context.Context, l *models.Listing) (*models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, existing := range r.listings {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	cp := *l
	cp.ID = maxID + 1
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	r.listings = append(r.listings, &cp)

	out := cp
	return &out, nil
}

func (r *memoryListingRepository) Update(ctx context.Context, l *models.Listing) (*models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.listings {
		if existing.ID == l.ID {
			cp := *l
			r.listings[i] = &cp

			out := cp
			return &out, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *memoryListingRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.listings {
		if existing.ID == id {
			r.listings = append(r.listings[:i], r.listings[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

func (r *memoryListingRepository) IncrementViews(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.listings {
		if existing.ID == id {
			existing.Views++
			return nil
		}
	}
	return utils.ErrNotFound
}

func (r *memoryListingRepository) IncrementInquiries(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.listings {
		if existing.ID == id {
			existing.Inquiries++
			return nil
		}
	}
	return utils.ErrNotFound
}
