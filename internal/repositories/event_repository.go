package repositories

import (
	"context"
	"sync"

	"github.com/propertyfinder/listings-service/internal/models"
	"github.com/propertyfinder/listings-service/internal/utils"
)

// EventRepository stores calendar events. Events are created whole and
// removed whole; nothing updates them in place.
type EventRepository interface {
	List(ctx context.Context) ([]*models.CalendarEvent, error)
	ListByOwner(ctx context.Context, ownerID int) ([]*models.CalendarEvent, error)
	GetByID(ctx context.Context, id int) (*models.CalendarEvent, error)
	Create(ctx context.Context, e *models.CalendarEvent) (*models.CalendarEvent, error)
	Delete(ctx context.Context, id int) error
}

type memoryEventRepository struct {
	mu     sync.RWMutex
	events []*models.CalendarEvent
}

func NewEventRepository() EventRepository {
	return &memoryEventRepository{}
}

func (r *memoryEventRepository) List(ctx context.Context) ([]*models.CalendarEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.CalendarEvent, 0, len(r.events))
	for _, e := range r.events {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryEventRepository) ListByOwner(ctx context.Context, ownerID int) ([]*models.CalendarEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.CalendarEvent
	for _, e := range r.events {
		if e.OwnerID == ownerID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memoryEventRepository) GetByID(ctx context.Context, id int) (*models.CalendarEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.events {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memoryEventRepository) Create(ctx context.Context, e *models.CalendarEvent) (*models.CalendarEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, existing := range r.events {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	cp := *e
	cp.ID = maxID + 1
	r.events = append(r.events, &cp)

	out := cp
	return &out, nil
}

func (r *memoryEventRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.events {
		if existing.ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}
