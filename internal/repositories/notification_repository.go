package repositories

import (
	"context"
	"sync"

	"github.com/propertyfinder/listings-service/internal/models"
	"github.com/propertyfinder/listings-service/internal/utils"
)

type NotificationRepository interface {
	ListByOwner(ctx context.Context, ownerID int) ([]*models.Notification, error)
	Create(ctx context.Context, n *models.Notification) (*models.Notification, error)
	MarkRead(ctx context.Context, ownerID, id int) error
	MarkAllRead(ctx context.Context, ownerID int) error
	ClearAll(ctx context.Context, ownerID int) error
}

type memoryNotificationRepository struct {
	mu            sync.RWMutex
	notifications []*models.Notification
}

func NewNotificationRepository() NotificationRepository {
	return &memoryNotificationRepository{}
}

func (r *memoryNotificationRepository) ListByOwner(ctx context.Context, ownerID int) ([]*models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.Notification
	for _, n := range r.notifications {
		if n.OwnerID == ownerID {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memoryNotificationRepository) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, existing := range r.notifications {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	cp := *n
	cp.ID = maxID + 1
	r.notifications = append(r.notifications, &cp)

	out := cp
	return &out, nil
}

func (r *memoryNotificationRepository) MarkRead(ctx context.Context, ownerID, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		if n.ID == id && n.OwnerID == ownerID {
			n.Read = true
			return nil
		}
	}
	return utils.ErrNotFound
}

func (r *memoryNotificationRepository) MarkAllRead(ctx context.Context, ownerID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		if n.OwnerID == ownerID {
			n.Read = true
		}
	}
	return nil
}

func (r *memoryNotificationRepository) ClearAll(ctx context.Context, ownerID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.notifications[:0]
	for _, n := range r.notifications {
		if n.OwnerID != ownerID {
			kept = append(kept, n)
		}
	}
	r.notifications = kept
	return nil
}
