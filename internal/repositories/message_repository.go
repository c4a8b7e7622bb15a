package repositories

import (
	"context"
	"sync"

	"github.com/propertyfinder/listings-service/internal/models"
	"github.com/propertyfinder/listings-service/internal/utils"
)

type MessageRepository interface {
	ListByOwner(ctx context.Context, ownerID int) ([]*models.Message, error)
	GetByID(ctx context.Context, id int) (*models.Message, error)
	Create(ctx context.Context, m *models.Message) (*models.Message, error)
	MarkRead(ctx context.Context, ownerID, id int) error
	MarkAllRead(ctx context.Context, ownerID int) error
}

type memoryMessageRepository struct {
	mu       sync.RWMutex
	messages []*models.Message
}

func NewMessageRepository() MessageRepository {
	return &memoryMessageRepository{}
}

func (r *memoryMessageRepository) ListByOwner(ctx context.Context, ownerID int) ([]*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.Message
	for _, m := range r.messages {
		if m.OwnerID == ownerID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memoryMessageRepository) GetByID(ctx context.Context, id int) (*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.messages {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memoryMessageRepository) Create(ctx context.Context, m *models.Message) (*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, existing := range r.messages {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	cp := *m
	cp.ID = maxID + 1
	r.messages = append(r.messages, &cp)

	out := cp
	return &out, nil
}

func (r *memoryMessageRepository) MarkRead(ctx context.Context, ownerID, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.messages {
		if m.ID == id && m.OwnerID == ownerID {
			m.Read = true
			return nil
		}
	}
	return utils.ErrNotFound
}

func (r *memoryMessageRepository) MarkAllRead(ctx context.Context, ownerID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.messages {
		if m.OwnerID == ownerID {
			m.Read = true
		}
	}
	return nil
}
