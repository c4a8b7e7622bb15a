package services

import (
	"context"
	"strings"
	"time"

	"github.com/propertyfinder/listings-service/internal/models"
	"github.com/propertyfinder/listings-service/internal/repositories"
	"github.com/propertyfinder/listings-service/internal/utils"
)

type InboxService struct {
	messageRepo      repositories.MessageRepository
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

func NewInboxService(
	messageRepo repositories.MessageRepository,
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
) *InboxService {
	return &InboxService{
		messageRepo:      messageRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

func (s *InboxService) ListMessages(ctx context.Context, ownerID int) ([]*models.Message, error) {
	return s.messageRepo.ListByOwner(ctx, ownerID)
}

func (s *InboxService) MarkMessageRead(ctx context.Context, ownerID, id int) error {
	return s.messageRepo.MarkRead(ctx, ownerID, id)
}

// ReplyToMessage marks the original message read and, when the sender
// matches a known account, drops the reply into that account's inbox.
// Messages from outside the platform (no matching account) are simply
// marked read.
func (s *InboxService) ReplyToMessage(ctx context.Context, ownerID, id int, content string) error {
	original, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if original == nil || original.OwnerID != ownerID {
		return utils.ErrNotFound
	}
	if err := s.messageRepo.MarkRead(ctx, ownerID, id); err != nil {
		return err
	}

	replier, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return err
	}
	if replier == nil {
		return utils.ErrNotFound
	}

	recipient, err := s.findByName(ctx, original.Sender)
	if err != nil {
		return err
	}
	if recipient == nil || recipient.ID == ownerID {
		return nil
	}

	subject := original.Subject
	if !strings.HasPrefix(subject, "Re: ") {
		subject = "Re: " + subject
	}
	_, err = s.messageRepo.Create(ctx, &models.Message{
		OwnerID: recipient.ID,
		Sender:  replier.Name,
		Avatar:  replier.Avatar,
		Subject: subject,
		Content: content,
		Date:    time.Now(),
	})
	return err
}

func (s *InboxService) findByName(ctx context.Context, name string) (*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Name, name) {
			return u, nil
		}
	}
	return nil, nil
}

func (s *InboxService) MarkAllMessagesRead(ctx context.Context, ownerID int) error {
	return s.messageRepo.MarkAllRead(ctx, ownerID)
}

func (s *InboxService) ListNotifications(ctx context.Context, ownerID int) ([]*models.Notification, error) {
	return s.notificationRepo.ListByOwner(ctx, ownerID)
}

func (s *InboxService) MarkNotificationRead(ctx context.Context, ownerID, id int) error {
	return s.notificationRepo.MarkRead(ctx, ownerID, id)
}

func (s *InboxService) MarkAllNotificationsRead(ctx context.Context, ownerID int) error {
	return s.notificationRepo.MarkAllRead(ctx, ownerID)
}

func (s *InboxService) ClearNotifications(ctx context.Context, ownerID int) error {
	return s.notificationRepo.ClearAll(ctx, ownerID)
}
