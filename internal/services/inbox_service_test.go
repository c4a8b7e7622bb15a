package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/propertyfinder/listings-service/internal/models"
	"github.com/propertyfinder/listings-service/internal/repositories"
	"github.com/propertyfinder/listings-service/internal/utils"
)

type inboxFixture struct {
	svc      *InboxService
	messages repositories.MessageRepository
	johnID   int
	sarahID  int
}

func newInboxFixture(t *testing.T) *inboxFixture {
	t.Helper()
	ctx := context.Background()

	userRepo := repositories.NewUserRepository()
	john, err := userRepo.Create(ctx, &models.User{Name: "John Smith", Email: "john@example.com", Role: models.RoleBroker})
	require.NoError(t, err)
	sarah, err := userRepo.Create(ctx, &models.User{Name: "Sarah Johnson", Email: "sarah@example.com", Role: models.RoleBroker})
	require.NoError(t, err)

	messageRepo := repositories.NewMessageRepository()
	notificationRepo := repositories.NewNotificationRepository()

	return &inboxFixture{
		svc:      NewInboxService(messageRepo, notificationRepo, userRepo),
		messages: messageRepo,
		johnID:   john.ID,
		sarahID:  sarah.ID,
	}
}

func TestReplyDeliveredToSenderAccount(t *testing.T) {
	fx := newInboxFixture(t)
	ctx := context.Background()

	original, err := fx.messages.Create(ctx, &models.Message{
		OwnerID: fx.johnID, Sender: "Sarah Johnson",
		Subject: "Property valuation", Content: "Could you value my listing?",
	})
	require.NoError(t, err)

	err = fx.svc.ReplyToMessage(ctx, fx.johnID, original.ID, "Sure, sending the report today.")
	require.NoError(t, err)

	// The original is now read.
	johns, err := fx.svc.ListMessages(ctx, fx.johnID)
	require.NoError(t, err)
	require.Len(t, johns, 1)
	require.True(t, johns[0].Read)

	// Sarah received the reply under a Re: subject.
	sarahs, err := fx.svc.ListMessages(ctx, fx.sarahID)
	require.NoError(t, err)
	require.Len(t, sarahs, 1)
	require.Equal(t, "John Smith", sarahs[0].Sender)
	require.Equal(t, "Re: Property valuation", sarahs[0].Subject)
	require.Equal(t, "Sure, sending the report today.", sarahs[0].Content)
	require.False(t, sarahs[0].Read)
}

func TestReplyToExternalSenderOnlyMarksRead(t *testing.T) {
	fx := newInboxFixture(t)
	ctx := context.Background()

	original, err := fx.messages.Create(ctx, &models.Message{
		OwnerID: fx.johnID, Sender: "PropertyFinder Support",
		Subject: "Welcome", Content: "Your account is ready.",
	})
	require.NoError(t, err)

	err = fx.svc.ReplyToMessage(ctx, fx.johnID, original.ID, "Thanks!")
	require.NoError(t, err)

	johns, err := fx.svc.ListMessages(ctx, fx.johnID)
	require.NoError(t, err)
	require.Len(t, johns, 1)
	require.True(t, johns[0].Read)

	sarahs, err := fx.svc.ListMessages(ctx, fx.sarahID)
	require.NoError(t, err)
	require.Empty(t, sarahs)
}

func TestReplyScopedToOwner(t *testing.T) {
	fx := newInboxFixture(t)
	ctx := context.Background()

	original, err := fx.messages.Create(ctx, &models.Message{
		OwnerID: fx.johnID, Sender: "Sarah Johnson", Subject: "Hi", Content: "Hello",
	})
	require.NoError(t, err)

	err = fx.svc.ReplyToMessage(ctx, fx.sarahID, original.ID, "Not mine")
	require.True(t, errors.Is(err, utils.ErrNotFound))
}
