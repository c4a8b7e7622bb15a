package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/propertyfinder/listings-service/internal/constants"
	"github.com/propertyfinder/listings-service/internal/dtos"
	"github.com/propertyfinder/listings-service/internal/models"
	"github.com/propertyfinder/listings-service/internal/repositories"
	"github.com/propertyfinder/listings-service/internal/utils"
)

type adminFixture struct {
	svc           *AdminService
	settings      *ModerationSettings
	listings      repositories.ListingRepository
	notifications repositories.NotificationRepository
	brokerID      int
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	ctx := context.Background()

	userRepo := repositories.NewUserRepository()
	broker, err := userRepo.Create(ctx, &models.User{Name: "John Smith", Email: "john@example.com", Role: models.RoleBroker})
	require.NoError(t, err)
	_, err = userRepo.Create(ctx, &models.User{Name: "Sarah Johnson", Email: "sarah@example.com", Role: models.RoleBroker})
	require.NoError(t, err)
	_, err = userRepo.Create(ctx, &models.User{Name: "Emily Davis", Email: "emily@example.com", Role: models.RoleUser})
	require.NoError(t, err)
	_, err = userRepo.Create(ctx, &models.User{Name: "Admin User", Email: "admin@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	listingRepo := repositories.NewListingRepository()
	notificationRepo := repositories.NewNotificationRepository()

	settings := NewModerationSettings(false)
	return &adminFixture{
		svc:           NewAdminService(listingRepo, userRepo, notificationRepo, settings),
		settings:      settings,
		listings:      listingRepo,
		notifications: notificationRepo,
		brokerID:      broker.ID,
	}
}

func TestApprovePendingProperty(t *testing.T) {
	fx := newAdminFixture(t)
	ctx := context.Background()

	created, err := fx.listings.Create(ctx, &models.Listing{OwnerID: fx.brokerID, Title: "Family House", Status: models.StatusPending})
	require.NoError(t, err)

	approved, err := fx.svc.ApproveProperty(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusApproved, approved.Status)

	// Broker is notified about the decision.
	notes, err := fx.notifications.ListByOwner(ctx, fx.brokerID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, models.NotificationSuccess, notes[0].Type)
}

func TestRejectPendingProperty(t *testing.T) {
	fx := newAdminFixture(t)
	ctx := context.Background()

	created, err := fx.listings.Create(ctx, &models.Listing{OwnerID: fx.brokerID, Title: "Family House", Status: models.StatusPending})
	require.NoError(t, err)

	rejected, err := fx.svc.RejectProperty(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusRejected, rejected.Status)

	notes, err := fx.notifications.ListByOwner(ctx, fx.brokerID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, models.NotificationWarning, notes[0].Type)
}

func TestModerationOnlyFromPending(t *testing.T) {
	fx := newAdminFixture(t)
	ctx := context.Background()

	created, err := fx.listings.Create(ctx, &models.Listing{Title: "Live", Status: models.StatusApproved})
	require.NoError(t, err)

	_, err = fx.svc.ApproveProperty(ctx, created.ID)
	require.True(t, errors.Is(err, utils.ErrInvalidStatusTransition))
	_, err = fx.svc.RejectProperty(ctx, created.ID)
	require.True(t, errors.Is(err, utils.ErrInvalidStatusTransition))
}

func TestModerationMissingProperty(t *testing.T) {
	fx := newAdminFixture(t)

	_, err := fx.svc.ApproveProperty(context.Background(), 99)
	require.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestChangeBroker(t *testing.T) {
	fx := newAdminFixture(t)
	ctx := context.Background()

	created, err := fx.listings.Create(ctx, &models.Listing{OwnerID: fx.brokerID, Broker: "John Smith", Title: "Modern Apartment", Status: models.StatusApproved})
	require.NoError(t, err)

	updated, err := fx.svc.ChangeBroker(ctx, created.ID, "Sarah Johnson")
	require.NoError(t, err)
	require.Equal(t, "Sarah Johnson", updated.Broker)
	require.NotEqual(t, fx.brokerID, updated.OwnerID)

	// Non-broker names are refused, regular users included.
	_, err = fx.svc.ChangeBroker(ctx, created.ID, "Emily Davis")
	require.True(t, errors.Is(err, utils.ErrUnknownBroker))
}

func TestDeleteUserProtectsAdmins(t *testing.T) {
	fx := newAdminFixture(t)
	ctx := context.Background()

	users, err := fx.svc.ListUsers(ctx)
	require.NoError(t, err)

	var adminID, userID int
	for _, u := range users {
		switch u.Role {
		case models.RoleAdmin:
			adminID = u.ID
		case models.RoleUser:
			userID = u.ID
		}
	}

	require.Error(t, fx.svc.DeleteUser(ctx, adminID))
	require.NoError(t, fx.svc.DeleteUser(ctx, userID))
}

func TestAdminStats(t *testing.T) {
	fx := newAdminFixture(t)
	ctx := context.Background()

	for _, l := range []*models.Listing{
		{Status: models.StatusApproved},
		{Status: models.StatusApproved},
		{Status: models.StatusPending},
		{Status: models.StatusRejected},
	} {
		_, err := fx.listings.Create(ctx, l)
		require.NoError(t, err)
	}

	stats, err := fx.svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, stats.TotalProperties)
	require.Equal(t, 2, stats.ApprovedProperties)
	require.Equal(t, 1, stats.PendingProperties)
	require.Equal(t, 1, stats.RejectedProperties)
	require.Equal(t, 4, stats.TotalUsers)
	require.Equal(t, 2, stats.TotalBrokers)
}

func TestAutoApprovalToggle(t *testing.T) {
	fx := newAdminFixture(t)

	require.False(t, fx.svc.AutoApproval())
	fx.svc.SetAutoApproval(true)
	require.True(t, fx.svc.AutoApproval())
}

func TestAddPropertyAssignsBroker(t *testing.T) {
	fx := newAdminFixture(t)
	ctx := context.Background()

	l, err := fx.svc.AddProperty(ctx, dtos.AdminCreateListingRequest{
		Broker: "John Smith", Title: "Modern Apartment", Location: "Downtown",
		PropertyType: "apartment", Category: "sale", Price: 250000,
	})
	require.NoError(t, err)
	require.Equal(t, fx.brokerID, l.OwnerID)
	require.Equal(t, "John Smith", l.Broker)
	require.Equal(t, models.StatusPending, l.Status)
}

func TestAddPropertyFollowsAutoApproval(t *testing.T) {
	fx := newAdminFixture(t)
	ctx := context.Background()

	fx.settings.SetAutoApprove(true)
	l, err := fx.svc.AddProperty(ctx, dtos.AdminCreateListingRequest{
		Broker: "John Smith", Title: "Modern Apartment", Location: "Downtown",
		PropertyType: "apartment", Category: "sale", Price: 250000,
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusApproved, l.Status)
}

func TestAddPropertyRejectsExcessivePrice(t *testing.T) {
	fx := newAdminFixture(t)

	_, err := fx.svc.AddProperty(context.Background(), dtos.AdminCreateListingRequest{
		Broker: "John Smith", Title: "Palace", Location: "Downtown",
		PropertyType: "house", Category: "sale", Price: constants.MaxListingPrice + 1,
	})
	require.True(t, errors.Is(err, utils.ErrInvalidPayload))
}

func TestAddPropertyUnknownBroker(t *testing.T) {
	fx := newAdminFixture(t)

	_, err := fx.svc.AddProperty(context.Background(), dtos.AdminCreateListingRequest{
		Broker: "Emily Davis", Title: "Modern Apartment", Location: "Downtown",
		PropertyType: "apartment", Category: "sale", Price: 250000,
	})
	require.True(t, errors.Is(err, utils.ErrUnknownBroker))
}

func TestUpdateUserRole(t *testing.T) {
	fx := newAdminFixture(t)
	ctx := context.Background()

	users, err := fx.svc.ListUsers(ctx)
	require.NoError(t, err)
	var emily, admin *models.User
	for _, u := range users {
		switch u.Name {
		case "Emily Davis":
			emily = u
		case "Admin User":
			admin = u
		}
	}
	require.NotNil(t, emily)
	require.NotNil(t, admin)

	promoted, err := fx.svc.UpdateUserRole(ctx, emily.ID, "broker")
	require.NoError(t, err)
	require.Equal(t, models.RoleBroker, promoted.Role)

	// Admin accounts keep their role.
	_, err = fx.svc.UpdateUserRole(ctx, admin.ID, "user")
	require.True(t, errors.Is(err, utils.ErrWrongStatus))

	// Emily now counts as a broker and can own listings.
	_, err = fx.svc.AddProperty(ctx, dtos.AdminCreateListingRequest{
		Broker: "Emily Davis", Title: "Cozy Studio", Location: "Midtown",
		PropertyType: "apartment", Category: "rent", Price: 1200,
	})
	require.NoError(t, err)
}
