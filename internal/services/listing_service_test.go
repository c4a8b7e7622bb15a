package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/propertyfinder/listings-service/internal/constants"
	"github.com/propertyfinder/listings-service/internal/dtos"
	"github.com/propertyfinder/listings-service/internal/models"
	"github.com/propertyfinder/listings-service/internal/repositories"
	"github.com/propertyfinder/listings-service/internal/utils"
)

type listingFixture struct {
	svc       *ListingService
	settings  *ModerationSettings
	listings  repositories.ListingRepository
	messages  repositories.MessageRepository
	brokerID  int
	otherID   int
}

func newListingFixture(t *testing.T) *listingFixture {
	t.Helper()
	ctx := context.Background()

	userRepo := repositories.NewUserRepository()
	broker, err := userRepo.Create(ctx, &models.User{Name: "John Smith", Email: "john@example.com", Role: models.RoleBroker})
	require.NoError(t, err)
	other, err := userRepo.Create(ctx, &models.User{Name: "Sarah Johnson", Email: "sarah@example.com", Role: models.RoleBroker})
	require.NoError(t, err)

	listingRepo := repositories.NewListingRepository()
	messageRepo := repositories.NewMessageRepository()
	notificationRepo := repositories.NewNotificationRepository()
	settings := NewModerationSettings(false)

	return &listingFixture{
		svc:      NewListingService(listingRepo, userRepo, messageRepo, notificationRepo, settings),
		settings: settings,
		listings: listingRepo,
		messages: messageRepo,
		brokerID: broker.ID,
		otherID:  other.ID,
	}
}

func TestFilterOptionsCollectsDistinctValues(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	for _, l := range []*models.Listing{
		{Title: "A", Location: "Downtown", PropertyType: models.PropertyTypeApartment, Category: models.CategorySale, PostType: "sell", Price: 250000, Status: models.StatusApproved},
		{Title: "B", Location: "Downtown", PropertyType: models.PropertyTypeApartment, Category: models.CategoryRent, PostType: "rent", Price: 1200, Status: models.StatusApproved},
		{Title: "C", Location: "Uptown", PropertyType: models.PropertyTypeHouse, Category: models.CategorySale, PostType: "sell", Price: 450000, Status: models.StatusApproved},
		{Title: "D", Location: "Suburbs", PropertyType: models.PropertyTypeLand, Category: models.CategorySale, PostType: "sell", Price: 90000, Status: models.StatusPending},
	} {
		_, err := fx.listings.Create(ctx, l)
		require.NoError(t, err)
	}

	opts, err := fx.svc.FilterOptions(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Downtown", "Uptown"}, opts.Locations)
	require.Equal(t, []string{"rent", "sale"}, opts.Categories)
	require.Equal(t, []string{"apartment", "house"}, opts.PropertyTypes)
	require.Equal(t, float64(1200), opts.MinPrice)
	require.Equal(t, float64(450000), opts.MaxPrice)
}

func TestFilterOptionsEmptyCatalog(t *testing.T) {
	fx := newListingFixture(t)

	opts, err := fx.svc.FilterOptions(context.Background())
	require.NoError(t, err)
	require.Empty(t, opts.Locations)
	require.Zero(t, opts.MinPrice)
	require.Zero(t, opts.MaxPrice)
}

func TestCreateListingStartsPending(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	l, err := fx.svc.CreateListing(ctx, fx.brokerID, dtos.CreateListingRequest{
		Title: "Modern Apartment", Location: "Downtown", PropertyType: "apartment",
		Category: "sale", Price: 250000,
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, l.Status)
	require.Equal(t, "John Smith", l.Broker)
}

func TestCreateListingRejectsExcessivePrice(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	_, err := fx.svc.CreateListing(ctx, fx.brokerID, dtos.CreateListingRequest{
		Title: "Palace", Location: "Downtown", PropertyType: "house",
		Category: "sale", Price: constants.MaxListingPrice + 1,
	})
	require.True(t, errors.Is(err, utils.ErrInvalidPayload))
}

func TestUpdateListingRejectsExcessivePrice(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	l, err := fx.svc.CreateListing(ctx, fx.brokerID, dtos.CreateListingRequest{
		Title: "Modern Apartment", Location: "Downtown", PropertyType: "apartment",
		Category: "sale", Price: 250000,
	})
	require.NoError(t, err)

	tooMuch := float64(constants.MaxListingPrice + 1)
	_, err = fx.svc.UpdateListing(ctx, fx.brokerID, l.ID, dtos.UpdateListingRequest{Price: &tooMuch})
	require.True(t, errors.Is(err, utils.ErrInvalidPayload))
}

func TestCreateListingAutoApproval(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	fx.settings.SetAutoApprove(true)
	l, err := fx.svc.CreateListing(ctx, fx.brokerID, dtos.CreateListingRequest{
		Title: "Modern Apartment", Location: "Downtown", PropertyType: "apartment",
		Category: "sale", Price: 250000,
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusApproved, l.Status)
}

func TestBrowseListingsHidesUnapproved(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	_, err := fx.listings.Create(ctx, &models.Listing{Title: "Live", Status: models.StatusApproved})
	require.NoError(t, err)
	_, err = fx.listings.Create(ctx, &models.Listing{Title: "Waiting", Status: models.StatusPending})
	require.NoError(t, err)
	_, err = fx.listings.Create(ctx, &models.Listing{Title: "Refused", Status: models.StatusRejected})
	require.NoError(t, err)

	out, err := fx.svc.BrowseListings(ctx, dtos.ListingFilterQuery{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "Live", out[0].Title)
}

func TestGetListingCountsView(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	created, err := fx.listings.Create(ctx, &models.Listing{Title: "Live", Status: models.StatusApproved})
	require.NoError(t, err)

	got, err := fx.svc.GetListing(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.Views)

	_, err = fx.svc.GetListing(ctx, created.ID)
	require.NoError(t, err)

	stored, err := fx.listings.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stored.Views)
}

func TestGetListingHidesPending(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	created, err := fx.listings.Create(ctx, &models.Listing{Title: "Waiting", Status: models.StatusPending})
	require.NoError(t, err)

	_, err = fx.svc.GetListing(ctx, created.ID)
	require.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestUpdateListingEnforcesOwnership(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	created, err := fx.listings.Create(ctx, &models.Listing{OwnerID: fx.brokerID, Title: "Mine", Status: models.StatusApproved})
	require.NoError(t, err)

	title := "Stolen"
	_, err = fx.svc.UpdateListing(ctx, fx.otherID, created.ID, dtos.UpdateListingRequest{Title: &title})
	require.True(t, errors.Is(err, utils.ErrNotOwner))

	title = "Renamed"
	updated, err := fx.svc.UpdateListing(ctx, fx.brokerID, created.ID, dtos.UpdateListingRequest{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Title)
}

func TestDeleteListingEnforcesOwnership(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	created, err := fx.listings.Create(ctx, &models.Listing{OwnerID: fx.brokerID, Title: "Mine"})
	require.NoError(t, err)

	require.True(t, errors.Is(fx.svc.DeleteListing(ctx, fx.otherID, created.ID), utils.ErrNotOwner))
	require.NoError(t, fx.svc.DeleteListing(ctx, fx.brokerID, created.ID))
}

func TestInquireNotifiesOwner(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	created, err := fx.listings.Create(ctx, &models.Listing{OwnerID: fx.brokerID, Title: "Modern Apartment", Status: models.StatusApproved})
	require.NoError(t, err)

	err = fx.svc.Inquire(ctx, created.ID, dtos.InquiryRequest{
		Name: "Emily Davis", Email: "emily@example.com", Message: "Is it still available?",
	})
	require.NoError(t, err)

	stored, err := fx.listings.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 1, stored.Inquiries)

	inbox, err := fx.messages.ListByOwner(ctx, fx.brokerID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	require.Equal(t, "Emily Davis", inbox[0].Sender)
	require.Contains(t, inbox[0].Subject, "Modern Apartment")
}

func TestFeaturedListingsTopViewed(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	for _, l := range []*models.Listing{
		{Title: "A", Status: models.StatusApproved, Views: 10},
		{Title: "B", Status: models.StatusApproved, Views: 200},
		{Title: "C", Status: models.StatusApproved, Views: 50},
		{Title: "D", Status: models.StatusApproved, Views: 120},
		{Title: "Hidden", Status: models.StatusPending, Views: 999},
	} {
		_, err := fx.listings.Create(ctx, l)
		require.NoError(t, err)
	}

	featured, err := fx.svc.FeaturedListings(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 3)
	require.Equal(t, "B", featured[0].Title)
	require.Equal(t, "D", featured[1].Title)
	require.Equal(t, "C", featured[2].Title)
}

func TestBrokerStats(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	for _, l := range []*models.Listing{
		{OwnerID: fx.brokerID, Status: models.StatusApproved, Views: 120, Inquiries: 8},
		{OwnerID: fx.brokerID, Status: models.StatusPending, Views: 85, Inquiries: 5},
		{OwnerID: fx.otherID, Status: models.StatusApproved, Views: 999, Inquiries: 99},
	} {
		_, err := fx.listings.Create(ctx, l)
		require.NoError(t, err)
	}
	_, err := fx.messages.Create(ctx, &models.Message{OwnerID: fx.brokerID, Subject: "Unread one"})
	require.NoError(t, err)

	stats, err := fx.svc.BrokerStats(ctx, fx.brokerID)
	require.NoError(t, err)
	require.Equal(t, 1, stats.ActiveListings)
	require.Equal(t, 1, stats.PendingListings)
	require.Equal(t, 205, stats.TotalViews)
	require.Equal(t, 13, stats.TotalInquiries)
	require.Equal(t, 1, stats.UnreadMessages)
}

func TestBrokerStatsSeriesAndDistribution(t *testing.T) {
	fx := newListingFixture(t)
	ctx := context.Background()

	may := time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)
	june := time.Date(2023, time.June, 14, 0, 0, 0, 0, time.UTC)
	for _, l := range []*models.Listing{
		{OwnerID: fx.brokerID, Status: models.StatusApproved, PropertyType: models.PropertyTypeApartment, Views: 100, Inquiries: 4, CreatedAt: may},
		{OwnerID: fx.brokerID, Status: models.StatusApproved, PropertyType: models.PropertyTypeApartment, Views: 50, Inquiries: 2, CreatedAt: june},
		{OwnerID: fx.brokerID, Status: models.StatusApproved, PropertyType: models.PropertyTypeHouse, Views: 30, Inquiries: 1, CreatedAt: june},
	} {
		_, err := fx.listings.Create(ctx, l)
		require.NoError(t, err)
	}

	stats, err := fx.svc.BrokerStats(ctx, fx.brokerID)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"apartment": 2, "house": 1}, stats.TypeDistribution)
	require.Equal(t, []dtos.MonthlyStat{
		{Month: "2023-05", Views: 100, Inquiries: 4},
		{Month: "2023-06", Views: 80, Inquiries: 3},
	}, stats.MonthlySeries)
}
