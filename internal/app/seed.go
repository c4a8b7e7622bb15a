package app

import (
	"context"
	"fmt"
	"time"

	"github.com/propertyfinder/listings-service/internal/models"
	"github.com/propertyfinder/listings-service/internal/utils"
)

/*
SeedDemoData loads the demo dataset into the stores: five accounts,
the public catalog, one broker's calendar, inbox and notifications.
Safe to call once at startup; it is skipped when users already exist.
*/
func SeedDemoData(ctx context.Context, a *App) error {
	existing, err := a.UserRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("check existing seed users: %w", err)
	}
	if len(existing) > 0 {
		utils.Logger.Info("Seed data already present; skipping seeding")
		return nil
	}

	users := []*models.User{
		{Name: "John Smith", Email: "john@example.com", Phone: "+15551234567", Role: models.RoleBroker, Language: "en", Avatar: "/images/agent1.jpg", CreatedAt: time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC)},
		{Name: "Sarah Johnson", Email: "sarah@example.com", Phone: "+15559876543", Role: models.RoleBroker, Language: "en", Avatar: "/images/agent2.jpg", CreatedAt: time.Date(2023, time.February, 2, 0, 0, 0, 0, time.UTC)},
		{Name: "Michael Brown", Email: "michael@example.com", Role: models.RoleBroker, Language: "en", CreatedAt: time.Date(2023, time.March, 21, 0, 0, 0, 0, time.UTC)},
		{Name: "Emily Davis", Email: "emily@example.com", Role: models.RoleUser, Language: "en", CreatedAt: time.Date(2023, time.April, 5, 0, 0, 0, 0, time.UTC)},
		{Name: "Admin User", Email: "admin@example.com", Role: models.RoleAdmin, Language: "en", CreatedAt: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	ids := make(map[string]int, len(users))
	for _, u := range users {
		created, err := a.UserRepo.Create(ctx, u)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		ids[created.Name] = created.ID
	}

	listings := []*models.Listing{
		{
			OwnerID: ids["John Smith"], Broker: "John Smith",
			Title: "Modern Apartment in Downtown", Location: "Downtown, City",
			PropertyType: models.PropertyTypeApartment, Category: models.CategorySale, PostType: "sell",
			Price: 250000, Status: models.StatusApproved, Image: "/images/studio1.jpg",
			Beds: 2, Baths: 2, Sqft: 1200, Views: 120, Inquiries: 8,
			CreatedAt: time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			OwnerID: ids["Sarah Johnson"], Broker: "Sarah Johnson",
			Title: "Spacious Family Home", Location: "Suburbs, City",
			PropertyType: models.PropertyTypeHouse, Category: models.CategoryRent, PostType: "rent",
			Price: 2500, Status: models.StatusApproved, Image: "/images/studio2.jpg",
			Beds: 4, Baths: 3, Sqft: 2500, Views: 96, Inquiries: 4,
			CreatedAt: time.Date(2023, time.May, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			OwnerID: ids["Michael Brown"], Broker: "Michael Brown",
			Title: "Commercial Office Space", Location: "Business District, City",
			PropertyType: models.PropertyTypeCommercial, Category: models.CategorySale, PostType: "sell",
			Price: 750000, Status: models.StatusApproved, Image: "/images/studio3.jpg",
			Sqft: 5000, Views: 64, Inquiries: 2,
			CreatedAt: time.Date(2023, time.May, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			OwnerID: ids["John Smith"], Broker: "John Smith",
			Title: "Cozy Studio Apartment", Location: "City Center",
			PropertyType: models.PropertyTypeApartment, Category: models.CategoryRent, PostType: "rent",
			Price: 1200, Status: models.StatusApproved, Image: "/images/studio4.jpg",
			Beds: 1, Baths: 1, Sqft: 500, Views: 85, Inquiries: 5,
			CreatedAt: time.Date(2023, time.May, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			OwnerID: ids["Sarah Johnson"], Broker: "Sarah Johnson",
			Title: "Family House", Location: "Suburbs",
			PropertyType: models.PropertyTypeHouse, Category: models.CategorySale, PostType: "sell",
			Price: 450000, Status: models.StatusPending, Image: "/images/studio3.jpg",
			Beds: 3, Baths: 2, Sqft: 1800, Views: 210, Inquiries: 12,
			CreatedAt: time.Date(2023, time.June, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, l := range listings {
		if _, err := a.ListingRepo.Create(ctx, l); err != nil {
			return fmt.Errorf("seed listing %q: %w", l.Title, err)
		}
	}

	johnID := ids["John Smith"]
	events := []*models.CalendarEvent{
		{
			OwnerID: johnID, Type: models.EventTypeCall,
			ClientName: "John Smith", PhoneNumber: "+15551234567",
			Description: "Discuss property listing - client interested in pricing",
			Date:        time.Date(2023, time.June, 15, 10, 30, 0, 0, time.UTC),
			Reminder:    true,
		},
		{
			OwnerID: johnID, Type: models.EventTypeMeeting,
			ClientName: "Sarah Johnson", PhoneNumber: "+15559876543",
			Address:  "123 Main St, Anytown, CA",
			Date:     time.Date(2023, time.June, 18, 14, 0, 0, 0, time.UTC),
			Reminder: true,
		},
	}
	for _, e := range events {
		if _, err := a.EventRepo.Create(ctx, e); err != nil {
			return fmt.Errorf("seed event for %s: %w", e.ClientName, err)
		}
	}

	messages := []*models.Message{
		{
			OwnerID: johnID, Sender: "John Smith", Avatar: "/images/agent1.jpg",
			Subject: "Inquiry about Modern Apartment",
			Content: "Hello, I'm interested in your Modern Apartment listing. Is it still available? I would like to schedule a viewing this weekend if possible.",
			Date:    time.Date(2023, time.June, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			OwnerID: johnID, Sender: "PropertyFinder Support", Avatar: "/images/agent2.jpg",
			Subject: "Your listing has been approved",
			Content: "Your listing 'Family House' has been approved and is now visible to potential buyers. You can check the status in your dashboard.",
			Date:    time.Date(2023, time.June, 14, 15, 45, 0, 0, time.UTC),
			Read:    true,
		},
		{
			OwnerID: johnID, Sender: "Sarah Johnson", Avatar: "/images/agent1.jpg",
			Subject: "Question about Cozy Studio",
			Content: "Hi there, I saw your Cozy Studio listing and I have a few questions. Is parking included? And are utilities covered in the rent?",
			Date:    time.Date(2023, time.June, 13, 9, 15, 0, 0, time.UTC),
		},
	}
	for _, m := range messages {
		if _, err := a.MessageRepo.Create(ctx, m); err != nil {
			return fmt.Errorf("seed message %q: %w", m.Subject, err)
		}
	}

	notifications := []*models.Notification{
		{OwnerID: johnID, Type: models.NotificationInfo, Title: "New feature available", Description: "You can now schedule virtual tours for your properties", Date: time.Date(2023, time.June, 16, 8, 0, 0, 0, time.UTC)},
		{OwnerID: johnID, Type: models.NotificationSuccess, Title: "Listing approved", Description: "Your listing 'Family House' has been approved", Date: time.Date(2023, time.June, 15, 14, 30, 0, 0, time.UTC), Read: true},
		{OwnerID: johnID, Type: models.NotificationAlert, Title: "Payment reminder", Description: "Your subscription will renew in 3 days", Date: time.Date(2023, time.June, 14, 10, 0, 0, 0, time.UTC)},
		{OwnerID: johnID, Type: models.NotificationWarning, Title: "Listing views dropping", Description: "Your 'Cozy Studio' listing has seen fewer views this week", Date: time.Date(2023, time.June, 13, 16, 45, 0, 0, time.UTC)},
		{OwnerID: johnID, Type: models.NotificationFavorite, Title: "New favorite", Description: "Someone added your 'Modern Apartment' to their favorites", Date: time.Date(2023, time.June, 12, 11, 20, 0, 0, time.UTC), Read: true},
	}
	for _, n := range notifications {
		if _, err := a.NotificationRepo.Create(ctx, n); err != nil {
			return fmt.Errorf("seed notification %q: %w", n.Title, err)
		}
	}

	utils.Logger.Infof("Seeded demo data: %d users, %d listings, %d events, %d messages, %d notifications",
		len(users), len(listings), len(events), len(messages), len(notifications))
	return nil
}
