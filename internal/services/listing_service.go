package services

import (
	"context"
	"sort"
	"time"

	"github.com/propertyfinder/listings-service/internal/constants"
	"github.com/propertyfinder/listings-service/internal/dtos"
	"github.com/propertyfinder/listings-service/internal/models"
	"github.com/propertyfinder/listings-service/internal/repositories"
	"github.com/propertyfinder/listings-service/internal/utils"
)

type ListingService struct {
	listingRepo      repositories.ListingRepository
	userRepo         repositories.UserRepository
	messageRepo      repositories.MessageRepository
	notificationRepo repositories.NotificationRepository
	settings         *ModerationSettings
}

func NewListingService(
	listingRepo repositories.ListingRepository,
	userRepo repositories.UserRepository,
	messageRepo repositories.MessageRepository,
	notificationRepo repositories.NotificationRepository,
	settings *ModerationSettings,
) *ListingService {
	return &ListingService{
		listingRepo:      listingRepo,
		userRepo:         userRepo,
		messageRepo:      messageRepo,
		notificationRepo: notificationRepo,
		settings:         settings,
	}
}

// BrowseListings returns the approved listings matching the given
// criteria. Unapproved listings never appear in public search.
func (s *ListingService) BrowseListings(ctx context.Context, q dtos.ListingFilterQuery) ([]*models.Listing, error) {
	all, err := s.listingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	approved := make([]*models.Listing, 0, len(all))
	for _, l := range all {
		if l.Status == models.StatusApproved {
			approved = append(approved, l)
		}
	}
	return FilterListings(approved, q), nil
}

// FeaturedListings returns the most-viewed approved listings for the
// landing page carousel.
func (s *ListingService) FeaturedListings(ctx context.Context) ([]*models.Listing, error) {
	approved, err := s.BrowseListings(ctx, dtos.ListingFilterQuery{})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(approved, func(i, j int) bool {
		return approved[i].Views > approved[j].Views
	})
	if len(approved) > constants.FeaturedListingsCount {
		approved = approved[:constants.FeaturedListingsCount]
	}
	return approved, nil
}

// FilterOptions collects the distinct filterable values across the
// approved catalog so the browse page can populate its dropdowns.
func (s *ListingService) FilterOptions(ctx context.Context) (*dtos.FilterOptionsResponse, error) {
	approved, err := s.BrowseListings(ctx, dtos.ListingFilterQuery{})
	if err != nil {
		return nil, err
	}

	out := &dtos.FilterOptionsResponse{
		Locations:     []string{},
		Categories:    []string{},
		PostTypes:     []string{},
		PropertyTypes: []string{},
	}
	seen := map[string]map[string]struct{}{
		"location": {}, "category": {}, "postType": {}, "propertyType": {},
	}
	collect := func(kind, v string, dst *[]string) {
		if v == "" {
			return
		}
		if _, ok := seen[kind][v]; ok {
			return
		}
		seen[kind][v] = struct{}{}
		*dst = append(*dst, v)
	}
	for i, l := range approved {
		collect("location", l.Location, &out.Locations)
		collect("category", string(l.Category), &out.Categories)
		collect("postType", l.PostType, &out.PostTypes)
		collect("propertyType", string(l.PropertyType), &out.PropertyTypes)
		if i == 0 || l.Price < out.MinPrice {
			out.MinPrice = l.Price
		}
		if l.Price > out.MaxPrice {
			out.MaxPrice = l.Price
		}
	}
	sort.Strings(out.Locations)
	sort.Strings(out.Categories)
	sort.Strings(out.PostTypes)
	sort.Strings(out.PropertyTypes)
	return out, nil
}

// GetListing returns a single approved listing and counts the view.
func (s *ListingService) GetListing(ctx context.Context, id int) (*models.Listing, error) {
	l, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil || l.Status != models.StatusApproved {
		return nil, utils.ErrNotFound
	}
	if err := s.listingRepo.IncrementViews(ctx, id); err != nil {
		utils.Logger.WithError(err).Warnf("Failed to count view for listing=%d", id)
	}
	l.Views++
	return l, nil
}

// Inquire records a prospect inquiry: the counter goes up and the
// owning broker receives an inbox message plus a notification.
func (s *ListingService) Inquire(ctx context.Context, id int, req dtos.InquiryRequest) error {
	l, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil || l.Status != models.StatusApproved {
		return utils.ErrNotFound
	}
	if err := s.listingRepo.IncrementInquiries(ctx, id); err != nil {
		return err
	}

	now := time.Now()
	_, err = s.messageRepo.Create(ctx, &models.Message{
		OwnerID: l.OwnerID,
		Sender:  req.Name,
		Subject: "Inquiry about " + l.Title,
		Content: req.Message + "\n\nContact: " + req.Email,
		Date:    now,
	})
	if err != nil {
		return err
	}
	_, err = s.notificationRepo.Create(ctx, &models.Notification{
		OwnerID:     l.OwnerID,
		Type:        models.NotificationInfo,
		Title:       "New inquiry",
		Description: req.Name + " asked about " + l.Title,
		Date:        now,
	})
	return err
}

// ListByOwner returns the broker's own listings, every status included.
func (s *ListingService) ListByOwner(ctx context.Context, ownerID int) ([]*models.Listing, error) {
	return s.listingRepo.ListByOwner(ctx, ownerID)
}

// CreateListing inserts a broker listing. New listings start pending
// unless auto-approval is switched on in the admin console.
func (s *ListingService) CreateListing(ctx context.Context, ownerID int, req dtos.CreateListingRequest) (*models.Listing, error) {
	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, utils.ErrNotFound
	}

	if req.Price > constants.MaxListingPrice {
		return nil, utils.ErrInvalidPayload
	}

	status := models.StatusPending
	if s.settings.AutoApprove() {
		status = models.StatusApproved
	}

	l := &models.Listing{
		OwnerID:      ownerID,
		Broker:       owner.Name,
		Title:        req.Title,
		Location:     req.Location,
		PropertyType: models.PropertyTypeKind(req.PropertyType),
		Category:     models.ListingCategory(req.Category),
		PostType:     req.PostType,
		Price:        req.Price,
		Status:       status,
		Image:        req.Image,
		Description:  req.Description,
		Beds:         req.Beds,
		Baths:        req.Baths,
		Sqft:         req.Sqft,
		CreatedAt:    time.Now(),
	}
	return s.listingRepo.Create(ctx, l)
}

// UpdateListing applies a partial edit to the broker's own listing.
func (s *ListingService) UpdateListing(ctx context.Context, ownerID, id int, req dtos.UpdateListingRequest) (*models.Listing, error) {
	l, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, utils.ErrNotFound
	}
	if l.OwnerID != ownerID {
		return nil, utils.ErrNotOwner
	}
	if req.Price != nil && *req.Price > constants.MaxListingPrice {
		return nil, utils.ErrInvalidPayload
	}

	if req.Title != nil {
		l.Title = *req.Title
	}
	if req.Location != nil {
		l.Location = *req.Location
	}
	if req.PropertyType != nil {
		l.PropertyType = models.PropertyTypeKind(*req.PropertyType)
	}
	if req.Category != nil {
		l.Category = models.ListingCategory(*req.Category)
	}
	if req.PostType != nil {
		l.PostType = *req.PostType
	}
	if req.Price != nil {
		l.Price = *req.Price
	}
	if req.Image != nil {
		l.Image = *req.Image
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.Beds != nil {
		l.Beds = *req.Beds
	}
	if req.Baths != nil {
		l.Baths = *req.Baths
	}
	if req.Sqft != nil {
		l.Sqft = *req.Sqft
	}

	return s.listingRepo.Update(ctx, l)
}

// DeleteListing removes the broker's own listing.
func (s *ListingService) DeleteListing(ctx context.Context, ownerID, id int) error {
	l, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return utils.ErrNotFound
	}
	if l.OwnerID != ownerID {
		return utils.ErrNotOwner
	}
	return s.listingRepo.Delete(ctx, id)
}

// BrokerStats aggregates the dashboard headline figures.
func (s *ListingService) BrokerStats(ctx context.Context, ownerID int) (*dtos.BrokerStatsResponse, error) {
	listings, err := s.listingRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	stats := &dtos.BrokerStatsResponse{
		MonthlySeries:    []dtos.MonthlyStat{},
		TypeDistribution: map[string]int{},
	}
	byMonth := map[string]*dtos.MonthlyStat{}
	for _, l := range listings {
		switch l.Status {
		case models.StatusApproved:
			stats.ActiveListings++
		case models.StatusPending:
			stats.PendingListings++
		}
		stats.TotalViews += l.Views
		stats.TotalInquiries += l.Inquiries
		stats.TypeDistribution[string(l.PropertyType)]++

		if l.CreatedAt.IsZero() {
			continue
		}
		month := l.CreatedAt.Format("2006-01")
		point, ok := byMonth[month]
		if !ok {
			point = &dtos.MonthlyStat{Month: month}
			byMonth[month] = point
		}
		point.Views += l.Views
		point.Inquiries += l.Inquiries
	}
	for _, point := range byMonth {
		stats.MonthlySeries = append(stats.MonthlySeries, *point)
	}
	sort.Slice(stats.MonthlySeries, func(i, j int) bool {
		return stats.MonthlySeries[i].Month < stats.MonthlySeries[j].Month
	})

	messages, err := s.messageRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, m := range messages {
		if !m.Read {
			stats.UnreadMessages++
		}
	}
	return stats, nil
}
