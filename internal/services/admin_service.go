package services

import (
	"context"
	"fmt"
	"time"

	"github.com/propertyfinder/listings-service/internal/constants"
	"github.com/propertyfinder/listings-service/internal/dtos"
	"github.com/propertyfinder/listings-service/internal/models"
	"github.com/propertyfinder/listings-service/internal/repositories"
	"github.com/propertyfinder/listings-service/internal/utils"
)

type AdminService struct {
	listingRepo      repositories.ListingRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	settings         *ModerationSettings
}

func NewAdminService(
	listingRepo repositories.ListingRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	settings *ModerationSettings,
) *AdminService {
	return &AdminService{
		listingRepo:      listingRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		settings:         settings,
	}
}

// ListProperties returns every listing regardless of status.
func (s *AdminService) ListProperties(ctx context.Context) ([]*models.Listing, error) {
	return s.listingRepo.List(ctx)
}

// ApproveProperty moves a pending listing to approved and tells the
// owning broker.
func (s *AdminService) ApproveProperty(ctx context.Context, id int) (*models.Listing, error) {
	return s.moderate(ctx, id, models.StatusApproved,
		"Listing approved", "Your listing %q is now live.")
}

// RejectProperty moves a pending listing to rejected and tells the
// owning broker.
func (s *AdminService) RejectProperty(ctx context.Context, id int) (*models.Listing, error) {
	return s.moderate(ctx, id, models.StatusRejected,
		"Listing rejected", "Your listing %q was rejected by moderation.")
}

func (s *AdminService) moderate(
	ctx context.Context,
	id int,
	next models.ListingStatus,
	title string,
	bodyFormat string,
) (*models.Listing, error) {
	l, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, utils.ErrNotFound
	}
	if !l.CanTransitionTo(next) {
		return nil, utils.ErrInvalidStatusTransition
	}

	l.Status = next
	updated, err := s.listingRepo.Update(ctx, l)
	if err != nil {
		return nil, err
	}

	notifType := models.NotificationSuccess
	if next == models.StatusRejected {
		notifType = models.NotificationWarning
	}
	_, nErr := s.notificationRepo.Create(ctx, &models.Notification{
		OwnerID:     l.OwnerID,
		Type:        notifType,
		Title:       title,
		Description: fmt.Sprintf(bodyFormat, l.Title),
		Date:        time.Now(),
	})
	if nErr != nil {
		utils.Logger.WithError(nErr).Warnf("Failed to notify broker about listing=%d", id)
	}
	return updated, nil
}

// DeleteProperty removes a listing outright, any status.
func (s *AdminService) DeleteProperty(ctx context.Context, id int) error {
	return s.listingRepo.Delete(ctx, id)
}

// ChangeBroker reassigns a property to a different broker. The target
// must be an existing broker account.
func (s *AdminService) ChangeBroker(ctx context.Context, id int, brokerName string) (*models.Listing, error) {
	l, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, utils.ErrNotFound
	}

	broker, err := s.findBroker(ctx, brokerName)
	if err != nil {
		return nil, err
	}

	l.OwnerID = broker.ID
	l.Broker = broker.Name
	return s.listingRepo.Update(ctx, l)
}

func (s *AdminService) findBroker(ctx context.Context, name string) (*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Role == models.RoleBroker && u.Name == name {
			return u, nil
		}
	}
	return nil, utils.ErrUnknownBroker
}

// AddProperty creates a listing on behalf of a broker. The status
// follows the auto-approval setting, same as broker submissions.
func (s *AdminService) AddProperty(ctx context.Context, req dtos.AdminCreateListingRequest) (*models.Listing, error) {
	broker, err := s.findBroker(ctx, req.Broker)
	if err != nil {
		return nil, err
	}
	if req.Price > constants.MaxListingPrice {
		return nil, utils.ErrInvalidPayload
	}

	status := models.StatusPending
	if s.settings.AutoApprove() {
		status = models.StatusApproved
	}

	return s.listingRepo.Create(ctx, &models.Listing{
		OwnerID:      broker.ID,
		Broker:       broker.Name,
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
	})
}

// ListUsers returns every account.
func (s *AdminService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}

// DeleteUser removes an account. Admin accounts cannot be removed.
func (s *AdminService) DeleteUser(ctx context.Context, id int) error {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return utils.ErrNotFound
	}
	if u.Role == models.RoleAdmin {
		return utils.ErrWrongStatus
	}
	return s.userRepo.Delete(ctx, id)
}

// UpdateUserRole switches an account between user and broker. Admin
// accounts keep their role.
func (s *AdminService) UpdateUserRole(ctx context.Context, id int, role string) (*models.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.ErrNotFound
	}
	if u.Role == models.RoleAdmin {
		return nil, utils.ErrWrongStatus
	}

	u.Role = models.UserRole(role)
	return s.userRepo.Update(ctx, u)
}

// Stats aggregates the admin console headline figures.
func (s *AdminService) Stats(ctx context.Context) (*dtos.AdminStatsResponse, error) {
	listings, err := s.listingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dtos.AdminStatsResponse{
		TotalProperties: len(listings),
		TotalUsers:      len(users),
	}
	for _, l := range listings {
		switch l.Status {
		case models.StatusPending:
			stats.PendingProperties++
		case models.StatusApproved:
			stats.ApprovedProperties++
		case models.StatusRejected:
			stats.RejectedProperties++
		}
	}
	for _, u := range users {
		if u.Role == models.RoleBroker {
			stats.TotalBrokers++
		}
	}
	return stats, nil
}

// AutoApproval reports whether new listings skip moderation.
func (s *AdminService) AutoApproval() bool {
	return s.settings.AutoApprove()
}

// SetAutoApproval toggles moderation skipping for new listings.
func (s *AdminService) SetAutoApproval(enabled bool) {
	s.settings.SetAutoApprove(enabled)
}
