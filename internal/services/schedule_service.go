package services

import (
	"context"
	"time"

	"github.com/propertyfinder/listings-service/internal/dtos"
	"github.com/propertyfinder/listings-service/internal/models"
	"github.com/propertyfinder/listings-service/internal/repositories"
	"github.com/propertyfinder/listings-service/internal/utils"
)

type ScheduleService struct {
	eventRepo repositories.EventRepository
}

func NewScheduleService(eventRepo repositories.EventRepository) *ScheduleService {
	return &ScheduleService{eventRepo: eventRepo}
}

// ListEvents returns the broker's events. When day is non-nil only the
// events on that calendar day are returned.
func (s *ScheduleService) ListEvents(ctx context.Context, ownerID int, day *time.Time) ([]*models.CalendarEvent, error) {
	events, err := s.eventRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return events, nil
	}
	return EventsOnDate(events, *day), nil
}

// CreateEvent schedules a call or meeting for the broker.
func (s *ScheduleService) CreateEvent(ctx context.Context, ownerID int, req dtos.CreateEventRequest) (*models.CalendarEvent, error) {
	if req.Date.IsZero() {
		return nil, utils.ErrInvalidPayload
	}
	e := &models.CalendarEvent{
		OwnerID:      ownerID,
		Type:         models.EventType(req.Type),
		ClientName:   req.ClientName,
		PhoneNumber:  req.PhoneNumber,
		Date:         req.Date,
		Description:  req.Description,
		Address:      req.Address,
		Reminder:     req.Reminder,
		ReminderUnit: models.ReminderUnit(req.ReminderUnit),
		ReminderTime: req.ReminderTime,
		SendEmail:    req.SendEmail,
	}
	return s.eventRepo.Create(ctx, e)
}

// DeleteEvent cancels the broker's own event.
func (s *ScheduleService) DeleteEvent(ctx context.Context, ownerID, id int) error {
	e, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return utils.ErrNotFound
	}
	if e.OwnerID != ownerID {
		return utils.ErrNotOwner
	}
	return s.eventRepo.Delete(ctx, id)
}
