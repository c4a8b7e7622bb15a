package dtos

import (
	"time"

	"github.com/propertyfinder/listings-service/internal/models"
)

// CreateEventRequest is the payload for POST /api/v1/my/events.
type CreateEventRequest struct {
	Type         string    `json:"type" validate:"required,oneof=call meeting"`
	ClientName   string    `json:"client_name" validate:"required,min=1"`
	PhoneNumber  string    `json:"phone_number,omitempty" validate:"omitempty,e164"`
	Date         time.Time `json:"date" validate:"required"`
	Description  string    `json:"description,omitempty"`
	Address      string    `json:"address,omitempty"`
	Reminder     bool      `json:"reminder"`
	ReminderUnit string    `json:"reminder_type,omitempty" validate:"omitempty,oneof=minute hour day"`
	ReminderTime int       `json:"reminder_time,omitempty" validate:"gte=0"`
	SendEmail    bool      `json:"send_email"`
}

// EventDTO is the wire form of a calendar event.
type EventDTO struct {
	ID           int       `json:"id"`
	Type         string    `json:"type"`
	ClientName   string    `json:"client_name"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description,omitempty"`
	Address      string    `json:"address,omitempty"`
	Reminder     bool      `json:"reminder"`
	ReminderUnit string    `json:"reminder_type,omitempty"`
	ReminderTime int       `json:"reminder_time,omitempty"`
	SendEmail    bool      `json:"send_email"`
}

// ListEventsResponse is the response for GET /api/v1/my/events.
// When the "date" query parameter is present, Results holds only the
// events falling on that calendar day.
type ListEventsResponse struct {
	Results []EventDTO `json:"results"`
	Total   int        `json:"total"`
}

// EventFromModel maps a model onto the wire DTO.
func EventFromModel(e *models.CalendarEvent) EventDTO {
	return EventDTO{
		ID:           e.ID,
		Type:         string(e.Type),
		ClientName:   e.ClientName,
		PhoneNumber:  e.PhoneNumber,
		Date:         e.Date,
		Description:  e.Description,
		Address:      e.Address,
		Reminder:     e.Reminder,
		ReminderUnit: string(e.ReminderUnit),
		ReminderTime: e.ReminderTime,
		SendEmail:    e.SendEmail,
	}
}

// EventsFromModels maps a slice of models onto wire DTOs.
func EventsFromModels(events []*models.CalendarEvent) []EventDTO {
	out := make([]EventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, EventFromModel(e))
	}
	return out
}
