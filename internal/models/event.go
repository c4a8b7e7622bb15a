package models

import (
	"time"
)

type EventType string

const (
	EventTypeCall    EventType = "call"
	EventTypeMeeting EventType = "meeting"
)

type ReminderUnit string

const (
	ReminderUnitMinute ReminderUnit = "minute"
	ReminderUnitHour   ReminderUnit = "hour"
	ReminderUnitDay    ReminderUnit = "day"
)

// CalendarEvent is a scheduled call or meeting with a client.
// Description is relevant for calls, Address for meetings.
// Events are created and cancelled whole; the reminder scheduler
// never mutates them.
type CalendarEvent struct {
	ID          int       `json:"id"`
	OwnerID     int       `json:"owner_id"`
	Type        EventType `json:"type"`
	ClientName  string    `json:"client_name"`
	PhoneNumber string    `json:"phone_number"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address,omitempty"`

	Reminder     bool         `json:"reminder"`
	ReminderUnit ReminderUnit `json:"reminder_type,omitempty"`
	ReminderTime int          `json:"reminder_time,omitempty"`
	SendEmail    bool         `json:"send_email"`
}
