package services

import (
	"time"

	"github.com/propertyfinder/listings-service/internal/constants"
	"github.com/propertyfinder/listings-service/internal/models"
)

/*
EventsOnDate returns the events falling on the same calendar day as the
given date, compared in the date's location. Events with a zero date are
never returned.
*/
func EventsOnDate(events []*models.CalendarEvent, day time.Time) []*models.CalendarEvent {
	var out []*models.CalendarEvent
	for _, e := range events {
		if e.Date.IsZero() {
			continue
		}
		if sameCalendarDay(e.Date.In(day.Location()), day) {
			out = append(out, e)
		}
	}
	return out
}

func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

/*
ReminderFireTime returns the instant at which an event's reminder comes
due. Meetings remind one hour ahead so the broker can travel; calls
remind at the scheduled time itself. Events with a zero date have no
fire time and return the zero Time.
*/
func ReminderFireTime(e *models.CalendarEvent) time.Time {
	if e.Date.IsZero() {
		return time.Time{}
	}
	if e.Type == models.EventTypeMeeting {
		return e.Date.Add(-constants.MeetingReminderLead)
	}
	return e.Date
}

/*
DueReminders returns the events that asked for a reminder and whose
fire time falls within the due window after `now`:
0 < fireTime - now < ReminderDueWindow. Events without the reminder
flag are never due. A fire time in the past or exactly at `now` is not
due; combined with a tick period equal to the window, each event
becomes due on exactly one tick. The function is pure and keeps no
state; callers that must not re-notify track delivered IDs themselves.
*/
func DueReminders(events []*models.CalendarEvent, now time.Time) []*models.CalendarEvent {
	var out []*models.CalendarEvent
	for _, e := range events {
		if !e.Reminder {
			continue
		}
		fireAt := ReminderFireTime(e)
		if fireAt.IsZero() {
			continue
		}
		diff := fireAt.Sub(now)
		if diff > 0 && diff < constants.ReminderDueWindow {
			out = append(out, e)
		}
	}
	return out
}
