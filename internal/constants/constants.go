package constants

import (
	"time"
)

// General listing settings
const (
	// Page size cap for public search results.
	DefaultPageSize = 50

	FeaturedListingsCount = 3

	// Highest asking price a listing may carry.
	MaxListingPrice = 1000000
)

// Reminder scheduling
const (
	// Meetings fire a reminder exactly one hour before the meeting time.
	MeetingReminderLead = 1 * time.Hour

	// An event is due when its fire time is ahead of the current tick by
	// less than this window. Matches the tick period so each event is
	// observed on exactly one tick.
	ReminderDueWindow = 60 * time.Second

	// Cron spec for the periodic reminder check.
	ReminderCheckSpec = "@every 1m"
)
