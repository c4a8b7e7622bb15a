package models

import (
	"time"
)

type NotificationType string

const (
	NotificationInfo     NotificationType = "info"
	NotificationSuccess  NotificationType = "success"
	NotificationAlert    NotificationType = "alert"
	NotificationWarning  NotificationType = "warning"
	NotificationFavorite NotificationType = "favorite"
	NotificationReminder NotificationType = "reminder"
)

// Notification is a simple read/unread record shown in the dashboard bell.
type Notification struct {
	ID          int              `json:"id"`
	OwnerID     int              `json:"owner_id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Date        time.Time        `json:"date"`
	Read        bool             `json:"read"`
}

// Message is an inbox item from another user or the platform itself.
type Message struct {
	ID      int       `json:"id"`
	OwnerID int       `json:"owner_id"`
	Sender  string    `json:"sender"`
	Avatar  string    `json:"avatar,omitempty"`
	Subject string    `json:"subject"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
}
