package dtos

import (
	"time"

	"github.com/propertyfinder/listings-service/internal/models"
)

// MessageDTO is the wire form of an inbox message.
type MessageDTO struct {
	ID      int       `json:"id"`
	Sender  string    `json:"sender"`
	Avatar  string    `json:"avatar,omitempty"`
	Subject string    `json:"subject"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
}

// ListMessagesResponse is the response for GET /api/v1/my/messages.
type ListMessagesResponse struct {
	Results []MessageDTO `json:"results"`
	Unread  int          `json:"unread"`
	Total   int          `json:"total"`
}

// ReplyMessageRequest is the payload for POST /api/v1/my/messages/{id}/reply.
type ReplyMessageRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

// NotificationDTO is the wire form of a notification.
type NotificationDTO struct {
	ID          int       `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Read        bool      `json:"read"`
}

// ListNotificationsResponse is the response for GET /api/v1/my/notifications.
type ListNotificationsResponse struct {
	Results []NotificationDTO `json:"results"`
	Unread  int               `json:"unread"`
	Total   int               `json:"total"`
}

// InquiryRequest is the payload for POST /api/v1/listings/{id}/inquire.
type InquiryRequest struct {
	Name    string `json:"name" validate:"required,min=1"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,e164"`
	Message string `json:"message" validate:"required,min=1"`
}

// MessageFromModel maps a model onto the wire DTO.
func MessageFromModel(m *models.Message) MessageDTO {
	return MessageDTO{
		ID:      m.ID,
		Sender:  m.Sender,
		Avatar:  m.Avatar,
		Subject: m.Subject,
		Content: m.Content,
		Date:    m.Date,
		Read:    m.Read,
	}
}

// MessagesFromModels maps a slice of models onto wire DTOs.
func MessagesFromModels(messages []*models.Message) []MessageDTO {
	out := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		out = append(out, MessageFromModel(m))
	}
	return out
}

// NotificationFromModel maps a model onto the wire DTO.
func NotificationFromModel(n *models.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          n.ID,
		Type:        string(n.Type),
		Title:       n.Title,
		Description: n.Description,
		Date:        n.Date,
		Read:        n.Read,
	}
}

// NotificationsFromModels maps a slice of models onto wire DTOs.
func NotificationsFromModels(notifications []*models.Notification) []NotificationDTO {
	out := make([]NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, NotificationFromModel(n))
	}
	return out
}
