package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/propertyfinder/listings-service/internal/dtos"
	"github.com/propertyfinder/listings-service/internal/services"
	"github.com/propertyfinder/listings-service/internal/utils"
)

type InboxController struct {
	inboxService *services.InboxService
	validate     *validator.Validate
}

func NewInboxController(is *services.InboxService) *InboxController {
	return &InboxController{inboxService: is, validate: validator.New()}
}

// ----------------------------------------------------------------
// GET /api/v1/my/messages
// ----------------------------------------------------------------
func (c *InboxController) ListMessagesHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	messages, err := c.inboxService.ListMessages(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err, "Failed to list messages")
		return
	}

	unread := 0
	for _, m := range messages {
		if !m.Read {
			unread++
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ListMessagesResponse{
		Results: dtos.MessagesFromModels(messages),
		Unread:  unread,
		Total:   len(messages),
	})
}

// ----------------------------------------------------------------
// POST /api/v1/my/messages/{id}/read
// ----------------------------------------------------------------
func (c *InboxController) MarkMessageReadHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	if err := c.inboxService.MarkMessageRead(r.Context(), userID, id); err != nil {
		respondServiceError(w, err, "Failed to mark message read")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Message marked read"})
}

// ----------------------------------------------------------------
// POST /api/v1/my/messages/{id}/reply
// ----------------------------------------------------------------
func (c *InboxController) ReplyMessageHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	var req dtos.ReplyMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	if err := c.inboxService.ReplyToMessage(r.Context(), userID, id, req.Content); err != nil {
		respondServiceError(w, err, "Failed to send reply")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Reply sent"})
}

// ----------------------------------------------------------------
// POST /api/v1/my/messages/read-all
// ----------------------------------------------------------------
func (c *InboxController) MarkAllMessagesReadHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if err := c.inboxService.MarkAllMessagesRead(r.Context(), userID); err != nil {
		respondServiceError(w, err, "Failed to mark messages read")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "All messages marked read"})
}

// ----------------------------------------------------------------
// GET /api/v1/my/notifications
// ----------------------------------------------------------------
func (c *InboxController) ListNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	notifications, err := c.inboxService.ListNotifications(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err, "Failed to list notifications")
		return
	}

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ListNotificationsResponse{
		Results: dtos.NotificationsFromModels(notifications),
		Unread:  unread,
		Total:   len(notifications),
	})
}

// ----------------------------------------------------------------
// POST /api/v1/my/notifications/{id}/read
// ----------------------------------------------------------------
func (c *InboxController) MarkNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	if err := c.inboxService.MarkNotificationRead(r.Context(), userID, id); err != nil {
		respondServiceError(w, err, "Failed to mark notification read")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Notification marked read"})
}

// ----------------------------------------------------------------
// POST /api/v1/my/notifications/read-all
// ----------------------------------------------------------------
func (c *InboxController) MarkAllNotificationsReadHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if err := c.inboxService.MarkAllNotificationsRead(r.Context(), userID); err != nil {
		respondServiceError(w, err, "Failed to mark notifications read")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "All notifications marked read"})
}

// ----------------------------------------------------------------
// POST /api/v1/my/notifications/clear
// ----------------------------------------------------------------
func (c *InboxController) ClearNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if err := c.inboxService.ClearNotifications(r.Context(), userID); err != nil {
		respondServiceError(w, err, "Failed to clear notifications")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Notifications cleared"})
}
