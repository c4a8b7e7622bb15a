package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/propertyfinder/listings-service/internal/dtos"
	"github.com/propertyfinder/listings-service/internal/services"
	"github.com/propertyfinder/listings-service/internal/utils"
)

type ScheduleController struct {
	scheduleService *services.ScheduleService
	validate        *validator.Validate
}

func NewScheduleController(ss *services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: ss,
		validate:        validator.New(),
	}
}

// ----------------------------------------------------------------
// GET /api/v1/my/events?date=2026-08-29
// ----------------------------------------------------------------
func (c *ScheduleController) ListEventsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	var day *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, pErr := time.Parse("2006-01-02", raw)
		if pErr != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid date, expected YYYY-MM-DD", nil, pErr)
			return
		}
		day = &parsed
	}

	events, err := c.scheduleService.ListEvents(r.Context(), userID, day)
	if err != nil {
		respondServiceError(w, err, "Failed to list events")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ListEventsResponse{
		Results: dtos.EventsFromModels(events),
		Total:   len(events),
	})
}

// ----------------------------------------------------------------
// POST /api/v1/my/events
// ----------------------------------------------------------------
func (c *ScheduleController) CreateEventHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	var req dtos.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	e, err := c.scheduleService.CreateEvent(r.Context(), userID, req)
	if err != nil {
		respondServiceError(w, err, "Failed to create event")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.EventFromModel(e))
}

// ----------------------------------------------------------------
// DELETE /api/v1/my/events/{id}
// ----------------------------------------------------------------
func (c *ScheduleController) DeleteEventHandler(w http.ResponseWriter, r *http.Request) {
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

	if err := c.scheduleService.DeleteEvent(r.Context(), userID, id); err != nil {
		respondServiceError(w, err, "Failed to delete event")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Event deleted"})
}
