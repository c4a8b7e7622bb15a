package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/propertyfinder/listings-service/internal/dtos"
	"github.com/propertyfinder/listings-service/internal/middleware"
	"github.com/propertyfinder/listings-service/internal/utils"
)

// getUserID pulls the authenticated user's id out of the request context.
func getUserID(r *http.Request) (int, error) {
	ctxUserID := r.Context().Value(middleware.ContextKeyUserID)
	if ctxUserID == nil {
		return 0, &utils.AppError{StatusCode: http.StatusUnauthorized, Code: utils.ErrCodeUnauthorized, Message: "No userID in context"}
	}
	id, err := strconv.Atoi(ctxUserID.(string))
	if err != nil {
		return 0, &utils.AppError{StatusCode: http.StatusBadRequest, Code: utils.ErrCodeInvalidPayload, Message: "Invalid userID format", Err: err}
	}
	return id, nil
}

// pathID parses the {id} route variable.
func pathID(r *http.Request) (int, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, &utils.AppError{StatusCode: http.StatusBadRequest, Code: utils.ErrCodeInvalidPayload, Message: "Invalid id in path", Err: err}
	}
	return id, nil
}

// formatValidationErrors converts validator errors into a user-friendly format.
func formatValidationErrors(errs validator.ValidationErrors) []dtos.ValidationErrorDetail {
	var details []dtos.ValidationErrorDetail
	for _, err := range errs {
		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("Field '%s' is required", err.Field())
		case "email":
			message = fmt.Sprintf("Field '%s' must be a valid email address", err.Field())
		case "min":
			message = fmt.Sprintf("Field '%s' must be at least %s in length", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("Field '%s' must not exceed %s in length", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("Field '%s' must be one of [%s]", err.Field(), err.Param())
		case "gt", "gte":
			message = fmt.Sprintf("Field '%s' is out of range", err.Field())
		default:
			message = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", err.Field(), err.Tag())
		}
		details = append(details, dtos.ValidationErrorDetail{
			Field:   err.Field(),
			Message: message,
			Code:    "validation_" + err.Tag(),
		})
	}
	return details
}

// respondValidationError writes either the per-field details or a
// generic validation failure.
func respondValidationError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", formatValidationErrors(validationErrs))
		return
	}
	utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
}

// respondServiceError maps domain sentinels onto HTTP statuses so each
// handler does not repeat the table.
func respondServiceError(w http.ResponseWriter, err error, publicMessage string) {
	switch {
	case errors.Is(err, utils.ErrNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Record not found", nil, err)
	case errors.Is(err, utils.ErrNotOwner):
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeForbidden, "You do not own this record", nil, err)
	case errors.Is(err, utils.ErrInvalidStatusTransition), errors.Is(err, utils.ErrWrongStatus):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "Operation not allowed in the current state", nil, err)
	case errors.Is(err, utils.ErrUnknownBroker):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Unknown broker", nil, err)
	case errors.Is(err, utils.ErrEmailExists):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "Email already registered", nil, err)
	case errors.Is(err, utils.ErrInvalidCredentials):
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid credentials", nil, err)
	case errors.Is(err, utils.ErrInvalidPayload), errors.Is(err, utils.ErrUnsupportedLanguage):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, err)
	default:
		utils.Logger.WithError(err).Error(publicMessage)
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, publicMessage, nil, err)
	}
}
