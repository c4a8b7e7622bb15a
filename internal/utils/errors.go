// internal/utils/errors.go
package utils

import (
	"errors"
	"net/http"
)

/*
Sentinel errors for listings-service domain logic.
The controller can do: if errors.Is(err, ErrXYZ) { ... }
*/
var (
	ErrNotFound                = errors.New("not_found")
	ErrNotOwner                = errors.New("not_owner")
	ErrWrongStatus             = errors.New("wrong_status")
	ErrInvalidStatusTransition = errors.New("invalid_status_transition")
	ErrUnknownBroker           = errors.New("unknown_broker")
	ErrEmailExists             = errors.New("email_exists")
	ErrInvalidCredentials      = errors.New("invalid_credentials")
	ErrInvalidPayload          = errors.New("invalid_payload")
	ErrUnsupportedLanguage     = errors.New("unsupported_language")
)

// AppError for structured error handling from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
	} else {
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
