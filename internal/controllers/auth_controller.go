package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/propertyfinder/listings-service/internal/dtos"
	"github.com/propertyfinder/listings-service/internal/services"
	"github.com/propertyfinder/listings-service/internal/utils"
)

type AuthController struct {
	authService *services.AuthService
	validate    *validator.Validate
}

func NewAuthController(as *services.AuthService) *AuthController {
	return &AuthController{
		authService: as,
		validate:    validator.New(),
	}
}

// ----------------------------------------------------------------
// POST /api/v1/auth/login
// ----------------------------------------------------------------
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	resp, err := c.authService.Login(r.Context(), req)
	if err != nil {
		respondServiceError(w, err, "Login failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ----------------------------------------------------------------
// POST /api/v1/auth/signup
// ----------------------------------------------------------------
func (c *AuthController) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	resp, err := c.authService.Signup(r.Context(), req)
	if err != nil {
		respondServiceError(w, err, "Signup failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// ----------------------------------------------------------------
// GET /api/v1/my/profile
// ----------------------------------------------------------------
func (c *AuthController) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	u, err := c.authService.GetProfile(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err, "Failed to load profile")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.UserFromModel(u))
}

// ----------------------------------------------------------------
// PUT /api/v1/my/profile
// ----------------------------------------------------------------
func (c *AuthController) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	var req dtos.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	u, err := c.authService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		respondServiceError(w, err, "Failed to update profile")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.UserFromModel(u))
}
