package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/propertyfinder/listings-service/internal/dtos"
	"github.com/propertyfinder/listings-service/internal/services"
	"github.com/propertyfinder/listings-service/internal/utils"
)

type AdminController struct {
	adminService *services.AdminService
	validate     *validator.Validate
}

func NewAdminController(as *services.AdminService) *AdminController {
	return &AdminController{
		adminService: as,
		validate:     validator.New(),
	}
}

// ----------------------------------------------------------------
// GET /api/v1/admin/properties
// ----------------------------------------------------------------
func (c *AdminController) ListPropertiesHandler(w http.ResponseWriter, r *http.Request) {
	listings, err := c.adminService.ListProperties(r.Context())
	if err != nil {
		respondServiceError(w, err, "Failed to list properties")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ListListingsResponse{
		Results: dtos.ListingsFromModels(listings),
		Total:   len(listings),
	})
}

// ----------------------------------------------------------------
// POST /api/v1/admin/properties/{id}/approve
// ----------------------------------------------------------------
func (c *AdminController) ApprovePropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	l, err := c.adminService.ApproveProperty(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to approve property")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ListingFromModel(l))
}

// ----------------------------------------------------------------
// POST /api/v1/admin/properties/{id}/reject
// ----------------------------------------------------------------
func (c *AdminController) RejectPropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	l, err := c.adminService.RejectProperty(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to reject property")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ListingFromModel(l))
}

// ----------------------------------------------------------------
// DELETE /api/v1/admin/properties/{id}
// ----------------------------------------------------------------
func (c *AdminController) DeletePropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if err := c.adminService.DeleteProperty(r.Context(), id); err != nil {
		respondServiceError(w, err, "Failed to delete property")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.AdminConfirmationResponse{Message: "Property deleted", ID: id})
}

// ----------------------------------------------------------------
// POST /api/v1/admin/properties
// ----------------------------------------------------------------
func (c *AdminController) AddPropertyHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.AdminCreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	l, err := c.adminService.AddProperty(r.Context(), req)
	if err != nil {
		respondServiceError(w, err, "Failed to add property")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.ListingFromModel(l))
}

// ----------------------------------------------------------------
// PUT /api/v1/admin/properties/{id}/broker
// ----------------------------------------------------------------
func (c *AdminController) ChangeBrokerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	var req dtos.AdminChangeBrokerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	l, err := c.adminService.ChangeBroker(r.Context(), id, req.Broker)
	if err != nil {
		respondServiceError(w, err, "Failed to change broker")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ListingFromModel(l))
}

// ----------------------------------------------------------------
// GET /api/v1/admin/users
// ----------------------------------------------------------------
func (c *AdminController) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := c.adminService.ListUsers(r.Context())
	if err != nil {
		respondServiceError(w, err, "Failed to list users")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ListUsersResponse{
		Results: dtos.UsersFromModels(users),
		Total:   len(users),
	})
}

// ----------------------------------------------------------------
// PUT /api/v1/admin/users/{id}
// ----------------------------------------------------------------
func (c *AdminController) UpdateUserRoleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	var req dtos.AdminChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	u, err := c.adminService.UpdateUserRole(r.Context(), id, req.Role)
	if err != nil {
		respondServiceError(w, err, "Failed to update user role")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.UserFromModel(u))
}

// ----------------------------------------------------------------
// DELETE /api/v1/admin/users/{id}
// ----------------------------------------------------------------
func (c *AdminController) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if err := c.adminService.DeleteUser(r.Context(), id); err != nil {
		respondServiceError(w, err, "Failed to delete user")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.AdminConfirmationResponse{Message: "User deleted", ID: id})
}

// ----------------------------------------------------------------
// GET /api/v1/admin/stats
// ----------------------------------------------------------------
func (c *AdminController) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := c.adminService.Stats(r.Context())
	if err != nil {
		respondServiceError(w, err, "Failed to load admin stats")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// ----------------------------------------------------------------
// GET /api/v1/admin/settings/auto-approval
// ----------------------------------------------------------------
func (c *AdminController) GetAutoApprovalHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dtos.AdminSetAutoApprovalRequest{
		Enabled: c.adminService.AutoApproval(),
	})
}

// ----------------------------------------------------------------
// PUT /api/v1/admin/settings/auto-approval
// ----------------------------------------------------------------
func (c *AdminController) SetAutoApprovalHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.AdminSetAutoApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	c.adminService.SetAutoApproval(req.Enabled)
	utils.RespondWithJSON(w, http.StatusOK, req)
}
