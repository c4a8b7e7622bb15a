package dtos

import (
	"github.com/propertyfinder/listings-service/internal/models"
)

// AdminCreateListingRequest is the payload for POST /api/v1/admin/properties.
// Unlike broker submissions the admin names the owning broker explicitly.
type AdminCreateListingRequest struct {
	Broker       string  `json:"broker" validate:"required,min=1"`
	Title        string  `json:"title" validate:"required,min=1"`
	Location     string  `json:"location" validate:"required,min=1"`
	PropertyType string  `json:"property_type" validate:"required,oneof=house apartment commercial land"`
	Category     string  `json:"category" validate:"required,oneof=sale rent"`
	PostType     string  `json:"post_type,omitempty"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Image        string  `json:"image,omitempty" validate:"omitempty,url"`
	Description  string  `json:"description,omitempty"`
	Beds         int     `json:"beds" validate:"gte=0"`
	Baths        int     `json:"baths" validate:"gte=0"`
	Sqft         int     `json:"sqft" validate:"gte=0"`
}

// AdminChangeRoleRequest switches an account between the user and
// broker roles. Admin cannot be granted over the API.
type AdminChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user broker"`
}

// AdminChangeBrokerRequest reassigns a property to another broker.
type AdminChangeBrokerRequest struct {
	Broker string `json:"broker" validate:"required,min=1"`
}

// AdminSetAutoApprovalRequest toggles automatic approval of new listings.
type AdminSetAutoApprovalRequest struct {
	Enabled bool `json:"enabled"`
}

// AdminStatsResponse backs GET /api/v1/admin/stats.
type AdminStatsResponse struct {
	TotalProperties    int `json:"total_properties"`
	PendingProperties  int `json:"pending_properties"`
	ApprovedProperties int `json:"approved_properties"`
	RejectedProperties int `json:"rejected_properties"`
	TotalUsers         int `json:"total_users"`
	TotalBrokers       int `json:"total_brokers"`
}

// AdminConfirmationResponse is a generic success response for admin actions.
type AdminConfirmationResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// UserDTO is the wire form of a user in admin and profile responses.
type UserDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	Language  string `json:"language,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ListUsersResponse is the response for GET /api/v1/admin/users.
type ListUsersResponse struct {
	Results []UserDTO `json:"results"`
	Total   int       `json:"total"`
}

// UserFromModel maps a model onto the wire DTO.
func UserFromModel(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		Language:  u.Language,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt.Format("2006-01-02"),
	}
}

// UsersFromModels maps a slice of models onto wire DTOs.
func UsersFromModels(users []*models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, UserFromModel(u))
	}
	return out
}
