package dtos

// LoginRequest is the payload for POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// SignupRequest is the payload for POST /api/v1/auth/signup.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,e164"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=user broker"`
}

// AuthResponse returns the signed token plus the authenticated user.
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// UpdateProfileRequest is the payload for PUT /api/v1/my/profile.
// Nil fields are left unchanged.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,e164"`
	Language *string `json:"language,omitempty" validate:"omitempty,oneof=en ar fr"`
	Avatar   *string `json:"avatar,omitempty" validate:"omitempty,url"`
}

// ValidationErrorDetail reports a single failed validation rule.
type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}
