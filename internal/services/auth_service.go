package services

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/propertyfinder/listings-service/internal/config"
	"github.com/propertyfinder/listings-service/internal/dtos"
	"github.com/propertyfinder/listings-service/internal/models"
	"github.com/propertyfinder/listings-service/internal/repositories"
	"github.com/propertyfinder/listings-service/internal/utils"
)

const tokenTTL = 24 * time.Hour

var supportedLanguages = map[string]struct{}{
	"en": {},
	"ar": {},
	"fr": {},
}

type AuthService struct {
	cfg      *config.Config
	userRepo repositories.UserRepository
}

func NewAuthService(cfg *config.Config, userRepo repositories.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

// Login checks that the account exists and issues a session token.
// There is no password verification: any password signs in, the token
// only asserts identity and role.
func (s *AuthService) Login(ctx context.Context, req dtos.LoginRequest) (*dtos.AuthResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.ErrInvalidCredentials
	}
	return s.issueToken(u)
}

// Signup creates a new account and signs it in. The role defaults to
// user; admin accounts cannot be self-registered.
func (s *AuthService) Signup(ctx context.Context, req dtos.SignupRequest) (*dtos.AuthResponse, error) {
	role := models.RoleUser
	if req.Role == string(models.RoleBroker) {
		role = models.RoleBroker
	}
	u, err := s.userRepo.Create(ctx, &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      role,
		Language:  "en",
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}
	return s.issueToken(u)
}

// GetProfile returns the account for the given user id.
func (s *AuthService) GetProfile(ctx context.Context, userID int) (*models.User, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.ErrNotFound
	}
	return u, nil
}

// UpdateProfile applies a partial profile edit.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int, req dtos.UpdateProfileRequest) (*models.User, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.ErrNotFound
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Language != nil {
		if _, ok := supportedLanguages[*req.Language]; !ok {
			return nil, utils.ErrUnsupportedLanguage
		}
		u.Language = *req.Language
	}
	if req.Avatar != nil {
		u.Avatar = *req.Avatar
	}
	return s.userRepo.Update(ctx, u)
}

func (s *AuthService) issueToken(u *models.User) (*dtos.AuthResponse, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.Itoa(u.ID),
		"role": string(u.Role),
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.cfg.JWTSecret)
	if err != nil {
		return nil, err
	}
	return &dtos.AuthResponse{
		Token: signed,
		User:  dtos.UserFromModel(u),
	}, nil
}
