package models

import (
	"time"
)

type UserRole string

const (
	RoleUser   UserRole = "user"
	RoleBroker UserRole = "broker"
	RoleAdmin  UserRole = "admin"
)

// User covers both regular accounts and brokers; admins moderate listings.
// There is no credential storage: login is mock and accepts any password,
// the session token only asserts identity and role.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      UserRole  `json:"role"`
	Language  string    `json:"language"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
