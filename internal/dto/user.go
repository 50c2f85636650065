package dto

import (
	"time"

	dom "Dashboard/internal/domain"
)

// RegisterRequest is the JSON body for POST /auth/register.
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,max=255"`
	Username string  `json:"username" binding:"required,max=100"`
	Password string  `json:"password" binding:"required"`
	FullName *string `json:"fullName"`
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the JSON body for PATCH /user/me.
// Nil fields are left unchanged (merge-on-null).
type UpdateProfileRequest struct {
	FullName  *string `json:"fullName"`
	AvatarURL *string `json:"avatarUrl"`
}

// UserResponse is the public view of a user. The password hash never
// appears here.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  *string   `json:"fullName"`
	AvatarURL *string   `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserToResponse maps a domain user to its public view.
func UserToResponse(u dom.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}
