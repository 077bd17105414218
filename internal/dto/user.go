package dto

import (
	"time"

	"github.com/bdpay/dashboard-backend/internal/core/domain"
)

// RegisterRequest defines the payload for user registration.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the payload for credential login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest defines the profile fields a user may overwrite.
type UpdateUserRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// ChangePasswordRequest defines the payload for a password change.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// GetUserParams defines query parameters for fetching a user.
type GetUserParams struct {
	// IncludeAccounts joins the user's accounts into the response instead of
	// relying on lazy loading.
	IncludeAccounts bool `form:"includeAccounts,default=false"`
}

// UserResponse defines the data returned for a user. The credential hash is
// never exposed.
type UserResponse struct {
	UserID    string            `json:"id"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Email     string            `json:"email"`
	FullName  string            `json:"fullName"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	Accounts  []AccountResponse `json:"accounts,omitempty"`
}

// ToUserResponse converts a domain.User to UserResponse.
func ToUserResponse(u *domain.User) UserResponse {
	resp := UserResponse{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		FullName:  u.FullName(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if len(u.Accounts) > 0 {
		resp.Accounts = ToAccountResponseSlice(u.Accounts)
	}
	return resp
}
