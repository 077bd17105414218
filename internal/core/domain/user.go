package domain

import "time"

// AuthProvider identifies how a user's credentials are managed.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a dashboard user within the core domain.
// PasswordHash holds a bcrypt hash; the plaintext password is never stored.
type User struct {
	UserID       string       `json:"userID"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	AuthProvider AuthProvider `json:"-"`
	// Refresh token state, SHA-256 hashed. Empty when no refresh token is outstanding.
	RefreshTokenHash   string     `json:"-"`
	RefreshTokenExpiry *time.Time `json:"-"`
	Timestamps
	// Accounts is populated only when explicitly requested (includeAccounts).
	Accounts []Account `json:"accounts,omitempty"`
}

// FullName returns the display name used by the dashboard header.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
