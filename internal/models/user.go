package models

import "time"

// User mirrors the users table.
type User struct {
	UserID             string     `db:"user_id"`
	FirstName          string     `db:"first_name"`
	LastName           string     `db:"last_name"`
	Email              string     `db:"email"`
	PasswordHash       string     `db:"password_hash"`
	AuthProvider       string     `db:"auth_provider"`
	RefreshTokenHash   string     `db:"refresh_token_hash"`
	RefreshTokenExpiry *time.Time `db:"refresh_token_expiry"`
	Timestamps
}
