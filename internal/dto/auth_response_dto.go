package dto

// AuthResponse is returned by register, login, refresh and the OAuth
// callback: an access token, a rotating refresh token and the user profile.
type AuthResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// RefreshRequest carries the raw refresh token to be exchanged.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
