package domain

import "time"

// Timestamps holds the creation/update audit columns shared by all entities.
// Every mutation through the service layer refreshes UpdatedAt.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
