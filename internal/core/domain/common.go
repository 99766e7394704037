package domain

import "time"

// Timestamps holds the lifecycle audit fields every backend entity carries.
// DeletedAt is set when the backend soft-deletes a record.
type Timestamps struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
