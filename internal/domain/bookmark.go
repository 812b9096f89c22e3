package domain

import "time"

// Bookmark is a saved link owned by exactly one user.
type Bookmark struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description *string
	Link        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
