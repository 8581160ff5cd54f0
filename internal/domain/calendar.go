package domain

import "time"

// Calendar represents a user's calendar that booking pages and meetings attach to
type Calendar struct {
	ID        int64
	UserID    int64
	Alias     string
	IsPrimary bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
