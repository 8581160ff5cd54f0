package domain

import "time"

// Team is a named group of email addresses a user invites to meetings together
type Team struct {
	ID          int64
	UserID      int64
	Name        string
	Description *string
	Emails      []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
