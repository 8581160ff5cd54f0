package domain

import "time"

// AliasBlacklistEntry represents a reserved or forbidden page alias.
// Checked at booking-page creation time, not at slot computation.
type AliasBlacklistEntry struct {
	ID        int64
	Alias     string
	Reason    *string
	CreatedBy int64
	CreatedAt time.Time
}
