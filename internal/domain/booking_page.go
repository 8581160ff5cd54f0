package domain

import "time"

// BookingPage represents a visitor-facing booking configuration owned by a user
type BookingPage struct {
	ID                    int64
	UserID                int64
	CalendarID            int64
	Alias                 string
	IsApproved            bool
	IsActive              bool
	DurationMinutes       int
	BufferBeforeMinutes   int
	BufferAfterMinutes    int
	MaxBookingsPerVisitor int
	Description           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the page is publicly bookable
// A page accepts visitor bookings only when it is both approved and active
func (p *BookingPage) IsBookable() bool {
	return p.IsApproved && p.IsActive
}

// SlotFootprintMinutes returns the full calendar footprint of one slot:
// the offered duration plus both buffers
func (p *BookingPage) SlotFootprintMinutes() int {
	return p.DurationMinutes + p.BufferBeforeMinutes + p.BufferAfterMinutes
}
