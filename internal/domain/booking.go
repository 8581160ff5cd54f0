package domain

import "time"

// BookingStatus represents the status of a visitor booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a committed visitor reservation against a booking page
type Booking struct {
	ID            int64
	BookingPageID int64
	VisitorEmail  string
	VisitorName   *string
	StartTime     time.Time
	EndTime       time.Time
	Status        BookingStatus
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking occupies calendar time
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// PageBookingsFilter фильтр для выборки бронирований страницы
type PageBookingsFilter struct {
	BookingPageID   int64
	StartTime       *time.Time // Начало периода (опционально)
	EndTime         *time.Time // Конец периода (опционально)
	Status          *BookingStatus
	IncludeInactive bool // Включать ли отмененные бронирования
}
