package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetPageBookingsRequest запрос на получение бронирований страницы
type GetPageBookingsRequest struct {
	UserID          int64      `json:"userId"`
	BookingPageID   int64      `json:"bookingPageId"`
	StartTime       *time.Time `json:"startTime,omitempty"`       // Начало периода (опционально)
	EndTime         *time.Time `json:"endTime,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отмененные и завершенные
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetPageBookingsRequest) ToDomainFilter() (domain.PageBookingsFilter, error) {
	filter := domain.PageBookingsFilter{
		BookingPageID:   r.BookingPageID,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID int64 `json:"userId"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64     `json:"id"`
	BookingPageID int64     `json:"bookingPageId"`
	VisitorEmail  string    `json:"visitorEmail"`
	VisitorName   *string   `json:"visitorName,omitempty"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		BookingPageID: b.BookingPageID,
		VisitorEmail:  b.VisitorEmail,
		VisitorName:   b.VisitorName,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        string(b.Status),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusConfirmed:
		return domain.StatusConfirmed, nil
	case domain.StatusCancelled:
		return domain.StatusCancelled, nil
	case domain.StatusCompleted:
		return domain.StatusCompleted, nil
	default:
		return "", ErrInvalidStatus
	}
}
