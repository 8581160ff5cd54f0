package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VisitorEmail string  `json:"visitorEmail"`
	VisitorName  *string `json:"visitorName,omitempty"`
	StartTime    string  `json:"startTime"` // RFC 3339, например "2026-09-01T10:00:00+03:00"
	Notes        *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	BookingPageID int64   `json:"bookingPageId"`
	VisitorEmail  string  `json:"visitorEmail"`
	VisitorName   *string `json:"visitorName,omitempty"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userAlias, pageAlias string) (*createBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserAlias:    userAlias,
		PageAlias:    pageAlias,
		VisitorEmail: r.VisitorEmail,
		VisitorName:  r.VisitorName,
		StartTime:    startTime,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		BookingPageID: resp.BookingPageID,
		VisitorEmail:  resp.VisitorEmail,
		VisitorName:   resp.VisitorName,
		StartTime:     resp.StartTime.Format(time.RFC3339),
		EndTime:       resp.EndTime.Format(time.RFC3339),
		Status:        resp.Status,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
