package create_booking_page

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookingpages/models"
)

// CreatePageRequest HTTP request model
// UserID берется из заголовка аутентификации, а не из тела
type CreatePageRequest struct {
	CalendarID            int64   `json:"calendarId"`
	Alias                 string  `json:"alias"`
	DurationMinutes       *int    `json:"durationMinutes,omitempty"`
	BufferBeforeMinutes   *int    `json:"bufferBeforeMinutes,omitempty"`
	BufferAfterMinutes    *int    `json:"bufferAfterMinutes,omitempty"`
	MaxBookingsPerVisitor *int    `json:"maxBookingsPerVisitor,omitempty"`
	Description           *string `json:"description,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreatePageRequest) ToServiceRequest(userID int64) *models.CreatePageRequest {
	return &models.CreatePageRequest{
		UserID:                userID,
		CalendarID:            r.CalendarID,
		Alias:                 r.Alias,
		DurationMinutes:       r.DurationMinutes,
		BufferBeforeMinutes:   r.BufferBeforeMinutes,
		BufferAfterMinutes:    r.BufferAfterMinutes,
		MaxBookingsPerVisitor: r.MaxBookingsPerVisitor,
		Description:           r.Description,
	}
}
