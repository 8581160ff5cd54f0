package update_booking_page

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookingpages/models"
)

// UpdatePageRequest тело запроса на обновление страницы бронирования
// Nil-поля остаются без изменений; UserID берется из заголовка аутентификации
type UpdatePageRequest struct {
	Alias                 *string `json:"alias,omitempty"`
	IsActive              *bool   `json:"isActive,omitempty"`
	DurationMinutes       *int    `json:"durationMinutes,omitempty"`
	BufferBeforeMinutes   *int    `json:"bufferBeforeMinutes,omitempty"`
	BufferAfterMinutes    *int    `json:"bufferAfterMinutes,omitempty"`
	MaxBookingsPerVisitor *int    `json:"maxBookingsPerVisitor,omitempty"`
	Description           *string `json:"description,omitempty"`
}

// ToServiceRequest конвертирует запрос API в запрос сервисного слоя
func (r *UpdatePageRequest) ToServiceRequest(userID int64) *models.UpdatePageRequest {
	return &models.UpdatePageRequest{
		UserID:                userID,
		Alias:                 r.Alias,
		IsActive:              r.IsActive,
		DurationMinutes:       r.DurationMinutes,
		BufferBeforeMinutes:   r.BufferBeforeMinutes,
		BufferAfterMinutes:    r.BufferAfterMinutes,
		MaxBookingsPerVisitor: r.MaxBookingsPerVisitor,
		Description:           r.Description,
	}
}
