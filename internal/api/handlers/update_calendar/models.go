package update_calendar

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/calendars/models"
)

// UpdateCalendarRequest тело запроса на частичное обновление календаря
// nil-поля не изменяются
type UpdateCalendarRequest struct {
	Alias     *string `json:"alias,omitempty"`
	IsPrimary *bool   `json:"isPrimary,omitempty"`
}

// ToServiceRequest конвертирует API запрос в сервисную модель
func (r *UpdateCalendarRequest) ToServiceRequest(userID int64) *models.UpdateCalendarRequest {
	return &models.UpdateCalendarRequest{
		UserID:    userID,
		Alias:     r.Alias,
		IsPrimary: r.IsPrimary,
	}
}
