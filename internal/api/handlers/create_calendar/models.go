package create_calendar

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/calendars/models"
)

// CreateCalendarRequest тело запроса на создание календаря
// UserID берется из заголовка аутентификации, а не из тела
type CreateCalendarRequest struct {
	Alias     string `json:"alias"`
	IsPrimary bool   `json:"isPrimary"`
}

// ToServiceRequest конвертирует API запрос в сервисную модель
func (r *CreateCalendarRequest) ToServiceRequest(userID int64) *models.CreateCalendarRequest {
	return &models.CreateCalendarRequest{
		UserID:    userID,
		Alias:     r.Alias,
		IsPrimary: r.IsPrimary,
	}
}
