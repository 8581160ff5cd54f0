package set_availability

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
)

// SetWeekRequest тело запроса на замену расписания недели
// UserID берется из заголовка аутентификации
type SetWeekRequest struct {
	Rules []models.RuleInput `json:"rules"`
}

// ToServiceRequest конвертирует запрос API в запрос сервисного слоя
func (r *SetWeekRequest) ToServiceRequest(userID int64) *models.SetWeekRequest {
	return &models.SetWeekRequest{
		UserID: userID,
		Rules:  r.Rules,
	}
}
