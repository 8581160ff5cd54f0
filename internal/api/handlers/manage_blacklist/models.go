package manage_blacklist

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/blacklist/models"
)

// AddEntryRequest тело запроса на блокировку алиаса
// UserID администратора берется из заголовка аутентификации
type AddEntryRequest struct {
	Alias  string  `json:"alias"`
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует запрос API в запрос сервисного слоя
func (r *AddEntryRequest) ToServiceRequest(userID int64) *models.AddEntryRequest {
	return &models.AddEntryRequest{
		UserID: userID,
		Alias:  r.Alias,
		Reason: r.Reason,
	}
}
