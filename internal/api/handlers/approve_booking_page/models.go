package approve_booking_page

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookingpages/models"
)

// ApprovePageRequest тело запроса на одобрение страницы
// UserID администратора берется из заголовка аутентификации
type ApprovePageRequest struct {
	Approved bool `json:"approved"`
}

// ToServiceRequest конвертирует запрос API в запрос сервисного слоя
func (r *ApprovePageRequest) ToServiceRequest(userID int64) *models.ApprovePageRequest {
	return &models.ApprovePageRequest{
		UserID:   userID,
		Approved: r.Approved,
	}
}
