package create_team

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/teams/models"
)

// CreateTeamRequest тело запроса на создание команды
type CreateTeamRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Emails      []string `json:"emails"`
}

// ToServiceRequest конвертирует API запрос в сервисную модель
func (r *CreateTeamRequest) ToServiceRequest(userID int64) *models.CreateTeamRequest {
	return &models.CreateTeamRequest{
		UserID:      userID,
		Name:        r.Name,
		Description: r.Description,
		Emails:      r.Emails,
	}
}
