package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модели

// CreateTeamRequest запрос на создание команды
type CreateTeamRequest struct {
	UserID      int64    `json:"userId"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Emails      []string `json:"emails,omitempty"`
}

// Response модели

// TeamResponse ответ с данными команды
type TeamResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Emails      []string  `json:"emails"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TeamListResponse ответ со списком команд
type TeamListResponse struct {
	Teams []TeamResponse `json:"teams"`
}

// FromDomainTeam конвертирует domain модель в response
func FromDomainTeam(t *domain.Team) *TeamResponse {
	emails := t.Emails
	if emails == nil {
		emails = []string{}
	}
	return &TeamResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Name:        t.Name,
		Description: t.Description,
		Emails:      emails,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// FromDomainTeamList конвертирует список domain моделей в response
func FromDomainTeamList(teams []*domain.Team) *TeamListResponse {
	result := make([]TeamResponse, 0, len(teams))
	for _, t := range teams {
		result = append(result, *FromDomainTeam(t))
	}
	return &TeamListResponse{Teams: result}
}
