package models

import (
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модели

// RuleInput одно правило рабочих часов в запросе
type RuleInput struct {
	DayOfWeek   int    `json:"dayOfWeek"`   // 0-6, воскресенье-суббота
	StartTime   string `json:"startTime"`   // "09:00"
	EndTime     string `json:"endTime"`     // "17:00"
	IsAvailable bool   `json:"isAvailable"` // false = день явно закрыт
}

// SetWeekRequest запрос на замену расписания недели
// Неделя всегда пишется целиком: отсутствующие дни недоступны
type SetWeekRequest struct {
	UserID int64       `json:"userId"`
	Rules  []RuleInput `json:"rules"`
}

// Response модели

// RuleResponse одно правило рабочих часов в ответе
type RuleResponse struct {
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// WeekResponse ответ с расписанием недели
type WeekResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// FromDomainRules конвертирует список domain правил в response
func FromDomainRules(rules []*domain.WorkingHoursRule) *WeekResponse {
	result := make([]RuleResponse, 0, len(rules))
	for _, r := range rules {
		result = append(result, RuleResponse{
			DayOfWeek:   r.DayOfWeek,
			StartTime:   r.StartTime.String(),
			EndTime:     r.EndTime.String(),
			IsAvailable: r.IsAvailable,
		})
	}
	return &WeekResponse{Rules: result}
}
