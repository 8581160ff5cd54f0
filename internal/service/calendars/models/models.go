package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модели

// CreateCalendarRequest запрос на создание календаря
type CreateCalendarRequest struct {
	UserID    int64  `json:"userId"`
	Alias     string `json:"alias"`
	IsPrimary bool   `json:"isPrimary"`
}

// UpdateCalendarRequest запрос на обновление календаря
// Nil-поля остаются без изменений
type UpdateCalendarRequest struct {
	UserID    int64   `json:"userId"`
	Alias     *string `json:"alias,omitempty"`
	IsPrimary *bool   `json:"isPrimary,omitempty"`
}

// Response модели

// CalendarResponse ответ с данными календаря
type CalendarResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Alias     string    `json:"alias"`
	IsPrimary bool      `json:"isPrimary"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CalendarListResponse ответ со списком календарей
type CalendarListResponse struct {
	Calendars []CalendarResponse `json:"calendars"`
}

// FromDomainCalendar конвертирует domain модель в response
func FromDomainCalendar(c *domain.Calendar) *CalendarResponse {
	return &CalendarResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Alias:     c.Alias,
		IsPrimary: c.IsPrimary,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainCalendarList конвертирует список domain моделей в response
func FromDomainCalendarList(calendars []*domain.Calendar) *CalendarListResponse {
	result := make([]CalendarResponse, 0, len(calendars))
	for _, c := range calendars {
		result = append(result, *FromDomainCalendar(c))
	}
	return &CalendarListResponse{Calendars: result}
}
