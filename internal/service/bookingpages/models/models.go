package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модели

// CreatePageRequest запрос на создание страницы бронирования
type CreatePageRequest struct {
	UserID                int64   `json:"userId"`
	CalendarID            int64   `json:"calendarId"`
	Alias                 string  `json:"alias"`
	DurationMinutes       *int    `json:"durationMinutes,omitempty"`
	BufferBeforeMinutes   *int    `json:"bufferBeforeMinutes,omitempty"`
	BufferAfterMinutes    *int    `json:"bufferAfterMinutes,omitempty"`
	MaxBookingsPerVisitor *int    `json:"maxBookingsPerVisitor,omitempty"`
	Description           *string `json:"description,omitempty"`
}

// UpdatePageRequest запрос на обновление страницы бронирования
// Nil-поля остаются без изменений
type UpdatePageRequest struct {
	UserID                int64   `json:"userId"`
	Alias                 *string `json:"alias,omitempty"`
	IsActive              *bool   `json:"isActive,omitempty"`
	DurationMinutes       *int    `json:"durationMinutes,omitempty"`
	BufferBeforeMinutes   *int    `json:"bufferBeforeMinutes,omitempty"`
	BufferAfterMinutes    *int    `json:"bufferAfterMinutes,omitempty"`
	MaxBookingsPerVisitor *int    `json:"maxBookingsPerVisitor,omitempty"`
	Description           *string `json:"description,omitempty"`
}

// ApprovePageRequest запрос на одобрение страницы администратором
type ApprovePageRequest struct {
	UserID   int64 `json:"userId"`
	Approved bool  `json:"approved"`
}

// Response модели

// PageResponse ответ с данными страницы бронирования
type PageResponse struct {
	ID                    int64     `json:"id"`
	UserID                int64     `json:"userId"`
	CalendarID            int64     `json:"calendarId"`
	Alias                 string    `json:"alias"`
	IsApproved            bool      `json:"isApproved"`
	IsActive              bool      `json:"isActive"`
	DurationMinutes       int       `json:"durationMinutes"`
	BufferBeforeMinutes   int       `json:"bufferBeforeMinutes"`
	BufferAfterMinutes    int       `json:"bufferAfterMinutes"`
	MaxBookingsPerVisitor int       `json:"maxBookingsPerVisitor"`
	Description           *string   `json:"description,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// PageListResponse ответ со списком страниц
type PageListResponse struct {
	Pages []PageResponse `json:"pages"`
}

// PublicPageResponse публичная информация о странице для посетителей
// Внутренние идентификаторы и настройки модерации наружу не отдаются
type PublicPageResponse struct {
	UserAlias       string  `json:"userAlias"`
	PageAlias       string  `json:"pageAlias"`
	DurationMinutes int     `json:"durationMinutes"`
	Description     *string `json:"description,omitempty"`
	Timezone        string  `json:"timezone"`
}

// FromDomainPage конвертирует domain модель в response
func FromDomainPage(page *domain.BookingPage) *PageResponse {
	return &PageResponse{
		ID:                    page.ID,
		UserID:                page.UserID,
		CalendarID:            page.CalendarID,
		Alias:                 page.Alias,
		IsApproved:            page.IsApproved,
		IsActive:              page.IsActive,
		DurationMinutes:       page.DurationMinutes,
		BufferBeforeMinutes:   page.BufferBeforeMinutes,
		BufferAfterMinutes:    page.BufferAfterMinutes,
		MaxBookingsPerVisitor: page.MaxBookingsPerVisitor,
		Description:           page.Description,
		CreatedAt:             page.CreatedAt,
		UpdatedAt:             page.UpdatedAt,
	}
}

// FromDomainPageList конвертирует список domain моделей в response
func FromDomainPageList(pages []*domain.BookingPage) *PageListResponse {
	result := make([]PageResponse, 0, len(pages))
	for _, p := range pages {
		result = append(result, *FromDomainPage(p))
	}
	return &PageListResponse{Pages: result}
}
