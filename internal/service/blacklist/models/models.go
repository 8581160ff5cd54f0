package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модели

// AddEntryRequest запрос на добавление алиаса в черный список
type AddEntryRequest struct {
	UserID int64   `json:"userId"`
	Alias  string  `json:"alias"`
	Reason *string `json:"reason,omitempty"`
}

// RemoveEntryRequest запрос на удаление алиаса из черного списка
type RemoveEntryRequest struct {
	UserID int64  `json:"userId"`
	Alias  string `json:"alias"`
}

// Response модели

// EntryResponse ответ с записью черного списка
type EntryResponse struct {
	ID        int64     `json:"id"`
	Alias     string    `json:"alias"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// EntryListResponse ответ со списком записей черного списка
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// FromDomainEntry конвертирует domain модель в response
func FromDomainEntry(e *domain.AliasBlacklistEntry) *EntryResponse {
	return &EntryResponse{
		ID:        e.ID,
		Alias:     e.Alias,
		Reason:    e.Reason,
		CreatedBy: e.CreatedBy,
		CreatedAt: e.CreatedAt,
	}
}

// FromDomainEntryList конвертирует список domain моделей в response
func FromDomainEntryList(entries []*domain.AliasBlacklistEntry) *EntryListResponse {
	result := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, *FromDomainEntry(e))
	}
	return &EntryListResponse{Entries: result}
}
