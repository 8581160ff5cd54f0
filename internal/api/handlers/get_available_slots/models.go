package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	UserAlias       string         `json:"userAlias"`
	PageAlias       string         `json:"pageAlias"`
	Date            string         `json:"date"`     // "2026-09-01"
	Timezone        string         `json:"timezone"` // Таймзона владельца
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// SlotResponse один доступный слот
type SlotResponse struct {
	StartTime string `json:"startTime"` // RFC 3339
	EndTime   string `json:"endTime"`   // RFC 3339
}

// ToUseCaseRequest конвертирует параметры HTTP запроса в модель use case
func ToUseCaseRequest(userAlias, pageAlias, dateStr string, visitorEmail *string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		UserAlias:    userAlias,
		PageAlias:    pageAlias,
		Date:         date,
		VisitorEmail: visitorEmail,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: s.StartTime.Format(time.RFC3339),
			EndTime:   s.EndTime.Format(time.RFC3339),
		})
	}

	return &SlotsResponse{
		UserAlias:       resp.UserAlias,
		PageAlias:       resp.PageAlias,
		Date:            resp.Date.Format(domain.DateFormat),
		Timezone:        resp.Timezone,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
