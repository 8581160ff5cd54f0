package calendarprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Client клиент для работы с провайдером внешних календарей
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента провайдера календарей
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBusyIntervals получает занятые интервалы внешнего календаря за сутки
//
// 404 от провайдера означает, что интеграция для календаря не настроена:
// это не ошибка, возвращаем пустой список. Все остальные сбои (сеть, 5xx,
// битый JSON) пробрасываются как ErrProviderUnavailable, чтобы вызывающая
// сторона не показала слоты, которые на самом деле заняты.
func (c *Client) GetBusyIntervals(ctx context.Context, calendarID int64, date time.Time) ([]BusyInterval, error) {
	url := fmt.Sprintf("%s/internal/calendars/%d/busy?date=%s", c.baseURL, calendarID, date.Format(domain.DateFormat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Calendar provider unavailable for calendar_id=%d: %v", calendarID, err)
		return nil, fmt.Errorf("%w: calendar_id=%d, error=%v", ErrProviderUnavailable, calendarID, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		// Интеграция не подключена - считаем календарь свободным
		c.log.Info("No provider integration for calendar_id=%d", calendarID)
		return []BusyInterval{}, nil
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid calendar ID or date format", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("Calendar provider returned status %d for calendar_id=%d: %s", resp.StatusCode, calendarID, string(body))
		return nil, fmt.Errorf("%w: calendar_id=%d, status=%d", ErrProviderUnavailable, calendarID, resp.StatusCode)
	}

	// Парсим ответ
	var parsed busyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return parsed.Intervals, nil
}
