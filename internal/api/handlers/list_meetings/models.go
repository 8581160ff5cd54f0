package list_meetings

import (
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/service/meetings/models"
)

// ToServiceRequest собирает запрос сервисного слоя из query-параметров
// Параметры from/to ожидаются в формате RFC3339, обе границы опциональны
func ToServiceRequest(userID int64, query url.Values) (*models.ListMeetingsRequest, error) {
	req := &models.ListMeetingsRequest{UserID: userID}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid from parameter: %v", err)
		}
		req.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid to parameter: %v", err)
		}
		req.To = &to
	}

	return req, nil
}
