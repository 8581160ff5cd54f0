package list_page_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервисного слоя из query-параметров
// Параметры from/to ожидаются в формате RFC3339
func ToServiceRequest(userID, pageID int64, query url.Values) (*models.GetPageBookingsRequest, error) {
	req := &models.GetPageBookingsRequest{
		UserID:        userID,
		BookingPageID: pageID,
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid from parameter: %v", err)
		}
		req.StartTime = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid to parameter: %v", err)
		}
		req.EndTime = &to
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("includeInactive"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive parameter: %v", err)
		}
		req.IncludeInactive = include
	}

	return req, nil
}
