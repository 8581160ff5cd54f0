package list_booking_pages

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/bookingpages/models"
)

type BookingPagesService interface {
	ListByUser(ctx context.Context, userID int64) (*models.PageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
