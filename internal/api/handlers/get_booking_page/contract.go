package get_booking_page

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/bookingpages/models"
)

type BookingPagesService interface {
	GetByID(ctx context.Context, id int64, userID int64) (*models.PageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
