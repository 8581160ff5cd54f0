package create_booking_page

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/bookingpages/models"
)

type BookingPagesService interface {
	Create(ctx context.Context, req *models.CreatePageRequest) (*models.PageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
