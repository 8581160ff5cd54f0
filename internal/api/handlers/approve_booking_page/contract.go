package approve_booking_page

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/bookingpages/models"
)

type BookingPagesService interface {
	Approve(ctx context.Context, pageID int64, req *models.ApprovePageRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
