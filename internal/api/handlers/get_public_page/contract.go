package get_public_page

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/bookingpages/models"
)

type BookingPagesService interface {
	GetPublicByAliases(ctx context.Context, userAlias, pageAlias string) (*models.PublicPageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
