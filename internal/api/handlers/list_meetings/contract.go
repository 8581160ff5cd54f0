package list_meetings

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/meetings/models"
)

type MeetingsService interface {
	List(ctx context.Context, req *models.ListMeetingsRequest) (*models.MeetingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
