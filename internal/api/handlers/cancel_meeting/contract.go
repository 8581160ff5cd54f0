package cancel_meeting

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/meetings/models"
)

type MeetingsService interface {
	Cancel(ctx context.Context, meetingID int64, req *models.CancelMeetingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
