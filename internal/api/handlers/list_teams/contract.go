package list_teams

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/teams/models"
)

type TeamsService interface {
	ListByUser(ctx context.Context, userID int64) (*models.TeamListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
