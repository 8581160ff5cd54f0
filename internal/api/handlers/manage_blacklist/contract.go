package manage_blacklist

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/blacklist/models"
)

type BlacklistService interface {
	Add(ctx context.Context, req *models.AddEntryRequest) (*models.EntryResponse, error)
	Remove(ctx context.Context, req *models.RemoveEntryRequest) error
	List(ctx context.Context, userID int64) (*models.EntryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
