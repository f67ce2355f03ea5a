package add_shuttlecock

import (
	"context"

	"github.com/Nackalalalong/KK-BackEnd/internal/service/courts/models"
)

type CourtService interface {
	AddShuttlecock(ctx context.Context, courtID int64, req *models.AddShuttlecockRequest) (*models.ShuttlecockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
