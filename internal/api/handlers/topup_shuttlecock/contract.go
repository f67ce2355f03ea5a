package topup_shuttlecock

import (
	"context"

	"github.com/Nackalalalong/KK-BackEnd/internal/service/courts/models"
)

type CourtService interface {
	TopUpShuttlecock(ctx context.Context, shuttlecockID int64, req *models.TopUpShuttlecockRequest) (*models.ShuttlecockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
