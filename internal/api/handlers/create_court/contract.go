package create_court

import (
	"context"

	"github.com/Nackalalalong/KK-BackEnd/internal/service/courts/models"
)

type CourtService interface {
	Create(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
