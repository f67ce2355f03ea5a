package add_racket

import (
	"context"

	"github.com/Nackalalalong/KK-BackEnd/internal/service/courts/models"
)

type CourtService interface {
	AddRacket(ctx context.Context, courtID int64, req *models.AddRacketRequest) (*models.RacketResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
