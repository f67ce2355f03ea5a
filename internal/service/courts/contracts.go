package courts

import (
	"context"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	CreateCourt(ctx context.Context, c *domain.Court) (*domain.Court, error)
	GetCourtByID(ctx context.Context, id int64) (*domain.Court, error)
	CreateRacket(ctx context.Context, racket *domain.Racket) (*domain.Racket, error)
	ListRacketsByCourt(ctx context.Context, courtID int64) ([]*domain.Racket, error)
	CreateShuttlecock(ctx context.Context, s *domain.Shuttlecock) (*domain.Shuttlecock, error)
	GetShuttlecockByID(ctx context.Context, id int64) (*domain.Shuttlecock, error)
	ListShuttlecocksByCourt(ctx context.Context, courtID int64) ([]*domain.Shuttlecock, error)
	AddShuttlecockStock(ctx context.Context, id int64, count int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
