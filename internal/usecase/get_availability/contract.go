package get_availability

import (
	"context"
	"time"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetCourtByID(ctx context.Context, id int64) (*domain.Court, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetAllForResource(ctx context.Context, kind domain.ResourceKind, resourceID int64, weekday domain.Weekday) ([]*domain.Schedule, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
