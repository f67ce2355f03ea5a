package cancel_booking

import (
	"context"
	"time"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
)

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetChildren(ctx context.Context, parentID int64) ([]*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetCourtByID(ctx context.Context, id int64) (*domain.Court, error)
	AddShuttlecockStock(ctx context.Context, id int64, count int) error
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetOrCreate(ctx context.Context, kind domain.ResourceKind, resourceID int64, instance int, weekday domain.Weekday) (*domain.Schedule, error)
	Save(ctx context.Context, s *domain.Schedule) error
}

// BalanceRepository интерфейс хранилища кредитных балансов
type BalanceRepository interface {
	Debit(ctx context.Context, id int64, amount float64) error
	Credit(ctx context.Context, id int64, amount float64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации событий
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
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
