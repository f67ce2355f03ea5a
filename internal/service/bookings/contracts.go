package bookings

import (
	"context"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
)

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, kind *domain.BookingKind) ([]*domain.Booking, error)
	GetChildren(ctx context.Context, parentID int64) ([]*domain.Booking, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetCourtByID(ctx context.Context, id int64) (*domain.Court, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
