package users

import (
	"context"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
)

// BalanceRepository интерфейс хранилища кредитных балансов
type BalanceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	AddCredit(ctx context.Context, id int64, amount float64) (float64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
