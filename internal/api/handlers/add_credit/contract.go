package add_credit

import (
	"context"

	"github.com/Nackalalalong/KK-BackEnd/internal/service/users/models"
)

type UserService interface {
	AddCredit(ctx context.Context, userID int64, req *models.AddCreditRequest) (*models.BalanceResponse, error)
	GetBalance(ctx context.Context, userID int64) (*models.BalanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
