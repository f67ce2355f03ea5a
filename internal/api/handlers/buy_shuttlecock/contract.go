package buy_shuttlecock

import (
	"context"

	buyShuttlecock "github.com/Nackalalalong/KK-BackEnd/internal/usecase/buy_shuttlecock"
)

type BuyShuttlecockUseCase interface {
	Execute(ctx context.Context, req *buyShuttlecock.Request) (*buyShuttlecock.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
