package create_booking

import (
	"context"

	bookCourt "github.com/Nackalalalong/KK-BackEnd/internal/usecase/book_court"
)

type BookCourtUseCase interface {
	Execute(ctx context.Context, req *bookCourt.Request) (*bookCourt.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
