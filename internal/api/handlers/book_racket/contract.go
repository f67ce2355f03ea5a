package book_racket

import (
	"context"

	bookRacket "github.com/Nackalalalong/KK-BackEnd/internal/usecase/book_racket"
)

type BookRacketUseCase interface {
	Execute(ctx context.Context, req *bookRacket.Request) (*bookRacket.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
