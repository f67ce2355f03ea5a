package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда баланс пользователя не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
