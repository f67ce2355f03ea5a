package book_court

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("book_court: court not found")

	// ErrInvalidRange возвращается при некорректном диапазоне юнитов или дне недели
	ErrInvalidRange = errors.New("book_court: invalid unit range")

	// ErrOutsideOpenHours возвращается, когда диапазон выходит за окно работы корта
	ErrOutsideOpenHours = errors.New("book_court: range outside open hours")

	// ErrNotFree возвращается, когда ни один корт не свободен в запрошенном диапазоне
	ErrNotFree = errors.New("book_court: no court free for the requested range")

	// ErrInsufficientFunds возвращается, когда у пользователя не хватает кредитов
	ErrInsufficientFunds = errors.New("book_court: insufficient funds")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_court: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_court: internal error")
)
