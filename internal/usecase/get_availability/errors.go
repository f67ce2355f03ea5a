package get_availability

import "errors"

var (
	// ErrCourtNotFound корт не найден
	ErrCourtNotFound = errors.New("get_availability: court not found")
	// ErrInvalidRange некорректный диапазон юнитов или день недели
	ErrInvalidRange = errors.New("get_availability: invalid range")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("get_availability: invalid input")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("get_availability: internal error")
)
