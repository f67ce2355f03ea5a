package book_racket

import "errors"

var (
	// ErrBookingNotFound родительское бронирование не найдено
	ErrBookingNotFound = errors.New("book_racket: booking not found")
	// ErrRacketNotFound ракетка не найдена
	ErrRacketNotFound = errors.New("book_racket: racket not found")
	// ErrAccessDenied арендовать ракетку может только плательщик бронирования
	ErrAccessDenied = errors.New("book_racket: access denied")
	// ErrWrongCourt ракетка принадлежит другому корту
	ErrWrongCourt = errors.New("book_racket: racket belongs to another court")
	// ErrNotParent ракетку можно привязать только к бронированию корта
	ErrNotParent = errors.New("book_racket: entry is not a court booking")
	// ErrNotFree ракетка занята на запрошенном диапазоне
	ErrNotFree = errors.New("book_racket: racket is not free")
	// ErrInsufficientFunds недостаточно кредитов
	ErrInsufficientFunds = errors.New("book_racket: insufficient funds")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("book_racket: invalid input")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("book_racket: internal error")
)
