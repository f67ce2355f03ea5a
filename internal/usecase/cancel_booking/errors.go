package cancel_booking

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")
	// ErrAccessDenied отменять может только плательщик или владелец корта
	ErrAccessDenied = errors.New("cancel_booking: access denied")
	// ErrWindowClosed дата бронирования уже наступила, отмена невозможна
	ErrWindowClosed = errors.New("cancel_booking: cancellation window closed")
	// ErrInsufficientFunds владелец корта не может покрыть возврат
	ErrInsufficientFunds = errors.New("cancel_booking: insufficient funds for refund")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("cancel_booking: invalid input")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("cancel_booking: internal error")
)
