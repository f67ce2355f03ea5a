package buy_shuttlecock

import "errors"

var (
	// ErrBookingNotFound родительское бронирование не найдено
	ErrBookingNotFound = errors.New("buy_shuttlecock: booking not found")
	// ErrShuttlecockNotFound воланы не найдены
	ErrShuttlecockNotFound = errors.New("buy_shuttlecock: shuttlecock not found")
	// ErrAccessDenied покупать может только плательщик бронирования
	ErrAccessDenied = errors.New("buy_shuttlecock: access denied")
	// ErrWrongCourt воланы принадлежат другому корту
	ErrWrongCourt = errors.New("buy_shuttlecock: shuttlecock belongs to another court")
	// ErrNotParent воланы можно привязать только к бронированию корта
	ErrNotParent = errors.New("buy_shuttlecock: entry is not a court booking")
	// ErrOutOfStock на складе недостаточно туб
	ErrOutOfStock = errors.New("buy_shuttlecock: out of stock")
	// ErrInsufficientFunds недостаточно кредитов
	ErrInsufficientFunds = errors.New("buy_shuttlecock: insufficient funds")
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("buy_shuttlecock: invalid input")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("buy_shuttlecock: internal error")
)
