package courts

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("court not found")

	// ErrShuttlecockNotFound возвращается, когда позиция воланов не найдена
	ErrShuttlecockNotFound = errors.New("shuttlecock not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец корта
	ErrAccessDenied = errors.New("access denied")

	// ErrDuplicateName возвращается при попытке занять существующее имя
	ErrDuplicateName = errors.New("name already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
