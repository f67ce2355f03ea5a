package court

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("court.repository: court not found")

	// ErrRacketNotFound возвращается, когда ракетка не найдена
	ErrRacketNotFound = errors.New("court.repository: racket not found")

	// ErrShuttlecockNotFound возвращается, когда волан не найден
	ErrShuttlecockNotFound = errors.New("court.repository: shuttlecock not found")

	// ErrDuplicateName возвращается при попытке создать сущность с занятым именем
	ErrDuplicateName = errors.New("court.repository: name already exists")

	// ErrOutOfStock возвращается, когда на складе недостаточно воланов
	ErrOutOfStock = errors.New("court.repository: not enough items in stock")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("court.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("court.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("court.repository: failed to scan row")
)
