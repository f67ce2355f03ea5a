package user

import "errors"

var (
	// ErrUserNotFound возвращается, когда баланс пользователя не найден
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrInsufficientFunds возвращается, когда на балансе недостаточно кредитов
	ErrInsufficientFunds = errors.New("user.repository: insufficient funds")

	// ErrNegativeAmount возвращается при попытке операции с отрицательной суммой
	ErrNegativeAmount = errors.New("user.repository: amount cannot be negative")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("user.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("user.repository: failed to scan row")
)
