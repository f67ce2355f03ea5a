package book_court

import (
	"fmt"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Диапазон проверяется до любого обращения к состоянию
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if !req.Weekday.Valid() {
		return fmt.Errorf("%w: weekday must be in [0, 6]", ErrInvalidRange)
	}

	if !domain.ValidUnitRange(req.StartUnit, req.EndUnit) {
		return fmt.Errorf("%w: units must satisfy 0 <= start <= end < %d", ErrInvalidRange, domain.UnitsPerDay)
	}

	return nil
}
