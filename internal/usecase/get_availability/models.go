package get_availability

import "github.com/Nackalalalong/KK-BackEnd/internal/domain"

// Request модель запроса доступности корта
//
// StartUnit/EndUnit опциональны: если заданы оба, в ответе дополнительно
// выставляется вердикт Free для всего диапазона.
type Request struct {
	CourtID   int64          // ID корта
	Weekday   domain.Weekday // День недели
	StartUnit *int           // Начало проверяемого диапазона (включительно)
	EndUnit   *int           // Конец проверяемого диапазона (включительно)
}

// UnitAvailability число свободных кортов в одном получасовом юните
type UnitAvailability struct {
	Unit int // Номер юнита
	Free int // Сколько физических кортов свободно
}

// Response модель ответа с доступностью по юнитам окна работы
type Response struct {
	CourtID    int64              // ID корта
	Weekday    domain.Weekday     // День недели
	CourtCount int                // Всего физических кортов
	Units      []UnitAvailability // Поюнитная доступность в окне [open, close)
	// Free вердикт для запрошенного диапазона: хотя бы один корт
	// свободен на всех его юнитах. nil, если диапазон не запрашивали.
	Free *bool
}
