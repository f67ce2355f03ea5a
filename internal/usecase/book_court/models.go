package book_court

import (
	"time"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
)

// Request модель запроса на бронирование корта
type Request struct {
	UserID    int64          // ID плательщика
	CourtID   int64          // ID корта
	Weekday   domain.Weekday // День недели (0 = понедельник)
	StartUnit int            // Первый получасовой юнит (включительно)
	EndUnit   int            // Последний получасовой юнит (включительно)
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID   int64          // ID записи в журнале
	CourtID     int64          // ID корта
	CourtNumber int            // Номер выделенного корта (first-fit)
	Weekday     domain.Weekday // День недели
	StartUnit   int            // Начало диапазона
	EndUnit     int            // Конец диапазона
	Price       float64        // Списанная сумма
	BookedAt    time.Time      // Момент бронирования
}
