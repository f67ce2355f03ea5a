package book_racket

import (
	"time"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
)

// Request модель запроса на аренду ракетки
type Request struct {
	UserID    int64 // ID арендатора (плательщик родительского бронирования)
	BookingID int64 // ID родительского бронирования корта
	RacketID  int64 // ID ракетки
}

// Response модель ответа с дочерней записью аренды
type Response struct {
	BookingID int64          // ID созданной дочерней записи
	ParentID  int64          // ID родительского бронирования
	RacketID  int64          // ID ракетки
	Weekday   domain.Weekday // День недели (совпадает с родителем)
	StartUnit int            // Начало диапазона (совпадает с родителем)
	EndUnit   int            // Конец диапазона (совпадает с родителем)
	Price     float64        // Списанная сумма
	BookedAt  time.Time      // Момент аренды
}
