package buy_shuttlecock

import "time"

// Request модель запроса на покупку воланов
type Request struct {
	UserID        int64 // ID покупателя (плательщик родительского бронирования)
	BookingID     int64 // ID родительского бронирования корта
	ShuttlecockID int64 // ID позиции воланов
	Count         int   // Число туб
}

// Response модель ответа с дочерней записью покупки
type Response struct {
	BookingID     int64     // ID созданной дочерней записи
	ParentID      int64     // ID родительского бронирования
	ShuttlecockID int64     // ID позиции воланов
	Count         int       // Число купленных туб
	Price         float64   // Списанная сумма
	BookedAt      time.Time // Момент покупки
}
