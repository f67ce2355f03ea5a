package cancel_booking

// Request модель запроса на отмену бронирования
type Request struct {
	RequesterID int64 // ID пользователя, запросившего отмену
	BookingID   int64 // ID отменяемого бронирования
}

// Response модель ответа с суммой возврата
type Response struct {
	BookingID int64   // ID отмененного бронирования
	Refund    float64 // Сумма, возвращенная плательщику (включая дочерние записи)
	Cancelled int     // Число удаленных записей журнала (1 + дочерние)
}
