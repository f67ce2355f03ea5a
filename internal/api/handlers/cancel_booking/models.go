package cancel_booking

import cancelBooking "github.com/Nackalalalong/KK-BackEnd/internal/usecase/cancel_booking"

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	BookingID int64   `json:"bookingId"`
	Refund    float64 `json:"refund"`
	Cancelled int     `json:"cancelled"` // Число удаленных записей журнала
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		BookingID: resp.BookingID,
		Refund:    resp.Refund,
		Cancelled: resp.Cancelled,
	}
}
