package get_booking

import "github.com/Nackalalalong/KK-BackEnd/internal/service/bookings/models"

// BookingDetailsResponse запись журнала вместе с дочерними записями
type BookingDetailsResponse struct {
	Booking  *models.BookingResponse   `json:"booking"`
	Children []*models.BookingResponse `json:"children,omitempty"`
}
