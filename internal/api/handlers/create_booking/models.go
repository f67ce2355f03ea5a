package create_booking

import (
	"time"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
	bookCourt "github.com/Nackalalalong/KK-BackEnd/internal/usecase/book_court"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID   int64 `json:"courtId"`
	DayOfWeek int   `json:"dayOfWeek"` // 0 = понедельник
	StartUnit int   `json:"startUnit"` // Первый получасовой юнит (включительно)
	EndUnit   int   `json:"endUnit"`   // Последний получасовой юнит (включительно)
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	CourtID     int64   `json:"courtId"`
	CourtNumber int     `json:"courtNumber"`
	DayOfWeek   int     `json:"dayOfWeek"`
	StartUnit   int     `json:"startUnit"`
	EndUnit     int     `json:"endUnit"`
	Price       float64 `json:"price"`
	BookedAt    string  `json:"bookedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *bookCourt.Request {
	return &bookCourt.Request{
		UserID:    userID,
		CourtID:   r.CourtID,
		Weekday:   domain.Weekday(r.DayOfWeek),
		StartUnit: r.StartUnit,
		EndUnit:   r.EndUnit,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookCourt.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.BookingID,
		CourtID:     resp.CourtID,
		CourtNumber: resp.CourtNumber,
		DayOfWeek:   int(resp.Weekday),
		StartUnit:   resp.StartUnit,
		EndUnit:     resp.EndUnit,
		Price:       resp.Price,
		BookedAt:    resp.BookedAt.Format(time.RFC3339),
	}
}
