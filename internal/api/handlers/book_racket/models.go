package book_racket

import (
	"time"

	bookRacket "github.com/Nackalalalong/KK-BackEnd/internal/usecase/book_racket"
)

// BookRacketRequest HTTP request model
type BookRacketRequest struct {
	RacketID int64 `json:"racketId"`
}

// RentalResponse HTTP response model
type RentalResponse struct {
	ID        int64   `json:"id"`
	ParentID  int64   `json:"parentId"`
	RacketID  int64   `json:"racketId"`
	DayOfWeek int     `json:"dayOfWeek"`
	StartUnit int     `json:"startUnit"`
	EndUnit   int     `json:"endUnit"`
	Price     float64 `json:"price"`
	BookedAt  string  `json:"bookedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookRacket.Response) *RentalResponse {
	return &RentalResponse{
		ID:        resp.BookingID,
		ParentID:  resp.ParentID,
		RacketID:  resp.RacketID,
		DayOfWeek: int(resp.Weekday),
		StartUnit: resp.StartUnit,
		EndUnit:   resp.EndUnit,
		Price:     resp.Price,
		BookedAt:  resp.BookedAt.Format(time.RFC3339),
	}
}
