package buy_shuttlecock

import (
	"time"

	buyShuttlecock "github.com/Nackalalalong/KK-BackEnd/internal/usecase/buy_shuttlecock"
)

// BuyShuttlecockRequest HTTP request model
type BuyShuttlecockRequest struct {
	ShuttlecockID int64 `json:"shuttlecockId"`
	Count         int   `json:"count"` // Число туб
}

// PurchaseResponse HTTP response model
type PurchaseResponse struct {
	ID            int64   `json:"id"`
	ParentID      int64   `json:"parentId"`
	ShuttlecockID int64   `json:"shuttlecockId"`
	Count         int     `json:"count"`
	Price         float64 `json:"price"`
	BookedAt      string  `json:"bookedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *buyShuttlecock.Response) *PurchaseResponse {
	return &PurchaseResponse{
		ID:            resp.BookingID,
		ParentID:      resp.ParentID,
		ShuttlecockID: resp.ShuttlecockID,
		Count:         resp.Count,
		Price:         resp.Price,
		BookedAt:      resp.BookedAt.Format(time.RFC3339),
	}
}
