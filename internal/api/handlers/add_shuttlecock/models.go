package add_shuttlecock

import "github.com/Nackalalalong/KK-BackEnd/internal/service/courts/models"

// AddShuttlecockRequest HTTP request model
type AddShuttlecockRequest struct {
	Name         string  `json:"name"`
	CountPerUnit int     `json:"countPerUnit"` // Воланов в тубе
	Count        int     `json:"count"`        // Начальный остаток туб
	Price        float64 `json:"price"`        // Цена за тубу
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddShuttlecockRequest) ToServiceRequest(userID int64) *models.AddShuttlecockRequest {
	return &models.AddShuttlecockRequest{
		UserID:       userID,
		Name:         r.Name,
		CountPerUnit: r.CountPerUnit,
		Count:        r.Count,
		Price:        r.Price,
	}
}
