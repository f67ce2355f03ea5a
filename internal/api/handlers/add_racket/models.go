package add_racket

import "github.com/Nackalalalong/KK-BackEnd/internal/service/courts/models"

// AddRacketRequest HTTP request model
type AddRacketRequest struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"` // Цена аренды за час
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddRacketRequest) ToServiceRequest(userID int64) *models.AddRacketRequest {
	return &models.AddRacketRequest{
		UserID:    userID,
		Name:      r.Name,
		UnitPrice: r.UnitPrice,
	}
}
