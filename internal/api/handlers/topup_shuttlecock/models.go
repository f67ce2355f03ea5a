package topup_shuttlecock

import "github.com/Nackalalalong/KK-BackEnd/internal/service/courts/models"

// TopUpRequest HTTP request model
type TopUpRequest struct {
	Count int `json:"count"` // Число добавляемых туб
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *TopUpRequest) ToServiceRequest(userID int64) *models.TopUpShuttlecockRequest {
	return &models.TopUpShuttlecockRequest{
		UserID: userID,
		Count:  r.Count,
	}
}
