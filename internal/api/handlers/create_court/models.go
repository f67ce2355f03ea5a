package create_court

import "github.com/Nackalalalong/KK-BackEnd/internal/service/courts/models"

// CreateCourtRequest HTTP request model
type CreateCourtRequest struct {
	Name       string  `json:"name"`
	Desc       *string `json:"desc,omitempty"`
	UnitPrice  float64 `json:"unitPrice"` // Цена за час
	CourtCount int     `json:"courtCount"`
	OpenUnit   int     `json:"openUnit"`
	CloseUnit  int     `json:"closeUnit"`
	Lat        float64 `json:"lat"`
	Long       float64 `json:"long"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCourtRequest) ToServiceRequest(ownerID int64) *models.CreateCourtRequest {
	return &models.CreateCourtRequest{
		OwnerID:    ownerID,
		Name:       r.Name,
		Desc:       r.Desc,
		UnitPrice:  r.UnitPrice,
		CourtCount: r.CourtCount,
		OpenUnit:   r.OpenUnit,
		CloseUnit:  r.CloseUnit,
		Lat:        r.Lat,
		Long:       r.Long,
	}
}
