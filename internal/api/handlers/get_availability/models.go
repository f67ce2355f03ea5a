package get_availability

import getAvailability "github.com/Nackalalalong/KK-BackEnd/internal/usecase/get_availability"

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CourtID    int64              `json:"courtId"`
	DayOfWeek  int                `json:"dayOfWeek"`
	CourtCount int                `json:"courtCount"`
	Units      []UnitAvailability `json:"units"`
	Free       *bool              `json:"free,omitempty"` // Вердикт для запрошенного диапазона
}

// UnitAvailability число свободных кортов в одном получасовом юните
type UnitAvailability struct {
	Unit int `json:"unit"`
	Free int `json:"free"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	units := make([]UnitAvailability, len(resp.Units))
	for i, u := range resp.Units {
		units[i] = UnitAvailability{Unit: u.Unit, Free: u.Free}
	}

	return &AvailabilityResponse{
		CourtID:    resp.CourtID,
		DayOfWeek:  int(resp.Weekday),
		CourtCount: resp.CourtCount,
		Units:      units,
		Free:       resp.Free,
	}
}
