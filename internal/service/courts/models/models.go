package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
)

var (
	// ErrValidation возвращается при нарушении бизнес-ограничений
	ErrValidation = errors.New("validation error")
)

// Request модели

// CreateCourtRequest запрос на создание площадки
type CreateCourtRequest struct {
	OwnerID    int64   `json:"ownerId"`
	Name       string  `json:"name"`
	Desc       *string `json:"desc,omitempty"`
	UnitPrice  float64 `json:"unitPrice"` // Цена за час
	CourtCount int     `json:"courtCount"`
	OpenUnit   int     `json:"openUnit"`  // Первый доступный юнит
	CloseUnit  int     `json:"closeUnit"` // Юнит за последним доступным
	Lat        float64 `json:"lat"`
	Long       float64 `json:"long"`
}

// Validate проверяет бизнес-ограничения запроса
func (r *CreateCourtRequest) Validate() error {
	if r.Name == "" || len(r.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be 1..%d characters", ErrValidation, domain.MaxNameLength)
	}
	if r.Desc != nil && len(*r.Desc) > domain.MaxDescLength {
		return fmt.Errorf("%w: desc must be at most %d characters", ErrValidation, domain.MaxDescLength)
	}
	if r.CourtCount < domain.MinCourtCount || r.CourtCount > domain.MaxCourtCount {
		return fmt.Errorf("%w: court count must be %d..%d", ErrValidation, domain.MinCourtCount, domain.MaxCourtCount)
	}
	if r.OpenUnit < 0 || r.CloseUnit > domain.UnitsPerDay || r.OpenUnit >= r.CloseUnit {
		return fmt.Errorf("%w: open window must satisfy 0 <= open < close <= %d", ErrValidation, domain.UnitsPerDay)
	}
	if r.UnitPrice < 0 {
		return fmt.Errorf("%w: unit price cannot be negative", ErrValidation)
	}
	return nil
}

// ToDomain конвертирует запрос в domain.Court
func (r *CreateCourtRequest) ToDomain() *domain.Court {
	return &domain.Court{
		OwnerID:    r.OwnerID,
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

// AddRacketRequest запрос на добавление ракетки в каталог корта
type AddRacketRequest struct {
	UserID    int64   `json:"userId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"` // Цена аренды за час
}

// Validate проверяет бизнес-ограничения запроса
func (r *AddRacketRequest) Validate() error {
	if r.Name == "" || len(r.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be 1..%d characters", ErrValidation, domain.MaxNameLength)
	}
	if r.UnitPrice < 0 {
		return fmt.Errorf("%w: unit price cannot be negative", ErrValidation)
	}
	return nil
}

// AddShuttlecockRequest запрос на добавление позиции воланов
type AddShuttlecockRequest struct {
	UserID       int64   `json:"userId"`
	Name         string  `json:"name"`
	CountPerUnit int     `json:"countPerUnit"` // Воланов в тубе
	Count        int     `json:"count"`        // Начальный остаток туб
	Price        float64 `json:"price"`        // Цена за тубу
}

// Validate проверяет бизнес-ограничения запроса
func (r *AddShuttlecockRequest) Validate() error {
	if r.Name == "" || len(r.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be 1..%d characters", ErrValidation, domain.MaxNameLength)
	}
	if r.CountPerUnit < 1 {
		return fmt.Errorf("%w: count per unit must be at least 1", ErrValidation)
	}
	if r.Count < 0 {
		return fmt.Errorf("%w: count cannot be negative", ErrValidation)
	}
	if r.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	return nil
}

// TopUpShuttlecockRequest запрос на пополнение склада воланов
type TopUpShuttlecockRequest struct {
	UserID int64 `json:"userId"`
	Count  int   `json:"count"`
}

// Validate проверяет бизнес-ограничения запроса
func (r *TopUpShuttlecockRequest) Validate() error {
	if r.Count < 1 {
		return fmt.Errorf("%w: count must be at least 1", ErrValidation)
	}
	return nil
}

// Response модели

// CourtResponse ответ с данными площадки
type CourtResponse struct {
	ID         int64     `json:"id"`
	OwnerID    int64     `json:"ownerId"`
	Name       string    `json:"name"`
	Desc       *string   `json:"desc,omitempty"`
	UnitPrice  float64   `json:"unitPrice"`
	CourtCount int       `json:"courtCount"`
	OpenUnit   int       `json:"openUnit"`
	CloseUnit  int       `json:"closeUnit"`
	Lat        float64   `json:"lat"`
	Long       float64   `json:"long"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RacketResponse ответ с данными ракетки
type RacketResponse struct {
	ID        int64     `json:"id"`
	CourtID   int64     `json:"courtId"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unitPrice"`
	CreatedAt time.Time `json:"createdAt"`
}

// ShuttlecockResponse ответ с данными позиции воланов
type ShuttlecockResponse struct {
	ID           int64     `json:"id"`
	CourtID      int64     `json:"courtId"`
	Name         string    `json:"name"`
	CountPerUnit int       `json:"countPerUnit"`
	Count        int       `json:"count"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CourtDetailsResponse площадка вместе с каталогами аренды
type CourtDetailsResponse struct {
	Court        *CourtResponse         `json:"court"`
	Rackets      []*RacketResponse      `json:"rackets"`
	Shuttlecocks []*ShuttlecockResponse `json:"shuttlecocks"`
}

// FromDomainCourt конвертирует domain.Court в response
func FromDomainCourt(c *domain.Court) *CourtResponse {
	return &CourtResponse{
		ID:         c.ID,
		OwnerID:    c.OwnerID,
		Name:       c.Name,
		Desc:       c.Desc,
		UnitPrice:  c.UnitPrice,
		CourtCount: c.CourtCount,
		OpenUnit:   c.OpenUnit,
		CloseUnit:  c.CloseUnit,
		Lat:        c.Lat,
		Long:       c.Long,
		CreatedAt:  c.CreatedAt,
	}
}

// FromDomainRacket конвертирует domain.Racket в response
func FromDomainRacket(r *domain.Racket) *RacketResponse {
	return &RacketResponse{
		ID:        r.ID,
		CourtID:   r.CourtID,
		Name:      r.Name,
		UnitPrice: r.UnitPrice,
		CreatedAt: r.CreatedAt,
	}
}

// FromDomainShuttlecock конвертирует domain.Shuttlecock в response
func FromDomainShuttlecock(s *domain.Shuttlecock) *ShuttlecockResponse {
	return &ShuttlecockResponse{
		ID:           s.ID,
		CourtID:      s.CourtID,
		Name:         s.Name,
		CountPerUnit: s.CountPerUnit,
		Count:        s.Count,
		Price:        s.Price,
		CreatedAt:    s.CreatedAt,
	}
}

// FromDomainRacketList конвертирует список ракеток
func FromDomainRacketList(rackets []*domain.Racket) []*RacketResponse {
	result := make([]*RacketResponse, 0, len(rackets))
	for _, r := range rackets {
		result = append(result, FromDomainRacket(r))
	}
	return result
}

// FromDomainShuttlecockList конвертирует список позиций воланов
func FromDomainShuttlecockList(items []*domain.Shuttlecock) []*ShuttlecockResponse {
	result := make([]*ShuttlecockResponse, 0, len(items))
	for _, s := range items {
		result = append(result, FromDomainShuttlecock(s))
	}
	return result
}
