package models

import (
	"errors"
	"time"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
)

var (
	// ErrInvalidKind возвращается при некорректном типе записи
	ErrInvalidKind = errors.New("invalid booking kind")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Kind   *string `json:"kind,omitempty"` // Фильтр по типу записи (опционально)
}

// ToDomainBookingKind конвертирует строку в domain.BookingKind
func ToDomainBookingKind(kind string) (domain.BookingKind, error) {
	switch domain.BookingKind(kind) {
	case domain.BookingCourt, domain.BookingRacket, domain.BookingShuttlecock:
		return domain.BookingKind(kind), nil
	default:
		return "", ErrInvalidKind
	}
}

// Response модели

// BookingResponse ответ с данными записи журнала
type BookingResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	CourtID     int64     `json:"courtId"`
	Kind        string    `json:"kind"`
	RentalID    *int64    `json:"rentalId,omitempty"`
	ParentID    *int64    `json:"parentId,omitempty"`
	CourtNumber int       `json:"courtNumber"`
	DayOfWeek   int       `json:"dayOfWeek"` // 0 = понедельник
	StartUnit   int       `json:"startUnit"`
	EndUnit     int       `json:"endUnit"`
	Count       int       `json:"count,omitempty"`
	Price       float64   `json:"price"`
	BookedAt    time.Time `json:"bookedAt"`
}

// BookingListResponse ответ со списком записей
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		CourtID:     b.CourtID,
		Kind:        string(b.Kind),
		RentalID:    b.RentalID,
		ParentID:    b.ParentID,
		CourtNumber: b.CourtNumber,
		DayOfWeek:   int(b.Weekday),
		StartUnit:   b.StartUnit,
		EndUnit:     b.EndUnit,
		Count:       b.Count,
		Price:       b.Price,
		BookedAt:    b.BookedAt,
	}
}

// FromDomainBookingList конвертирует список domain.Booking в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
