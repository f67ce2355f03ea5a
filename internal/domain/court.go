package domain

import "time"

// Court a venue with CourtCount interchangeable physical courts.
// UnitPrice is the price per hour; bookings are charged per 30-minute unit,
// see PriceForRange.
type Court struct {
	ID         int64
	OwnerID    int64
	Name       string
	Desc       *string
	UnitPrice  float64
	CourtCount int
	// OpenUnit/CloseUnit bookable window as a half-open unit range [open, close)
	OpenUnit  int
	CloseUnit int
	Lat       float64
	Long      float64
	CreatedAt time.Time
}

// InWindow reports whether the inclusive unit range [start, end] lies inside
// the court's bookable window
func (c *Court) InWindow(start, end int) bool {
	return start >= c.OpenUnit && end < c.CloseUnit
}

// PriceForRange computes the price of booking [start, end] inclusive.
// Units are half-hours and UnitPrice is hourly, hence the division by two.
func PriceForRange(unitPrice float64, start, end int) float64 {
	return unitPrice * float64(end-start+1) / 2
}

// Racket a rentable racket belonging to a court venue. Single instance:
// its schedule always uses instance number 0.
type Racket struct {
	ID        int64
	CourtID   int64
	Name      string
	UnitPrice float64
	CreatedAt time.Time
}

// Shuttlecock a consumable sold per tube. Not schedule-based: reserving
// decrements Count, cancellation restores it.
type Shuttlecock struct {
	ID           int64
	CourtID      int64
	Name         string
	CountPerUnit int
	Count        int
	Price        float64
	CreatedAt    time.Time
}
