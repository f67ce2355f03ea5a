package domain

import "time"

// BookingKind identifies what a ledger entry reserves
type BookingKind string

const (
	BookingCourt       BookingKind = "court"
	BookingRacket      BookingKind = "racket"
	BookingShuttlecock BookingKind = "shuttlecock"
)

// Booking a ledger entry for an issued reservation.
//
// Court bookings own a (instance, weekday, [start, end]) slice of a court
// schedule. Racket and shuttlecock bookings are children of a court booking
// (ParentID set) and are cancelled together with it. Shuttlecock entries
// carry Count instead of occupying a schedule.
type Booking struct {
	ID      int64
	UserID  int64
	CourtID int64
	Kind    BookingKind
	// RentalID references the racket or shuttlecock for child entries
	RentalID *int64
	ParentID *int64
	// CourtNumber allocated instance, meaningful for court bookings only
	CourtNumber int
	Weekday     Weekday
	StartUnit   int
	EndUnit     int
	// Count number of tubes for shuttlecock entries, 0 otherwise
	Count    int
	Price    float64
	BookedAt time.Time
}

// IsChild returns true for racket and shuttlecock entries attached to a
// parent court booking
func (b *Booking) IsChild() bool {
	return b.ParentID != nil
}

// RefundDistance returns the number of whole days between the cancellation
// moment and the next occurrence of the reserved weekday (same day counts
// as 0). The refund tier is keyed on this distance, so cancelling later
// shrinks the refund even for a booking made far in advance.
func (b *Booking) RefundDistance(now time.Time) int {
	return WeekdayFromTime(now).DaysUntil(b.Weekday)
}

// EffectiveDate returns the midnight of the reserved weekday's next
// occurrence after the booking moment. Cancellation is allowed until this
// instant; past it the reservation is considered consumed.
func (b *Booking) EffectiveDate() time.Time {
	dist := WeekdayFromTime(b.BookedAt).DaysUntil(b.Weekday)
	return Midnight(b.BookedAt).AddDate(0, 0, dist)
}

// RefundAmount computes the refund for cancelling a reservation priced at
// price, dist whole days before its occurrence: full at FullRefundMinDays or
// more, half below that. Children of a court booking are refunded at the
// tier computed from the parent's dist.
func RefundAmount(price float64, dist int) float64 {
	if dist >= FullRefundMinDays {
		return price
	}
	return price * PartialRefundFraction
}
