package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceForRange(t *testing.T) {
	// two half-hour units at 10/hour
	assert.Equal(t, 10.0, PriceForRange(10, 10, 11))
	// single unit is half the hourly price
	assert.Equal(t, 5.0, PriceForRange(10, 10, 10))
	// full day
	assert.Equal(t, 240.0, PriceForRange(10, 0, UnitsPerDay-1))
}

func TestEffectiveDate(t *testing.T) {
	// booked on Friday for next Monday
	bookedAt := time.Date(2026, 8, 28, 17, 30, 0, 0, time.UTC)
	require.Equal(t, Friday, WeekdayFromTime(bookedAt))

	b := &Booking{Weekday: Monday, BookedAt: bookedAt}
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), b.EffectiveDate())

	// booked for the same weekday: effective date is that same midnight
	sameDay := &Booking{Weekday: Friday, BookedAt: bookedAt}
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), sameDay.EffectiveDate())

	// wrap over the week boundary: booked on Friday for Thursday
	wrap := &Booking{Weekday: Thursday, BookedAt: bookedAt}
	assert.Equal(t, time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), wrap.EffectiveDate())
}

func TestRefundDistance(t *testing.T) {
	bookedAt := time.Date(2026, 8, 28, 17, 30, 0, 0, time.UTC) // Friday
	b := &Booking{Weekday: Monday, BookedAt: bookedAt}

	// the distance shrinks as the cancellation moment approaches the date
	assert.Equal(t, 3, b.RefundDistance(bookedAt))
	assert.Equal(t, 1, b.RefundDistance(bookedAt.AddDate(0, 0, 2))) // Sunday
	assert.Equal(t, 0, b.RefundDistance(bookedAt.AddDate(0, 0, 3))) // Monday
}

func TestRefundAmount(t *testing.T) {
	assert.Equal(t, 100.0, RefundAmount(100, 3))
	assert.Equal(t, 100.0, RefundAmount(100, 6))
	assert.Equal(t, 50.0, RefundAmount(100, 2))
	assert.Equal(t, 50.0, RefundAmount(100, 1))
	assert.Equal(t, 50.0, RefundAmount(100, 0))
}

func TestCourtInWindow(t *testing.T) {
	c := &Court{OpenUnit: 16, CloseUnit: 44}

	assert.True(t, c.InWindow(16, 43))
	assert.True(t, c.InWindow(20, 21))
	assert.False(t, c.InWindow(15, 20))
	assert.False(t, c.InWindow(20, 44))

	allDay := &Court{OpenUnit: 0, CloseUnit: UnitsPerDay}
	assert.True(t, allDay.InWindow(0, UnitsPerDay-1))
}
