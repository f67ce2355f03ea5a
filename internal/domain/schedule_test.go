package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidUnitRange(t *testing.T) {
	assert.True(t, ValidUnitRange(0, 0))
	assert.True(t, ValidUnitRange(0, UnitsPerDay-1))
	assert.True(t, ValidUnitRange(10, 11))

	assert.False(t, ValidUnitRange(-1, 5))
	assert.False(t, ValidUnitRange(5, 4))
	assert.False(t, ValidUnitRange(0, UnitsPerDay))
	assert.False(t, ValidUnitRange(UnitsPerDay, UnitsPerDay))
}

func TestScheduleReserveAndCheckCollision(t *testing.T) {
	s := &Schedule{}

	require.True(t, s.Reserve(10, 12))
	assert.True(t, s.CheckCollision(10, 12))
	assert.True(t, s.CheckCollision(12, 20))
	assert.True(t, s.CheckCollision(0, 10))
	assert.False(t, s.CheckCollision(0, 9))
	assert.False(t, s.CheckCollision(13, UnitsPerDay-1))

	// overlapping reserve must fail without mutating
	before := s.Status
	assert.False(t, s.Reserve(12, 14))
	assert.Equal(t, before, s.Status)

	// adjacent range is free
	assert.True(t, s.Reserve(13, 14))
}

func TestScheduleSingleUnitReservation(t *testing.T) {
	s := &Schedule{}

	require.True(t, s.Reserve(5, 5))
	assert.True(t, s.CheckCollision(5, 5))
	assert.False(t, s.CheckCollision(4, 4))
	assert.False(t, s.CheckCollision(6, 6))
	assert.Equal(t, uint64(1)<<5, s.Status)
}

func TestScheduleFullDayReservation(t *testing.T) {
	s := &Schedule{}

	require.True(t, s.Reserve(0, UnitsPerDay-1))
	assert.False(t, s.Reserve(20, 20))

	s.Release(0, UnitsPerDay-1)
	assert.Equal(t, uint64(0), s.Status)
}

func TestScheduleReleaseIsInverseOfReserve(t *testing.T) {
	s := &Schedule{}
	require.True(t, s.Reserve(2, 4))
	before := s.Status

	require.True(t, s.Reserve(10, 15))
	s.Release(10, 15)

	assert.Equal(t, before, s.Status)
}

func TestScheduleDoubleReleaseDoesNotCorrupt(t *testing.T) {
	s := &Schedule{}
	require.True(t, s.Reserve(2, 4))

	s.Release(10, 15)
	s.Release(10, 15)

	// untouched reservation survives, released range stays clear
	assert.True(t, s.CheckCollision(2, 4))
	assert.False(t, s.CheckCollision(10, 15))
}

func TestScheduleRollover(t *testing.T) {
	// Wednesday afternoon
	now := time.Date(2026, 8, 26, 15, 0, 0, 0, time.UTC)
	require.Equal(t, Wednesday, WeekdayFromTime(now))

	t.Run("stale mask from last week is cleared", func(t *testing.T) {
		s := &Schedule{Weekday: Monday}
		require.True(t, s.Reserve(10, 11))
		s.LastUpdate = time.Date(2026, 8, 23, 18, 0, 0, 0, time.UTC) // previous Sunday

		assert.True(t, s.Rollover(now))
		assert.Equal(t, uint64(0), s.Status)
		assert.Equal(t, now, s.LastUpdate)
	})

	t.Run("mask written this week is kept", func(t *testing.T) {
		s := &Schedule{Weekday: Monday}
		require.True(t, s.Reserve(10, 11))
		s.LastUpdate = time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC) // this Monday

		assert.False(t, s.Rollover(now))
		assert.True(t, s.CheckCollision(10, 11))
		assert.Equal(t, now, s.LastUpdate)
	})

	t.Run("mask clears once the weekday comes around again", func(t *testing.T) {
		s := &Schedule{Weekday: Monday}
		require.True(t, s.Reserve(10, 11))
		s.LastUpdate = time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC) // this Monday

		nextMonday := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
		require.Equal(t, Monday, WeekdayFromTime(nextMonday))

		assert.True(t, s.Rollover(nextMonday))
		assert.Equal(t, uint64(0), s.Status)
	})

	t.Run("same-day booking survives until midnight passes", func(t *testing.T) {
		s := &Schedule{Weekday: Wednesday}
		require.True(t, s.Reserve(30, 33))
		s.LastUpdate = time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC) // this morning

		assert.False(t, s.Rollover(now))
		assert.True(t, s.CheckCollision(30, 33))
	})

	t.Run("empty stale mask does not report a clear", func(t *testing.T) {
		s := &Schedule{Weekday: Monday}
		s.LastUpdate = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

		assert.False(t, s.Rollover(now))
	})
}

func TestWeekdayFromTime(t *testing.T) {
	// 2026-08-24 is a Monday
	for i := 0; i < DaysPerWeek; i++ {
		day := time.Date(2026, 8, 24+i, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, Weekday(i), WeekdayFromTime(day))
	}
}

func TestWeekdayDaysUntil(t *testing.T) {
	assert.Equal(t, 0, Monday.DaysUntil(Monday))
	assert.Equal(t, 2, Monday.DaysUntil(Wednesday))
	assert.Equal(t, 6, Tuesday.DaysUntil(Monday))
	assert.Equal(t, 1, Sunday.DaysUntil(Monday))
}
