package domain

import "time"

// ResourceKind identifies which kind of resource a schedule belongs to
type ResourceKind string

const (
	KindCourt  ResourceKind = "court"
	KindRacket ResourceKind = "racket"
)

// Schedule occupancy of one (resource, instance, weekday) triple.
// Status is a bitmask over UnitsPerDay time units: bit i set means unit i is
// reserved for the current occurrence of Weekday. LastUpdate is refreshed on
// every access; Rollover clears the mask once the represented day has passed.
type Schedule struct {
	ID           int64
	ResourceKind ResourceKind
	ResourceID   int64
	// InstanceNumber sub-resource index within the resource, 0-based.
	// Always 0 for rackets.
	InstanceNumber int
	Weekday        Weekday
	Status         uint64
	LastUpdate     time.Time
}

// ValidUnitRange reports whether [start, end] is a well-formed inclusive
// range of time units
func ValidUnitRange(start, end int) bool {
	return start >= 0 && start <= end && end < UnitsPerDay
}

// unitMask bitmask with all bits of the inclusive range [start, end] set
func unitMask(start, end int) uint64 {
	width := uint(end - start + 1)
	return ((uint64(1) << width) - 1) << uint(start)
}

// Rollover clears the bitmask if it belongs to a previous occurrence of the
// schedule's weekday, and refreshes LastUpdate unconditionally.
//
// The cutoff is the most recent midnight of the schedule's weekday: any state
// written before it described last week's occurrence and is stale. Returns
// true if the mask was cleared.
func (s *Schedule) Rollover(now time.Time) bool {
	dist := s.Weekday.DaysUntil(WeekdayFromTime(now))
	cutoff := Midnight(now).AddDate(0, 0, -dist)

	cleared := false
	if s.LastUpdate.Before(cutoff) && s.Status != 0 {
		s.Status = 0
		cleared = true
	}
	s.LastUpdate = now
	return cleared
}

// CheckCollision reports whether any unit in [start, end] is reserved.
// The caller must run Rollover first and validate the range.
func (s *Schedule) CheckCollision(start, end int) bool {
	return s.Status&unitMask(start, end) != 0
}

// Reserve marks all units in [start, end] reserved.
// Fails without mutating if any unit is already taken.
func (s *Schedule) Reserve(start, end int) bool {
	mask := unitMask(start, end)
	if s.Status&mask != 0 {
		return false
	}
	s.Status |= mask
	return true
}

// Release clears all units in [start, end] unconditionally.
// The caller must hold a reservation for exactly this range; releasing a
// range that was never reserved is a caller bug, but clearing (rather than
// toggling) keeps an accidental double release from corrupting the mask.
func (s *Schedule) Release(start, end int) {
	s.Status &^= unitMask(start, end)
}
