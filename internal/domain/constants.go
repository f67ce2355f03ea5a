package domain

// Time grid constants
const (
	// UnitsPerDay number of bookable time units in a day (30-minute slots)
	UnitsPerDay = 48

	// DaysPerWeek number of weekdays in the schedule cycle
	DaysPerWeek = 7
)

// Refund policy constants
const (
	// FullRefundMinDays minimum whole days before the occurrence for a full refund
	FullRefundMinDays = 3

	// PartialRefundFraction fraction of the price refunded inside the partial window
	PartialRefundFraction = 0.5
)

// Business validation constants
const (
	MinCourtCount = 1
	MaxCourtCount = 100
	MaxNameLength = 30
	MaxDescLength = 200
)
