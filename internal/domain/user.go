package domain

// User the credit balance side of an account. Identity lives in an external
// auth system; this service only keeps the balance keyed by the external id.
type User struct {
	ID     int64
	Credit float64
}
