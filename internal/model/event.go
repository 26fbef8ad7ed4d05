package model

import "time"

// Event mirrors the `events` table. Budget and Revenue are stored as plain
// decimals; Footfall is the attendance count used as the denominator for
// revenue-per-attendee.
//
// Date is nullable in the schema. Events without a date are excluded from
// time-windowed queries, so monthly grouping never sees a nil date.
type Event struct {
	ID        uint64     `json:"id"`
	Name      string     `json:"name"`
	Date      *time.Time `json:"date,omitempty"`
	Budget    float64    `json:"budget"`
	Footfall  int        `json:"footfall"`
	Revenue   float64    `json:"revenue"`
	CreatedAt time.Time  `json:"created_at"`
}
