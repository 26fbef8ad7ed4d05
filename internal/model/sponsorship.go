package model

import "time"

// Sponsorship is the join record linking a sponsor's financial commitment
// to a specific event. At most one sponsorship exists per (sponsor, event)
// pair; the creation path enforces this.
//
// ROI is the percentage return recorded for the sponsorship, used by the
// reporting layer to derive sponsor revenue as amount * (1 + roi/100).
type Sponsorship struct {
	ID          uint64    `json:"id"`
	SponsorID   uint64    `json:"sponsor_id"`
	EventID     uint64    `json:"event_id"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	ROI         float64   `json:"roi"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	SponsorName string    `json:"sponsor_name,omitempty"` // joined from sponsors, not a column
	EventName   string    `json:"event_name,omitempty"`   // joined from events, not a column
}

// Sponsorship statuses. StatusPaid is the terminal "money arrived" state
// that financial aggregation filters on. Earlier iterations of the platform
// also used a "completed" filter value; that maps to StatusPaid here.
const (
	StatusNegotiating = "negotiating"
	StatusConfirmed   = "confirmed"
	StatusPaid        = "paid"
	StatusCancelled   = "cancelled"
)

// ValidStatus reports whether the given string is a known sponsorship status.
func ValidStatus(status string) bool {
	switch status {
	case StatusNegotiating, StatusConfirmed, StatusPaid, StatusCancelled:
		return true
	}
	return false
}
