// Package queue defines message payloads exchanged over the message broker.
package queue

// SponsorshipPaidEvent is published when a sponsorship transitions to the
// paid status. It carries enough context for downstream consumers to log or
// feed analytics without querying the primary database.
type SponsorshipPaidEvent struct {
	SponsorshipID uint64  `json:"sponsorship_id"`
	SponsorID     uint64  `json:"sponsor_id"`
	SponsorName   string  `json:"sponsor_name"`
	EventID       uint64  `json:"event_id"`
	EventName     string  `json:"event_name"`
	Amount        float64 `json:"amount"`
	ROI           float64 `json:"roi"`
	PaidBy        uint64  `json:"paid_by"`
	PaidAt        string  `json:"paid_at"`
}
