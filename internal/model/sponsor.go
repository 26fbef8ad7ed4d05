package model

import "time"

// Sponsor mirrors the `sponsors` table. A sponsor is an external company
// or organisation that funds events through sponsorships.
//
// Industry is optional; an empty string means the industry is unknown and
// aggregation buckets it under the literal "Unknown".
//
// TotalInvested is a cached running total maintained by the sponsorship
// write path. It is derived data and is not recomputed transactionally, so
// reports prefer summing sponsorship amounts directly.
type Sponsor struct {
	ID            uint64    `json:"id"`
	Name          string    `json:"name"`
	Industry      string    `json:"industry,omitempty"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	TotalInvested float64   `json:"total_invested"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
