package repository

import (
	"context"
	"database/sql"
	"time"
)

// AnalyticsRepo holds the GROUP BY rollup queries backing the analytics
// endpoints. Each method returns pre-grouped aggregates; ratio and growth
// math happens in the finance package, not in SQL.
type AnalyticsRepo struct{ DB *sql.DB }

func NewAnalyticsRepo(db *sql.DB) *AnalyticsRepo { return &AnalyticsRepo{DB: db} }

// MonthRollup is one (year, month) bucket of event aggregates.
type MonthRollup struct {
	Year       int
	Month      int
	Budget     float64
	Revenue    float64
	Footfall   int
	EventCount int
}

// SponsorPerformance is one sponsor's aggregate across its sponsorships.
type SponsorPerformance struct {
	SponsorID        uint64
	Name             string
	Industry         string
	ContactPerson    string
	Email            string
	TotalInvestment  float64
	SponsorshipCount int
	AverageROI       float64
	MinROI           float64
	MaxROI           float64
}

// IndustryBucket aggregates sponsors by industry string.
type IndustryBucket struct {
	Industry        string
	SponsorCount    int
	TotalInvestment float64
}

// EventSponsorship pairs an event with the sum of money committed to it.
type EventSponsorship struct {
	EventID        uint64
	Name           string
	Date           *time.Time
	Budget         float64
	Revenue        float64
	SponsorshipSum float64
}

// StatusBucket aggregates sponsorships by status.
type StatusBucket struct {
	Status      string
	Count       int
	TotalAmount float64
}

// MonthlyEventRollup groups events dated in [from, to) by calendar month,
// ascending. NULL-dated events are excluded by the WHERE clause.
func (r *AnalyticsRepo) MonthlyEventRollup(ctx context.Context, from, to time.Time) ([]MonthRollup, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT YEAR(date), MONTH(date),
       COALESCE(SUM(budget),0), COALESCE(SUM(revenue),0),
       COALESCE(SUM(footfall),0), COUNT(id)
FROM events
WHERE date >= ? AND date < ?
GROUP BY YEAR(date), MONTH(date)
ORDER BY YEAR(date), MONTH(date)`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MonthRollup
	for rows.Next() {
		var m MonthRollup
		if err := rows.Scan(&m.Year, &m.Month, &m.Budget, &m.Revenue, &m.Footfall, &m.EventCount); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// SponsorPerformance ranks sponsors by total committed amount, descending.
// An empty status aggregates every sponsorship; passing a status narrows
// the rollup (the reporting layer passes the paid status).
func (r *AnalyticsRepo) SponsorPerformance(ctx context.Context, status string, limit int) ([]SponsorPerformance, error) {
	q := `
SELECT s.id, s.name, COALESCE(s.industry,''), COALESCE(s.contact_person,''), COALESCE(s.email,''),
       COALESCE(SUM(sp.amount),0), COUNT(sp.id),
       COALESCE(AVG(sp.roi),0), COALESCE(MIN(sp.roi),0), COALESCE(MAX(sp.roi),0)
FROM sponsors s
JOIN sponsorships sp ON s.id = sp.sponsor_id`
	args := []interface{}{}
	if status != "" {
		q += " WHERE sp.status = ?"
		args = append(args, status)
	}
	q += `
GROUP BY s.id, s.name, s.industry, s.contact_person, s.email
ORDER BY SUM(sp.amount) DESC
LIMIT ?`
	args = append(args, limit)

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SponsorPerformance
	for rows.Next() {
		var p SponsorPerformance
		if err := rows.Scan(&p.SponsorID, &p.Name, &p.Industry, &p.ContactPerson, &p.Email,
			&p.TotalInvestment, &p.SponsorshipCount, &p.AverageROI, &p.MinROI, &p.MaxROI); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// EventSponsorshipTotals returns recent events with the sum of money
// committed to each, newest first.
func (r *AnalyticsRepo) EventSponsorshipTotals(ctx context.Context, limit int) ([]EventSponsorship, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT e.id, e.name, e.date, COALESCE(e.budget,0), COALESCE(e.revenue,0), COALESCE(SUM(sp.amount),0)
FROM events e
LEFT JOIN sponsorships sp ON e.id = sp.event_id
GROUP BY e.id, e.name, e.date, e.budget, e.revenue
ORDER BY e.date DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EventSponsorship
	for rows.Next() {
		var es EventSponsorship
		var date sql.NullTime
		if err := rows.Scan(&es.EventID, &es.Name, &date, &es.Budget, &es.Revenue, &es.SponsorshipSum); err != nil {
			return nil, err
		}
		if date.Valid {
			t := date.Time
			es.Date = &t
		}
		out = append(out, es)
	}
	return out, rows.Err()
}

// IndustryBreakdown groups sponsors that hold sponsorships by industry,
// most populous first. Sponsors without an industry surface with an empty
// string; the finance layer buckets those under "Unknown".
func (r *AnalyticsRepo) IndustryBreakdown(ctx context.Context) ([]IndustryBucket, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT COALESCE(s.industry,''), COUNT(DISTINCT s.id), COALESCE(SUM(sp.amount),0)
FROM sponsors s
JOIN sponsorships sp ON s.id = sp.sponsor_id
GROUP BY s.industry
ORDER BY COUNT(DISTINCT s.id) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []IndustryBucket
	for rows.Next() {
		var b IndustryBucket
		if err := rows.Scan(&b.Industry, &b.SponsorCount, &b.TotalInvestment); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// StatusBreakdown groups sponsorships by status.
func (r *AnalyticsRepo) StatusBreakdown(ctx context.Context) ([]StatusBucket, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT status, COUNT(id), COALESCE(SUM(amount),0)
FROM sponsorships
GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StatusBucket
	for rows.Next() {
		var b StatusBucket
		if err := rows.Scan(&b.Status, &b.Count, &b.TotalAmount); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
