// Package finance holds the aggregation engine: pure reductions over entity
// collections that produce totals, ratios, trend series and projections.
// Nothing in here touches the database; callers materialize the collections
// and pass them in.
package finance

import (
	"github.com/fincommittee/platform/internal/model"
)

// ROIPercent is (revenue - cost) / cost * 100. A non-positive cost yields 0;
// callers should read that 0 as "not applicable", not as an actual zero
// return.
func ROIPercent(revenue, cost float64) float64 {
	if cost <= 0 {
		return 0
	}
	return (revenue - cost) / cost * 100
}

// ProfitMargin is (revenue - costs) / revenue * 100. Revenue-relative, the
// opposite denominator from ROI. A non-positive revenue yields 0.
func ProfitMargin(revenue, costs float64) float64 {
	if revenue <= 0 {
		return 0
	}
	return (revenue - costs) / revenue * 100
}

// BudgetUtilization is actual / planned * 100, 0 when nothing was planned.
func BudgetUtilization(actual, planned float64) float64 {
	if planned <= 0 {
		return 0
	}
	return actual / planned * 100
}

// TotalBudget sums event budgets.
func TotalBudget(events []model.Event) float64 {
	var t float64
	for _, e := range events {
		t += e.Budget
	}
	return t
}

// TotalRevenue sums event revenues.
func TotalRevenue(events []model.Event) float64 {
	var t float64
	for _, e := range events {
		t += e.Revenue
	}
	return t
}

// TotalFootfall sums event attendance.
func TotalFootfall(events []model.Event) int {
	var t int
	for _, e := range events {
		t += e.Footfall
	}
	return t
}

// TotalInvestment sums sponsorship amounts across the whole input.
func TotalInvestment(ships []model.Sponsorship) float64 {
	var t float64
	for _, s := range ships {
		t += s.Amount
	}
	return t
}

// PaidInvestment sums amounts of paid sponsorships only.
func PaidInvestment(ships []model.Sponsorship) float64 {
	var t float64
	for _, s := range ships {
		if s.Status == model.StatusPaid {
			t += s.Amount
		}
	}
	return t
}

// EventFinancials is the full financial picture of one event.
type EventFinancials struct {
	EventID            uint64  `json:"event_id"`
	EventName          string  `json:"event_name"`
	TotalBudget        float64 `json:"total_budget"`
	ActualRevenue      float64 `json:"actual_revenue"`
	TotalSponsorship   float64 `json:"total_sponsorship"`
	NetProfit          float64 `json:"net_profit"`
	ProfitMargin       float64 `json:"profit_margin_percentage"`
	BudgetUtilization  float64 `json:"budget_utilization_percentage"`
	ROIPercent         float64 `json:"roi_percentage"`
	SponsorCount       int     `json:"sponsor_count"`
	Footfall           int     `json:"footfall"`
	RevenuePerAttendee float64 `json:"revenue_per_attendee"`
}

// AnalyzeEvent derives the financial summary for one event. ships should be
// the event's sponsorships; only paid ones count toward the sponsorship
// total. Revenue per attendee is 0 when footfall is 0.
func AnalyzeEvent(e model.Event, ships []model.Sponsorship) EventFinancials {
	var sponsorship float64
	var paid int
	for _, s := range ships {
		if s.Status == model.StatusPaid {
			sponsorship += s.Amount
			paid++
		}
	}
	f := EventFinancials{
		EventID:           e.ID,
		EventName:         e.Name,
		TotalBudget:       e.Budget,
		ActualRevenue:     e.Revenue,
		TotalSponsorship:  sponsorship,
		NetProfit:         e.Revenue - e.Budget,
		ProfitMargin:      ProfitMargin(e.Revenue, e.Budget),
		BudgetUtilization: BudgetUtilization(sponsorship, e.Budget),
		ROIPercent:        ROIPercent(e.Revenue, e.Budget),
		SponsorCount:      paid,
		Footfall:          e.Footfall,
	}
	if e.Footfall > 0 {
		f.RevenuePerAttendee = e.Revenue / float64(e.Footfall)
	}
	return f
}

// SponsorROIMetrics summarizes a sponsor's return across its paid
// sponsorships.
type SponsorROIMetrics struct {
	TotalInvestment  float64 `json:"total_investment"`
	TotalRevenue     float64 `json:"total_revenue"`
	ROIPercent       float64 `json:"roi_percentage"`
	NetProfit        float64 `json:"net_profit"`
	SponsorshipCount int     `json:"sponsorship_count"`
}

// SponsorROI folds a sponsor's sponsorships into investment/revenue/ROI.
// Only paid sponsorships participate. Per-sponsorship revenue is derived
// from the recorded ROI figure: amount * (1 + roi/100).
func SponsorROI(ships []model.Sponsorship) SponsorROIMetrics {
	var m SponsorROIMetrics
	for _, s := range ships {
		if s.Status != model.StatusPaid {
			continue
		}
		m.TotalInvestment += s.Amount
		m.TotalRevenue += s.Amount * (1 + s.ROI/100)
		m.SponsorshipCount++
	}
	m.ROIPercent = ROIPercent(m.TotalRevenue, m.TotalInvestment)
	m.NetProfit = m.TotalRevenue - m.TotalInvestment
	return m
}
