package finance

import (
	"math"
	"testing"

	"github.com/fincommittee/platform/internal/model"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestROIPercent(t *testing.T) {
	tests := []struct {
		name          string
		revenue, cost float64
		want          float64
	}{
		{"zero cost", 1500, 0, 0},
		{"negative cost", 1500, -10, 0},
		{"gain", 1500, 1000, 50},
		{"loss goes negative", 800, 1000, -20},
		{"break even", 1000, 1000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ROIPercent(tt.revenue, tt.cost); !almostEqual(got, tt.want) {
				t.Errorf("ROIPercent(%v, %v) = %v, want %v", tt.revenue, tt.cost, got, tt.want)
			}
		})
	}
}

func TestProfitMargin(t *testing.T) {
	tests := []struct {
		name           string
		revenue, costs float64
		want           float64
	}{
		{"zero revenue", 0, 500, 0},
		{"revenue is the denominator", 2000, 1500, 25},
		{"costs exceed revenue", 1000, 1500, -50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProfitMargin(tt.revenue, tt.costs); !almostEqual(got, tt.want) {
				t.Errorf("ProfitMargin(%v, %v) = %v, want %v", tt.revenue, tt.costs, got, tt.want)
			}
		})
	}
}

func TestBudgetUtilization(t *testing.T) {
	if got := BudgetUtilization(500, 0); got != 0 {
		t.Errorf("zero planned budget: got %v, want 0", got)
	}
	if got := BudgetUtilization(750, 1000); !almostEqual(got, 75) {
		t.Errorf("BudgetUtilization(750, 1000) = %v, want 75", got)
	}
	if got := BudgetUtilization(1200, 1000); !almostEqual(got, 120) {
		t.Errorf("over-utilization: got %v, want 120", got)
	}
}

func TestTotalsAndProfit(t *testing.T) {
	events := []model.Event{
		{Budget: 1000, Revenue: 1500, Footfall: 100},
		{Budget: 2000, Revenue: 1800, Footfall: 250},
	}
	budget := TotalBudget(events)
	revenue := TotalRevenue(events)
	if budget != 3000 {
		t.Errorf("TotalBudget = %v, want 3000", budget)
	}
	if revenue != 3300 {
		t.Errorf("TotalRevenue = %v, want 3300", revenue)
	}
	if profit := revenue - budget; profit != 300 {
		t.Errorf("profit = %v, want 300", profit)
	}
	if roi := ROIPercent(revenue, budget); !almostEqual(roi, 10.0) {
		t.Errorf("ROIPercent = %v, want 10.0", roi)
	}
	if footfall := TotalFootfall(events); footfall != 350 {
		t.Errorf("TotalFootfall = %v, want 350", footfall)
	}
}

func TestTotalsEmptyInput(t *testing.T) {
	if got := TotalBudget(nil); got != 0 {
		t.Errorf("TotalBudget(nil) = %v, want 0", got)
	}
	if got := TotalInvestment(nil); got != 0 {
		t.Errorf("TotalInvestment(nil) = %v, want 0", got)
	}
}

func TestPaidInvestment(t *testing.T) {
	ships := []model.Sponsorship{
		{Amount: 500, Status: model.StatusPaid},
		{Amount: 300, Status: model.StatusNegotiating},
		{Amount: 200, Status: model.StatusPaid},
		{Amount: 900, Status: model.StatusCancelled},
	}
	if got := PaidInvestment(ships); got != 700 {
		t.Errorf("PaidInvestment = %v, want 700", got)
	}
	if got := TotalInvestment(ships); got != 1900 {
		t.Errorf("TotalInvestment = %v, want 1900", got)
	}
}

func TestAnalyzeEvent(t *testing.T) {
	e := model.Event{ID: 7, Name: "Gala", Budget: 1000, Revenue: 1500, Footfall: 300}
	ships := []model.Sponsorship{
		{EventID: 7, Amount: 400, Status: model.StatusPaid},
		{EventID: 7, Amount: 999, Status: model.StatusNegotiating},
		{EventID: 7, Amount: 100, Status: model.StatusPaid},
	}
	f := AnalyzeEvent(e, ships)

	if f.TotalSponsorship != 500 {
		t.Errorf("TotalSponsorship = %v, want 500 (paid only)", f.TotalSponsorship)
	}
	if f.SponsorCount != 2 {
		t.Errorf("SponsorCount = %d, want 2", f.SponsorCount)
	}
	if f.NetProfit != 500 {
		t.Errorf("NetProfit = %v, want 500", f.NetProfit)
	}
	if !almostEqual(f.ROIPercent, 50) {
		t.Errorf("ROIPercent = %v, want 50", f.ROIPercent)
	}
	if !almostEqual(f.BudgetUtilization, 50) {
		t.Errorf("BudgetUtilization = %v, want 50", f.BudgetUtilization)
	}
	if !almostEqual(f.RevenuePerAttendee, 5) {
		t.Errorf("RevenuePerAttendee = %v, want 5", f.RevenuePerAttendee)
	}
}

func TestAnalyzeEventZeroFootfall(t *testing.T) {
	f := AnalyzeEvent(model.Event{Budget: 100, Revenue: 200}, nil)
	if f.RevenuePerAttendee != 0 {
		t.Errorf("RevenuePerAttendee with zero footfall = %v, want 0", f.RevenuePerAttendee)
	}
}

func TestSponsorROI(t *testing.T) {
	ships := []model.Sponsorship{
		{Amount: 1000, ROI: 20, Status: model.StatusPaid},
		{Amount: 500, ROI: 0, Status: model.StatusPaid},
		{Amount: 9999, ROI: 100, Status: model.StatusConfirmed},
	}
	m := SponsorROI(ships)

	if m.TotalInvestment != 1500 {
		t.Errorf("TotalInvestment = %v, want 1500", m.TotalInvestment)
	}
	// 1000*1.2 + 500*1.0
	if !almostEqual(m.TotalRevenue, 1700) {
		t.Errorf("TotalRevenue = %v, want 1700", m.TotalRevenue)
	}
	if m.SponsorshipCount != 2 {
		t.Errorf("SponsorshipCount = %d, want 2", m.SponsorshipCount)
	}
	if !almostEqual(m.NetProfit, 200) {
		t.Errorf("NetProfit = %v, want 200", m.NetProfit)
	}
	want := ROIPercent(1700, 1500)
	if !almostEqual(m.ROIPercent, want) {
		t.Errorf("ROIPercent = %v, want %v", m.ROIPercent, want)
	}
}

func TestSponsorROIEmpty(t *testing.T) {
	m := SponsorROI(nil)
	if m.TotalInvestment != 0 || m.ROIPercent != 0 || m.SponsorshipCount != 0 {
		t.Errorf("empty input should degrade to zeros, got %+v", m)
	}
}
