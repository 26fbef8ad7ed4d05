package finance

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/fincommittee/platform/internal/model"
)

func datedEvent(id uint64, y int, m time.Month, budget, revenue float64, footfall int) model.Event {
	d := time.Date(y, m, 15, 0, 0, 0, 0, time.UTC)
	return model.Event{ID: id, Date: &d, Budget: budget, Revenue: revenue, Footfall: footfall}
}

func TestMonthlyTrendsGrouping(t *testing.T) {
	// deliberately out of chronological order
	events := []model.Event{
		datedEvent(3, 2025, time.March, 300, 600, 30),
		datedEvent(1, 2025, time.January, 100, 200, 10),
		datedEvent(4, 2025, time.March, 700, 400, 70),
		datedEvent(2, 2025, time.February, 200, 400, 20),
	}
	ships := []model.Sponsorship{
		{EventID: 1, Amount: 50, Status: model.StatusPaid},
		{EventID: 3, Amount: 80, Status: model.StatusPaid},
		{EventID: 3, Amount: 999, Status: model.StatusNegotiating},
	}

	trends := MonthlyTrends(events, ships)
	if len(trends) != 3 {
		t.Fatalf("got %d buckets, want 3", len(trends))
	}
	for i, want := range []int{1, 2, 3} {
		if trends[i].Year != 2025 || trends[i].Month != want {
			t.Errorf("bucket %d = %d-%02d, want 2025-%02d", i, trends[i].Year, trends[i].Month, want)
		}
	}

	march := trends[2]
	if march.TotalBudget != 1000 || march.TotalRevenue != 1000 || march.EventCount != 2 || march.TotalFootfall != 100 {
		t.Errorf("march rollup wrong: %+v", march)
	}
	if march.TotalSponsorship != 80 {
		t.Errorf("march sponsorship = %v, want 80 (paid only)", march.TotalSponsorship)
	}

	if trends[0].RevenueGrowth != nil || trends[0].EventGrowth != nil {
		t.Error("first bucket must carry no growth figures")
	}
	if trends[1].RevenueGrowth == nil || !almostEqual(*trends[1].RevenueGrowth, 100) {
		t.Errorf("feb revenue growth = %v, want 100", trends[1].RevenueGrowth)
	}
}

func TestMonthlyTrendsOrderIndependence(t *testing.T) {
	a := []model.Event{
		datedEvent(1, 2025, time.January, 100, 200, 0),
		datedEvent(2, 2025, time.February, 100, 300, 0),
	}
	b := []model.Event{a[1], a[0]}

	ta, tb := MonthlyTrends(a, nil), MonthlyTrends(b, nil)
	if len(ta) != len(tb) {
		t.Fatalf("bucket counts differ: %d vs %d", len(ta), len(tb))
	}
	for i := range ta {
		if ta[i].Year != tb[i].Year || ta[i].Month != tb[i].Month || ta[i].TotalRevenue != tb[i].TotalRevenue {
			t.Errorf("bucket %d differs under input reordering: %+v vs %+v", i, ta[i], tb[i])
		}
	}
}

func TestMonthlyTrendsZeroBaseGrowth(t *testing.T) {
	events := []model.Event{
		datedEvent(1, 2025, time.January, 100, 0, 0),
		datedEvent(2, 2025, time.February, 100, 500, 0),
	}
	trends := MonthlyTrends(events, nil)
	if trends[1].RevenueGrowth == nil || *trends[1].RevenueGrowth != 0 {
		t.Errorf("growth over a zero base should be 0, got %v", trends[1].RevenueGrowth)
	}
}

func TestMonthlyTrendsSkipsUndatedEvents(t *testing.T) {
	events := []model.Event{
		datedEvent(1, 2025, time.January, 100, 200, 0),
		{ID: 2, Budget: 999, Revenue: 999},
	}
	trends := MonthlyTrends(events, nil)
	if len(trends) != 1 {
		t.Fatalf("got %d buckets, want 1", len(trends))
	}
	if trends[0].TotalBudget != 100 {
		t.Errorf("undated event leaked into bucket: %+v", trends[0])
	}
}

func TestProjectInsufficientData(t *testing.T) {
	_, err := Project([]MonthTrend{{Year: 2025, Month: 1, TotalRevenue: 100}}, 6)
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("single month: err = %v, want ErrInsufficientData", err)
	}
	_, err = Project(nil, 6)
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("empty history: err = %v, want ErrInsufficientData", err)
	}
}

func TestProjectConstantRate(t *testing.T) {
	g1, e1 := 10.0, 0.0
	trends := []MonthTrend{
		{Year: 2025, Month: 1, TotalRevenue: 1000, EventCount: 2},
		{Year: 2025, Month: 2, TotalRevenue: 1100, EventCount: 2, RevenueGrowth: &g1, EventGrowth: &e1},
	}
	p, err := Project(trends, 3)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if len(p.Months) != 3 {
		t.Fatalf("got %d projected months, want 3", len(p.Months))
	}
	if !almostEqual(p.AvgRevenueGrowth, 10) {
		t.Errorf("AvgRevenueGrowth = %v, want 10", p.AvgRevenueGrowth)
	}
	if p.BaselineYear != 2025 || p.BaselineMonth != 2 {
		t.Errorf("baseline = %d-%d, want 2025-2", p.BaselineYear, p.BaselineMonth)
	}

	// the same rate compounds every step off the baseline
	want := 1100.0
	for i, m := range p.Months {
		want *= 1.10
		if !almostEqual(m.ProjectedRevenue, want) {
			t.Errorf("month %d revenue = %v, want %v", i+1, m.ProjectedRevenue, want)
		}
		if m.GrowthAssumption != p.AvgRevenueGrowth {
			t.Errorf("month %d growth assumption = %v, want %v", i+1, m.GrowthAssumption, p.AvgRevenueGrowth)
		}
		if m.ProjectedEvents != 2 {
			t.Errorf("month %d events = %d, want 2 (flat growth)", i+1, m.ProjectedEvents)
		}
	}
	if !almostEqual(p.TotalProjectedRevenue, 1100*1.1+1100*1.1*1.1+1100*math.Pow(1.1, 3)) {
		t.Errorf("TotalProjectedRevenue = %v", p.TotalProjectedRevenue)
	}
}

func TestProjectTruncatesEventCounts(t *testing.T) {
	g, eg := 0.0, 30.0
	trends := []MonthTrend{
		{Year: 2025, Month: 1, TotalRevenue: 100, EventCount: 3},
		{Year: 2025, Month: 2, TotalRevenue: 100, EventCount: 3, RevenueGrowth: &g, EventGrowth: &eg},
	}
	p, err := Project(trends, 2)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	// 3 * 1.3 = 3.9 -> 3, then 3 * 1.3 again -> 3
	if p.Months[0].ProjectedEvents != 3 || p.Months[1].ProjectedEvents != 3 {
		t.Errorf("event counts = %d, %d, want truncation to 3, 3",
			p.Months[0].ProjectedEvents, p.Months[1].ProjectedEvents)
	}
}
