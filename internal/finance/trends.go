package finance

import (
	"errors"
	"sort"

	"github.com/fincommittee/platform/internal/model"
)

// ErrInsufficientData is returned by Project when the history is too short
// to derive a growth rate.
var ErrInsufficientData = errors.New("insufficient historical data for projections")

// MonthTrend is one calendar-month bucket of the trend series. The growth
// pointers are nil on the first bucket, which has no predecessor to compare
// against.
type MonthTrend struct {
	Year             int      `json:"year"`
	Month            int      `json:"month"`
	TotalBudget      float64  `json:"total_budget"`
	TotalRevenue     float64  `json:"total_revenue"`
	TotalSponsorship float64  `json:"total_sponsorship"`
	TotalFootfall    int      `json:"total_footfall"`
	EventCount       int      `json:"event_count"`
	RevenueGrowth    *float64 `json:"revenue_growth,omitempty"`
	EventGrowth      *float64 `json:"event_growth,omitempty"`
}

// MonthlyTrends buckets events by (year, month) of their date and sums
// budget, revenue, footfall and count per bucket. Paid sponsorship money is
// attributed to the month of the sponsored event. Buckets come back in
// ascending chronological order regardless of input order; events without a
// date are skipped. Growth figures are percentage change against the
// previous bucket, with 0 standing in when the previous base is 0.
func MonthlyTrends(events []model.Event, ships []model.Sponsorship) []MonthTrend {
	paidByEvent := make(map[uint64]float64)
	for _, s := range ships {
		if s.Status == model.StatusPaid {
			paidByEvent[s.EventID] += s.Amount
		}
	}

	type key struct{ year, month int }
	buckets := make(map[key]*MonthTrend)
	for _, e := range events {
		if e.Date == nil {
			continue
		}
		k := key{e.Date.Year(), int(e.Date.Month())}
		b := buckets[k]
		if b == nil {
			b = &MonthTrend{Year: k.year, Month: k.month}
			buckets[k] = b
		}
		b.TotalBudget += e.Budget
		b.TotalRevenue += e.Revenue
		b.TotalFootfall += e.Footfall
		b.TotalSponsorship += paidByEvent[e.ID]
		b.EventCount++
	}

	out := make([]MonthTrend, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})

	for i := 1; i < len(out); i++ {
		prev, curr := out[i-1], &out[i]
		rg := growthRate(curr.TotalRevenue, prev.TotalRevenue)
		eg := growthRate(float64(curr.EventCount), float64(prev.EventCount))
		curr.RevenueGrowth, curr.EventGrowth = &rg, &eg
	}
	return out
}

// growthRate is the percentage change from prev to curr, 0 when prev is not
// a usable base.
func growthRate(curr, prev float64) float64 {
	if prev <= 0 {
		return 0
	}
	return (curr - prev) / prev * 100
}

// ProjectedMonth is one forward step of a projection.
type ProjectedMonth struct {
	Month            int     `json:"month"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	ProjectedEvents  int     `json:"projected_events"`
	GrowthAssumption float64 `json:"growth_assumption"`
}

// Projection is the full forward view derived from a trend series.
type Projection struct {
	BaselineYear          int              `json:"baseline_year"`
	BaselineMonth         int              `json:"baseline_month"`
	AvgRevenueGrowth      float64          `json:"avg_revenue_growth_rate"`
	AvgEventGrowth        float64          `json:"avg_event_growth_rate"`
	Months                []ProjectedMonth `json:"projections"`
	TotalProjectedRevenue float64          `json:"total_projected_revenue"`
	TotalProjectedEvents  int              `json:"total_projected_events"`
}

// Project extends a trend series horizon months forward. A single average
// growth rate, taken over the observed month-over-month rates, compounds
// every projected month; the rate is deliberately not re-estimated per step.
// Fewer than two history points is ErrInsufficientData. Projected event
// counts truncate toward zero.
func Project(trends []MonthTrend, horizon int) (Projection, error) {
	if len(trends) < 2 {
		return Projection{}, ErrInsufficientData
	}

	var revSum, evtSum float64
	for _, t := range trends[1:] {
		if t.RevenueGrowth != nil {
			revSum += *t.RevenueGrowth
		}
		if t.EventGrowth != nil {
			evtSum += *t.EventGrowth
		}
	}
	n := float64(len(trends) - 1)
	avgRev, avgEvt := revSum/n, evtSum/n

	baseline := trends[len(trends)-1]
	p := Projection{
		BaselineYear:     baseline.Year,
		BaselineMonth:    baseline.Month,
		AvgRevenueGrowth: avgRev,
		AvgEventGrowth:   avgEvt,
	}

	revenue := baseline.TotalRevenue
	events := baseline.EventCount
	for m := 1; m <= horizon; m++ {
		revenue = revenue * (1 + avgRev/100)
		events = int(float64(events) * (1 + avgEvt/100))
		p.Months = append(p.Months, ProjectedMonth{
			Month:            m,
			ProjectedRevenue: revenue,
			ProjectedEvents:  events,
			GrowthAssumption: avgRev,
		})
		p.TotalProjectedRevenue += revenue
		p.TotalProjectedEvents += events
	}
	return p, nil
}
