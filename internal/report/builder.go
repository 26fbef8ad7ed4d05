package report

import (
	"fmt"
	"time"

	"github.com/fincommittee/platform/internal/config"
	"github.com/fincommittee/platform/internal/finance"
	"github.com/fincommittee/platform/internal/model"
)

const dateLayout = "2006-01-02"

func fmtDate(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

// BuildSponsorReport renders one or more sponsors at the requested depth.
// shipsBySponsor carries each sponsor's sponsorships, only consulted for the
// detailed and roi_analysis kinds.
func BuildSponsorReport(kind string, sponsors []model.Sponsor, shipsBySponsor map[uint64][]model.Sponsorship, now time.Time) Document {
	if !validSponsorKind(kind) {
		return errDoc(fmt.Sprintf("unknown sponsor report format %q", kind))
	}

	rows := make([]Document, 0, len(sponsors))
	for _, sp := range sponsors {
		row := Document{
			"id":             sp.ID,
			"name":           sp.Name,
			"industry":       sp.Industry,
			"contact_person": sp.ContactPerson,
			"email":          sp.Email,
			"phone":          sp.Phone,
			"total_invested": sp.TotalInvested,
			"created_at":     sp.CreatedAt.Format(time.RFC3339),
		}
		if kind == KindDetailed || kind == KindROIAnalysis {
			ships := shipsBySponsor[sp.ID]
			row["sponsorship_count"] = len(ships)
			list := make([]Document, 0, len(ships))
			for _, sh := range ships {
				list = append(list, Document{
					"amount":     sh.Amount,
					"status":     sh.Status,
					"roi":        sh.ROI,
					"event_name": sh.EventName,
					"created_at": sh.CreatedAt.Format(time.RFC3339),
				})
			}
			row["sponsorships"] = list
		}
		if kind == KindROIAnalysis {
			row["roi_metrics"] = finance.SponsorROI(shipsBySponsor[sp.ID])
		}
		rows = append(rows, row)
	}

	return Document{
		"report_type":   "Sponsor Report",
		"format":        kind,
		"generated_at":  now.Format(time.RFC3339),
		"sponsor_count": len(sponsors),
		"sponsors":      rows,
	}
}

// BuildEventReport renders one or more events at the requested depth.
func BuildEventReport(kind string, events []model.Event, shipsByEvent map[uint64][]model.Sponsorship, now time.Time) Document {
	if !validEventKind(kind) {
		return errDoc(fmt.Sprintf("unknown event report format %q", kind))
	}

	rows := make([]Document, 0, len(events))
	for _, e := range events {
		row := Document{
			"id":         e.ID,
			"name":       e.Name,
			"date":       fmtDate(e.Date),
			"budget":     e.Budget,
			"revenue":    e.Revenue,
			"footfall":   e.Footfall,
			"created_at": e.CreatedAt.Format(time.RFC3339),
		}
		if kind == KindDetailed || kind == KindFinancial {
			ships := shipsByEvent[e.ID]
			row["sponsorship_count"] = len(ships)
			row["total_sponsorship"] = finance.TotalInvestment(ships)
			list := make([]Document, 0, len(ships))
			for _, sh := range ships {
				list = append(list, Document{
					"sponsor_name": sh.SponsorName,
					"amount":       sh.Amount,
					"status":       sh.Status,
					"roi":          sh.ROI,
					"created_at":   sh.CreatedAt.Format(time.RFC3339),
				})
			}
			row["sponsorships"] = list
		}
		if kind == KindFinancial {
			row["financial_summary"] = finance.AnalyzeEvent(e, shipsByEvent[e.ID])
		}
		rows = append(rows, row)
	}

	return Document{
		"report_type":  "Event Report",
		"format":       kind,
		"generated_at": now.Format(time.RFC3339),
		"event_count":  len(events),
		"events":       rows,
	}
}

// BuildFinancialSummary renders the trailing-window rollup: headline totals,
// monthly trends, top sponsors and a forward projection. events and ships
// must already be filtered to the window; sponsors is the full roster used
// to resolve names in the ranking.
func BuildFinancialSummary(months int, events []model.Event, ships []model.Sponsorship, sponsors []model.Sponsor, cfg config.ReportingConfig, now time.Time) Document {
	start := now.AddDate(0, 0, -months*30)

	trends := finance.MonthlyTrends(events, ships)
	top := finance.RankSponsors(ships, sponsors, cfg.TopSponsorLimit)

	// the projection baseline is the trailing slice of the trend series
	base := trends
	if len(base) > cfg.ProjectionBaseline {
		base = base[len(base)-cfg.ProjectionBaseline:]
	}
	var projections interface{}
	if p, err := finance.Project(base, cfg.ProjectionMonths); err != nil {
		projections = Document{"error": err.Error()}
	} else {
		projections = p
	}

	totalBudget := finance.TotalBudget(events)
	totalRevenue := finance.TotalRevenue(events)
	overall := Document{
		"total_events":      len(events),
		"total_budget":      totalBudget,
		"total_revenue":     totalRevenue,
		"total_sponsorship": finance.PaidInvestment(ships),
		"total_footfall":    finance.TotalFootfall(events),
		"net_profit":        totalRevenue - totalBudget,
		"roi_percentage":    finance.ROIPercent(totalRevenue, totalBudget),
	}
	if n := len(events); n > 0 {
		overall["revenue_per_event"] = totalRevenue / float64(n)
		overall["budget_per_event"] = totalBudget / float64(n)
	} else {
		overall["revenue_per_event"] = 0.0
		overall["budget_per_event"] = 0.0
	}

	return Document{
		"report_type":     "Financial Summary Report",
		"period_months":   months,
		"generated_at":    now.Format(time.RFC3339),
		"period_start":    start.Format(time.RFC3339),
		"period_end":      now.Format(time.RFC3339),
		"overall_metrics": overall,
		"monthly_trends":  trends,
		"top_sponsors":    top,
		"projections":     projections,
	}
}

// BuildMonthlyReport renders one calendar month: its events, newly onboarded
// sponsors and sponsorships created in the month. Inputs must already be
// filtered to the month window.
func BuildMonthlyReport(year, month int, events []model.Event, newSponsors []model.Sponsor, ships []model.Sponsorship, now time.Time) Document {
	if month < 1 || month > 12 {
		return errDoc(fmt.Sprintf("invalid month %d", month))
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var paidCount int
	var paidAmount float64
	for _, sh := range ships {
		if sh.Status == model.StatusPaid {
			paidCount++
			paidAmount += sh.Amount
		}
	}

	totalBudget := finance.TotalBudget(events)
	totalRevenue := finance.TotalRevenue(events)

	eventRows := make([]Document, 0, len(events))
	for _, e := range events {
		eventRows = append(eventRows, Document{
			"id":       e.ID,
			"name":     e.Name,
			"date":     fmtDate(e.Date),
			"budget":   e.Budget,
			"revenue":  e.Revenue,
			"footfall": e.Footfall,
			"profit":   e.Revenue - e.Budget,
		})
	}
	sponsorRows := make([]Document, 0, len(newSponsors))
	for _, sp := range newSponsors {
		sponsorRows = append(sponsorRows, Document{
			"id":             sp.ID,
			"name":           sp.Name,
			"industry":       sp.Industry,
			"contact_person": sp.ContactPerson,
			"email":          sp.Email,
			"created_at":     sp.CreatedAt.Format(time.RFC3339),
		})
	}
	shipRows := make([]Document, 0, len(ships))
	for _, sh := range ships {
		shipRows = append(shipRows, Document{
			"id":           sh.ID,
			"sponsor_name": sh.SponsorName,
			"event_name":   sh.EventName,
			"amount":       sh.Amount,
			"status":       sh.Status,
			"roi":          sh.ROI,
			"created_at":   sh.CreatedAt.Format(time.RFC3339),
		})
	}

	return Document{
		"report_type":  "Monthly Report",
		"year":         year,
		"month":        month,
		"month_name":   time.Month(month).String(),
		"period_start": start.Format(time.RFC3339),
		"period_end":   end.Format(time.RFC3339),
		"generated_at": now.Format(time.RFC3339),
		"summary_metrics": Document{
			"total_events":             len(events),
			"total_budget":             totalBudget,
			"total_revenue":            totalRevenue,
			"net_profit":               totalRevenue - totalBudget,
			"total_footfall":           finance.TotalFootfall(events),
			"new_sponsors":             len(newSponsors),
			"paid_sponsorships":        paidCount,
			"total_sponsorship_amount": paidAmount,
			"roi_percentage":           finance.ROIPercent(totalRevenue, totalBudget),
		},
		"detailed_data": Document{
			"events":       eventRows,
			"new_sponsors": sponsorRows,
			"sponsorships": shipRows,
		},
	}
}

// BuildROIAnalysis renders the per-sponsor ROI table with overall and
// per-industry rollups.
func BuildROIAnalysis(ships []model.Sponsorship, sponsors []model.Sponsor, now time.Time) Document {
	rows := finance.AnalyzeSponsorROIs(ships, sponsors)

	var totalInvestment, totalRevenue float64
	for _, r := range rows {
		totalInvestment += r.TotalInvestment
		totalRevenue += r.TotalRevenue
	}
	overall := Document{
		"total_sponsors":         len(rows),
		"total_investment":       totalInvestment,
		"total_revenue":          totalRevenue,
		"total_net_profit":       totalRevenue - totalInvestment,
		"overall_roi_percentage": finance.ROIPercent(totalRevenue, totalInvestment),
	}
	if len(rows) > 0 {
		overall["average_investment_per_sponsor"] = totalInvestment / float64(len(rows))
	} else {
		overall["average_investment_per_sponsor"] = 0.0
	}

	return Document{
		"report_type":       "ROI Analysis Report",
		"generated_at":      now.Format(time.RFC3339),
		"overall_metrics":   overall,
		"sponsor_details":   rows,
		"industry_analysis": finance.IndustryRollup(rows),
	}
}
