package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fincommittee/platform/internal/config"
	"github.com/fincommittee/platform/internal/finance"
	"github.com/fincommittee/platform/internal/repository"
)

// AnalyticsHandler exposes the aggregate read endpoints. Grouping happens in
// SQL via AnalyticsRepo; ratio and growth math happens in the finance
// package.
type AnalyticsHandler struct {
	Members      *repository.MemberRepo
	Sponsors     *repository.SponsorRepo
	Events       *repository.EventRepo
	Sponsorships *repository.SponsorshipRepo
	Analytics    *repository.AnalyticsRepo
	Cfg          config.ReportingConfig
}

func NewAnalyticsHandler(m *repository.MemberRepo, s *repository.SponsorRepo, e *repository.EventRepo, sp *repository.SponsorshipRepo, a *repository.AnalyticsRepo, cfg config.ReportingConfig) *AnalyticsHandler {
	return &AnalyticsHandler{Members: m, Sponsors: s, Events: e, Sponsorships: sp, Analytics: a, Cfg: cfg}
}

// Overview returns platform-wide headline totals.
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	events, err := h.Events.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load events failed"})
	}
	ships, err := h.Sponsorships.List(ctx, repository.Filter{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load sponsorships failed"})
	}
	sponsorCount, err := h.Sponsors.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count sponsors failed"})
	}
	memberCount, err := h.Members.CountActive(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count members failed"})
	}

	totalBudget := finance.TotalBudget(events)
	totalRevenue := finance.TotalRevenue(events)
	return c.JSON(http.StatusOK, echo.Map{
		"total_events":             len(events),
		"total_budget":             totalBudget,
		"total_revenue":            totalRevenue,
		"total_sponsor_investment": finance.TotalInvestment(ships),
		"total_sponsors":           sponsorCount,
		"total_members":            memberCount,
		"total_footfall":           finance.TotalFootfall(events),
		"profit":                   totalRevenue - totalBudget,
		"roi_percentage":           finance.ROIPercent(totalRevenue, totalBudget),
	})
}

// Trends returns the monthly event rollup for the trailing window. The
// window length in months can be overridden with the months query param.
func (h *AnalyticsHandler) Trends(c echo.Context) error {
	months := intQuery(c, "months", h.Cfg.TrendWindowMonths)
	if months < 1 {
		months = h.Cfg.TrendWindowMonths
	}
	now := time.Now().UTC()
	start := now.AddDate(0, -months, 0)

	ctx, cancel := reqCtx(c)
	defer cancel()

	rollup, err := h.Analytics.MonthlyEventRollup(ctx, start, now)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load trends failed"})
	}

	rows := make([]echo.Map, 0, len(rollup))
	for _, m := range rollup {
		rows = append(rows, echo.Map{
			"month":       fmt.Sprintf("%04d-%02d", m.Year, m.Month),
			"budget":      m.Budget,
			"revenue":     m.Revenue,
			"footfall":    m.Footfall,
			"event_count": m.EventCount,
			"profit":      m.Revenue - m.Budget,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"trends": rows,
		"period": echo.Map{
			"start": start.Format("2006-01-02"),
			"end":   now.Format("2006-01-02"),
		},
	})
}

// ROI returns per-sponsor and per-event return figures, both capped at the
// 20 largest.
func (h *AnalyticsHandler) ROI(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	sponsors, err := h.Analytics.SponsorPerformance(ctx, "", 20)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load sponsor roi failed"})
	}
	events, err := h.Analytics.EventSponsorshipTotals(ctx, 20)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load event roi failed"})
	}

	sponsorRows := make([]echo.Map, 0, len(sponsors))
	for _, s := range sponsors {
		sponsorRows = append(sponsorRows, echo.Map{
			"sponsor_id":        s.SponsorID,
			"sponsor_name":      s.Name,
			"industry":          s.Industry,
			"total_investment":  s.TotalInvestment,
			"average_roi":       s.AverageROI,
			"sponsorship_count": s.SponsorshipCount,
		})
	}
	eventRows := make([]echo.Map, 0, len(events))
	for _, e := range events {
		var date interface{}
		if e.Date != nil {
			date = e.Date.Format("2006-01-02")
		}
		eventRows = append(eventRows, echo.Map{
			"event_id":           e.EventID,
			"event_name":         e.Name,
			"event_date":         date,
			"budget":             e.Budget,
			"revenue":            e.Revenue,
			"sponsorship_amount": e.SponsorshipSum,
			"roi_percentage":     finance.ROIPercent(e.Revenue, e.Budget),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"sponsors_roi": sponsorRows,
		"events_roi":   eventRows,
		"summary": echo.Map{
			"total_sponsors_analyzed": len(sponsorRows),
			"total_events_analyzed":   len(eventRows),
		},
	})
}

// Reports returns cross-cutting performance rollups: activity counts over
// trailing windows, top sponsors and events, and the industry breakdown.
func (h *AnalyticsHandler) Reports(c echo.Context) error {
	now := time.Now().UTC()
	lastMonth := now.AddDate(0, 0, -30)
	lastQuarter := now.AddDate(0, 0, -90)
	lastYear := now.AddDate(0, 0, -365)

	ctx, cancel := reqCtx(c)
	defer cancel()

	totalEvents, err := h.Events.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count events failed"})
	}
	monthCount, err := h.Events.CountSince(ctx, lastMonth)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count events failed"})
	}
	quarterCount, err := h.Events.CountSince(ctx, lastQuarter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count events failed"})
	}
	yearCount, err := h.Events.CountSince(ctx, lastYear)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count events failed"})
	}
	totalSponsors, err := h.Sponsors.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count sponsors failed"})
	}
	activeSponsors, err := h.Sponsors.CountWithSponsorships(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count sponsors failed"})
	}
	monthEvents, err := h.Events.ListBetween(ctx, lastMonth, now)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load events failed"})
	}
	topSponsors, err := h.Analytics.SponsorPerformance(ctx, "", h.Cfg.TopSponsorLimit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load top sponsors failed"})
	}
	topEvents, err := h.Events.TopByRevenue(ctx, 10)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load top events failed"})
	}
	industries, err := h.Analytics.IndustryBreakdown(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load industry breakdown failed"})
	}

	monthRevenue := finance.TotalRevenue(monthEvents)
	monthBudget := finance.TotalBudget(monthEvents)

	sponsorRows := make([]echo.Map, 0, len(topSponsors))
	for _, s := range topSponsors {
		sponsorRows = append(sponsorRows, echo.Map{"name": s.Name, "total_amount": s.TotalInvestment})
	}
	eventRows := make([]echo.Map, 0, len(topEvents))
	for _, e := range topEvents {
		var date interface{}
		if e.Date != nil {
			date = e.Date.Format("2006-01-02")
		}
		eventRows = append(eventRows, echo.Map{
			"name":    e.Name,
			"date":    date,
			"revenue": e.Revenue,
			"budget":  e.Budget,
			"profit":  e.Revenue - e.Budget,
		})
	}
	industryRows := make([]echo.Map, 0, len(industries))
	for _, b := range industries {
		industry := b.Industry
		if industry == "" {
			industry = finance.UnknownIndustry
		}
		industryRows = append(industryRows, echo.Map{
			"industry":         industry,
			"sponsor_count":    b.SponsorCount,
			"total_investment": b.TotalInvestment,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"performance": echo.Map{
			"events": echo.Map{
				"total":        totalEvents,
				"last_month":   monthCount,
				"last_quarter": quarterCount,
				"last_year":    yearCount,
			},
			"sponsors": echo.Map{
				"total":  totalSponsors,
				"active": activeSponsors,
			},
			"financial": echo.Map{
				"last_month_revenue": monthRevenue,
				"last_month_budget":  monthBudget,
				"last_month_profit":  monthRevenue - monthBudget,
			},
		},
		"top_sponsors":       sponsorRows,
		"top_events":         eventRows,
		"industry_breakdown": industryRows,
		"generated_at":       now.Format(time.RFC3339),
	})
}

// Dashboard returns the combined overview, financial, derived-metric and
// recent-activity blocks consumed by the landing page.
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	now := time.Now().UTC()
	recent := now.AddDate(0, 0, -30)

	ctx, cancel := reqCtx(c)
	defer cancel()

	events, err := h.Events.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load events failed"})
	}
	ships, err := h.Sponsorships.List(ctx, repository.Filter{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load sponsorships failed"})
	}
	totalSponsors, err := h.Sponsors.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count sponsors failed"})
	}
	activeMembers, err := h.Members.CountActive(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count members failed"})
	}
	recentEvents, err := h.Events.CountSince(ctx, recent)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count events failed"})
	}
	recentShips, err := h.Sponsorships.CountCreatedSince(ctx, recent)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count sponsorships failed"})
	}

	totalBudget := finance.TotalBudget(events)
	totalRevenue := finance.TotalRevenue(events)
	totalInvestment := finance.TotalInvestment(ships)
	totalFootfall := finance.TotalFootfall(events)

	metrics := echo.Map{
		"avg_event_size":        0.0,
		"sponsorship_per_event": 0.0,
		"avg_sponsorship_value": 0.0,
	}
	if n := len(events); n > 0 {
		metrics["avg_event_size"] = float64(totalFootfall) / float64(n)
		metrics["sponsorship_per_event"] = float64(len(ships)) / float64(n)
	}
	if n := len(ships); n > 0 {
		metrics["avg_sponsorship_value"] = totalInvestment / float64(n)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"overview": echo.Map{
			"total_events":       len(events),
			"total_sponsors":     totalSponsors,
			"total_sponsorships": len(ships),
			"total_members":      activeMembers,
		},
		"financial": echo.Map{
			"total_budget":     totalBudget,
			"total_revenue":    totalRevenue,
			"total_investment": totalInvestment,
			"total_profit":     totalRevenue - totalBudget,
			"total_footfall":   totalFootfall,
			"roi_percentage":   finance.ROIPercent(totalRevenue, totalBudget),
		},
		"metrics": metrics,
		"recent_activity": echo.Map{
			"recent_events":       recentEvents,
			"recent_sponsorships": recentShips,
		},
		"generated_at": now.Format(time.RFC3339),
	})
}
