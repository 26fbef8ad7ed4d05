package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fincommittee/platform/internal/report"
)

// ReportHandler serves the assembled report documents and the export stub.
// Builders never fail; an error document comes back with status 200 so the
// response is always renderable, except for unknown report types which are
// a caller mistake.
type ReportHandler struct {
	Assembler *report.Assembler
}

func NewReportHandler(a *report.Assembler) *ReportHandler {
	return &ReportHandler{Assembler: a}
}

type exportReq struct {
	ReportType string `json:"report_type"` // sponsors | events | financial_summary | monthly | roi_analysis
	Format     string `json:"format"`      // excel | pdf
	Filename   string `json:"filename"`
	Kind       string `json:"kind"` // per-report format, e.g. summary
	SponsorID  uint64 `json:"sponsor_id"`
	EventID    uint64 `json:"event_id"`
	Months     int    `json:"months"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

// Sponsors serves GET /reports/sponsors.
func (h *ReportHandler) Sponsors(c echo.Context) error {
	kind := c.QueryParam("format")
	if kind == "" {
		kind = report.KindSummary
	}
	doc := h.Assembler.SponsorReport(c.Request().Context(), kind, uint64(intQuery(c, "sponsor_id", 0)))
	return c.JSON(http.StatusOK, doc)
}

// Events serves GET /reports/events.
func (h *ReportHandler) Events(c echo.Context) error {
	kind := c.QueryParam("format")
	if kind == "" {
		kind = report.KindSummary
	}
	doc := h.Assembler.EventReport(c.Request().Context(), kind, uint64(intQuery(c, "event_id", 0)))
	return c.JSON(http.StatusOK, doc)
}

// FinancialSummary serves GET /reports/financial-summary.
func (h *ReportHandler) FinancialSummary(c echo.Context) error {
	doc := h.Assembler.FinancialSummary(c.Request().Context(), intQuery(c, "months", 0))
	return c.JSON(http.StatusOK, doc)
}

// Monthly serves GET /reports/monthly. Year and month default to the
// current calendar month.
func (h *ReportHandler) Monthly(c echo.Context) error {
	now := time.Now().UTC()
	year := intQuery(c, "year", now.Year())
	month := intQuery(c, "month", int(now.Month()))
	doc := h.Assembler.MonthlyReport(c.Request().Context(), year, month)
	return c.JSON(http.StatusOK, doc)
}

// ROIAnalysis serves GET /reports/roi-analysis.
func (h *ReportHandler) ROIAnalysis(c echo.Context) error {
	doc := h.Assembler.ROIAnalysis(c.Request().Context())
	return c.JSON(http.StatusOK, doc)
}

// Export assembles the requested report and hands it to the matching
// exporter, returning the artifact path.
func (h *ReportHandler) Export(c echo.Context) error {
	var req exportReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	exporter, ok := report.ExporterFor(req.Format)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "format must be excel or pdf"})
	}

	ctx := c.Request().Context()
	kind := req.Kind
	if kind == "" {
		kind = report.KindSummary
	}

	var doc report.Document
	switch req.ReportType {
	case "sponsors":
		doc = h.Assembler.SponsorReport(ctx, kind, req.SponsorID)
	case "events":
		doc = h.Assembler.EventReport(ctx, kind, req.EventID)
	case "financial_summary":
		doc = h.Assembler.FinancialSummary(ctx, req.Months)
	case "monthly":
		now := time.Now().UTC()
		year, month := req.Year, req.Month
		if year == 0 {
			year = now.Year()
		}
		if month == 0 {
			month = int(now.Month())
		}
		doc = h.Assembler.MonthlyReport(ctx, year, month)
	case "roi_analysis":
		doc = h.Assembler.ROIAnalysis(ctx)
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown report_type"})
	}

	if msg, failed := doc.Err(); failed {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": msg})
	}
	path, err := exporter.Export(doc, req.Filename)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "report exported",
		"format":  req.Format,
		"path":    path,
	})
}
