package report

import (
	"testing"
	"time"

	"github.com/fincommittee/platform/internal/config"
	"github.com/fincommittee/platform/internal/finance"
	"github.com/fincommittee/platform/internal/model"
)

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestBuildSponsorReportSummary(t *testing.T) {
	sponsors := []model.Sponsor{
		{ID: 1, Name: "Acme", Industry: "Tech", TotalInvested: 5000, CreatedAt: testNow},
	}
	doc := BuildSponsorReport(KindSummary, sponsors, nil, testNow)
	if msg, ok := doc.Err(); ok {
		t.Fatalf("unexpected error document: %s", msg)
	}
	if doc["report_type"] != "Sponsor Report" || doc["sponsor_count"] != 1 {
		t.Errorf("header wrong: %v / %v", doc["report_type"], doc["sponsor_count"])
	}
	rows := doc["sponsors"].([]Document)
	if _, ok := rows[0]["sponsorships"]; ok {
		t.Error("summary format must not include sponsorship lists")
	}
}

func TestBuildSponsorReportDetailed(t *testing.T) {
	sponsors := []model.Sponsor{{ID: 1, Name: "Acme", CreatedAt: testNow}}
	ships := map[uint64][]model.Sponsorship{
		1: {
			{SponsorID: 1, Amount: 500, Status: model.StatusPaid, ROI: 10, EventName: "Gala", CreatedAt: testNow},
			{SponsorID: 1, Amount: 300, Status: model.StatusNegotiating, EventName: "Expo", CreatedAt: testNow},
		},
	}
	doc := BuildSponsorReport(KindDetailed, sponsors, ships, testNow)
	row := doc["sponsors"].([]Document)[0]
	if row["sponsorship_count"] != 2 {
		t.Errorf("sponsorship_count = %v, want 2", row["sponsorship_count"])
	}
	list := row["sponsorships"].([]Document)
	if list[0]["event_name"] != "Gala" {
		t.Errorf("event name not resolved: %v", list[0])
	}
	if _, ok := row["roi_metrics"]; ok {
		t.Error("detailed format must not include roi_metrics")
	}
}

func TestBuildSponsorReportROIAnalysis(t *testing.T) {
	sponsors := []model.Sponsor{{ID: 1, Name: "Acme", CreatedAt: testNow}}
	ships := map[uint64][]model.Sponsorship{
		1: {{SponsorID: 1, Amount: 1000, ROI: 20, Status: model.StatusPaid, CreatedAt: testNow}},
	}
	doc := BuildSponsorReport(KindROIAnalysis, sponsors, ships, testNow)
	row := doc["sponsors"].([]Document)[0]
	metrics, ok := row["roi_metrics"].(finance.SponsorROIMetrics)
	if !ok {
		t.Fatalf("roi_metrics missing or wrong type: %T", row["roi_metrics"])
	}
	if metrics.TotalInvestment != 1000 || metrics.TotalRevenue != 1200 {
		t.Errorf("roi_metrics = %+v", metrics)
	}
}

func TestBuildSponsorReportUnknownKind(t *testing.T) {
	doc := BuildSponsorReport("csv", nil, nil, testNow)
	if _, ok := doc.Err(); !ok {
		t.Errorf("unknown kind should yield an error document, got %v", doc)
	}
}

func TestBuildEventReportFinancial(t *testing.T) {
	events := []model.Event{
		{ID: 3, Name: "Gala", Date: datePtr(2025, time.May, 10), Budget: 1000, Revenue: 1500, Footfall: 100, CreatedAt: testNow},
	}
	ships := map[uint64][]model.Sponsorship{
		3: {
			{EventID: 3, SponsorName: "Acme", Amount: 400, Status: model.StatusPaid, CreatedAt: testNow},
			{EventID: 3, SponsorName: "Beta", Amount: 100, Status: model.StatusConfirmed, CreatedAt: testNow},
		},
	}
	doc := BuildEventReport(KindFinancial, events, ships, testNow)
	row := doc["events"].([]Document)[0]

	if row["total_sponsorship"] != 500.0 {
		t.Errorf("total_sponsorship = %v, want 500 (all statuses)", row["total_sponsorship"])
	}
	fin, ok := row["financial_summary"].(finance.EventFinancials)
	if !ok {
		t.Fatalf("financial_summary missing: %T", row["financial_summary"])
	}
	if fin.TotalSponsorship != 400 {
		t.Errorf("financial summary sponsorship = %v, want 400 (paid only)", fin.TotalSponsorship)
	}
	if row["date"] != "2025-05-10" {
		t.Errorf("date = %v", row["date"])
	}
}

func TestBuildEventReportNilDate(t *testing.T) {
	events := []model.Event{{ID: 1, Name: "TBD", CreatedAt: testNow}}
	doc := BuildEventReport(KindSummary, events, nil, testNow)
	row := doc["events"].([]Document)[0]
	if row["date"] != nil {
		t.Errorf("nil date should render as null, got %v", row["date"])
	}
}

func TestBuildFinancialSummary(t *testing.T) {
	cfg := config.ReportingConfig{TrendWindowMonths: 12, ProjectionMonths: 6, ProjectionBaseline: 6, TopSponsorLimit: 10}
	events := []model.Event{
		{ID: 1, Date: datePtr(2025, time.April, 5), Budget: 1000, Revenue: 1500, Footfall: 100},
		{ID: 2, Date: datePtr(2025, time.May, 5), Budget: 2000, Revenue: 1800, Footfall: 250},
	}
	sponsors := []model.Sponsor{{ID: 1, Name: "Acme"}}
	ships := []model.Sponsorship{
		{SponsorID: 1, EventID: 1, Amount: 700, Status: model.StatusPaid, CreatedAt: testNow},
		{SponsorID: 1, EventID: 2, Amount: 999, Status: model.StatusNegotiating, CreatedAt: testNow},
	}

	doc := BuildFinancialSummary(12, events, ships, sponsors, cfg, testNow)
	overall := doc["overall_metrics"].(Document)
	if overall["total_budget"] != 3000.0 || overall["total_revenue"] != 3300.0 {
		t.Errorf("totals wrong: %+v", overall)
	}
	if overall["net_profit"] != 300.0 {
		t.Errorf("net_profit = %v, want 300", overall["net_profit"])
	}
	if overall["total_sponsorship"] != 700.0 {
		t.Errorf("total_sponsorship = %v, want 700 (paid only)", overall["total_sponsorship"])
	}
	if overall["revenue_per_event"] != 1650.0 {
		t.Errorf("revenue_per_event = %v, want 1650", overall["revenue_per_event"])
	}

	trends := doc["monthly_trends"].([]finance.MonthTrend)
	if len(trends) != 2 || trends[0].Month != 4 {
		t.Errorf("trend buckets wrong: %+v", trends)
	}
	if _, ok := doc["projections"].(finance.Projection); !ok {
		t.Errorf("projection missing: %T", doc["projections"])
	}
	top := doc["top_sponsors"].([]finance.SponsorRank)
	if len(top) != 1 || top[0].Name != "Acme" {
		t.Errorf("top sponsors wrong: %+v", top)
	}
}

func TestBuildFinancialSummaryInsufficientHistory(t *testing.T) {
	cfg := config.ReportingConfig{TrendWindowMonths: 12, ProjectionMonths: 6, ProjectionBaseline: 6, TopSponsorLimit: 10}
	events := []model.Event{{ID: 1, Date: datePtr(2025, time.May, 5), Budget: 100, Revenue: 200}}

	doc := BuildFinancialSummary(12, events, nil, nil, cfg, testNow)
	if _, ok := doc.Err(); ok {
		t.Fatal("summary itself must not fail on short history")
	}
	proj, ok := doc["projections"].(Document)
	if !ok {
		t.Fatalf("projections should degrade to an error document, got %T", doc["projections"])
	}
	if _, ok := proj.Err(); !ok {
		t.Errorf("embedded projection error missing: %v", proj)
	}
}

func TestBuildMonthlyReport(t *testing.T) {
	events := []model.Event{
		{ID: 1, Name: "Gala", Date: datePtr(2025, time.May, 10), Budget: 1000, Revenue: 1400, Footfall: 80},
	}
	newSponsors := []model.Sponsor{{ID: 2, Name: "Beta", CreatedAt: testNow}}
	ships := []model.Sponsorship{
		{ID: 5, SponsorName: "Beta", EventName: "Gala", Amount: 250, Status: model.StatusPaid, CreatedAt: testNow},
		{ID: 6, SponsorName: "Beta", EventName: "Gala", Amount: 400, Status: model.StatusNegotiating, CreatedAt: testNow},
	}
	doc := BuildMonthlyReport(2025, 5, events, newSponsors, ships, testNow)

	sum := doc["summary_metrics"].(Document)
	if sum["net_profit"] != 400.0 || sum["paid_sponsorships"] != 1 || sum["total_sponsorship_amount"] != 250.0 {
		t.Errorf("summary metrics wrong: %+v", sum)
	}
	if doc["month_name"] != "May" {
		t.Errorf("month_name = %v", doc["month_name"])
	}
	detail := doc["detailed_data"].(Document)
	if len(detail["sponsorships"].([]Document)) != 2 {
		t.Error("all sponsorships of the month should be listed, paid or not")
	}
}

func TestBuildMonthlyReportDecemberWindow(t *testing.T) {
	doc := BuildMonthlyReport(2025, 12, nil, nil, nil, testNow)
	if doc["period_end"] != "2026-01-01T00:00:00Z" {
		t.Errorf("december window end = %v, want 2026-01-01", doc["period_end"])
	}
}

func TestBuildMonthlyReportInvalidMonth(t *testing.T) {
	for _, m := range []int{0, 13, -1} {
		doc := BuildMonthlyReport(2025, m, nil, nil, nil, testNow)
		if _, ok := doc.Err(); !ok {
			t.Errorf("month %d should yield an error document", m)
		}
	}
}

func TestBuildROIAnalysis(t *testing.T) {
	sponsors := []model.Sponsor{
		{ID: 1, Name: "Acme", Industry: "Tech"},
		{ID: 2, Name: "Beta"},
	}
	ships := []model.Sponsorship{
		{SponsorID: 1, Amount: 1000, ROI: 20, Status: model.StatusPaid},
		{SponsorID: 2, Amount: 500, ROI: 0, Status: model.StatusPaid},
	}
	doc := BuildROIAnalysis(ships, sponsors, testNow)

	overall := doc["overall_metrics"].(Document)
	if overall["total_sponsors"] != 2 || overall["total_investment"] != 1500.0 {
		t.Errorf("overall metrics wrong: %+v", overall)
	}
	industries := doc["industry_analysis"].(map[string]finance.IndustryStat)
	if _, ok := industries[finance.UnknownIndustry]; !ok {
		t.Error("sponsor without industry should land in the Unknown bucket")
	}
}

func TestBuildROIAnalysisEmpty(t *testing.T) {
	doc := BuildROIAnalysis(nil, nil, testNow)
	if _, ok := doc.Err(); ok {
		t.Fatal("empty data should yield an empty report, not an error")
	}
	overall := doc["overall_metrics"].(Document)
	if overall["average_investment_per_sponsor"] != 0.0 {
		t.Errorf("average with no sponsors = %v, want 0", overall["average_investment_per_sponsor"])
	}
}
