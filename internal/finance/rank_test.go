package finance

import (
	"testing"

	"github.com/fincommittee/platform/internal/model"
)

func TestRankSponsorsLimitAndOrder(t *testing.T) {
	sponsors := []model.Sponsor{
		{ID: 1, Name: "A", Industry: "Tech"},
		{ID: 2, Name: "B", Industry: "Retail"},
	}
	ships := []model.Sponsorship{
		{SponsorID: 1, Amount: 500, Status: model.StatusPaid},
		{SponsorID: 1, Amount: 300, Status: model.StatusPaid},
		{SponsorID: 2, Amount: 1000, Status: model.StatusPaid},
	}

	ranked := RankSponsors(ships, sponsors, 1)
	if len(ranked) != 1 {
		t.Fatalf("limit 1 returned %d entries", len(ranked))
	}
	top := ranked[0]
	if top.Name != "B" || top.TotalInvestment != 1000 || top.SponsorshipCount != 1 {
		t.Errorf("top sponsor = %+v, want B/1000/1", top)
	}

	full := RankSponsors(ships, sponsors, 10)
	if len(full) != 2 {
		t.Fatalf("got %d entries, want 2", len(full))
	}
	for i := 1; i < len(full); i++ {
		if full[i].TotalInvestment > full[i-1].TotalInvestment {
			t.Errorf("ranking not non-increasing at %d: %v > %v",
				i, full[i].TotalInvestment, full[i-1].TotalInvestment)
		}
	}
	if full[1].Name != "A" || full[1].TotalInvestment != 800 || full[1].SponsorshipCount != 2 {
		t.Errorf("second sponsor = %+v, want A/800/2", full[1])
	}
}

func TestRankSponsorsDefaultLimit(t *testing.T) {
	var sponsors []model.Sponsor
	var ships []model.Sponsorship
	for i := uint64(1); i <= 15; i++ {
		sponsors = append(sponsors, model.Sponsor{ID: i, Name: "S"})
		ships = append(ships, model.Sponsorship{SponsorID: i, Amount: float64(i), Status: model.StatusPaid})
	}
	if got := len(RankSponsors(ships, sponsors, 0)); got != DefaultRankLimit {
		t.Errorf("limit 0 returned %d entries, want %d", got, DefaultRankLimit)
	}
}

func TestRankSponsorsIgnoresUnpaid(t *testing.T) {
	sponsors := []model.Sponsor{{ID: 1, Name: "A"}}
	ships := []model.Sponsorship{
		{SponsorID: 1, Amount: 500, Status: model.StatusNegotiating},
		{SponsorID: 1, Amount: 100, Status: model.StatusCancelled},
	}
	if got := RankSponsors(ships, sponsors, 10); len(got) != 0 {
		t.Errorf("unpaid-only sponsor should not rank, got %+v", got)
	}
}

func TestRankSponsorsAverageROI(t *testing.T) {
	sponsors := []model.Sponsor{{ID: 1, Name: "A"}}
	ships := []model.Sponsorship{
		{SponsorID: 1, Amount: 100, ROI: 10, Status: model.StatusPaid},
		{SponsorID: 1, Amount: 100, ROI: 30, Status: model.StatusPaid},
	}
	ranked := RankSponsors(ships, sponsors, 10)
	if len(ranked) != 1 || !almostEqual(ranked[0].AverageROI, 20) {
		t.Errorf("AverageROI = %+v, want 20", ranked)
	}
}

func TestAnalyzeSponsorROIs(t *testing.T) {
	sponsors := []model.Sponsor{
		{ID: 1, Name: "A", Industry: "Tech"},
		{ID: 2, Name: "B"},
	}
	ships := []model.Sponsorship{
		{SponsorID: 1, Amount: 1000, ROI: 10, Status: model.StatusPaid},
		{SponsorID: 1, Amount: 1000, ROI: 30, Status: model.StatusPaid},
		{SponsorID: 2, Amount: 500, ROI: -20, Status: model.StatusPaid},
		{SponsorID: 2, Amount: 999, ROI: 50, Status: model.StatusConfirmed},
	}
	rows := AnalyzeSponsorROIs(ships, sponsors)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	a := rows[0]
	if a.Name != "A" || a.TotalInvestment != 2000 {
		t.Fatalf("first row should be A with 2000 invested, got %+v", a)
	}
	if !almostEqual(a.AverageROI, 20) || !almostEqual(a.MinROI, 10) || !almostEqual(a.MaxROI, 30) {
		t.Errorf("A roi spread = avg %v min %v max %v, want 20/10/30", a.AverageROI, a.MinROI, a.MaxROI)
	}
	if !almostEqual(a.TotalRevenue, 2400) || !almostEqual(a.NetProfit, 400) {
		t.Errorf("A revenue/profit = %v/%v, want 2400/400", a.TotalRevenue, a.NetProfit)
	}

	b := rows[1]
	if b.SponsorshipCount != 1 {
		t.Errorf("B should count only its paid sponsorship, got %d", b.SponsorshipCount)
	}
	if !almostEqual(b.MinROI, -20) || !almostEqual(b.MaxROI, -20) {
		t.Errorf("B roi spread = %v/%v, want -20/-20", b.MinROI, b.MaxROI)
	}
}

func TestIndustryRollupUnknownBucket(t *testing.T) {
	rows := []SponsorROIRow{
		{Name: "A", Industry: "", TotalInvestment: 100, TotalRevenue: 150},
		{Name: "B", Industry: "Unknown", TotalInvestment: 200, TotalRevenue: 200},
		{Name: "C", Industry: "Tech", TotalInvestment: 1000, TotalRevenue: 1200},
	}
	buckets := IndustryRollup(rows)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2 (Unknown merged)", len(buckets))
	}

	unknown, ok := buckets[UnknownIndustry]
	if !ok {
		t.Fatal("missing Unknown bucket")
	}
	if unknown.Sponsors != 2 || unknown.TotalInvestment != 300 {
		t.Errorf("Unknown bucket = %+v, want 2 sponsors / 300 invested", unknown)
	}
	// (350 - 300) / 300 * 100
	if !almostEqual(unknown.AvgROI, ROIPercent(350, 300)) {
		t.Errorf("Unknown AvgROI = %v", unknown.AvgROI)
	}

	tech := buckets["Tech"]
	if tech.Sponsors != 1 || !almostEqual(tech.AvgROI, 20) {
		t.Errorf("Tech bucket = %+v", tech)
	}
}

func TestIndustryRollupAggregateNotAverageOfAverages(t *testing.T) {
	// one big sponsor at 10% and one tiny at 100%: the bucket ROI must lean
	// toward the big sponsor, not sit at 55%
	rows := []SponsorROIRow{
		{Industry: "Tech", TotalInvestment: 10000, TotalRevenue: 11000},
		{Industry: "Tech", TotalInvestment: 10, TotalRevenue: 20},
	}
	got := IndustryRollup(rows)["Tech"].AvgROI
	want := ROIPercent(11020, 10010)
	if !almostEqual(got, want) {
		t.Errorf("bucket ROI = %v, want %v (recomputed from sums)", got, want)
	}
	if got > 15 {
		t.Errorf("bucket ROI %v looks like an average of averages", got)
	}
}
