package finance

import (
	"sort"

	"github.com/fincommittee/platform/internal/model"
)

// DefaultRankLimit caps sponsor rankings when the caller passes no limit.
const DefaultRankLimit = 10

// UnknownIndustry is the bucket sponsors without an industry fall into.
const UnknownIndustry = "Unknown"

// SponsorRank is one row of the top-sponsors ranking.
type SponsorRank struct {
	SponsorID        uint64  `json:"id"`
	Name             string  `json:"name"`
	Industry         string  `json:"industry"`
	ContactPerson    string  `json:"contact_person"`
	Email            string  `json:"email"`
	TotalInvestment  float64 `json:"total_investment"`
	SponsorshipCount int     `json:"sponsorship_count"`
	AverageROI       float64 `json:"average_roi"`
}

// RankSponsors groups paid sponsorships by sponsor, sums investment, counts
// sponsorships and averages ROI, then sorts non-increasing by total
// investment and truncates to limit (DefaultRankLimit when limit <= 0).
// Sponsors with no paid sponsorship do not appear. Ties may land in either
// order.
func RankSponsors(ships []model.Sponsorship, sponsors []model.Sponsor, limit int) []SponsorRank {
	if limit <= 0 {
		limit = DefaultRankLimit
	}
	byID := make(map[uint64]model.Sponsor, len(sponsors))
	for _, s := range sponsors {
		byID[s.ID] = s
	}

	acc := make(map[uint64]*SponsorRank)
	roiSum := make(map[uint64]float64)
	for _, sh := range ships {
		if sh.Status != model.StatusPaid {
			continue
		}
		r := acc[sh.SponsorID]
		if r == nil {
			sp := byID[sh.SponsorID]
			r = &SponsorRank{
				SponsorID:     sh.SponsorID,
				Name:          sp.Name,
				Industry:      sp.Industry,
				ContactPerson: sp.ContactPerson,
				Email:         sp.Email,
			}
			acc[sh.SponsorID] = r
		}
		r.TotalInvestment += sh.Amount
		r.SponsorshipCount++
		roiSum[sh.SponsorID] += sh.ROI
	}

	out := make([]SponsorRank, 0, len(acc))
	for id, r := range acc {
		r.AverageROI = roiSum[id] / float64(r.SponsorshipCount)
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TotalInvestment > out[j].TotalInvestment
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SponsorROIRow is one sponsor's entry in the ROI analysis: investment,
// derived revenue and the ROI spread across its paid sponsorships.
type SponsorROIRow struct {
	SponsorID        uint64  `json:"sponsor_id"`
	Name             string  `json:"sponsor_name"`
	Industry         string  `json:"industry"`
	TotalInvestment  float64 `json:"total_investment"`
	TotalRevenue     float64 `json:"total_revenue"`
	SponsorshipCount int     `json:"sponsorship_count"`
	AverageROI       float64 `json:"average_roi"`
	MinROI           float64 `json:"minimum_roi"`
	MaxROI           float64 `json:"maximum_roi"`
	NetProfit        float64 `json:"net_profit"`
}

// AnalyzeSponsorROIs computes one SponsorROIRow per sponsor holding paid
// sponsorships, sorted non-increasing by investment. Revenue is derived
// from the average recorded ROI: investment * (1 + avg/100).
func AnalyzeSponsorROIs(ships []model.Sponsorship, sponsors []model.Sponsor) []SponsorROIRow {
	byID := make(map[uint64]model.Sponsor, len(sponsors))
	for _, s := range sponsors {
		byID[s.ID] = s
	}

	acc := make(map[uint64]*SponsorROIRow)
	roiSum := make(map[uint64]float64)
	for _, sh := range ships {
		if sh.Status != model.StatusPaid {
			continue
		}
		r := acc[sh.SponsorID]
		if r == nil {
			sp := byID[sh.SponsorID]
			r = &SponsorROIRow{
				SponsorID: sh.SponsorID,
				Name:      sp.Name,
				Industry:  sp.Industry,
				MinROI:    sh.ROI,
				MaxROI:    sh.ROI,
			}
			acc[sh.SponsorID] = r
		}
		r.TotalInvestment += sh.Amount
		r.SponsorshipCount++
		roiSum[sh.SponsorID] += sh.ROI
		if sh.ROI < r.MinROI {
			r.MinROI = sh.ROI
		}
		if sh.ROI > r.MaxROI {
			r.MaxROI = sh.ROI
		}
	}

	out := make([]SponsorROIRow, 0, len(acc))
	for id, r := range acc {
		r.AverageROI = roiSum[id] / float64(r.SponsorshipCount)
		r.TotalRevenue = r.TotalInvestment * (1 + r.AverageROI/100)
		r.NetProfit = r.TotalRevenue - r.TotalInvestment
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TotalInvestment > out[j].TotalInvestment
	})
	return out
}

// IndustryStat aggregates ROI rows per industry bucket.
type IndustryStat struct {
	Sponsors        int     `json:"sponsors"`
	TotalInvestment float64 `json:"total_investment"`
	TotalRevenue    float64 `json:"total_revenue"`
	AvgROI          float64 `json:"avg_roi"`
}

// IndustryRollup buckets ROI rows by industry, mapping an empty industry to
// UnknownIndustry so no sponsor is dropped. The bucket ROI is recomputed
// from the summed investment and revenue, not averaged across rows, so
// large sponsors weigh in proportionally.
func IndustryRollup(rows []SponsorROIRow) map[string]IndustryStat {
	out := make(map[string]IndustryStat)
	for _, r := range rows {
		industry := r.Industry
		if industry == "" {
			industry = UnknownIndustry
		}
		s := out[industry]
		s.Sponsors++
		s.TotalInvestment += r.TotalInvestment
		s.TotalRevenue += r.TotalRevenue
		out[industry] = s
	}
	for industry, s := range out {
		s.AvgROI = ROIPercent(s.TotalRevenue, s.TotalInvestment)
		out[industry] = s
	}
	return out
}
