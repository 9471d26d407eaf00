package domain

import (
	"sort"
	"time"
)

// Totals are state-wide sums of the headline metrics.
type Totals struct {
	TotalHouseholdsWorked float64 `json:"Total_Households_Worked"`
	CompletedWorks        float64 `json:"Number_of_Completed_Works"`
	TotalExpenditure      float64 `json:"Total_Exp"`
	Wages                 float64 `json:"Wages"`
	WomenPersondays       float64 `json:"Women_Persondays"`
	TotalPersondays       float64 `json:"Persondays_of_Central_Liability_so_far"`
}

// DistrictScore pairs a district with its composite performance score for
// ranking views.
type DistrictScore struct {
	DistrictCode          string  `json:"district_code"`
	DistrictName          string  `json:"district_name"`
	TotalHouseholdsWorked float64 `json:"Total_Households_Worked"`
	Score                 float64 `json:"score"`
}

// Summary is the state-wide overview derived from one bulk record set.
type Summary struct {
	AsOf          time.Time       `json:"as_of"`
	Month         string          `json:"month,omitempty"`
	FinYear       string          `json:"fin_year,omitempty"`
	DistrictCount int             `json:"district_count"`
	Totals        Totals          `json:"totals"`
	TopDistricts  []DistrictScore `json:"top_districts"`
	Scores        []DistrictScore `json:"scores"`
}

// BuildSummary aggregates a bulk record set into the overview the dashboard
// cards consume: headline totals, the top districts by households worked, and
// every district's performance score sorted best-first.
func BuildSummary(records []DistrictRecord, monthName, finYear string, topN int) Summary {
	s := Summary{
		AsOf:          clock.Now(),
		Month:         monthName,
		FinYear:       finYear,
		DistrictCount: len(records),
		TopDistricts:  []DistrictScore{},
		Scores:        []DistrictScore{},
	}

	for _, r := range records {
		s.Totals.TotalHouseholdsWorked += r.TotalHouseholdsWorked
		s.Totals.CompletedWorks += r.CompletedWorks
		s.Totals.TotalExpenditure += r.TotalExpenditure
		s.Totals.Wages += r.Wages
		s.Totals.WomenPersondays += r.WomenPersondays
		s.Totals.TotalPersondays += r.TotalPersondays

		s.Scores = append(s.Scores, DistrictScore{
			DistrictCode:          r.DistrictCode,
			DistrictName:          r.DistrictName,
			TotalHouseholdsWorked: r.TotalHouseholdsWorked,
			Score:                 PerformanceScore(r),
		})
	}

	byHouseholds := make([]DistrictScore, len(s.Scores))
	copy(byHouseholds, s.Scores)
	sort.SliceStable(byHouseholds, func(i, j int) bool {
		return byHouseholds[i].TotalHouseholdsWorked > byHouseholds[j].TotalHouseholdsWorked
	})
	if topN > len(byHouseholds) {
		topN = len(byHouseholds)
	}
	if topN > 0 {
		s.TopDistricts = byHouseholds[:topN]
	}

	sort.SliceStable(s.Scores, func(i, j int) bool {
		return s.Scores[i].Score > s.Scores[j].Score
	})

	return s
}
