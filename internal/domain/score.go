package domain

import "math"

// ScoreBreakdown holds the five weighted sub-scores that make up the
// composite performance score. Each sub-score is already clamped to its cap.
type ScoreBreakdown struct {
	EmploymentCoverage float64 `json:"employment_coverage"` // 0-3
	AverageWorkDays    float64 `json:"average_work_days"`   // 0-2
	PaymentTimeliness  float64 `json:"payment_timeliness"`  // 0-2
	WorkCompletion     float64 `json:"work_completion"`     // 0-2
	WomenParticipation float64 `json:"women_participation"` // 0-1
}

// Total sums the sub-scores without rounding.
func (b ScoreBreakdown) Total() float64 {
	return b.EmploymentCoverage + b.AverageWorkDays + b.PaymentTimeliness +
		b.WorkCompletion + b.WomenParticipation
}

// Breakdown computes the five sub-scores for a record. Denominators floor at
// 1 so a zero record scores 0 rather than dividing by zero, and each ratio is
// capped so no sub-metric can exceed its allocation even when the raw ratio
// runs past 100%.
func Breakdown(r DistrictRecord) ScoreBreakdown {
	return ScoreBreakdown{
		EmploymentCoverage: capped(r.TotalHouseholdsWorked/atLeastOne(r.TotalActiveJobCards)*3, 3),
		AverageWorkDays:    capped(r.AvgDaysPerHousehold/50*2, 2),
		PaymentTimeliness:  capped(r.PaymentsWithin15DaysPct/50*2, 2),
		WorkCompletion:     capped(r.CompletedWorks/atLeastOne(r.WorksTakenUp)*2, 2),
		WomenParticipation: capped(r.WomenPersondays/atLeastOne(r.TotalPersondays)*1, 1),
	}
}

// PerformanceScore computes the composite 0-10 performance score for a
// district record, rounded to one decimal place. The weighting is the
// canonical 3/2/2/2/1 allocation: employment coverage 3, average work-days 2,
// payment timeliness 2, work completion 2, women participation 1.
func PerformanceScore(r DistrictRecord) float64 {
	return math.Round(Breakdown(r).Total()*10) / 10
}

func capped(v, max float64) float64 {
	if v > max {
		return max
	}
	if v < 0 {
		return 0
	}
	return v
}

func atLeastOne(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}
