package domain

// FilterOutcome carries a filtered record set together with flags recording
// whether either filter had to fall back to the unfiltered set.
type FilterOutcome struct {
	Records []DistrictRecord
	// MonthFallback is true when a month filter was requested but matched
	// nothing, so the month filter was skipped.
	MonthFallback bool
	// YearFallback is the same for the financial-year filter.
	YearFallback bool
}

// FilterRecords applies the advisory month and financial-year filters to a
// record set. Each filter keeps its result only when it leaves at least one
// record; otherwise the input set passes through unchanged. The year filter
// runs on whatever set the month filter produced. Empty filter values mean
// "no filter".
func FilterRecords(records []DistrictRecord, monthName, finYear string) FilterOutcome {
	out := FilterOutcome{Records: records}

	if monthName != "" {
		matched := filterBy(out.Records, func(r DistrictRecord) bool { return r.Month == monthName })
		if len(matched) > 0 {
			out.Records = matched
		} else {
			out.MonthFallback = true
		}
	}

	if finYear != "" {
		matched := filterBy(out.Records, func(r DistrictRecord) bool { return r.FinYear == finYear })
		if len(matched) > 0 {
			out.Records = matched
		} else {
			out.YearFallback = true
		}
	}

	return out
}

func filterBy(records []DistrictRecord, keep func(DistrictRecord) bool) []DistrictRecord {
	var matched []DistrictRecord
	for _, r := range records {
		if keep(r) {
			matched = append(matched, r)
		}
	}
	return matched
}
