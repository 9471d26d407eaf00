package domain

import "fmt"

// monthNames maps calendar month numbers to the upstream API's month labels.
// The labels are irregular (three to five letters) and must match exactly for
// the month filter to work.
var monthNames = map[int]string{
	1:  "Jan",
	2:  "Feb",
	3:  "March",
	4:  "April",
	5:  "May",
	6:  "June",
	7:  "July",
	8:  "Aug",
	9:  "Sep",
	10: "Oct",
	11: "Nov",
	12: "Dec",
}

// shortMonthNames are the display labels used for chart period axes.
var shortMonthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Period identifies one reporting period: a calendar month within an Indian
// financial year, where FinYearBase is the calendar year the financial year
// starts in (April).
type Period struct {
	Month       int `json:"month"`
	FinYearBase int `json:"fin_year_base"`
}

// MonthName returns the upstream label for a calendar month, or ok=false for
// anything outside 1-12.
func MonthName(month int) (string, bool) {
	name, ok := monthNames[month]
	return name, ok
}

// FinancialYearString formats a financial year as the upstream "YYYY-YYYY"
// string, e.g. FinancialYearString(2024) == "2024-2025". The base year is the
// calendar year the financial year begins in.
func FinancialYearString(base int) string {
	return fmt.Sprintf("%d-%d", base, base+1)
}

// FinYearString is the upstream financial-year string for the period.
func (p Period) FinYearString() string {
	return FinancialYearString(p.FinYearBase)
}

// CalendarYear returns the calendar year the period's month falls in.
// April through December fall in the base year, January through March in the
// following one.
func (p Period) CalendarYear() int {
	if p.Month >= 4 {
		return p.FinYearBase
	}
	return p.FinYearBase + 1
}

// Label renders a short display label like "Jun 24" for chart axes.
func (p Period) Label() string {
	if p.Month < 1 || p.Month > 12 {
		return ""
	}
	return fmt.Sprintf("%s %02d", shortMonthNames[p.Month-1], p.CalendarYear()%100)
}

// TrailingPeriods returns the count periods ending at (month, finYearBase),
// ordered oldest to newest for charting. The walk itself runs newest to
// oldest, one calendar month at a time; the financial-year base decrements
// when the walk crosses backward from April into March. Pure function.
func TrailingPeriods(month, finYearBase, count int) []Period {
	if count <= 0 {
		return nil
	}

	// Calendar year of the starting month: Jan-March belong to the year
	// after the financial-year base.
	m := month
	y := finYearBase
	if m < 4 {
		y = finYearBase + 1
	}

	periods := make([]Period, 0, count)
	for i := 0; i < count; i++ {
		fy := y
		if m < 4 {
			fy = y - 1
		}
		periods = append(periods, Period{Month: m, FinYearBase: fy})
		m--
		if m < 1 {
			m = 12
			y--
		}
	}

	// Reverse to oldest-first.
	for i, j := 0, len(periods)-1; i < j; i, j = i+1, j-1 {
		periods[i], periods[j] = periods[j], periods[i]
	}
	return periods
}
