package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// RawRecord is one upstream record as returned by the open data API. Field
// values arrive untyped: the same column may be a JSON number in one response
// and a string (or missing entirely) in the next.
type RawRecord map[string]any

// DistrictRecord is the normalized shape of one district × month × financial
// year row. JSON tags preserve the upstream column names, typos included,
// because the presentation layer keys off them.
type DistrictRecord struct {
	DistrictCode string `json:"district_code"`
	DistrictName string `json:"district_name"`
	StateCode    string `json:"state_code,omitempty"`
	StateName    string `json:"state_name,omitempty"`
	FinYear      string `json:"fin_year"`
	Month        string `json:"month"`

	TotalHouseholdsWorked      float64 `json:"Total_Households_Worked"`
	TotalIndividualsWorked     float64 `json:"Total_Individuals_Worked"`
	TotalActiveJobCards        float64 `json:"Total_No_of_Active_Job_Cards"`
	TotalJobCardsIssued        float64 `json:"Total_No_of_JobCards_issued"`
	TotalActiveWorkers         float64 `json:"Total_No_of_Active_Workers"`
	TotalWorkers               float64 `json:"Total_No_of_Workers"`
	AvgDaysPerHousehold        float64 `json:"Average_days_of_employment_provided_per_Household"`
	HouseholdsCompleted100Days float64 `json:"Total_No_of_HHs_completed_100_Days_of_Wage_Employment"`
	TotalPersondays            float64 `json:"Persondays_of_Central_Liability_so_far"`
	TotalExpenditure           float64 `json:"Total_Exp"`
	Wages                      float64 `json:"Wages"`
	MaterialSkilledWages       float64 `json:"Material_and_skilled_Wages"`
	AdminExpenditure           float64 `json:"Total_Adm_Expenditure"`
	AvgWageRate                float64 `json:"Average_Wage_rate_per_day_per_person"`
	ApprovedLabourBudget       float64 `json:"Approved_Labour_Budget"`
	WorksTakenUp               float64 `json:"Total_No_of_Works_Takenup"`
	CompletedWorks             float64 `json:"Number_of_Completed_Works"`
	OngoingWorks               float64 `json:"Number_of_Ongoing_Works"`
	PaymentsWithin15DaysPct    float64 `json:"percentage_payments_gererated_within_15_days"`
	GPsWithNilExpenditure      float64 `json:"Number_of_GPs_with_NIL_exp"`
	WomenPersondays            float64 `json:"Women_Persondays"`
	SCPersondays               float64 `json:"SC_persondays"`
	SCWorkerPct                float64 `json:"SC_workers_against_active_workers"`
	STPersondays               float64 `json:"ST_persondays"`
	STWorkerPct                float64 `json:"ST_workers_against_active_workers"`
	DifferentlyAbledWorkers    float64 `json:"Differently_abled_persons_worked"`
	CategoryBWorksPct          float64 `json:"percent_of_Category_B_Works"`
	AgricultureExpenditurePct  float64 `json:"percent_of_Expenditure_on_Agriculture_Allied_Works"`
	NRMExpenditurePct          float64 `json:"percent_of_NRM_Expenditure"`
}

// TrimmedRecord is the reduced field set returned by the bulk state-wide
// endpoint to keep response sizes down for the comparison views.
type TrimmedRecord struct {
	DistrictCode            string  `json:"district_code"`
	DistrictName            string  `json:"district_name"`
	TotalHouseholdsWorked   float64 `json:"Total_Households_Worked"`
	AvgDaysPerHousehold     float64 `json:"Average_days_of_employment_provided_per_Household"`
	PaymentsWithin15DaysPct float64 `json:"percentage_payments_gererated_within_15_days"`
	CompletedWorks          float64 `json:"Number_of_Completed_Works"`
	TotalExpenditure        float64 `json:"Total_Exp"`
	WomenPersondays         float64 `json:"Women_Persondays"`
	TotalPersondays         float64 `json:"Persondays_of_Central_Liability_so_far"`
}

// NormalizeRecord converts a raw upstream record into a DistrictRecord.
// Every numeric field follows the "number or zero" rule: missing, null, and
// non-numeric values collapse to 0. Negative values pass through unchanged:
// the fallback only catches values that fail to parse, it is not a clamp.
// String fields pass through as-is. The normalizer has no error path.
func NormalizeRecord(raw RawRecord) DistrictRecord {
	return DistrictRecord{
		DistrictCode: stringField(raw, "district_code"),
		DistrictName: stringField(raw, "district_name"),
		StateCode:    stringField(raw, "state_code"),
		StateName:    stringField(raw, "state_name"),
		FinYear:      stringField(raw, "fin_year"),
		Month:        stringField(raw, "month"),

		TotalHouseholdsWorked:      numField(raw, "Total_Households_Worked"),
		TotalIndividualsWorked:     numField(raw, "Total_Individuals_Worked"),
		TotalActiveJobCards:        numField(raw, "Total_No_of_Active_Job_Cards"),
		TotalJobCardsIssued:        numField(raw, "Total_No_of_JobCards_issued"),
		TotalActiveWorkers:         numField(raw, "Total_No_of_Active_Workers"),
		TotalWorkers:               numField(raw, "Total_No_of_Workers"),
		AvgDaysPerHousehold:        numField(raw, "Average_days_of_employment_provided_per_Household"),
		HouseholdsCompleted100Days: numField(raw, "Total_No_of_HHs_completed_100_Days_of_Wage_Employment"),
		TotalPersondays:            numField(raw, "Persondays_of_Central_Liability_so_far"),
		TotalExpenditure:           numField(raw, "Total_Exp"),
		Wages:                      numField(raw, "Wages"),
		MaterialSkilledWages:       numField(raw, "Material_and_skilled_Wages"),
		AdminExpenditure:           numField(raw, "Total_Adm_Expenditure"),
		AvgWageRate:                numField(raw, "Average_Wage_rate_per_day_per_person"),
		ApprovedLabourBudget:       numField(raw, "Approved_Labour_Budget"),
		WorksTakenUp:               numField(raw, "Total_No_of_Works_Takenup"),
		CompletedWorks:             numField(raw, "Number_of_Completed_Works"),
		OngoingWorks:               numField(raw, "Number_of_Ongoing_Works"),
		PaymentsWithin15DaysPct:    numField(raw, "percentage_payments_gererated_within_15_days"),
		GPsWithNilExpenditure:      numField(raw, "Number_of_GPs_with_NIL_exp"),
		WomenPersondays:            numField(raw, "Women_Persondays"),
		SCPersondays:               numField(raw, "SC_persondays"),
		SCWorkerPct:                numField(raw, "SC_workers_against_active_workers"),
		STPersondays:               numField(raw, "ST_persondays"),
		STWorkerPct:                numField(raw, "ST_workers_against_active_workers"),
		DifferentlyAbledWorkers:    numField(raw, "Differently_abled_persons_worked"),
		CategoryBWorksPct:          numField(raw, "percent_of_Category_B_Works"),
		AgricultureExpenditurePct:  numField(raw, "percent_of_Expenditure_on_Agriculture_Allied_Works"),
		NRMExpenditurePct:          numField(raw, "percent_of_NRM_Expenditure"),
	}
}

// TrimRecord projects a DistrictRecord onto the bulk response field subset.
func TrimRecord(r DistrictRecord) TrimmedRecord {
	return TrimmedRecord{
		DistrictCode:            r.DistrictCode,
		DistrictName:            r.DistrictName,
		TotalHouseholdsWorked:   r.TotalHouseholdsWorked,
		AvgDaysPerHousehold:     r.AvgDaysPerHousehold,
		PaymentsWithin15DaysPct: r.PaymentsWithin15DaysPct,
		CompletedWorks:          r.CompletedWorks,
		TotalExpenditure:        r.TotalExpenditure,
		WomenPersondays:         r.WomenPersondays,
		TotalPersondays:         r.TotalPersondays,
	}
}

// stringField reads a field as a string, returning "" for missing or
// non-string values.
func stringField(raw RawRecord, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return ""
}

// numField reads a field and coerces it to a float64, returning 0 when the
// value is absent or does not parse.
func numField(raw RawRecord, key string) float64 {
	return coerceNumber(raw[key])
}

// coerceNumber converts an untyped JSON value to a float64. Numbers and
// numeric strings parse; anything else (nil, objects, booleans, garbage
// strings, NaN) becomes 0. Negative numbers are preserved.
func coerceNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}
