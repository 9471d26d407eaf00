package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRecord(t *testing.T) {
	t.Run("realistic upstream record", func(t *testing.T) {
		payload := []byte(`{
			"district_code": "0407",
			"district_name": "KAMRUP",
			"state_code": "18",
			"state_name": "ASSAM",
			"fin_year": "2024-2025",
			"month": "June",
			"Total_Households_Worked": "45231",
			"Total_No_of_Active_Job_Cards": 98765,
			"Average_days_of_employment_provided_per_Household": "38.7",
			"percentage_payments_gererated_within_15_days": "92.45",
			"Total_No_of_Works_Takenup": 1200,
			"Number_of_Completed_Works": "860",
			"Women_Persondays": 510000,
			"Persondays_of_Central_Liability_so_far": "1200000",
			"Total_Exp": "15234.56"
		}`)
		var raw RawRecord
		require.NoError(t, json.Unmarshal(payload, &raw))

		rec := NormalizeRecord(raw)

		assert.Equal(t, "0407", rec.DistrictCode)
		assert.Equal(t, "KAMRUP", rec.DistrictName)
		assert.Equal(t, "ASSAM", rec.StateName)
		assert.Equal(t, "2024-2025", rec.FinYear)
		assert.Equal(t, "June", rec.Month)
		assert.Equal(t, 45231.0, rec.TotalHouseholdsWorked)
		assert.Equal(t, 98765.0, rec.TotalActiveJobCards)
		assert.Equal(t, 38.7, rec.AvgDaysPerHousehold)
		assert.Equal(t, 92.45, rec.PaymentsWithin15DaysPct)
		assert.Equal(t, 1200.0, rec.WorksTakenUp)
		assert.Equal(t, 860.0, rec.CompletedWorks)
		assert.Equal(t, 510000.0, rec.WomenPersondays)
		assert.Equal(t, 1200000.0, rec.TotalPersondays)
		assert.Equal(t, 15234.56, rec.TotalExpenditure)
	})

	t.Run("empty record normalizes to zeros", func(t *testing.T) {
		rec := NormalizeRecord(RawRecord{})

		assert.Empty(t, rec.DistrictCode)
		assert.Zero(t, rec.TotalHouseholdsWorked)
		assert.Zero(t, rec.TotalExpenditure)
		assert.Zero(t, rec.WomenPersondays)
	})

	t.Run("non-numeric expenditure collapses to zero", func(t *testing.T) {
		rec := NormalizeRecord(RawRecord{"Total_Exp": "abc"})
		assert.Equal(t, 0.0, rec.TotalExpenditure)
	})

	t.Run("negative values pass through", func(t *testing.T) {
		// The "or zero" fallback only catches values that fail to parse;
		// it is not a clamp. Negative upstream values survive normalization.
		rec := NormalizeRecord(RawRecord{
			"Total_Exp":               -5.0,
			"Total_Households_Worked": "-12",
		})
		assert.Equal(t, -5.0, rec.TotalExpenditure)
		assert.Equal(t, -12.0, rec.TotalHouseholdsWorked)
	})

	t.Run("non-string name fields become empty", func(t *testing.T) {
		rec := NormalizeRecord(RawRecord{"district_name": 42.0})
		assert.Empty(t, rec.DistrictName)
	})
}

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected float64
	}{
		{"json number", 12.5, 12.5},
		{"integer", 7, 7},
		{"numeric string", "123", 123},
		{"decimal string", "45.75", 45.75},
		{"negative number", -5.0, -5},
		{"negative string", "-5", -5},
		{"padded string", "  88 ", 88},
		{"empty string", "", 0},
		{"garbage string", "abc", 0},
		{"nil", nil, 0},
		{"boolean", true, 0},
		{"object", map[string]any{"a": 1}, 0},
		{"json.Number", json.Number("99.5"), 99.5},
		{"bad json.Number", json.Number("x"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, coerceNumber(tt.value))
		})
	}
}

func TestTrimRecord(t *testing.T) {
	rec := DistrictRecord{
		DistrictCode:            "0415",
		DistrictName:            "JORHAT",
		TotalHouseholdsWorked:   100,
		AvgDaysPerHousehold:     42,
		PaymentsWithin15DaysPct: 88.5,
		CompletedWorks:          12,
		TotalExpenditure:        5000,
		WomenPersondays:         300,
		TotalPersondays:         700,
		// Fields outside the trim subset must not leak through.
		TotalActiveJobCards: 99999,
	}

	trimmed := TrimRecord(rec)

	assert.Equal(t, "0415", trimmed.DistrictCode)
	assert.Equal(t, "JORHAT", trimmed.DistrictName)
	assert.Equal(t, 100.0, trimmed.TotalHouseholdsWorked)
	assert.Equal(t, 42.0, trimmed.AvgDaysPerHousehold)
	assert.Equal(t, 88.5, trimmed.PaymentsWithin15DaysPct)
	assert.Equal(t, 12.0, trimmed.CompletedWorks)
	assert.Equal(t, 5000.0, trimmed.TotalExpenditure)
	assert.Equal(t, 300.0, trimmed.WomenPersondays)
	assert.Equal(t, 700.0, trimmed.TotalPersondays)

	data, err := json.Marshal(trimmed)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Total_No_of_Active_Job_Cards")
}
