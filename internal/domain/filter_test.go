package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecords(pairs ...[2]string) []DistrictRecord {
	out := make([]DistrictRecord, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, DistrictRecord{Month: p[0], FinYear: p[1]})
	}
	return out
}

func TestFilterRecords(t *testing.T) {
	t.Run("month filter narrows when it matches", func(t *testing.T) {
		records := makeRecords(
			[2]string{"June", "2024-2025"},
			[2]string{"May", "2024-2025"},
			[2]string{"June", "2023-2024"},
		)
		out := FilterRecords(records, "June", "")
		require.Len(t, out.Records, 2)
		assert.False(t, out.MonthFallback)
		for _, r := range out.Records {
			assert.Equal(t, "June", r.Month)
		}
	})

	t.Run("month filter falls back when nothing matches", func(t *testing.T) {
		records := make([]DistrictRecord, 10)
		for i := range records {
			records[i] = DistrictRecord{Month: "May", FinYear: "2024-2025"}
		}
		out := FilterRecords(records, "Dec", "")
		assert.Len(t, out.Records, 10)
		assert.True(t, out.MonthFallback)
	})

	t.Run("year filter runs on the month-filtered set", func(t *testing.T) {
		records := makeRecords(
			[2]string{"June", "2024-2025"},
			[2]string{"June", "2023-2024"},
			[2]string{"May", "2024-2025"},
		)
		out := FilterRecords(records, "June", "2023-2024")
		require.Len(t, out.Records, 1)
		assert.Equal(t, "2023-2024", out.Records[0].FinYear)
		assert.False(t, out.MonthFallback)
		assert.False(t, out.YearFallback)
	})

	t.Run("year filter falls back independently", func(t *testing.T) {
		records := makeRecords(
			[2]string{"June", "2024-2025"},
			[2]string{"June", "2023-2024"},
		)
		out := FilterRecords(records, "June", "1990-1991")
		assert.Len(t, out.Records, 2)
		assert.False(t, out.MonthFallback)
		assert.True(t, out.YearFallback)
	})

	t.Run("empty filters pass everything through", func(t *testing.T) {
		records := makeRecords([2]string{"June", "2024-2025"})
		out := FilterRecords(records, "", "")
		assert.Equal(t, records, out.Records)
		assert.False(t, out.MonthFallback)
		assert.False(t, out.YearFallback)
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		out := FilterRecords(nil, "June", "2024-2025")
		assert.Empty(t, out.Records)
	})
}
