// Package domain models district-level MGNREGS (Mahatma Gandhi National
// Rural Employment Guarantee Scheme) progress statistics for Assam.
//
// # Data Source
//
// Records originate from the data.gov.in open data API, which republishes
// the ministry's district-wise monthly progress report. One record covers one
// district for one month of one financial year. Column names are taken
// verbatim from the upstream data dictionary, including the long-standing
// typo "percentage_payments_gererated_within_15_days".
//
// # Upstream Data Conventions
//
// Financial year:
//
//	April 1 to March 31, identified by its starting calendar year and
//	serialized as "YYYY-YYYY", e.g. FY base 2024 -> "2024-2025".
//	January-March records belong to the financial year that started the
//	previous April.
//
// Month labels:
//
//	Irregular English abbreviations of three to five letters:
//	Jan, Feb, March, April, May, June, July, Aug, Sep, Oct, Nov, Dec.
//	Filters must match these labels exactly.
//
// Numeric values:
//
//	Any metric column may arrive as a JSON number, a numeric string, an
//	empty string, or be missing altogether. Normalization applies a
//	"number or zero" rule: whatever fails to parse becomes 0. The rule does
//	not distinguish missing data from a genuine zero, and it deliberately
//	does not clamp negative values; only unparseable input collapses.
//	See [NormalizeRecord].
//
// District codes:
//
//	Four-digit numeric strings, unique within the state. The catalog in
//	[NewAssamCatalog] carries the codes understood by the upstream
//	district_code filter.
//
// # Performance Score
//
// The composite 0-10 score is a locally derived figure, not an official
// government metric. Five sub-metrics are independently capped and summed
// with a 3/2/2/2/1 weighting; see [PerformanceScore] and [Breakdown].
//
// # Location Resolution
//
// Free-text geocoding output maps to canonical districts through a
// city-alias table plus a declaration-order substring scan of the catalog;
// see [ResolveDistrict]. The first match wins, which is a known imprecision
// accepted for the handful of ambiguous names involved.
package domain
