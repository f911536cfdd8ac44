package internal

import (
	"math"

	"panelforecast/internal/domain"
)

// metadata columns present in lag snapshot files that are not targets
var snapshotMetadataColumns = map[string]struct{}{
	"date_id":       {},
	"label_date_id": {},
}

// AssembleDailyLags collects, for one date, every lag's released target
// values into a lag -> target -> value lookup. A lag whose table has no
// row for the date contributes nothing; individually missing (NaN) cells
// are excluded rather than coerced. A date present in zero tables yields
// an empty lookup.
func AssembleDailyLags(date domain.DateID, tables map[int]domain.LagSnapshotTable) map[int]map[string]float64 {
	byLag := map[int]map[string]float64{}
	for lag, table := range tables {
		row, ok := table.Rows[date]
		if !ok {
			continue
		}
		values := map[string]float64{}
		for column, v := range row {
			if _, meta := snapshotMetadataColumns[column]; meta {
				continue
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			values[column] = v
		}
		if len(values) > 0 {
			byLag[lag] = values
		}
	}
	return byLag
}

// SnapshotTargetColumns returns the union of target columns across the
// given lag tables, visiting lags in the configured order and keeping
// first-seen column order. This union is the authoritative column set
// for submission rows.
func SnapshotTargetColumns(tables map[int]domain.LagSnapshotTable, lags []int) []string {
	seen := map[string]struct{}{}
	columns := []string{}
	for _, lag := range lags {
		table, ok := tables[lag]
		if !ok {
			continue
		}
		for _, column := range table.Columns {
			if _, meta := snapshotMetadataColumns[column]; meta {
				continue
			}
			if _, dup := seen[column]; dup {
				continue
			}
			seen[column] = struct{}{}
			columns = append(columns, column)
		}
	}
	return columns
}
