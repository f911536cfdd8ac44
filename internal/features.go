package internal

import (
	"panelforecast/internal/domain"
)

// MinTrainableRows is the minimum number of lag-complete rows a target
// needs before it is worth fitting a model.
const MinTrainableRows = 20

// LagFeatures is the supervised table for one target: one row per date
// that has the label and every lag feature, ascending date order.
type LagFeatures struct {
	Dates []domain.DateID
	X     [][]float64
	Y     []float64
}

// BuildLagFeatures shifts the series by each configured lag in the
// DateID domain: the feature for lag l on date d is the value dated d-l.
// Rows missing the label or any lag feature are dropped entirely.
func BuildLagFeatures(series domain.TargetSeries, lags []int) LagFeatures {
	out := LagFeatures{}
	for _, d := range series.Dates {
		label, ok := series.Values[d]
		if !ok {
			continue
		}
		row := make([]float64, len(lags))
		complete := true
		for i, lag := range lags {
			v, ok := series.Values[d-domain.DateID(lag)]
			if !ok {
				complete = false
				break
			}
			row[i] = v
		}
		if !complete {
			continue
		}
		out.Dates = append(out.Dates, d)
		out.X = append(out.X, row)
		out.Y = append(out.Y, label)
	}
	return out
}
