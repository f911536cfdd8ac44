package calculator

import (
	"math"
	"sort"

	"panelforecast/internal/domain"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// minimum finite (true, predicted) pairs a date needs to contribute a
// daily correlation, and minimum daily values the final ratio needs
const (
	minDailyPairs  = 3
	minDailyValues = 2
)

// ICSharpe scores a prediction panel against ground truth: per common
// date, the cross-sectional Spearman rank correlation over common
// columns; overall, the mean of those daily correlations divided by
// their sample standard deviation. Degenerate inputs - empty
// date/column intersection, fewer than two contributing dates, zero or
// non-finite dispersion - yield NaN, never an error: an undefined score
// is an answer, not a failure.
func ICSharpe(truth, predictions *domain.Panel) float64 {
	commonDates := intersectDates(truth.Dates, predictions)
	commonColumns := intersectColumns(truth.Columns, predictions.Columns)
	if len(commonDates) == 0 || len(commonColumns) == 0 {
		return math.NaN()
	}

	daily := []float64{}
	for _, date := range commonDates {
		t := []float64{}
		p := []float64{}
		for _, column := range commonColumns {
			tv, tok := truth.Value(date, column)
			pv, pok := predictions.Value(date, column)
			if !tok || !pok {
				continue
			}
			t = append(t, tv)
			p = append(p, pv)
		}
		if len(t) < minDailyPairs {
			continue
		}
		r := spearman(t, p)
		if math.IsNaN(r) {
			continue
		}
		daily = append(daily, r)
	}

	if len(daily) < minDailyValues {
		return math.NaN()
	}
	mean, err := stats.Mean(daily)
	if err != nil {
		return math.NaN()
	}
	stdev, err := stats.StandardDeviationSample(daily)
	if err != nil {
		return math.NaN()
	}
	if stdev == 0 || math.IsNaN(stdev) || math.IsInf(stdev, 0) {
		return math.NaN()
	}
	return mean / stdev
}

// spearman is the Pearson correlation of mid-ranked values. Ties share
// the average of the ranks they occupy.
func spearman(x, y []float64) float64 {
	return stat.Correlation(midRanks(x), midRanks(y), nil)
}

func midRanks(values []float64) []float64 {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return values[order[i]] < values[order[j]]
	})

	ranks := make([]float64, n)
	for start := 0; start < n; {
		end := start + 1
		for end < n && values[order[end]] == values[order[start]] {
			end++
		}
		// 1-based ranks; tied block gets the mid-rank
		mid := float64(start+end+1) / 2.0
		for k := start; k < end; k++ {
			ranks[order[k]] = mid
		}
		start = end
	}
	return ranks
}

func intersectDates(dates []domain.DateID, other *domain.Panel) []domain.DateID {
	present := make(map[domain.DateID]struct{}, len(other.Dates))
	for _, d := range other.Dates {
		present[d] = struct{}{}
	}
	common := []domain.DateID{}
	for _, d := range dates {
		if _, ok := present[d]; ok {
			common = append(common, d)
		}
	}
	return common
}

func intersectColumns(columns, other []string) []string {
	present := make(map[string]struct{}, len(other))
	for _, c := range other {
		present[c] = struct{}{}
	}
	common := []string{}
	for _, c := range columns {
		if _, ok := present[c]; ok {
			common = append(common, c)
		}
	}
	return common
}
