package domain

import (
	"math"
	"sort"
)

// DateID is the integer ordinal identifying one trading day. Ordering is
// the only temporal semantic - consecutive ids are not guaranteed to be
// consecutive calendar days.
type DateID int

// Panel is a wide table: one row per DateID, one column per target.
// Missing cells are simply absent from Cells; a stored value is always
// finite unless the loader chose to keep NaN markers.
type Panel struct {
	Dates   []DateID
	Columns []string
	Cells   map[DateID]map[string]float64
}

func NewPanel(columns []string) *Panel {
	return &Panel{
		Columns: columns,
		Cells:   map[DateID]map[string]float64{},
	}
}

// AddRow appends a row for the given date. Re-adding a date overwrites
// its previous cells but does not duplicate the date entry.
func (p *Panel) AddRow(date DateID, values map[string]float64) {
	if _, ok := p.Cells[date]; !ok {
		p.Dates = append(p.Dates, date)
	}
	p.Cells[date] = values
}

// Value returns the cell for (date, column) and whether it is present
// and finite.
func (p *Panel) Value(date DateID, column string) (float64, bool) {
	row, ok := p.Cells[date]
	if !ok {
		return 0, false
	}
	v, ok := row[column]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// SortDates orders the row index ascending. Loaders call this once after
// ingest so downstream code can rely on ascending iteration.
func (p *Panel) SortDates() {
	sort.Slice(p.Dates, func(i, j int) bool { return p.Dates[i] < p.Dates[j] })
}

// Series extracts one column as a sparse per-date series, preserving the
// panel's date order.
func (p *Panel) Series(column string) TargetSeries {
	s := TargetSeries{
		Dates:  p.Dates,
		Values: map[DateID]float64{},
	}
	for _, d := range p.Dates {
		if v, ok := p.Value(d, column); ok {
			s.Values[d] = v
		}
	}
	return s
}

// TargetSeries is one target's history: the full date index plus the
// subset of dates that actually carry a value.
type TargetSeries struct {
	Dates  []DateID
	Values map[DateID]float64
}
