package util

import (
	"math"
	"strconv"
	"strings"
)

// ParseCell converts a raw CSV cell to a float. Empty cells and the
// usual NA markers become NaN so sparsity survives ingest; anything
// else must parse as a number.
func ParseCell(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case "", "na", "nan", "null":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(trimmed, 64)
}

// FormatCell renders a float for CSV output, mapping NaN back to an
// empty cell.
func FormatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
