package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"panelforecast/internal/domain"
	"panelforecast/internal/util"
)

// SubmissionWriter streams prediction rows into a rectangular CSV:
// date_id first, then one column per target in the fixed order given at
// construction. Rows are appended as they arrive, so callers feed dates
// in ascending order and no full-table copy ever happens.
type SubmissionWriter struct {
	f            *os.File
	w            *csv.Writer
	columns      []string
	defaultValue float64
}

func NewSubmissionWriter(path string, columns []string, defaultValue float64) (*SubmissionWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create submission file %s: %w", path, err)
	}
	w := csv.NewWriter(f)

	header := append([]string{dateColumn}, columns...)
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write submission header: %w", err)
	}

	return &SubmissionWriter{
		f:            f,
		w:            w,
		columns:      columns,
		defaultValue: defaultValue,
	}, nil
}

// WriteRow emits one date's predictions. Targets absent from the map
// (untrainable targets, typically) get the configured default so the
// table stays rectangular.
func (s *SubmissionWriter) WriteRow(date domain.DateID, predictions map[string]float64) error {
	record := make([]string, 0, 1+len(s.columns))
	record = append(record, strconv.Itoa(int(date)))
	for _, c := range s.columns {
		v, ok := predictions[c]
		if !ok {
			v = s.defaultValue
		}
		record = append(record, util.FormatCell(v))
	}
	if err := s.w.Write(record); err != nil {
		return fmt.Errorf("failed to write submission row for date %d: %w", date, err)
	}
	return nil
}

func (s *SubmissionWriter) Close() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.f.Close()
		return fmt.Errorf("failed to flush submission: %w", err)
	}
	return s.f.Close()
}
