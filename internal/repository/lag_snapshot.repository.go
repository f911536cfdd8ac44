package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"panelforecast/internal/domain"
	"panelforecast/internal/util"
)

const lagSnapshotFilePattern = "test_labels_lag_%d.csv"

// LagSnapshotRepository loads the per-lag point-in-time release tables.
// A missing directory is fatal; a missing file for an individual lag is
// not - that lag simply contributes no table.
type LagSnapshotRepository interface {
	Load(dir string, lags []int) (map[int]domain.LagSnapshotTable, error)
}

func NewLagSnapshotRepository() LagSnapshotRepository {
	return lagSnapshotRepositoryHandler{}
}

type lagSnapshotRepositoryHandler struct{}

func (h lagSnapshotRepositoryHandler) Load(dir string, lags []int) (map[int]domain.LagSnapshotTable, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("missing lag snapshot directory %s: %w", dir, err)
	}

	tables := map[int]domain.LagSnapshotTable{}
	for _, lag := range lags {
		path := filepath.Join(dir, fmt.Sprintf(lagSnapshotFilePattern, lag))
		table, err := h.loadOne(path, lag)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		tables[lag] = table
	}
	return tables, nil
}

func (h lagSnapshotRepositoryHandler) loadOne(path string, lag int) (domain.LagSnapshotTable, error) {
	table := domain.LagSnapshotTable{Lag: lag}

	f, err := os.Open(path)
	if err != nil {
		return table, fmt.Errorf("failed to open lag snapshot %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return table, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	dateIdx := -1
	for i, c := range header {
		if c == dateColumn {
			dateIdx = i
			break
		}
	}
	if dateIdx == -1 {
		return table, fmt.Errorf("%s is missing the %s column", path, dateColumn)
	}

	table.Columns = header
	table.Rows = map[domain.DateID]map[string]float64{}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return table, fmt.Errorf("failed to read row of %s: %w", path, err)
		}
		date, err := strconv.Atoi(strings.TrimSpace(record[dateIdx]))
		if err != nil {
			return table, fmt.Errorf("invalid %s value %q in %s: %w", dateColumn, record[dateIdx], path, err)
		}
		row := map[string]float64{}
		for i, c := range header {
			if i == dateIdx {
				continue
			}
			v, err := util.ParseCell(record[i])
			if err != nil {
				return table, fmt.Errorf("invalid value %q for %s in %s: %w", record[i], c, path, err)
			}
			row[c] = v
		}
		table.Rows[domain.DateID(date)] = row
	}
	return table, nil
}
