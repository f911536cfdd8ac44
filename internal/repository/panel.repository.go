package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"panelforecast/internal/domain"
	"panelforecast/internal/util"
)

const dateColumn = "date_id"

// PanelRepository loads wide date-by-target tables (training labels,
// ground truth, prediction panels) from CSV.
type PanelRepository interface {
	Load(path string) (*domain.Panel, error)
}

func NewPanelRepository() PanelRepository {
	return panelRepositoryHandler{}
}

type panelRepositoryHandler struct{}

func (h panelRepositoryHandler) Load(path string) (*domain.Panel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open panel file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	dateIdx := -1
	columns := []string{}
	for i, c := range header {
		if c == dateColumn {
			dateIdx = i
			continue
		}
		columns = append(columns, c)
	}
	if dateIdx == -1 {
		return nil, fmt.Errorf("%s is missing the %s column", path, dateColumn)
	}

	panel := domain.NewPanel(columns)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row of %s: %w", path, err)
		}
		date, err := strconv.Atoi(strings.TrimSpace(record[dateIdx]))
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q in %s: %w", dateColumn, record[dateIdx], path, err)
		}
		values := map[string]float64{}
		for i, c := range header {
			if i == dateIdx {
				continue
			}
			v, err := util.ParseCell(record[i])
			if err != nil {
				return nil, fmt.Errorf("invalid value %q for %s in %s: %w", record[i], c, path, err)
			}
			if !math.IsNaN(v) {
				values[c] = v
			}
		}
		panel.AddRow(domain.DateID(date), values)
	}

	panel.SortDates()
	return panel, nil
}
