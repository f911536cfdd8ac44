package repository

import (
	"fmt"
	"os"

	"panelforecast/internal/domain"

	"github.com/gocarina/gocsv"
)

// DateListRepository reads the inference date list: the distinct
// date_id values of the test table, in first-appearance order.
type DateListRepository interface {
	Load(path string) ([]domain.DateID, error)
}

func NewDateListRepository() DateListRepository {
	return dateListRepositoryHandler{}
}

type dateListRepositoryHandler struct{}

type dateListRow struct {
	DateID int `csv:"date_id"`
}

func (h dateListRepositoryHandler) Load(path string) ([]domain.DateID, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open date list %s: %w", path, err)
	}
	defer f.Close()

	rows := []dateListRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse date list %s: %w", path, err)
	}

	seen := map[domain.DateID]struct{}{}
	dates := []domain.DateID{}
	for _, row := range rows {
		d := domain.DateID(row.DateID)
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	return dates, nil
}
