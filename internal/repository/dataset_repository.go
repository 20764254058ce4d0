// backend-go/internal/repository/dataset_repository.go
package repository

import (
	"context"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/dataset"
)

// DatasetRepository loads the full masked dataset into an immutable in-memory
// table. Implementations exist for the local CSV and for Postgres; the server
// calls LoadTable once at startup and treats the result as read-only.
type DatasetRepository interface {
	LoadTable(ctx context.Context) (*dataset.Table, error)
}

// CSVDatasetRepository reads the dataset from a local CSV file.
type CSVDatasetRepository struct {
	path string
}

func NewCSVDatasetRepository(path string) *CSVDatasetRepository {
	return &CSVDatasetRepository{path: path}
}

func (r *CSVDatasetRepository) LoadTable(ctx context.Context) (*dataset.Table, error) {
	return dataset.LoadCSV(r.path)
}
