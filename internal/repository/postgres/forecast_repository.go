// backend-go/internal/repository/postgres/forecast_repository.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/dataset"
	"github.com/rs/zerolog/log"
)

// ForecastRepository reads the seeded forecast rows back into the in-memory
// dataset table. Columns mirror the masked CSV so the demand-column
// resolution works the same regardless of source.
type ForecastRepository struct {
	db *DB
}

func NewForecastRepository(db *DB) *ForecastRepository {
	return &ForecastRepository{db: db}
}

type forecastRow struct {
	ASIN        string          `db:"asin"`
	Division    sql.NullString  `db:"division"`
	Taxonomy    sql.NullString  `db:"taxonomy"`
	StartDate   sql.NullTime    `db:"start_date_pred"`
	Forecast    sql.NullFloat64 `db:"forecast"`
	OnHandUnits sql.NullFloat64 `db:"onhand_units"`
}

var forecastColumns = []string{
	"asin", "division", "taxonomy", "start_date_pred", "forecast", "onhand_units",
}

// LoadTable loads every forecast row ordered by product and date.
func (r *ForecastRepository) LoadTable(ctx context.Context) (*dataset.Table, error) {
	query := `
		SELECT asin, division, taxonomy, start_date_pred, forecast, onhand_units
		FROM forecast_rows
		ORDER BY asin, start_date_pred NULLS LAST, id`

	var dbRows []forecastRow
	if err := r.db.SelectContext(ctx, &dbRows, query); err != nil {
		return nil, fmt.Errorf("failed to load forecast rows: %w", err)
	}

	rows := make([]dataset.Row, 0, len(dbRows))
	for _, fr := range dbRows {
		row := dataset.Row{"asin": fr.ASIN}
		if fr.Division.Valid {
			row["division"] = fr.Division.String
		}
		if fr.Taxonomy.Valid {
			row["taxonomy"] = fr.Taxonomy.String
		}
		if fr.StartDate.Valid {
			row["start_date_pred"] = fr.StartDate.Time.Format("2006-01-02")
		}
		if fr.Forecast.Valid {
			row["forecast"] = fmt.Sprintf("%g", fr.Forecast.Float64)
		}
		if fr.OnHandUnits.Valid {
			row["onhand_units"] = fmt.Sprintf("%g", fr.OnHandUnits.Float64)
		}
		rows = append(rows, row)
	}

	log.Info().Int("rows", len(rows)).Msg("loaded forecast rows from postgres")

	return dataset.NewTable(forecastColumns, rows), nil
}
