// backend-go/cmd/seed/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/dataset"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

type ctxKey string

const dbKey ctxKey = "db"

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func initDB(c *cli.Context) error {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	c.Context = context.WithValue(c.Context, dbKey, db)
	return nil
}

func closeDB(c *cli.Context) error {
	if db, ok := c.Context.Value(dbKey).(*sql.DB); ok && db != nil {
		return db.Close()
	}
	return nil
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Seed the forecast dataset into Postgres",
		Commands: []*cli.Command{
			{
				Name:  "forecast",
				Usage: "Load a masked dataset CSV into the forecast_rows table",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{
						Name:    "csv",
						Usage:   "Path to the masked dataset CSV",
						Value:   "./data/masked_merged_sample.csv",
						EnvVars: []string{"DATASET_CSV_PATH"},
					},
					&cli.BoolFlag{
						Name:  "truncate",
						Usage: "Truncate forecast_rows before loading",
						Value: true,
					},
				},
				Before: initDB,
				After:  closeDB,
				Action: runForecastSeeder,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runForecastSeeder(c *cli.Context) error {
	db, ok := c.Context.Value(dbKey).(*sql.DB)
	if !ok || db == nil {
		return fmt.Errorf("database connection not initialized")
	}
	ctx := c.Context

	table, err := dataset.LoadCSV(c.String("csv"))
	if err != nil {
		return err
	}

	identityCol, ok := table.Resolve(dataset.IdentityColumns)
	if !ok {
		return fmt.Errorf("no identity column found in %s", c.String("csv"))
	}
	demandCol, _ := table.Resolve(dataset.DemandColumns)
	onhandCol, _ := table.Resolve(dataset.OnHandColumns)
	dateCol, _ := table.Resolve(dataset.DateColumns)
	divisionCol, _ := table.Resolve(dataset.DivisionColumns)
	taxonomyCol, _ := table.Resolve(dataset.TaxonomyColumns)

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS forecast_rows (
			id SERIAL PRIMARY KEY,
			asin TEXT NOT NULL,
			division TEXT,
			taxonomy TEXT,
			start_date_pred DATE,
			forecast DOUBLE PRECISION,
			onhand_units DOUBLE PRECISION
		)`); err != nil {
		return fmt.Errorf("failed to create forecast_rows: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if c.Bool("truncate") {
		if _, err := tx.ExecContext(ctx, "TRUNCATE forecast_rows"); err != nil {
			return fmt.Errorf("failed to truncate forecast_rows: %w", err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO forecast_rows (asin, division, taxonomy, start_date_pred, forecast, onhand_units)
		VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)

		asin := row[identityCol]
		if asin == "" {
			log.Printf("skipping row %d without %s", i, identityCol)
			continue
		}

		var date interface{}
		if dateCol != "" {
			if t, ok := row.Time(dateCol); ok {
				date = t
			}
		}

		if _, err := stmt.ExecContext(ctx,
			asin,
			nullIfEmpty(row[divisionCol]),
			nullIfEmpty(row[taxonomyCol]),
			date,
			nullableFloat(row, demandCol),
			nullableFloat(row, onhandCol),
		); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("Seeded %d forecast rows from %s", inserted, c.String("csv"))
	return nil
}

// nullIfEmpty returns NULL if the string is empty, otherwise returns the string
func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullableFloat(row dataset.Row, col string) sql.NullFloat64 {
	if col == "" {
		return sql.NullFloat64{}
	}
	if v, ok := row.Float(col); ok {
		return sql.NullFloat64{Float64: v, Valid: true}
	}
	return sql.NullFloat64{}
}
