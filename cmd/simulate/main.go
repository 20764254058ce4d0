// backend-go/cmd/simulate/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/dataset"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/domain"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/service"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/sim"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "simulate",
		Usage: "Run one inventory/PO simulation against a masked dataset CSV",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "csv",
				Usage:   "Path to the masked dataset CSV",
				Value:   "./data/masked_merged_sample.csv",
				EnvVars: []string{"DATASET_CSV_PATH"},
			},
			&cli.StringFlag{
				Name:     "asin",
				Usage:    "Product identifier to simulate",
				Required: true,
			},
			&cli.IntFlag{Name: "horizon", Usage: "Horizon in weeks", Value: 26},
			&cli.IntFlag{Name: "lead-time", Usage: "Lead time in weeks", Value: 8},
			&cli.IntFlag{Name: "review-period", Usage: "Review period in weeks", Value: 1},
			&cli.Float64Flag{Name: "service-level", Usage: "Target service level (0-1)", Value: 0.95},
			&cli.Float64Flag{Name: "safety-factor", Usage: "Demand uncertainty multiplier", Value: 0},
			&cli.IntFlag{Name: "sims", Usage: "Number of Monte Carlo paths", Value: 1000},
			&cli.Int64Flag{Name: "seed", Usage: "Random seed (0 uses the fixed demo seed)", Value: 0},
			&cli.IntFlag{Name: "workers", Usage: "Parallel path workers (0 = one per CPU)", Value: 0},
			&cli.BoolFlag{Name: "table", Usage: "Print the per-week average trajectory", Value: false},
		},
		Action: runSimulation,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runSimulation(c *cli.Context) error {
	table, err := dataset.LoadCSV(c.String("csv"))
	if err != nil {
		return err
	}

	engine := sim.NewEngine(c.Int("workers"))
	simService, err := service.NewSimService(table, engine, nil)
	if err != nil {
		return err
	}

	params := domain.SimParams{
		HorizonWeeks:      c.Int("horizon"),
		LeadTimeWeeks:     c.Int("lead-time"),
		ReviewPeriodWeeks: c.Int("review-period"),
		ServiceLevel:      c.Float64("service-level"),
		SafetyFactor:      c.Float64("safety-factor"),
		NumSimulations:    c.Int("sims"),
		Seed:              c.Int64("seed"),
	}

	result, err := simService.Simulate(c.Context, c.String("asin"), params)
	if err != nil {
		return err
	}

	fmt.Printf("Recommended PO qty: %.0f\n", result.RecommendedPOQty)
	fmt.Printf("Weeks of cover:     %.1f\n", result.WeeksOfCover)
	fmt.Printf("Stockout risk:      %.1f%%\n", result.StockoutRisk*100)
	fmt.Printf("Order-up-to level:  %.1f (z=%.3f, safety stock %.1f)\n",
		result.Policy.OrderUpTo, result.Policy.ZScore, result.Policy.SafetyStock)

	if c.Bool("table") {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "week\tavg_onhand\tforecast_demand")
		for _, row := range result.SimTable {
			fmt.Fprintf(w, "%d\t%.1f\t%.1f\n", row.Week, row.AvgOnHand, row.ForecastDemand)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	return nil
}
