package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/dataset"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/domain"
)

// productTable builds weekly forecast rows with the on-hand reading on the
// first row, the shape a masked export delivers per product.
func productTable(onhand string, forecasts ...string) *dataset.Table {
	rows := make([]dataset.Row, len(forecasts))
	for i, f := range forecasts {
		row := dataset.Row{"asin": "ASIN_A", "forecast": f}
		if i == 0 {
			row["onhand_units"] = onhand
		}
		rows[i] = row
	}
	return dataset.NewTable([]string{"asin", "forecast", "onhand_units"}, rows)
}

func referenceParams() domain.SimParams {
	return domain.SimParams{
		HorizonWeeks:      26,
		LeadTimeWeeks:     8,
		ReviewPeriodWeeks: 1,
		ServiceLevel:      0.95,
		SafetyFactor:      0,
		NumSimulations:    1000,
	}
}

func constantForecasts(value string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = value
	}
	return out
}

func TestEngine_Simulate_ReferenceScenario(t *testing.T) {
	table := productTable("80", constantForecasts("10", 26)...)
	result, err := NewEngine(4).Simulate(context.Background(), table, referenceParams())
	if err != nil {
		t.Fatal(err)
	}

	// mean 10, z 1.645, order-up-to = 90 + 1.645*3*sqrt(10) = 105.6. The
	// week-0 review sees 80 on hand minus the week's realized demand, so the
	// recommended order centers on 105.6 - 80 + 10.
	if result.Policy.OrderUpTo < 104 || result.Policy.OrderUpTo > 107 {
		t.Errorf("order-up-to = %v, want about 105.6", result.Policy.OrderUpTo)
	}
	if result.RecommendedPOQty < 30.3 || result.RecommendedPOQty > 40.9 {
		t.Errorf("recommended PO qty = %v, want about 35.6", result.RecommendedPOQty)
	}
	if result.StockoutRisk < 0 || result.StockoutRisk > 1 {
		t.Errorf("stockout risk = %v out of [0,1]", result.StockoutRisk)
	}
	if result.WeeksOfCover != 8 {
		t.Errorf("weeks of cover = %v, want 8", result.WeeksOfCover)
	}
}

func TestEngine_Simulate_TableShape(t *testing.T) {
	table := productTable("80", constantForecasts("10", 26)...)
	result, err := NewEngine(2).Simulate(context.Background(), table, referenceParams())
	if err != nil {
		t.Fatal(err)
	}

	if len(result.SimTable) != 26 {
		t.Fatalf("sim table has %d rows, want 26", len(result.SimTable))
	}
	for i, row := range result.SimTable {
		if row.Week != i+1 {
			t.Errorf("row %d: week %d, want %d", i, row.Week, i+1)
		}
		if row.ForecastDemand != 10 {
			t.Errorf("row %d: forecast %v, want 10", i, row.ForecastDemand)
		}
		if row.AvgOnHand < 0 {
			t.Errorf("row %d: average on-hand %v is negative", i, row.AvgOnHand)
		}
	}
}

func TestEngine_Simulate_Deterministic(t *testing.T) {
	table := productTable("80", constantForecasts("10", 26)...)
	params := referenceParams()

	first, err := NewEngine(1).Simulate(context.Background(), table, params)
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewEngine(4).Simulate(context.Background(), table, params)
	if err != nil {
		t.Fatal(err)
	}

	if first.RecommendedPOQty != second.RecommendedPOQty {
		t.Errorf("recommended PO qty differs: %v vs %v", first.RecommendedPOQty, second.RecommendedPOQty)
	}
	if first.StockoutRisk != second.StockoutRisk {
		t.Errorf("stockout risk differs: %v vs %v", first.StockoutRisk, second.StockoutRisk)
	}
	for i := range first.SimTable {
		if first.SimTable[i].AvgOnHand != second.SimTable[i].AvgOnHand {
			t.Fatalf("week %d average on-hand differs: %v vs %v",
				i+1, first.SimTable[i].AvgOnHand, second.SimTable[i].AvgOnHand)
		}
	}
}

func TestEngine_Simulate_SeedChangesOutcome(t *testing.T) {
	table := productTable("80", constantForecasts("10", 26)...)
	params := referenceParams()

	base, err := NewEngine(2).Simulate(context.Background(), table, params)
	if err != nil {
		t.Fatal(err)
	}
	params.Seed = 1234
	reseeded, err := NewEngine(2).Simulate(context.Background(), table, params)
	if err != nil {
		t.Fatal(err)
	}

	same := base.StockoutRisk == reseeded.StockoutRisk
	for i := range base.SimTable {
		if base.SimTable[i].AvgOnHand != reseeded.SimTable[i].AvgOnHand {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical results")
	}
}

func TestEngine_Simulate_ZeroDemand(t *testing.T) {
	table := productTable("40", constantForecasts("0", 12)...)
	params := domain.SimParams{
		HorizonWeeks:      12,
		LeadTimeWeeks:     2,
		ReviewPeriodWeeks: 1,
		ServiceLevel:      0.90,
		NumSimulations:    200,
	}

	result, err := NewEngine(2).Simulate(context.Background(), table, params)
	if err != nil {
		t.Fatal(err)
	}

	if result.StockoutRisk != 0 {
		t.Errorf("stockout risk = %v with zero demand, want 0", result.StockoutRisk)
	}
	// Mean weekly demand is floored at 1 for the cover ratio.
	if result.WeeksOfCover != 40 {
		t.Errorf("weeks of cover = %v, want 40", result.WeeksOfCover)
	}
	if result.RecommendedPOQty < 0 {
		t.Errorf("recommended PO qty = %v is negative", result.RecommendedPOQty)
	}
}

func TestEngine_Simulate_MissingDemandColumn(t *testing.T) {
	table := dataset.NewTable([]string{"asin", "notes"}, []dataset.Row{
		{"asin": "ASIN_A", "notes": "no forecast here"},
	})

	result, err := NewEngine(1).Simulate(context.Background(), table, referenceParams())

	var missing *domain.MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
	if result != nil {
		t.Error("expected nil result on error")
	}
}

func TestEngine_Simulate_InvalidParams(t *testing.T) {
	table := productTable("80", constantForecasts("10", 4)...)
	params := referenceParams()
	params.ServiceLevel = 1.5

	result, err := NewEngine(1).Simulate(context.Background(), table, params)

	var invalid *domain.InvalidParameterError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidParameterError, got %v", err)
	}
	if invalid.Field != "service_level" {
		t.Errorf("invalid field = %q, want service_level", invalid.Field)
	}
	if result != nil {
		t.Error("expected nil result on error")
	}
}
