package sim

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/domain"
)

func TestRollOnePath_PipelineArrival(t *testing.T) {
	// Zero forecast means zero realized demand, so the trajectory is fully
	// determined by order placement and arrival.
	series := &demandSeries{values: constantSeries(0, 5), initialOnHand: 0}
	pol := policy{orderUpTo: 50}
	params := domain.SimParams{
		HorizonWeeks:      5,
		LeadTimeWeeks:     2,
		ReviewPeriodWeeks: 1,
		NumSimulations:    1,
	}

	result := rollOnePath(series, pol, params, rand.New(rand.NewPCG(42, 0)))

	want := []float64{0, 0, 50, 50, 50}
	for i, w := range want {
		if result.trajectory[i] != w {
			t.Errorf("week %d: on-hand %v, want %v", i, result.trajectory[i], w)
		}
	}
	if result.firstOrderQty != 50 {
		t.Errorf("firstOrderQty = %v, want 50", result.firstOrderQty)
	}
	if result.stockout {
		t.Error("zero demand must not stock out")
	}
}

func TestRollOnePath_ReviewCadence(t *testing.T) {
	// Review every 3 weeks: the week-1 deficit is not reordered until week 3.
	series := &demandSeries{values: constantSeries(0, 7), initialOnHand: 0}
	pol := policy{orderUpTo: 30}
	params := domain.SimParams{
		HorizonWeeks:      7,
		LeadTimeWeeks:     1,
		ReviewPeriodWeeks: 3,
		NumSimulations:    1,
	}

	result := rollOnePath(series, pol, params, rand.New(rand.NewPCG(42, 0)))

	// Only the week-0 review places an order; later reviews see the
	// inventory position already at target.
	want := []float64{0, 30, 30, 30, 30, 30, 30}
	for i, w := range want {
		if result.trajectory[i] != w {
			t.Errorf("week %d: on-hand %v, want %v", i, result.trajectory[i], w)
		}
	}
}

func TestRollOnePath_StockoutFlagAndClamp(t *testing.T) {
	series := &demandSeries{values: constantSeries(50, 3), initialOnHand: 0}
	pol := policy{orderUpTo: 0}
	params := domain.SimParams{
		HorizonWeeks:      3,
		LeadTimeWeeks:     1,
		ReviewPeriodWeeks: 1,
		NumSimulations:    1,
	}

	result := rollOnePath(series, pol, params, rand.New(rand.NewPCG(42, 0)))

	if !result.stockout {
		t.Error("expected stockout with zero stock against 50/week demand")
	}
	for i, v := range result.trajectory {
		if v < 0 {
			t.Errorf("week %d: on-hand %v went negative", i, v)
		}
	}
}

func TestRollPaths_DeterministicAcrossWorkerCounts(t *testing.T) {
	series := &demandSeries{values: constantSeries(10, 12), initialOnHand: 80}
	params := domain.SimParams{
		HorizonWeeks:      12,
		LeadTimeWeeks:     2,
		ReviewPeriodWeeks: 1,
		ServiceLevel:      0.95,
		SafetyFactor:      0,
		NumSimulations:    200,
		Seed:              7,
	}
	pol := computePolicy(series.values, params)

	sequential, err := rollPaths(context.Background(), series, pol, params, 1)
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := rollPaths(context.Background(), series, pol, params, 8)
	if err != nil {
		t.Fatal(err)
	}

	for s := range sequential {
		if sequential[s].firstOrderQty != parallel[s].firstOrderQty {
			t.Fatalf("path %d firstOrderQty differs across worker counts", s)
		}
		if sequential[s].stockout != parallel[s].stockout {
			t.Fatalf("path %d stockout flag differs across worker counts", s)
		}
		for w := range sequential[s].trajectory {
			if sequential[s].trajectory[w] != parallel[s].trajectory[w] {
				t.Fatalf("path %d week %d differs across worker counts", s, w)
			}
		}
	}
}

func TestRollPaths_Cancellation(t *testing.T) {
	series := &demandSeries{values: constantSeries(10, 4), initialOnHand: 40}
	params := domain.SimParams{
		HorizonWeeks:      4,
		LeadTimeWeeks:     1,
		ReviewPeriodWeeks: 1,
		ServiceLevel:      0.95,
		NumSimulations:    10000,
	}
	pol := computePolicy(series.values, params)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rollPaths(ctx, series, pol, params, 4); err == nil {
		t.Error("expected error from cancelled context")
	}
}
