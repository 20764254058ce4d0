// backend-go/internal/sim/engine.go

// Package sim implements the inventory simulation engine: the translation of
// a periodic-review policy into an order-up-to level, and the Monte Carlo
// rollout that turns a weekly forecast into on-hand trajectories and a
// stockout risk estimate.
package sim

import (
	"context"
	"runtime"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/dataset"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/domain"
)

// Engine runs simulations. It holds no state across invocations; every
// Simulate call is a fresh, independent execution.
type Engine struct {
	workers int
}

// NewEngine creates an engine that rolls paths across the given number of
// workers. Zero or negative means one worker per CPU.
func NewEngine(workers int) *Engine {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Engine{workers: workers}
}

// Simulate runs one full simulation for the product rows: demand series,
// policy, rollout, aggregation. Errors are the typed domain errors; no
// partial result is ever returned.
func (e *Engine) Simulate(ctx context.Context, product *dataset.Table, params domain.SimParams) (*domain.SimResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	series, err := buildDemandSeries(product, params.HorizonWeeks)
	if err != nil {
		return nil, err
	}

	pol := computePolicy(series.values, params)

	paths, err := rollPaths(ctx, series, pol, params, e.workers)
	if err != nil {
		return nil, err
	}

	return aggregate(series, pol, paths), nil
}
