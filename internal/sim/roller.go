// backend-go/internal/sim/roller.go
package sim

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/domain"
	"golang.org/x/sync/errgroup"
)

// pathResult is one simulated inventory realization: the weekly post-clamp
// on-hand trajectory, whether the path ever ran out, and the order placed at
// the week-0 review.
type pathResult struct {
	trajectory    []float64
	stockout      bool
	firstOrderQty float64
}

// rollPaths simulates params.NumSimulations independent trajectories under
// the periodic-review, order-up-to policy. Paths only share the read-only
// demand series and policy; each gets its own RNG substream derived from the
// run seed, so the result set is identical for any worker count.
func rollPaths(ctx context.Context, series *demandSeries, pol policy, params domain.SimParams, workers int) ([]pathResult, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]pathResult, params.NumSimulations)
	seed := uint64(params.EffectiveSeed())

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for s := 0; s < params.NumSimulations; s++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(seed, uint64(s)))
			results[s] = rollOnePath(series, pol, params, rng)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// rollOnePath runs the week-by-week loop for a single path:
// receive, realize demand, consume with lost-sales clamp, then review.
func rollOnePath(series *demandSeries, pol policy, params domain.SimParams, rng *rand.Rand) pathResult {
	horizon := params.HorizonWeeks
	lead := params.LeadTimeWeeks
	review := params.ReviewPeriodWeeks

	result := pathResult{trajectory: make([]float64, horizon)}

	onhand := series.initialOnHand
	// In-flight orders, arrival week -> quantity. Path-local, discarded when
	// the path completes.
	pipeline := make(map[int]float64)

	for t := 0; t < horizon; t++ {
		if qty, ok := pipeline[t]; ok {
			onhand += qty
			delete(pipeline, t)
		}

		demand := poissonDraw(rng, math.Max(series.values[t], 0))

		onhand -= demand
		if onhand < 0 {
			// Unmet demand is lost, not backordered.
			result.stockout = true
			onhand = 0
		}

		// Review at week 0 and every review period thereafter.
		if t%review == 0 {
			position := onhand
			for _, qty := range pipeline {
				position += qty
			}
			qty := math.Max(0, pol.orderUpTo-position)

			if arrival := t + lead; qty > 0 && arrival < horizon {
				pipeline[arrival] += qty
			}
			if t == 0 {
				result.firstOrderQty = qty
			}
		}

		result.trajectory[t] = onhand
	}

	return result
}
