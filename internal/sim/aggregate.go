// backend-go/internal/sim/aggregate.go
package sim

import (
	"math"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/domain"
)

// aggregate reduces the simulated paths to the planner-facing result:
// the averaged trajectory, the stockout fraction, the static weeks-of-cover
// ratio and the median week-0 order as the PO recommendation.
func aggregate(series *demandSeries, pol policy, paths []pathResult) *domain.SimResult {
	horizon := len(series.values)
	numPaths := float64(len(paths))

	table := make([]domain.SimTableRow, horizon)
	for t := 0; t < horizon; t++ {
		var sum float64
		for _, p := range paths {
			sum += p.trajectory[t]
		}
		table[t] = domain.SimTableRow{
			Week:           t + 1,
			AvgOnHand:      sum / numPaths,
			ForecastDemand: series.values[t],
		}
	}

	var stockouts int
	firstOrders := make([]float64, len(paths))
	for i, p := range paths {
		if p.stockout {
			stockouts++
		}
		firstOrders[i] = p.firstOrderQty
	}

	return &domain.SimResult{
		RecommendedPOQty: median(firstOrders),
		WeeksOfCover:     series.initialOnHand / math.Max(pol.meanWeekly, 1),
		StockoutRisk:     float64(stockouts) / numPaths,
		Policy: domain.PolicyLevels{
			MeanWeekly:   pol.meanWeekly,
			WeeklySD:     pol.weeklySD,
			ZScore:       pol.z,
			SafetyStock:  pol.safetyStock,
			ReorderPoint: pol.reorderPoint,
			OrderUpTo:    pol.orderUpTo,
		},
		SimTable: table,
	}
}
