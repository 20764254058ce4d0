// backend-go/internal/sim/policy.go
package sim

import (
	"math"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/domain"
)

// policy holds the order-up-to calculation for one run. All values derive
// from the demand series statistics and the parameter set.
type policy struct {
	meanWeekly   float64
	weeklySD     float64
	z            float64
	safetyStock  float64
	reorderPoint float64
	orderUpTo    float64
}

// computePolicy translates the demand statistics into the periodic-review
// order-up-to level.
//
// Weekly dispersion uses a Poisson-like proxy sqrt(mean), floored at 1 so a
// near-zero mean never produces a degenerate standard deviation. Demand
// variance is assumed to scale linearly with elapsed weeks.
func computePolicy(values []float64, params domain.SimParams) policy {
	horizon := len(values)

	meanWeekly := mean(values)
	baseSD := math.Sqrt(math.Max(meanWeekly, 1))
	weeklySD := baseSD * (1 + params.SafetyFactor)

	// Sum of forecast demand over the first w weeks, clamped to the horizon.
	meanOver := func(w int) float64 {
		if w > horizon {
			w = horizon
		}
		var sum float64
		for _, v := range values[:w] {
			sum += v
		}
		return sum
	}

	lead := params.LeadTimeWeeks
	review := params.ReviewPeriodWeeks
	z := zFromServiceLevel(params.ServiceLevel)

	sdLead := math.Sqrt(math.Max(float64(lead), 1)) * weeklySD
	sdLeadReview := math.Sqrt(math.Max(float64(lead+review), 1)) * weeklySD

	safetyStock := z * sdLeadReview

	return policy{
		meanWeekly:   meanWeekly,
		weeklySD:     weeklySD,
		z:            z,
		safetyStock:  safetyStock,
		reorderPoint: meanOver(lead) + z*sdLead,
		orderUpTo:    meanOver(lead+review) + safetyStock,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
