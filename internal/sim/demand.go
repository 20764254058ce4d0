// backend-go/internal/sim/demand.go
package sim

import (
	"math"
	"sort"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/dataset"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/domain"
)

// demandSeries is the normalized weekly demand signal for one product,
// exactly horizon weeks long, plus the starting on-hand position.
type demandSeries struct {
	values        []float64
	initialOnHand float64
}

// buildDemandSeries extracts the forecast signal from the product rows,
// enforces the horizon length and determines initial on-hand inventory.
func buildDemandSeries(product *dataset.Table, horizon int) (*demandSeries, error) {
	// Temporal order first, when a date column exists.
	if dateCol, ok := product.Resolve(dataset.DateColumns); ok {
		product = product.SortedByDate(dateCol)
	}

	demandCol, ok := product.Resolve(dataset.DemandColumns)
	if !ok {
		return nil, &domain.MissingColumnError{
			Kind:       "demand/forecast",
			Candidates: dataset.DemandColumns,
		}
	}

	values := make([]float64, 0, product.Len())
	for i := 0; i < product.Len(); i++ {
		if v, ok := product.Row(i).Float(demandCol); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, &domain.EmptyDemandError{Column: demandCol}
	}

	// Edge-pad short histories with the last observation; truncate long ones.
	if len(values) < horizon {
		last := values[len(values)-1]
		for len(values) < horizon {
			values = append(values, last)
		}
	} else {
		values = values[:horizon]
	}

	series := &demandSeries{values: values}

	// Initial on-hand: first row's on-hand units when usable, otherwise a
	// generous 4x median default so a missing starting position does not
	// force an immediate stockout.
	if onhandCol, ok := product.Resolve(dataset.OnHandColumns); ok && product.Len() > 0 {
		if v, ok := product.Row(0).Float(onhandCol); ok {
			series.initialOnHand = v
			return series, nil
		}
	}
	series.initialOnHand = math.Max(0, 4*median(values))

	return series, nil
}

// median averages the two middle values for even-length input.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
