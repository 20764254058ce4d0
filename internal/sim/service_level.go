// backend-go/internal/sim/service_level.go
package sim

import "math"

// zTable maps common service levels to standard-normal quantiles. Kept as an
// ordered slice so nearest-match ties resolve to the lower level.
var zTable = []struct {
	level float64
	z     float64
}{
	{0.80, 0.842},
	{0.85, 1.036},
	{0.90, 1.282},
	{0.95, 1.645},
	{0.97, 1.881},
	{0.98, 2.054},
	{0.99, 2.326},
}

// zFromServiceLevel snaps the requested service level to the nearest table
// entry and returns its z-score.
func zFromServiceLevel(sl float64) float64 {
	best := zTable[0]
	bestDiff := math.Abs(zTable[0].level - sl)
	for _, entry := range zTable[1:] {
		diff := math.Abs(entry.level - sl)
		if diff < bestDiff {
			best = entry
			bestDiff = diff
		}
	}
	return best.z
}
