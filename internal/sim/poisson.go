// backend-go/internal/sim/poisson.go
package sim

import (
	"math"
	"math/rand/v2"
)

// poissonDraw samples a non-negative integer count from Poisson(lambda).
// Knuth's product method covers small rates; above the cutoff the normal
// approximation is close enough for weekly demand volumes and avoids the
// underflow of exp(-lambda).
func poissonDraw(rng *rand.Rand, lambda float64) float64 {
	if lambda <= 0 {
		return 0
	}

	const knuthCutoff = 30

	if lambda < knuthCutoff {
		limit := math.Exp(-lambda)
		k := 0
		p := 1.0
		for {
			p *= rng.Float64()
			if p <= limit {
				return float64(k)
			}
			k++
		}
	}

	draw := math.Round(lambda + math.Sqrt(lambda)*rng.NormFloat64())
	return math.Max(0, draw)
}
