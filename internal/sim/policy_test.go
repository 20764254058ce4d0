package sim

import (
	"math"
	"testing"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/domain"
)

func constantSeries(value float64, weeks int) []float64 {
	values := make([]float64, weeks)
	for i := range values {
		values[i] = value
	}
	return values
}

func TestComputePolicy_ReferenceScenario(t *testing.T) {
	// Constant 10/week over 26 weeks, lead 8, review 1, service 0.95.
	params := domain.SimParams{
		HorizonWeeks:      26,
		LeadTimeWeeks:     8,
		ReviewPeriodWeeks: 1,
		ServiceLevel:      0.95,
		SafetyFactor:      0,
		NumSimulations:    1,
	}

	pol := computePolicy(constantSeries(10, 26), params)

	if pol.meanWeekly != 10 {
		t.Errorf("meanWeekly = %v, want 10", pol.meanWeekly)
	}

	// sd over lead+review = sqrt(9) * sqrt(10) ~ 9.487
	wantSD := math.Sqrt(9) * math.Sqrt(10)
	wantOrderUpTo := 90 + 1.645*wantSD
	if math.Abs(pol.orderUpTo-wantOrderUpTo) > 0.01 {
		t.Errorf("orderUpTo = %v, want %v", pol.orderUpTo, wantOrderUpTo)
	}
	if math.Abs(pol.safetyStock-1.645*wantSD) > 0.01 {
		t.Errorf("safetyStock = %v, want %v", pol.safetyStock, 1.645*wantSD)
	}
}

func TestComputePolicy_ZeroDemandFloors(t *testing.T) {
	params := domain.SimParams{
		HorizonWeeks:      10,
		LeadTimeWeeks:     2,
		ReviewPeriodWeeks: 1,
		ServiceLevel:      0.95,
		SafetyFactor:      0,
		NumSimulations:    1,
	}

	pol := computePolicy(constantSeries(0, 10), params)

	// sqrt(max(0,1)) keeps the sd defined for degenerate demand.
	if pol.weeklySD != 1 {
		t.Errorf("weeklySD = %v, want 1", pol.weeklySD)
	}
	if math.IsNaN(pol.orderUpTo) || pol.orderUpTo <= 0 {
		t.Errorf("orderUpTo = %v, want positive safety buffer", pol.orderUpTo)
	}
}

func TestComputePolicy_ServiceLevelMonotonic(t *testing.T) {
	levels := []float64{0.80, 0.85, 0.90, 0.95, 0.97, 0.98, 0.99}

	prev := math.Inf(-1)
	for _, level := range levels {
		params := domain.SimParams{
			HorizonWeeks:      26,
			LeadTimeWeeks:     4,
			ReviewPeriodWeeks: 2,
			ServiceLevel:      level,
			SafetyFactor:      0,
			NumSimulations:    1,
		}
		pol := computePolicy(constantSeries(10, 26), params)
		if pol.orderUpTo < prev {
			t.Fatalf("orderUpTo decreased at service level %v: %v < %v", level, pol.orderUpTo, prev)
		}
		prev = pol.orderUpTo
	}
}

func TestComputePolicy_SafetyFactorAmplifies(t *testing.T) {
	base := domain.SimParams{
		HorizonWeeks:      26,
		LeadTimeWeeks:     4,
		ReviewPeriodWeeks: 1,
		ServiceLevel:      0.95,
		SafetyFactor:      0,
		NumSimulations:    1,
	}
	amplified := base
	amplified.SafetyFactor = 2

	polBase := computePolicy(constantSeries(10, 26), base)
	polAmp := computePolicy(constantSeries(10, 26), amplified)

	if polAmp.weeklySD != 3*polBase.weeklySD {
		t.Errorf("weeklySD with safety factor 2 = %v, want %v", polAmp.weeklySD, 3*polBase.weeklySD)
	}
	if polAmp.orderUpTo <= polBase.orderUpTo {
		t.Errorf("amplified orderUpTo %v should exceed base %v", polAmp.orderUpTo, polBase.orderUpTo)
	}
}

func TestComputePolicy_WindowClampedToHorizon(t *testing.T) {
	// lead+review far beyond the horizon sums all available weeks.
	params := domain.SimParams{
		HorizonWeeks:      4,
		LeadTimeWeeks:     50,
		ReviewPeriodWeeks: 1,
		ServiceLevel:      0.95,
		SafetyFactor:      0,
		NumSimulations:    1,
	}

	pol := computePolicy([]float64{10, 20, 30, 40}, params)

	wantMean := 100.0
	wantSD := math.Sqrt(51) * math.Sqrt(math.Max(25, 1))
	want := wantMean + 1.645*wantSD
	if math.Abs(pol.orderUpTo-want) > 0.01 {
		t.Errorf("orderUpTo = %v, want %v", pol.orderUpTo, want)
	}
}
