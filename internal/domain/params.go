// backend-go/internal/domain/params.go
package domain

// DefaultSeed keeps demo runs reproducible when the caller does not inject
// a seed of their own.
const DefaultSeed int64 = 42

// SimParams is the immutable configuration for one simulation run. No
// component mutates it after construction; it is passed by value.
type SimParams struct {
	HorizonWeeks      int     `json:"horizon_weeks"`
	LeadTimeWeeks     int     `json:"lead_time_weeks"`
	ReviewPeriodWeeks int     `json:"review_period_weeks"`
	ServiceLevel      float64 `json:"service_level"`
	SafetyFactor      float64 `json:"safety_factor"`
	NumSimulations    int     `json:"num_simulations"`

	// Seed drives the pseudo-random demand draws. Zero means DefaultSeed.
	Seed int64 `json:"seed,omitempty"`
}

// EffectiveSeed resolves the zero value to the fixed demo seed.
func (p SimParams) EffectiveSeed() int64 {
	if p.Seed == 0 {
		return DefaultSeed
	}
	return p.Seed
}

// WithDefaults fills zero-valued knobs from d. A zero knob is read as
// "not provided", the same convention Seed already uses.
func (p SimParams) WithDefaults(d SimParams) SimParams {
	if p.HorizonWeeks == 0 {
		p.HorizonWeeks = d.HorizonWeeks
	}
	if p.LeadTimeWeeks == 0 {
		p.LeadTimeWeeks = d.LeadTimeWeeks
	}
	if p.ReviewPeriodWeeks == 0 {
		p.ReviewPeriodWeeks = d.ReviewPeriodWeeks
	}
	if p.ServiceLevel == 0 {
		p.ServiceLevel = d.ServiceLevel
	}
	if p.SafetyFactor == 0 {
		p.SafetyFactor = d.SafetyFactor
	}
	if p.NumSimulations == 0 {
		p.NumSimulations = d.NumSimulations
	}
	if p.Seed == 0 {
		p.Seed = d.Seed
	}
	return p
}

// Validate checks every field constraint and reports the first violation.
func (p SimParams) Validate() error {
	if p.HorizonWeeks < 1 {
		return &InvalidParameterError{Field: "horizon_weeks", Reason: "must be at least 1"}
	}
	if p.LeadTimeWeeks < 0 {
		return &InvalidParameterError{Field: "lead_time_weeks", Reason: "must not be negative"}
	}
	if p.ReviewPeriodWeeks < 1 {
		return &InvalidParameterError{Field: "review_period_weeks", Reason: "must be at least 1"}
	}
	if p.ServiceLevel <= 0 || p.ServiceLevel >= 1 {
		return &InvalidParameterError{Field: "service_level", Reason: "must be strictly between 0 and 1"}
	}
	if p.SafetyFactor < 0 {
		return &InvalidParameterError{Field: "safety_factor", Reason: "must not be negative"}
	}
	if p.NumSimulations < 1 {
		return &InvalidParameterError{Field: "num_simulations", Reason: "must be at least 1"}
	}
	return nil
}
