// Package model - Closed-form business models for the tutoring service.
// Every model is an immutable value built from a parameter snapshot.
// Methods are pure functions of their arguments and never mutate the model,
// so a model value may be shared freely between callers.
package model

// PricingParams are the tier settings of a PricingModel
type PricingParams struct {
	// Tier1Rate is the hourly rate up to and including Tier1Max hours
	Tier1Rate float64 `json:"tier1_rate"`

	// Tier1Max is the upper hour bound of tier 1
	Tier1Max float64 `json:"tier1_max"`

	// Tier2Rate is the hourly rate up to and including Tier2Max hours
	Tier2Rate float64 `json:"tier2_rate"`

	// Tier2Max is the upper hour bound of tier 2
	Tier2Max float64 `json:"tier2_max"`

	// Tier3Rate is the hourly rate above Tier2Max hours
	Tier3Rate float64 `json:"tier3_rate"`
}

// Tier identifies the pricing tier an hour count falls into
type Tier int

const (
	Tier1 Tier = iota + 1 // discounted package
	Tier2                 // bulk rate
	Tier3                 // subscription
)

// String returns the tier's package name
func (t Tier) String() string {
	switch t {
	case Tier1:
		return "Tier 1 (Discounted Package)"
	case Tier2:
		return "Tier 2 (Bulk Rate)"
	case Tier3:
		return "Tier 3 (Subscription)"
	default:
		return "unknown tier"
	}
}

// PricingModel bills a whole month of tutoring at the rate of the tier the
// hour count falls into. This is a tier-rate schedule, not a graduated one:
// the total cost jumps at each tier boundary.
type PricingModel struct {
	params PricingParams
}

// NewPricingModel creates a pricing model from a parameter snapshot
func NewPricingModel(params PricingParams) PricingModel {
	return PricingModel{params: params}
}

// Params returns the parameter snapshot
func (m PricingModel) Params() PricingParams {
	return m.params
}

// TierFor returns the tier that applies to the given hours
func (m PricingModel) TierFor(hours float64) Tier {
	switch {
	case hours <= m.params.Tier1Max:
		return Tier1
	case hours <= m.params.Tier2Max:
		return Tier2
	default:
		return Tier3
	}
}

// RateFor returns the hourly rate of the given tier
func (m PricingModel) RateFor(tier Tier) float64 {
	switch tier {
	case Tier1:
		return m.params.Tier1Rate
	case Tier2:
		return m.params.Tier2Rate
	default:
		return m.params.Tier3Rate
	}
}

// CalculateCost returns the monthly cost for hours of tutoring.
// hours must be positive; the result is undefined otherwise.
func (m PricingModel) CalculateCost(hours float64) float64 {
	return m.RateFor(m.TierFor(hours)) * hours
}

// EffectiveRate returns the average price per hour paid for hours
func (m PricingModel) EffectiveRate(hours float64) float64 {
	return m.CalculateCost(hours) / hours
}
