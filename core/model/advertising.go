package model

import "math"

// AdvertisingParams configure the reach curve of a campaign
type AdvertisingParams struct {
	// MaxReach is the saturation level of the audience
	MaxReach float64 `json:"max_reach"`

	// GrowthRate is the exponential rate constant k, per day
	GrowthRate float64 `json:"growth_rate"`

	// CPM is the cost per 1000 people reached
	CPM float64 `json:"cpm"`
}

// AdvertisingModel describes reach as a saturating exponential
// R(t) = MaxReach * (1 - e^(-k*t)) with a linear cost per reach.
type AdvertisingModel struct {
	params AdvertisingParams
}

// NewAdvertisingModel creates an advertising model from a parameter snapshot
func NewAdvertisingModel(params AdvertisingParams) AdvertisingModel {
	return AdvertisingModel{params: params}
}

// Params returns the parameter snapshot
func (m AdvertisingModel) Params() AdvertisingParams {
	return m.params
}

// CalculateReach returns the number of people reached after days
func (m AdvertisingModel) CalculateReach(days float64) float64 {
	// -Expm1(x) == 1 - e^x, precise for small growth*days
	return m.params.MaxReach * -math.Expm1(-m.params.GrowthRate*days)
}

// CalculateCost returns the spend needed for the given reach
func (m AdvertisingModel) CalculateCost(reach float64) float64 {
	return reach / 1000 * m.params.CPM
}

// DaysToReachFraction returns the days until reach equals p*MaxReach.
// The curve never reaches its asymptote, so p >= 1 yields +Inf.
// p <= 0 is met at day zero.
func (m AdvertisingModel) DaysToReachFraction(p float64) float64 {
	if p >= 1 {
		return math.Inf(1)
	}
	if p <= 0 {
		return 0
	}
	return -math.Log1p(-p) / m.params.GrowthRate
}

// ReachForBudget returns how many people a budget can buy at the model's CPM
func (m AdvertisingModel) ReachForBudget(budget float64) float64 {
	return budget / m.params.CPM * 1000
}
