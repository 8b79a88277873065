// Package scenario - Parameter snapshots for the business models.
// A Scenario is acquired once (defaults, HCL file, CLI overrides), validated,
// and then used to build fresh model values. Models never see partial or
// mutating parameter state.
package scenario

import (
	"math"

	"tutoring-sim/core/model"
	"tutoring-sim/internal/errors"
)

// Query holds the "current" values a report is evaluated at
type Query struct {
	// Hours is the monthly tutoring hours to price
	Hours float64 `json:"hours"`

	// DaysElapsed is the campaign day to evaluate reach at
	DaysElapsed float64 `json:"days_elapsed"`

	// TargetFraction is the share of max reach to plan for
	TargetFraction float64 `json:"target_fraction"`

	// Budget is the advertising budget
	Budget float64 `json:"budget"`

	// Students is the current student count
	Students float64 `json:"students"`

	// Month is the current month, 1..12
	Month int `json:"month"`
}

// Scenario is an immutable snapshot of every model parameter
type Scenario struct {
	// Name labels the scenario in reports
	Name string `json:"name"`

	Pricing     model.PricingParams     `json:"pricing"`
	Advertising model.AdvertisingParams `json:"advertising"`
	Profit      model.ProfitParams      `json:"profit"`
	Seasonality model.SeasonalityParams `json:"seasonality"`
	Query       Query                   `json:"query"`
}

// Default returns the reference tutoring business
func Default() Scenario {
	return Scenario{
		Name: "default",
		Pricing: model.PricingParams{
			Tier1Rate: 30,
			Tier1Max:  5,
			Tier2Rate: 28,
			Tier2Max:  10,
			Tier3Rate: 25,
		},
		Advertising: model.AdvertisingParams{
			MaxReach:   5000,
			GrowthRate: 0.1,
			CPM:        5,
		},
		Profit: model.ProfitParams{
			FixedCosts:           2000,
			VariableCost:         50,
			ScalingFactor:        0.5,
			AvgRevenuePerStudent: 200,
		},
		Seasonality: model.SeasonalityParams{
			BaseEnrollment: 50,
			Amplitude1:     20,
			Amplitude2:     10,
		},
		Query: Query{
			Hours:          8,
			DaysElapsed:    7,
			TargetFraction: 0.8,
			Budget:         200,
			Students:       50,
			Month:          9,
		},
	}
}

// PricingModel builds the pricing model for this snapshot
func (s Scenario) PricingModel() model.PricingModel {
	return model.NewPricingModel(s.Pricing)
}

// AdvertisingModel builds the advertising model for this snapshot
func (s Scenario) AdvertisingModel() model.AdvertisingModel {
	return model.NewAdvertisingModel(s.Advertising)
}

// ProfitModel builds the profit model for this snapshot
func (s Scenario) ProfitModel() model.ProfitModel {
	return model.NewProfitModel(s.Profit)
}

// SeasonalityModel builds the seasonality model for this snapshot
func (s Scenario) SeasonalityModel() model.SeasonalityModel {
	return model.NewSeasonalityModel(s.Seasonality)
}

// Validate checks every parameter against its domain.
// The models themselves do not validate; callers do it here.
func (s Scenario) Validate() error {
	checks := []struct {
		field string
		ok    bool
		rule  string
	}{
		{"pricing.tier1_max", s.Pricing.Tier1Max > 0, "must be positive"},
		{"pricing.tier2_max", s.Pricing.Tier2Max > s.Pricing.Tier1Max, "must be greater than tier1_max"},
		{"pricing.tier1_rate", s.Pricing.Tier1Rate >= 0, "must not be negative"},
		{"pricing.tier2_rate", s.Pricing.Tier2Rate >= 0, "must not be negative"},
		{"pricing.tier3_rate", s.Pricing.Tier3Rate >= 0, "must not be negative"},
		{"pricing.hours", s.Query.Hours > 0, "must be positive"},

		{"advertising.max_reach", s.Advertising.MaxReach > 0, "must be positive"},
		{"advertising.growth_rate", s.Advertising.GrowthRate > 0, "must be positive"},
		{"advertising.cpm", s.Advertising.CPM > 0, "must be positive"},
		{"advertising.days_elapsed", s.Query.DaysElapsed >= 0, "must not be negative"},
		{"advertising.target_fraction", s.Query.TargetFraction >= 0 && s.Query.TargetFraction < 1, "must be in [0, 1)"},
		{"advertising.budget", s.Query.Budget >= 0, "must not be negative"},

		{"profit.fixed_costs", s.Profit.FixedCosts >= 0, "must not be negative"},
		{"profit.variable_cost", s.Profit.VariableCost >= 0, "must not be negative"},
		{"profit.scaling_factor", s.Profit.ScalingFactor >= 0, "must not be negative"},
		{"profit.avg_revenue_per_student", s.Profit.AvgRevenuePerStudent > 0, "must be positive"},
		{"profit.students", s.Query.Students >= 0, "must not be negative"},

		{"seasonality.month", s.Query.Month >= 1 && s.Query.Month <= model.MonthsPerYear, "must be between 1 and 12"},
	}

	for _, c := range checks {
		if !c.ok {
			return errors.Inputf("%s %s", c.field, c.rule).WithContext("field", c.field)
		}
	}

	return s.checkFinite()
}

func (s Scenario) checkFinite() error {
	values := []struct {
		field string
		v     float64
	}{
		{"pricing.tier1_rate", s.Pricing.Tier1Rate},
		{"pricing.tier2_rate", s.Pricing.Tier2Rate},
		{"pricing.tier3_rate", s.Pricing.Tier3Rate},
		{"pricing.tier2_max", s.Pricing.Tier2Max},
		{"pricing.hours", s.Query.Hours},
		{"advertising.max_reach", s.Advertising.MaxReach},
		{"advertising.growth_rate", s.Advertising.GrowthRate},
		{"advertising.cpm", s.Advertising.CPM},
		{"advertising.days_elapsed", s.Query.DaysElapsed},
		{"advertising.budget", s.Query.Budget},
		{"profit.fixed_costs", s.Profit.FixedCosts},
		{"profit.variable_cost", s.Profit.VariableCost},
		{"profit.scaling_factor", s.Profit.ScalingFactor},
		{"profit.avg_revenue", s.Profit.AvgRevenuePerStudent},
		{"profit.students", s.Query.Students},
		{"seasonality.base_enrollment", s.Seasonality.BaseEnrollment},
		{"seasonality.amplitude1", s.Seasonality.Amplitude1},
		{"seasonality.amplitude2", s.Seasonality.Amplitude2},
		{"seasonality.phase1", s.Seasonality.Phase1},
		{"seasonality.phase2", s.Seasonality.Phase2},
	}

	for _, f := range values {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errors.Inputf("%s must be finite", f.field).WithContext("field", f.field)
		}
	}
	return nil
}
