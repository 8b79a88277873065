package scenario

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Encode renders the scenario in the HCL layout Parse accepts
func Encode(s Scenario) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	root.SetAttributeValue("name", cty.StringVal(s.Name))
	root.AppendNewline()

	pricing := root.AppendNewBlock("pricing", nil).Body()
	setNumber(pricing, "tier1_rate", s.Pricing.Tier1Rate)
	setNumber(pricing, "tier1_max", s.Pricing.Tier1Max)
	setNumber(pricing, "tier2_rate", s.Pricing.Tier2Rate)
	setNumber(pricing, "tier2_max", s.Pricing.Tier2Max)
	setNumber(pricing, "tier3_rate", s.Pricing.Tier3Rate)
	setNumber(pricing, "hours", s.Query.Hours)
	root.AppendNewline()

	advertising := root.AppendNewBlock("advertising", nil).Body()
	setNumber(advertising, "max_reach", s.Advertising.MaxReach)
	setNumber(advertising, "growth_rate", s.Advertising.GrowthRate)
	setNumber(advertising, "cpm", s.Advertising.CPM)
	setNumber(advertising, "days_elapsed", s.Query.DaysElapsed)
	setNumber(advertising, "target_fraction", s.Query.TargetFraction)
	setNumber(advertising, "budget", s.Query.Budget)
	root.AppendNewline()

	profit := root.AppendNewBlock("profit", nil).Body()
	setNumber(profit, "fixed_costs", s.Profit.FixedCosts)
	setNumber(profit, "variable_cost", s.Profit.VariableCost)
	setNumber(profit, "scaling_factor", s.Profit.ScalingFactor)
	setNumber(profit, "avg_revenue_per_student", s.Profit.AvgRevenuePerStudent)
	setNumber(profit, "students", s.Query.Students)
	root.AppendNewline()

	seasonality := root.AppendNewBlock("seasonality", nil).Body()
	setNumber(seasonality, "base_enrollment", s.Seasonality.BaseEnrollment)
	setNumber(seasonality, "amplitude1", s.Seasonality.Amplitude1)
	setNumber(seasonality, "amplitude2", s.Seasonality.Amplitude2)
	setNumber(seasonality, "phase1", s.Seasonality.Phase1)
	setNumber(seasonality, "phase2", s.Seasonality.Phase2)
	seasonality.SetAttributeValue("month", cty.NumberIntVal(int64(s.Query.Month)))

	return f.Bytes()
}

func setNumber(body *hclwrite.Body, name string, v float64) {
	body.SetAttributeValue(name, cty.NumberFloatVal(v))
}
