package model

import "math"

// ProfitParams are the cost and revenue settings of a ProfitModel
type ProfitParams struct {
	// FixedCosts are monthly costs independent of student count
	FixedCosts float64 `json:"fixed_costs"`

	// VariableCost is the linear cost per student
	VariableCost float64 `json:"variable_cost"`

	// ScalingFactor is the quadratic cost per student squared
	ScalingFactor float64 `json:"scaling_factor"`

	// AvgRevenuePerStudent is the monthly revenue per student
	AvgRevenuePerStudent float64 `json:"avg_revenue_per_student"`
}

// ProfitModel relates monthly revenue, expenses and profit to student count:
//
//	R(s) = avg_revenue * s
//	E(s) = fixed + variable*s + scaling*s^2
//	P(s) = -scaling*s^2 + (avg_revenue - variable)*s - fixed
type ProfitModel struct {
	params ProfitParams
}

// NewProfitModel creates a profit model from a parameter snapshot
func NewProfitModel(params ProfitParams) ProfitModel {
	return ProfitModel{params: params}
}

// Params returns the parameter snapshot
func (m ProfitModel) Params() ProfitParams {
	return m.params
}

// CalculateRevenue returns monthly revenue for students
func (m ProfitModel) CalculateRevenue(students float64) float64 {
	return m.params.AvgRevenuePerStudent * students
}

// CalculateExpenses returns monthly expenses for students
func (m ProfitModel) CalculateExpenses(students float64) float64 {
	return m.params.FixedCosts + m.params.VariableCost*students + m.params.ScalingFactor*students*students
}

// CalculateProfit returns revenue minus expenses for students
func (m ProfitModel) CalculateProfit(students float64) float64 {
	return m.CalculateRevenue(students) - m.CalculateExpenses(students)
}

// coefficients returns a, b, c of P(s) = a*s^2 + b*s + c
func (m ProfitModel) coefficients() (a, b, c float64) {
	return -m.params.ScalingFactor, m.params.AvgRevenuePerStudent - m.params.VariableCost, -m.params.FixedCosts
}

// CalculateBreakEven returns the smallest positive student count where
// profit is zero. ok is false when profit never crosses zero for s > 0,
// which is a valid outcome rather than an error.
func (m ProfitModel) CalculateBreakEven() (students float64, ok bool) {
	a, b, c := m.coefficients()

	if a == 0 {
		if b == 0 {
			return 0, false
		}
		return positiveMin(-c / b)
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	// Citardauq form avoids cancellation when b^2 >> 4ac
	q := -0.5 * (b + math.Copysign(math.Sqrt(discriminant), b))
	if q == 0 {
		// b == 0 and c == 0: double root at zero
		return 0, false
	}
	return positiveMin(q/a, c/q)
}

// CalculateOptimalStudents returns the profit maximizing student count,
// clamped to zero. With no quadratic term profit is linear: a positive slope
// grows without bound and yields +Inf, otherwise zero students is best.
func (m ProfitModel) CalculateOptimalStudents() float64 {
	a, b, _ := m.coefficients()

	if a == 0 {
		if b > 0 {
			return math.Inf(1)
		}
		return 0
	}

	return math.Max(0, -b/(2*a))
}

// MaxProfit returns the profit at the optimal student count
func (m ProfitModel) MaxProfit() float64 {
	optimal := m.CalculateOptimalStudents()
	if math.IsInf(optimal, 1) {
		return math.Inf(1)
	}
	return m.CalculateProfit(optimal)
}

// positiveMin returns the smallest strictly positive root
func positiveMin(roots ...float64) (float64, bool) {
	best, found := 0.0, false
	for _, r := range roots {
		if r > 0 && (!found || r < best) {
			best, found = r, true
		}
	}
	return best, found
}
