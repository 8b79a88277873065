package analysis

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutoring-sim/core/scenario"
	"tutoring-sim/internal/errors"
)

func TestParseSection(t *testing.T) {
	tests := []struct {
		input    string
		expected Section
	}{
		{input: "overview", expected: SectionOverview},
		{input: "Pricing", expected: SectionPricing},
		{input: " advertising ", expected: SectionAdvertising},
		{input: "PROFIT", expected: SectionProfit},
		{input: "seasonality", expected: SectionSeasonality},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSection(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseSection("marketing")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestLinspace(t *testing.T) {
	assert.Nil(t, Linspace(1, 2, 0))
	assert.Equal(t, []float64{3}, Linspace(3, 9, 1))
	assert.Equal(t, []float64{1, 1.5, 2, 2.5, 3}, Linspace(1, 3, 5))

	xs := Linspace(1, 20, 200)
	require.Len(t, xs, 200)
	assert.Equal(t, 1.0, xs[0])
	assert.Equal(t, 20.0, xs[199])
}

func TestSample(t *testing.T) {
	points := Sample(func(x float64) float64 { return x * x }, Range{From: 0, To: 2}, 3)
	assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4}}, points)
	assert.Nil(t, Sample(func(x float64) float64 { return x }, MonthsRange, 0))
}

func TestAnalyzeSingleSection(t *testing.T) {
	report, err := Analyze(SectionPricing, scenario.Default(), Options{})
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "default", report.Scenario)
	require.NotNil(t, report.Pricing)
	assert.Nil(t, report.Advertising)
	assert.Nil(t, report.Profit)
	assert.Nil(t, report.Seasonality)

	assert.Equal(t, "Tier 2 (Bulk Rate)", report.Pricing.Tier)
	assert.True(t, decimal.NewFromInt(224).Equal(report.Pricing.MonthlyCost))
	assert.True(t, decimal.NewFromInt(28).Equal(report.Pricing.HourlyRate))
	assert.Empty(t, report.Pricing.Curve)
}

func TestAnalyzeOverview(t *testing.T) {
	report, err := Analyze(SectionOverview, scenario.Default(), Options{CurvePoints: 12})
	require.NoError(t, err)

	adv := report.Advertising
	require.NotNil(t, adv)
	assert.InDelta(t, 16.09, adv.DaysToTarget, 0.01)
	assert.InDelta(t, 2517, adv.CurrentReach, 1)
	assert.Equal(t, "12.59", adv.CostSoFar.StringFixed(2))
	assert.InDelta(t, 40000, adv.ReachForBudget, 1e-9)
	assert.Len(t, adv.Curve, 12)

	profit := report.Profit
	require.NotNil(t, profit)
	assert.Equal(t, "10000.00", profit.Revenue.StringFixed(2))
	assert.Equal(t, "5750.00", profit.Expenses.StringFixed(2))
	assert.Equal(t, "4250.00", profit.Profit.StringFixed(2))
	require.NotNil(t, profit.BreakEven)
	assert.InDelta(t, 13.99, *profit.BreakEven, 0.01)
	require.NotNil(t, profit.OptimalStudents)
	assert.InDelta(t, 150, *profit.OptimalStudents, 1e-9)
	assert.Equal(t, "9250.00", profit.MaxProfit.StringFixed(2))
	assert.False(t, profit.Unbounded)

	season := report.Seasonality
	require.NotNil(t, season)
	assert.Equal(t, 9, season.Month)
	assert.InDelta(t, 20, season.Enrollment, 1e-9)
	assert.InDelta(t, 65, season.PeakEnrollment, 1e-9)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, season.Months)
	assert.Len(t, season.Enrollments, 12)
	assert.InDelta(t, 50, season.Stats.Mean, 1e-9)
	require.Len(t, season.Curve, 12)
	assert.Equal(t, 12.0, season.Curve[11].X)
}

func TestAnalyzeProfitEdgeCases(t *testing.T) {
	t.Run("never breaks even", func(t *testing.T) {
		s := scenario.Default()
		s.Profit.FixedCosts = 20000

		report, err := Analyze(SectionProfit, s, Options{})
		require.NoError(t, err)
		assert.Nil(t, report.Profit.BreakEven)
		require.NotNil(t, report.Profit.OptimalStudents)
	})

	t.Run("linear profit is unbounded", func(t *testing.T) {
		s := scenario.Default()
		s.Profit.ScalingFactor = 0

		report, err := Analyze(SectionProfit, s, Options{})
		require.NoError(t, err)
		assert.True(t, report.Profit.Unbounded)
		assert.Nil(t, report.Profit.OptimalStudents)
		assert.Nil(t, report.Profit.MaxProfit)
		require.NotNil(t, report.Profit.BreakEven)

		_, err = json.Marshal(report)
		require.NoError(t, err)
	})
}

func TestAnalyzeRejectsInvalidInput(t *testing.T) {
	s := scenario.Default()
	s.Query.Month = 14

	_, err := Analyze(SectionSeasonality, s, Options{})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))

	_, err = Analyze(SectionPricing, scenario.Default(), Options{CurvePoints: -1})
	assert.True(t, errors.IsType(err, errors.TypeInput))

	_, err = Analyze(Section(42), scenario.Default(), Options{})
	assert.True(t, errors.IsType(err, errors.TypeNotSupported))
}

func TestAnalyzeRejectsOverflowingResults(t *testing.T) {
	tests := []struct {
		name    string
		section Section
		mutate  func(*scenario.Scenario)
		field   string
	}{
		{
			name:    "pricing cost",
			section: SectionPricing,
			mutate:  func(s *scenario.Scenario) { s.Query.Hours = 1e308 },
			field:   "pricing.monthly_cost",
		},
		{
			name:    "profit expenses",
			section: SectionProfit,
			mutate:  func(s *scenario.Scenario) { s.Query.Students = 1e200 },
			field:   "profit.expenses",
		},
		{
			name:    "overview reports the first section",
			section: SectionOverview,
			mutate: func(s *scenario.Scenario) {
				s.Query.Hours = 1e308
				s.Query.Students = 1e200
			},
			field:   "pricing.monthly_cost",
		},
		{
			name:    "seasonality",
			section: SectionSeasonality,
			mutate: func(s *scenario.Scenario) {
				s.Seasonality.BaseEnrollment = 1e308
				s.Seasonality.Amplitude1 = 1e308
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scenario.Default()
			tt.mutate(&s)
			require.NoError(t, s.Validate())

			var err error
			require.NotPanics(t, func() {
				_, err = Analyze(tt.section, s, Options{CurvePoints: 5})
			})
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeInput), "got %v", err)
			if tt.field != "" {
				e, ok := err.(*errors.Error)
				require.True(t, ok)
				assert.Equal(t, tt.field, e.Context["field"])
			}
		})
	}
}

func TestReportJSONUsesSectionName(t *testing.T) {
	report, err := Analyze(SectionSeasonality, scenario.Default(), Options{})
	require.NoError(t, err)

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "seasonality", decoded["section"])
	assert.NotContains(t, decoded, "pricing")
}
