package output

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutoring-sim/core/analysis"
	"tutoring-sim/core/scenario"
	"tutoring-sim/internal/errors"
)

func overviewReport(t *testing.T, points int) *analysis.Report {
	t.Helper()
	report, err := analysis.Analyze(analysis.SectionOverview, scenario.Default(), analysis.Options{CurvePoints: points})
	require.NoError(t, err)
	return report
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		places   int32
		expected string
	}{
		{name: "zero", value: 0, places: 0, expected: "0"},
		{name: "below a thousand", value: 999.5, places: 2, expected: "999.50"},
		{name: "thousand", value: 1000, places: 0, expected: "1,000"},
		{name: "rounds half away from zero", value: 2.5, places: 0, expected: "3"},
		{name: "millions", value: 1234567.891, places: 3, expected: "1,234,567.891"},
		{name: "negative", value: -9250, places: 2, expected: "-9,250.00"},
		{name: "tiny negative rounds to zero", value: -0.001, places: 1, expected: "0.0"},
		{name: "infinite", value: math.Inf(1), places: 1, expected: "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatNumber(tt.value, tt.places))
		})
	}
}

func TestFormatMoney(t *testing.T) {
	opts := Options{Currency: "$"}
	assert.Equal(t, "$10,000.00", formatMoney(opts, decimal.NewFromInt(10000)))
	assert.Equal(t, "-$1,250.50", formatMoney(opts, decimal.RequireFromString("-1250.5")))
	assert.Equal(t, "2,517", formatNumber(2517.07, 0))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(Options{Currency: "$"})
	assert.Equal(t, []string{"cli", "json", "markdown"}, r.Formats())

	f, err := r.Get("markdown")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, f.Format())

	_, err = r.Get("html")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(Options{Currency: "$"}).Render(&buf, overviewReport(t, 0)))

	out := buf.String()
	assert.Contains(t, out, "Scenario: default")
	assert.Contains(t, out, "Pricing Model")
	assert.Contains(t, out, "Tier 2 (Bulk Rate)")
	assert.Contains(t, out, "$224.00")
	assert.Contains(t, out, "$9,250.00")
	assert.Contains(t, out, "40,000 people")
	assert.Contains(t, out, "Sep")
	assert.NotContains(t, out, "Hours  Cost")
}

func TestTextFormatterCurves(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(Options{Currency: "$"}).Render(&buf, overviewReport(t, 3)))

	out := buf.String()
	assert.Contains(t, out, "Students")
	assert.Contains(t, out, "200.00")
	assert.Contains(t, out, "12.00")
}

func TestTextFormatterNoBreakEven(t *testing.T) {
	s := scenario.Default()
	s.Profit.FixedCosts = 20000
	report, err := analysis.Analyze(analysis.SectionProfit, s, analysis.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(Options{Currency: "$"}).Render(&buf, report))
	assert.Contains(t, buf.String(), "never")
	assert.NotContains(t, buf.String(), "Pricing Model")
}

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter(Options{Currency: "R"}).Render(&buf, overviewReport(t, 2)))

	out := buf.String()
	assert.Contains(t, out, "# Tutoring business report: default")
	assert.Contains(t, out, "## Seasonal Trends")
	assert.Contains(t, out, "| Monthly cost | R224.00 |")
	assert.Contains(t, out, "| Month | Enrollment |")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Render(&buf, overviewReport(t, 0)))

	var decoded struct {
		Section string `json:"section"`
		Profit  struct {
			MaxProfit string `json:"max_profit"`
		} `json:"profit"`
		Seasonality struct {
			Months []int `json:"months"`
		} `json:"seasonality"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "overview", decoded.Section)
	assert.Equal(t, "9250", decoded.Profit.MaxProfit)
	assert.Len(t, decoded.Seasonality.Months, 12)
}
