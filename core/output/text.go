package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"tutoring-sim/core/analysis"
)

// TextFormatter renders reports as aligned terminal tables
type TextFormatter struct {
	opts Options
}

// NewTextFormatter creates a CLI formatter
func NewTextFormatter(opts Options) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Format returns FormatCLI
func (f *TextFormatter) Format() Format {
	return FormatCLI
}

// Render writes every report section as a two column table
func (f *TextFormatter) Render(w io.Writer, report *analysis.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Scenario: %s\n", report.Scenario)
	for _, t := range tables(report, f.opts) {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, t.Title)
		fmt.Fprintln(tw, strings.Repeat("═", len(t.Title)))
		for _, row := range t.Rows {
			fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
		}

		if len(t.Curve) > 0 {
			fmt.Fprintln(tw)
			fmt.Fprintf(tw, "%s\t%s\n", t.CurveHeader[0], t.CurveHeader[1])
			for _, p := range t.Curve {
				fmt.Fprintf(tw, "%s\t%s\n", formatNumber(p.X, 2), formatNumber(p.Y, 2))
			}
		}
	}

	return tw.Flush()
}
