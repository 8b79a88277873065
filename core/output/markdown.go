package output

import (
	"bufio"
	"fmt"
	"io"

	"tutoring-sim/core/analysis"
)

// MarkdownFormatter renders reports as markdown tables
type MarkdownFormatter struct {
	opts Options
}

// NewMarkdownFormatter creates a markdown formatter
func NewMarkdownFormatter(opts Options) *MarkdownFormatter {
	return &MarkdownFormatter{opts: opts}
}

// Format returns FormatMarkdown
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the report as a markdown document
func (f *MarkdownFormatter) Render(w io.Writer, report *analysis.Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Tutoring business report: %s\n", report.Scenario)
	for _, t := range tables(report, f.opts) {
		fmt.Fprintf(bw, "\n## %s\n\n", t.Title)
		fmt.Fprintln(bw, "| Metric | Value |")
		fmt.Fprintln(bw, "|---|---|")
		for _, row := range t.Rows {
			fmt.Fprintf(bw, "| %s | %s |\n", row[0], row[1])
		}

		if len(t.Curve) > 0 {
			fmt.Fprintf(bw, "\n| %s | %s |\n", t.CurveHeader[0], t.CurveHeader[1])
			fmt.Fprintln(bw, "|---:|---:|")
			for _, p := range t.Curve {
				fmt.Fprintf(bw, "| %s | %s |\n", formatNumber(p.X, 2), formatNumber(p.Y, 2))
			}
		}
	}

	return bw.Flush()
}
