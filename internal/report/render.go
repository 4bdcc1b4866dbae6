package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
)

const (
	plotHeight = 12
	plotWidth  = 72
)

// Plot draws series as an ASCII line chart. Empty series render as "".
func Plot(series []float64, caption string) string {
	if len(series) == 0 {
		return ""
	}
	return asciigraph.Plot(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotMany overlays several series of equal length on one chart.
func PlotMany(series [][]float64, caption string) string {
	if len(series) == 0 || len(series[0]) == 0 {
		return ""
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// LogSeries maps values to log10(|v| + tiny) so convergence over many
// orders of magnitude stays readable.
func LogSeries(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Log10(math.Abs(v) + 1e-300)
	}
	return out
}

// Table writes rows as aligned columns under header.
func Table(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeRow(tw, header)
	for _, row := range rows {
		writeRow(tw, row)
	}
	return tw.Flush()
}

func writeRow(w io.Writer, cols []string) {
	for i, c := range cols {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprintln(w)
}

// FormatVector prints v with fixed precision.
func FormatVector(v []float64) string {
	s := "["
	for i, x := range v {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%.6f", x)
	}
	return s + "]"
}
