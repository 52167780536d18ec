package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/pricechart"
	"github.com/google/subcommands"
)

type hoverCmd struct {
	window string
	input  string
	x      float64
}

func (*hoverCmd) Name() string     { return "hover" }
func (*hoverCmd) Synopsis() string { return "print the tooltip of the point under the pointer" }
func (*hoverCmd) Usage() string {
	return `pchart hover -x <px> [-w 1M|6M|1Y] [-i <series>]

  Prints the tooltip of the point nearest to the pointer at pixel x, one
  "label: value" line per row. Nothing is printed when x is outside the plot.
`
}

func (c *hoverCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "w", "", "window to display: 1M, 6M or 1Y")
	f.StringVar(&c.input, "i", "", "series to display: a .jsonl file, a .json document or ext:<name>")
	f.Float64Var(&c.x, "x", -1, "pointer position in pixels")
}

func (c *hoverCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.x < 0 {
		fmt.Fprintln(os.Stderr, "-x must be provided")
		return subcommands.ExitUsageError
	}
	cfg, log, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer log.Sync()

	series, err := loadSeries(ctx, c.input, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading series: %v\n", err)
		return subcommands.ExitFailure
	}
	chart := newChart(series, titleOf(c.input), c.window, cfg, log)
	defer chart.Unmount()

	hoverAt(chart, c.x)
	printTooltip(os.Stdout, chart.Frame().Tooltip)
	return subcommands.ExitSuccess
}

// printTooltip writes one "label: value" line per row.
func printTooltip(w io.Writer, rows []pricechart.TooltipRow) {
	for _, r := range rows {
		fmt.Fprintf(w, "%s: %s\n", r.Label, r.Value)
	}
}
