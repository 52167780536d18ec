package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pricechart/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type chartCmd struct {
	window string
	input  string
	svg    string
	x      float64
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "display a price chart" }
func (*chartCmd) Usage() string {
	return `pchart chart [-w 1M|6M|1Y] [-i <series>] [-svg <file>] [-x <px>]

  Displays the chart card of a series in the terminal: last price, change over
  the window and a sparkline. With -x, the point under the pointer at that pixel
  is selected. With -svg, the chart is also written as an SVG document.

  Without -i, a seeded random walk is displayed.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "w", "", "window to display: 1M, 6M or 1Y")
	f.StringVar(&c.input, "i", "", "series to display: a .jsonl file, a .json document or ext:<name>")
	f.StringVar(&c.svg, "svg", "", "write the chart as SVG to this file")
	f.Float64Var(&c.x, "x", -1, "pointer position in pixels, to select a point")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if c.x >= 0 {
		hoverAt(chart, c.x)
	}
	frame := chart.Frame()
	printMarkdown(renderer.RenderCard(frame))

	if c.svg != "" {
		if err := os.WriteFile(c.svg, []byte(renderer.RenderSVG(frame)), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.svg, err)
			return subcommands.ExitFailure
		}
		log.Info("svg written", zap.String("file", c.svg))
	}
	return subcommands.ExitSuccess
}
