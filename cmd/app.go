// Package cmd implements the pchart command line application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/pricechart"
	"github.com/etnz/pricechart/geometry"
	"github.com/etnz/pricechart/transition"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&chartCmd{}, "chart")
	c.Register(&hoverCmd{}, "chart")
	c.Register(&watchCmd{}, "chart")

	c.Register(&genCmd{}, "series")

	c.Register(&tickerCmd{}, "ticker")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file (pchart.yaml in the current directory by default)")
var logLevel = flag.String("log-level", "", "Log level (debug, info, warn, error), overrides the configuration")

// setup loads the configuration and builds the logger.
func setup() (*Config, *zap.Logger, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil, nil, err
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	log, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// provider returns the series provider for input:
//
//   - "" for a random walk seeded by the configuration,
//   - "ext:<name>" for the extension pchart-fetch-<name>,
//   - a .json file read with the configured JSONPath expressions,
//   - any other file read as JSONL.
func provider(input string, cfg *Config) (pricechart.SeriesProvider, error) {
	switch {
	case input == "":
		return pricechart.RandomWalk{Seed: cfg.Seed, Count: cfg.Points}, nil
	case strings.HasPrefix(input, "ext:"):
		c, err := pricechart.FetchCommand(strings.TrimPrefix(input, "ext:"))
		if err != nil {
			return nil, err
		}
		c.Env = extensionEnv(cfg)
		return c, nil
	case strings.EqualFold(filepath.Ext(input), ".json"):
		f, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("cannot open %q for reading: %w", input, err)
		}
		defer f.Close()
		return pricechart.DecodeJSONPath(f, cfg.JSONPath.Dates, cfg.JSONPath.Prices, cfg.JSONPath.Volumes)
	default:
		return pricechart.JSONLFile{Path: input}, nil
	}
}

// loadSeries loads the series from input, see provider.
func loadSeries(ctx context.Context, input string, cfg *Config, log *zap.Logger) (*pricechart.Series, error) {
	p, err := provider(input, cfg)
	if err != nil {
		return nil, err
	}
	return pricechart.LoadSeries(ctx, p, pricechart.WithFloor(cfg.Floor), pricechart.WithSeriesLogger(log))
}

// newChart returns a mounted chart on series, completed at once.
//
// An empty window uses the configured one, unknown windows are reported and fall back to the full range.
func newChart(series *pricechart.Series, title, window string, cfg *Config, log *zap.Logger) *pricechart.Chart {
	if window == "" {
		window = cfg.Window
	}
	w := pricechart.ParseWindow(window)
	if !strings.EqualFold(strings.TrimSpace(window), string(w)) {
		log.Warn("unknown window, showing the full range", zap.String("window", window), zap.Stringer("using", w))
	}
	c := pricechart.NewChart(pricechart.Props{
		Title:    title,
		Series:   series,
		Currency: cfg.Currency,
	},
		pricechart.WithViewport(geometry.Viewport{Width: cfg.Width, Height: cfg.Height}),
		pricechart.WithScheduler(transition.Immediate{}),
		pricechart.WithLogger(log),
		pricechart.WithInitialWindow(w),
	)
	c.Mount()
	return c
}

// hoverAt moves the pointer of c to x, vertically centered in the plot.
func hoverAt(c *pricechart.Chart, x float64) {
	plot := c.Frame().Layout.Plot
	c.PointerMove(x, (plot.Top+plot.Bottom)/2)
}

// titleOf returns a chart title for input.
func titleOf(input string) string {
	switch {
	case input == "":
		return "Random walk"
	case strings.HasPrefix(input, "ext:"):
		return strings.TrimPrefix(input, "ext:")
	default:
		return strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}
}
