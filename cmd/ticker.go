package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/pricechart"
	"github.com/etnz/pricechart/renderer"
	"github.com/etnz/pricechart/transition"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type tickerCmd struct {
	items   string
	frames  int
	fps     int
	visible int
}

func (*tickerCmd) Name() string     { return "ticker" }
func (*tickerCmd) Synopsis() string { return "scroll a ticker tape" }
func (*tickerCmd) Usage() string {
	return `pchart ticker [-items <file.yaml>] [-frames <n>] [-fps <n>] [-visible <n>]

  Scrolls a tape of quotes on a single terminal line. The tape loops forever
  without a visible seam, -frames limits the number of frames drawn.
`
}

func (c *tickerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.items, "items", "", "yaml file of ticker items (a static tape by default)")
	f.IntVar(&c.frames, "frames", 0, "number of frames to draw, 0 to scroll until interrupted")
	f.IntVar(&c.fps, "fps", 10, "frames per second")
	f.IntVar(&c.visible, "visible", 5, "number of quotes visible at once")
}

func (c *tickerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.fps <= 0 || c.visible <= 0 {
		fmt.Fprintln(os.Stderr, "-fps and -visible must be positive")
		return subcommands.ExitUsageError
	}
	cfg, log, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer log.Sync()

	items := pricechart.DefaultTickerItems
	if c.items != "" {
		if items, err = readTickerItems(c.items); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if len(items) == 0 {
		fmt.Fprintln(os.Stderr, "no ticker items")
		return subcommands.ExitFailure
	}

	ctx, stop := interruptible(ctx)
	defer stop()

	period := time.Second / time.Duration(c.fps)
	tape := pricechart.NewTape(items, cfg.TickerPeriod)
	tape.Start(transition.NewTickerScheduler(), period)
	defer tape.Stop()
	log.Debug("ticker started", zap.Int("items", len(items)), zap.Duration("period", cfg.TickerPeriod))

	styles := renderer.DefaultTapeStyles()
	tick := time.NewTicker(period)
	defer tick.Stop()
	for i := 0; c.frames == 0 || i < c.frames; i++ {
		select {
		case <-ctx.Done():
			fmt.Println()
			return subcommands.ExitSuccess
		case <-tick.C:
		}
		fmt.Printf("\r\033[K%s", renderer.RenderTape(tape.Visible(c.visible), styles))
	}
	fmt.Println()
	return subcommands.ExitSuccess
}

// readTickerItems decodes the ticker item file.
func readTickerItems(path string) ([]pricechart.TickerItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", path, err)
	}
	defer f.Close()
	return pricechart.DecodeTickerItems(f)
}
