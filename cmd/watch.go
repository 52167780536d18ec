package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/etnz/pricechart/renderer"
	"github.com/google/subcommands"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type watchCmd struct {
	every  string
	window string
	input  string
	runs   int
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "display a price chart on a schedule" }
func (*watchCmd) Usage() string {
	return `pchart watch [-every <schedule>] [-w 1M|6M|1Y] [-i <series>] [-runs <n>]

  Reloads the series and displays its chart card on a cron schedule, like
  "@every 5s" or "0 9 * * 1-5", until interrupted.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.every, "every", "@every 5s", "cron schedule of the refresh")
	f.StringVar(&c.window, "w", "", "window to display: 1M, 6M or 1Y")
	f.StringVar(&c.input, "i", "", "series to display: a .jsonl file, a .json document or ext:<name>")
	f.IntVar(&c.runs, "runs", 0, "stop after this number of refreshes, 0 to run until interrupted")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer log.Sync()

	ctx, stop := interruptible(ctx)
	defer stop()

	var mu sync.Mutex
	runs := 0
	refresh := func() {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		series, err := loadSeries(ctx, c.input, cfg, log)
		if err != nil {
			// keep watching, the source may recover.
			log.Error("cannot load series", zap.String("input", c.input), zap.Error(err))
			return
		}
		chart := newChart(series, titleOf(c.input), c.window, cfg, log)
		printMarkdown(renderer.RenderCard(chart.Frame()))
		chart.Unmount()
		runs++
		if c.runs > 0 && runs >= c.runs {
			stop()
		}
	}

	sched := cron.New()
	if _, err := sched.AddFunc(c.every, refresh); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid schedule %q: %v\n", c.every, err)
		return subcommands.ExitUsageError
	}
	refresh()
	sched.Start()
	log.Info("watching", zap.String("every", c.every), zap.String("input", c.input))

	<-ctx.Done()
	<-sched.Stop().Done()
	return subcommands.ExitSuccess
}

// interruptible returns a context cancelled on interrupt.
func interruptible(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt)
}
