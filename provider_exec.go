package pricechart

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Command is a SeriesProvider running an external program that prints the
// series as JSONL on its standard output.
//
// It is the seam to plug any real data feed: the program receives Env on top of
// the current environment, and its standard error is passed through.
type Command struct {
	Path string
	Args []string
	Env  []string
}

// FetchCommand returns the Command running the extension "pchart-fetch-<name>" found in PATH.
func FetchCommand(name string, args ...string) (Command, error) {
	bin := "pchart-fetch-" + name
	lp, err := exec.LookPath(bin)
	if err != nil {
		return Command{}, fmt.Errorf("provider %q not found in PATH: %w", bin, err)
	}
	return Command{Path: lp, Args: args}, nil
}

// Points implements SeriesProvider.
func (c Command) Points(ctx context.Context) ([]Point, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Env = append(os.Environ(), c.Env...)
	cmd.Stderr = os.Stderr
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("error running %s: %w", c, err)
	}
	return DecodePoints(c.String(), &out)
}

// String returns the command line.
func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

var _ SeriesProvider = Command{}
