//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"eegscope/app"
	"eegscope/hal"
	"eegscope/internal/buildinfo"
	"eegscope/plot"
)

type runConfig struct {
	Headless hal.HeadlessConfig
	Host     hal.HostConfig
	App      app.Config
	Version  bool
}

// parseFlags turns the command line into runner and viewer settings.
func parseFlags(args []string, out io.Writer) (runConfig, error) {
	var rc runConfig
	var ticks string
	rc.App = app.DefaultConfig()

	fs := flag.NewFlagSet("eegscope", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.BoolVar(&rc.Headless.Enabled, "headless", false, "Run without a window.")
	fs.IntVar(&rc.Headless.Hz, "hz", 60, "Frame rate in headless mode.")
	fs.Uint64Var(&rc.Headless.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	fs.IntVar(&rc.Host.Width, "width", 640, "Framebuffer width in pixels.")
	fs.IntVar(&rc.Host.Height, "height", 400, "Framebuffer height in pixels.")
	fs.Int64Var(&rc.Host.Seed, "seed", 1, "Seed of the synthetic board noise.")
	fs.IntVar(&rc.App.Samples, "samples", rc.App.Samples, "Samples on screen (100-2000).")
	fs.IntVar(&rc.App.Columns, "columns", rc.App.Columns, "Columns of the plot grid.")
	fs.Float64Var(&rc.App.YStart, "ystart", rc.App.YStart, "Initial bottom of the vertical range.")
	fs.Float64Var(&rc.App.YEnd, "yend", rc.App.YEnd, "Initial top of the vertical range.")
	fs.StringVar(&ticks, "ticks-policy", rc.App.Ticks.String(), "Vertical ticks: nice or quarter.")
	fs.Float64Var(&rc.App.ScrollSensitivity, "sensitivity", plot.DefaultScrollSensitivity, "Zoom per unit of scroll.")
	fs.IntVar(&rc.App.StreamBuffer, "buffer", rc.App.StreamBuffer, "Board ring buffer size in samples.")
	fs.BoolVar(&rc.App.ShowCursor, "cursor", rc.App.ShowCursor, "Show the value under the pointer.")
	fs.BoolVar(&rc.Version, "version", false, "Print the build and exit.")
	if err := fs.Parse(args); err != nil {
		return rc, err
	}

	p, err := plot.ParseTickPolicy(ticks)
	if err != nil {
		return rc, err
	}
	rc.App.Ticks = p
	rc.Headless.Host = rc.Host
	return rc, nil
}

func main() {
	rc, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if rc.Version {
		fmt.Println(buildinfo.String())
		return
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, rc.App)
	}

	if rc.Headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, rc.Headless); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, rc.Host); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
