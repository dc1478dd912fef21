// Command isolator reads a connector board and prints K cells that lie more
// than L moves apart from each other, one "x y" line per cell in row-major
// order.
//
// Usage:
//
//	isolator [flags] [board-file]
//
// The board is read from stdin when no file is given. Flags:
//
//	-config path.yaml       YAML configuration (see package config)
//	-metrics-file path.prom write Prometheus metrics after the run
//	-cpuprofile dir         write a CPU profile into dir
//	-render                 draw the board with chosen cells as '*' on stderr
//
// plus the klog flags (-v, -logtostderr, ...).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/plan-systems/klog"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/isolator/config"
	"github.com/katalvlaran/isolator/gridgraph"
	"github.com/katalvlaran/isolator/isolation"
	"github.com/katalvlaran/isolator/metrics"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	klog.Flush()
	os.Exit(code)
}

// run is main without process globals. It returns the exit code:
// 0 on success, 1 on a failed run, 2 on bad usage.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("isolator", flag.ContinueOnError)
	fset.SetOutput(stderr)
	klog.InitFlags(fset)
	var (
		configPath  = fset.String("config", "", "YAML configuration file")
		metricsFile = fset.String("metrics-file", "", "write Prometheus metrics to this file")
		cpuDir      = fset.String("cpuprofile", "", "write a CPU profile into this directory")
		render      = fset.Bool("render", false, "draw the board with the chosen cells on stderr")
	)
	if err := fset.Parse(args); err != nil {
		return 2
	}
	if fset.NArg() > 1 {
		fmt.Fprintln(stderr, "isolator: at most one board file")

		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "isolator:", err)

		return 2
	}
	explicit := map[string]bool{}
	fset.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if explicit["metrics-file"] {
		cfg.Metrics.Textfile = *metricsFile
	}
	if explicit["cpuprofile"] {
		cfg.Profile.CPUDir = *cpuDir
	}
	if !explicit["v"] && cfg.Log.Verbosity > 0 {
		_ = fset.Set("v", strconv.Itoa(cfg.Log.Verbosity))
	}
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	if cfg.Profile.CPUDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.Profile.CPUDir), profile.Quiet).Stop()
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	err = solve(ctx, cfg, fset.Arg(0), stdin, stdout, stderr, collector, *render)
	if cfg.Metrics.Textfile != "" {
		if werr := metrics.WriteTextfile(cfg.Metrics.Textfile, reg); werr != nil {
			klog.Errorf("metrics: %v", werr)
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, "isolator:", err)

		return 1
	}

	return 0
}

// solve parses the board, plans the placement and prints it.
func solve(
	ctx context.Context,
	cfg config.Config,
	path string,
	stdin io.Reader,
	stdout, stderr io.Writer,
	rec isolation.Recorder,
	render bool,
) error {
	name, r := "<stdin>", stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "open board")
		}
		defer f.Close()
		name, r = path, f
	}
	board, err := gridgraph.Parse(name, r)
	if err != nil {
		return err
	}
	klog.V(1).Infof("board %q: %dx%d, L=%d, K=%d, %d cells",
		board.Name, board.Width, board.Height, board.Run, board.Target, board.CellCount())

	g, err := board.Graph(ctx)
	if err != nil {
		return err
	}

	opts, err := cfg.PlanOptions()
	if err != nil {
		return err
	}
	opts = append(opts, isolation.WithContext(ctx), isolation.WithRecorder(rec))
	p, err := isolation.Plan(g, board.Target, opts...)
	if err != nil {
		return err
	}

	points, err := board.Points(p.Set)
	if err != nil {
		return err
	}
	for _, pt := range points {
		fmt.Fprintf(stdout, "%d %d\n", pt.X, pt.Y)
	}
	if render {
		fmt.Fprint(stderr, board.Render(p.Set))
	}

	return nil
}
