package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pthm-cable/arcs/config"
	"github.com/pthm-cable/arcs/rangeio"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	fs := flag.NewFlagSet("arcs", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// CLI flags
	configPath := fs.String("config", "", "Path to config.yaml (empty = use defaults)")
	inPath := fs.String("in", "", "Operations CSV (empty = stdin)")
	outPath := fs.String("out", "", "Results CSV (empty = stdout, ignored with -output-dir)")
	outputDir := fs.String("output-dir", "", "Directory for results.csv and config snapshot")
	logLevel := fs.String("log-level", "", "Log level override: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg()

	level := cfg.Derived.LogLevel
	if *logLevel != "" {
		l, err := config.ParseLevel(*logLevel)
		if err != nil {
			return err
		}
		level = l
	}

	// Set up slog (JSON to stderr; stdout may carry results)
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	in := stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	ops, err := rangeio.ReadOperations(in)
	if err != nil {
		return err
	}

	var w *rangeio.Writer
	om, err := rangeio.NewOutputManager(*outputDir)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := om.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing results: %w", cerr)
		}
	}()

	switch {
	case om != nil:
		w = om.Writer
		if cfg.Output.WriteConfig {
			if err := om.WriteConfig(cfg); err != nil {
				return err
			}
		}
	case *outPath != "":
		f, cerr := os.Create(*outPath)
		if cerr != nil {
			return fmt.Errorf("creating output: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output: %w", cerr)
			}
		}()
		w = rangeio.NewWriter(f)
	default:
		w = rangeio.NewWriter(stdout)
	}

	ev := rangeio.Evaluator{
		Tolerance: cfg.Angle.Tolerance,
		Precision: cfg.Output.Precision,
	}

	slog.Info("evaluating operations",
		"operations", len(ops),
		"tolerance", ev.Tolerance,
		"precision", ev.Precision,
		"output_dir", om.Dir(),
	)

	sum, err := rangeio.Run(ops, ev, w)
	if err != nil {
		return err
	}

	slog.Info("done", "total", sum.Total, "failed", sum.Failed)
	return nil
}
