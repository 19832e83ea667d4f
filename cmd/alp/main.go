// Command alp is the ALP MDD solver's CLI entry point: a "generate" and
// a "solve" subcommand (original_source/src/main.rs's Generate/Solve
// Subcommand enum), each parsed with its own flag.FlagSet in the style
// jwmdev-brt08/backend/main.go uses flag for its single binary.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/alpsolve/alp/internal/clilog"
	"github.com/alpsolve/alp/internal/generate"
	"github.com/alpsolve/alp/internal/solve"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "generate":
		runGenerate(os.Args[2:])
	case "solve":
		runSolve(os.Args[2:])
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "alp: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: alp <generate|solve> [flags]")
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	cfg := generate.DefaultConfig()

	seed := fs.Int64("seed", 0, "seed to kickstart instance generation (0 = derive from wall clock)")
	fs.IntVar(&cfg.NbAircrafts, "n", cfg.NbAircrafts, "number of aircraft")
	fs.IntVar(&cfg.NbRunways, "r", cfg.NbRunways, "number of runways")
	fs.IntVar(&cfg.NbClasses, "k", cfg.NbClasses, "number of aircraft classes")
	fs.IntVar(&cfg.NbClusters, "c", cfg.NbClusters, "number of clusters of similar classes")
	fs.IntVar(&cfg.NbAircrafts, "nb-aircrafts", cfg.NbAircrafts, "long form of -n")
	fs.IntVar(&cfg.NbRunways, "nb-runways", cfg.NbRunways, "long form of -r")
	fs.IntVar(&cfg.NbClasses, "nb-classes", cfg.NbClasses, "long form of -k")
	fs.IntVar(&cfg.NbClusters, "nb-clusters", cfg.NbClusters, "long form of -c")
	fs.IntVar(&cfg.MinSeparationPosition, "min-separation-position", cfg.MinSeparationPosition, "minimum separation position")
	fs.IntVar(&cfg.MaxSeparationPosition, "max-separation-position", cfg.MaxSeparationPosition, "maximum separation position")
	fs.Float64Var(&cfg.SeparationPositionStdDev, "separation-position-std-dev", cfg.SeparationPositionStdDev, "std deviation of separation positions within a cluster")
	fs.Float64Var(&cfg.AvgInterarrivalTime, "avg-interarrival-time", cfg.AvgInterarrivalTime, "average time between two aircraft arrivals")
	output := fs.String("output", "", "file to write the generated instance to (default: stdout)")
	_ = fs.Parse(args)

	cfg.Seed = *seed
	inst := generate.Generate(cfg)

	if *output == "" {
		if err := inst.Encode(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "alp generate: %v\n", err)
			os.Exit(1)
		}

		return
	}
	if err := inst.Save(*output); err != nil {
		fmt.Fprintf(os.Stderr, "alp generate: %v\n", err)
		os.Exit(1)
	}
}

func runSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)

	instancePath := fs.String("instance", "", "path to the instance file")

	var solver string
	fs.StringVar(&solver, "solver", "classic", "search variant to run: classic or hybrid")
	fs.StringVar(&solver, "s", "classic", "shorthand for -solver")

	width := fs.Int("width", 100, "max number of nodes in a Classic layer (0 disables layer width limiting); ignored by the hybrid solver")
	timeout := fs.Int64("timeout", 60, "search timeout, in seconds (0 disables the cutoff)")
	output := fs.String("output", "", "if set, the path to write the solve report as JSON")
	workers := fs.Int("workers", 1, "number of concurrent search workers")
	clusters := fs.Int("clusters", 0, "number of meta-classes to cluster classes into (0 disables compression)")

	var compressionBound bool
	fs.BoolVar(&compressionBound, "compression-bound", false, "attach the compressed meta-problem dictionary as a relaxation bound")
	fs.BoolVar(&compressionBound, "b", false, "shorthand for -compression-bound")

	var compressionHeuristic bool
	fs.BoolVar(&compressionHeuristic, "compression-heuristic", false, "bias decision order using the compressed meta-problem dictionary")
	fs.BoolVar(&compressionHeuristic, "h", false, "shorthand for -compression-heuristic")

	verbose := fs.Bool("verbose", false, "print node counts, timing, and the resolved per-aircraft schedule")
	_ = fs.Parse(args)

	if *instancePath == "" {
		fmt.Fprintln(os.Stderr, "alp solve: -instance is required")
		os.Exit(2)
	}

	level := clilog.LevelInfo
	if *verbose {
		level = clilog.LevelDebug
	}
	log := clilog.New(os.Stderr, level)

	report, err := solve.Run(solve.Options{
		InstancePath:         *instancePath,
		Solver:               solver,
		Width:                *width,
		TimeoutSec:           int(*timeout),
		OutputPath:           *output,
		Workers:              *workers,
		NbClusters:           *clusters,
		CompressionBound:     compressionBound,
		CompressionHeuristic: compressionHeuristic,
	}, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "alp solve: %v\n", err)
		os.Exit(1)
	}

	solve.PrintReport(os.Stdout, report, *verbose)
}
