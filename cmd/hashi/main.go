// Command hashi solves a Hashiwokakero puzzle read from a grid file, using
// whichever of the four search engines is selected by --algo.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hashi"
	"github.com/katalvlaran/hashi/grid"
	"github.com/katalvlaran/hashi/metrics"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

var algoFlagToAlgo = map[string]hashi.Algo{
	"pysat":     hashi.AlgoSAT,
	"astar":     hashi.AlgoAStar,
	"backtrack": hashi.AlgoBacktrack,
	"brute":     hashi.AlgoBrute,
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		algoFlag string
		input    string
		export   bool
		showMetr bool
	)

	cmd := &cobra.Command{
		Use:           "hashi",
		Short:         "Solve a Hashiwokakero (Bridges) puzzle",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, ok := algoFlagToAlgo[algoFlag]
			if !ok {
				return fmt.Errorf("hashi: unknown --algo %q (want one of pysat, astar, backtrack, brute)", algoFlag)
			}
			if input == "" {
				return fmt.Errorf("hashi: --input is required")
			}
			return run(cmd.Context(), cmd, input, algo, export, showMetr)
		},
	}

	cmd.Flags().StringVar(&algoFlag, "algo", "pysat", "search engine: pysat|astar|backtrack|brute")
	cmd.Flags().StringVar(&input, "input", "", "path to the input grid file")
	cmd.Flags().BoolVar(&export, "export", false, "write the solved grid to <input>.solution.txt")
	cmd.Flags().BoolVar(&showMetr, "metrics", false, "print run metrics to stderr")
	cmd.Flags().Bool("version", false, "print the program version and exit")

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Fprintln(os.Stdout, version)
			os.Exit(0)
		}
		return nil
	}

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, input string, algo hashi.Algo, export, showMetrics bool) error {
	g, err := grid.ParseFile(input)
	if err != nil {
		return err
	}

	var opts []hashi.Option
	var recorder *metrics.Recorder
	if showMetrics {
		recorder = metrics.New()
		opts = append(opts, hashi.WithRecorder(recorder))
	}

	out, err := hashi.Solve(ctx, g, algo, opts...)
	if err != nil {
		return err
	}

	if out != "" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		if !strings.HasSuffix(out, "\n") {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		if export {
			dest := input + ".solution.txt"
			if werr := os.WriteFile(dest, []byte(out), 0o644); werr != nil {
				return fmt.Errorf("hashi: writing %s: %w", filepath.Clean(dest), werr)
			}
		}
	}

	if showMetrics {
		snap := recorder.Snapshot()
		fmt.Fprintf(os.Stderr, "run=%s decisions=%d conflicts=%d blocking_clauses=%d elapsed=%s\n",
			snap.RunID, snap.Decisions, snap.Conflicts, snap.BlockingClauses, snap.Elapsed)
	}

	return nil
}
