// Copyright 2025 go-pairdot Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pairdot/hwy"
	"github.com/ajroetker/go-pairdot/internal/harness"
)

// runOptions are the flag values of the root command.
type runOptions struct {
	cfg        harness.Config
	noProgress bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{cfg: harness.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "pairdotbench",
		Short: "Time the pairwise dot-product kernel under different execution strategies",
		Long: `pairdotbench computes A·Bᵀ and A·Cᵀ for random matrices A, B and C under
each selected scenario and prints the wall clock time of every pair.

Scenarios:
` + scenarioHelp(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.cfg.RowsA, "rows-a", opts.cfg.RowsA, "rows of A, the left operand")
	f.IntVar(&opts.cfg.RowsB, "rows-b", opts.cfg.RowsB, "rows of B, the first right operand")
	f.IntVar(&opts.cfg.RowsC, "rows-c", opts.cfg.RowsC, "rows of C, the second right operand")
	f.IntVar(&opts.cfg.Cols, "cols", opts.cfg.Cols, "feature dimension shared by A, B and C")
	f.Uint64Var(&opts.cfg.Seed, "seed", opts.cfg.Seed, "random seed for the inputs")
	f.IntVar(&opts.cfg.Workers, "workers", opts.cfg.Workers, "size of the worker pool used by the concurrent scenarios")
	f.StringSliceVar(&opts.cfg.Scenarios, "scenarios", opts.cfg.Scenarios, "comma-separated scenarios to run, in order")
	f.BoolVar(&opts.noProgress, "no-progress", false, "disable the naive scenario's progress bar")
	f.StringVar(&opts.cfg.PlotPath, "plot", "", "write a bar chart of the timings to this file (png, svg, pdf)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log scenario start and finish to stderr")

	cmd.AddCommand(newCPUCmd(), newScenariosCmd())
	return cmd
}

func runBench(cmd *cobra.Command, opts *runOptions) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg := opts.cfg
	cfg.Progress = !opts.noProgress

	logger.Debug("starting", "dispatch", hwy.CurrentName(), "scenarios", strings.Join(cfg.Scenarios, ","))
	report, err := harness.Run(cmd.Context(), cfg, cmd.ErrOrStderr(), logger)
	if err != nil {
		return err
	}
	return report.WriteText(cmd.OutOrStdout(), hwy.CurrentName())
}

func scenarioHelp() string {
	var b strings.Builder
	for _, s := range harness.Scenarios() {
		b.WriteString("  " + s.Name + ": " + s.Description + "\n")
	}
	return b.String()
}

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the available scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range harness.Scenarios() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", s.Name, s.Description)
			}
			return nil
		},
	}
}
