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

package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ajroetker/go-pairdot/hwy/contrib/workerpool"
)

// Run generates the inputs for cfg, times every selected scenario, verifies
// the outputs, and returns the report. Progress bars go to progress when
// cfg.Progress is set; a nil logger discards diagnostics.
//
// ctx is checked between scenarios; a running scenario is always waited for.
func Run(ctx context.Context, cfg Config, progress io.Writer, logger *slog.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	in := GenerateInputs(cfg)
	logger.Debug("generated inputs", "a", in.A, "b", in.B, "c", in.C, "seed", cfg.Seed)

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	if !cfg.Progress {
		progress = nil
	}
	env := &runEnv{
		in:       in,
		pool:     pool,
		observer: progressObserver(progress),
	}

	report := &Report{Config: cfg, Inputs: in}
	for _, s := range cfg.selectedScenarios() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		logger.Debug("scenario start", "scenario", s.Name, "concurrent", s.Concurrent)
		start := time.Now()
		out, err := s.run(env)
		elapsed := time.Since(start)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		logger.Debug("scenario done", "scenario", s.Name, "elapsed", elapsed)

		report.Results = append(report.Results, Result{
			Scenario: s,
			Elapsed:  elapsed,
			Outputs:  out,
		})
	}

	if err := Verify(ctx, report, cfg.Workers); err != nil {
		return nil, err
	}
	logger.Debug("outputs verified", "scenarios", len(report.Results))

	if cfg.PlotPath != "" {
		if err := SavePlot(report, cfg.PlotPath); err != nil {
			return nil, err
		}
		logger.Info("wrote timing chart", "path", cfg.PlotPath)
	}
	return report, nil
}
