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
	"fmt"
	"io"
	"time"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Result is the timing and output of one scenario.
type Result struct {
	Scenario Scenario
	// Elapsed is the wall clock time around both invocations, including the
	// wait for submitted tasks.
	Elapsed time.Duration
	Outputs Outputs
}

// Report collects the results of a run in execution order.
type Report struct {
	Config  Config
	Inputs  Inputs
	Results []Result
}

// Result returns the result of the named scenario.
func (r *Report) Result(name string) (Result, bool) {
	return lo.Find(r.Results, func(res Result) bool { return res.Scenario.Name == name })
}

// Speedup returns how many times faster the named scenario ran than base.
// It is 0 when either scenario is missing or took no measurable time.
func (r *Report) Speedup(name, base string) float64 {
	res, ok := r.Result(name)
	ref, refOK := r.Result(base)
	if !ok || !refOK || res.Elapsed <= 0 {
		return 0
	}
	return ref.Elapsed.Seconds() / res.Elapsed.Seconds()
}

// WriteText prints the input shapes, then one line per scenario with the
// elapsed seconds, the output shapes, and the speedup over the naive scenario
// when it ran. dispatch names the CPU's SIMD level for the header.
func (r *Report) WriteText(w io.Writer, dispatch string) error {
	p := message.NewPrinter(language.English)
	in := r.Inputs

	if _, err := p.Fprintf(w, "inputs: A %d×%d, B %d×%d, C %d×%d, seed %d, workers %d, cpu %s\n",
		in.A.Rows, in.A.Cols, in.B.Rows, in.B.Cols, in.C.Rows, in.C.Cols,
		r.Config.Seed, r.Config.Workers, dispatch); err != nil {
		return err
	}

	width := lo.Max(lo.Map(r.Results, func(res Result, _ int) int { return len(res.Scenario.Name) }))
	_, haveNaive := r.Result(ScenarioNaive)

	for _, res := range r.Results {
		x, y := res.Outputs[0], res.Outputs[1]
		line := fmt.Sprintf("%-*s", width, res.Scenario.Name) +
			p.Sprintf(" %12.6fs  (%d×%d + %d×%d)", res.Elapsed.Seconds(), x.Rows, x.Cols, y.Rows, y.Cols)
		if haveNaive && res.Scenario.Name != ScenarioNaive {
			if s := r.Speedup(res.Scenario.Name, ScenarioNaive); s > 0 {
				line += fmt.Sprintf("  %.1fx vs naive", s)
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
