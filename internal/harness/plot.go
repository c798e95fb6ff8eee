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
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SavePlot writes a bar chart of the scenario timings to path. The image
// format follows the file extension (png, svg, pdf, ...).
func SavePlot(report *Report, path string) error {
	if len(report.Results) == 0 {
		return fmt.Errorf("plot %s: no results", path)
	}

	values := make(plotter.Values, len(report.Results))
	names := make([]string, len(report.Results))
	for i, res := range report.Results {
		values[i] = res.Elapsed.Seconds()
		names[i] = res.Scenario.Name
	}

	p := plot.New()
	in := report.Inputs
	p.Title.Text = fmt.Sprintf("pairwise dot product: A %v vs B %v, C %v", in.A, in.B, in.C)
	p.Y.Label.Text = "seconds"

	bars, err := plotter.NewBarChart(values, vg.Points(28))
	if err != nil {
		return fmt.Errorf("plot %s: %w", path, err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 66, G: 133, B: 244, A: 255}

	p.Add(bars)
	p.NominalX(names...)

	width := vg.Length(len(names)+2) * vg.Inch
	if err := p.Save(width, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("plot %s: %w", path, err)
	}
	return nil
}
