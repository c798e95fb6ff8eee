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
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/ajroetker/go-pairdot/hwy/contrib/pairdot"
)

// progressObserver returns a row observer that advances a progress bar on w,
// and the function that finishes the bar. With w == nil it returns a nil
// observer, which the kernel skips.
func progressObserver(w io.Writer) func(label string, rows int) (pairdot.RowObserver, func()) {
	return func(label string, rows int) (pairdot.RowObserver, func()) {
		if w == nil {
			return nil, func() {}
		}

		bar := progressbar.NewOptions(rows,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(label),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(30),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		observe := func(int) {
			_ = bar.Add(1)
		}
		return observe, func() { _ = bar.Finish() }
	}
}
