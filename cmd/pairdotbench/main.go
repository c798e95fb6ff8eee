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

// Command pairdotbench times the pairwise dot-product kernel under several
// execution strategies.
//
// Usage:
//
//	pairdotbench                         # A 1000x10, B 2000x10, C 3000x10, seed 100
//	pairdotbench --scenarios naive,compiled
//	pairdotbench --rows-a 5000 --workers 4 --plot timings.png
//	pairdotbench cpu                     # SIMD level and CPU feature flags
//	pairdotbench scenarios               # list scenario names
//
// Timings are printed to stdout; progress bars and diagnostics go to stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
