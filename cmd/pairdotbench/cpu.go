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
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-pairdot/hwy"
)

func newCPUCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpu",
		Short: "Print the detected SIMD level and CPU feature flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printCPUInfo(cmd.OutOrStdout())
			return nil
		},
	}
}

func printCPUInfo(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Fprintf(w, "Dispatch width: %d bytes (%d float64 lanes)\n", hwy.CurrentWidth(), hwy.MaxLanes[float64]())
	fmt.Fprintln(w)

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features(w)
	case "amd64":
		printAMD64Features(w)
	}
}

func printARM64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Fprintf(w, "  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Fprintf(w, "  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Fprintf(w, "  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Fprintf(w, "  HasASIMDDP:  %v (dot product, ARMv8.2-A)\n", cpu.ARM64.HasASIMDDP)
	fmt.Fprintf(w, "  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Fprintf(w, "  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
	fmt.Fprintf(w, "  HasSSE2:     %v\n", cpu.X86.HasSSE2)
	fmt.Fprintf(w, "  HasSSE41:    %v\n", cpu.X86.HasSSE41)
	fmt.Fprintf(w, "  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Fprintf(w, "  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Fprintf(w, "  HasFMA:      %v\n", cpu.X86.HasFMA)
	fmt.Fprintf(w, "  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Fprintf(w, "  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
}
