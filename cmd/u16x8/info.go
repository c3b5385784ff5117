// Copyright 2025 go-highway Authors
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
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/simd128/hwy"
)

type cpuFeature struct {
	name    string
	present bool
}

// cpuFeatures lists the features relevant to 16-bit lane kernels. The x86
// and arm64 fields are populated only on their own architecture.
func cpuFeatures() []cpuFeature {
	return []cpuFeature{
		{"sse2", cpu.X86.HasSSE2},
		{"sse41", cpu.X86.HasSSE41},
		{"avx2", cpu.X86.HasAVX2},
		{"avx512f", cpu.X86.HasAVX512F},
		{"avx512bw", cpu.X86.HasAVX512BW},
		{"asimd", cpu.ARM64.HasASIMD},
		{"sve", cpu.ARM64.HasSVE},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch level, kernel backend and CPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := hwy.Dispatch()
			present := lo.FilterMap(cpuFeatures(), func(f cpuFeature, _ int) (string, bool) {
				return f.name, f.present
			})
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "level:    %s\n", d.Level)
			fmt.Fprintf(w, "target:   %s\n", d.Name)
			fmt.Fprintf(w, "width:    %d\n", d.Width)
			fmt.Fprintf(w, "kernel:   %s\n", d.Kernel)
			fmt.Fprintf(w, "no-simd:  %t\n", d.NoSimd)
			fmt.Fprintf(w, "features: %s\n", lo.Ternary(len(present) == 0, "none", strings.Join(present, ",")))
			return nil
		},
	}
}
