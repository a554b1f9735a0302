// Copyright 2025 go-imgsimd Authors
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
	"strings"

	"github.com/ajroetker/go-imgsimd/config"
	"github.com/ajroetker/go-imgsimd/image"
	"github.com/ajroetker/go-imgsimd/simd"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"
)

func newInfoCmd() *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the SIMD backend, settings and supported sample types",
		RunE: func(cmd *cobra.Command, args []string) error {
			if asYAML {
				data, err := config.Current().Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			writeInfo(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the effective attributes as YAML")
	return cmd
}

// sampleTypes returns the names of the types a Buf can store pixels in.
func sampleTypes() []string {
	all := make([]image.BaseType, 0, image.Ptr+1)
	for t := image.Unknown; t <= image.Ptr; t++ {
		all = append(all, t)
	}
	return lo.FilterMap(all, func(t image.BaseType, _ int) (string, bool) {
		return t.String(), t.HasSampleType()
	})
}

func writeInfo(w io.Writer) {
	attrs := config.Current()
	vi := vek32.Info()

	fmt.Fprintf(w, "simd backend:     %s (%s, %d bytes)\n", simd.CurrentName(), simd.CurrentLevel(), simd.CurrentWidth())
	fmt.Fprintf(w, "fma:              %t\n", simd.HasFMA())
	fmt.Fprintf(w, "sse4:             %t\n", simd.HasSSE4())
	fmt.Fprintf(w, "deterministic:    %t\n", simd.DeterministicReductions())
	fmt.Fprintf(w, "threads:          %d\n", attrs.Threads)
	fmt.Fprintf(w, "log level:        %s\n", attrs.LogLevel)
	fmt.Fprintf(w, "vek32 simd:       %t [%s]\n", vi.Acceleration, strings.Join(vi.CPUFeatures, " "))
	fmt.Fprintf(w, "sample types:     %s\n", strings.Join(sampleTypes(), " "))
}
