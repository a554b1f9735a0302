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
	"time"

	"github.com/ajroetker/go-imgsimd/config"
	"github.com/ajroetker/go-imgsimd/iba"
	"github.com/ajroetker/go-imgsimd/image"
	"github.com/ajroetker/go-imgsimd/simd"
	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type benchOptions struct {
	Width, Height, Channels int
	Format                  image.BaseType
	Threads                 int
	Gamma                   float32
	Iterations              int
}

type benchResult struct {
	Elapsed  time.Duration
	Checksum float64
}

func newBenchCmd() *cobra.Command {
	opts := benchOptions{}
	var typeName string
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time a gamma kernel over a synthetic image",
		Long: `bench fills a width x height image with a gradient and applies
x^(1/gamma), computed as exp(log(x)/gamma), through the common-type
dispatcher and the parallel executor. It prints the time per iteration and
a checksum of the result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := image.ParseBaseType(typeName)
			if err != nil {
				return err
			}
			opts.Format = format
			res, err := runBench(opts)
			if err != nil {
				return err
			}
			threads := opts.Threads
			if threads <= 0 {
				threads = config.Threads()
			}
			per := res.Elapsed / time.Duration(max(opts.Iterations, 1))
			p := message.NewPrinter(language.English)
			p.Fprintf(cmd.OutOrStdout(), "%dx%dx%d %s, %d threads, %d iterations: %v/iter (%.1f Mpix/s, %d samples)\n",
				opts.Width, opts.Height, opts.Channels, opts.Format, threads, opts.Iterations,
				per, float64(opts.Width*opts.Height)/per.Seconds()/1e6, opts.Width*opts.Height*opts.Channels)
			p.Fprintf(cmd.OutOrStdout(), "checksum: %.6f\n", res.Checksum)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.Width, "width", 1920, "Image width")
	cmd.Flags().IntVar(&opts.Height, "height", 1080, "Image height")
	cmd.Flags().IntVar(&opts.Channels, "channels", 3, "Channels per pixel")
	cmd.Flags().StringVar(&typeName, "type", "float", "Sample type (uint8, half, uint16, float, ...)")
	cmd.Flags().IntVar(&opts.Threads, "threads", 0, "Worker threads (0 = configured default)")
	cmd.Flags().Float32Var(&opts.Gamma, "gamma", 2.2, "Gamma")
	cmd.Flags().IntVar(&opts.Iterations, "iterations", 10, "Timed iterations")
	return cmd
}

func runBench(opts benchOptions) (benchResult, error) {
	if opts.Width <= 0 || opts.Height <= 0 || opts.Channels <= 0 {
		return benchResult{}, fmt.Errorf("bench: image size must be positive")
	}
	if opts.Gamma == 0 {
		return benchResult{}, fmt.Errorf("bench: gamma must not be zero")
	}
	src := image.New(image.NewSpec(opts.Width, opts.Height, opts.Channels, opts.Format))
	seedGradient(src)

	types := gammaTypes(1/opts.Gamma, opts.Threads)
	var (
		elapsed time.Duration
		work    *image.Buf
	)
	for range max(opts.Iterations, 1) {
		work = src.Clone()
		start := time.Now()
		if err := iba.DispatchCommonTypes("gamma", work.Format(), work, work.ROI(), types); err != nil {
			return benchResult{}, err
		}
		elapsed += time.Since(start)
	}
	sum, err := checksum(work)
	if err != nil {
		return benchResult{}, err
	}
	config.Logger().Info("bench: done", "format", opts.Format, "elapsed", elapsed)
	return benchResult{Elapsed: elapsed, Checksum: sum}, nil
}

// seedGradient fills b with a diagonal ramp from 0 to 1.
func seedGradient(b *image.Buf) {
	spec := b.Spec()
	denom := float32(max(1, spec.Width+spec.Height+spec.NChannels-3))
	for y := range spec.Height {
		for x := range spec.Width {
			for c := range spec.NChannels {
				b.SetFloat(spec.X+x, spec.Y+y, spec.Z, c, float32(x+y+c)/denom)
			}
		}
	}
}

func gammaTypes(g float32, threads int) iba.CommonTypes1 {
	return iba.CommonTypes1{
		Float:  gammaKernel[float32](g, threads),
		UInt8:  gammaKernel[uint8](g, threads),
		Half:   gammaKernel[simd.Half](g, threads),
		UInt16: gammaKernel[uint16](g, threads),
	}
}

func gammaKernel[T image.Sample](g float32, threads int) iba.Op1 {
	return func(r *image.Buf, roi image.ROI) error {
		p := image.Pixels[T](r)
		if p == nil {
			return fmt.Errorf("gamma: %v kernel on %v image", image.BaseTypeOf[T](), r.Format())
		}
		spec := r.Spec()
		nch := spec.NChannels
		return iba.ParallelImage(roi, threads, func(band image.ROI) error {
			tmp := make([]float32, band.Width()*nch)
			for z := band.ZBegin; z < band.ZEnd; z++ {
				for y := band.YBegin; y < band.YEnd; y++ {
					row := p.RowSlice(y-spec.Y, z-spec.Z)
					seg := row[(band.XBegin-spec.X)*nch : (band.XEnd-spec.X)*nch]
					image.RowToFloat(tmp, seg)
					gammaRow(tmp, g)
					image.RowFromFloat(seg, tmp)
				}
			}
			return nil
		})
	}
}

// gammaRow raises every value of row to the power g, with values at or
// below zero mapped to zero.
func gammaRow(row []float32, g float32) {
	tiny := simd.Float4Splat(1e-30)
	for i := 0; i < len(row); i += simd.Lanes {
		v := simd.LoadFloat4(row[i:])
		r := simd.Exp(simd.Log(v.Max(tiny)).MulScalar(g))
		simd.Blend0(r, v.Gt(simd.Float4Zero())).Store(row[i:])
	}
}

// checksum returns the sum of every sample of b as a float.
func checksum(b *image.Buf) (float64, error) {
	f := &image.Buf{}
	if err := f.CopyFrom(b, image.Float); err != nil {
		return 0, err
	}
	p := image.Pixels[float32](f)
	spec := f.Spec()
	var sum float64
	for z := range spec.Depth {
		for y := range spec.Height {
			sum += float64(vek32.Sum(p.RowSlice(y, z)))
		}
	}
	return sum, nil
}
