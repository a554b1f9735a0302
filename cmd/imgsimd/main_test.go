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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ajroetker/go-imgsimd/config"
	"github.com/ajroetker/go-imgsimd/image"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keepConfig(t *testing.T) {
	t.Helper()
	saved := config.Current()
	logger := config.Logger()
	t.Cleanup(func() {
		config.Apply(saved)
		config.SetLogger(logger)
	})
}

func TestGammaRow(t *testing.T) {
	row := []float32{0, 0.25, 1, -1, 0.5}
	gammaRow(row, 0.5)
	assert.Equal(t, float32(0), row[0])
	assert.InDelta(t, 0.5, row[1], 1e-6)
	assert.InDelta(t, 1, row[2], 1e-6)
	assert.Equal(t, float32(0), row[3])
	assert.InDelta(t, 0.70710678, row[4], 1e-6)
}

func TestBenchIdentityGamma(t *testing.T) {
	for _, format := range []image.BaseType{image.Float, image.UInt8, image.Half, image.UInt16, image.Int32, image.Double} {
		t.Run(format.String(), func(t *testing.T) {
			src := image.New(image.NewSpec(40, 30, 3, format))
			seedGradient(src)
			want, err := checksum(src)
			require.NoError(t, err)

			res, err := runBench(benchOptions{Width: 40, Height: 30, Channels: 3, Format: format, Threads: 3, Gamma: 1, Iterations: 1})
			require.NoError(t, err)
			assert.InEpsilon(t, want, res.Checksum, 1e-3)
		})
	}
}

func TestBenchThreadsAgree(t *testing.T) {
	opts := benchOptions{Width: 64, Height: 48, Channels: 4, Format: image.Float, Gamma: 2.2, Iterations: 2}
	opts.Threads = 1
	one, err := runBench(opts)
	require.NoError(t, err)
	opts.Threads = 5
	five, err := runBench(opts)
	require.NoError(t, err)
	assert.Equal(t, one.Checksum, five.Checksum)
}

func TestBenchErrors(t *testing.T) {
	_, err := runBench(benchOptions{Width: 4, Height: 4, Channels: 1, Format: image.Float})
	assert.Error(t, err)
	_, err = runBench(benchOptions{Width: 0, Height: 4, Channels: 1, Format: image.Float, Gamma: 1})
	assert.Error(t, err)
	_, err = runBench(benchOptions{Width: 4, Height: 4, Channels: 1, Format: image.String, Gamma: 1})
	assert.ErrorContains(t, err, "Unsupported pixel data format 'string'")
}

func TestSampleTypes(t *testing.T) {
	assert.Equal(t, []string{"uint8", "int8", "uint16", "int16", "uint", "int", "half", "float", "double"}, sampleTypes())
}

func TestCommands(t *testing.T) {
	keepConfig(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "attrs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threads: 3\nlog_level: error\n"), 0o644))

	run := func(args ...string) string {
		t.Helper()
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute())
		return out.String()
	}

	assert.Contains(t, run("version"), "imgsimd v"+version)

	out := run("--config", path, "info")
	assert.Contains(t, out, "threads:          3")
	assert.Contains(t, out, "sample types:     uint8")
	assert.Equal(t, 3, config.Threads())

	out = run("--config", path, "info", "--yaml")
	assert.Contains(t, out, "threads: 3")
	assert.Contains(t, out, "log_level: error")

	out = run("bench", "--width", "32", "--height", "32", "--type", "uint8", "--threads", "2", "--iterations", "1")
	assert.Contains(t, out, "32x32x3 uint8, 2 threads")
	assert.Contains(t, out, "checksum:")
}

func TestCommandErrors(t *testing.T) {
	keepConfig(t)
	for _, args := range [][]string{
		{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "info"},
		{"--log-level", "loud", "info"},
		{"bench", "--type", "vec3"},
	} {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		assert.Error(t, cmd.Execute(), "%v", args)
	}
}
