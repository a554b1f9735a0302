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

package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-imgsimd/simd"
)

// keepAttributes restores the published attributes after a test.
func keepAttributes(t *testing.T) {
	t.Helper()
	saved := Current()
	t.Cleanup(func() { Apply(saved) })
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, runtime.NumCPU(), d.Threads)
	assert.False(t, d.DeterministicReductions)
	assert.NoError(t, d.Validate())
}

func TestLoad(t *testing.T) {
	a, err := Load(strings.NewReader("threads: 3\ndeterministic_reductions: true\nlog_level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, Attributes{Threads: 3, DeterministicReductions: true, LogLevel: "debug"}, a)

	a, err = Load(strings.NewReader("# nothing here\n"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), a)

	a, err = Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), a)

	_, err = Load(strings.NewReader("threds: 3\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Load(strings.NewReader("log_level: loud\n"))
	assert.Error(t, err)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imgsimd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threads: 2\n"), 0o644))

	t.Setenv(EnvThreads, "")
	t.Setenv(EnvDeterministic, "")
	a, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Threads)

	// Environment wins over the file.
	t.Setenv(EnvThreads, "5")
	t.Setenv(EnvDeterministic, "yes")
	a, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, a.Threads)
	assert.True(t, a.DeterministicReductions)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFromEnvIgnoresMalformed(t *testing.T) {
	t.Setenv(EnvThreads, "many")
	t.Setenv(EnvDeterministic, "")
	base := Attributes{Threads: 7}
	assert.Equal(t, 7, FromEnv(base).Threads)
}

func TestApply(t *testing.T) {
	keepAttributes(t)

	Apply(Attributes{Threads: 3, DeterministicReductions: true})
	assert.Equal(t, 3, Threads())
	assert.True(t, simd.DeterministicReductions())
	assert.True(t, Current().DeterministicReductions)

	Apply(Attributes{Threads: 0})
	assert.Equal(t, runtime.NumCPU(), Threads())
	assert.False(t, simd.DeterministicReductions())
}

func TestSetThreads(t *testing.T) {
	keepAttributes(t)

	SetThreads(11)
	assert.Equal(t, 11, Threads())
	assert.Equal(t, 11, Current().Threads)
	SetThreads(-1)
	assert.Equal(t, runtime.NumCPU(), Threads())
}

func TestMarshalRoundTrip(t *testing.T) {
	a := Attributes{Threads: 4, DeterministicReductions: true, LogLevel: "info"}
	data, err := a.Marshal()
	require.NoError(t, err)
	b, err := Load(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" error ", slog.LevelError},
		{"info+2", slog.LevelInfo + 2},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	_, err := ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, h.Enabled(context.Background(), level))
	}
	assert.NoError(t, h.Handle(context.Background(), slog.Record{}))
	assert.IsType(t, nopHandler{}, h.WithAttrs([]slog.Attr{slog.String("key", "val")}))
	assert.IsType(t, nopHandler{}, h.WithGroup("group"))
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	assert.False(t, orig.Enabled(context.Background(), slog.LevelError), "default logger is silent")

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	keepAttributes(t)
	Apply(Attributes{Threads: 2})
	assert.Contains(t, buf.String(), "threads=2")

	SetLogger(nil)
	require.NotNil(t, Logger())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
