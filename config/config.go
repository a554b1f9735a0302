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

// Package config holds the process-wide attributes that image operations
// consult: the default number of worker threads and whether float
// reductions must be computed in a fixed order.
//
// Attributes are resolved with the precedence
//
//  1. Built-in defaults (lowest priority)
//  2. YAML config file
//  3. Environment variables
//
// and published with Apply. Readers such as Threads are lock-free and may
// be called from any goroutine.
//
// Environment variables:
//
//	IMGSIMD_THREADS        default worker count (0 = number of CPUs)
//	IMGSIMD_DETERMINISTIC  force left-to-right float reductions (true/1/yes/on)
//	IMGSIMD_LOG_LEVEL      debug, info, warn or error (used by the CLI)
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-imgsimd/simd"
)

// Environment variable names.
const (
	EnvThreads       = "IMGSIMD_THREADS"
	EnvDeterministic = "IMGSIMD_DETERMINISTIC"
	EnvLogLevel      = "IMGSIMD_LOG_LEVEL"
)

// Attributes are the global settings.
type Attributes struct {
	// Threads is the worker count used when an operation is asked for 0
	// threads. Zero or less means the number of CPUs.
	Threads int `yaml:"threads"`

	// DeterministicReductions forces horizontal float sums to be computed
	// left to right on every backend.
	DeterministicReductions bool `yaml:"deterministic_reductions"`

	// LogLevel is the minimum slog level for command-line tools.
	LogLevel string `yaml:"log_level"`
}

// Defaults returns the built-in attributes.
func Defaults() Attributes {
	return Attributes{
		Threads:  runtime.NumCPU(),
		LogLevel: "warn",
	}
}

// Validate reports attribute values that cannot be applied.
func (a Attributes) Validate() error {
	if _, err := ParseLogLevel(a.LogLevel); err != nil {
		return err
	}
	return nil
}

// FromEnv returns base with any attributes set in the environment applied
// on top. Malformed values are ignored.
func FromEnv(base Attributes) Attributes {
	base.Threads = getEnvInt(EnvThreads, base.Threads)
	base.DeterministicReductions = getEnvBool(EnvDeterministic, base.DeterministicReductions)
	base.LogLevel = getEnv(EnvLogLevel, base.LogLevel)
	return base
}

// Load parses YAML attributes from r on top of the defaults. Unknown keys
// are an error.
func Load(r io.Reader) (Attributes, error) {
	a := Defaults()
	data, err := io.ReadAll(r)
	if err != nil {
		return a, fmt.Errorf("config: read: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return a, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil && !errors.Is(err, io.EOF) {
		return a, fmt.Errorf("config: parse: %w", err)
	}
	if err := a.Validate(); err != nil {
		return a, err
	}
	return a, nil
}

// LoadFile loads attributes from a YAML file, then applies the environment.
func LoadFile(path string) (Attributes, error) {
	f, err := os.Open(path)
	if err != nil {
		return Defaults(), fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	a, err := Load(f)
	if err != nil {
		return a, fmt.Errorf("%s: %w", path, err)
	}
	a = FromEnv(a)
	return a, a.Validate()
}

// Marshal returns the YAML form of a.
func (a Attributes) Marshal() ([]byte, error) {
	return yaml.Marshal(a)
}

var (
	threads atomic.Int64
	applyMu sync.Mutex
	current Attributes
)

func init() {
	a := FromEnv(Defaults())
	if a.Validate() != nil {
		a.LogLevel = Defaults().LogLevel
	}
	Apply(a)
}

// Apply publishes a as the process-wide attributes.
func Apply(a Attributes) {
	applyMu.Lock()
	defer applyMu.Unlock()
	if a.Threads <= 0 {
		a.Threads = runtime.NumCPU()
	}
	current = a
	threads.Store(int64(a.Threads))
	simd.SetDeterministicReductions(a.DeterministicReductions)
	Logger().Debug("config: applied attributes",
		"threads", a.Threads,
		"deterministic_reductions", a.DeterministicReductions)
}

// Current returns the attributes last published with Apply.
func Current() Attributes {
	applyMu.Lock()
	defer applyMu.Unlock()
	c := current
	c.Threads = Threads()
	return c
}

// Threads returns the default worker count. It is read afresh on every
// call, so SetThreads takes effect for the next operation.
func Threads() int {
	return int(threads.Load())
}

// SetThreads changes the default worker count. Values <= 0 select the
// number of CPUs.
func SetThreads(n int) {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	threads.Store(int64(n))
}

// ParseLogLevel parses a level name as accepted by slog ("debug", "info",
// "warn", "error", optionally with an offset such as "info+2"). The empty
// string is "warn".
func ParseLogLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelWarn, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn, fmt.Errorf("config: log level %q: %w", s, err)
	}
	return l, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		val = strings.ToLower(strings.TrimSpace(val))
		return val == "true" || val == "1" || val == "yes" || val == "on"
	}
	return defaultVal
}
