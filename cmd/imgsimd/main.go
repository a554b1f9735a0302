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

// Command imgsimd reports the SIMD backend and settings in use and runs
// a parallel pixel kernel benchmark.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ajroetker/go-imgsimd/config"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath, logLevel string

	rootCmd := &cobra.Command{
		Use:   "imgsimd",
		Short: "SIMD image processing primitives",
		Long: `imgsimd exercises the small-vector SIMD layer and the parallel image
algorithm harness.

Settings come from a YAML file (--config) and the IMGSIMD_THREADS,
IMGSIMD_DETERMINISTIC and IMGSIMD_LOG_LEVEL environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(configPath, logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML attributes file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides the config)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "imgsimd v%s (%s)\n", version, commit)
		},
	})
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newBenchCmd())
	return rootCmd
}

// setup loads and applies the attributes and installs a stderr logger at
// the configured level.
func setup(configPath, logLevel string) error {
	attrs := config.FromEnv(config.Defaults())
	if configPath != "" {
		var err error
		if attrs, err = config.LoadFile(configPath); err != nil {
			return err
		}
	}
	if logLevel != "" {
		attrs.LogLevel = logLevel
	}
	level, err := config.ParseLogLevel(attrs.LogLevel)
	if err != nil {
		return err
	}
	config.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	config.Apply(attrs)
	return nil
}
