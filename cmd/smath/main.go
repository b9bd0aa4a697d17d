// Copyright 2025 go-smath Authors
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

// Command smath regenerates the per-shape code of package smath and reports
// the runtime SIMD configuration.
//
// Usage:
//
//	smath gen --output ./smath                 # rewrite z_vector_gen.go and z_swizzle_gen.go
//	smath gen --config gen.yaml --output ./smath
//	smath info                                 # dispatch level, CPU features, backends
//
// Or via go:generate from package smath:
//
//	//go:generate go run ../cmd/smath gen --output .
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-smath/smath"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:           "smath",
		Short:         "Code generator and diagnostics for the smath vector package",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
			smath.SetLogger(logger)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(newGenCmd())
	rootCmd.AddCommand(newInfoCmd())
	return rootCmd
}
