package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-smath/smath"
	"github.com/ajroetker/go-smath/smath/flat"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the SIMD dispatch level, CPU features and element backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeInfo(cmd.OutOrStdout())
		},
	}
}

func writeInfo(w io.Writer) error {
	features := smath.CPUFeatures()
	if len(features) == 0 {
		features = []string{"none"}
	}
	vekFeatures := flat.CPUFeatures()
	if len(vekFeatures) == 0 {
		vekFeatures = []string{"none"}
	}
	if _, err := fmt.Fprintf(w, "dispatch level: %s\n", smath.CurrentName()); err != nil {
		return err
	}
	hooks := "none, scalar loops"
	if smath.Accelerated() {
		hooks = "installed"
	}
	fmt.Fprintf(w, "simd hooks:     %s\n", hooks)
	fmt.Fprintf(w, "simd disabled:  %t\n", smath.NoSimdEnv())
	fmt.Fprintf(w, "cpu features:   %s\n", strings.Join(features, ","))
	fmt.Fprintf(w, "flat (vek):     accelerated=%t features=%s\n", flat.Accelerated(), strings.Join(vekFeatures, ","))
	fmt.Fprintf(w, "backends:\n")
	for _, b := range smath.Backends() {
		fmt.Fprintf(w, "  %-8s %s\n", b.Elem, b.Name)
	}
	return nil
}
