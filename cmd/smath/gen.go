package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config describes what gen emits. The zero-config default reproduces the
// checked-in files of package smath.
type Config struct {
	Package     string        `yaml:"package"`
	Axes        []string      `yaml:"axes"`
	Shapes      []ShapeConfig `yaml:"shapes"`
	VectorFile  string        `yaml:"vector_file"`
	SwizzleFile string        `yaml:"swizzle_file"`
}

// ShapeConfig is one vector type to generate.
type ShapeConfig struct {
	Lanes   int  `yaml:"lanes"`
	Aligned bool `yaml:"aligned"`
}

// DefaultConfig returns the configuration used for package smath.
func DefaultConfig() Config {
	return Config{
		Package: "smath",
		Axes:    []string{"x", "y", "z", "w"},
		Shapes: []ShapeConfig{
			{Lanes: 2, Aligned: true},
			{Lanes: 3, Aligned: true},
			{Lanes: 4, Aligned: true},
			{Lanes: 2, Aligned: false},
			{Lanes: 3, Aligned: false},
			{Lanes: 4, Aligned: false},
		},
		VectorFile:  "z_vector_gen.go",
		SwizzleFile: "z_swizzle_gen.go",
	}
}

// LoadConfig reads a YAML config. Fields left out keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that every shape can be generated.
func (c Config) Validate() error {
	if c.Package == "" {
		return fmt.Errorf("config: package is required")
	}
	if len(c.Shapes) == 0 {
		return fmt.Errorf("config: no shapes")
	}
	for _, s := range c.Shapes {
		if s.Lanes < 2 || s.Lanes > 4 {
			return fmt.Errorf("config: shape with %d lanes, want 2, 3 or 4", s.Lanes)
		}
		if s.Lanes > len(c.Axes) {
			return fmt.Errorf("config: shape with %d lanes but only %d axes", s.Lanes, len(c.Axes))
		}
	}
	return nil
}

func newGenCmd() *cobra.Command {
	var configPath, outputDir string
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Regenerate the per-shape methods and swizzles of package smath",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = LoadConfig(configPath); err != nil {
					return err
				}
			}
			return Generate(cfg, outputDir)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML generator config (default: built-in)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Directory of package smath")
	return cmd
}

// Generate writes the vector and swizzle files for cfg into dir.
func Generate(cfg Config, dir string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g := &generator{cfg: cfg}
	files := []struct {
		name string
		emit func(buf *bytes.Buffer)
	}{
		{cfg.VectorFile, g.emitVectorFile},
		{cfg.SwizzleFile, g.emitSwizzleFile},
	}
	for _, f := range files {
		var buf bytes.Buffer
		f.emit(&buf)
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return fmt.Errorf("format %s: %w", f.name, err)
		}
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, src, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		slog.Debug("generated", "file", path, "bytes", len(src))
	}
	return nil
}
