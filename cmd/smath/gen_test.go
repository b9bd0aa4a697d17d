package main

import (
	"bytes"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-smath/smath"
)

func TestGenerateMatchesCheckedIn(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	require.NoError(t, Generate(cfg, dir))

	for _, name := range []string{cfg.VectorFile, cfg.SwizzleFile} {
		got, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		want, err := os.ReadFile(filepath.Join("..", "..", "smath", name))
		require.NoError(t, err)
		assert.True(t, bytes.Equal(want, got), "%s is stale; run go generate ./smath", name)
	}
}

func TestCheckedInIsFormatted(t *testing.T) {
	cfg := DefaultConfig()
	for _, name := range []string{cfg.VectorFile, cfg.SwizzleFile} {
		src, err := os.ReadFile(filepath.Join("..", "..", "smath", name))
		require.NoError(t, err)
		formatted, err := format.Source(src)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(src, formatted), "%s is not gofmt-clean", name)
	}
}

func TestGenerateSubset(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Package:     "vec",
		Axes:        []string{"a", "b", "c"},
		Shapes:      []ShapeConfig{{Lanes: 3, Aligned: false}},
		VectorFile:  "v.go",
		SwizzleFile: "s.go",
	}
	require.NoError(t, Generate(cfg, dir))

	src, err := os.ReadFile(filepath.Join(dir, "s.go"))
	require.NoError(t, err)
	text := string(src)
	assert.True(t, strings.HasPrefix(text, "// Code generated by smath gen. DO NOT EDIT."))
	assert.Contains(t, text, "package vec")
	assert.Contains(t, text, "func (v Vec3P[T]) CBA() Vec3P[T] { return v.shuffle3(2, 1, 0) }")
	assert.Contains(t, text, "func (v *Vec3P[T]) BCPtr() *Vec2P[T]")
	assert.NotContains(t, text, "Vec4[T]) ")

	// 3 + 3^2 + 3^3 + 3^4 readers.
	assert.Equal(t, 3+9+27+81, strings.Count(text, "() T {")+strings.Count(text, "{ return v.shuffle"))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"Default", func(*Config) {}, ""},
		{"NoPackage", func(c *Config) { c.Package = "" }, "package is required"},
		{"NoShapes", func(c *Config) { c.Shapes = nil }, "no shapes"},
		{"FiveLanes", func(c *Config) { c.Shapes = []ShapeConfig{{Lanes: 5}} }, "5 lanes"},
		{"FewAxes", func(c *Config) { c.Axes = []string{"x", "y"} }, "only 2 axes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	yaml := `package: geom
axes: [u, v]
shapes:
  - lanes: 2
    aligned: true
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "geom", cfg.Package)
	assert.Equal(t, []string{"u", "v"}, cfg.Axes)
	assert.Equal(t, []ShapeConfig{{Lanes: 2, Aligned: true}}, cfg.Shapes)
	assert.Equal(t, "z_vector_gen.go", cfg.VectorFile, "unset fields keep their defaults")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("shapes: [{lanes: 9}]\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.ErrorContains(t, err, "9 lanes")
}

func TestGenCommand(t *testing.T) {
	dir := t.TempDir()
	cmd := newRootCmd()
	cmd.SetArgs([]string{"gen", "--output", dir})
	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(dir, "z_vector_gen.go"))
	assert.FileExists(t, filepath.Join(dir, "z_swizzle_gen.go"))
}

func TestInfoCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"info"})
	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, "dispatch level:")
	if smath.Accelerated() {
		assert.Contains(t, text, "simd hooks:     installed")
	} else {
		assert.Contains(t, text, "simd hooks:     none, scalar loops")
	}
	assert.Contains(t, text, "flat (vek):")
	assert.Contains(t, text, "float32")
	assert.Contains(t, text, "bool")
}
