package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"loov.dev/elfmap/internal/palette"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, palette.DefaultSize, cfg.PaletteSize)
	require.Equal(t, FormatPNG, cfg.Format)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
palette_size: 360
spectrum: hsl
format: svg
scale: 4
workers: 2
selectors: [".text", "/^\\.data/"]
strip: true
`))
	require.NoError(t, err)
	require.Equal(t, Config{
		PaletteSize: 360,
		Spectrum:    "hsl",
		Format:      FormatSVG,
		Scale:       4,
		Workers:     2,
		Selectors:   []string{".text", `/^\.data/`},
		Strip:       true,
	}, cfg)
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	cfg, err = Parse([]byte("scale: 3\n"))
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Scale)
	require.Equal(t, palette.DefaultSize, cfg.PaletteSize)
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"unknown_field: 1\n",
		"palette_size: 0\n",
		"spectrum: plasma\n",
		"format: gif\n",
		"scale: -1\n",
		"workers: 0\n",
		"scale: [\n",
	}
	for _, data := range tests {
		_, err := Parse([]byte(data))
		require.Error(t, err, data)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elfmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: svg\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, FormatSVG, cfg.Format)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
