package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadValues(t *testing.T) {
	path := writeFile(t, "values.txt", "# header\n1\n\n2.5 ignored\n  3\n")
	values, err := readValues(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, 3}, values)

	path = writeFile(t, "bad.txt", "1\nx\n")
	_, err = readValues(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.txt:2")
}

func TestReadPairs(t *testing.T) {
	path := writeFile(t, "pairs.tsv", "1\t2\n3 4\n#5 6\n")
	xs, ys, err := readPairs(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, xs)
	assert.Equal(t, []float64{2, 4}, ys)

	path = writeFile(t, "short.tsv", "1\n")
	_, _, err = readPairs(path)
	assert.Error(t, err)
}

func TestReadFrames(t *testing.T) {
	dir := t.TempDir()
	var names []string
	for i, level := range []uint8{0, 255} {
		img := image.NewGray(image.Rect(0, 0, 3, 2))
		for y := 0; y < 2; y++ {
			for x := 0; x < 3; x++ {
				img.SetGray(x, y, color.Gray{Y: level})
			}
		}
		name := filepath.Join(dir, []string{"a.png", "b.png"}[i])
		f, err := os.Create(name)
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, img))
		require.NoError(t, f.Close())
		names = append(names, name)
	}

	stack, err := readFrames(names)
	require.NoError(t, err)
	n, h, w, err := stack.Shape()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 3}, []int{n, h, w})
	assert.Equal(t, 0.0, stack[0][1][2])
	assert.Equal(t, 1.0, stack[1][0][0])

	_, err = readFrames([]string{filepath.Join(dir, "missing.png")})
	assert.Error(t, err)
}

func TestParseConfigDefaults(t *testing.T) {
	empty := ""
	cfg := &cmdConfig{config: &empty}
	require.NoError(t, cfg.ParseConfig())
	assert.Equal(t, 12*vg.Inch, cfg.style.Width)
	assert.Equal(t, 8*vg.Inch, cfg.style.Height)
	assert.Equal(t, 140.0, cfg.xmax)
	assert.Equal(t, 1000, cfg.sampleSize)
	assert.Equal(t, 30*time.Millisecond, cfg.interval)
	assert.NotNil(t, cfg.style.ColorMap)
}

func TestParseConfigFile(t *testing.T) {
	path := writeFile(t, "qcplot.yaml", "style:\n  width: 6\n  grid: true\ncomposition:\n  xmax: 100\nanimate:\n  interval_ms: 50\n")
	t.Setenv("QCPLOT_SCATTER_SAMPLE_SIZE", "200")
	cfg := &cmdConfig{config: &path}
	require.NoError(t, cfg.ParseConfig())
	assert.Equal(t, 6*vg.Inch, cfg.style.Width)
	assert.True(t, cfg.style.Grid)
	assert.Equal(t, 100.0, cfg.xmax)
	assert.Equal(t, 200, cfg.sampleSize)
	assert.Equal(t, 50*time.Millisecond, cfg.interval)
}

func TestParseConfigMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	cfg := &cmdConfig{config: &missing}
	assert.Error(t, cfg.ParseConfig())
}
