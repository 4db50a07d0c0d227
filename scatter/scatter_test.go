package scatter

import (
	"errors"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"

	vt "github.com/hawkjo/visualizationtools"
)

func TestRanks(t *testing.T) {
	assert.Equal(t, []float64{2, 3.5, 3.5, 1}, Ranks([]float64{10, 20, 20, 5}))
	assert.Equal(t, []float64{2, 2, 2}, Ranks([]float64{1, 1, 1}))
	assert.Empty(t, Ranks(nil))
}

func TestPearson(t *testing.T) {
	r, p, err := Pearson([]float64{1, 2, 3, 4, 5}, []float64{2, 4, 5, 4, 5})
	require.NoError(t, err)
	assert.InDelta(t, 0.7745967, r, 1e-6)
	assert.InDelta(t, 0.1240271, p, 1e-5)

	r, p, err = Pearson([]float64{1, 2, 3}, []float64{3, 2, 1})
	require.NoError(t, err)
	assert.InDelta(t, -1, r, 1e-12)
	assert.InDelta(t, 0, p, 1e-6)

	_, p, err = Pearson([]float64{1, 2}, []float64{1, 3})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(p))
}

func TestSpearman(t *testing.T) {
	// Monotone but not linear.
	r, p, err := Spearman([]float64{1, 2, 3, 4, 5}, []float64{1, 8, 27, 64, 125})
	require.NoError(t, err)
	assert.InDelta(t, 1, r, 1e-12)
	assert.InDelta(t, 0, p, 1e-6)

	_, _, err = Spearman([]float64{1}, []float64{1, 2})
	assert.True(t, errors.Is(err, vt.ErrLengthMismatch))
}

func TestLinearFit(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2*x + 1
	}
	slope, intercept, err := LinearFit(xs, ys)
	require.NoError(t, err)
	assert.InDelta(t, 2, slope, 1e-12)
	assert.InDelta(t, 1, intercept, 1e-12)

	_, _, err = LinearFit(nil, nil)
	assert.True(t, errors.Is(err, vt.ErrNoData))
}

func TestAllClose(t *testing.T) {
	assert.True(t, allClose([]float64{1, 2}, []float64{1, 2 + 1e-9}))
	assert.False(t, allClose([]float64{1, 2}, []float64{1, 2.1}))
	assert.False(t, allClose([]float64{1, math.NaN()}, []float64{1, math.NaN()}))
}

func correlated(n int, seed int64) (xs, ys []float64) {
	rnd := rand.New(rand.NewSource(seed))
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range xs {
		xs[i] = rnd.NormFloat64()
		ys[i] = 3*xs[i] + rnd.NormFloat64()*0.5
	}
	return xs, ys
}

func TestDensity(t *testing.T) {
	xs := []float64{0, 0.1, -0.1, 0.05, 5}
	ys := []float64{0, -0.1, 0.1, 0.05, 5}
	dens, ok := Density(xs, ys, []int{0, 1, 2, 3, 4})
	require.True(t, ok)
	require.Len(t, dens, 5)
	for _, d := range dens {
		assert.True(t, d > 0)
	}
	assert.True(t, dens[0] > dens[4])

	_, ok = Density(xs, ys, []int{0, 1})
	assert.False(t, ok)
}

func TestEnhanced(t *testing.T) {
	xs, ys := correlated(1500, 3)
	opts := DefaultOptions()
	opts.HistsHeight = 0.2
	st, err := Enhanced(plot.New(), xs, ys, opts)
	require.NoError(t, err)
	assert.False(t, st.Same)
	assert.True(t, st.Fitted)
	assert.InDelta(t, 3, st.Slope, 0.1)
	assert.True(t, st.R > 0.9)
	assert.Len(t, st.Densities, len(xs))
}

func TestEnhancedSameLists(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	p := plot.New()
	st, err := Enhanced(p, xs, xs, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, st.Same)
	assert.False(t, st.Fitted)
	assert.Nil(t, st.Densities)
	assert.InDelta(t, 1, st.R, 1e-12)
	require.NoError(t, Diagonal(p))
}

func TestEnhancedConstantX(t *testing.T) {
	for _, tc := range []struct {
		name   string
		xs, ys []float64
	}{
		{"constant", []float64{1, 1, 1, 1}, []float64{2, 2, 2, 2}},
		{"spread y", []float64{1, 1, 1, 1}, []float64{1, 2, 3, 4}},
		{"single point", []float64{1}, []float64{2}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := plot.New()
			st, err := Enhanced(p, tc.xs, tc.ys, DefaultOptions())
			require.NoError(t, err)
			assert.False(t, st.Same)
			assert.False(t, st.Fitted)
			assert.Equal(t, 0.0, st.Slope)
			assert.Equal(t, 0.0, st.Intercept)
			assert.True(t, math.IsNaN(st.R))
		})
	}
}

func TestEnhancedNaN(t *testing.T) {
	_, err := Enhanced(plot.New(), []float64{1, math.NaN(), 3}, []float64{1, 2, 3}, DefaultOptions())
	assert.True(t, errors.Is(err, ErrNaN))
	assert.Contains(t, err.Error(), "x[1]")

	_, _, err = Pearson([]float64{1, 2, 3}, []float64{1, 2, math.NaN()})
	assert.True(t, errors.Is(err, ErrNaN))
	assert.Contains(t, err.Error(), "y[2]")
}

func TestDensityColorsKeepsRange(t *testing.T) {
	style := vt.DefaultStyle()
	style.ColorMap.SetMin(-1)
	style.ColorMap.SetMax(1)
	colors := densityColors([]float64{0.5, 2, 8}, style.ColorMap)
	require.Len(t, colors, 3)
	assert.NotEqual(t, colors[0], colors[2])
	assert.Equal(t, -1.0, style.ColorMap.Min())
	assert.Equal(t, 1.0, style.ColorMap.Max())
}

func TestEnhancedErrors(t *testing.T) {
	_, err := Enhanced(plot.New(), []float64{1}, []float64{1, 2}, DefaultOptions())
	assert.True(t, errors.Is(err, vt.ErrLengthMismatch))
	_, err = Enhanced(plot.New(), nil, nil, DefaultOptions())
	assert.True(t, errors.Is(err, vt.ErrNoData))
}

func TestSpearmanPlot(t *testing.T) {
	xs, ys := correlated(50, 7)
	p, err := SpearmanPlot(xs, ys, SpearmanOptions{XLabel: "a", YLabel: "b"})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, strings.HasPrefix(p.Title.Text, "Spearman r: "))
	assert.Equal(t, p.X.Min, p.Y.Min)
	assert.Equal(t, p.X.Max, p.Y.Max)

	path := filepath.Join(t.TempDir(), "spearman.png")
	p, err = SpearmanPlot(xs, ys, SpearmanOptions{Title: "ranks", FigPath: path, Style: vt.Style{Width: 200}})
	require.NoError(t, err)
	assert.Nil(t, p)
	_, err = os.Stat(path)
	assert.NoError(t, err)

	_, err = SpearmanPlot(xs, ys, SpearmanOptions{Plot: plot.New(), FigPath: path})
	assert.True(t, errors.Is(err, vt.ErrCanvasConflict))
}
