// Package scatter draws annotated scatter and rank plots.
package scatter

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg/draw"

	vt "github.com/hawkjo/visualizationtools"
)

// DefaultSampleSize caps the number of points the density estimate is built from.
const DefaultSampleSize = 1000

// HistBins is the number of bins of the marginal histograms.
const HistBins = 100

// Options configures Enhanced.
type Options struct {
	ColorByDensity bool
	DoFit          bool
	ShowPValue     bool
	// HistsHeight > 0 adds marginal histograms whose tallest bar spans
	// this fraction of the axis.
	HistsHeight float64
	SampleSize  int        // default DefaultSampleSize.
	Rand        *rand.Rand // sampling source, default seeded with 1.
	Style       vt.Style
}

// DefaultOptions colours by density, fits a line and shows the p-value.
func DefaultOptions() Options {
	return Options{
		ColorByDensity: true,
		DoFit:          true,
		ShowPValue:     true,
		SampleSize:     DefaultSampleSize,
		Style:          vt.DefaultStyle(),
	}
}

// Stats are the figures Enhanced annotated the plot with.
type Stats struct {
	Same      bool      // xs and ys are element-wise equal.
	Fitted    bool      // a line was fitted.
	Slope     float64   // of the fitted line.
	Intercept float64   // of the fitted line.
	R, P      float64   // Pearson correlation and its p-value.
	Densities []float64 // per point, nil when not coloured by density.
}

// Enhanced adds a scatter plot of ys against xs to p, coloured by point
// density, with a least squares line, the Pearson correlation and,
// optionally, marginal histograms. Density colouring and the fit are
// skipped when xs and ys are the same.
func Enhanced(p *plot.Plot, xs, ys []float64, opts Options) (*Stats, error) {
	if err := checkPair(xs, ys); err != nil {
		return nil, err
	}
	style := opts.Style.WithDefaults()
	st := &Stats{Same: allClose(xs, ys)}

	if opts.ColorByDensity && !st.Same {
		rnd := opts.Rand
		if rnd == nil {
			rnd = rand.New(rand.NewSource(1))
		}
		size := opts.SampleSize
		if size <= 0 {
			size = DefaultSampleSize
		}
		sample := rnd.Perm(len(xs))
		if len(sample) > size {
			sample = sample[:size]
		}
		if dens, ok := Density(xs, ys, sample); ok {
			st.Densities = dens
		} else {
			vt.Warn.Println("density estimate is singular, using a single colour")
		}
	}

	sc, err := plotter.NewScatter(pairs(xs, ys))
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Radius = style.MarkerRadius
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Color = plotutil.Color(0)
	if st.Densities != nil {
		colors := densityColors(st.Densities, style.ColorMap)
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			gs := sc.GlyphStyle
			gs.Color = colors[i]
			return gs
		}
	}
	p.Add(sc)

	xmin, xmax := bounds(xs)
	if opts.DoFit && !st.Same {
		st.Slope, st.Intercept, err = LinearFit(xs, ys)
		if err != nil {
			return nil, err
		}
		st.Fitted = finite(st.Slope) && finite(st.Intercept)
		if !st.Fitted {
			st.Slope, st.Intercept = 0, 0
			vt.Warn.Println("x values have no spread, skipping the linear fit")
		}
	}
	if st.Fitted {
		fit, err := plotter.NewLine(plotter.XYs{
			{X: xmin, Y: st.Intercept + st.Slope*xmin},
			{X: xmax, Y: st.Intercept + st.Slope*xmax},
		})
		if err != nil {
			return nil, err
		}
		fit.LineStyle.Width = style.LineWidth
		fit.LineStyle.Color = vt.Translucent(color.Black, 0.5)
		p.Add(fit)
		p.X.Min, p.X.Max = xmin, xmax
	}

	st.R, st.P, err = Pearson(xs, ys)
	if err != nil {
		return nil, err
	}

	var notes []string
	if st.Fitted {
		notes = append(notes, fmt.Sprintf("β = %0.2f", st.Slope))
	}
	if opts.ShowPValue {
		notes = append(notes, fmt.Sprintf("r = %0.2f, p=%0.2e", st.R, st.P))
	} else {
		notes = append(notes, fmt.Sprintf("r = %0.2f", st.R))
	}
	if err := annotate(p, notes); err != nil {
		return nil, err
	}

	if opts.HistsHeight > 0 {
		if err := marginals(p, xs, ys, opts.HistsHeight); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// Diagonal draws a line from the lower left to the upper right corner of
// the current axis ranges of p.
func Diagonal(p *plot.Plot) error {
	l, err := plotter.NewLine(plotter.XYs{
		{X: p.X.Min, Y: p.Y.Min},
		{X: p.X.Max, Y: p.Y.Max},
	})
	if err != nil {
		return err
	}
	l.LineStyle.Color = vt.Translucent(color.Black, 0.5)
	p.Add(l)
	return nil
}

func pairs(xs, ys []float64) plotter.XYs {
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X, xys[i].Y = xs[i], ys[i]
	}
	return xys
}

func bounds(vs []float64) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return min, max
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// densityColors maps dens onto cmap. The range of cmap is restored
// before returning.
func densityColors(dens []float64, cmap palette.ColorMap) []color.Color {
	lo, hi := bounds(dens)
	colors := make([]color.Color, len(dens))
	if !(hi > lo) {
		for i := range colors {
			colors[i] = plotutil.Color(0)
		}
		return colors
	}
	oldMin, oldMax := cmap.Min(), cmap.Max()
	defer func() {
		cmap.SetMin(oldMin)
		cmap.SetMax(oldMax)
	}()
	cmap.SetMin(lo)
	cmap.SetMax(hi)
	for i, d := range dens {
		c, err := cmap.At(d)
		if err != nil {
			c = plotutil.Color(0)
		}
		colors[i] = c
	}
	return colors
}

// annotate writes notes, last one lowest, right aligned in the lower
// right corner of the current ranges of p.
func annotate(p *plot.Plot, notes []string) error {
	dy := (p.Y.Max - p.Y.Min) * 0.05
	xys := make(plotter.XYs, len(notes))
	for i := range notes {
		xys[i].X = p.X.Max
		xys[i].Y = p.Y.Min + dy*float64(len(notes)-i)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: notes})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XRight
	}
	p.Add(labels)
	return nil
}

// marginals outlines the histograms of xs along the bottom and of ys
// along the left of p.
func marginals(p *plot.Plot, xs, ys []float64, height float64) error {
	xmin, xmax, ymin, ymax := p.X.Min, p.X.Max, p.Y.Min, p.Y.Max

	bottom, err := histOutline(xs, ymin, (ymax-ymin)*height, false)
	if err != nil {
		return err
	}
	left, err := histOutline(ys, xmin, (xmax-xmin)*height, true)
	if err != nil {
		return err
	}
	for _, l := range []*plotter.Line{bottom, left} {
		l.LineStyle.Color = vt.Translucent(plotutil.Color(0), 0.3)
		p.Add(l)
	}
	p.X.Min, p.X.Max, p.Y.Min, p.Y.Max = xmin, xmax, ymin, ymax
	return nil
}

// histOutline returns the step outline of the histogram of vs, standing
// on base and scaled so its tallest bar is span high. Bars grow along x
// when horizontal is set.
func histOutline(vs []float64, base, span float64, horizontal bool) (*plotter.Line, error) {
	h, err := plotter.NewHist(plotter.Values(vs), HistBins)
	if err != nil {
		return nil, err
	}
	top := 0.0
	for _, b := range h.Bins {
		top = math.Max(top, b.Weight)
	}
	scale := 0.0
	if top > 0 {
		scale = span / top
	}

	var pts plotter.XYs
	add := func(pos, w float64) {
		if horizontal {
			pts = append(pts, plotter.XY{X: base + w*scale, Y: pos})
		} else {
			pts = append(pts, plotter.XY{X: pos, Y: base + w*scale})
		}
	}
	for i, b := range h.Bins {
		if i == 0 {
			add(b.Min, 0)
		}
		add(b.Min, b.Weight)
		add(b.Max, b.Weight)
	}
	add(h.Bins[len(h.Bins)-1].Max, 0)
	return plotter.NewLine(pts)
}
