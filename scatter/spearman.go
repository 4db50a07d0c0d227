package scatter

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg/draw"

	vt "github.com/hawkjo/visualizationtools"
)

// SpearmanOptions configures SpearmanPlot.
type SpearmanOptions struct {
	Plot    *plot.Plot // draw on this plot instead of a new one.
	XLabel  string
	YLabel  string
	Title   string // default reports the Spearman r and p-value.
	FigPath string // save a new plot here.
	Style   vt.Style
}

// SpearmanPlot plots the ranks of ys against the ranks of xs.
// It returns nil when the plot was saved to FigPath.
func SpearmanPlot(xs, ys []float64, opts SpearmanOptions) (*plot.Plot, error) {
	if err := checkPair(xs, ys); err != nil {
		return nil, err
	}
	style := opts.Style.WithDefaults()
	if opts.Style.Height == 0 {
		style.Height = style.Width
	}
	return vt.WithCanvas(opts.Plot, opts.FigPath, style, func(p *plot.Plot) error {
		title := opts.Title
		if title == "" {
			r, pval, err := Spearman(xs, ys)
			if err != nil {
				return err
			}
			title = fmt.Sprintf("Spearman r: %f, P-value: %g", r, pval)
		}
		rx, ry := Ranks(xs), Ranks(ys)
		sc, err := plotter.NewScatter(pairs(rx, ry))
		if err != nil {
			return err
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = style.MarkerRadius
		sc.GlyphStyle.Color = vt.Translucent(plotutil.Color(0), 0.1)
		p.Add(sc)

		// Equal aspect: both axes span the same rank range.
		lo := math.Min(p.X.Min, p.Y.Min)
		hi := math.Max(p.X.Max, p.Y.Max)
		p.X.Min, p.Y.Min = lo, lo
		p.X.Max, p.Y.Max = hi, hi

		p.Title.Text = title
		p.X.Label.Text = opts.XLabel
		p.Y.Label.Text = opts.YLabel
		return nil
	})
}
