package ecdf

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	vt "github.com/hawkjo/visualizationtools"
)

// Plot adds the CDF of data to p and returns the line, e.g. for a legend.
func Plot(p *plot.Plot, data []float64, style draw.LineStyle) (*plotter.Line, error) {
	pts, err := Points(data)
	if err != nil {
		return nil, err
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	if style.Color != nil {
		l.LineStyle = style
	}
	p.Add(l)
	return l, nil
}

// PlotFile draws the CDF of data on a new figure and saves it to fileName.
func PlotFile(data []float64, fileName, title string, style vt.Style) error {
	_, err := vt.WithCanvas(nil, fileName, style, func(p *plot.Plot) error {
		p.Title.Text = title
		p.Y.Label.Text = "Cumulative fraction"
		p.Y.Min, p.Y.Max = 0, 1
		ls := plotter.DefaultLineStyle
		ls.Width = style.WithDefaults().LineWidth
		_, err := Plot(p, data, ls)
		return err
	})
	return err
}
