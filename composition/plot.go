package composition

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	vt "github.com/hawkjo/visualizationtools"
)

// PlotOptions configures a composition plot. Either Result or FPath
// must be set; Result wins when both are.
type PlotOptions struct {
	Result   *Result // precomputed statistics.
	FPath    string  // read file to aggregate when Result is nil.
	Intended string  // expected sequence, checked against the consensus.
	RunName  string  // prefix of the title.
	XMin     float64 // default 0.
	XMax     float64 // default 140.
	Style    vt.Style
}

// DefaultXMax is the default right end of the position axis.
const DefaultXMax = 140

// Figure is a composition panel stacked over a quality panel that
// shares its position axis.
type Figure struct {
	Composition *plot.Plot
	Quality     *plot.Plot
	Style       vt.Style
}

// Plot draws base fractions per position with the consensus as tick
// labels, and the average Phred score underneath.
func Plot(opts PlotOptions) (*Figure, error) {
	res := opts.Result
	if res == nil {
		if opts.FPath == "" {
			return nil, fmt.Errorf("composition plot needs a result or a read file: %w", vt.ErrMissingArgument)
		}
		var err error
		if res, err = FromFile(opts.FPath); err != nil {
			return nil, err
		}
	}
	style := opts.Style.WithDefaults()
	xmax := opts.XMax
	if xmax <= opts.XMin {
		xmax = DefaultXMax
	}
	ticks := ConsensusTicks(res.Consensus)

	p := plot.New()
	p.Title.Text = strings.TrimSpace(opts.RunName + " Base Composition and Quality")
	p.X.Label.Text = xLabel(res, opts.Intended)
	p.Y.Label.Text = "Fraction"
	p.X.Tick.Marker = ticks
	for i := 0; i < len(Bases); i++ {
		b := Bases[i]
		l, err := plotter.NewLine(series(res.Composition[b]))
		if err != nil {
			return nil, err
		}
		l.LineStyle.Width = style.LineWidth
		l.LineStyle.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(string(b), l)
	}
	p.Legend.Top = true
	p.X.Min, p.X.Max = opts.XMin, xmax
	p.Y.Min, p.Y.Max = 0, 1

	q := plot.New()
	q.Y.Label.Text = "Phred Scores"
	q.X.Tick.Marker = ticks
	l, err := plotter.NewLine(series(res.AvgQuality))
	if err != nil {
		return nil, err
	}
	l.LineStyle.Width = style.LineWidth
	l.LineStyle.Color = vt.Translucent(color.Gray{Y: 128}, 0.5)
	l.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	q.Add(l)
	q.Legend.Add("Phred Score", l)
	q.Legend.Top = true
	q.X.Min, q.X.Max = opts.XMin, xmax
	q.Y.Min = 0
	q.Y.Max = math.Max(q.Y.Max, 1)

	if style.Grid {
		p.Add(plotter.NewGrid())
		q.Add(plotter.NewGrid())
	}
	return &Figure{Composition: p, Quality: q, Style: style}, nil
}

// PlotFile draws the composition plot and saves it to fileName. The image
// format follows the file extension.
func PlotFile(opts PlotOptions, fileName string) error {
	fig, err := Plot(opts)
	if err != nil {
		return err
	}
	return fig.Save(fileName)
}

// Draw draws both panels onto dc, aligned on the position axis.
func (f *Figure) Draw(dc draw.Canvas) {
	tiles := draw.Tiles{Rows: 2, Cols: 1, PadX: vg.Millimeter, PadY: vg.Millimeter * 2}
	cs := plot.Align([][]*plot.Plot{{f.Composition}, {f.Quality}}, tiles, dc)
	f.Composition.Draw(cs[0][0])
	f.Quality.Draw(cs[1][0])
}

// Save writes the figure to fileName in the format given by its extension.
func (f *Figure) Save(fileName string) error {
	style := f.Style.WithDefaults()
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	c, err := draw.NewFormattedCanvas(style.Width, style.Height, format)
	if err != nil {
		return err
	}
	f.Draw(draw.New(c))

	w, err := os.Create(fileName)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	vt.Info.Printf("Composition plot was saved to %s\n", fileName)
	return nil
}

func xLabel(res *Result, intended string) string {
	switch {
	case intended == "":
		return "Consensus Sequence"
	case res.MatchesIntended(intended):
		return "Consensus Sequence (Matches intended sequence)"
	default:
		return "Consensus Sequence (Does NOT match intended sequence)"
	}
}

func series(ys []float64) plotter.XYs {
	xys := make(plotter.XYs, len(ys))
	for i, y := range ys {
		xys[i].X = float64(i)
		xys[i].Y = y
	}
	return xys
}

// ConsensusTicks labels every integer position with its consensus symbol.
type ConsensusTicks string

// Ticks implements plot.Ticker.
func (c ConsensusTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	lo := int(math.Max(math.Ceil(min), 0))
	hi := int(math.Min(math.Floor(max), float64(len(c)-1)))
	for i := lo; i <= hi; i++ {
		ticks = append(ticks, plot.Tick{Value: float64(i), Label: string(c[i])})
	}
	return ticks
}
