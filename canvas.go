package visualizationtools

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Canvas is a plot together with who owns it.
type Canvas struct {
	*plot.Plot
	owned bool
}

// Acquire returns the given plot as a caller-owned canvas,
// or a new plot owned by the helper when given is nil.
func Acquire(given *plot.Plot, style Style) *Canvas {
	if given != nil {
		return &Canvas{Plot: given}
	}
	p := plot.New()
	if style.Grid {
		p.Add(plotter.NewGrid())
	}
	return &Canvas{Plot: p, owned: true}
}

// Owned reports whether the canvas was created by Acquire.
func (c *Canvas) Owned() bool {
	return c.owned
}

// Release saves an owned canvas to saveAs, if set, and drops it.
// Caller-owned canvases are left untouched.
func (c *Canvas) Release(saveAs string, style Style) error {
	if !c.owned || saveAs == "" {
		return nil
	}
	style = style.WithDefaults()
	if err := c.Save(style.Width, style.Height, saveAs); err != nil {
		return fmt.Errorf("saving %s: %w", saveAs, err)
	}
	Info.Printf("Figure was saved to %s\n", saveAs)
	c.Plot = nil
	return nil
}

// WithCanvas runs fn on the given plot, or on a new one when given is nil.
// A new plot is saved to saveAs after fn succeeds, and then released:
// the returned plot is nil in that case. A given plot is never saved, so
// supplying both given and saveAs fails with ErrCanvasConflict before fn runs.
func WithCanvas(given *plot.Plot, saveAs string, style Style, fn func(p *plot.Plot) error) (*plot.Plot, error) {
	if given != nil && saveAs != "" {
		return nil, ErrCanvasConflict
	}
	c := Acquire(given, style)
	if err := fn(c.Plot); err != nil {
		return nil, err
	}
	if err := c.Release(saveAs, style); err != nil {
		return nil, err
	}
	return c.Plot, nil
}
