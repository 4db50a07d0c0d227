// Package animate renders a stack of 2-D arrays as an animation.
package animate

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	imgdraw "image/draw"
	"image/gif"
	"io"
	"math"
	"os"
	"time"

	"gonum.org/v1/plot"
	plotpalette "gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	vt "github.com/hawkjo/visualizationtools"
)

// ErrShapeMismatch is returned for stacks whose frames or rows differ in size.
var ErrShapeMismatch = errors.New("frames differ in shape")

// Stack is a sequence of frames indexed as [frame][row][column].
type Stack [][][]float64

// Shape returns the number of frames, rows and columns of s.
func (s Stack) Shape() (frames, height, width int, err error) {
	if len(s) == 0 || len(s[0]) == 0 || len(s[0][0]) == 0 {
		return 0, 0, 0, vt.ErrNoData
	}
	height, width = len(s[0]), len(s[0][0])
	for i, f := range s {
		if len(f) != height {
			return 0, 0, 0, fmt.Errorf("frame %d has %d rows, want %d: %w", i, len(f), height, ErrShapeMismatch)
		}
		for j, row := range f {
			if len(row) != width {
				return 0, 0, 0, fmt.Errorf("frame %d row %d has %d columns, want %d: %w", i, j, len(row), width, ErrShapeMismatch)
			}
		}
	}
	return len(s), height, width, nil
}

// Options configures an Animation.
type Options struct {
	Width    vg.Length           // default 10in.
	Height   vg.Length           // default 10in.
	Interval time.Duration       // delay between frames, default 30ms.
	Palette  plotpalette.Palette // default moreland smooth blue-red.
}

// Defaults of Options.
const (
	DefaultSize     = 10 * vg.Inch
	DefaultInterval = 30 * time.Millisecond
)

// Animation plays the frames of a Stack one after another. The colour
// scale is fixed by the first frame; values of later frames outside it
// take the end colours.
type Animation struct {
	stack         Stack
	height, width int
	opts          Options
	min, max      float64
	cur           int
}

// New returns an Animation of stack positioned on its first frame.
func New(stack Stack, opts Options) (*Animation, error) {
	_, h, w, err := stack.Shape()
	if err != nil {
		return nil, err
	}
	if opts.Width <= 0 {
		opts.Width = DefaultSize
	}
	if opts.Height <= 0 {
		opts.Height = DefaultSize
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Palette == nil {
		opts.Palette = moreland.SmoothBlueRed().Palette(256)
	}

	a := &Animation{stack: stack, height: h, width: w, opts: opts}
	a.min, a.max = math.Inf(1), math.Inf(-1)
	for _, row := range stack[0] {
		for _, v := range row {
			if math.IsNaN(v) {
				continue
			}
			a.min = math.Min(a.min, v)
			a.max = math.Max(a.max, v)
		}
	}
	if math.IsInf(a.min, 1) {
		a.min, a.max = 0, 1
	}
	if a.max <= a.min {
		a.max = a.min + 1
	}
	return a, nil
}

// Len returns the number of frames.
func (a *Animation) Len() int {
	return len(a.stack)
}

// Interval returns the delay between frames.
func (a *Animation) Interval() time.Duration {
	return a.opts.Interval
}

// Reset rewinds playback to the first frame.
func (a *Animation) Reset() {
	a.cur = 0
}

// Next renders the current frame and advances playback. It returns
// io.EOF after the last frame.
func (a *Animation) Next() (image.Image, error) {
	if a.cur >= len(a.stack) {
		return nil, io.EOF
	}
	img, err := a.Frame(a.cur)
	if err != nil {
		return nil, err
	}
	a.cur++
	return img, nil
}

// Frame renders frame i with row 0 at the top.
func (a *Animation) Frame(i int) (image.Image, error) {
	if i < 0 || i >= len(a.stack) {
		return nil, fmt.Errorf("frame %d out of range [0, %d)", i, len(a.stack))
	}
	colors := a.opts.Palette.Colors()

	h := plotter.NewHeatMap(grid{frame: a.stack[i], height: a.height, width: a.width}, a.opts.Palette)
	h.Min, h.Max = a.min, a.max
	h.Underflow = colors[0]
	h.Overflow = colors[len(colors)-1]

	p := plot.New()
	p.HideAxes()
	p.Add(h)
	p.X.Min, p.X.Max = 0, float64(a.width)
	p.Y.Min, p.Y.Max = 0, float64(a.height)

	c := vgimg.New(a.opts.Width, a.opts.Height)
	p.Draw(draw.New(c))
	return c.Image(), nil
}

// WriteGIF encodes every frame as a looping animated GIF.
func (a *Animation) WriteGIF(w io.Writer) error {
	delay := int(a.opts.Interval / (10 * time.Millisecond))
	if delay < 1 {
		delay = 1
	}
	anim := &gif.GIF{}
	for i := range a.stack {
		img, err := a.Frame(i)
		if err != nil {
			return err
		}
		b := img.Bounds()
		pm := image.NewPaletted(b, palette.Plan9)
		imgdraw.FloydSteinberg.Draw(pm, b, img, b.Min)
		anim.Image = append(anim.Image, pm)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, anim)
}

// Save writes the animation to fileName as a GIF.
func (a *Animation) Save(fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	if err := a.WriteGIF(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	vt.Info.Printf("Animation of %d frames was saved to %s\n", a.Len(), fileName)
	return nil
}

// grid adapts a frame to plotter.GridXYZ with row 0 drawn at the top.
type grid struct {
	frame         [][]float64
	height, width int
}

func (g grid) Dims() (c, r int)   { return g.width, g.height }
func (g grid) Z(c, r int) float64 { return g.frame[g.height-1-r][c] }
func (g grid) X(c int) float64    { return float64(c) + 0.5 }
func (g grid) Y(r int) float64    { return float64(r) + 0.5 }
