// Package ecdf builds compact empirical CDF polylines.
//
// Large samples with many repeated values are slow to draw point by
// point, so the polyline has two points per distinct value instead of
// one per sample.
package ecdf

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/plot/plotter"

	vt "github.com/hawkjo/visualizationtools"
)

// ErrNaN is returned for samples containing NaN, which have no order.
var ErrNaN = errors.New("sample contains NaN")

// Breakpoints returns the distinct values of data in ascending order and,
// for each, the fraction of samples less than or equal to it.
// The last fraction is exactly 1.
func Breakpoints(data []float64) (xs, ys []float64, err error) {
	if len(data) == 0 {
		return nil, nil, vt.ErrNoData
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	for _, v := range sorted {
		if math.IsNaN(v) {
			return nil, nil, ErrNaN
		}
	}
	sort.Float64s(sorted)

	n := float64(len(sorted))
	last := sorted[0]
	for i, v := range sorted {
		if v > last {
			xs = append(xs, last)
			ys = append(ys, float64(i)/n)
			last = v
		}
	}
	xs = append(xs, last)
	ys = append(ys, 1.0)
	return xs, ys, nil
}

// Points returns the step polyline of the empirical CDF of data:
//
//	(x0,0) (x0,y0) (x1,y0) (x1,y1) ... (xk,y(k-1)) (xk,1)
//
// Each distinct value contributes two points, the end of the tread
// coming from the left and the top of its riser.
func Points(data []float64) (plotter.XYs, error) {
	xs, ys, err := Breakpoints(data)
	if err != nil {
		return nil, err
	}
	pts := make(plotter.XYs, 0, 2*len(xs))
	prev := 0.0
	for i, x := range xs {
		pts = append(pts,
			plotter.XY{X: x, Y: prev},
			plotter.XY{X: x, Y: ys[i]},
		)
		prev = ys[i]
	}
	return pts, nil
}
