package scatter

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"

	vt "github.com/hawkjo/visualizationtools"
)

// ErrNaN is returned for inputs containing NaN.
var ErrNaN = errors.New("NaN value")

// allClose reports whether xs and ys are element-wise equal within
// a relative tolerance of 1e-5 and an absolute tolerance of 1e-8.
// NaN is never close to anything.
func allClose(xs, ys []float64) bool {
	const rtol, atol = 1e-5, 1e-8
	for i := range xs {
		if !(math.Abs(xs[i]-ys[i]) <= atol+rtol*math.Abs(ys[i])) {
			return false
		}
	}
	return true
}

func checkPair(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return vt.ErrLengthMismatch
	}
	if len(xs) == 0 {
		return vt.ErrNoData
	}
	for i := range xs {
		if math.IsNaN(xs[i]) {
			return fmt.Errorf("x[%d]: %w", i, ErrNaN)
		}
		if math.IsNaN(ys[i]) {
			return fmt.Errorf("y[%d]: %w", i, ErrNaN)
		}
	}
	return nil
}

// Pearson returns the Pearson correlation coefficient of xs and ys and
// the two-sided p-value of the null hypothesis of no correlation.
// The p-value is NaN for fewer than three points.
func Pearson(xs, ys []float64) (r, p float64, err error) {
	if err := checkPair(xs, ys); err != nil {
		return 0, 0, err
	}
	r = stat.Correlation(xs, ys, nil)
	return r, correlationP(r, len(xs)), nil
}

// correlationP tests r against a Student's t distribution with n-2
// degrees of freedom.
func correlationP(r float64, n int) float64 {
	if n < 3 || math.IsNaN(r) {
		return math.NaN()
	}
	r = math.Max(-1, math.Min(1, r))
	if math.Abs(r) == 1 {
		return 0
	}
	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * dist.Survival(math.Abs(t))
}

// Ranks returns the 1-based ranks of vals, ties getting their average rank.
func Ranks(vals []float64) []float64 {
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return vals[idx[a]] < vals[idx[b]] })

	ranks := make([]float64, len(vals))
	for i := 0; i < len(idx); {
		j := i + 1
		for j < len(idx) && vals[idx[j]] == vals[idx[i]] {
			j++
		}
		// positions i..j-1 share ranks i+1..j.
		avg := float64(i+1+j) / 2
		for k := i; k < j; k++ {
			ranks[idx[k]] = avg
		}
		i = j
	}
	return ranks
}

// Spearman returns the Spearman rank correlation of xs and ys and its
// two-sided p-value.
func Spearman(xs, ys []float64) (r, p float64, err error) {
	if err := checkPair(xs, ys); err != nil {
		return 0, 0, err
	}
	return Pearson(Ranks(xs), Ranks(ys))
}

// LinearFit returns the least squares line y = intercept + slope*x.
func LinearFit(xs, ys []float64) (slope, intercept float64, err error) {
	if err := checkPair(xs, ys); err != nil {
		return 0, 0, err
	}
	intercept, slope = stat.LinearRegression(xs, ys, nil, false)
	return slope, intercept, nil
}

// Density returns a two dimensional Gaussian kernel density estimate,
// built from the points at the sample indices, evaluated at every point.
// The kernel covariance is the sample covariance scaled by Scott's factor.
// ok is false when the estimate is undefined, e.g. for collinear samples.
func Density(xs, ys []float64, sample []int) (dens []float64, ok bool) {
	n := len(sample)
	if n < 3 {
		return nil, false
	}
	data := mat.NewDense(n, 2, nil)
	for i, j := range sample {
		data.Set(i, 0, xs[j])
		data.Set(i, 1, ys[j])
	}
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, data, nil)
	// Scott's factor n^(-1/(d+4)), squared, for d = 2.
	cov.ScaleSym(math.Pow(float64(n), -1.0/3), &cov)

	kernel, ok := distmv.NewNormal([]float64{0, 0}, &cov, nil)
	if !ok {
		return nil, false
	}
	dens = make([]float64, len(xs))
	d := make([]float64, 2)
	for i := range xs {
		var sum float64
		for _, j := range sample {
			d[0], d[1] = xs[i]-xs[j], ys[i]-ys[j]
			sum += math.Exp(kernel.LogProb(d))
		}
		dens[i] = sum / float64(n)
	}
	return dens, true
}
