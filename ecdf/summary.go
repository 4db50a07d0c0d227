package ecdf

import (
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-moremath/stats"

	vt "github.com/hawkjo/visualizationtools"
)

// Summary describes data: count, sum, mean, spread and quantiles.
func Summary(data []float64) (string, error) {
	if len(data) == 0 {
		return "", vt.ErrNoData
	}
	s := stats.Sample{Xs: append([]float64(nil), data...)}
	s.Sort()

	var b strings.Builder
	fmt.Fprintf(&b, "N %d  sum %.6g  mean %.6g", len(s.Xs), s.Sum(), s.Mean())
	if gmean := s.GeoMean(); !math.IsNaN(gmean) {
		fmt.Fprintf(&b, "  gmean %.6g", gmean)
	}
	fmt.Fprintf(&b, "  std dev %.6g  variance %.6g\n", s.StdDev(), s.Variance())

	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Fprintf(&b, "%8s %.6g\n", label, s.Quantile(float64(p)/100))
	}
	return b.String(), nil
}
