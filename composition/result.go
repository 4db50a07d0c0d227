package composition

import (
	"strings"

	vt "github.com/hawkjo/visualizationtools"
)

// Result holds the aggregated counts of a read set and the statistics
// derived from them.
type Result struct {
	Length        int            // read length.
	NumReads      int            // number of reads.
	BaseCounts    map[byte][]int // base -> per-position occurrences.
	QualityCounts [][]int        // quality value -> per-position occurrences.

	Composition map[byte][]float64 // base -> per-position fraction.
	Consensus   string             // per-position majority base, or Unknown.
	AvgQuality  []float64          // per-position mean quality.
}

// Recompute derives a fresh Result from the counts of r.
func (r *Result) Recompute() (*Result, error) {
	res := &Result{
		Length:        r.Length,
		NumReads:      r.NumReads,
		BaseCounts:    r.BaseCounts,
		QualityCounts: r.QualityCounts,
	}
	if err := res.derive(); err != nil {
		return nil, err
	}
	return res, nil
}

// MatchesIntended reports whether the consensus starts with seq.
func (r *Result) MatchesIntended(seq string) bool {
	return strings.HasPrefix(r.Consensus, seq)
}

func (r *Result) derive() error {
	if r.NumReads == 0 {
		return vt.ErrNoData
	}
	n := float64(r.NumReads)

	r.Composition = make(map[byte][]float64, len(Bases))
	for i := 0; i < len(Bases); i++ {
		b := Bases[i]
		fractions := make([]float64, r.Length)
		for pos, c := range r.BaseCounts[b] {
			fractions[pos] = float64(c) / n
		}
		r.Composition[b] = fractions
	}

	consensus := make([]byte, r.Length)
	for pos := range consensus {
		best := Bases[0]
		for i := 1; i < len(Bases); i++ {
			if r.Composition[Bases[i]][pos] > r.Composition[best][pos] {
				best = Bases[i]
			}
		}
		if r.Composition[best][pos] < MinConsensusFraction {
			best = Unknown
		}
		consensus[pos] = best
	}
	r.Consensus = string(consensus)

	r.AvgQuality = make([]float64, r.Length)
	for q, counts := range r.QualityCounts {
		for pos, c := range counts {
			r.AvgQuality[pos] += float64(c * q)
		}
	}
	for pos := range r.AvgQuality {
		r.AvgQuality[pos] /= n
	}
	return nil
}
