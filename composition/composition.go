// Package composition accumulates per-position base composition and
// quality statistics of equal-length reads, and derives the consensus
// sequence and the average quality curve.
package composition

import (
	"errors"
	"fmt"

	vt "github.com/hawkjo/visualizationtools"
	"github.com/hawkjo/visualizationtools/reads"
)

// Bases are the canonical bases, in consensus scan order.
const Bases = "ACGT"

// Unknown is the consensus symbol of positions without a majority base.
const Unknown = 'N'

// MinConsensusFraction is the fraction a base needs to be called.
const MinConsensusFraction = 0.5

// ErrQualityRange is returned for quality scores outside [0, reads.MaxQuality].
var ErrQualityRange = errors.New("quality score out of range")

// Aggregator accumulates base and quality counts read by read.
type Aggregator struct {
	length  int
	n       int
	bases   map[byte][]int
	quality [][]int // quality value x position.
}

// New returns an Aggregator for reads of the given length.
func New(length int) *Aggregator {
	a := &Aggregator{
		length:  length,
		bases:   make(map[byte][]int, len(Bases)),
		quality: make([][]int, reads.MaxQuality+1),
	}
	for i := 0; i < len(Bases); i++ {
		a.bases[Bases[i]] = make([]int, length)
	}
	for q := range a.quality {
		a.quality[q] = make([]int, length)
	}
	return a
}

// Len returns the read length the Aggregator expects.
func (a *Aggregator) Len() int {
	return a.length
}

// NumReads returns the number of reads added so far.
func (a *Aggregator) NumReads() int {
	return a.n
}

// Add counts one read. The read is rejected, leaving the counts
// untouched, when its length differs from the expected one or
// when one of its quality scores is out of range.
func (a *Aggregator) Add(r reads.Read) error {
	if r.Len() != a.length || len(r.Qual) != a.length {
		return fmt.Errorf("read %q has %d bases and %d qualities, want %d: %w",
			r.Name, r.Len(), len(r.Qual), a.length, vt.ErrLengthMismatch)
	}
	for i, q := range r.Qual {
		if int(q) > reads.MaxQuality {
			return fmt.Errorf("read %q position %d quality %d: %w", r.Name, i, q, ErrQualityRange)
		}
	}

	for i, c := range r.Seq {
		if counts, ok := a.bases[c]; ok {
			counts[i]++
		}
	}
	for i, q := range r.Qual {
		a.quality[q][i]++
	}
	a.n++
	return nil
}

// Result returns the statistics of the reads added so far.
// It fails with ErrNoData when no read was added.
func (a *Aggregator) Result() (*Result, error) {
	res := &Result{
		Length:        a.length,
		NumReads:      a.n,
		BaseCounts:    make(map[byte][]int, len(a.bases)),
		QualityCounts: make([][]int, len(a.quality)),
	}
	for b, counts := range a.bases {
		res.BaseCounts[b] = append([]int(nil), counts...)
	}
	for q, counts := range a.quality {
		res.QualityCounts[q] = append([]int(nil), counts...)
	}
	if err := res.derive(); err != nil {
		return nil, err
	}
	return res, nil
}

// FromRecords aggregates in-memory reads. The read length is taken
// from the first record.
func FromRecords(records []reads.Read) (*Result, error) {
	if len(records) == 0 {
		return nil, vt.ErrNoData
	}
	return FromSource(reads.Slice(records))
}

// FromSource aggregates all reads of src in a single pass and closes it.
// The read length is taken from the first read.
func FromSource(src reads.Source) (res *Result, err error) {
	defer func() {
		if cerr := src.Close(); err == nil && cerr != nil {
			res, err = nil, cerr
		}
	}()

	var a *Aggregator
	for src.Next() {
		r := src.Read()
		if a == nil {
			a = New(r.Len())
		}
		if err := a.Add(r); err != nil {
			return nil, err
		}
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	if a == nil {
		return nil, vt.ErrNoData
	}
	return a.Result()
}

// FromFile aggregates the reads of a FASTQ (optionally gzipped), SAM or BAM
// file. The file is read twice: once to learn the read length from the
// first record, and once to count.
func FromFile(fileName string) (*Result, error) {
	length, err := probeLength(fileName)
	if err != nil {
		return nil, err
	}

	src, err := reads.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	a := New(length)
	for src.Next() {
		if err := a.Add(src.Read()); err != nil {
			return nil, fmt.Errorf("%s: %w", fileName, err)
		}
	}
	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	vt.Info.Printf("Counted %d reads of length %d from %s\n", a.NumReads(), length, fileName)
	return a.Result()
}

func probeLength(fileName string) (int, error) {
	src, err := reads.Open(fileName)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	if !src.Next() {
		if err := src.Err(); err != nil {
			return 0, fmt.Errorf("%s: %w", fileName, err)
		}
		return 0, fmt.Errorf("%s: %w", fileName, vt.ErrNoData)
	}
	return src.Read().Len(), nil
}
