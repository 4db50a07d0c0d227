package reads

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"
)

// NewFastqSource returns a Source reading Sanger encoded FASTQ from r.
// The caller keeps ownership of r.
func NewFastqSource(r io.Reader) Source {
	t := linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger)
	return &fastqSource{sc: seqio.NewScanner(fastq.NewReader(r, t))}
}

type fastqSource struct {
	sc      *seqio.Scanner
	cur     Read
	err     error
	closers []io.Closer
}

func (s *fastqSource) Next() bool {
	if s.err != nil || !s.sc.Next() {
		return false
	}
	q, ok := s.sc.Seq().(*linear.QSeq)
	if !ok {
		s.err = fmt.Errorf("unexpected sequence type %T", s.sc.Seq())
		return false
	}
	r := Read{
		Name: q.Name(),
		Seq:  make([]byte, len(q.Seq)),
		Qual: make([]byte, len(q.Seq)),
	}
	for i, ql := range q.Seq {
		r.Seq[i] = byte(ql.L)
		r.Qual[i] = byte(ql.Q)
	}
	s.cur = r
	return true
}

func (s *fastqSource) Read() Read { return s.cur }

func (s *fastqSource) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.sc.Error()
}

func (s *fastqSource) Close() error {
	return closeAll(s.closers)
}

func closeAll(closers []io.Closer) error {
	var first error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
