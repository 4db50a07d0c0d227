package reads

import (
	"errors"
	"fmt"
)

// MaxQuality is the largest Phred score a read may carry.
const MaxQuality = 40

// ErrNoQuality is returned for alignment records stored without base qualities.
var ErrNoQuality = errors.New("record has no base qualities")

// Read is one sequenced fragment: base symbols and the Phred score of each.
type Read struct {
	Name string // read name.
	Seq  []byte // base symbols.
	Qual []byte // Phred scores, not ASCII encoded.
}

// Len returns the number of bases in the read.
func (r Read) Len() int {
	return len(r.Seq)
}

// Source iterates over reads.
//
//	for src.Next() {
//		r := src.Read()
//	}
//	if err := src.Err(); err != nil {
//	}
type Source interface {
	Next() bool
	Read() Read
	Err() error
	Close() error
}

// Slice returns a Source over in-memory reads.
func Slice(records []Read) Source {
	return &sliceSource{records: records, i: -1}
}

type sliceSource struct {
	records []Read
	i       int
}

func (s *sliceSource) Next() bool {
	if s.i+1 >= len(s.records) {
		return false
	}
	s.i++
	return true
}

func (s *sliceSource) Read() Read   { return s.records[s.i] }
func (s *sliceSource) Err() error   { return nil }
func (s *sliceSource) Close() error { return nil }

// ReadAll drains src and closes it.
func ReadAll(src Source) (records []Read, err error) {
	defer func() {
		if cerr := src.Close(); err == nil {
			err = cerr
		}
	}()
	for src.Next() {
		records = append(records, src.Read())
	}
	if err = src.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	return records, nil
}
