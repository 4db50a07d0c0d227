package reads

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// Format is a read file format.
type Format int

const (
	FASTQ Format = iota
	SAM
	BAM
)

func (f Format) String() string {
	switch f {
	case SAM:
		return "sam"
	case BAM:
		return "bam"
	default:
		return "fastq"
	}
}

// FormatOf guesses the format of a file from its name.
// A trailing .gz is ignored; anything that is not SAM or BAM is FASTQ.
func FormatOf(name string) Format {
	name = strings.TrimSuffix(strings.ToLower(name), ".gz")
	switch filepath.Ext(name) {
	case ".sam":
		return SAM
	case ".bam":
		return BAM
	default:
		return FASTQ
	}
}

// Open opens a read file. FASTQ and SAM files may be gzip compressed.
// The returned Source closes the file.
func Open(fileName string) (Source, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	src, err := NewSource(FormatOf(fileName), f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	attach(src, f)
	return src, nil
}

// NewSource returns a Source reading the given format from r.
// Closing the Source releases decompressors but leaves r open.
func NewSource(format Format, r io.Reader) (Source, error) {
	if format == BAM {
		// bgzf is handled by the bam reader itself.
		br, err := bam.NewReader(r, 0)
		if err != nil {
			return nil, err
		}
		return &samSource{rd: br, closers: []io.Closer{br}}, nil
	}

	dr, closer, err := Decompress(r)
	if err != nil {
		return nil, err
	}
	var closers []io.Closer
	if closer != nil {
		closers = append(closers, closer)
	}

	if format == SAM {
		sr, err := sam.NewReader(dr)
		if err != nil {
			closeAll(closers)
			return nil, err
		}
		return &samSource{rd: sr, closers: closers}, nil
	}

	s := NewFastqSource(dr).(*fastqSource)
	s.closers = closers
	return s, nil
}

// Decompress returns a reader over r that transparently gunzips it
// when it starts with the gzip magic. closer is nil for plain input.
func Decompress(r io.Reader) (rd io.Reader, closer io.Closer, err error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, nil, err
	}
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		return gz, gz, nil
	}
	return br, nil, nil
}

func attach(src Source, c io.Closer) {
	switch s := src.(type) {
	case *fastqSource:
		s.closers = append([]io.Closer{c}, s.closers...)
	case *samSource:
		s.closers = append([]io.Closer{c}, s.closers...)
	}
}

type recordReader interface {
	Read() (*sam.Record, error)
}

// samSource reads primary alignments from a SAM or BAM stream.
type samSource struct {
	rd      recordReader
	cur     Read
	err     error
	closers []io.Closer
}

func (s *samSource) Next() bool {
	for s.err == nil {
		r, err := s.rd.Read()
		if err != nil {
			if err != io.EOF {
				s.err = err
			}
			return false
		}
		if r.Flags&(sam.Secondary|sam.Supplementary) != 0 {
			continue
		}
		s.cur, s.err = FromRecord(r)
		return s.err == nil
	}
	return false
}

func (s *samSource) Read() Read   { return s.cur }
func (s *samSource) Err() error   { return s.err }
func (s *samSource) Close() error { return closeAll(s.closers) }

// FromRecord converts an alignment record to a Read in sequencing
// orientation: reverse strand records are reverse complemented.
func FromRecord(r *sam.Record) (Read, error) {
	read := Read{Name: r.Name, Seq: r.Seq.Expand()}
	if len(r.Qual) != len(read.Seq) || (len(r.Qual) > 0 && r.Qual[0] == 0xff) {
		return Read{}, fmt.Errorf("%s: %w", r.Name, ErrNoQuality)
	}
	read.Qual = append([]byte(nil), r.Qual...)
	if r.Flags&sam.Reverse != 0 {
		reverseComplement(read.Seq)
		reverse(read.Qual)
	}
	return read, nil
}

var complement = [256]byte{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A', 'N': 'N',
	'a': 't', 'c': 'g', 'g': 'c', 't': 'a', 'n': 'n',
}

func reverseComplement(s []byte) {
	reverse(s)
	for i, c := range s {
		if comp := complement[c]; comp != 0 {
			s[i] = comp
		}
	}
}

func reverse(s []byte) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
