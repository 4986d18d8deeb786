package readstats

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"longreads/fastq"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

// Record is one decoded sequencing read
type Record struct {
	ID   string
	Seq  []byte
	Qual []byte
}

// Source is a single-pass producer of decoded records. Each item is either a
// record or the error that prevented decoding it
type Source interface {
	Records() iter.Seq2[*Record, error]
	Close() error
}

// Parser selects the FASTQ decoder used to open a file
type Parser int

const (
	// ParserLenient uses fastq.Scanner, which skips malformed records and
	// resumes at the next header. It is the default
	ParserLenient Parser = iota
	// ParserFastx decodes with shenwei356/bio. The reader cannot continue past
	// a malformed record, so the stream ends after the first decode error.
	// It also reads FASTA
	ParserFastx
)

func (p Parser) String() string {
	switch p {
	case ParserFastx:
		return "fastx"
	case ParserLenient:
		return "lenient"
	default:
		return "unknown"
	}
}

// ParseParser maps a parser name to its Parser
func ParseParser(name string) (Parser, error) {
	switch name {
	case "fastx":
		return ParserFastx, nil
	case "lenient":
		return ParserLenient, nil
	default:
		return 0, fmt.Errorf("%w: %s (expected fastx or lenient)", ErrUnknownParser, name)
	}
}

// Open opens file (or "-" for stdin) with the given parser
func Open(file string, p Parser) (Source, error) {
	switch p {
	case ParserFastx:
		return OpenFastx(file)
	case ParserLenient:
		return OpenScanner(file)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownParser, int(p))
	}
}

// FastxSource reads records with a shenwei356/bio fastx.Reader
type FastxSource struct {
	reader *fastx.Reader
}

// OpenFastx opens a FASTQ (or FASTA) file, optionally compressed. Bases are
// not validated against any alphabet
func OpenFastx(file string) (*FastxSource, error) {
	reader, err := fastx.NewReader(seq.Unlimit, file, fastx.DefaultIDRegexp)
	if err != nil {
		return nil, fmt.Errorf("error creating reader: %w", err)
	}
	return &FastxSource{reader: reader}, nil
}

// Records yields the records of the file in order. The yielded record owns
// its slices
func (s *FastxSource) Records() iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		var lastErr error
		for {
			record, err := s.reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				// the reader keeps returning its failure once it has one
				if lastErr != nil && lastErr.Error() == err.Error() {
					return
				}
				lastErr = err
				if !yield(nil, err) {
					return
				}
				continue
			}
			lastErr = nil

			rec := &Record{ID: string(record.ID)}
			if record.Seq != nil {
				rec.Seq = append([]byte(nil), record.Seq.Seq...)
				rec.Qual = append([]byte(nil), record.Seq.Qual...)
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

func (s *FastxSource) Close() error {
	s.reader.Close()
	return nil
}

// ScannerSource reads records with the lenient fastq.Scanner
type ScannerSource struct {
	in      *xopen.Reader
	scanner *fastq.Scanner
}

// OpenScanner opens a FASTQ file, optionally compressed, for lenient scanning
func OpenScanner(file string) (*ScannerSource, error) {
	in, err := xopen.Ropen(file)
	if err != nil {
		return nil, fmt.Errorf("error opening input: %w", err)
	}
	return &ScannerSource{in: in, scanner: fastq.NewScanner(in)}, nil
}

// Records yields records and per-record errors until the end of input or a
// read failure
func (s *ScannerSource) Records() iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		for {
			read, err := s.scanner.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				var recErr *fastq.RecordError
				if !yield(nil, err) || !errors.As(err, &recErr) {
					return
				}
				continue
			}
			if !yield(&Record{ID: read.ID, Seq: read.Seq, Qual: read.Qual}, nil) {
				return
			}
		}
	}
}

func (s *ScannerSource) Close() error {
	return s.in.Close()
}

// SliceSource serves records already held in memory, mostly for tests and
// bindings that decode on their own side
type SliceSource []*Record

func (s SliceSource) Records() iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		for _, rec := range s {
			if !yield(rec, nil) {
				return
			}
		}
	}
}

func (SliceSource) Close() error { return nil }
