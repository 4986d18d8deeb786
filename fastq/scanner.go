// Package fastq provides a lenient line-oriented FASTQ scanner that reports
// malformed records individually and resynchronises on the next header line.
package fastq

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrShort is returned when the input ends in the middle of a record.
	ErrShort = errors.New("truncated FASTQ record")
	// ErrInvalid is returned for a record that does not follow the
	// four-line layout.
	ErrInvalid = errors.New("invalid FASTQ record")
)

// MaxLineSize bounds the length of a single line, and so of a single read.
const MaxLineSize = 256 << 20

// RecordError describes a malformed record. Scanning may continue after it.
type RecordError struct {
	Line int // 1-based line number where the bad record starts
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// A Read is one FASTQ record. ID is the header up to the first whitespace,
// without the leading '@'; Name is the whole header without the '@'.
type Read struct {
	ID   string
	Name []byte
	Seq  []byte
	Qual []byte
}

type line struct {
	text []byte
	num  int
}

// Scanner reads FASTQ records from a stream. Unlike a strict parser it does
// not stop at the first malformed record: Next returns a *RecordError for it
// and the following call resumes at the next line beginning with '@'.
//
// Sequence and quality lengths are not compared. Scanners are not threadsafe.
type Scanner struct {
	b       *bufio.Scanner
	num     int
	pending *line
	resync  bool
	err     error // io.EOF or a read error; final once set
}

// NewScanner constructs a Scanner reading raw FASTQ data from r.
func NewScanner(r io.Reader) *Scanner {
	b := bufio.NewScanner(r)
	b.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &Scanner{b: b}
}

// Next returns the next record. At the end of input it returns io.EOF.
// A malformed record yields a *RecordError wrapping ErrInvalid or ErrShort;
// any other error comes from the underlying reader and is final.
func (s *Scanner) Next() (*Read, error) {
	if s.pending == nil && s.err != nil {
		return nil, s.err
	}

	skipped := 0
	var header line
	for {
		l, ok := s.readLine()
		if !ok {
			if skipped > 0 && s.err == io.EOF {
				return nil, &RecordError{Line: skipped, Err: ErrInvalid}
			}
			return nil, s.err
		}
		if len(l.text) > 0 && l.text[0] == '@' {
			header = l
			break
		}
		if s.resync || (skipped == 0 && len(l.text) == 0) {
			continue
		}
		if skipped == 0 {
			skipped = l.num
		}
	}
	s.resync = false
	if skipped > 0 {
		s.pending = &header
		return nil, &RecordError{Line: skipped, Err: ErrInvalid}
	}

	seqLine, ok := s.readLine()
	if !ok {
		return nil, s.short(header.num)
	}
	plus, ok := s.readLine()
	if !ok {
		return nil, s.short(header.num)
	}
	if len(plus.text) == 0 || plus.text[0] != '+' {
		if len(plus.text) > 0 && plus.text[0] == '@' {
			s.pending = &plus
		} else {
			s.resync = true
		}
		return nil, &RecordError{Line: header.num, Err: ErrInvalid}
	}
	qual, ok := s.readLine()
	if !ok {
		return nil, s.short(header.num)
	}

	name := header.text[1:]
	id := name
	if i := bytes.IndexAny(name, " \t"); i >= 0 {
		id = name[:i]
	}
	return &Read{
		ID:   string(id),
		Name: name,
		Seq:  seqLine.text,
		Qual: qual.text,
	}, nil
}

func (s *Scanner) short(start int) error {
	if s.err != io.EOF {
		return s.err
	}
	return &RecordError{Line: start, Err: ErrShort}
}

func (s *Scanner) readLine() (line, bool) {
	if s.pending != nil {
		l := *s.pending
		s.pending = nil
		return l, true
	}
	if s.err != nil {
		return line{}, false
	}
	if !s.b.Scan() {
		if s.err = s.b.Err(); s.err == nil {
			s.err = io.EOF
		}
		return line{}, false
	}
	s.num++
	text := bytes.TrimSuffix(s.b.Bytes(), []byte{'\r'})
	out := make([]byte, len(text))
	copy(out, text)
	return line{text: out, num: s.num}, true
}
