package fastq

import (
	"errors"
	"io"
	"strings"
	"testing"
)

type result struct {
	id   string
	seq  string
	qual string
	err  error
	line int
}

func scanAll(t *testing.T, input string) []result {
	t.Helper()
	s := NewScanner(strings.NewReader(input))
	var out []result
	for i := 0; i < 100; i++ {
		read, err := s.Next()
		if err == io.EOF {
			return out
		}
		if err != nil {
			var recErr *RecordError
			if !errors.As(err, &recErr) {
				t.Fatalf("unexpected error: %v", err)
			}
			out = append(out, result{err: recErr.Err, line: recErr.Line})
			continue
		}
		out = append(out, result{id: read.ID, seq: string(read.Seq), qual: string(read.Qual)})
	}
	t.Fatal("scanner did not reach EOF")
	return nil
}

func TestScanner(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []result
	}{
		{
			name:  "Two records",
			input: "@r1 desc\nACGT\n+\nIIII\n@r2\nGG\n+r2\n!!\n",
			want:  []result{{id: "r1", seq: "ACGT", qual: "IIII"}, {id: "r2", seq: "GG", qual: "!!"}},
		},
		{
			name:  "No trailing newline and CRLF",
			input: "@r1\r\nACGT\r\n+\r\nIIII",
			want:  []result{{id: "r1", seq: "ACGT", qual: "IIII"}},
		},
		{
			name:  "Empty sequence",
			input: "@e\n\n+\n\n@r\nA\n+\nI\n",
			want:  []result{{id: "e"}, {id: "r", seq: "A", qual: "I"}},
		},
		{
			name:  "Quality starting with @",
			input: "@r1\nAC\n+\n@I\n",
			want:  []result{{id: "r1", seq: "AC", qual: "@I"}},
		},
		{
			name:  "Blank lines between records",
			input: "\n@r1\nA\n+\nI\n\n\n@r2\nC\n+\nI\n",
			want:  []result{{id: "r1", seq: "A", qual: "I"}, {id: "r2", seq: "C", qual: "I"}},
		},
		{
			name:  "Leading garbage",
			input: "junk\nmore junk\n@r1\nA\n+\nI\n",
			want:  []result{{err: ErrInvalid, line: 1}, {id: "r1", seq: "A", qual: "I"}},
		},
		{
			name:  "Bad separator resynchronises",
			input: "@r1\nACGT\nXX\nIIII\n@r2\nGG\n+\nII\n",
			want:  []result{{err: ErrInvalid, line: 1}, {id: "r2", seq: "GG", qual: "II"}},
		},
		{
			name:  "Header instead of separator",
			input: "@r1\nACGT\n@r2\nGG\n+\nII\n",
			want:  []result{{err: ErrInvalid, line: 1}, {id: "r2", seq: "GG", qual: "II"}},
		},
		{
			name:  "Truncated record",
			input: "@r1\nA\n+\nI\n@r2\nACGT\n",
			want:  []result{{id: "r1", seq: "A", qual: "I"}, {err: ErrShort, line: 5}},
		},
		{
			name:  "Trailing garbage",
			input: "@r1\nA\n+\nI\nxyz\n",
			want:  []result{{id: "r1", seq: "A", qual: "I"}, {err: ErrInvalid, line: 5}},
		},
		{
			name:  "Empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanAll(t, tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results %+v, want %d %+v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("result %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScannerName(t *testing.T) {
	s := NewScanner(strings.NewReader("@r1\tlane=2 x\nA\n+\nI\n"))
	read, err := s.Next()
	if err != nil {
		t.Fatal(err)
	}
	if read.ID != "r1" || string(read.Name) != "r1\tlane=2 x" {
		t.Errorf("ID = %q, Name = %q", read.ID, read.Name)
	}
	if _, err := s.Next(); err != io.EOF {
		t.Errorf("second Next() error = %v, want io.EOF", err)
	}
	if _, err := s.Next(); err != io.EOF {
		t.Errorf("Next() after EOF error = %v, want io.EOF", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestScannerReadError(t *testing.T) {
	s := NewScanner(failingReader{})
	_, err := s.Next()
	if err == nil || err == io.EOF {
		t.Fatalf("Next() error = %v, want read failure", err)
	}
	var recErr *RecordError
	if errors.As(err, &recErr) {
		t.Errorf("read failure reported as record error: %v", err)
	}
	if _, again := s.Next(); again != err {
		t.Errorf("read failure not sticky: %v", again)
	}
}

func TestRecordError(t *testing.T) {
	err := error(&RecordError{Line: 9, Err: ErrShort})
	if !errors.Is(err, ErrShort) {
		t.Error("RecordError does not unwrap to its cause")
	}
	if got := err.Error(); got != "line 9: truncated FASTQ record" {
		t.Errorf("Error() = %q", got)
	}
}
