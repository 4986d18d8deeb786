package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"

	"longreads/readstats"
)

func testResult() *readstats.ResultSet {
	return &readstats.ResultSet{
		IDs:        []string{"r1", "r2"},
		Lengths:    []int{4, 4},
		AvgQuality: []float64{40, 20},
		GCContent:  []float64{100, 0},
	}
}

// Test table writing in both formats
func TestWriteTable(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		decimals int
		want     string
	}{
		{
			name:     "TSV",
			format:   "tsv",
			decimals: 2,
			want:     "id\tlength\tavg_quality\tgc_content\nr1\t4\t40.00\t100.00\nr2\t4\t20.00\t0.00\n",
		},
		{
			name:     "JSON",
			format:   "json",
			decimals: 2,
			want:     `{"id":["r1","r2"],"length":[4,4],"avg_quality":[40,20],"gc_content":[100,0]}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outFile := filepath.Join(t.TempDir(), "out.txt")
			if err := writeTable(outFile, testResult(), tt.format, tt.decimals, 0); err != nil {
				t.Fatal(err)
			}
			content, err := os.ReadFile(outFile)
			if err != nil {
				t.Fatal(err)
			}
			if string(content) != tt.want {
				t.Errorf("content = %q, want %q", content, tt.want)
			}
		})
	}
}

func TestWriteTableZstd(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "out.tsv.bin")
	if err := writeTable(outFile, testResult(), "tsv", 1, 3); err != nil {
		t.Fatal(err)
	}

	compressed, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer decoder.Close()

	content, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		t.Fatalf("output is not a ZSTD stream: %v", err)
	}
	if !strings.HasPrefix(string(content), "id\tlength\tavg_quality\tgc_content\nr1\t4\t40.0\t100.0\n") {
		t.Errorf("decompressed content = %q", content)
	}
}
