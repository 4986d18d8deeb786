package readstats

import (
	"fmt"
	"iter"
	"sync"

	"github.com/shenwei356/util/pathutil"
)

// ResultSet holds the accepted reads as four index-aligned columns in input
// order: IDs[i], Lengths[i], AvgQuality[i] and GCContent[i] describe the same
// read
type ResultSet struct {
	IDs        []string
	Lengths    []int
	AvgQuality []float64
	GCContent  []float64
}

// NewResultSet returns an empty (non-nil) ResultSet
func NewResultSet() *ResultSet {
	return &ResultSet{
		IDs:        []string{},
		Lengths:    []int{},
		AvgQuality: []float64{},
		GCContent:  []float64{},
	}
}

// Len returns the number of accepted reads
func (r *ResultSet) Len() int { return len(r.IDs) }

func (r *ResultSet) add(id string, m Metrics) {
	r.IDs = append(r.IDs, id)
	r.Lengths = append(r.Lengths, m.Length)
	r.AvgQuality = append(r.AvgQuality, m.MeanQuality)
	r.GCContent = append(r.GCContent, m.GCContent)
}

// Options configures a scan
type Options struct {
	Filter Filter
	Mode   QualityMode
	Parser Parser
	// Workers > 1 computes metrics on that many goroutines. Output order is
	// the input order regardless
	Workers int
	// BatchSize is the number of records handed to the workers at once
	BatchSize int
}

// DefaultOptions is a sequential error-probability scan with no thresholds
var DefaultOptions = Options{
	Mode:      ModeErrorProb,
	Parser:    ParserLenient,
	Workers:   1,
	BatchSize: 1000,
}

// Analyze scans records once and returns the reads passing f, using the
// error-probability quality average
func Analyze(records iter.Seq2[*Record, error], f Filter) *ResultSet {
	opts := DefaultOptions
	opts.Filter = f
	rs, _ := AnalyzeWith(records, opts)
	return rs
}

// AnalyzeWith scans records once according to opts. Items carrying an error
// and records with an empty sequence are skipped
func AnalyzeWith(records iter.Seq2[*Record, error], opts Options) (*ResultSet, Stats) {
	if opts.Workers > 1 {
		return analyzeParallel(records, opts)
	}

	rs := NewResultSet()
	var stats Stats
	for rec, err := range records {
		if err != nil {
			stats.DecodeErrors++
			continue
		}
		stats.Records++
		if Length(rec.Seq) == 0 {
			stats.Empty++
			continue
		}
		m := Compute(rec, opts.Mode)
		if !opts.Filter.Pass(m) {
			stats.Rejected++
			continue
		}
		rs.add(rec.ID, m)
		stats.Passed++
	}
	return rs, stats
}

type verdict struct {
	metrics Metrics
	keep    bool
}

// analyzeParallel reads batches of records, evaluates each batch on the
// workers and appends the batch's survivors before reading the next one
func analyzeParallel(records iter.Seq2[*Record, error], opts Options) (*ResultSet, Stats) {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultOptions.BatchSize
	}

	rs := NewResultSet()
	var stats Stats
	batch := make([]*Record, 0, batchSize)
	verdicts := make([]verdict, batchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		var wg sync.WaitGroup
		next := make(chan int, len(batch))
		for i := range batch {
			next <- i
		}
		close(next)
		workers := opts.Workers
		if workers > len(batch) {
			workers = len(batch)
		}
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range next {
					m := Compute(batch[i], opts.Mode)
					verdicts[i] = verdict{metrics: m, keep: opts.Filter.Pass(m)}
				}
			}()
		}
		wg.Wait()

		var batchStats Stats
		for i, rec := range batch {
			if !verdicts[i].keep {
				batchStats.Rejected++
				continue
			}
			rs.add(rec.ID, verdicts[i].metrics)
			batchStats.Passed++
		}
		stats = stats.Merge(batchStats)
		batch = batch[:0]
	}

	for rec, err := range records {
		if err != nil {
			stats.DecodeErrors++
			continue
		}
		stats.Records++
		if Length(rec.Seq) == 0 {
			stats.Empty++
			continue
		}
		batch = append(batch, rec)
		if len(batch) == batchSize {
			flush()
		}
	}
	flush()
	return rs, stats
}

// AnalyzeFile scans a FASTQ file and returns the reads passing f. If the file
// cannot be opened the result is an empty ResultSet, the same as for a file
// without qualifying reads; use AnalyzeFileStrict to tell the two apart
func AnalyzeFile(file string, f Filter) *ResultSet {
	opts := DefaultOptions
	opts.Filter = f
	rs, _, err := AnalyzeFileStrict(file, opts)
	if err != nil {
		return NewResultSet()
	}
	return rs
}

// AnalyzeFileStrict is AnalyzeFile with open failures reported. A missing
// file yields an error wrapping ErrNotExist. Per-record failures are still
// skipped and only counted in Stats
func AnalyzeFileStrict(file string, opts Options) (*ResultSet, Stats, error) {
	if file != "-" {
		exists, err := pathutil.Exists(file)
		if err != nil {
			return NewResultSet(), Stats{}, fmt.Errorf("error checking input %s: %w", file, err)
		}
		if !exists {
			return NewResultSet(), Stats{}, fmt.Errorf("%w: %s", ErrNotExist, file)
		}
	}

	src, err := Open(file, opts.Parser)
	if err != nil {
		return NewResultSet(), Stats{}, err
	}
	defer src.Close()

	rs, stats := AnalyzeWith(src.Records(), opts)
	return rs, stats, nil
}
