package readstats

import (
	"fmt"
	"math"
)

const (
	// PhredOffset is the Phred+33 (Sanger / Illumina 1.8+) quality offset
	PhredOffset = 33
)

// MaxQuality is returned by MeanQuality when the averaged error probability
// is exactly zero and the Phred score is therefore unbounded
func MaxQuality() float64 { return math.Inf(1) }

// QualityMode selects how the average quality of a read is computed
type QualityMode int

const (
	// ModeErrorProb averages per-base error probabilities and converts the
	// mean back to the Phred scale
	ModeErrorProb QualityMode = iota
	// ModeArithmetic is the legacy arithmetic mean of decoded Phred scores.
	// It reports materially higher values than ModeErrorProb on mixed-quality
	// reads and is kept for compatibility only
	ModeArithmetic
)

func (m QualityMode) String() string {
	switch m {
	case ModeErrorProb:
		return "errprob"
	case ModeArithmetic:
		return "arithmetic"
	default:
		return "unknown"
	}
}

// ParseQualityMode maps a mode name to its QualityMode
func ParseQualityMode(name string) (QualityMode, error) {
	switch name {
	case "errprob":
		return ModeErrorProb, nil
	case "arithmetic":
		return ModeArithmetic, nil
	default:
		return 0, fmt.Errorf("invalid quality mode: %s (expected errprob or arithmetic)", name)
	}
}

var errorProbs [256]float64

func init() {
	// Pre-compute error probabilities for every byte value, including those
	// below the offset (negative Phred, probability above 1)
	for i := range errorProbs {
		errorProbs[i] = math.Pow(10, float64(i-PhredOffset)/-10)
	}
}

// Sum of error probabilities for quality scores
func sumErrorProbs(qual []byte) float64 {
	var sum float64
	for _, q := range qual {
		sum += errorProbs[q]
	}
	return sum
}

// phredFromError converts a mean error probability to the Phred scale
func phredFromError(meanErr float64) float64 {
	if meanErr <= 0 {
		return MaxQuality()
	}
	return -10 * math.Log10(meanErr)
}

// MeanQuality returns the average Phred quality of a read, computed by
// averaging per-base error probabilities. An empty quality string scores 0
func MeanQuality(qual []byte) float64 {
	if len(qual) == 0 {
		return 0.0
	}
	return phredFromError(sumErrorProbs(qual) / float64(len(qual)))
}

// ArithmeticMeanQuality returns the plain mean of decoded Phred scores.
// Legacy, see ModeArithmetic
func ArithmeticMeanQuality(qual []byte) float64 {
	if len(qual) == 0 {
		return 0.0
	}
	var sum int
	for _, q := range qual {
		sum += int(q) - PhredOffset
	}
	return float64(sum) / float64(len(qual))
}

// GCContent returns the percentage of G/C bases (either case) in seq.
// Bytes other than G, g, C and c count towards the length only
func GCContent(seq []byte) float64 {
	if len(seq) == 0 {
		return 0.0
	}
	count := 0
	for _, b := range seq {
		switch b {
		case 'G', 'g', 'C', 'c':
			count++
		}
	}
	return float64(count) / float64(len(seq)) * 100.0
}

// Length returns the number of bases in seq
func Length(seq []byte) int {
	return len(seq)
}

// Metrics holds the derived values of one read
type Metrics struct {
	Length      int
	MeanQuality float64
	GCContent   float64
}

// Compute derives the metrics of a record. Sequence and quality are read
// independently, so a length mismatch between them is tolerated
func Compute(rec *Record, mode QualityMode) Metrics {
	m := Metrics{
		Length:    Length(rec.Seq),
		GCContent: GCContent(rec.Seq),
	}
	switch mode {
	case ModeArithmetic:
		m.MeanQuality = ArithmeticMeanQuality(rec.Qual)
	default:
		m.MeanQuality = MeanQuality(rec.Qual)
	}
	return m
}
