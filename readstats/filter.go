package readstats

// Filter holds the optional minimum thresholds applied to each read.
// A nil threshold never rejects a read; a set threshold is an inclusive
// lower bound
type Filter struct {
	MinLength     *int
	MinAvgQuality *float64
	MinGCContent  *float64
}

// Int returns a pointer to v, for use as a Filter threshold
func Int(v int) *int { return &v }

// Float returns a pointer to v, for use as a Filter threshold
func Float(v float64) *float64 { return &v }

// Pass reports whether m satisfies every threshold set in f
func (f Filter) Pass(m Metrics) bool {
	if f.MinLength != nil && m.Length < *f.MinLength {
		return false
	}
	if f.MinAvgQuality != nil && !(m.MeanQuality >= *f.MinAvgQuality) {
		return false
	}
	if f.MinGCContent != nil && !(m.GCContent >= *f.MinGCContent) {
		return false
	}
	return true
}
