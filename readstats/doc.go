// Package readstats computes per-read statistics of FASTQ records (length,
// mean Phred quality and GC content) and selects the reads passing optional
// minimum thresholds.
//
// Quality is averaged in error-probability space: every Phred+33 byte is
// converted to its error probability, the probabilities are averaged and the
// mean is converted back to a Phred score. The arithmetic mean of raw scores
// is available only as the explicitly selected ModeArithmetic.
//
// Scanning is fail-soft. Records that fail to decode and records with an empty
// sequence are dropped, and AnalyzeFile returns an empty ResultSet when the
// input cannot be opened. AnalyzeFileStrict reports open failures instead.
// The default ParserLenient resumes at the next header after a malformed
// record; ParserFastx cannot and stops there.
package readstats
