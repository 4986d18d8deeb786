// Subcommand (`longreads analyze`) computing per-read length, mean quality and
// GC content, and reporting the reads that pass the optional thresholds

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"longreads/readstats"
)

// analyzeConfig collects the flags of the analyze command
type analyzeConfig struct {
	inFile    string
	outFile   string
	format    string
	decimals  int
	mode      string
	parser    string
	threads   int
	compLevel int
	strict    bool
	showStats bool

	minLength  int
	minQual    float64
	minGC      float64
	hasMinLen  bool
	hasMinQual bool
	hasMinGC   bool
}

// options turns the command flags into scan options. Threshold flags that were
// not given stay unset and never reject a read
func (c *analyzeConfig) options() (readstats.Options, error) {
	opts := readstats.DefaultOptions

	mode, err := readstats.ParseQualityMode(c.mode)
	if err != nil {
		return opts, err
	}
	parser, err := readstats.ParseParser(c.parser)
	if err != nil {
		return opts, err
	}
	if c.threads < 1 {
		return opts, fmt.Errorf("threads must be at least 1, got %d", c.threads)
	}
	if c.compLevel < 0 || c.compLevel > 22 {
		return opts, fmt.Errorf("compression level must be between 0 and 22")
	}
	switch c.format {
	case "tsv", "json":
	default:
		return opts, fmt.Errorf("invalid output format: %s (expected tsv or json)", c.format)
	}

	opts.Mode = mode
	opts.Parser = parser
	opts.Workers = c.threads
	if c.hasMinLen {
		opts.Filter.MinLength = readstats.Int(c.minLength)
	}
	if c.hasMinQual {
		opts.Filter.MinAvgQuality = readstats.Float(c.minQual)
	}
	if c.hasMinGC {
		opts.Filter.MinGCContent = readstats.Float(c.minGC)
	}
	return opts, nil
}

// AnalyzeCommand creates the `analyze` subcommand
//
// The whole result is collected in memory and then written as one table,
// with the columns id, length, avg_quality and gc_content in input order
func AnalyzeCommand() *cobra.Command {
	cfg := &analyzeConfig{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report length, mean quality and GC content of reads passing optional thresholds",
		Long: `Compute the length, mean Phred quality (averaged over error probabilities) and
GC content of every FASTQ record, and write the records passing the optional
minimum thresholds as a table. Records that cannot be decoded and records with
an empty sequence are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			cfg.hasMinLen = flags.Changed("min-length")
			cfg.hasMinQual = flags.Changed("min-qual")
			cfg.hasMinGC = flags.Changed("min-gc")
			return runAnalyze(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.inFile, "in", "i", "-", "Input FASTQ file (default: stdin)")
	flags.StringVarP(&cfg.outFile, "out", "o", "-", "Output table file (default: stdout)")
	flags.StringVarP(&cfg.format, "format", "f", "tsv", "Output format (tsv, json)")
	flags.IntVarP(&cfg.decimals, "decimals", "d", 4, "Decimal places for quality and GC in TSV output (-1 = shortest exact)")
	flags.StringVarP(&cfg.mode, "mode", "s", "errprob", "Quality average (errprob, arithmetic)")
	flags.StringVarP(&cfg.parser, "parser", "p", "lenient", "FASTQ parser (lenient, fastx)")
	flags.IntVarP(&cfg.threads, "threads", "t", 1, "Number of worker goroutines")
	flags.IntVarP(&cfg.compLevel, "compress", "c", 0, "ZSTD compression level of the output (0=disabled, 1-22)")
	flags.BoolVar(&cfg.strict, "strict", false, "Fail if the input cannot be opened instead of reporting no reads")
	flags.BoolVar(&cfg.showStats, "stats", false, "Print scan counts to stderr")
	flags.IntVarP(&cfg.minLength, "min-length", "l", 0, "Minimum read length (optional)")
	flags.Float64VarP(&cfg.minQual, "min-qual", "q", 0, "Minimum mean Phred quality (optional)")
	flags.Float64VarP(&cfg.minGC, "min-gc", "g", 0, "Minimum GC content, percent (optional)")

	return cmd
}

// runAnalyze scans the input and writes the result table.
//
// Without --strict, an input that cannot be opened produces an empty table;
// with it, the open failure is returned
func runAnalyze(cfg *analyzeConfig) error {
	opts, err := cfg.options()
	if err != nil {
		return err
	}

	rs, stats, err := readstats.AnalyzeFileStrict(cfg.inFile, opts)
	if err != nil {
		if cfg.strict {
			return err
		}
		fmt.Fprintln(os.Stderr, yellow("Warning: "+err.Error()+" (reporting no reads)"))
	}

	if cfg.showStats {
		printStats(stats)
	}

	return writeTable(cfg.outFile, rs, cfg.format, cfg.decimals, cfg.compLevel)
}

func printStats(stats readstats.Stats) {
	fmt.Fprintf(os.Stderr, "%s %d records, %d passed, %d rejected, %d empty, %d decode errors\n",
		yellow("Scanned:"), stats.Records, stats.Passed, stats.Rejected, stats.Empty, stats.DecodeErrors)
}
