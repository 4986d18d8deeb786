package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func getColorizedLogo() string {
	return cyan("⣿⣶⣦⣄⣀ longreads")
}

// Custom help function used
// It provides nicely formatted help messages for the root command and the analyze subcommand
func helpFunc(cmd *cobra.Command, args []string) {

	if cmd.Name() == "analyze" {
		fmt.Printf(`
%s

%s
  Compute length, mean Phred quality and GC content for each FASTQ record and
  write the records passing the optional thresholds as a table (id, length,
  avg_quality, gc_content), in input order.

%s
  %s
  %s
  %s
  %s
  %s
  %s
  %s
  %s
  %s
  %s
  %s
  %s
  %s

%s
  %s
  %s
  %s

`,
			bold(getColorizedLogo()+" analyze - Per-read statistics with optional filters"),
			bold(yellow("Description:")),
			bold(yellow("Flags:")),
			cyan("-i, --in")+" <string>        : Input FASTQ file (default, '-' for stdin)",
			cyan("-o, --out")+" <string>       : Output table file (default, '-' for stdout)",
			cyan("-l, --min-length")+" <int>   : Minimum read length (optional, inclusive)",
			cyan("-q, --min-qual")+" <float>   : Minimum mean Phred quality (optional, inclusive)",
			cyan("-g, --min-gc")+" <float>     : Minimum GC content in percent (optional, inclusive)",
			cyan("-s, --mode")+" <string>      : Quality average (errprob, arithmetic) (default, 'errprob')",
			cyan("-p, --parser")+" <string>    : FASTQ parser (lenient, fastx) (default, 'lenient')",
			cyan("-f, --format")+" <string>    : Output format (tsv, json) (default, 'tsv')",
			cyan("-d, --decimals")+" <int>     : Decimal places in TSV output (default, 4)",
			cyan("-t, --threads")+" <int>      : Number of worker goroutines (default, 1)",
			cyan("-c, --compress")+" <int>     : ZSTD compression level of the output (0=disabled, 1-22)",
			cyan("    --strict")+"             : Fail if the input cannot be opened",
			cyan("    --stats")+"              : Print scan counts to stderr",
			bold(yellow("Examples:")),
			cyan("longreads analyze -i reads.fq.gz -o stats.tsv --min-length 1000 --min-qual 12"),
			cyan("cat reads.fq | longreads analyze --min-gc 40 --format json > stats.json"),
			cyan("longreads analyze -i reads.fq --parser fastx --stats -c 3 -o stats.tsv.zst"),
		)
		return
	}

	// Default: root command help
	fmt.Printf(`
%s

%s
  %s
  %s
  %s

%s
  %s

%s
  %s
  %s

%s
  %s

`,
		bold(getColorizedLogo()+" v."+VERSION+" - FASTQ read statistics and filtering"),
		bold(yellow("Metrics:")),
		cyan("length")+"      : number of bases",
		cyan("avg_quality")+" : mean Phred score, averaged over per-base error probabilities",
		cyan("gc_content")+"  : percentage of G and C bases",
		bold(yellow("Subcommands:")),
		cyan("analyze")+" : Report per-read statistics of reads passing optional thresholds",
		bold(yellow("Flags:")),
		cyan("-h, --help")+"    : Show help message",
		cyan("-v, --version")+" : Show version information",
		bold(yellow("Usage examples:")),
		cyan("longreads analyze -i reads.fq.gz --min-length 500 --min-qual 10 -o stats.tsv"),
	)
}
