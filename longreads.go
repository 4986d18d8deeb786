package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const VERSION = "0.3.0"

// Define color functions
var (
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// exitFunc is replaced in tests
var exitFunc = os.Exit

var version bool

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "longreads",
		Short:         bold("Per-read FASTQ statistics with length, quality and GC filters"),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			if version {
				fmt.Printf("longreads %s\n", VERSION)
				return
			}
			helpFunc(cmd, args)
		},
	}
	rootCmd.SetHelpFunc(helpFunc)
	rootCmd.Flags().BoolVarP(&version, "version", "v", false, "Show version information")

	rootCmd.AddCommand(AnalyzeCommand())
	return rootCmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red("Error: "+err.Error()))
		fmt.Fprintln(os.Stderr, red("Try 'longreads --help' for more information"))
		exitFunc(1)
	}
}
