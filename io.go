// Output utilities for result tables

package main

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/shenwei356/xopen"

	"longreads/readstats"
)

// writeTable writes a result as TSV or JSON to outFile ("-" for stdout).
// xopen compresses by file extension (.gz, .xz, .zst); compLevel > 0 applies
// ZSTD explicitly at that level, so it should be combined with a plain name
func writeTable(outFile string, tabler readstats.Tabler, format string, decimals int, compLevel int) error {
	outfh, err := xopen.Wopen(outFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %v", err)
	}
	defer outfh.Close()

	var w io.Writer = outfh
	var encoder *zstd.Encoder
	if compLevel > 0 {
		encoder, err = zstd.NewWriter(outfh, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(compLevel)))
		if err != nil {
			return fmt.Errorf("error creating ZSTD encoder: %v", err)
		}
		w = encoder
	}

	table := tabler.ToTable()
	switch format {
	case "json":
		err = table.WriteJSON(w)
	default:
		err = table.WriteTSV(w, decimals)
	}
	if err != nil {
		return err
	}

	if encoder != nil {
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("error finishing ZSTD stream: %v", err)
		}
	}
	return nil
}
