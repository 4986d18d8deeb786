package readstats

import "errors"

var (
	// ErrNotExist is returned by AnalyzeFileStrict when the input file is missing
	ErrNotExist = errors.New("input file does not exist")
	// ErrUnknownParser is returned for an unsupported Parser value
	ErrUnknownParser = errors.New("unknown record parser")
)
