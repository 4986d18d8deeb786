package readstats

// Stats counts what a scan encountered
type Stats struct {
	// Records is the number of successfully decoded records
	Records int
	// DecodeErrors is the number of items the source reported as malformed.
	// They are not part of Records
	DecodeErrors int
	// Empty counts decoded records with a zero-length sequence
	Empty int
	// Rejected counts non-empty records failing at least one threshold
	Rejected int
	// Passed counts records appended to the ResultSet
	Passed int
}

// Merge adds the field values of the two Stats objects and creates new Stats
func (s Stats) Merge(o Stats) Stats {
	s.Records += o.Records
	s.DecodeErrors += o.DecodeErrors
	s.Empty += o.Empty
	s.Rejected += o.Rejected
	s.Passed += o.Passed
	return s
}
