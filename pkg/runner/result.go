package runner

// FileOutcome is the result of parsing a single file.
type FileOutcome struct {
	// Path is the file that was parsed.
	Path string

	// Tags is the number of tag entities in the parsed tree.
	Tags int

	// Err is the parse or read failure, nil on success.
	Err error
}

// Stats aggregates a run.
type Stats struct {
	// FilesDiscovered is the number of files selected for parsing.
	FilesDiscovered int

	// FilesParsed is the number of files parsed successfully.
	FilesParsed int

	// FilesFailed is the number of files that failed to read or parse.
	FilesFailed int

	// TagsTotal is the number of tag entities across all parsed files.
	TagsTotal int
}

// Result collects per-file outcomes in discovery order plus aggregates.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// accumulate folds one outcome into the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	if outcome.Err != nil {
		r.Stats.FilesFailed++
		return
	}
	r.Stats.FilesParsed++
	r.Stats.TagsTotal += outcome.Tags
}

// Clean reports whether every file parsed successfully.
func (r *Result) Clean() bool {
	return r.Stats.FilesFailed == 0
}
