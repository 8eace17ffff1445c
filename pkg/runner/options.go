// Package runner orchestrates parsing many XML files concurrently.
package runner

import "github.com/yaklabco/goxmldom/pkg/config"

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified files or directories to process.
	// Empty defaults to the current working directory.
	Paths []string

	// ExcludeGlobs are patterns (matched against slash-separated
	// relative paths and base names) used to skip files or directories.
	ExcludeGlobs []string

	// Jobs is the maximum number of concurrent workers.
	// Zero or negative means one per CPU.
	Jobs int

	// StrictRoot requires each document to have exactly one root tag.
	StrictRoot bool
}

// OptionsFromConfig seeds run options from a resolved configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{}
	}
	return Options{
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		StrictRoot:   cfg.StrictRoot,
	}
}

// effectivePaths returns the paths to process, defaulting to ".".
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
