package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/yaklabco/goxmldom/pkg/xmldetect"
)

// Discover resolves opts.Paths into the sorted list of XML files to
// parse. Files passed explicitly are always included; directories are
// walked and filtered by extension and exclude globs.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery: %w", ctx.Err())
		default:
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if !info.IsDir() {
			// Explicit files bypass the extension filter: the user
			// asked for them by name.
			add(path)
			continue
		}

		if err := discoverDir(ctx, path, opts, add); err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

func discoverDir(ctx context.Context, root string, opts Options, add func(string)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("discovery: %w", ctx.Err())
		default:
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		if d.IsDir() {
			if path != root && excluded(rel, d.Name(), opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		if excluded(rel, d.Name(), opts.ExcludeGlobs) {
			return nil
		}
		if !xmldetect.HasXMLExtension(path) {
			return nil
		}
		add(path)
		return nil
	})
}

// excluded reports whether rel (slash-separated) or the base name matches
// any exclude glob.
func excluded(rel, base string, globs []string) bool {
	rel = filepath.ToSlash(rel)
	for _, glob := range globs {
		if ok, err := filepath.Match(glob, rel); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(glob, base); err == nil && ok {
			return true
		}
	}
	return false
}
