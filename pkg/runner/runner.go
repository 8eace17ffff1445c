package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/goxmldom/pkg/fsutil"
	"github.com/yaklabco/goxmldom/pkg/xmldom"
	"github.com/yaklabco/goxmldom/pkg/xmlparse"
)

// Run discovers files under opts.Paths and parses them concurrently with
// a bounded worker pool. Outcomes are returned in discovery order
// regardless of worker completion order, and the context cancels the
// whole run.
//
// Each worker builds its own tree per file; nothing is shared between
// parses, so the core parser's single-threaded contract holds.
func Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	var parseOpts []xmlparse.Option
	if opts.StrictRoot {
		parseOpts = append(parseOpts, xmlparse.WithSingleRoot())
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range workCh {
				outCh <- parseFile(ctx, path, parseOpts)
			}
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

// parseFile reads and parses one file, counting its tags.
func parseFile(ctx context.Context, path string, parseOpts []xmlparse.Option) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	root, err := xmldom.Parse(content, parseOpts...)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	_ = xmldom.WalkTags(root, func(*xmldom.Entity) error {
		outcome.Tags++
		return nil
	})
	return outcome
}
