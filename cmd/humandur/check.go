package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kwendell/humandur"
	"golang.org/x/sync/semaphore"
)

// checkFiles parses every line of every file matched by the glob patterns,
// with bounded parallelism across files. Per-line failures are reported as
// warnings; any failure makes the run fail.
func checkFiles(ctx context.Context, out *Output, patterns []string, jobs int, format formatMode) error {
	var paths []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return fmt.Errorf("invalid file pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			out.Warningf("%s: no files matched", pattern)
			continue
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	if len(paths) == 0 {
		return fmt.Errorf("no input files")
	}

	var wg sync.WaitGroup
	var failures atomic.Int64
	sem := semaphore.NewWeighted(int64(jobs))

	for _, path := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return err
		}

		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer sem.Release(1)

			n, err := checkFile(out, path, format)
			failures.Add(n)
			if err != nil {
				failures.Add(1)
				out.Warningf("%s: %v", path, err)
			}
		}(path)
	}
	wg.Wait()

	if n := failures.Load(); n > 0 {
		return fmt.Errorf("%d inputs could not be parsed", n)
	}
	return nil
}

// checkFile parses each non-empty, non-comment line of one file and
// returns how many lines failed.
func checkFile(out *Output, path string, format formatMode) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var failures int64
	lineno := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		d, err := humandur.Parse(line)
		if err != nil {
			failures++
			out.Warningf("%s:%d: %v", path, lineno, err)
			continue
		}
		out.Result(fmt.Sprintf("%s:%d", path, lineno), formatDuration(d, format))
	}
	if err := scanner.Err(); err != nil {
		return failures, err
	}
	return failures, nil
}
