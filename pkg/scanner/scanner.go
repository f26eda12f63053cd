// Package scanner discovers supported source files under a root
// directory and drives the style checker over each of them.
package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/olypsys/stylecheck/pkg/domain"
	"github.com/olypsys/stylecheck/pkg/lint"
)

// Scanner walks a directory tree, classifies candidate files and runs
// the checker over each of them. Files are independent; no state is
// shared between them beyond the running totals.
type Scanner struct {
	checker *lint.Checker
	options *Options
}

// ScanResult contains the outcome of a scan operation.
type ScanResult struct {
	// Reports contains one report per checked file, sorted by path.
	Reports []domain.Report

	// Summary holds the run-wide file and violation totals.
	Summary domain.Summary

	// Stats provides scan statistics.
	Stats ScanStats
}

// ScanStats provides statistics about the scan operation.
type ScanStats struct {
	// FilesDiscovered is the number of candidate files found.
	FilesDiscovered int

	// FilesChecked is the number of files actually checked.
	FilesChecked int

	// FilesSkipped is the number of candidates skipped (size cap).
	FilesSkipped int

	// Duration is the total scan duration.
	Duration time.Duration
}

type candidate struct {
	path string
	kind domain.FileKind
}

// New creates a scanner with the given options.
func New(opts ...ScanOption) *Scanner {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	applyDefaults(options)

	return &Scanner{
		checker: options.Checker,
		options: options,
	}
}

// Scan discovers and checks every supported file under root. Unlike
// violations, I/O failures are fatal: the first unreadable directory
// or file aborts the scan with an error.
func (s *Scanner) Scan(ctx context.Context, root string) (*ScanResult, error) {
	start := time.Now()

	result := &ScanResult{Reports: []domain.Report{}}

	candidates, skipped, err := s.discover(ctx, root)
	if err != nil {
		return nil, err
	}
	result.Stats.FilesDiscovered = len(candidates) + skipped
	result.Stats.FilesSkipped = skipped

	reports, err := s.checkAll(ctx, candidates)
	if err != nil {
		return nil, err
	}
	result.Reports = reports
	result.Stats.FilesChecked = len(reports)

	for i := range reports {
		result.Summary.Add(&reports[i])
	}
	result.Stats.Duration = time.Since(start)

	return result, nil
}

// ScanFile checks one explicit file, bypassing discovery. The path
// must resolve to a supported kind; an unrecognized extension or an
// unreadable file is an error, not a violation.
func (s *Scanner) ScanFile(ctx context.Context, path string) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind, err := domain.KindForPath(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return s.checker.CheckFile(path, kind, string(content)), nil
}

// discover walks the root and collects candidate files in walk order.
func (s *Scanner) discover(ctx context.Context, root string) ([]candidate, int, error) {
	skipSet := buildSkipSet(append(append([]string{}, DefaultSkipDirs...), s.options.ExcludeDirs...))

	var (
		candidates []candidate
		skipped    int
	)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			if path != root && skipSet[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		kind, err := domain.KindForPath(path)
		if err != nil {
			// Not a supported source file.
			return nil
		}

		if !s.pathFilterOK(path, kind) {
			return nil
		}

		if len(s.options.IncludePatterns) > 0 && !matchesAnyPattern(path, root, s.options.IncludePatterns) {
			return nil
		}

		if s.options.MaxFileSize > 0 {
			info, err := d.Info()
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}
			if info.Size() > s.options.MaxFileSize {
				skipped++
				return nil
			}
		}

		candidates = append(candidates, candidate{path: path, kind: kind})
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return candidates, skipped, nil
}

// checkAll reads and checks every candidate. The pool size comes from
// Options.Workers; reports are sorted by path afterwards so output
// order never depends on scheduling.
func (s *Scanner) checkAll(ctx context.Context, files []candidate) ([]domain.Report, error) {
	sem := semaphore.NewWeighted(int64(s.options.Workers))
	g, gCtx := errgroup.WithContext(ctx)

	var (
		mu      sync.Mutex
		reports = make([]domain.Report, 0, len(files))
	)

	for _, file := range files {
		g.Go(func() error {
			if err := sem.Acquire(gCtx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			content, err := os.ReadFile(file.path)
			if err != nil {
				return fmt.Errorf("read %s: %w", file.path, err)
			}

			report := s.checker.CheckFile(file.path, file.kind, string(content))

			mu.Lock()
			reports = append(reports, *report)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Path < reports[j].Path
	})

	return reports, nil
}

// pathFilterOK applies the per-group path-substring filters. An empty
// filter list for a group accepts every path in that group.
func (s *Scanner) pathFilterOK(path string, kind domain.FileKind) bool {
	var filters []string
	switch kind {
	case domain.KindCSource, domain.KindCHeader:
		filters = s.options.CPathFilters
	case domain.KindSwift:
		filters = s.options.SwiftPathFilters
	}
	if len(filters) == 0 {
		return true
	}

	normalized := filepath.ToSlash(path)
	for _, f := range filters {
		if strings.Contains(normalized, f) {
			return true
		}
	}
	return false
}

func matchesAnyPattern(path, root string, patterns []string) bool {
	relPath, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

func buildSkipSet(names []string) map[string]bool {
	skipSet := make(map[string]bool, len(names))
	for _, n := range names {
		skipSet[n] = true
	}
	return skipSet
}
