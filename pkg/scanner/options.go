package scanner

import "github.com/olypsys/stylecheck/pkg/lint"

const (
	// DefaultWorkers checks files strictly one at a time.
	DefaultWorkers = 1
	// MaxWorkers is the maximum number of concurrent workers allowed.
	MaxWorkers = 256
	// DefaultMaxFileSize is the default maximum file size for checking (10MB).
	DefaultMaxFileSize = 10 * 1024 * 1024
)

// DefaultSkipDirs contains directory basenames that are skipped by
// default during file discovery.
var DefaultSkipDirs = []string{
	".git",
	".gradle",
	"DerivedData",
	"build",
	"node_modules",
	"vendor",
}

// Options configures a Scanner.
type Options struct {
	// Checker runs the rule battery. Nil uses lint.NewChecker().
	Checker *lint.Checker

	// Workers is the number of files checked concurrently. Per-file
	// checks are pure, so violation totals are identical at any worker
	// count; the default of 1 keeps the run strictly sequential.
	Workers int

	// MaxFileSize is the maximum file size in bytes to check. Larger
	// files are skipped.
	MaxFileSize int64

	// IncludePatterns are doublestar glob patterns, relative to the
	// scan root, that candidate files must match. Empty means every
	// supported file is a candidate.
	IncludePatterns []string

	// ExcludeDirs are directory basenames to skip during discovery,
	// combined with DefaultSkipDirs.
	ExcludeDirs []string

	// CPathFilters restricts C++ source and header candidates to paths
	// containing at least one of the given substrings. Empty means no
	// restriction.
	CPathFilters []string

	// SwiftPathFilters restricts Swift candidates the same way.
	SwiftPathFilters []string
}

// ScanOption is a functional option for configuring Scanner.
type ScanOption func(*Options)

// WithChecker sets the checker used for every file.
func WithChecker(c *lint.Checker) ScanOption {
	return func(o *Options) {
		o.Checker = c
	}
}

// WithWorkers sets the number of files checked concurrently.
// Non-positive values are ignored.
func WithWorkers(n int) ScanOption {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithMaxFileSize sets the maximum file size to check.
func WithMaxFileSize(size int64) ScanOption {
	return func(o *Options) {
		if size > 0 {
			o.MaxFileSize = size
		}
	}
}

// WithIncludePatterns sets glob patterns candidate files must match.
func WithIncludePatterns(patterns []string) ScanOption {
	return func(o *Options) {
		o.IncludePatterns = patterns
	}
}

// WithExcludeDirs adds directory basenames to skip during discovery.
func WithExcludeDirs(dirs []string) ScanOption {
	return func(o *Options) {
		o.ExcludeDirs = dirs
	}
}

// WithCPathFilters sets the path-substring filters for C++ files.
func WithCPathFilters(filters []string) ScanOption {
	return func(o *Options) {
		o.CPathFilters = filters
	}
}

// WithSwiftPathFilters sets the path-substring filters for Swift files.
func WithSwiftPathFilters(filters []string) ScanOption {
	return func(o *Options) {
		o.SwiftPathFilters = filters
	}
}

func applyDefaults(opts *Options) {
	if opts.Checker == nil {
		opts.Checker = lint.NewChecker()
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.Workers > MaxWorkers {
		opts.Workers = MaxWorkers
	}
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}
}
