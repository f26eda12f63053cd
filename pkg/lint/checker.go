package lint

import (
	"fmt"
	"time"

	"github.com/olypsys/stylecheck/pkg/domain"
)

// DefaultMaxLineLength is the line length enforced when the
// line-length rule is enabled and no other limit is configured.
const DefaultMaxLineLength = 100

// Checker runs the full rule battery over single files. It holds no
// per-file state and is safe for concurrent use.
type Checker struct {
	rules []LineRule
	year  int
}

type options struct {
	maxLineLength   int
	lineLengthCheck bool
	year            int
}

// Option is a functional option for configuring a Checker.
type Option func(*options)

// WithMaxLineLength sets the limit enforced by the line-length rule.
// Non-positive values are ignored.
func WithMaxLineLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLineLength = n
		}
	}
}

// WithLineLengthCheck enables or disables the line-length rule.
// Disabled by default.
func WithLineLengthCheck(enabled bool) Option {
	return func(o *options) {
		o.lineLengthCheck = enabled
	}
}

// WithYear pins the calendar year expected in copyright banners.
// Defaults to the current year.
func WithYear(year int) Option {
	return func(o *options) {
		if year > 0 {
			o.year = year
		}
	}
}

// NewChecker creates a checker with the given options.
func NewChecker(opts ...Option) *Checker {
	o := options{
		maxLineLength: DefaultMaxLineLength,
		year:          time.Now().Year(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	rules := lineRules
	if o.lineLengthCheck {
		limit := o.maxLineLength
		tooLong := LineRule{
			ID:      "Line.TooLong",
			Message: fmt.Sprintf("Line length >%d", limit),
			Match:   func(line string) bool { return len(line) > limit },
		}
		rules = append([]LineRule{tooLong}, lineRules...)
	}

	return &Checker{rules: rules, year: o.year}
}

// CheckFile runs the filename, line, whole-file and banner rules over
// one file and returns its report. It never fails on readable content
// of a supported kind: every rule is a pure predicate, so the
// violation count is always computable.
func (c *Checker) CheckFile(path string, kind domain.FileKind, content string) *domain.Report {
	f := NewFile(path, kind, content)

	report := &domain.Report{Path: path, Kind: kind}
	report.Diagnostics = append(report.Diagnostics, checkFileName(f)...)
	report.Diagnostics = append(report.Diagnostics, c.checkLines(f)...)
	report.Diagnostics = append(report.Diagnostics, checkWholeFile(f)...)
	report.Diagnostics = append(report.Diagnostics, c.checkBanner(f)...)
	return report
}
