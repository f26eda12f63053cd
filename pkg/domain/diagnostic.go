package domain

import "fmt"

// Diagnostic records one style violation. Line is 1-based; zero means
// the diagnostic applies to the file as a whole.
type Diagnostic struct {
	// Path is the path of the offending file.
	Path string `json:"path"`
	// Line is the 1-based line number, or 0 for whole-file diagnostics.
	Line int `json:"line,omitempty"`
	// Rule is the identifier of the rule that fired.
	Rule string `json:"rule"`
	// Message is the human-readable description of the violation.
	Message string `json:"message"`
}

// String formats the diagnostic as "path:line: message", dropping the
// line for whole-file diagnostics.
func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", d.Path, d.Line, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Path, d.Message)
}

// Report collects the diagnostics for a single file.
type Report struct {
	// Path is the checked file path.
	Path string `json:"path"`
	// Kind is the file's resolved kind.
	Kind FileKind `json:"kind"`
	// Diagnostics contains one entry per violation, in rule order.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Count returns the number of violations in this file.
func (r *Report) Count() int {
	return len(r.Diagnostics)
}

// Summary aggregates violation counts across a run.
type Summary struct {
	// Files is the number of files checked.
	Files int `json:"files"`
	// Violations is the total violation count over all files.
	Violations int `json:"violations"`
}

// Add folds one file report into the summary.
func (s *Summary) Add(r *Report) {
	s.Files++
	s.Violations += r.Count()
}

// OK reports whether the run found no violations.
func (s Summary) OK() bool {
	return s.Violations == 0
}
