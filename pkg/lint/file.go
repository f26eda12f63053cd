// Package lint implements the house-style rule engine: filename
// conventions, kind-gated line rules, whole-file rules, and the
// copyright banner check.
//
// Every check is a substring or regex predicate over raw text. The
// engine never tokenizes or parses, so a check can fire on a match
// inside a string literal or a comment; that imprecision is part of
// the rule contract, not a defect to fix here.
package lint

import (
	"path/filepath"
	"strings"

	"github.com/olypsys/stylecheck/pkg/domain"
)

// File is the read-only per-file input to the rule engine. It is built
// once per file and discarded after checking.
type File struct {
	// Path is the file path as given by the caller.
	Path string
	// Base is the path's basename.
	Base string
	// Kind is the file's resolved kind.
	Kind domain.FileKind
	// Content is the complete file content.
	Content string
	// Lines holds the content split into lines, terminators removed.
	Lines []string
}

// NewFile builds the rule-engine view of one file. Lines are split on
// '\n'; a trailing '\r' is stripped from each line so CRLF content
// behaves like LF content, and a final newline does not produce an
// empty trailing line.
func NewFile(path string, kind domain.FileKind, content string) *File {
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return &File{
		Path:    path,
		Base:    filepath.Base(path),
		Kind:    kind,
		Content: content,
		Lines:   lines,
	}
}
