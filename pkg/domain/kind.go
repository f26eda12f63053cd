// Package domain defines the core types for style diagnostics.
package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// FileKind represents a supported source file kind.
type FileKind string

// Supported file kinds for style checking.
const (
	KindCSource FileKind = "c-source"
	KindCHeader FileKind = "c-header"
	KindJava    FileKind = "java"
	KindKotlin  FileKind = "kotlin"
	KindXml     FileKind = "xml"
	KindSwift   FileKind = "swift"
)

// ErrUnsupportedKind is returned when a path's extension maps to no FileKind.
var ErrUnsupportedKind = errors.New("domain: unsupported file kind")

// KindForPath resolves a path to its FileKind by case-insensitive
// extension match. An unrecognized extension is an error, never a
// silent default: such paths must not reach the rule engine.
func KindForPath(path string) (FileKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cpp", ".cxx":
		return KindCSource, nil
	case ".hpp":
		return KindCHeader, nil
	case ".java":
		return KindJava, nil
	case ".kt", ".kts":
		return KindKotlin, nil
	case ".xml":
		return KindXml, nil
	case ".swift":
		return KindSwift, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedKind, path)
}

// KindSet is a bitmask of FileKinds used to gate rules. The zero value
// is treated as the universal set by Has, so ungated rules need no
// explicit mask.
type KindSet uint8

// NewKindSet builds a KindSet containing exactly the given kinds.
func NewKindSet(kinds ...FileKind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s |= kindBit(k)
	}
	return s
}

// Has reports whether k belongs to the set. The empty set contains
// every kind.
func (s KindSet) Has(k FileKind) bool {
	if s == 0 {
		return true
	}
	return s&kindBit(k) != 0
}

func kindBit(k FileKind) KindSet {
	switch k {
	case KindCSource:
		return 1 << 0
	case KindCHeader:
		return 1 << 1
	case KindJava:
		return 1 << 2
	case KindKotlin:
		return 1 << 3
	case KindXml:
		return 1 << 4
	case KindSwift:
		return 1 << 5
	}
	return 0
}
