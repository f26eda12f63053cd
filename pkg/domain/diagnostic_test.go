package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticString(t *testing.T) {
	withLine := Diagnostic{Path: "src/Engine.cpp", Line: 12, Rule: "Line.Tab", Message: "Tab found"}
	assert.Equal(t, "src/Engine.cpp:12: Tab found", withLine.String())

	wholeFile := Diagnostic{Path: "src/Engine.cpp", Rule: "Header.Invalid", Message: "Invalid copyright header"}
	assert.Equal(t, "src/Engine.cpp: Invalid copyright header", wholeFile.String())
}

func TestSummaryAdd(t *testing.T) {
	var s Summary
	assert.True(t, s.OK())

	clean := &Report{Path: "A.kt", Kind: KindKotlin}
	dirty := &Report{Path: "B.kt", Kind: KindKotlin, Diagnostics: []Diagnostic{
		{Path: "B.kt", Line: 1, Rule: "Line.Tab", Message: "Tab found"},
		{Path: "B.kt", Rule: "Header.Invalid", Message: "Invalid copyright header"},
	}}

	s.Add(clean)
	s.Add(dirty)

	assert.Equal(t, 2, s.Files)
	assert.Equal(t, 2, s.Violations)
	assert.Equal(t, 0, clean.Count())
	assert.Equal(t, 2, dirty.Count())
	assert.False(t, s.OK())
}
