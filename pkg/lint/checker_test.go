package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olypsys/stylecheck/pkg/domain"
)

const testYear = 2030

// conformantHeader builds a C++ header that passes every rule.
func conformantHeader(base string) string {
	return ExpectedBanner(domain.KindCHeader, base, testYear) +
		" The audio engine.\n\nclass AudioEngine;\n"
}

func TestCheckFileConformant(t *testing.T) {
	c := NewChecker(WithYear(testYear))

	report := c.CheckFile("include/AudioEngine.hpp", domain.KindCHeader, conformantHeader("AudioEngine.hpp"))

	assert.Equal(t, 0, report.Count())
	assert.Equal(t, "include/AudioEngine.hpp", report.Path)
	assert.Equal(t, domain.KindCHeader, report.Kind)
}

func TestCheckFileAggregatesAllRuleFamilies(t *testing.T) {
	c := NewChecker(WithYear(testYear))

	// Bad filename, a line violation, a whole-file violation and a
	// missing banner, all in one file.
	content := "package app\n\nfun main() {\n    val x = 1;\n}"
	report := c.CheckFile("app/my_controller.kt", domain.KindKotlin, content)

	assert.Equal(t, []string{
		"FileName.NotCamelCase",
		"FileName.ForbiddenCharacter",
		"Semicolon.LineEnd",
		"File.MissingNewline",
		"Header.Invalid",
	}, reportRules(report))

	semicolon := report.Diagnostics[2]
	assert.Equal(t, 4, semicolon.Line)
}

func TestCheckFileKotlinVsCppSemicolon(t *testing.T) {
	c := NewChecker(WithYear(testYear))
	line := "val x = 1;\n"

	kotlin := c.CheckFile("Sample.kt", domain.KindKotlin, line)
	assert.Contains(t, reportRules(kotlin), "Semicolon.LineEnd")

	cpp := c.CheckFile("Sample.cpp", domain.KindCSource, line)
	assert.NotContains(t, reportRules(cpp), "Semicolon.LineEnd")
}

func TestCheckFileIdempotent(t *testing.T) {
	c := NewChecker(WithYear(testYear))
	content := "package app\n\n//import legacy\nfun main() {\n    val x = 1;\n}\n"

	first := c.CheckFile("App.kt", domain.KindKotlin, content)
	second := c.CheckFile("App.kt", domain.KindKotlin, content)

	require.Equal(t, first.Count(), second.Count())
	assert.Equal(t, first.Diagnostics, second.Diagnostics)
}

func TestCheckFileEmptyContent(t *testing.T) {
	c := NewChecker(WithYear(testYear))

	report := c.CheckFile("res/Empty.xml", domain.KindXml, "")

	// Empty content is exempt from the trailing-newline rule, Xml has
	// no banner, and there are no lines to check.
	assert.Equal(t, 0, report.Count())
}

func reportRules(r *domain.Report) []string {
	var rules []string
	for _, d := range r.Diagnostics {
		rules = append(rules, d.Rule)
	}
	return rules
}
