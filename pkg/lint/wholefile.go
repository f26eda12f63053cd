package lint

import (
	"strings"

	"github.com/olypsys/stylecheck/pkg/domain"
)

// checkWholeFile runs the rules that inspect the complete content
// rather than individual lines. Empty files are exempt from the
// trailing-newline rule.
func checkWholeFile(f *File) []domain.Diagnostic {
	var diags []domain.Diagnostic

	if len(f.Content) > 0 && f.Content[len(f.Content)-1] != '\n' {
		diags = append(diags, domain.Diagnostic{
			Path:    f.Path,
			Rule:    "File.MissingNewline",
			Message: "No newline at end of file",
		})
	}

	if i := strings.Index(f.Content, "\n\n\n"); i >= 0 {
		// Report the line the first run of blank lines starts on.
		line := strings.Count(f.Content[:i], "\n") + 1
		diags = append(diags, domain.Diagnostic{
			Path:    f.Path,
			Line:    line,
			Rule:    "File.ConsecutiveBlankLines",
			Message: "Three consecutive newlines",
		})
	}

	return diags
}
