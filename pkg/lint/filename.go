package lint

import (
	"strings"

	"github.com/olypsys/stylecheck/pkg/domain"
)

// entryPointBase is the only basename exempt from the CamelCase rule.
const entryPointBase = "main.cpp"

// checkFileName applies the filename conventions to the file's
// basename. Both rules are evaluated independently, so a single name
// can produce two diagnostics.
func checkFileName(f *File) []domain.Diagnostic {
	var diags []domain.Diagnostic
	if f.Base != entryPointBase && !IsUpperCamelCase(f.Base) {
		diags = append(diags, domain.Diagnostic{
			Path:    f.Path,
			Rule:    "FileName.NotCamelCase",
			Message: "File name should be CamelCase",
		})
	}
	if strings.ContainsAny(f.Base, " _-") {
		diags = append(diags, domain.Diagnostic{
			Path:    f.Path,
			Rule:    "FileName.ForbiddenCharacter",
			Message: "File name should not contain spaces, underscores or dashes",
		})
	}
	return diags
}
