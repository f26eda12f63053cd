package lint

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsUpperCamelCase reports whether s looks like an UpperCamelCase
// name: mixed case, no underscores, leading uppercase. The empty
// string is not CamelCase.
func IsUpperCamelCase(s string) bool {
	if s == "" {
		return false
	}
	if s == strings.ToLower(s) || s == strings.ToUpper(s) {
		return false
	}
	if strings.Contains(s, "_") {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(first)
}

// IsLongSnakeCase reports whether s looks like a lower snake_case
// name. Any name containing an uppercase character fails. Lowercase
// names up to 25 characters always pass; longer ones pass only when
// they contain at least one underscore.
func IsLongSnakeCase(s string) bool {
	if s != strings.ToLower(s) {
		return false
	}
	if len(s) > 25 {
		return strings.Contains(s, "_")
	}
	return true
}
