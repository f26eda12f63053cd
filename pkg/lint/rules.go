package lint

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/olypsys/stylecheck/pkg/domain"
)

// LineRule is one line-level check. Kinds gates the rule; the zero
// KindSet applies it to every file kind. Match is a pure predicate
// over the terminator-stripped line text.
type LineRule struct {
	// ID uniquely identifies the rule.
	ID string
	// Kinds is the set of file kinds the rule applies to.
	Kinds domain.KindSet
	// Message is the diagnostic text emitted when the rule fires.
	Message string
	// Match reports whether the line violates the rule.
	Match func(line string) bool
}

// Rule gate sets.
var (
	kindsC   = domain.NewKindSet(domain.KindCSource, domain.KindCHeader)
	kindsJK  = domain.NewKindSet(domain.KindJava, domain.KindKotlin)
	kindsKS  = domain.NewKindSet(domain.KindKotlin, domain.KindSwift)
	kindsJKS = domain.NewKindSet(domain.KindJava, domain.KindKotlin, domain.KindSwift)
	kindsK   = domain.NewKindSet(domain.KindKotlin)
)

var braceAfterAlnum = regexp.MustCompile(`[A-Za-z0-9]\{`)

// lineRules is the rule catalog. The order is fixed so diagnostics for
// one line always come out the same way; every applicable rule is
// evaluated for every line, with no short-circuiting.
//
// The m_-prefix and brace-attachment checks can fire on matches inside
// string literals or comments, since no tokenizer is involved.
var lineRules = []LineRule{
	{
		ID:      "Line.Tab",
		Message: "Tab found",
		Match:   contains("\t"),
	},
	{
		ID:      "Line.TrailingWhitespace",
		Message: "Trailing whitespace found",
		Match:   hasSuffix(" "),
	},
	{
		ID:      "Naming.MemberUppercase",
		Message: "m_ followed by uppercase letter",
		Match:   memberPrefixUpper,
	},
	{
		ID:      "Brace.Namespace",
		Message: "Namespace with brace on the same line",
		Match:   containsBoth("namespace ", "{"),
	},
	{
		ID:      "Semicolon.Namespace",
		Message: "Extra semicolon after namespace brace",
		Match:   contains("}; // namespace"),
	},
	{
		ID:      "Whitespace.BeforeSemicolon",
		Message: "Extra space before semicolon",
		Match:   contains(" ;"),
	},
	{
		ID:      "Brace.Struct",
		Kinds:   kindsC,
		Message: "Struct with brace on the same line",
		Match:   containsBoth("struct ", "{"),
	},
	{
		ID:      "Brace.Class",
		Kinds:   kindsC,
		Message: "Class with brace on the same line",
		Match:   containsBoth("class ", "{"),
	},
	{
		ID:      "Brace.EnumClass",
		Kinds:   kindsC,
		Message: "Enum class with brace on the same line",
		Match:   containsBoth("enum class ", "{"),
	},
	{
		ID:      "Brace.ElseSameLine",
		Message: "}else, should be newline",
		Match:   contains("}else"),
	},
	{
		ID:      "Import.Commented",
		Kinds:   kindsJK,
		Message: "Commented import",
		Match:   commentedImport,
	},
	{
		ID:      "Semicolon.LineEnd",
		Kinds:   kindsKS,
		Message: "Line ends with ;",
		Match:   hasSuffix(";"),
	},
	{
		ID:      "Whitespace.FuncKeyword",
		Kinds:   kindsK,
		Message: "Extra space in function declaration",
		Match:   contains("func  "),
	},
	{
		ID:      "Whitespace.IfKeyword",
		Kinds:   kindsK,
		Message: "Extra space in if statement",
		Match:   contains("if  "),
	},
	{
		ID:      "Whitespace.ThrowKeyword",
		Kinds:   kindsK,
		Message: "Extra space in throw statement",
		Match:   contains("throw  "),
	},
	{
		ID:      "Whitespace.LetKeyword",
		Kinds:   kindsK,
		Message: "Extra space in let statement",
		Match:   contains("let  "),
	},
	{
		ID:      "Brace.ElseOpen",
		Message: "else{, should be newline",
		Match:   contains("else{"),
	},
	{
		ID:      "Whitespace.If",
		Message: "if( should be if (",
		Match:   contains(" if("),
	},
	{
		ID:      "Whitespace.For",
		Message: "for( should be for (",
		Match:   contains(" for("),
	},
	{
		ID:      "Whitespace.While",
		Message: "while( should be while (",
		Match:   contains(" while("),
	},
	{
		ID:      "Whitespace.Switch",
		Message: "switch( should be switch (",
		Match:   contains(" switch("),
	},
	{
		ID:      "Brace.ParenNewline",
		Kinds:   kindsC,
		Message: ") { should be broken with newline",
		Match:   containsAny(") {", "){"),
	},
	{
		ID:      "Brace.ParenAttached",
		Kinds:   kindsJK,
		Message: "){ should be broken with space",
		Match:   contains("){"),
	},
	{
		ID:      "Brace.ParenDoubleSpace",
		Kinds:   kindsJK,
		Message: ")  { should be broken with a single space",
		Match:   contains(")  {"),
	},
	{
		ID:      "Brace.LetDoubleSpace",
		Kinds:   kindsJK,
		Message: "let { should be broken with a single space",
		Match:   contains("let  {"),
	},
	{
		ID:      "Brace.CharacterAttached",
		Kinds:   kindsJKS,
		Message: "Character followed by a brace",
		Match:   braceAfterAlnum.MatchString,
	},
}

func contains(sub string) func(string) bool {
	return func(line string) bool { return strings.Contains(line, sub) }
}

func containsAny(subs ...string) func(string) bool {
	return func(line string) bool {
		for _, sub := range subs {
			if strings.Contains(line, sub) {
				return true
			}
		}
		return false
	}
}

func containsBoth(a, b string) func(string) bool {
	return func(line string) bool {
		return strings.Contains(line, a) && strings.Contains(line, b)
	}
}

func hasSuffix(suffix string) func(string) bool {
	return func(line string) bool { return strings.HasSuffix(line, suffix) }
}

// memberPrefixUpper reports whether the first occurrence of "m_" is
// immediately followed by an uppercase letter. A line ending exactly
// in "m_" matches nothing.
func memberPrefixUpper(line string) bool {
	i := strings.Index(line, "m_")
	if i < 0 {
		return false
	}
	rest := line[i+2:]
	if rest == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsUpper(r)
}

// commentedImport reports a commented-out import statement at the
// start of the trimmed line.
func commentedImport(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "//import") || strings.HasPrefix(t, "// import")
}

// checkLines runs every applicable line rule over every 1-indexed line.
func (c *Checker) checkLines(f *File) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for i, line := range f.Lines {
		for _, rule := range c.rules {
			if !rule.Kinds.Has(f.Kind) {
				continue
			}
			if rule.Match(line) {
				diags = append(diags, domain.Diagnostic{
					Path:    f.Path,
					Line:    i + 1,
					Rule:    rule.ID,
					Message: rule.Message,
				})
			}
		}
	}
	return diags
}
