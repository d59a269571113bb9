// Package naming provides the pure string-case converters every emitter
// uses to turn JSON keys into target-language identifiers. All functions
// are total and ASCII-oriented; no locale-dependent folding.
package naming

import (
	"strings"
	"unicode"
)

// SplitWords segments s into word tokens. Boundaries are inserted between
// a lowercase letter and a following uppercase letter, and between a run of
// uppercase letters and a trailing Upper+lower pair ("XMLParser" yields
// "XML", "Parser"). '-', '_', '.', '/' and '\' are explicit separators,
// and whitespace runs are collapsed. The result may be empty.
func SplitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '-' || r == '_' || r == '.' || r == '/' || r == '\\' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r):
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			prevUpper := i > 0 && unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (prevUpper && nextLower) {
				flush()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return words
}

// ToPascal converts s to PascalCase.
func ToPascal(s string) string {
	var b strings.Builder
	for _, word := range SplitWords(s) {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// ToCamel converts s to camelCase.
func ToCamel(s string) string {
	words := SplitWords(s)
	var b strings.Builder
	for i, word := range words {
		if i == 0 {
			b.WriteString(strings.ToLower(word))
			continue
		}
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// ToSnake converts s to snake_case.
func ToSnake(s string) string {
	return joinLower(s, '_')
}

// ToKebab converts s to kebab-case.
func ToKebab(s string) string {
	return joinLower(s, '-')
}

func joinLower(s string, sep rune) string {
	words := SplitWords(s)
	var b strings.Builder
	for i, word := range words {
		if i > 0 {
			b.WriteRune(sep)
		}
		b.WriteString(strings.ToLower(word))
	}
	return b.String()
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	runes := []rune(word)
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}
