package generator

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titleCaser = cases.Title(language.Und, cases.NoLower)
	lowerCaser = cases.Lower(language.Und)
	upperCaser = cases.Upper(language.Und)
)

// UpperFirst upper-cases the first letter of s and keeps the rest.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return titleCaser.String(string(r[0])) + string(r[1:])
}

// LowerFirst lower-cases the first letter of s and keeps the rest.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// words splits an identifier on underscores and case changes.
// "parseHTTPRequest" yields parse, HTTP, Request.
func words(s string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' || r == ' ' }) {
		r := []rune(part)
		start := 0
		for i := 1; i < len(r); i++ {
			prev, cur := r[i-1], r[i]
			var next rune
			if i+1 < len(r) {
				next = r[i+1]
			}
			lowerToUpper := unicode.IsLower(prev) && unicode.IsUpper(cur)
			acronymEnd := unicode.IsUpper(prev) && unicode.IsUpper(cur) && unicode.IsLower(next)
			digitEdge := unicode.IsDigit(prev) != unicode.IsDigit(cur) && unicode.IsLetter(cur) && !unicode.IsLetter(prev)
			if lowerToUpper || acronymEnd || digitEdge {
				out = append(out, string(r[start:i]))
				start = i
			}
		}
		out = append(out, string(r[start:]))
	}
	return out
}

// SnakeCase converts an identifier to snake_case.
func SnakeCase(s string) string {
	return lowerCaser.String(strings.Join(words(s), "_"))
}

// ScreamingSnakeCase converts an identifier to SCREAMING_SNAKE_CASE.
func ScreamingSnakeCase(s string) string {
	return upperCaser.String(strings.Join(words(s), "_"))
}

// PascalCase converts an identifier to PascalCase. Words that are entirely
// upper case, such as enum constants, are title-cased.
func PascalCase(s string) string {
	var sb strings.Builder
	for _, w := range words(s) {
		if isUpperWord(w) {
			w = lowerCaser.String(w)
		}
		sb.WriteString(UpperFirst(w))
	}
	return sb.String()
}

func isUpperWord(w string) bool {
	hasLetter := false
	for _, r := range w {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter && len([]rune(w)) > 1
}
