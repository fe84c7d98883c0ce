package generator

import (
	"regexp"
	"strings"
)

// Section is a run of members rendered together inside a block.
type Section struct {
	Items  []string
	Spaced bool // separate items with a blank line
}

// Block renders open, the non-empty sections indented one level, and
// close. Sections are separated by a blank line. An empty close is omitted.
func Block(open, close string, size int, sections ...Section) string {
	var parts []string
	for _, s := range sections {
		var items []string
		for _, it := range s.Items {
			if it != "" {
				items = append(items, it)
			}
		}
		if len(items) == 0 {
			continue
		}
		sep := "\n"
		if s.Spaced {
			sep = "\n\n"
		}
		parts = append(parts, strings.Join(items, sep))
	}
	var sb strings.Builder
	sb.WriteString(open)
	if len(parts) > 0 {
		sb.WriteByte('\n')
		sb.WriteString(Indent(strings.Join(parts, "\n\n"), 1, size))
	}
	if close != "" {
		sb.WriteByte('\n')
		sb.WriteString(close)
	}
	return sb.String()
}

var nonIdent = regexp.MustCompile(`[^\w]+`)

// Identifier replaces every run of characters that cannot appear in an
// identifier with an underscore. keep lists extra characters to retain,
// such as "." for dotted namespaces.
func Identifier(s, keep string) string {
	var sb strings.Builder
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return strings.ContainsRune(keep, r) }) {
		if sb.Len() > 0 {
			sb.WriteByte(keep[0])
		}
		sb.WriteString(strings.Trim(nonIdent.ReplaceAllString(part, "_"), "_"))
	}
	if sb.Len() == 0 {
		return strings.Trim(nonIdent.ReplaceAllString(s, "_"), "_")
	}
	return sb.String()
}
