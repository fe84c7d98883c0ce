package model

import "strings"

// TypeRef is a parsed type expression: either a simple name or a generic
// type with ordered arguments, optionally followed by array dimensions.
// "Map<String, List<Integer>>" becomes
// {Name: "Map", Args: [{Name: "String"}, {Name: "List", Args: [{Name: "Integer"}]}]}.
type TypeRef struct {
	Name string
	Args []TypeRef
	Dims int
}

// ParseType parses a free-form type string. Malformed generic expressions
// (unbalanced brackets) are kept verbatim as a simple name.
func ParseType(s string) TypeRef {
	s = strings.TrimSpace(s)
	dims := 0
	for strings.HasSuffix(s, "[]") {
		dims++
		s = strings.TrimSpace(strings.TrimSuffix(s, "[]"))
	}
	open := strings.IndexByte(s, '<')
	if open <= 0 || !strings.HasSuffix(s, ">") {
		return TypeRef{Name: s, Dims: dims}
	}
	inner := s[open+1 : len(s)-1]
	if !balanced(inner) {
		return TypeRef{Name: s, Dims: dims}
	}
	t := TypeRef{Name: strings.TrimSpace(s[:open]), Dims: dims}
	for _, part := range SplitTopLevel(inner, ',') {
		if part = strings.TrimSpace(part); part != "" {
			t.Args = append(t.Args, ParseType(part))
		}
	}
	return t
}

// SplitTopLevel splits s on sep, ignoring separators nested inside angle,
// round or square brackets.
func SplitTopLevel(s string, sep rune) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + len(string(sep))
			}
		}
	}
	return append(parts, s[start:])
}

func balanced(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// String renders the canonical spelling, e.g. "Map<String, List<Integer>>".
func (t TypeRef) String() string {
	var sb strings.Builder
	sb.WriteString(t.Name)
	if len(t.Args) > 0 {
		sb.WriteByte('<')
		for i, a := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.String())
		}
		sb.WriteByte('>')
	}
	for i := 0; i < t.Dims; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

// IsZero reports whether no type was given.
func (t TypeRef) IsZero() bool { return t.Name == "" && len(t.Args) == 0 && t.Dims == 0 }

// IsGeneric reports whether t carries type arguments.
func (t TypeRef) IsGeneric() bool { return len(t.Args) > 0 }

// IsArray reports whether t has at least one array dimension.
func (t TypeRef) IsArray() bool { return t.Dims > 0 }

// Elem strips one array dimension.
func (t TypeRef) Elem() TypeRef {
	if t.Dims == 0 {
		return t
	}
	e := t
	e.Dims--
	return e
}

// Key is the lower-cased base name, used for case-insensitive mapping.
func (t TypeRef) Key() string { return strings.ToLower(t.Name) }

func (t TypeRef) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *TypeRef) UnmarshalText(b []byte) error {
	*t = ParseType(string(b))
	return nil
}
