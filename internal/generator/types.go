package generator

import (
	"strings"

	"github.com/calumari/pumlgen/internal/model"
)

// TypeMap renders diagram types in a target language.
type TypeMap struct {
	// Names maps lower-cased diagram type names to target names. Names not
	// found are kept verbatim.
	Names map[string]string
	// Containers renders known generic types from their rendered arguments,
	// keyed by lower-cased base name.
	Containers map[string]func(args []string) string
	// Generic renders a user generic type. When nil the arguments of
	// unknown generic types are erased and only the base name remains.
	Generic func(name string, args []string) string
	// Array wraps an element type in one array dimension.
	Array func(elem string) string
	// Unknown is rendered for a missing type.
	Unknown string
}

// Render returns the target spelling of t.
func (m TypeMap) Render(t model.TypeRef) string {
	if t.IsZero() {
		return m.Unknown
	}
	if t.IsArray() {
		elem := m.Render(t.Elem())
		if m.Array == nil {
			return elem + "[]"
		}
		return m.Array(elem)
	}
	if !t.IsGeneric() {
		return m.Name(t.Name)
	}
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = m.Render(a)
	}
	if r, ok := m.Containers[t.Key()]; ok {
		return r(args)
	}
	if m.Generic == nil {
		return m.Name(t.Name)
	}
	return m.Generic(m.Name(t.Name), args)
}

// Name maps a bare type name.
func (m TypeMap) Name(name string) string {
	if name == "" {
		return m.Unknown
	}
	if mapped, ok := m.Names[strings.ToLower(name)]; ok {
		return mapped
	}
	return name
}

// Angle renders name<args...>.
func Angle(name string, args []string) string {
	return name + "<" + strings.Join(args, ", ") + ">"
}

// Square renders name[args...].
func Square(name string, args []string) string {
	return name + "[" + strings.Join(args, ", ") + "]"
}

// Arg returns args[i] or fallback when the diagram gave fewer arguments.
func Arg(args []string, i int, fallback string) string {
	if i < len(args) {
		return args[i]
	}
	return fallback
}

// Kind classifies a type for default values.
type Kind int

const (
	KindOther Kind = iota
	KindVoid
	KindBool
	KindInteger
	KindFloat
	KindChar
	KindString
)

var kinds = map[string]Kind{
	"void":      KindVoid,
	"unit":      KindVoid,
	"boolean":   KindBool,
	"bool":      KindBool,
	"int":       KindInteger,
	"integer":   KindInteger,
	"long":      KindInteger,
	"short":     KindInteger,
	"byte":      KindInteger,
	"int8":      KindInteger,
	"int16":     KindInteger,
	"int32":     KindInteger,
	"int64":     KindInteger,
	"uint":      KindInteger,
	"uint8":     KindInteger,
	"uint16":    KindInteger,
	"uint32":    KindInteger,
	"uint64":    KindInteger,
	"float":     KindFloat,
	"double":    KindFloat,
	"decimal":   KindFloat,
	"number":    KindFloat,
	"float32":   KindFloat,
	"float64":   KindFloat,
	"char":      KindChar,
	"character": KindChar,
	"rune":      KindChar,
	"string":    KindString,
	"str":       KindString,
	"text":      KindString,
}

// KindOf classifies t. Arrays and generic types are always KindOther.
func KindOf(t model.TypeRef) Kind {
	if t.IsArray() || t.IsGeneric() {
		return KindOther
	}
	return kinds[t.Key()]
}
