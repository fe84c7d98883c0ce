// Package kotlin renders diagrams as Kotlin source.
package kotlin

import (
	"fmt"
	"strings"

	"github.com/calumari/pumlgen/internal/generator"
	"github.com/calumari/pumlgen/internal/model"
)

var visibility = map[model.Visibility]string{
	model.Public:         "",
	model.Private:        "private",
	model.Protected:      "protected",
	model.PackagePrivate: "internal",
}

var types = generator.TypeMap{
	Names: map[string]string{
		"string":    "String",
		"str":       "String",
		"text":      "String",
		"object":    "Any",
		"any":       "Any",
		"bool":      "Boolean",
		"boolean":   "Boolean",
		"int":       "Int",
		"integer":   "Int",
		"long":      "Long",
		"short":     "Short",
		"byte":      "Byte",
		"double":    "Double",
		"float":     "Float",
		"decimal":   "java.math.BigDecimal",
		"number":    "Double",
		"char":      "Char",
		"character": "Char",
		"void":      "Unit",
		"date":      "java.time.LocalDate",
		"datetime":  "java.time.LocalDateTime",
	},
	Containers: map[string]func([]string) string{
		"list":     func(a []string) string { return generator.Angle("List", []string{generator.Arg(a, 0, "Any")}) },
		"set":      func(a []string) string { return generator.Angle("Set", []string{generator.Arg(a, 0, "Any")}) },
		"map":      mapOf,
		"dict":     mapOf,
		"optional": func(a []string) string { return generator.Arg(a, 0, "Any") + "?" },
	},
	Generic: generator.Angle,
	Array:   func(elem string) string { return "Array<" + elem + ">" },
	Unknown: "Any",
}

func mapOf(a []string) string {
	return generator.Angle("Map", []string{generator.Arg(a, 0, "Any"), generator.Arg(a, 1, "Any")})
}

// Generator emits Kotlin declarations.
type Generator struct {
	opts generator.Options
}

func New(opts generator.Options) *Generator { return &Generator{opts: opts} }

func (g *Generator) Language() string       { return "kotlin" }
func (g *Generator) FileExtension() string  { return "kt" }
func (g *Generator) IndentSize() int        { return g.opts.Indent(4) }
func (g *Generator) SupportsPackages() bool { return false }

func (g *Generator) PackageStart(string) string { return "" }
func (g *Generator) PackageEnd(string) string   { return "" }

func (g *Generator) Header(*model.Diagram) string { return generator.Banner("//", g.opts) }
func (g *Generator) Footer(*model.Diagram) string { return "" }

func (g *Generator) Class(c *model.Class, d *model.Diagram) string {
	abstract := generator.IsAbstract(c)
	ctors := c.Constructors

	var head []string
	switch {
	case abstract:
		head = append(head, "abstract class")
	case isExtended(c, d):
		head = append(head, "open class")
	default:
		head = append(head, "class")
	}
	name := c.Name + generics(c.Generics)
	if len(ctors) == 0 && !abstract {
		name += "()"
	}
	head = append(head, name)

	var supers []string
	parent := generator.FindParentClass(c, d)
	if parent != nil {
		if len(ctors) == 0 {
			supers = append(supers, parent.Name+"()")
		} else {
			supers = append(supers, parent.Name)
		}
	}
	for _, i := range generator.FindImplementedInterfaces(c, d) {
		supers = append(supers, i.Name)
	}
	decl := strings.Join(head, " ")
	if len(supers) > 0 {
		decl += " : " + strings.Join(supers, ", ")
	}

	var fields, statics, ctorText, methods, staticMethods []string
	for _, a := range c.Attributes {
		if a.IsStatic {
			statics = append(statics, g.property(a))
		} else {
			fields = append(fields, g.property(a))
		}
	}
	for _, m := range ctors {
		ctorText = append(ctorText, g.constructor(m, parent != nil))
	}
	for _, m := range c.Methods {
		if m.IsStatic {
			staticMethods = append(staticMethods, g.function(m))
		} else {
			methods = append(methods, g.function(m))
		}
	}

	var companion string
	if len(statics)+len(staticMethods) > 0 {
		companion = generator.Block("companion object {", "}", g.IndentSize(),
			generator.Section{Items: statics},
			generator.Section{Items: staticMethods, Spaced: true},
		)
	}
	return generator.Block(decl+" {", "}", g.IndentSize(),
		generator.Section{Items: fields},
		generator.Section{Items: ctorText, Spaced: true},
		generator.Section{Items: methods, Spaced: true},
		generator.Section{Items: []string{companion}},
	)
}

func (g *Generator) Interface(i *model.Interface, d *model.Diagram) string {
	decl := "interface " + i.Name + generics(i.Generics)
	if parents := generator.FindParentInterfaces(i, d); len(parents) > 0 {
		names := make([]string, len(parents))
		for k, p := range parents {
			names[k] = p.Name
		}
		decl += " : " + strings.Join(names, ", ")
	}
	var methods []string
	for _, m := range i.Methods {
		methods = append(methods, "fun "+m.Name+"("+params(m.Parameters)+")"+returns(m.Returns()))
	}
	return generator.Block(decl+" {", "}", g.IndentSize(), generator.Section{Items: methods})
}

func (g *Generator) Enum(e *model.Enum, _ *model.Diagram) string {
	values := make([]string, len(e.Values))
	for i, v := range e.Values {
		sep := ","
		if i == len(e.Values)-1 {
			sep = ";"
		}
		values[i] = fmt.Sprintf("%s(%d)%s", v, i, sep)
	}
	return generator.Block("enum class "+e.Name+"(val value: Int) {", "}", g.IndentSize(), generator.Section{Items: values})
}

// isExtended reports whether some class names c as its parent. Kotlin
// classes are final unless opened.
func isExtended(c *model.Class, d *model.Diagram) bool {
	for _, other := range d.Classes {
		if p := generator.FindParentClass(other, d); p == c {
			return true
		}
	}
	return false
}

func (g *Generator) property(a model.Attribute) string {
	kw := "var"
	if a.IsFinal {
		kw = "val"
	}
	typ := types.Render(a.Type)
	value, nullable := defaultValue(a.Type)
	if nullable {
		typ += "?"
	}
	return join(visibility[a.Visibility], kw, a.Name+": "+typ, "=", value)
}

func (g *Generator) constructor(m model.Method, hasParent bool) string {
	sig := join(visibility[m.Visibility], "constructor("+params(m.Parameters)+")")
	if hasParent {
		sig += " : super()"
	}
	return sig + " {\n" + generator.Indent(generator.Placeholder("//", "constructor"), 1, g.IndentSize()) + "\n}"
}

func (g *Generator) function(m model.Method) string {
	ret := m.Returns()
	mod := ""
	if m.IsAbstract {
		mod = "abstract"
	}
	sig := join(visibility[m.Visibility], mod, "fun "+m.Name+"("+params(m.Parameters)+")"+returns(ret))
	if m.IsAbstract {
		return sig
	}
	body := []string{generator.Placeholder("//", m.Name)}
	if generator.KindOf(ret) != generator.KindVoid {
		value, _ := defaultValue(ret)
		body = append(body, "return "+value)
	}
	return sig + " {\n" + generator.Indent(strings.Join(body, "\n"), 1, g.IndentSize()) + "\n}"
}

// returns renders the ": Type" suffix. Non-primitive return types are
// nullable so the placeholder can return null.
func returns(t model.TypeRef) string {
	if generator.KindOf(t) == generator.KindVoid {
		return ""
	}
	typ := types.Render(t)
	if _, nullable := defaultValue(t); nullable {
		typ += "?"
	}
	return ": " + typ
}

func defaultValue(t model.TypeRef) (string, bool) {
	switch generator.KindOf(t) {
	case generator.KindBool:
		return "false", false
	case generator.KindInteger:
		if t.Key() == "long" {
			return "0L", false
		}
		return "0", false
	case generator.KindFloat:
		if t.Key() == "float" {
			return "0.0f", false
		}
		return "0.0", false
	case generator.KindChar:
		return "' '", false
	case generator.KindString:
		return `""`, false
	case generator.KindVoid:
		return "Unit", false
	}
	return "null", true
}

func params(ps []model.Parameter) string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name + ": " + types.Render(p.Type)
	}
	return strings.Join(out, ", ")
}

func generics(gs []string) string {
	if len(gs) == 0 {
		return ""
	}
	return "<" + strings.Join(gs, ", ") + ">"
}

func join(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
