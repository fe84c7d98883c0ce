// Package typescript renders diagrams as TypeScript source. Packages become
// exported namespaces.
package typescript

import (
	"fmt"
	"strings"

	"github.com/calumari/pumlgen/internal/generator"
	"github.com/calumari/pumlgen/internal/model"
)

// TypeScript has no package visibility; package members are public.
var visibility = map[model.Visibility]string{
	model.Public:         "public",
	model.Private:        "private",
	model.Protected:      "protected",
	model.PackagePrivate: "public",
}

var types = generator.TypeMap{
	Names: map[string]string{
		"string":    "string",
		"str":       "string",
		"text":      "string",
		"char":      "string",
		"character": "string",
		"object":    "any",
		"any":       "any",
		"bool":      "boolean",
		"boolean":   "boolean",
		"int":       "number",
		"integer":   "number",
		"long":      "number",
		"short":     "number",
		"byte":      "number",
		"double":    "number",
		"float":     "number",
		"decimal":   "number",
		"number":    "number",
		"void":      "void",
		"date":      "Date",
		"datetime":  "Date",
	},
	Containers: map[string]func([]string) string{
		"list":     func(a []string) string { return array(generator.Arg(a, 0, "any")) },
		"set":      func(a []string) string { return generator.Angle("Set", []string{generator.Arg(a, 0, "any")}) },
		"map":      mapOf,
		"dict":     mapOf,
		"optional": func(a []string) string { return generator.Arg(a, 0, "any") + " | undefined" },
	},
	Generic: generator.Angle,
	Array:   array,
	Unknown: "any",
}

func array(elem string) string {
	if strings.ContainsAny(elem, " |") {
		return "Array<" + elem + ">"
	}
	return elem + "[]"
}

func mapOf(a []string) string {
	return generator.Angle("Map", []string{generator.Arg(a, 0, "any"), generator.Arg(a, 1, "any")})
}

// Generator emits TypeScript declarations.
type Generator struct {
	opts generator.Options
}

func New(opts generator.Options) *Generator { return &Generator{opts: opts} }

func (g *Generator) Language() string       { return "typescript" }
func (g *Generator) FileExtension() string  { return "ts" }
func (g *Generator) IndentSize() int        { return g.opts.Indent(2) }
func (g *Generator) SupportsPackages() bool { return true }

func (g *Generator) PackageStart(name string) string {
	return "export namespace " + generator.Identifier(name, ".") + " {"
}

func (g *Generator) PackageEnd(string) string { return "}" }

func (g *Generator) Header(*model.Diagram) string { return generator.Banner("//", g.opts) }
func (g *Generator) Footer(*model.Diagram) string { return "" }

func (g *Generator) Class(c *model.Class, d *model.Diagram) string {
	head := []string{"export"}
	if generator.IsAbstract(c) {
		head = append(head, "abstract")
	}
	head = append(head, "class", c.Name+generics(c.Generics))
	parent := generator.FindParentClass(c, d)
	if parent != nil {
		head = append(head, "extends", parent.Name)
	}
	if ifaces := generator.FindImplementedInterfaces(c, d); len(ifaces) > 0 {
		names := make([]string, len(ifaces))
		for i, it := range ifaces {
			names[i] = it.Name
		}
		head = append(head, "implements", strings.Join(names, ", "))
	}

	var fields, methods []string
	for _, a := range c.Attributes {
		fields = append(fields, field(a))
	}
	for _, m := range c.Methods {
		methods = append(methods, g.method(m))
	}
	return generator.Block(strings.Join(head, " ")+" {", "}", g.IndentSize(),
		generator.Section{Items: fields},
		generator.Section{Items: []string{g.constructor(c, parent != nil)}},
		generator.Section{Items: methods, Spaced: true},
	)
}

// constructor renders the single TypeScript constructor. Several declared
// constructors become overload signatures over one implementation.
func (g *Generator) constructor(c *model.Class, hasParent bool) string {
	ctors := generator.Constructors(c)
	if len(ctors) == 0 {
		return ""
	}
	body := []string{generator.Placeholder("//", "constructor")}
	if hasParent {
		body = append([]string{"super();"}, body...)
	}
	impl := " {\n" + generator.Indent(strings.Join(body, "\n"), 1, g.IndentSize()) + "\n}"
	if len(ctors) == 1 {
		return "constructor(" + params(ctors[0].Parameters) + ")" + impl
	}
	var lines []string
	for _, m := range ctors {
		lines = append(lines, "constructor("+params(m.Parameters)+");")
	}
	return strings.Join(lines, "\n") + "\nconstructor(...args: any[])" + impl
}

func (g *Generator) Interface(i *model.Interface, d *model.Diagram) string {
	decl := "export interface " + i.Name + generics(i.Generics)
	if parents := generator.FindParentInterfaces(i, d); len(parents) > 0 {
		names := make([]string, len(parents))
		for k, p := range parents {
			names[k] = p.Name
		}
		decl += " extends " + strings.Join(names, ", ")
	}
	var methods []string
	for _, m := range i.Methods {
		methods = append(methods, fmt.Sprintf("%s(%s): %s;", m.Name, params(m.Parameters), returns(m.Returns())))
	}
	return generator.Block(decl+" {", "}", g.IndentSize(), generator.Section{Items: methods})
}

func (g *Generator) Enum(e *model.Enum, _ *model.Diagram) string {
	values := make([]string, len(e.Values))
	for i, v := range e.Values {
		values[i] = fmt.Sprintf("%s = %d,", v, i)
	}
	return generator.Block("export enum "+e.Name+" {", "}", g.IndentSize(), generator.Section{Items: values})
}

func field(a model.Attribute) string {
	mods := []string{visibility[a.Visibility]}
	if a.IsStatic {
		mods = append(mods, "static")
	}
	if a.IsFinal {
		mods = append(mods, "readonly")
	}
	return strings.Join(mods, " ") + " " + a.Name + "?: " + types.Render(a.Type) + ";"
}

func (g *Generator) method(m model.Method) string {
	mods := []string{visibility[m.Visibility]}
	if m.IsStatic {
		mods = append(mods, "static")
	}
	if m.IsAbstract {
		mods = append(mods, "abstract")
	}
	ret := m.Returns()
	sig := fmt.Sprintf("%s %s(%s): %s", strings.Join(mods, " "), m.Name, params(m.Parameters), returns(ret))
	if m.IsAbstract {
		return sig + ";"
	}
	body := []string{generator.Placeholder("//", m.Name)}
	if v := defaultValue(ret); v != "" {
		body = append(body, "return "+v+";")
	}
	return sig + " {\n" + generator.Indent(strings.Join(body, "\n"), 1, g.IndentSize()) + "\n}"
}

// returns renders a return type. Non-primitive types admit null so the
// placeholder body type-checks.
func returns(t model.TypeRef) string {
	typ := types.Render(t)
	if generator.KindOf(t) == generator.KindOther {
		return typ + " | null"
	}
	return typ
}

func defaultValue(t model.TypeRef) string {
	switch generator.KindOf(t) {
	case generator.KindVoid:
		return ""
	case generator.KindBool:
		return "false"
	case generator.KindInteger, generator.KindFloat:
		return "0"
	case generator.KindChar:
		return `" "`
	case generator.KindString:
		return `""`
	}
	return "null"
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
