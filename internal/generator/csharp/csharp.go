// Package csharp renders diagrams as C# source. Packages become namespaces.
package csharp

import (
	"fmt"
	"strings"

	"github.com/calumari/pumlgen/internal/generator"
	"github.com/calumari/pumlgen/internal/model"
)

var visibility = map[model.Visibility]string{
	model.Public:         "public",
	model.Private:        "private",
	model.Protected:      "protected",
	model.PackagePrivate: "internal",
}

var types = generator.TypeMap{
	Names: map[string]string{
		"string":    "string",
		"str":       "string",
		"text":      "string",
		"object":    "object",
		"any":       "object",
		"bool":      "bool",
		"boolean":   "bool",
		"int":       "int",
		"integer":   "int",
		"long":      "long",
		"short":     "short",
		"byte":      "byte",
		"double":    "double",
		"float":     "float",
		"decimal":   "decimal",
		"number":    "double",
		"char":      "char",
		"character": "char",
		"void":      "void",
		"date":      "DateTime",
		"datetime":  "DateTime",
	},
	Containers: map[string]func([]string) string{
		"list":     func(a []string) string { return generator.Angle("List", []string{generator.Arg(a, 0, "object")}) },
		"set":      func(a []string) string { return generator.Angle("HashSet", []string{generator.Arg(a, 0, "object")}) },
		"map":      dictionary,
		"dict":     dictionary,
		"optional": func(a []string) string { return generator.Arg(a, 0, "object") + "?" },
	},
	Generic: generator.Angle,
	Array:   func(elem string) string { return elem + "[]" },
	Unknown: "object",
}

func dictionary(a []string) string {
	return generator.Angle("Dictionary", []string{generator.Arg(a, 0, "object"), generator.Arg(a, 1, "object")})
}

// Generator emits C# declarations.
type Generator struct {
	opts generator.Options
}

func New(opts generator.Options) *Generator { return &Generator{opts: opts} }

func (g *Generator) Language() string       { return "csharp" }
func (g *Generator) FileExtension() string  { return "cs" }
func (g *Generator) IndentSize() int        { return g.opts.Indent(4) }
func (g *Generator) SupportsPackages() bool { return true }

func (g *Generator) PackageStart(name string) string {
	return "namespace " + generator.Identifier(name, ".") + "\n{"
}

func (g *Generator) PackageEnd(string) string { return "}" }

func (g *Generator) Header(*model.Diagram) string {
	return generator.Lines(
		generator.Banner("//", g.opts),
		"using System;\nusing System.Collections.Generic;",
	)
}

func (g *Generator) Footer(*model.Diagram) string { return "" }

func (g *Generator) Class(c *model.Class, d *model.Diagram) string {
	head := []string{"public"}
	if generator.IsAbstract(c) {
		head = append(head, "abstract")
	}
	head = append(head, "class", c.Name+generics(c.Generics))

	var supers []string
	if p := generator.FindParentClass(c, d); p != nil {
		supers = append(supers, p.Name)
	}
	for _, i := range generator.FindImplementedInterfaces(c, d) {
		supers = append(supers, i.Name)
	}
	decl := strings.Join(head, " ")
	if len(supers) > 0 {
		decl += " : " + strings.Join(supers, ", ")
	}

	var fields, ctors, methods []string
	for _, a := range c.Attributes {
		fields = append(fields, g.field(a))
	}
	for _, m := range generator.Constructors(c) {
		ctors = append(ctors, g.body(join(visibility[m.Visibility], c.Name+"("+params(m.Parameters)+")"), c.Name, ""))
	}
	for _, m := range c.Methods {
		methods = append(methods, g.method(m))
	}
	return generator.Block(decl+"\n{", "}", g.IndentSize(),
		generator.Section{Items: fields},
		generator.Section{Items: ctors, Spaced: true},
		generator.Section{Items: methods, Spaced: true},
	)
}

func (g *Generator) Interface(i *model.Interface, d *model.Diagram) string {
	decl := "public interface " + i.Name + generics(i.Generics)
	if parents := generator.FindParentInterfaces(i, d); len(parents) > 0 {
		names := make([]string, len(parents))
		for k, p := range parents {
			names[k] = p.Name
		}
		decl += " : " + strings.Join(names, ", ")
	}
	var methods []string
	for _, m := range i.Methods {
		methods = append(methods, fmt.Sprintf("%s %s(%s);", types.Render(m.Returns()), methodName(m.Name), params(m.Parameters)))
	}
	return generator.Block(decl+"\n{", "}", g.IndentSize(), generator.Section{Items: methods})
}

func (g *Generator) Enum(e *model.Enum, _ *model.Diagram) string {
	values := make([]string, len(e.Values))
	for i, v := range e.Values {
		values[i] = fmt.Sprintf("%s = %d,", generator.PascalCase(v), i)
	}
	return generator.Block("public enum "+e.Name+"\n{", "}", g.IndentSize(), generator.Section{Items: values})
}

func (g *Generator) field(a model.Attribute) string {
	mods := []string{visibility[a.Visibility]}
	if a.IsStatic {
		mods = append(mods, "static")
	}
	if a.IsFinal {
		mods = append(mods, "readonly")
	}
	return join(append(mods, types.Render(a.Type), a.Name+";")...)
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
	name := methodName(m.Name)
	sig := join(append(mods, types.Render(ret), name+"("+params(m.Parameters)+")")...)
	if m.IsAbstract {
		return sig + ";"
	}
	return g.body(sig, name, defaultValue(ret))
}

func (g *Generator) body(sig, name, ret string) string {
	lines := []string{generator.Placeholder("//", name)}
	if ret != "" {
		lines = append(lines, "return "+ret+";")
	}
	return sig + "\n{\n" + generator.Indent(strings.Join(lines, "\n"), 1, g.IndentSize()) + "\n}"
}

// methodName follows the .NET convention of PascalCase members.
func methodName(name string) string { return generator.UpperFirst(name) }

func defaultValue(t model.TypeRef) string {
	switch generator.KindOf(t) {
	case generator.KindVoid:
		return ""
	case generator.KindBool:
		return "false"
	case generator.KindInteger:
		return "0"
	case generator.KindFloat:
		switch t.Key() {
		case "float":
			return "0f"
		case "decimal":
			return "0m"
		}
		return "0.0"
	case generator.KindChar:
		return "' '"
	case generator.KindString:
		return `""`
	}
	return "default"
}

func params(ps []model.Parameter) string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = types.Render(p.Type) + " " + p.Name
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
