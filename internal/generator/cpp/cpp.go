// Package cpp renders diagrams as a C++17 header. Packages become
// namespaces, interfaces become pure abstract classes.
package cpp

import (
	"fmt"
	"slices"
	"strings"

	"github.com/calumari/pumlgen/internal/generator"
	"github.com/calumari/pumlgen/internal/model"
)

// sections lists access specifiers in emission order. C++ has no package
// visibility; package members are public.
var sections = []struct {
	label string
	vis   []model.Visibility
}{
	{"public:", []model.Visibility{model.Public, model.PackagePrivate}},
	{"protected:", []model.Visibility{model.Protected}},
	{"private:", []model.Visibility{model.Private}},
}

var types = generator.TypeMap{
	Names: map[string]string{
		"string":    "std::string",
		"str":       "std::string",
		"text":      "std::string",
		"object":    "std::any",
		"any":       "std::any",
		"bool":      "bool",
		"boolean":   "bool",
		"int":       "int",
		"integer":   "int",
		"long":      "long long",
		"short":     "short",
		"byte":      "std::uint8_t",
		"double":    "double",
		"float":     "float",
		"decimal":   "double",
		"number":    "double",
		"char":      "char",
		"character": "char",
		"void":      "void",
	},
	Containers: map[string]func([]string) string{
		"list":     func(a []string) string { return generator.Angle("std::vector", []string{generator.Arg(a, 0, "std::any")}) },
		"set":      func(a []string) string { return generator.Angle("std::set", []string{generator.Arg(a, 0, "std::any")}) },
		"map":      stdMap,
		"dict":     stdMap,
		"optional": func(a []string) string { return generator.Angle("std::optional", []string{generator.Arg(a, 0, "std::any")}) },
	},
	Generic: generator.Angle,
	Array:   func(elem string) string { return "std::vector<" + elem + ">" },
	Unknown: "std::any",
}

func stdMap(a []string) string {
	return generator.Angle("std::map", []string{generator.Arg(a, 0, "std::any"), generator.Arg(a, 1, "std::any")})
}

const includes = `#pragma once

#include <any>
#include <cstdint>
#include <map>
#include <optional>
#include <set>
#include <string>
#include <vector>`

// Generator emits C++ class declarations with inline bodies.
type Generator struct {
	opts generator.Options
}

func New(opts generator.Options) *Generator { return &Generator{opts: opts} }

func (g *Generator) Language() string       { return "cpp" }
func (g *Generator) FileExtension() string  { return "hpp" }
func (g *Generator) IndentSize() int        { return g.opts.Indent(4) }
func (g *Generator) SupportsPackages() bool { return true }

func (g *Generator) PackageStart(name string) string {
	return "namespace " + namespace(name) + " {"
}

func (g *Generator) PackageEnd(name string) string {
	return "} // namespace " + namespace(name)
}

// namespace turns a dotted package name into a C++17 nested namespace.
func namespace(name string) string {
	return strings.ReplaceAll(generator.Identifier(name, "."), ".", "::")
}

func (g *Generator) Header(*model.Diagram) string {
	return generator.Lines(generator.Banner("//", g.opts), includes)
}

func (g *Generator) Footer(*model.Diagram) string { return "" }

func (g *Generator) Class(c *model.Class, d *model.Diagram) string {
	var bases []string
	parent := generator.FindParentClass(c, d)
	if parent != nil {
		bases = append(bases, "public "+parent.Name)
	}
	ifaces := generator.FindImplementedInterfaces(c, d)
	for _, i := range ifaces {
		bases = append(bases, "public "+i.Name)
	}
	decl := "class " + c.Name
	if len(bases) > 0 {
		decl += " : " + strings.Join(bases, ", ")
	}
	decl = template(c.Generics) + decl + " {"

	polymorphic := generator.IsAbstract(c) || parent != nil || len(ifaces) > 0
	ctors := generator.Constructors(c)
	var groups []string
	for _, s := range sections {
		var items []string
		for _, m := range ctors {
			if slices.Contains(s.vis, m.Visibility) {
				items = append(items, g.withBody(fmt.Sprintf("%s(%s)", c.Name, params(m.Parameters)), c.Name, ""))
			}
		}
		if s.label == "public:" && polymorphic {
			items = append(items, fmt.Sprintf("virtual ~%s() = default;", c.Name))
		}
		for _, m := range c.Methods {
			if slices.Contains(s.vis, m.Visibility) {
				items = append(items, g.method(m))
			}
		}
		for _, a := range c.Attributes {
			if slices.Contains(s.vis, a.Visibility) {
				items = append(items, field(a))
			}
		}
		if len(items) > 0 {
			groups = append(groups, s.label+"\n"+generator.Indent(strings.Join(items, "\n"), 1, g.IndentSize()))
		}
	}
	return join(decl, groups, "};")
}

func (g *Generator) Interface(i *model.Interface, d *model.Diagram) string {
	decl := "class " + i.Name
	if parents := generator.FindParentInterfaces(i, d); len(parents) > 0 {
		names := make([]string, len(parents))
		for k, p := range parents {
			names[k] = "public " + p.Name
		}
		decl += " : " + strings.Join(names, ", ")
	}
	decl = template(i.Generics) + decl + " {"

	items := []string{fmt.Sprintf("virtual ~%s() = default;", i.Name)}
	for _, m := range i.Methods {
		items = append(items, fmt.Sprintf("virtual %s %s(%s) = 0;", types.Render(m.Returns()), m.Name, params(m.Parameters)))
	}
	return join(decl, []string{"public:\n" + generator.Indent(strings.Join(items, "\n"), 1, g.IndentSize())}, "};")
}

func (g *Generator) Enum(e *model.Enum, _ *model.Diagram) string {
	values := make([]string, len(e.Values))
	for i, v := range e.Values {
		values[i] = fmt.Sprintf("%s = %d,", v, i)
	}
	return generator.Block("enum class "+e.Name+" {", "};", g.IndentSize(), generator.Section{Items: values})
}

func field(a model.Attribute) string {
	var mods []string
	if a.IsStatic {
		mods = append(mods, "inline static")
	}
	if a.IsFinal {
		mods = append(mods, "const")
	}
	return strings.Join(append(mods, types.Render(a.Type), a.Name+"{};"), " ")
}

func (g *Generator) method(m model.Method) string {
	ret := m.Returns()
	sig := fmt.Sprintf("%s %s(%s)", types.Render(ret), m.Name, params(m.Parameters))
	switch {
	case m.IsAbstract:
		return "virtual " + sig + " = 0;"
	case m.IsStatic:
		sig = "static " + sig
	}
	return g.withBody(sig, m.Name, defaultValue(ret))
}

func (g *Generator) withBody(sig, name, ret string) string {
	lines := []string{generator.Placeholder("//", name)}
	if ret != "" {
		lines = append(lines, "return "+ret+";")
	}
	return sig + " {\n" + generator.Indent(strings.Join(lines, "\n"), 1, g.IndentSize()) + "\n}"
}

func defaultValue(t model.TypeRef) string {
	switch generator.KindOf(t) {
	case generator.KindVoid:
		return ""
	case generator.KindBool:
		return "false"
	case generator.KindInteger:
		return "0"
	case generator.KindFloat:
		return "0.0"
	case generator.KindChar:
		return "' '"
	case generator.KindString:
		return `""`
	}
	return "{}"
}

func params(ps []model.Parameter) string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = types.Render(p.Type) + " " + p.Name
	}
	return strings.Join(out, ", ")
}

func template(gs []string) string {
	if len(gs) == 0 {
		return ""
	}
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = "typename " + g
	}
	return "template <" + strings.Join(out, ", ") + ">\n"
}

// join lays out a class body. Access specifiers sit at the class brace
// level, members one level deeper.
func join(open string, groups []string, close string) string {
	if len(groups) == 0 {
		return open + "\n" + close
	}
	return open + "\n" + strings.Join(groups, "\n\n") + "\n" + close
}
