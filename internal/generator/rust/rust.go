// Package rust renders diagrams as Rust modules. Classes are structs with
// an impl block, interfaces are traits, and packages become nested pub mod
// items.
package rust

import (
	"fmt"
	"maps"
	"strings"

	"github.com/calumari/pumlgen/internal/generator"
	"github.com/calumari/pumlgen/internal/model"
)

var visibility = map[model.Visibility]string{
	model.Public:         "pub ",
	model.Private:        "",
	model.Protected:      "pub(crate) ",
	model.PackagePrivate: "pub(crate) ",
}

var baseNames = map[string]string{
	"string":    "String",
	"str":       "String",
	"text":      "String",
	"char":      "char",
	"character": "char",
	"object":    "Box<dyn std::any::Any>",
	"any":       "Box<dyn std::any::Any>",
	"bool":      "bool",
	"boolean":   "bool",
	"int":       "i32",
	"integer":   "i32",
	"long":      "i64",
	"short":     "i16",
	"byte":      "u8",
	"double":    "f64",
	"float":     "f32",
	"decimal":   "f64",
	"number":    "f64",
	"void":      "()",
	"date":      "String",
	"datetime":  "String",
}

var containers = map[string]func([]string) string{
	"list":     func(a []string) string { return "Vec<" + generator.Arg(a, 0, "()") + ">" },
	"set":      func(a []string) string { return "HashSet<" + generator.Arg(a, 0, "()") + ">" },
	"map":      hashMap,
	"dict":     hashMap,
	"optional": func(a []string) string { return "Option<" + generator.Arg(a, 0, "()") + ">" },
}

func hashMap(a []string) string {
	return "HashMap<" + generator.Arg(a, 0, "()") + ", " + generator.Arg(a, 1, "()") + ">"
}

const dyn = "Box<dyn "

// generic instantiates name, keeping trait objects boxed.
func generic(name string, args []string) string {
	if inner, ok := strings.CutPrefix(name, dyn); ok {
		return dyn + generator.Angle(strings.TrimSuffix(inner, ">"), args) + ">"
	}
	return generator.Angle(name, args)
}

// Generator emits one Rust source file per diagram.
type Generator struct {
	opts generator.Options
}

func New(opts generator.Options) *Generator { return &Generator{opts: opts} }

func (g *Generator) Language() string       { return "rust" }
func (g *Generator) FileExtension() string  { return "rs" }
func (g *Generator) IndentSize() int        { return g.opts.Indent(4) }
func (g *Generator) SupportsPackages() bool { return true }

func (g *Generator) PackageStart(name string) string {
	return "pub mod " + generator.SnakeCase(generator.Identifier(name, "")) + " {\n" + generator.Indent("use super::*;", 1, g.IndentSize())
}

func (g *Generator) PackageEnd(string) string { return "}" }

func (g *Generator) Header(*model.Diagram) string {
	return generator.Lines(generator.Banner("//", g.opts), "use std::collections::{HashMap, HashSet};")
}

func (g *Generator) Footer(*model.Diagram) string { return "" }

type scope struct {
	types generator.TypeMap
}

func newScope(d *model.Diagram) *scope {
	names := maps.Clone(baseNames)
	for _, i := range d.Interfaces {
		names[strings.ToLower(i.Name)] = dyn + i.Name + ">"
	}
	return &scope{types: generator.TypeMap{
		Names:      names,
		Containers: containers,
		Generic:    generic,
		Array:      func(elem string) string { return "Vec<" + elem + ">" },
		Unknown:    "()",
	}}
}

// typ renders t. Trait objects are wrapped in Option so they have a value
// before an implementation is supplied.
func (s *scope) typ(t model.TypeRef) string {
	r := s.types.Render(t)
	if strings.HasPrefix(r, dyn) {
		return "Option<" + r + ">"
	}
	return r
}

func (s *scope) zero(t model.TypeRef) string {
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
		return "String::new()"
	}
	r := s.typ(t)
	for _, prefix := range []string{"Vec", "HashMap", "HashSet"} {
		if strings.HasPrefix(r, prefix+"<") {
			return prefix + "::new()"
		}
	}
	if strings.HasPrefix(r, "Option<") {
		return "None"
	}
	if r == "()" {
		return "()"
	}
	return "Default::default()"
}

func (s *scope) params(self string, ps []model.Parameter) string {
	var out []string
	if self != "" {
		out = append(out, self)
	}
	for _, p := range ps {
		out = append(out, generator.SnakeCase(p.Name)+": "+s.typ(p.Type))
	}
	return strings.Join(out, ", ")
}

func (s *scope) signature(vis string, m model.Method) string {
	self := "&self"
	if m.IsStatic {
		self = ""
	}
	sig := fmt.Sprintf("%sfn %s(%s)", vis, generator.SnakeCase(m.Name), s.params(self, m.Parameters))
	if generator.KindOf(m.Returns()) != generator.KindVoid {
		sig += " -> " + s.typ(m.Returns())
	}
	return sig
}

func (g *Generator) function(sig, name, ret string) string {
	body := generator.Placeholder("//", name)
	if ret != "" {
		body += "\n" + ret
	}
	return sig + " {\n" + generator.Indent(body, 1, g.IndentSize()) + "\n}"
}

func (g *Generator) Class(c *model.Class, d *model.Diagram) string {
	s := newScope(d)
	self := c.Name + generics(c.Generics, "")

	type field struct{ name, typ, zero string }
	var fields []field
	var decls, consts, members []string
	if p := generator.FindParentClass(c, d); p != nil {
		name := generator.SnakeCase(p.Name)
		fields = append(fields, field{name, p.Name, "Default::default()"})
		decls = append(decls, name+": "+p.Name+",")
	}
	for _, a := range c.Attributes {
		if a.IsStatic {
			consts = append(consts, g.static(a, s))
			continue
		}
		name := generator.SnakeCase(a.Name)
		fields = append(fields, field{name, s.typ(a.Type), s.zero(a.Type)})
		decls = append(decls, fmt.Sprintf("%s%s: %s,", visibility[a.Visibility], name, s.typ(a.Type)))
	}

	for n, m := range generator.Constructors(c) {
		name := "new"
		if n > 0 {
			name = "create"
			if len(m.Parameters) > 0 {
				parts := make([]string, len(m.Parameters))
				for i, p := range m.Parameters {
					parts[i] = generator.SnakeCase(p.Name)
				}
				name = "from_" + strings.Join(parts, "_and_")
			}
		}
		var inits []string
		for _, f := range fields {
			init := f.name + ": " + f.zero + ","
			for _, p := range m.Parameters {
				if generator.SnakeCase(p.Name) == f.name {
					init = f.name + ","
				}
			}
			inits = append(inits, init)
		}
		ret := "Self {}"
		if len(inits) > 0 {
			ret = "Self {\n" + generator.Indent(strings.Join(inits, "\n"), 1, g.IndentSize()) + "\n}"
		}
		sig := fmt.Sprintf("%sfn %s(%s) -> Self", visibility[m.Visibility], name, s.params("", m.Parameters))
		members = append(members, g.function(sig, name, ret))
	}

	var abstract []string
	for _, m := range c.Methods {
		if m.IsAbstract {
			abstract = append(abstract, s.signature("", m)+";")
			continue
		}
		members = append(members, g.function(s.signature(visibility[m.Visibility], m), generator.SnakeCase(m.Name), s.zero(m.Returns())))
	}

	var chunks []string
	structDecl := generator.Block("pub struct "+self+" {", "}", g.IndentSize(), generator.Section{Items: decls})
	if !strings.Contains(strings.Join(decls, "\n"), "dyn ") {
		structDecl = "#[derive(Debug, Clone, Default)]\n" + structDecl
	}
	chunks = append(chunks, structDecl)
	if len(consts) > 0 || len(members) > 0 {
		chunks = append(chunks, generator.Block("impl"+generics(c.Generics, ": Default")+" "+self+" {", "}", g.IndentSize(),
			generator.Section{Items: consts},
			generator.Section{Items: members, Spaced: true},
		))
	}
	if len(abstract) > 0 {
		chunks = append(chunks, generator.Block("pub trait Abstract"+self+" {", "}", g.IndentSize(), generator.Section{Items: abstract}))
	}
	if len(c.Generics) == 0 {
		for _, i := range generator.FindImplementedInterfaces(c, d) {
			if len(i.Generics) > 0 {
				continue
			}
			var impls []string
			for _, m := range i.Methods {
				impls = append(impls, g.function(s.signature("", m), generator.SnakeCase(m.Name), s.zero(m.Returns())))
			}
			chunks = append(chunks, generator.Block("impl "+i.Name+" for "+c.Name+" {", "}", g.IndentSize(), generator.Section{Items: impls, Spaced: true}))
		}
	}
	return strings.Join(chunks, "\n\n")
}

// static renders an associated constant, or an associated function for
// types without a constant value.
func (g *Generator) static(a model.Attribute, s *scope) string {
	v := s.zero(a.Type)
	switch v {
	case "Default::default()", "HashMap::new()", "HashSet::new()":
		sig := fmt.Sprintf("%sfn %s() -> %s", visibility[a.Visibility], generator.SnakeCase(a.Name), s.typ(a.Type))
		return sig + " {\n" + generator.Indent(v, 1, g.IndentSize()) + "\n}"
	}
	return fmt.Sprintf("%sconst %s: %s = %s;", visibility[a.Visibility], generator.ScreamingSnakeCase(a.Name), s.typ(a.Type), v)
}

func (g *Generator) Interface(i *model.Interface, d *model.Diagram) string {
	s := newScope(d)
	decl := "pub trait " + i.Name + generics(i.Generics, "")
	if parents := generator.FindParentInterfaces(i, d); len(parents) > 0 {
		names := make([]string, len(parents))
		for k, p := range parents {
			names[k] = p.Name
		}
		decl += ": " + strings.Join(names, " + ")
	}
	var methods []string
	for _, m := range i.Methods {
		methods = append(methods, s.signature("", m)+";")
	}
	return generator.Block(decl+" {", "}", g.IndentSize(), generator.Section{Items: methods})
}

func (g *Generator) Enum(e *model.Enum, _ *model.Diagram) string {
	derive := "#[derive(Debug, Clone, Copy, PartialEq, Eq, Hash)]"
	var values []string
	for i, v := range e.Values {
		if i == 0 {
			derive = "#[derive(Debug, Clone, Copy, PartialEq, Eq, Hash, Default)]"
			values = append(values, "#[default]")
		}
		values = append(values, fmt.Sprintf("%s = %d,", generator.PascalCase(v), i))
	}
	return derive + "\n" + generator.Block("pub enum "+e.Name+" {", "}", g.IndentSize(), generator.Section{Items: values})
}

// generics renders <T, U>, with bound appended to every parameter.
func generics(gs []string, bound string) string {
	if len(gs) == 0 {
		return ""
	}
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g + bound
	}
	return "<" + strings.Join(out, ", ") + ">"
}
