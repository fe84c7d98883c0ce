// Package python renders diagrams as typed Python 3 modules. Interfaces
// become typing.Protocol classes and enums subclass enum.Enum.
package python

import (
	"fmt"
	"strings"

	"github.com/calumari/pumlgen/internal/generator"
	"github.com/calumari/pumlgen/internal/model"
)

var types = generator.TypeMap{
	Names: map[string]string{
		"string":    "str",
		"str":       "str",
		"text":      "str",
		"char":      "str",
		"character": "str",
		"object":    "Any",
		"any":       "Any",
		"bool":      "bool",
		"boolean":   "bool",
		"int":       "int",
		"integer":   "int",
		"long":      "int",
		"short":     "int",
		"byte":      "int",
		"double":    "float",
		"float":     "float",
		"decimal":   "Decimal",
		"number":    "float",
		"void":      "None",
		"date":      "date",
		"datetime":  "datetime",
	},
	Containers: map[string]func([]string) string{
		"list":     func(a []string) string { return generator.Square("List", []string{generator.Arg(a, 0, "Any")}) },
		"set":      func(a []string) string { return generator.Square("Set", []string{generator.Arg(a, 0, "Any")}) },
		"map":      dict,
		"dict":     dict,
		"optional": func(a []string) string { return generator.Square("Optional", []string{generator.Arg(a, 0, "Any")}) },
	},
	Generic: generator.Square,
	Array:   func(elem string) string { return "List[" + elem + "]" },
	Unknown: "Any",
}

func dict(a []string) string {
	return generator.Square("Dict", []string{generator.Arg(a, 0, "Any"), generator.Arg(a, 1, "Any")})
}

const imports = `from __future__ import annotations

from abc import ABC, abstractmethod
from datetime import date, datetime
from decimal import Decimal
from enum import Enum
from typing import Any, Dict, Generic, List, Optional, Protocol, Set, TypeVar`

// Generator emits one Python module per diagram.
type Generator struct {
	opts generator.Options
}

func New(opts generator.Options) *Generator { return &Generator{opts: opts} }

func (g *Generator) Language() string       { return "python" }
func (g *Generator) FileExtension() string  { return "py" }
func (g *Generator) IndentSize() int        { return g.opts.Indent(4) }
func (g *Generator) SupportsPackages() bool { return false }

func (g *Generator) PackageStart(string) string { return "" }
func (g *Generator) PackageEnd(string) string   { return "" }

// Header emits imports and one TypeVar per generic parameter name used in
// the diagram.
func (g *Generator) Header(d *model.Diagram) string {
	var vars []string
	seen := make(map[string]bool)
	add := func(gs []string) {
		for _, name := range gs {
			if !seen[name] {
				seen[name] = true
				vars = append(vars, fmt.Sprintf("%s = TypeVar(%q)", name, name))
			}
		}
	}
	for _, c := range d.Classes {
		add(c.Generics)
	}
	for _, i := range d.Interfaces {
		add(i.Generics)
	}
	parts := []string{imports}
	if len(vars) > 0 {
		parts = append(parts, strings.Join(vars, "\n"))
	}
	return generator.Lines(generator.Banner("#", g.opts), strings.Join(parts, "\n\n"))
}

func (g *Generator) Footer(*model.Diagram) string { return "" }

func (g *Generator) Class(c *model.Class, d *model.Diagram) string {
	var bases []string
	if p := generator.FindParentClass(c, d); p != nil {
		bases = append(bases, p.Name)
	}
	for _, i := range generator.FindImplementedInterfaces(c, d) {
		bases = append(bases, i.Name)
	}
	if generator.IsAbstract(c) && len(bases) == 0 {
		bases = append(bases, "ABC")
	}
	if len(c.Generics) > 0 {
		bases = append(bases, generator.Square("Generic", c.Generics))
	}

	var fields, methods []string
	for _, a := range c.Attributes {
		fields = append(fields, field(a))
	}
	for i, m := range generator.Constructors(c) {
		methods = append(methods, g.constructor(c, m, i))
	}
	for _, m := range c.Methods {
		methods = append(methods, g.method(m, false))
	}
	return g.block(declaration(c.Name, bases), generator.Section{Items: fields}, generator.Section{Items: methods, Spaced: true})
}

func (g *Generator) Interface(i *model.Interface, d *model.Diagram) string {
	var bases []string
	for _, p := range generator.FindParentInterfaces(i, d) {
		bases = append(bases, p.Name)
	}
	if len(i.Generics) > 0 {
		bases = append(bases, generator.Square("Protocol", i.Generics))
	} else {
		bases = append(bases, "Protocol")
	}
	var methods []string
	for _, m := range i.Methods {
		methods = append(methods, g.method(m, true))
	}
	return g.block(declaration(i.Name, bases), generator.Section{Items: methods, Spaced: true})
}

func (g *Generator) Enum(e *model.Enum, _ *model.Diagram) string {
	values := make([]string, len(e.Values))
	for i, v := range e.Values {
		values[i] = fmt.Sprintf("%s = %d", v, i)
	}
	return g.block(declaration(e.Name, []string{"Enum"}), generator.Section{Items: values})
}

func (g *Generator) block(decl string, sections ...generator.Section) string {
	for _, s := range sections {
		if len(s.Items) > 0 {
			return generator.Block(decl, "", g.IndentSize(), sections...)
		}
	}
	return generator.Block(decl, "", g.IndentSize(), generator.Section{Items: []string{"pass"}})
}

func declaration(name string, bases []string) string {
	if len(bases) == 0 {
		return "class " + name + ":"
	}
	return "class " + name + "(" + strings.Join(bases, ", ") + "):"
}

// fieldName maps visibility onto Python's underscore convention.
func fieldName(name string, v model.Visibility) string {
	switch v {
	case model.Private, model.Protected:
		return "_" + name
	}
	return name
}

// field renders a class-level annotation. Static attributes get a value;
// instance attributes are annotated only.
func field(a model.Attribute) string {
	name := fieldName(a.Name, a.Visibility)
	typ := types.Render(a.Type)
	if a.IsStatic {
		return fmt.Sprintf("%s: %s = %s", name, typ, defaultValue(a.Type))
	}
	return fmt.Sprintf("%s: %s", name, typ)
}

// constructor renders __init__ for the first constructor and alternative
// class-method constructors for the rest.
func (g *Generator) constructor(c *model.Class, m model.Method, n int) string {
	ps := params(m.Parameters)
	if n == 0 {
		body := []string{generator.Placeholder("#", "__init__")}
		for _, a := range c.Attributes {
			if a.IsStatic {
				continue
			}
			value := defaultValue(a.Type)
			for _, p := range m.Parameters {
				if p.Name == a.Name {
					value = generator.SnakeCase(p.Name)
				}
			}
			body = append(body, fmt.Sprintf("self.%s = %s", fieldName(a.Name, a.Visibility), value))
		}
		if len(body) == 1 {
			body = append(body, "pass")
		}
		return g.def("def __init__("+join("self", ps)+") -> None:", body)
	}
	names := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		names[i] = generator.SnakeCase(p.Name)
	}
	name := "create"
	if len(names) > 0 {
		name = "from_" + strings.Join(names, "_and_")
	}
	body := []string{generator.Placeholder("#", name), "return cls()"}
	return "@classmethod\n" + g.def(fmt.Sprintf("def %s(%s) -> %s:", name, join("cls", ps), c.Name), body)
}

// method renders a method. Interface methods and abstract methods have an
// ellipsis body.
func (g *Generator) method(m model.Method, signatureOnly bool) string {
	name := generator.SnakeCase(m.Name)
	ret := m.Returns()
	var deco []string
	self := "self"
	if m.IsStatic {
		deco = append(deco, "@staticmethod")
		self = ""
	}
	if m.IsAbstract && !signatureOnly {
		deco = append(deco, "@abstractmethod")
	}
	sig := fmt.Sprintf("def %s(%s) -> %s:", name, join(self, params(m.Parameters)), types.Render(ret))

	var body []string
	switch {
	case signatureOnly || m.IsAbstract:
		body = []string{"..."}
	default:
		body = []string{generator.Placeholder("#", name)}
		if generator.KindOf(ret) == generator.KindVoid {
			body = append(body, "pass")
		} else {
			body = append(body, "return "+defaultValue(ret))
		}
	}
	return generator.Lines(strings.Join(deco, "\n"), g.def(sig, body))
}

func (g *Generator) def(sig string, body []string) string {
	return sig + "\n" + generator.Indent(strings.Join(body, "\n"), 1, g.IndentSize())
}

func defaultValue(t model.TypeRef) string {
	switch generator.KindOf(t) {
	case generator.KindBool:
		return "False"
	case generator.KindInteger:
		return "0"
	case generator.KindFloat:
		return "0.0"
	case generator.KindChar:
		return `" "`
	case generator.KindString:
		return `""`
	}
	return "None"
}

func params(ps []model.Parameter) string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = generator.SnakeCase(p.Name) + ": " + types.Render(p.Type)
	}
	return strings.Join(out, ", ")
}

func join(first, rest string) string {
	switch {
	case first == "":
		return rest
	case rest == "":
		return first
	}
	return first + ", " + rest
}
