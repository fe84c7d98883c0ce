// Package java renders diagrams as Java source.
package java

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
	model.PackagePrivate: "",
}

var boxed = map[string]string{
	"int":     "Integer",
	"long":    "Long",
	"short":   "Short",
	"byte":    "Byte",
	"double":  "Double",
	"float":   "Float",
	"boolean": "Boolean",
	"char":    "Character",
}

func box(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if b, ok := boxed[a]; ok {
			a = b
		}
		out[i] = a
	}
	return out
}

func container(name string, n int) func([]string) string {
	return func(args []string) string {
		args = box(args)
		for len(args) < n {
			args = append(args, "Object")
		}
		return generator.Angle(name, args[:n])
	}
}

var types = generator.TypeMap{
	Names: map[string]string{
		"string":   "String",
		"str":      "String",
		"text":     "String",
		"object":   "Object",
		"any":      "Object",
		"bool":     "boolean",
		"boolean":  "boolean",
		"int":      "int",
		"integer":  "Integer",
		"long":     "long",
		"short":    "short",
		"byte":     "byte",
		"double":   "double",
		"float":    "float",
		"decimal":  "BigDecimal",
		"number":   "double",
		"char":     "char",
		"void":     "void",
		"date":     "LocalDate",
		"datetime": "LocalDateTime",
	},
	Containers: map[string]func([]string) string{
		"list":     container("List", 1),
		"set":      container("Set", 1),
		"map":      container("Map", 2),
		"dict":     container("Map", 2),
		"optional": container("Optional", 1),
	},
	Generic: func(name string, args []string) string { return generator.Angle(name, box(args)) },
	Array:   func(elem string) string { return elem + "[]" },
	Unknown: "Object",
}

// Generator emits one Java compilation unit per diagram.
type Generator struct {
	opts generator.Options
}

func New(opts generator.Options) *Generator { return &Generator{opts: opts} }

func (g *Generator) Language() string       { return "java" }
func (g *Generator) FileExtension() string  { return "java" }
func (g *Generator) IndentSize() int        { return g.opts.Indent(4) }
func (g *Generator) SupportsPackages() bool { return false }

func (g *Generator) PackageStart(string) string { return "" }
func (g *Generator) PackageEnd(string) string   { return "" }

func (g *Generator) Header(*model.Diagram) string {
	return generator.Lines(
		generator.Banner("//", g.opts),
		"import java.math.BigDecimal;\nimport java.time.LocalDate;\nimport java.time.LocalDateTime;\nimport java.util.*;",
	)
}

func (g *Generator) Footer(*model.Diagram) string { return "" }

func (g *Generator) Class(c *model.Class, d *model.Diagram) string {
	head := []string{"public"}
	if generator.IsAbstract(c) {
		head = append(head, "abstract")
	}
	head = append(head, "class", c.Name+generics(c.Generics))
	if p := generator.FindParentClass(c, d); p != nil {
		head = append(head, "extends", p.Name)
	}
	if ifaces := generator.FindImplementedInterfaces(c, d); len(ifaces) > 0 {
		names := make([]string, len(ifaces))
		for i, it := range ifaces {
			names[i] = it.Name
		}
		head = append(head, "implements", strings.Join(names, ", "))
	}

	var fields, ctors, methods []string
	for _, a := range c.Attributes {
		fields = append(fields, g.field(a))
	}
	for _, m := range generator.Constructors(c) {
		ctors = append(ctors, g.constructor(c.Name, m))
	}
	for _, m := range c.Methods {
		methods = append(methods, g.method(m))
	}
	return generator.Block(strings.Join(head, " ")+" {", "}", g.IndentSize(),
		generator.Section{Items: fields},
		generator.Section{Items: ctors, Spaced: true},
		generator.Section{Items: methods, Spaced: true},
	)
}

func (g *Generator) Interface(i *model.Interface, d *model.Diagram) string {
	head := "public interface " + i.Name + generics(i.Generics)
	if parents := generator.FindParentInterfaces(i, d); len(parents) > 0 {
		names := make([]string, len(parents))
		for k, p := range parents {
			names[k] = p.Name
		}
		head += " extends " + strings.Join(names, ", ")
	}
	var methods []string
	for _, m := range i.Methods {
		methods = append(methods, fmt.Sprintf("%s %s(%s);", types.Render(m.Returns()), m.Name, params(m.Parameters)))
	}
	return generator.Block(head+" {", "}", g.IndentSize(), generator.Section{Items: methods})
}

func (g *Generator) Enum(e *model.Enum, _ *model.Diagram) string {
	if len(e.Values) == 0 {
		return "public enum " + e.Name + " {\n}"
	}
	values := make([]string, len(e.Values))
	for i, v := range e.Values {
		sep := ","
		if i == len(e.Values)-1 {
			sep = ";"
		}
		values[i] = fmt.Sprintf("%s(%d)%s", v, i, sep)
	}
	body := []string{
		"private final int value;",
		fmt.Sprintf("%s(int value) {\n%s\n}", e.Name, generator.Indent("this.value = value;", 1, g.IndentSize())),
		fmt.Sprintf("public int getValue() {\n%s\n}", generator.Indent("return value;", 1, g.IndentSize())),
	}
	return generator.Block("public enum "+e.Name+" {", "}", g.IndentSize(),
		generator.Section{Items: values},
		generator.Section{Items: body, Spaced: true},
	)
}

func (g *Generator) field(a model.Attribute) string {
	mods := modifiers(a.Visibility)
	if a.IsStatic {
		mods = append(mods, "static")
	}
	if a.IsFinal {
		mods = append(mods, "final")
	}
	mods = append(mods, types.Render(a.Type), a.Name+";")
	return strings.Join(mods, " ")
}

func (g *Generator) constructor(class string, m model.Method) string {
	sig := strings.Join(append(modifiers(m.Visibility), fmt.Sprintf("%s(%s)", class, params(m.Parameters))), " ")
	return sig + " {\n" + generator.Indent(generator.Placeholder("//", class), 1, g.IndentSize()) + "\n}"
}

func (g *Generator) method(m model.Method) string {
	mods := modifiers(m.Visibility)
	if m.IsAbstract {
		mods = append(mods, "abstract")
	}
	if m.IsStatic {
		mods = append(mods, "static")
	}
	ret := m.Returns()
	sig := strings.Join(append(mods, fmt.Sprintf("%s %s(%s)", types.Render(ret), m.Name, params(m.Parameters))), " ")
	if m.IsAbstract {
		return sig + ";"
	}
	body := []string{generator.Placeholder("//", m.Name)}
	if v, ok := defaultValue(ret); ok {
		body = append(body, "return "+v+";")
	}
	return sig + " {\n" + generator.Indent(strings.Join(body, "\n"), 1, g.IndentSize()) + "\n}"
}

func modifiers(v model.Visibility) []string {
	if s := visibility[v]; s != "" {
		return []string{s}
	}
	return nil
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

// defaultValue is the placeholder return for t. ok is false for void.
func defaultValue(t model.TypeRef) (string, bool) {
	switch generator.KindOf(t) {
	case generator.KindVoid:
		return "", false
	case generator.KindBool:
		return "false", true
	case generator.KindInteger:
		return "0", true
	case generator.KindFloat:
		return "0.0", true
	case generator.KindChar:
		return "' '", true
	case generator.KindString:
		return `""`, true
	}
	return "null", true
}
