// Package golang renders diagrams as Go source.
//
// Classes become structs with a New constructor and pointer-receiver
// methods, a parent class is embedded, and abstract methods are collected
// into a companion interface. Enums are iota constants with a String
// method. The output is passed through goimports.
package golang

import (
	"fmt"
	"maps"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/imports"

	"github.com/calumari/pumlgen/internal/generator"
	"github.com/calumari/pumlgen/internal/model"
)

const defaultPackage = "model"

var baseNames = map[string]string{
	"string":    "string",
	"str":       "string",
	"text":      "string",
	"char":      "rune",
	"character": "rune",
	"object":    "any",
	"any":       "any",
	"bool":      "bool",
	"boolean":   "bool",
	"int":       "int",
	"integer":   "int",
	"long":      "int64",
	"short":     "int16",
	"byte":      "byte",
	"double":    "float64",
	"float":     "float32",
	"decimal":   "float64",
	"number":    "float64",
	"date":      "time.Time",
	"datetime":  "time.Time",
}

var containers = map[string]func([]string) string{
	"list":     func(a []string) string { return "[]" + generator.Arg(a, 0, "any") },
	"set":      func(a []string) string { return "map[" + generator.Arg(a, 0, "any") + "]struct{}" },
	"map":      goMap,
	"dict":     goMap,
	"optional": optional,
}

func goMap(a []string) string {
	return "map[" + generator.Arg(a, 0, "any") + "]" + generator.Arg(a, 1, "any")
}

func optional(a []string) string {
	t := generator.Arg(a, 0, "any")
	if strings.HasPrefix(t, "*") || t == "any" {
		return t
	}
	return "*" + t
}

// Generator emits one Go file per diagram.
type Generator struct {
	opts generator.Options
}

func New(opts generator.Options) *Generator { return &Generator{opts: opts} }

func (g *Generator) Language() string       { return "go" }
func (g *Generator) FileExtension() string  { return "go" }
func (g *Generator) IndentSize() int        { return 0 }
func (g *Generator) SupportsPackages() bool { return false }

func (g *Generator) PackageStart(string) string { return "" }
func (g *Generator) PackageEnd(string) string   { return "" }

func (g *Generator) Header(*model.Diagram) string {
	pkg := strings.ToLower(generator.Identifier(g.opts.PackageName, ""))
	if pkg == "" {
		pkg = defaultPackage
	}
	if banner := generator.Banner("//", g.opts); banner != "" {
		return banner + "\n\npackage " + pkg
	}
	return "package " + pkg
}

func (g *Generator) Footer(*model.Diagram) string { return "" }

// Format runs goimports over the generated file. Unparseable output is
// returned unchanged so the caller can still inspect it.
func (g *Generator) Format(src string) string {
	out, err := imports.Process("model.go", []byte(src), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8})
	if err != nil {
		return src
	}
	return string(out)
}

// typeName is the exported Go spelling of a diagram entity name. Names with
// no identifier characters, such as "_" or "$", become "Type".
func typeName(name string) string {
	if name = generator.Identifier(name, ""); name == "" {
		return "Type"
	}
	return generator.UpperFirst(name)
}

// receiver is the one-letter receiver name for a method on typ.
func receiver(typ string) string {
	r, _ := utf8.DecodeRuneInString(typ)
	if r == utf8.RuneError {
		return "x"
	}
	return string(unicode.ToLower(r))
}

// memberName exports public members and unexports the rest.
func memberName(name string, v model.Visibility) string {
	name = generator.Identifier(name, "")
	if v == model.Public {
		return generator.UpperFirst(name)
	}
	return generator.LowerFirst(name)
}

// scope resolves diagram types for one declaration.
type scope struct {
	d        *model.Diagram
	generics []string
	types    generator.TypeMap
}

func newScope(d *model.Diagram, generics []string) *scope {
	names := maps.Clone(baseNames)
	for _, c := range d.Classes {
		names[strings.ToLower(c.Name)] = "*" + typeName(c.Name)
	}
	for _, i := range d.Interfaces {
		names[strings.ToLower(i.Name)] = typeName(i.Name)
	}
	for _, e := range d.Enums {
		names[strings.ToLower(e.Name)] = typeName(e.Name)
	}
	for _, gp := range generics {
		names[strings.ToLower(gp)] = gp
	}
	return &scope{
		d:        d,
		generics: generics,
		types: generator.TypeMap{
			Names:      names,
			Containers: containers,
			Generic:    generator.Square,
			Array:      func(elem string) string { return "[]" + elem },
			Unknown:    "any",
		},
	}
}

func (s *scope) render(t model.TypeRef) string { return s.types.Render(t) }

// zero is the placeholder return value for t.
func (s *scope) zero(t model.TypeRef) string {
	switch generator.KindOf(t) {
	case generator.KindBool:
		return "false"
	case generator.KindInteger, generator.KindFloat:
		return "0"
	case generator.KindChar:
		return "' '"
	case generator.KindString:
		return `""`
	}
	r := s.render(t)
	switch {
	case strings.HasPrefix(r, "*"), strings.HasPrefix(r, "[]"), strings.HasPrefix(r, "map["), r == "any":
		return "nil"
	case !t.IsGeneric() && !t.IsArray() && s.d.Enum(t.Name) != nil:
		return "0"
	case !t.IsGeneric() && !t.IsArray() && s.d.Interface(t.Name) != nil:
		return "nil"
	}
	for _, gp := range s.generics {
		if r == gp {
			return "*new(" + gp + ")"
		}
	}
	return r + "{}"
}

func (s *scope) params(ps []model.Parameter) string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = generator.LowerFirst(generator.Identifier(p.Name, "")) + " " + s.render(p.Type)
	}
	return strings.Join(out, ", ")
}

func (s *scope) results(t model.TypeRef) string {
	if generator.KindOf(t) == generator.KindVoid {
		return ""
	}
	return " " + s.render(t)
}

func typeParams(gs []string) string {
	if len(gs) == 0 {
		return ""
	}
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g + " any"
	}
	return "[" + strings.Join(out, ", ") + "]"
}

func typeArgs(gs []string) string {
	if len(gs) == 0 {
		return ""
	}
	return "[" + strings.Join(gs, ", ") + "]"
}

func (g *Generator) Class(c *model.Class, d *model.Diagram) string {
	s := newScope(d, c.Generics)
	name := typeName(c.Name)
	self := name + typeArgs(c.Generics)
	recv := receiver(name)

	var doc []string
	if ifaces := generator.FindImplementedInterfaces(c, d); len(ifaces) > 0 {
		names := make([]string, len(ifaces))
		for i, it := range ifaces {
			names[i] = typeName(it.Name)
		}
		doc = append(doc, fmt.Sprintf("// %s implements %s.", name, strings.Join(names, ", ")))
	}

	var fields, statics []string
	if p := generator.FindParentClass(c, d); p != nil {
		fields = append(fields, typeName(p.Name))
	}
	declared := make(map[string]bool)
	for _, a := range c.Attributes {
		declared[strings.ToLower(a.Name)] = true
		if a.IsStatic {
			statics = append(statics, fmt.Sprintf("%s %s", memberName(name+generator.UpperFirst(a.Name), a.Visibility), s.render(a.Type)))
			continue
		}
		fields = append(fields, memberName(a.Name, a.Visibility)+" "+s.render(a.Type))
	}
	fields = append(fields, g.associationFields(c, s, declared)...)

	var chunks []string
	structDecl := fmt.Sprintf("type %s%s struct {\n%s\n}", name, typeParams(c.Generics), generator.Indent(strings.Join(fields, "\n"), 1, 0))
	if len(fields) == 0 {
		structDecl = fmt.Sprintf("type %s%s struct{}", name, typeParams(c.Generics))
	}
	chunks = append(chunks, generator.Lines(strings.Join(doc, "\n"), structDecl))
	if len(statics) > 0 {
		chunks = append(chunks, "var (\n"+generator.Indent(strings.Join(statics, "\n"), 1, 0)+"\n)")
	}

	for i, m := range generator.Constructors(c) {
		chunks = append(chunks, g.constructor(c, m, i, s))
	}

	var abstract []string
	for _, m := range c.Methods {
		mname := memberName(m.Name, m.Visibility)
		sig := fmt.Sprintf("%s(%s)%s", mname, s.params(m.Parameters), s.results(m.Returns()))
		switch {
		case m.IsAbstract:
			abstract = append(abstract, sig)
		case m.IsStatic:
			fn := memberName(name+generator.UpperFirst(m.Name), m.Visibility)
			chunks = append(chunks, g.function(fmt.Sprintf("func %s%s(%s)%s", fn, typeParams(c.Generics), s.params(m.Parameters), s.results(m.Returns())), fn, s, m.Returns()))
		default:
			chunks = append(chunks, g.function(fmt.Sprintf("func (%s *%s) %s", recv, self, sig), mname, s, m.Returns()))
		}
	}
	if len(abstract) > 0 {
		iface := "Abstract" + name
		chunks = append(chunks, fmt.Sprintf("// %s lists the methods %s leaves to implementations.\ntype %s%s interface {\n%s\n}",
			iface, name, iface, typeParams(c.Generics), generator.Indent(strings.Join(abstract, "\n"), 1, 0)))
	}
	return strings.Join(chunks, "\n\n")
}

// associationFields adds a field per owned association whose target is a
// declared entity and not already covered by an attribute. A "many" target
// cardinality yields a slice.
func (g *Generator) associationFields(c *model.Class, s *scope, declared map[string]bool) []string {
	var out []string
	for _, r := range generator.FindAssociations(c, s.d) {
		if s.d.Lookup(r.Target) == nil {
			continue
		}
		fname := generator.LowerFirst(typeName(r.Target))
		typ := s.render(model.TypeRef{Name: r.Target})
		if many(r.TargetCardinality) {
			fname += "s"
			typ = "[]" + typ
		}
		if declared[strings.ToLower(fname)] {
			continue
		}
		declared[strings.ToLower(fname)] = true
		out = append(out, fname+" "+typ)
	}
	return out
}

func many(card string) bool {
	return strings.Contains(card, "*") || strings.Contains(card, "..") || strings.EqualFold(card, "many")
}

func (g *Generator) constructor(c *model.Class, m model.Method, n int, s *scope) string {
	name := typeName(c.Name)
	fn := "New" + name
	if n > 0 {
		parts := make([]string, len(m.Parameters))
		for i, p := range m.Parameters {
			parts[i] = generator.PascalCase(p.Name)
		}
		fn += "With" + strings.Join(parts, "")
	}
	if m.Visibility != model.Public {
		fn = generator.LowerFirst(fn)
	}
	var inits []string
	for _, a := range c.Attributes {
		if a.IsStatic {
			continue
		}
		for _, p := range m.Parameters {
			if p.Name == a.Name {
				inits = append(inits, fmt.Sprintf("%s: %s", memberName(a.Name, a.Visibility), generator.LowerFirst(generator.Identifier(p.Name, ""))))
			}
		}
	}
	self := name + typeArgs(c.Generics)
	body := generator.Placeholder("//", fn) + "\n" + fmt.Sprintf("return &%s{%s}", self, strings.Join(inits, ", "))
	return fmt.Sprintf("// %s creates a %s.\nfunc %s%s(%s) *%s {\n%s\n}", fn, name, fn, typeParams(c.Generics), s.params(m.Parameters), self, generator.Indent(body, 1, 0))
}

func (g *Generator) function(sig, name string, s *scope, ret model.TypeRef) string {
	body := generator.Placeholder("//", name)
	if generator.KindOf(ret) != generator.KindVoid {
		body += "\nreturn " + s.zero(ret)
	}
	return sig + " {\n" + generator.Indent(body, 1, 0) + "\n}"
}

func (g *Generator) Interface(i *model.Interface, d *model.Diagram) string {
	s := newScope(d, i.Generics)
	var lines []string
	for _, p := range generator.FindParentInterfaces(i, d) {
		lines = append(lines, typeName(p.Name))
	}
	for _, m := range i.Methods {
		lines = append(lines, fmt.Sprintf("%s(%s)%s", generator.UpperFirst(m.Name), s.params(m.Parameters), s.results(m.Returns())))
	}
	name := typeName(i.Name)
	if len(lines) == 0 {
		return fmt.Sprintf("type %s%s interface{}", name, typeParams(i.Generics))
	}
	return fmt.Sprintf("type %s%s interface {\n%s\n}", name, typeParams(i.Generics), generator.Indent(strings.Join(lines, "\n"), 1, 0))
}

func (g *Generator) Enum(e *model.Enum, _ *model.Diagram) string {
	name := typeName(e.Name)
	decl := fmt.Sprintf("type %s int", name)
	if len(e.Values) == 0 {
		return decl
	}
	consts := make([]string, len(e.Values))
	quoted := make([]string, len(e.Values))
	for i, v := range e.Values {
		consts[i] = name + generator.PascalCase(v)
		if i == 0 {
			consts[i] += " " + name + " = iota"
		}
		quoted[i] = fmt.Sprintf("%q", v)
	}
	names := generator.LowerFirst(name) + "Names"
	recv := receiver(name)
	str := fmt.Sprintf(`func (%[1]s %[2]s) String() string {
	if %[1]s < 0 || int(%[1]s) >= len(%[3]s) {
		return "%[2]s(" + strconv.Itoa(int(%[1]s)) + ")"
	}
	return %[3]s[%[1]s]
}`, recv, name, names)
	return strings.Join([]string{
		decl,
		"const (\n" + generator.Indent(strings.Join(consts, "\n"), 1, 0) + "\n)",
		fmt.Sprintf("var %s = [...]string{%s}", names, strings.Join(quoted, ", ")),
		str,
	}, "\n\n")
}
