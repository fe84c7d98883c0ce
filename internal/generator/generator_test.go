package generator

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calumari/pumlgen/internal/model"
)

// traceGen renders each hook as a single recognizable line.
type traceGen struct {
	packages bool
	indent   int
}

func (traceGen) Language() string                { return "trace" }
func (traceGen) FileExtension() string           { return "txt" }
func (g traceGen) IndentSize() int               { return g.indent }
func (traceGen) Header(*model.Diagram) string    { return "header" }
func (traceGen) Footer(*model.Diagram) string    { return "" }
func (g traceGen) SupportsPackages() bool        { return g.packages }
func (traceGen) PackageStart(name string) string { return "begin " + name }
func (traceGen) PackageEnd(name string) string   { return "end " + name }
func (traceGen) Enum(e *model.Enum, _ *model.Diagram) string {
	return "enum " + e.Name
}

func (traceGen) Class(c *model.Class, _ *model.Diagram) string {
	return fmt.Sprintf("class %s {\n  body\n}", c.Name)
}

func (traceGen) Interface(i *model.Interface, _ *model.Diagram) string {
	return "interface " + i.Name
}

type upperGen struct{ traceGen }

func (upperGen) Format(src string) string { return strings.ToUpper(src) }

func sampleDiagram() *model.Diagram {
	d := model.NewDiagram()
	d.Classes = []*model.Class{{Name: "A", Package: "p"}, {Name: "B"}}
	d.Interfaces = []*model.Interface{{Name: "I", Package: "p"}}
	d.Enums = []*model.Enum{{Name: "E"}}
	d.AddToPackage("p", "I")
	d.AddToPackage("p", "A")
	return d
}

func TestGenerate(t *testing.T) {
	t.Run("without package support emits declaration order", func(t *testing.T) {
		out := Generate(sampleDiagram(), traceGen{indent: 2})
		require.Equal(t, "header\n\nclass A {\n  body\n}\n\nclass B {\n  body\n}\n\ninterface I\n\nenum E\n", out)
	})

	t.Run("with package support wraps and indents members", func(t *testing.T) {
		out := Generate(sampleDiagram(), traceGen{packages: true, indent: 2})
		require.Equal(t, "header\n\nbegin p\n  interface I\n\n  class A {\n    body\n  }\nend p\n\nclass B {\n  body\n}\n\nenum E\n", out)
	})

	t.Run("orphan package members are skipped", func(t *testing.T) {
		d := sampleDiagram()
		d.AddToPackage("p", "Missing")
		d.AddToPackage("empty", "Ghost")
		out := Generate(d, traceGen{packages: true, indent: 2})
		assert.NotContains(t, out, "Missing")
		assert.NotContains(t, out, "Ghost")
		assert.Contains(t, out, "begin empty\nend empty")
	})

	t.Run("formatter is applied to the whole output", func(t *testing.T) {
		out := Generate(sampleDiagram(), upperGen{})
		assert.True(t, strings.HasPrefix(out, "HEADER"))
	})
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "    a\n\n    b", Indent("a\n\nb", 2, 2))
	assert.Equal(t, "\ta", Indent("a", 1, 0))
	assert.Equal(t, "a", Indent("a", 0, 4))
}

func TestLookups(t *testing.T) {
	d := model.NewDiagram()
	base := &model.Class{Name: "Base"}
	child := &model.Class{Name: "Child", Methods: []model.Method{{Name: "run", IsAbstract: true}}}
	runnable := &model.Interface{Name: "Runnable"}
	named := &model.Interface{Name: "Named"}
	d.Classes = []*model.Class{base, child}
	d.Interfaces = []*model.Interface{runnable, named}
	d.Relationships = []model.Relationship{
		{Source: "Child", Target: "Base", Type: model.Inheritance},
		{Source: "Child", Target: "Other", Type: model.Inheritance},
		{Source: "Child", Target: "Runnable", Type: model.Implementation},
		{Source: "Child", Target: "Missing", Type: model.Implementation},
		{Source: "Child", Target: "Runnable", Type: model.Implementation},
		{Source: "Runnable", Target: "Named", Type: model.Inheritance},
		{Source: "Child", Target: "Base", Type: model.Composition, Label: "owns"},
		{Source: "Child", Target: "Base", Type: model.Dependency},
	}

	t.Run("parent class honors the first inheritance", func(t *testing.T) {
		assert.Same(t, base, FindParentClass(child, d))
		assert.Nil(t, FindParentClass(base, d))
	})

	t.Run("unresolvable parent is nil", func(t *testing.T) {
		d := model.NewDiagram()
		d.Classes = []*model.Class{child}
		d.Relationships = []model.Relationship{{Source: "Child", Target: "Gone", Type: model.Inheritance}}
		assert.Nil(t, FindParentClass(child, d))
	})

	t.Run("implemented interfaces skip missing and duplicates", func(t *testing.T) {
		assert.Equal(t, []*model.Interface{runnable}, FindImplementedInterfaces(child, d))
	})

	t.Run("parent interfaces", func(t *testing.T) {
		assert.Equal(t, []*model.Interface{named}, FindParentInterfaces(runnable, d))
	})

	t.Run("associations exclude dependencies", func(t *testing.T) {
		got := FindAssociations(child, d)
		require.Len(t, got, 1)
		assert.Equal(t, "owns", got[0].Label)
	})

	t.Run("abstract methods make a class abstract", func(t *testing.T) {
		assert.True(t, IsAbstract(child))
		assert.False(t, IsAbstract(base))
	})

	t.Run("concrete classes get a default constructor", func(t *testing.T) {
		ctors := Constructors(base)
		require.Len(t, ctors, 1)
		assert.Empty(t, ctors[0].Parameters)
		assert.Empty(t, Constructors(child))
	})
}

func TestTypeMap(t *testing.T) {
	m := TypeMap{
		Names: map[string]string{"string": "str", "integer": "int", "object": "Any"},
		Containers: map[string]func([]string) string{
			"list": func(a []string) string { return Square("list", a) },
		},
		Array:   func(e string) string { return "list[" + e + "]" },
		Unknown: "Any",
	}

	tests := []struct {
		in   string
		want string
	}{
		{"String", "str"},
		{"STRING", "str"},
		{"User", "User"},
		{"List<Integer>", "list[int]"},
		{"List<List<String>>", "list[list[str]]"},
		{"int[]", "list[int]"},
		{"Repo<User>", "Repo"},
		{"", "Any"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Render(model.ParseType(tt.in)))
		})
	}

	t.Run("generic renderer keeps user generics", func(t *testing.T) {
		m.Generic = Angle
		assert.Equal(t, "Repo<User, int>", m.Render(model.ParseType("Repo<User, Integer>")))
	})
}

func TestKindOf(t *testing.T) {
	tests := map[string]Kind{
		"boolean":      KindBool,
		"Integer":      KindInteger,
		"double":       KindFloat,
		"char":         KindChar,
		"String":       KindString,
		"void":         KindVoid,
		"User":         KindOther,
		"int[]":        KindOther,
		"List<String>": KindOther,
	}
	for in, want := range tests {
		assert.Equal(t, want, KindOf(model.ParseType(in)), in)
	}
}

func TestTemplates(t *testing.T) {
	require.NoError(t, ensureTemplates())

	t.Run("banner", func(t *testing.T) {
		got := Banner("//", Options{Banner: true, Version: "v1.2.0", Source: "shop.puml"})
		assert.Equal(t, "// Code generated by pumlgen v1.2.0 from shop.puml. DO NOT EDIT.", got)
		assert.Equal(t, "# Code generated by pumlgen. DO NOT EDIT.", Banner("#", Options{Banner: true}))
		assert.Empty(t, Banner("//", Options{}))
	})

	t.Run("placeholder", func(t *testing.T) {
		assert.Equal(t, "// TODO: implement run", Placeholder("//", "run"))
	})
}

func TestCasing(t *testing.T) {
	assert.Equal(t, "GetName", UpperFirst("getName"))
	assert.Equal(t, "getName", LowerFirst("GetName"))
	assert.Equal(t, "get_name", SnakeCase("getName"))
	assert.Equal(t, "parse_http_request", SnakeCase("parseHTTPRequest"))
	assert.Equal(t, "MAX_SIZE", ScreamingSnakeCase("maxSize"))
	assert.Equal(t, "DarkBlue", PascalCase("DARK_BLUE"))
	assert.Equal(t, "Red", PascalCase("RED"))
	assert.Equal(t, "GetName", PascalCase("getName"))
	assert.Equal(t, "", SnakeCase(""))
}

func TestBlock(t *testing.T) {
	t.Run("sections are separated by a blank line", func(t *testing.T) {
		got := Block("class A {", "}", 2,
			Section{Items: []string{"int a;", "int b;"}},
			Section{},
			Section{Items: []string{"void x() {\n}", "void y() {\n}"}, Spaced: true},
		)
		require.Equal(t, "class A {\n  int a;\n  int b;\n\n  void x() {\n  }\n\n  void y() {\n  }\n}", got)
	})

	t.Run("empty block", func(t *testing.T) {
		require.Equal(t, "class A {\n}", Block("class A {", "}", 4))
	})

	t.Run("no closing line", func(t *testing.T) {
		require.Equal(t, "class A:\n    pass", Block("class A:", "", 4, Section{Items: []string{"pass"}}))
	})
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "com.example", Identifier("com.example", "."))
	assert.Equal(t, "my_pkg", Identifier("my pkg", ""))
	assert.Equal(t, "a_b", Identifier("a.b", ""))
	assert.Equal(t, "shop.order_items", Identifier("shop.order-items", "."))
}

func TestSourcesAreFormatted(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	for _, name := range files {
		src, err := os.ReadFile(name)
		require.NoError(t, err)
		formatted, err := format.Source(src)
		require.NoError(t, err, name)
		assert.Equal(t, string(formatted), string(src), "%s is not gofmt-formatted", name)
	}
}
