package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calumari/pumlgen/internal/generator"
	"github.com/calumari/pumlgen/internal/parser"
)

func generate(src string) string {
	return generator.Generate(parser.Parse(src), New(generator.Options{}))
}

func TestClass(t *testing.T) {
	t.Run("user scenario", func(t *testing.T) {
		out := generate("class User {\n-id: int\n+getName(): String\n}")
		assert.Contains(t, out, "package model\n")
		assert.Contains(t, out, `type User struct {
	id int
}

// NewUser creates a User.
func NewUser() *User {
	// TODO: implement NewUser
	return &User{}
}

func (u *User) GetName() string {
	// TODO: implement GetName
	return ""
}`)
	})

	t.Run("parent is embedded and abstract methods form an interface", func(t *testing.T) {
		out := generate(`class Shape {
  {abstract} +area(): double
  #name: String
}
class Circle {
  +radius: double
}
interface Drawable {
  +draw(scale: double)
}
Circle <|-- Shape
Drawable ..|> Circle`)
		assert.Regexp(t, `// Circle implements Drawable\.\ntype Circle struct \{\n\tShape\n\tRadius\s+float64\n\}`, out)
		assert.Contains(t, out, "type Shape struct {\n\tname string\n}")
		assert.Contains(t, out, "type AbstractShape interface {\n\tArea() float64\n}")
		assert.Contains(t, out, "type Drawable interface {\n\tDraw(scale float64)\n}")
		assert.NotContains(t, out, "func NewShape")
		assert.Contains(t, out, "return &Circle{}")
	})

	t.Run("generics, statics and zero values", func(t *testing.T) {
		out := generate(`class Repo<T> {
  {static} -instances: int
  +Repo(name: String)
  +Repo(name: String, size: int)
  -name: String
  +find(id: long): T
  +all(): List<T>
  +owner(): Owner
  +color(): Color
  {static} +create(): Repo<T>
}
class Owner
enum Color {
  RED
}`)
		assert.Contains(t, out, "type Repo[T any] struct {\n\tname string\n}")
		assert.Contains(t, out, "var (\n\trepoInstances int\n)")
		assert.Contains(t, out, "func NewRepo[T any](name string) *Repo[T] {\n\t// TODO: implement NewRepo\n\treturn &Repo[T]{name: name}\n}")
		assert.Contains(t, out, "func NewRepoWithNameSize[T any](name string, size int) *Repo[T] {")
		assert.Contains(t, out, "func (r *Repo[T]) Find(id int64) T {\n\t// TODO: implement Find\n\treturn *new(T)\n}")
		assert.Contains(t, out, "func (r *Repo[T]) All() []T {\n\t// TODO: implement All\n\treturn nil\n}")
		assert.Contains(t, out, "func (r *Repo[T]) Owner() *Owner {\n\t// TODO: implement Owner\n\treturn nil\n}")
		assert.Contains(t, out, "func (r *Repo[T]) Color() Color {\n\t// TODO: implement Color\n\treturn 0\n}")
		assert.Contains(t, out, "func RepoCreate[T any]() *Repo[T] {")
	})

	t.Run("associations become fields", func(t *testing.T) {
		out := generate(`class House
class Room
class Owner
House "1" *-- "many" Room : contains
House --> Owner`)
		assert.Regexp(t, `type House struct \{\n\trooms\s+\[\]\*Room\n\towner\s+\*Owner\n\}`, out)
	})
}

func TestEnum(t *testing.T) {
	out := generate("enum Color {\n  RED, DARK_BLUE\n}")
	assert.Contains(t, out, "import \"strconv\"")
	assert.Contains(t, out, "type Color int")
	assert.Regexp(t, `const \(\n\tColorRed\s+Color = iota\n\tColorDarkBlue\n\)`, out)
	assert.Contains(t, out, `var colorNames = [...]string{"RED", "DARK_BLUE"}`)
	assert.Contains(t, out, "func (c Color) String() string {")
}

func TestHeader(t *testing.T) {
	g := New(generator.Options{PackageName: "shop-api", Banner: true})
	out := generator.Generate(parser.Parse("class A"), g)
	assert.Contains(t, out, "// Code generated by pumlgen. DO NOT EDIT.\n\npackage shop_api\n")
}

func TestFormatKeepsInvalidSource(t *testing.T) {
	assert.Equal(t, "not go", New(generator.Options{}).Format("not go"))
}

func TestSymbolOnlyNames(t *testing.T) {
	for _, src := range []string{"class _ {\n+run()\n}", "class $ {\n}", "enum _ {\nA\n}"} {
		t.Run(src, func(t *testing.T) {
			var out string
			assert.NotPanics(t, func() { out = generate(src) })
			assert.Contains(t, out, "type Type ")
		})
	}

	out := generate("enum $$ {\nA\n}")
	assert.Contains(t, out, "func (t Type) String() string {")
}
