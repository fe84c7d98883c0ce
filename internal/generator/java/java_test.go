package java

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calumari/pumlgen/internal/generator"
	"github.com/calumari/pumlgen/internal/parser"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	out := generator.Generate(parser.Parse(src), New(generator.Options{}))
	require.NotEmpty(t, out)
	return out
}

func TestClass(t *testing.T) {
	t.Run("user scenario", func(t *testing.T) {
		out := generate(t, `@startuml
class User {
  -id: int
  +getName(): String
}
@enduml`)
		assert.Contains(t, out, "public class User {")
		assert.Contains(t, out, "    private int id;")
		assert.Contains(t, out, "    public User() {\n        // TODO: implement User\n    }")
		assert.Contains(t, out, "    public String getName() {\n        // TODO: implement getName\n        return \"\";\n    }")
	})

	t.Run("inheritance and interfaces", func(t *testing.T) {
		out := generate(t, `abstract class Shape {
  {abstract} +area(): double
}
interface Drawable {
  +draw(scale: double): void
}
class Circle {
  {static} {final} -PI: double
  +Circle(r: double)
  +area(): double
}
Circle <|-- Shape
Drawable ..|> Circle
Circle <|.. Missing`)
		assert.Contains(t, out, "public abstract class Shape {")
		assert.Contains(t, out, "    public abstract double area();")
		assert.NotContains(t, out, "public Shape()")
		assert.Contains(t, out, "public class Circle extends Shape implements Drawable {")
		assert.Contains(t, out, "    private static final double PI;")
		assert.Contains(t, out, "    public Circle(double r) {")
		assert.Contains(t, out, "        return 0.0;")
		assert.Contains(t, out, "public interface Drawable {\n    void draw(double scale);\n}")
		assert.NotContains(t, out, "Missing")
	})

	t.Run("generic types box primitives", func(t *testing.T) {
		out := generate(t, `class Repo<T> {
  ~items: List<int>
  #index: Map<String, Integer>
  +all(): T[]
}`)
		assert.Contains(t, out, "public class Repo<T> {")
		assert.Contains(t, out, "    List<Integer> items;")
		assert.Contains(t, out, "    protected Map<String, Integer> index;")
		assert.Contains(t, out, "    public T[] all() {")
		assert.Contains(t, out, "        return null;")
	})
}

func TestEnum(t *testing.T) {
	out := generate(t, "enum Color {\n  RED\n  GREEN\n}")
	assert.Contains(t, out, "public enum Color {\n    RED(0),\n    GREEN(1);\n\n    private final int value;")
	assert.Contains(t, out, "    public int getValue() {\n        return value;\n    }")
}

func TestBanner(t *testing.T) {
	out := generator.Generate(parser.Parse("class A"), New(generator.Options{Banner: true, Source: "a.puml"}))
	assert.True(t, len(out) > 0 && out[:2] == "//")
	assert.Contains(t, out, "// Code generated by pumlgen from a.puml. DO NOT EDIT.\nimport java.math.BigDecimal;")
}
