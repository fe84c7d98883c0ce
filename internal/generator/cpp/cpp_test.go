package cpp

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
	t.Run("members are grouped by access", func(t *testing.T) {
		out := generate("class User {\n-id: int\n+getName(): String\n}")
		assert.Contains(t, out, `class User {
public:
    User() {
        // TODO: implement User
    }
    std::string getName() {
        // TODO: implement getName
        return "";
    }

private:
    int id{};
};`)
	})

	t.Run("abstract and static members", func(t *testing.T) {
		out := generate(`interface Drawable {
  +draw(): void
}
class Canvas<T> implements Drawable {
  {static} #count: long
  {final} -items: List<T>
  {abstract} +render(scale: double): bool
  {static} +make(): Canvas
}`)
		assert.Contains(t, out, "template <typename T>\nclass Canvas : public Drawable {\npublic:\n    virtual ~Canvas() = default;")
		assert.Contains(t, out, "    virtual bool render(double scale) = 0;")
		assert.Contains(t, out, "    static Canvas make() {\n        // TODO: implement make\n        return {};\n    }")
		assert.Contains(t, out, "protected:\n    inline static long long count{};")
		assert.Contains(t, out, "private:\n    const std::vector<T> items{};")
		assert.Contains(t, out, "class Drawable {\npublic:\n    virtual ~Drawable() = default;\n    virtual void draw() = 0;\n};")
	})
}

func TestNamespaces(t *testing.T) {
	out := generate("package app.model {\nenum Mode {\nON\nOFF\n}\n}")
	assert.Contains(t, out, "namespace app::model {\n    enum class Mode {\n        ON = 0,\n        OFF = 1,\n    };\n} // namespace app::model")
	assert.Contains(t, out, "#pragma once")
}
