package kotlin

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
		assert.Contains(t, out, "class User() {\n    private var id: Int = 0\n\n    fun getName(): String {\n        // TODO: implement getName\n        return \"\"\n    }\n}")
	})

	t.Run("parents, constructors and companion members", func(t *testing.T) {
		out := generate(`class Base {
}
interface Named {
  +name(): String
}
class Item extends Base implements Named {
  {static} {final} +MAX: int
  -tags: List<String>
  +Item(id: long)
  {static} +create(): Item
  +weight(): float
}`)
		assert.Contains(t, out, "open class Base() {\n}")
		assert.Contains(t, out, "class Item : Base, Named {")
		assert.Contains(t, out, "    private var tags: List<String>? = null")
		assert.Contains(t, out, "    constructor(id: Long) : super() {\n        // TODO: implement constructor\n    }")
		assert.Contains(t, out, "        return 0.0f")
		assert.Contains(t, out, "    companion object {\n        val MAX: Int = 0\n\n        fun create(): Item? {")
		assert.Contains(t, out, "interface Named {\n    fun name(): String\n}")
	})

	t.Run("abstract members have no body", func(t *testing.T) {
		out := generate("abstract class Shape {\n{abstract} #area(): double\n+log(msg: String)\n}")
		assert.Contains(t, out, "abstract class Shape {")
		assert.Contains(t, out, "    protected abstract fun area(): Double\n")
		assert.Contains(t, out, "    fun log(msg: String) {\n        // TODO: implement log\n    }")
	})
}

func TestEnum(t *testing.T) {
	out := generate("enum Level {\nLOW, HIGH\n}")
	assert.Contains(t, out, "enum class Level(val value: Int) {\n    LOW(0),\n    HIGH(1);\n}")
}
