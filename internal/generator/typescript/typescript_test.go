package typescript

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
		assert.Contains(t, out, `export class User {
  private id?: number;

  constructor() {
    // TODO: implement constructor
  }

  public getName(): string {
    // TODO: implement getName
    return "";
  }
}`)
	})

	t.Run("subclass calls super and overloads constructors", func(t *testing.T) {
		out := generate(`class Base {
}
class Item extends Base {
  {static} {final} +LIMIT: int
  +Item()
  +Item(name: String, tags: List<String>)
  {abstract} #weigh(): Optional<double>
  +find(id: int): Item
}`)
		assert.Contains(t, out, "export abstract class Item extends Base {")
		assert.Contains(t, out, "  public static readonly LIMIT?: number;")
		assert.Contains(t, out, "  constructor();\n  constructor(name: string, tags: string[]);\n  constructor(...args: any[]) {\n    super();\n    // TODO: implement constructor\n  }")
		assert.Contains(t, out, "  protected abstract weigh(): number | undefined | null;")
		assert.Contains(t, out, "  public find(id: number): Item | null {\n    // TODO: implement find\n    return null;\n  }")
	})
}

func TestNamespaces(t *testing.T) {
	out := generate(`package shop {
  interface Priced {
    +price(): double
  }
  enum Tier {
    GOLD
  }
}`)
	assert.Contains(t, out, "export namespace shop {\n  export interface Priced {\n    price(): number;\n  }\n\n  export enum Tier {\n    GOLD = 0,\n  }\n}")
}
