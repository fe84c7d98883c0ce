package rust

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
		assert.Equal(t, `use std::collections::{HashMap, HashSet};

#[derive(Debug, Clone, Default)]
pub struct User {
    id: i32,
}

impl User {
    pub fn new() -> Self {
        // TODO: implement new
        Self {
            id: 0,
        }
    }

    pub fn get_name(&self) -> String {
        // TODO: implement get_name
        String::new()
    }
}
`, out)
	})

	t.Run("statics, parents, traits and constructors", func(t *testing.T) {
		out := generate(`class Base
class Account {
  {static} +MAX_COUNT: int
  {static} -registry: Map<String, int>
  +owner: String
  -handler: Runnable
  +Account(owner: String)
  +Account(owner: String, limit: double)
  {abstract} +balance(): double
  {static} +open(): Account
}
interface Runnable {
  +run()
}
interface Audited {
  +audit(level: int): boolean
}
Account <|-- Base
Audited ..|> Account`)
		assert.Contains(t, out, "pub struct Account {\n    base: Base,\n    pub owner: String,\n    handler: Option<Box<dyn Runnable>>,\n}")
		assert.NotContains(t, out, "#[derive(Debug, Clone, Default)]\npub struct Account")
		assert.Contains(t, out, "    pub const MAX_COUNT: i32 = 0;\n    fn registry() -> HashMap<String, i32> {\n        HashMap::new()\n    }")
		assert.Contains(t, out, "    pub fn new(owner: String) -> Self {\n        // TODO: implement new\n        Self {\n            base: Default::default(),\n            owner,\n            handler: None,\n        }\n    }")
		assert.Contains(t, out, "    pub fn from_owner_and_limit(owner: String, limit: f64) -> Self {")
		assert.Contains(t, out, "    pub fn open() -> Account {\n        // TODO: implement open\n        Default::default()\n    }")
		assert.Contains(t, out, "pub trait AbstractAccount {\n    fn balance(&self) -> f64;\n}")
		assert.Contains(t, out, "impl Audited for Account {\n    fn audit(&self, level: i32) -> bool {\n        // TODO: implement audit\n        false\n    }\n}")
		assert.Contains(t, out, "pub trait Runnable {\n    fn run(&self);\n}")
	})

	t.Run("generic impl blocks require Default", func(t *testing.T) {
		out := generate("class Stack<T> {\n-items: List<T>\n+peek(): Optional<T>\n}")
		assert.Contains(t, out, "pub struct Stack<T> {\n    items: Vec<T>,\n}")
		assert.Contains(t, out, "impl<T: Default> Stack<T> {")
		assert.Contains(t, out, "            items: Vec::new(),")
		assert.Contains(t, out, "    pub fn peek(&self) -> Option<T> {\n        // TODO: implement peek\n        None\n    }")
	})
}

func TestModulesAndEnums(t *testing.T) {
	out := generate(`package billing.core {
  enum Status {
    NEW_ORDER, SHIPPED
  }
}
enum Empty {
}`)
	assert.Contains(t, out, "pub mod billing_core {\n    use super::*;\n    #[derive(Debug, Clone, Copy, PartialEq, Eq, Hash, Default)]\n    pub enum Status {\n        #[default]\n        NewOrder = 0,\n        Shipped = 1,\n    }\n}")
	assert.Contains(t, out, "#[derive(Debug, Clone, Copy, PartialEq, Eq, Hash)]\npub enum Empty {\n}")
}
