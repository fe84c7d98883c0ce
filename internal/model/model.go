// Package model holds the intermediate representation shared by the parser
// and the code generators. The records carry no behavior beyond small lookup
// helpers; the parser fills them in one pass and a generator reads them.
package model

// Visibility is the access level of a member.
type Visibility string

const (
	Public         Visibility = "public"
	Private        Visibility = "private"
	Protected      Visibility = "protected"
	PackagePrivate Visibility = "package"
)

// RelationshipType is the kind of edge between two entities.
type RelationshipType string

const (
	Inheritance    RelationshipType = "inheritance"
	Implementation RelationshipType = "implementation"
	Association    RelationshipType = "association"
	Aggregation    RelationshipType = "aggregation"
	Composition    RelationshipType = "composition"
	Dependency     RelationshipType = "dependency"
)

// Entity is implemented by Class, Interface and Enum.
type Entity interface {
	EntityName() string
	PackageName() string
}

// Class is a class declaration.
type Class struct {
	Name         string      `json:"name" yaml:"name" toml:"name"`
	IsAbstract   bool        `json:"abstract,omitempty" yaml:"abstract,omitempty" toml:"abstract,omitempty"`
	Package      string      `json:"package,omitempty" yaml:"package,omitempty" toml:"package,omitempty"`
	Stereotypes  []string    `json:"stereotypes,omitempty" yaml:"stereotypes,omitempty" toml:"stereotypes,omitempty"`
	Generics     []string    `json:"generics,omitempty" yaml:"generics,omitempty" toml:"generics,omitempty"`
	Attributes   []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty" toml:"attributes,omitempty"`
	Constructors []Method    `json:"constructors,omitempty" yaml:"constructors,omitempty" toml:"constructors,omitempty"`
	Methods      []Method    `json:"methods,omitempty" yaml:"methods,omitempty" toml:"methods,omitempty"`
}

func (c *Class) EntityName() string  { return c.Name }
func (c *Class) PackageName() string { return c.Package }

// Interface is an interface declaration. Interfaces have no attributes and
// no constructors.
type Interface struct {
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Package     string   `json:"package,omitempty" yaml:"package,omitempty" toml:"package,omitempty"`
	Stereotypes []string `json:"stereotypes,omitempty" yaml:"stereotypes,omitempty" toml:"stereotypes,omitempty"`
	Generics    []string `json:"generics,omitempty" yaml:"generics,omitempty" toml:"generics,omitempty"`
	Methods     []Method `json:"methods,omitempty" yaml:"methods,omitempty" toml:"methods,omitempty"`
}

func (i *Interface) EntityName() string  { return i.Name }
func (i *Interface) PackageName() string { return i.Package }

// Enum is an enumeration with plain named values.
type Enum struct {
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Package     string   `json:"package,omitempty" yaml:"package,omitempty" toml:"package,omitempty"`
	Stereotypes []string `json:"stereotypes,omitempty" yaml:"stereotypes,omitempty" toml:"stereotypes,omitempty"`
	Values      []string `json:"values,omitempty" yaml:"values,omitempty" toml:"values,omitempty"`
}

func (e *Enum) EntityName() string  { return e.Name }
func (e *Enum) PackageName() string { return e.Package }

// Attribute is a field of a class.
type Attribute struct {
	Name       string     `json:"name" yaml:"name" toml:"name"`
	Type       TypeRef    `json:"type" yaml:"type" toml:"type"`
	Visibility Visibility `json:"visibility" yaml:"visibility" toml:"visibility"`
	IsStatic   bool       `json:"static,omitempty" yaml:"static,omitempty" toml:"static,omitempty"`
	IsFinal    bool       `json:"final,omitempty" yaml:"final,omitempty" toml:"final,omitempty"`
}

// Method is a method or, when ReturnType is nil, a constructor.
type Method struct {
	Name       string      `json:"name" yaml:"name" toml:"name"`
	ReturnType *TypeRef    `json:"returnType,omitempty" yaml:"returnType,omitempty" toml:"returnType,omitempty"`
	Parameters []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty" toml:"parameters,omitempty"`
	Visibility Visibility  `json:"visibility" yaml:"visibility" toml:"visibility"`
	IsStatic   bool        `json:"static,omitempty" yaml:"static,omitempty" toml:"static,omitempty"`
	IsAbstract bool        `json:"abstract,omitempty" yaml:"abstract,omitempty" toml:"abstract,omitempty"`
}

// IsConstructor reports whether m has no return type.
func (m Method) IsConstructor() bool { return m.ReturnType == nil }

// Returns is the declared return type, or void for constructors.
func (m Method) Returns() TypeRef {
	if m.ReturnType == nil {
		return TypeRef{Name: "void"}
	}
	return *m.ReturnType
}

// Parameter is a single method parameter.
type Parameter struct {
	Name string  `json:"name" yaml:"name" toml:"name"`
	Type TypeRef `json:"type" yaml:"type" toml:"type"`
}

// Relationship is a typed edge stored in canonical direction. Source and
// Target are entity names; they are resolved lazily by the generators.
type Relationship struct {
	Source            string           `json:"source" yaml:"source" toml:"source"`
	Target            string           `json:"target" yaml:"target" toml:"target"`
	Type              RelationshipType `json:"type" yaml:"type" toml:"type"`
	Label             string           `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	SourceCardinality string           `json:"sourceCardinality,omitempty" yaml:"sourceCardinality,omitempty" toml:"sourceCardinality,omitempty"`
	TargetCardinality string           `json:"targetCardinality,omitempty" yaml:"targetCardinality,omitempty" toml:"targetCardinality,omitempty"`
}
