package model

// Diagram aggregates everything recovered from one diagram text.
type Diagram struct {
	Classes       []*Class       `json:"classes,omitempty" yaml:"classes,omitempty" toml:"classes,omitempty"`
	Interfaces    []*Interface   `json:"interfaces,omitempty" yaml:"interfaces,omitempty" toml:"interfaces,omitempty"`
	Enums         []*Enum        `json:"enums,omitempty" yaml:"enums,omitempty" toml:"enums,omitempty"`
	Relationships []Relationship `json:"relationships,omitempty" yaml:"relationships,omitempty" toml:"relationships,omitempty"`
	Packages      []*Package     `json:"packages,omitempty" yaml:"packages,omitempty" toml:"packages,omitempty"`
}

// Package lists entity names in declaration order. Members are not checked
// against declared entities; generators skip names that do not resolve.
type Package struct {
	Name    string   `json:"name" yaml:"name" toml:"name"`
	Members []string `json:"members" yaml:"members" toml:"members"`
}

// NewDiagram returns an empty diagram.
func NewDiagram() *Diagram { return &Diagram{} }

// Package returns the named package or nil.
func (d *Diagram) Package(name string) *Package {
	for _, p := range d.Packages {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// AddPackage registers name and returns its bucket. A package that already
// exists keeps its members.
func (d *Diagram) AddPackage(name string) *Package {
	if p := d.Package(name); p != nil {
		return p
	}
	p := &Package{Name: name, Members: []string{}}
	d.Packages = append(d.Packages, p)
	return p
}

// AddToPackage appends entity to pkg, registering pkg if needed.
func (d *Diagram) AddToPackage(pkg, entity string) {
	p := d.AddPackage(pkg)
	p.Members = append(p.Members, entity)
}

// Class returns the first class named name.
func (d *Diagram) Class(name string) *Class {
	for _, c := range d.Classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Interface returns the first interface named name.
func (d *Diagram) Interface(name string) *Interface {
	for _, i := range d.Interfaces {
		if i.Name == name {
			return i
		}
	}
	return nil
}

// Enum returns the first enum named name.
func (d *Diagram) Enum(name string) *Enum {
	for _, e := range d.Enums {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Lookup resolves name among classes, then interfaces, then enums.
func (d *Diagram) Lookup(name string) Entity {
	if c := d.Class(name); c != nil {
		return c
	}
	if i := d.Interface(name); i != nil {
		return i
	}
	if e := d.Enum(name); e != nil {
		return e
	}
	return nil
}

// Packaged returns the set of names listed in any package.
func (d *Diagram) Packaged() map[string]bool {
	seen := make(map[string]bool)
	for _, p := range d.Packages {
		for _, m := range p.Members {
			seen[m] = true
		}
	}
	return seen
}
