package generator

import "github.com/calumari/pumlgen/internal/model"

// FindParentClass returns the class c inherits from. Only the first
// inheritance relationship with c as source is considered; nil is returned
// when there is none or its target is not a declared class.
func FindParentClass(c *model.Class, d *model.Diagram) *model.Class {
	for _, r := range d.Relationships {
		if r.Type == model.Inheritance && r.Source == c.Name {
			return d.Class(r.Target)
		}
	}
	return nil
}

// FindImplementedInterfaces returns the declared interfaces c implements,
// in relationship order. Unresolvable targets are skipped.
func FindImplementedInterfaces(c *model.Class, d *model.Diagram) []*model.Interface {
	var out []*model.Interface
	seen := make(map[string]bool)
	for _, r := range d.Relationships {
		if r.Type != model.Implementation || r.Source != c.Name || seen[r.Target] {
			continue
		}
		if i := d.Interface(r.Target); i != nil {
			seen[r.Target] = true
			out = append(out, i)
		}
	}
	return out
}

// FindParentInterfaces returns the declared interfaces i extends.
func FindParentInterfaces(i *model.Interface, d *model.Diagram) []*model.Interface {
	var out []*model.Interface
	seen := make(map[string]bool)
	for _, r := range d.Relationships {
		if r.Type != model.Inheritance || r.Source != i.Name || seen[r.Target] {
			continue
		}
		if p := d.Interface(r.Target); p != nil {
			seen[r.Target] = true
			out = append(out, p)
		}
	}
	return out
}

// FindAssociations returns the association, aggregation and composition
// relationships owned by c.
func FindAssociations(c *model.Class, d *model.Diagram) []model.Relationship {
	var out []model.Relationship
	for _, r := range d.Relationships {
		if r.Source != c.Name {
			continue
		}
		switch r.Type {
		case model.Association, model.Aggregation, model.Composition:
			out = append(out, r)
		}
	}
	return out
}

// IsAbstract reports whether c is declared abstract or has an abstract
// method.
func IsAbstract(c *model.Class) bool {
	if c.IsAbstract {
		return true
	}
	for _, m := range c.Methods {
		if m.IsAbstract {
			return true
		}
	}
	return false
}

// Constructors returns the declared constructors of c, or a single
// parameterless constructor when none is declared and c is concrete.
func Constructors(c *model.Class) []model.Method {
	if len(c.Constructors) > 0 || IsAbstract(c) {
		return c.Constructors
	}
	return []model.Method{{Name: c.Name, Visibility: model.Public}}
}
