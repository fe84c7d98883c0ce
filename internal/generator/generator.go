// Package generator renders a parsed diagram as source code.
//
// A target language is a Generator: a value exposing rendering hooks for
// headers, packages and entities. Generate owns the traversal and the
// layout between chunks; generators only shape individual declarations.
package generator

import (
	"strings"

	"github.com/calumari/pumlgen/internal/model"
)

// Generator renders entities for one target language.
type Generator interface {
	Language() string
	FileExtension() string
	// IndentSize is the number of spaces per level. Zero means a tab.
	IndentSize() int

	Header(d *model.Diagram) string
	Footer(d *model.Diagram) string

	SupportsPackages() bool
	PackageStart(name string) string
	PackageEnd(name string) string

	Class(c *model.Class, d *model.Diagram) string
	Interface(i *model.Interface, d *model.Diagram) string
	Enum(e *model.Enum, d *model.Diagram) string
}

// Formatter is implemented by generators that post-process the complete
// output, for example with a language formatter.
type Formatter interface {
	Format(src string) string
}

// Generate walks d and returns the generated source for g. Package members
// are indented one level inside their wrapper. Names listed in a package
// that resolve to no entity are skipped.
func Generate(d *model.Diagram, g Generator) string {
	var chunks []string
	add := func(s string) {
		if s = strings.Trim(s, "\n"); s != "" {
			chunks = append(chunks, s)
		}
	}

	add(g.Header(d))
	if g.SupportsPackages() {
		for _, p := range d.Packages {
			add(renderPackage(d, g, p))
		}
		packaged := d.Packaged()
		for _, c := range d.Classes {
			if !packaged[c.Name] {
				add(g.Class(c, d))
			}
		}
		for _, i := range d.Interfaces {
			if !packaged[i.Name] {
				add(g.Interface(i, d))
			}
		}
		for _, e := range d.Enums {
			if !packaged[e.Name] {
				add(g.Enum(e, d))
			}
		}
	} else {
		for _, c := range d.Classes {
			add(g.Class(c, d))
		}
		for _, i := range d.Interfaces {
			add(g.Interface(i, d))
		}
		for _, e := range d.Enums {
			add(g.Enum(e, d))
		}
	}
	add(g.Footer(d))

	out := strings.Join(chunks, "\n\n") + "\n"
	if f, ok := g.(Formatter); ok {
		out = f.Format(out)
	}
	return out
}

func renderPackage(d *model.Diagram, g Generator, p *model.Package) string {
	var members []string
	for _, name := range p.Members {
		var text string
		switch e := d.Lookup(name).(type) {
		case *model.Class:
			text = g.Class(e, d)
		case *model.Interface:
			text = g.Interface(e, d)
		case *model.Enum:
			text = g.Enum(e, d)
		default:
			continue
		}
		if text = strings.Trim(text, "\n"); text != "" {
			members = append(members, Indent(text, 1, g.IndentSize()))
		}
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimRight(g.PackageStart(p.Name), "\n"))
	sb.WriteByte('\n')
	if len(members) > 0 {
		sb.WriteString(strings.Join(members, "\n\n"))
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.TrimLeft(g.PackageEnd(p.Name), "\n"))
	return sb.String()
}

// Indent prefixes every non-empty line of text with level indentation
// units of size spaces, or tabs when size is zero.
func Indent(text string, level, size int) string {
	if level <= 0 {
		return text
	}
	unit := "\t"
	if size > 0 {
		unit = strings.Repeat(" ", size)
	}
	prefix := strings.Repeat(unit, level)
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if strings.TrimSpace(l) != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}

// Lines joins non-empty parts with newlines. Generators use it to assemble
// declarations from optional pieces.
func Lines(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}
