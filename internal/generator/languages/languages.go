// Package languages maps target language names and aliases to generators.
package languages

import (
	"slices"
	"strings"

	"github.com/calumari/pumlgen/internal/errors"
	"github.com/calumari/pumlgen/internal/generator"
	"github.com/calumari/pumlgen/internal/generator/cpp"
	"github.com/calumari/pumlgen/internal/generator/csharp"
	"github.com/calumari/pumlgen/internal/generator/golang"
	"github.com/calumari/pumlgen/internal/generator/java"
	"github.com/calumari/pumlgen/internal/generator/kotlin"
	"github.com/calumari/pumlgen/internal/generator/python"
	"github.com/calumari/pumlgen/internal/generator/rust"
	"github.com/calumari/pumlgen/internal/generator/typescript"
)

// All selects every registered language.
const All = "all"

// Language describes one registered target.
type Language struct {
	Key     string
	Aliases []string
	New     func(generator.Options) generator.Generator
}

var registry = []Language{
	{Key: "java", New: func(o generator.Options) generator.Generator { return java.New(o) }},
	{Key: "kotlin", Aliases: []string{"kt"}, New: func(o generator.Options) generator.Generator { return kotlin.New(o) }},
	{Key: "csharp", Aliases: []string{"cs", "c#"}, New: func(o generator.Options) generator.Generator { return csharp.New(o) }},
	{Key: "cpp", Aliases: []string{"c++", "cxx"}, New: func(o generator.Options) generator.Generator { return cpp.New(o) }},
	{Key: "typescript", Aliases: []string{"ts"}, New: func(o generator.Options) generator.Generator { return typescript.New(o) }},
	{Key: "python", Aliases: []string{"py"}, New: func(o generator.Options) generator.Generator { return python.New(o) }},
	{Key: "go", Aliases: []string{"golang"}, New: func(o generator.Options) generator.Generator { return golang.New(o) }},
	{Key: "rust", Aliases: []string{"rs"}, New: func(o generator.Options) generator.Generator { return rust.New(o) }},
}

// Keys returns the canonical language keys in sorted order.
func Keys() []string {
	keys := make([]string, len(registry))
	for i, l := range registry {
		keys[i] = l.Key
	}
	slices.Sort(keys)
	return keys
}

// List returns every registered language, sorted by key.
func List() []Language {
	out := slices.Clone(registry)
	slices.SortFunc(out, func(a, b Language) int { return strings.Compare(a.Key, b.Key) })
	return out
}

// Lookup resolves a key or alias, ignoring case and surrounding space.
func Lookup(name string) (Language, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, l := range registry {
		if l.Key == name || slices.Contains(l.Aliases, name) {
			return l, true
		}
	}
	return Language{}, false
}

// New returns the generator registered under name.
func New(name string, opts generator.Options) (generator.Generator, error) {
	l, ok := Lookup(name)
	if !ok {
		return nil, unknown(name)
	}
	return l.New(opts), nil
}

// Resolve expands a list of names into canonical keys. Entries may be
// comma separated; "all" selects every language. Duplicates are dropped
// and the first-seen order is kept.
func Resolve(names []string) ([]string, error) {
	var out []string
	for _, entry := range names {
		for _, name := range strings.Split(entry, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			if strings.EqualFold(strings.TrimSpace(name), All) {
				for _, k := range Keys() {
					if !slices.Contains(out, k) {
						out = append(out, k)
					}
				}
				continue
			}
			l, ok := Lookup(name)
			if !ok {
				return nil, unknown(name)
			}
			if !slices.Contains(out, l.Key) {
				out = append(out, l.Key)
			}
		}
	}
	if len(out) == 0 {
		return nil, errors.WithHint(errors.Wrap(errors.ErrUnknownLanguage, "no language selected"), supported())
	}
	return out, nil
}

func unknown(name string) error {
	return errors.WithHint(errors.Wrapf(errors.ErrUnknownLanguage, "%q", strings.TrimSpace(name)), supported())
}

func supported() string {
	return "supported languages: " + strings.Join(Keys(), ", ") + " (or all)"
}
