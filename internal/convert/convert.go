// Package convert wires the parser to the generators. Convert handles a
// single in-memory diagram; Run expands input patterns, parses each file
// once and renders every requested language concurrently.
package convert

import (
	"strings"

	"github.com/calumari/pumlgen/internal/errors"
	"github.com/calumari/pumlgen/internal/generator"
	"github.com/calumari/pumlgen/internal/generator/languages"
	"github.com/calumari/pumlgen/internal/parser"
)

// Convert parses source and renders it with the generator registered
// under lang.
func Convert(source, lang string, opts generator.Options) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", errors.WithHint(errors.WithStack(errors.ErrEmptyInput), "the diagram must contain at least one declaration")
	}
	g, err := languages.New(lang, opts)
	if err != nil {
		return "", err
	}
	return generator.Generate(parser.Parse(source), g), nil
}
