// Package export serializes a parsed diagram so other tools can consume
// the intermediate model. Types are written in their source spelling, for
// example "Map<String, List<Integer>>".
package export

import (
	"encoding/json"
	"io"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/calumari/pumlgen/internal/errors"
	"github.com/calumari/pumlgen/internal/model"
)

// Format is a serialization format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

var formats = []Format{JSON, YAML, TOML}

// Formats lists the supported format names.
func Formats() []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}

// ParseFormat accepts a format name, case-insensitively. "yml" is YAML.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "yml" {
		return YAML, nil
	}
	if f := Format(s); slices.Contains(formats, f) {
		return f, nil
	}
	return "", errors.WithHintf(errors.Wrapf(errors.ErrUnknownFormat, "%q", s), "supported formats: %s", strings.Join(Formats(), ", "))
}

// Encode writes d to w.
func Encode(w io.Writer, d *model.Diagram, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return errors.Wrap(enc.Encode(d), "encode json")
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	case TOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return errors.Wrap(enc.Encode(d), "encode toml")
	}
	return errors.Wrapf(errors.ErrUnknownFormat, "%q", string(f))
}

// Decode reads a diagram previously written by Encode.
func Decode(r io.Reader, f Format) (*model.Diagram, error) {
	d := model.NewDiagram()
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(d)
	case YAML:
		err = yaml.NewDecoder(r).Decode(d)
	case TOML:
		err = toml.NewDecoder(r).Decode(d)
	default:
		return nil, errors.Wrapf(errors.ErrUnknownFormat, "%q", string(f))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", f)
	}
	return d, nil
}
