package convert

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/calumari/pumlgen/internal/errors"
)

// ExpandInputs resolves file names and doublestar patterns to a sorted,
// de-duplicated list of regular files. A plain name that does not exist is
// an error; a pattern that matches nothing is not.
func ExpandInputs(patterns []string) ([]string, error) {
	var out []string
	for _, pattern := range patterns {
		if !containsGlob(pattern) {
			info, err := os.Stat(pattern)
			if err != nil {
				return nil, errors.Wrapf(err, "input %s", pattern)
			}
			if info.IsDir() {
				return nil, errors.WithHintf(errors.Newf("input %s is a directory", pattern), "use a pattern such as %s", filepath.Join(pattern, "**", "*.puml"))
			}
			out = append(out, filepath.Clean(pattern))
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrapf(err, "glob %s", pattern)
		}
		out = append(out, matches...)
	}
	slices.Sort(out)
	out = slices.Compact(out)
	if len(out) == 0 {
		return nil, errors.WithHintf(errors.WithStack(errors.ErrNoInputs), "no file matched %s", strings.Join(patterns, ", "))
	}
	return out, nil
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
