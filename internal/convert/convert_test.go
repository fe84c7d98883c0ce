package convert

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calumari/pumlgen/internal/errors"
	"github.com/calumari/pumlgen/internal/generator"
)

const userDiagram = `@startuml
class User {
  -id: int
  +getName(): String
}
@enduml
`

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvert(t *testing.T) {
	t.Run("renders the requested language", func(t *testing.T) {
		out, err := Convert(userDiagram, "java", generator.Options{})
		require.NoError(t, err)
		assert.Contains(t, out, "public class User {")
		assert.Contains(t, out, "private int id;")
	})

	t.Run("aliases resolve", func(t *testing.T) {
		out, err := Convert(userDiagram, "py", generator.Options{})
		require.NoError(t, err)
		assert.Contains(t, out, "class User:")
	})

	t.Run("blank input is rejected", func(t *testing.T) {
		_, err := Convert(" \n\t", "java", generator.Options{})
		assert.True(t, errors.Is(err, errors.ErrEmptyInput))
	})

	t.Run("unknown language lists the supported keys", func(t *testing.T) {
		_, err := Convert(userDiagram, "cobol", generator.Options{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrUnknownLanguage))
		assert.Contains(t, errors.FlattenHints(err), "java")
	})
}

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.puml", userDiagram)
	b := write(t, dir, "nested/deep/b.puml", userDiagram)
	write(t, dir, "nested/notes.txt", "x")

	t.Run("doublestar patterns recurse", func(t *testing.T) {
		got, err := ExpandInputs([]string{filepath.Join(dir, "**", "*.puml")})
		require.NoError(t, err)
		assert.Equal(t, []string{a, b}, got)
	})

	t.Run("plain names and patterns are merged without duplicates", func(t *testing.T) {
		got, err := ExpandInputs([]string{b, filepath.Join(dir, "*.puml"), a})
		require.NoError(t, err)
		assert.Equal(t, []string{a, b}, got)
	})

	t.Run("missing plain file fails", func(t *testing.T) {
		_, err := ExpandInputs([]string{filepath.Join(dir, "missing.puml")})
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directories need a pattern", func(t *testing.T) {
		_, err := ExpandInputs([]string{dir})
		require.Error(t, err)
		assert.NotEmpty(t, errors.GetAllHints(err))
	})

	t.Run("no matches", func(t *testing.T) {
		_, err := ExpandInputs([]string{filepath.Join(dir, "*.uml")})
		assert.True(t, errors.Is(err, errors.ErrNoInputs))
	})
}

func TestRun(t *testing.T) {
	t.Run("writes one file per input and language", func(t *testing.T) {
		dir := t.TempDir()
		in := write(t, dir, "src/user.puml", userDiagram)
		write(t, dir, "src/shapes.puml", "interface Shape {\n+area(): double\n}\n")
		out := filepath.Join(dir, "gen")

		sum, err := Run(context.Background(), Config{
			Inputs:    []string{filepath.Join(dir, "src", "*.puml")},
			Languages: []string{"java,ts"},
			OutDir:    out,
			Indent:    map[string]int{"typescript": 4},
		})
		require.NoError(t, err)
		require.Len(t, sum.Outputs, 4)
		assert.Equal(t, []string{filepath.Join(dir, "src", "shapes.puml"), in}, sum.Inputs)

		java, err := os.ReadFile(filepath.Join(out, "java", "user.java"))
		require.NoError(t, err)
		assert.Contains(t, string(java), "public class User {")

		ts, err := os.ReadFile(filepath.Join(out, "typescript", "shapes.ts"))
		require.NoError(t, err)
		assert.Contains(t, string(ts), "export interface Shape {\n    area(): number;\n}")

		assert.Equal(t, "typescript", sum.Outputs[1].Language)
		assert.Equal(t, filepath.Join(out, "typescript", "shapes.ts"), sum.Outputs[1].Path)
	})

	t.Run("stdin is used without inputs", func(t *testing.T) {
		sum, err := Run(context.Background(), Config{
			Stdin:     strings.NewReader(userDiagram + "bogus line\n"),
			Languages: []string{"go"},
			Options:   generator.Options{Banner: true, Version: "v1.2.3"},
		})
		require.NoError(t, err)
		require.Len(t, sum.Outputs, 1)
		assert.Equal(t, StdinName, sum.Outputs[0].Input)
		assert.Empty(t, sum.Outputs[0].Path)
		assert.Equal(t, 1, sum.Skipped)
		assert.Contains(t, sum.Outputs[0].Text, "// Code generated by pumlgen v1.2.3 from stdin. DO NOT EDIT.")
		assert.Contains(t, sum.Outputs[0].Text, "type User struct")
	})

	t.Run("empty file is an error", func(t *testing.T) {
		dir := t.TempDir()
		in := write(t, dir, "empty.puml", "\n")
		_, err := Run(context.Background(), Config{Inputs: []string{in}, Languages: []string{"java"}})
		assert.True(t, errors.Is(err, errors.ErrEmptyInput))
	})

	t.Run("no inputs and no stdin", func(t *testing.T) {
		_, err := Run(context.Background(), Config{Languages: []string{"java"}})
		assert.True(t, errors.Is(err, errors.ErrNoInputs))
	})

	t.Run("cancelled context stops generation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Run(ctx, Config{Stdin: strings.NewReader(userDiagram), Languages: []string{"all"}})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "rust", "shop.rs"), OutputPath("out", "diagrams/shop.puml", "rust", "rs"))
}
