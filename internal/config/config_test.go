package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calumari/pumlgen/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply without a file", func(t *testing.T) {
		chdir(t, t.TempDir())
		c, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, []string{"java"}, c.Languages)
		assert.True(t, c.Banner)
		assert.Equal(t, "model", c.Go.Package)
		assert.Equal(t, "info", c.Log.Level)
		assert.Equal(t, 300, c.Watch.DebounceMS)
		assert.Empty(t, c.Output.Dir)
		assert.Empty(t, c.File)
	})

	t.Run("project file is found from a subdirectory", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, `languages = ["ts", "go"]
banner = false

[output]
dir = "gen"

[indent]
TS = 4
`)
		sub := filepath.Join(root, "diagrams", "shop")
		require.NoError(t, os.MkdirAll(sub, 0o755))
		chdir(t, sub)

		c, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, FileName, filepath.Base(c.File))
		assert.Equal(t, []string{"ts", "go"}, c.Languages)
		assert.False(t, c.Banner)
		assert.Equal(t, "gen", c.Output.Dir)
		assert.Equal(t, map[string]int{"typescript": 4}, c.Indents())
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "[go]\npackage = \"domain\"\n")
		t.Setenv("PUMLGEN_GO_PACKAGE", "shop")
		t.Setenv("PUMLGEN_LANGUAGES", "rust,py")

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "shop", c.Go.Package)
		assert.Equal(t, []string{"rust", "py"}, c.Languages)
		assert.Equal(t, path, c.File)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{"unknown language", `languages = ["cobol"]`, "languages"},
		{"negative indent", "[indent]\njava = -1\n", "indent.java must be >= 0"},
		{"indent for unknown language", "[indent]\nfortran = 2\n", "indent.fortran: unknown language"},
		{"negative debounce", "[watch]\ndebounce_ms = -5\n", "watch.debounce_ms must be >= 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.toml)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	c := &Config{Languages: []string{"cobol"}}
	assert.True(t, errors.Is(c.Validate(), errors.ErrUnknownLanguage))
}

func TestWrite(t *testing.T) {
	chdir(t, t.TempDir())
	c, err := Load("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c))
	out := buf.String()
	assert.Contains(t, out, "languages = ['java']")
	assert.Contains(t, out, "[output]")
	assert.Contains(t, out, "debounce_ms = 300")
	assert.NotContains(t, out, "File")

	path := writeConfig(t, t.TempDir(), out)
	again, err := Load(path)
	require.NoError(t, err)
	again.File = ""
	c.File = ""
	assert.Equal(t, c, again)
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
