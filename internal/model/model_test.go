package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	t.Run("simple name", func(t *testing.T) {
		tr := ParseType(" int ")
		require.Equal(t, TypeRef{Name: "int"}, tr)
		require.False(t, tr.IsGeneric())
	})

	t.Run("nested generic keeps argument structure", func(t *testing.T) {
		tr := ParseType("Map<String, List<Integer>>")
		require.Equal(t, "Map", tr.Name)
		require.Len(t, tr.Args, 2)
		assert.Equal(t, "String", tr.Args[0].Name)
		assert.Equal(t, "List", tr.Args[1].Name)
		assert.Equal(t, "Integer", tr.Args[1].Args[0].Name)
		assert.Equal(t, "Map<String, List<Integer>>", tr.String())
	})

	t.Run("missing spaces are normalized", func(t *testing.T) {
		assert.Equal(t, "Map<String, Integer>", ParseType("Map<String,Integer>").String())
	})

	t.Run("array dimensions", func(t *testing.T) {
		tr := ParseType("List<String>[][]")
		assert.Equal(t, 2, tr.Dims)
		assert.Equal(t, "List", tr.Name)
		assert.Equal(t, 1, tr.Elem().Dims)
		assert.Equal(t, "List<String>[][]", tr.String())
	})

	t.Run("unbalanced generic stays verbatim", func(t *testing.T) {
		tr := ParseType("Map<String, List<Integer>")
		assert.Equal(t, "Map<String, List<Integer>", tr.Name)
		assert.Empty(t, tr.Args)
	})

	t.Run("empty input is zero", func(t *testing.T) {
		assert.True(t, ParseType("").IsZero())
	})
}

func TestSplitTopLevel(t *testing.T) {
	parts := SplitTopLevel("a: Map<String, List<Integer>>, b: int", ',')
	require.Len(t, parts, 2)
	assert.Equal(t, "a: Map<String, List<Integer>>", parts[0])
	assert.Equal(t, " b: int", parts[1])
}

func TestTypeRefText(t *testing.T) {
	var tr TypeRef
	require.NoError(t, tr.UnmarshalText([]byte("Set<Long>")))
	b, err := tr.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Set<Long>", string(b))
}

func TestDiagramLookup(t *testing.T) {
	d := NewDiagram()
	d.Classes = append(d.Classes, &Class{Name: "Shared"})
	d.Interfaces = append(d.Interfaces, &Interface{Name: "Shared"}, &Interface{Name: "Shape"})
	d.Enums = append(d.Enums, &Enum{Name: "Color"})

	t.Run("classes win over interfaces", func(t *testing.T) {
		_, ok := d.Lookup("Shared").(*Class)
		assert.True(t, ok)
	})
	t.Run("interfaces and enums resolve", func(t *testing.T) {
		_, ok := d.Lookup("Shape").(*Interface)
		assert.True(t, ok)
		_, ok = d.Lookup("Color").(*Enum)
		assert.True(t, ok)
	})
	t.Run("unknown name is nil", func(t *testing.T) {
		assert.Nil(t, d.Lookup("Missing"))
	})
}

func TestDiagramPackages(t *testing.T) {
	d := NewDiagram()
	d.AddToPackage("p", "A")
	d.AddPackage("q")
	d.AddToPackage("p", "B")

	require.Len(t, d.Packages, 2)
	assert.Equal(t, "p", d.Packages[0].Name)
	assert.Equal(t, []string{"A", "B"}, d.Package("p").Members)
	assert.Empty(t, d.Package("q").Members)
	assert.Equal(t, map[string]bool{"A": true, "B": true}, d.Packaged())
}

func TestMethodConstructor(t *testing.T) {
	ret := ParseType("String")
	assert.True(t, Method{Name: "User"}.IsConstructor())
	assert.False(t, Method{Name: "getName", ReturnType: &ret}.IsConstructor())
	assert.Equal(t, "void", Method{Name: "User"}.Returns().Name)
}
